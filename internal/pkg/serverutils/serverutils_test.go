package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger.NewNopLogger())})
}

func decodeBody(t *testing.T, body io.Reader) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantFlag    string
	}{
		{"validation", apperror.Validation("Invalid stage number"), 400, "Invalid stage number", ""},
		{"subscription", apperror.SubscriptionRequired("No letters remaining. Please subscribe to continue."), 403, "No letters remaining. Please subscribe to continue.", "subscription_required"},
		{"external", apperror.ExternalService("ai_service_error", "Failed to generate letter. Please try again.", errors.New("timeout")), 502, "Failed to generate letter. Please try again.", "ai_service_error"},
		{"fiber", fiber.NewError(fiber.StatusNotFound, "Route not found"), 404, "Route not found", ""},
		{"internal", errors.New("connection refused"), 500, "Internal server error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()
			app.Get("/", func(ctx *fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeBody(t, resp.Body)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
			if tt.wantFlag != "" {
				assert.Equal(t, true, body[tt.wantFlag])
			}
			if tt.wantStatus >= 500 {
				assert.Contains(t, body, "timestamp")
			}
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	assert.NoError(t, ValidateRequest(&req{Email: "a@b.co", Password: "secret"}))

	err := ValidateRequest(&req{Email: "a@b.co", Password: "123"})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Contains(t, err.Error(), "password")
}

func TestJwtMiddleware(t *testing.T) {
	app := newTestApp()
	app.Get("/me", JwtMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"user_id": ctx.Locals(LocalUserID),
			"role":    ctx.Locals(LocalRole),
		})
	})

	valid := signToken(t, jwt.MapClaims{
		"userId": "3f2b7c1e-0000-4000-8000-000000000001",
		"email":  "jane@example.com",
		"role":   "contractor",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}, testSecret)
	expired := signToken(t, jwt.MapClaims{
		"userId": "3f2b7c1e-0000-4000-8000-000000000001",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}, testSecret)
	foreign := signToken(t, jwt.MapClaims{
		"userId": "3f2b7c1e-0000-4000-8000-000000000001",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}, "other-secret")

	tests := []struct {
		name        string
		header      string
		wantStatus  int
		wantMessage string
	}{
		{"missing header", "", 401, "No authorization token provided"},
		{"expired", "Bearer " + expired, 401, "Invalid or expired token"},
		{"wrong key", "Bearer " + foreign, 401, "Invalid or expired token"},
		{"valid", "Bearer " + valid, 200, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decodeBody(t, resp.Body)
			if tt.wantStatus == 200 {
				assert.Equal(t, "3f2b7c1e-0000-4000-8000-000000000001", body["user_id"])
				assert.Equal(t, "contractor", body["role"])
			} else {
				assert.Equal(t, tt.wantMessage, body["message"])
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	app := newTestApp()
	app.Get("/admin", func(ctx *fiber.Ctx) error {
		ctx.Locals(LocalRole, ctx.Query("role"))
		return ctx.Next()
	}, RequireRole("Admin access required", "admin"), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/admin?role=admin", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/admin?role=user", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Admin access required", decodeBody(t, resp.Body)["message"])
}

func TestSuccessResponse(t *testing.T) {
	res := SuccessResponse("ok", fiber.Map{"a": 1})
	assert.True(t, res.Success)
	assert.Equal(t, 200, res.Code)
	assert.Equal(t, "ok", res.Message)
}
