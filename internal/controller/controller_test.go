package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"legal-letter-be/internal/constant"
	"legal-letter-be/internal/dto"
	"legal-letter-be/internal/pkg/apperror"
	"legal-letter-be/internal/pkg/logger"
	"legal-letter-be/internal/pkg/serverutils"
	"legal-letter-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUserId = uuid.MustParse("7b0c6f3e-2f4a-4c8e-9d1b-5a6e7f8a9b0c")

// fakeAuth stands in for the JWT middleware: the role comes from the X-Test-Role header.
func fakeAuth(ctx *fiber.Ctx) error {
	role := ctx.Get("X-Test-Role")
	if role == "" {
		return apperror.Auth("No authorization token provided")
	}
	ctx.Locals(serverutils.LocalUserID, testUserId.String())
	ctx.Locals(serverutils.LocalRole, role)
	return ctx.Next()
}

func newTestApp(register func(api fiber.Router, guards Guards)) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler(logger.NewNopLogger())})
	register(app.Group("/api"), Guards{Auth: fakeAuth})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, role, body string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("X-Test-Role", role)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

type fakeAuthService struct {
	service.IAuthService
	lastRegister *dto.RegisterRequest
	meFor        uuid.UUID
}

func (f *fakeAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	f.lastRegister = req
	return &dto.AuthResponse{Token: "token", Message: "Registration successful!"}, nil
}

func (f *fakeAuthService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	f.meFor = userId
	return &dto.MeResponse{User: dto.UserDTO{Id: userId}}, nil
}

func TestAuthController(t *testing.T) {
	svc := &fakeAuthService{}
	app := newTestApp(NewAuthController(svc).RegisterRoutes)

	status, body := doRequest(t, app, "POST", "/api/auth/register", "", `{"email":"a@b.co","password":"secret1","name":"A"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Registration successful!", body["message"])
	assert.Equal(t, "a@b.co", svc.lastRegister.Email)

	status, body = doRequest(t, app, "POST", "/api/auth/register", "", `{not json`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Invalid request body", body["message"])

	status, body = doRequest(t, app, "GET", "/api/auth/me", "", "")
	assert.Equal(t, 401, status)
	assert.Equal(t, "No authorization token provided", body["message"])

	status, _ = doRequest(t, app, "GET", "/api/auth/me", "user", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, testUserId, svc.meFor)
}

type fakePaymentService struct {
	service.IPaymentService
	payload   string
	signature string
	logsCalls int
}

func (f *fakePaymentService) ReconcileWebhook(ctx context.Context, payload []byte, signature string) (*dto.WebhookAckResponse, error) {
	f.payload = string(payload)
	f.signature = signature
	return &dto.WebhookAckResponse{Received: true, EventType: "checkout.session.completed"}, nil
}

func (f *fakePaymentService) ListWebhookLogs(ctx context.Context) (*dto.WebhookLogsResponse, error) {
	f.logsCalls++
	return &dto.WebhookLogsResponse{Logs: []dto.WebhookLogDTO{}}, nil
}

func TestStripeWebhookPassesRawBody(t *testing.T) {
	svc := &fakePaymentService{}
	app := newTestApp(NewPaymentController(svc).RegisterRoutes)

	raw := `{"id":"evt_1",  "type":"checkout.session.completed"}`
	req := httptest.NewRequest("POST", "/api/webhooks/stripe", strings.NewReader(raw))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, raw, svc.payload)
	assert.Equal(t, "t=1,v1=abc", svc.signature)
}

func TestWebhookLogsRequireAdmin(t *testing.T) {
	svc := &fakePaymentService{}
	app := newTestApp(NewPaymentController(svc).RegisterRoutes)

	status, body := doRequest(t, app, "GET", "/api/webhooks/logs", "user", "")
	assert.Equal(t, 403, status)
	assert.Equal(t, "Admin access required", body["message"])
	assert.Zero(t, svc.logsCalls)

	status, _ = doRequest(t, app, "GET", "/api/webhooks/logs", "admin", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, 1, svc.logsCalls)
}

type fakeLetterService struct {
	service.ILetterService
	caller   service.Caller
	letterId uuid.UUID
	stage    int
	document *dto.GenerateDocumentRequest
}

func (f *fakeLetterService) GenerateDocument(ctx context.Context, userId uuid.UUID, req *dto.GenerateDocumentRequest) (*dto.GenerateDocumentResponse, error) {
	f.document = req
	return &dto.GenerateDocumentResponse{Document: dto.LetterDTO{FormData: req.FormData}, LettersRemaining: 3}, nil
}

func (f *fakeLetterService) UpdateStage(ctx context.Context, caller service.Caller, letterId uuid.UUID, req *dto.UpdateStageRequest) (*dto.LetterResponse, error) {
	if req.Stage < 1 || req.Stage > 4 {
		return nil, apperror.Validation("Invalid stage number")
	}
	f.caller, f.letterId, f.stage = caller, letterId, req.Stage
	return &dto.LetterResponse{Letter: dto.LetterDTO{Id: letterId, Stage: req.Stage}}, nil
}

func (f *fakeLetterService) DocumentTypes() []constant.DocumentCategory {
	return constant.DocumentCategories
}

func TestLetterController(t *testing.T) {
	svc := &fakeLetterService{}
	app := newTestApp(NewLetterController(svc).RegisterRoutes)
	letterId := uuid.New()

	status, _ := doRequest(t, app, "PUT", "/api/letters/"+letterId.String()+"/stage", "admin", `{"stage":3}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, letterId, svc.letterId)
	assert.Equal(t, 3, svc.stage)
	assert.Equal(t, testUserId, svc.caller.UserId)
	assert.Equal(t, "admin", string(svc.caller.Role))

	status, body := doRequest(t, app, "PUT", "/api/letters/not-a-uuid/stage", "user", `{"stage":9}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Invalid stage number", body["message"])

	status, _ = doRequest(t, app, "PUT", "/api/letters/"+letterId.String()+"/stage", "", `{"stage":3}`)
	assert.Equal(t, 401, status)

	status, body = doRequest(t, app, "GET", "/api/documents/types", "", "")
	assert.Equal(t, 200, status)
	data := body["data"].(map[string]interface{})
	assert.Len(t, data["categories"], 7)
}

func TestGenerateDocumentAcceptsTypedFormData(t *testing.T) {
	svc := &fakeLetterService{}
	app := newTestApp(NewLetterController(svc).RegisterRoutes)

	status, _ := doRequest(t, app, "POST", "/api/documents/generate", "user",
		`{"documentType":"lease","category":"real_estate","formData":{"landlord":"ACME","price":250000,"furnished":true,"rooms":["a","b"]}}`)
	require.Equal(t, 200, status)
	require.NotNil(t, svc.document)
	assert.Equal(t, "ACME", svc.document.FormData["landlord"])
	assert.Equal(t, float64(250000), svc.document.FormData["price"])
	assert.Equal(t, true, svc.document.FormData["furnished"])
}

type fakeReferralService struct {
	service.IReferralService
	statsErr error
}

func (f *fakeReferralService) ContractorStats(ctx context.Context, contractorId uuid.UUID) (*dto.ContractorStatsResponse, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &dto.ContractorStatsResponse{Username: "janed", DiscountPercent: 20}, nil
}

func TestRemoteEmployeeStats(t *testing.T) {
	svc := &fakeReferralService{}
	app := newTestApp(NewReferralController(svc).RegisterRoutes)

	status, body := doRequest(t, app, "GET", "/api/remote-employee/stats", "user", "")
	assert.Equal(t, 403, status)
	assert.Equal(t, "Remote Employee access required", body["message"])

	status, body = doRequest(t, app, "GET", "/api/contractor/stats", "contractor", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "janed", body["data"].(map[string]interface{})["username"])

	svc.statsErr = apperror.NotFound("Contractor profile not found")
	status, body = doRequest(t, app, "GET", "/api/remote-employee/stats", "contractor", "")
	assert.Equal(t, 404, status)
	assert.Equal(t, "Remote Employee profile not found", body["message"])
}

func TestCreateCouponRejectsOutOfRangeBody(t *testing.T) {
	app := newTestApp(NewReferralController(&fakeReferralService{}).RegisterRoutes)

	status, body := doRequest(t, app, "POST", "/api/coupons", "contractor", `{"discount_percent":10,"max_uses":-1}`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "maxUses must be at least 0", body["message"])

	status, body = doRequest(t, app, "POST", "/api/coupons", "contractor", `{"discount_percent":10`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "Invalid request body", body["message"])
}

type fakeAdminService struct {
	service.IAdminService
	role string
}

func (f *fakeAdminService) ListUsers(ctx context.Context, role string) (*dto.AdminUsersResponse, error) {
	f.role = role
	return &dto.AdminUsersResponse{Users: []dto.UserDTO{}}, nil
}

func (f *fakeAdminService) Stats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	return &dto.AdminStatsResponse{TotalUsers: 12, LettersByStatus: map[string]int64{"sent": 4}}, nil
}

func TestAdminController(t *testing.T) {
	svc := &fakeAdminService{}
	app := newTestApp(NewAdminController(svc, &fakePaymentService{}).RegisterRoutes)

	status, body := doRequest(t, app, "GET", "/api/admin/users", "contractor", "")
	assert.Equal(t, 403, status)
	assert.Equal(t, "Admin access required", body["message"])

	status, _ = doRequest(t, app, "GET", "/api/admin/users?role=contractor", "admin", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "contractor", svc.role)

	status, body = doRequest(t, app, "GET", "/api/admin/stats", "admin", "")
	assert.Equal(t, 200, status)
	stats := body["data"].(map[string]interface{})
	assert.Equal(t, float64(12), stats["total_users"])
	assert.Equal(t, float64(4), stats["letters_by_status"].(map[string]interface{})["sent"])
}

func TestSystemController(t *testing.T) {
	healthy := true
	ctrl := NewSystemController(func(ctx context.Context) error {
		if healthy {
			return nil
		}
		return errors.New("dial tcp: connection refused")
	})
	app := newTestApp(func(api fiber.Router, _ Guards) { ctrl.RegisterRoutes(api) })

	status, body := doRequest(t, app, "GET", "/api", "", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "2.0.0", body["version"])

	status, body = doRequest(t, app, "GET", "/api/health", "", "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "connected", body["database"])

	healthy = false
	status, body = doRequest(t, app, "GET", "/api/health", "", "")
	assert.Equal(t, 503, status)
	assert.Equal(t, "unhealthy", body["status"])
}
