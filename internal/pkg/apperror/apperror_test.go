package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"conflict", Conflict("dup"), http.StatusConflict},
		{"auth", Auth("nope"), http.StatusUnauthorized},
		{"forbidden", Forbidden("role"), http.StatusForbidden},
		{"not found", NotFound("missing"), http.StatusNotFound},
		{"subscription required", SubscriptionRequired("pay"), http.StatusForbidden},
		{"invalid signature", InvalidSignature("sig"), http.StatusBadRequest},
		{"external", ExternalService("ai_service_error", "down", nil), http.StatusBadGateway},
		{"internal", Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestAsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading account: %w", NotFound("User not found"))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindNotFound, appErr.Kind)
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(errors.New("plain"), KindNotFound))
}

func TestDetails(t *testing.T) {
	assert.Equal(t, true, SubscriptionRequired("x").Details["subscription_required"])
	assert.Equal(t, true, ExternalService("email_service_error", "x", nil).Details["email_service_error"])
	assert.Nil(t, ExternalService("", "x", nil).Details)
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	assert.Equal(t, "Internal server error", err.Message)
	assert.ErrorIs(t, err, cause)
}
