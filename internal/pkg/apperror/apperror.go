// Package apperror defines the error taxonomy shared by services and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation           Kind = "validation"
	KindConflict             Kind = "conflict"
	KindAuth                 Kind = "auth"
	KindForbidden            Kind = "forbidden"
	KindNotFound             Kind = "not_found"
	KindSubscriptionRequired Kind = "subscription_required"
	KindInvalidSignature     Kind = "invalid_signature"
	KindExternalService      Kind = "external_service"
	KindInternal             Kind = "internal"
)

// AppError is a domain failure carrying the message that is safe to show to a caller.
type AppError struct {
	Kind    Kind
	Message string
	Details map[string]interface{}
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to its response status.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindInvalidSignature:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden, KindSubscriptionRequired:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Validation(message string) *AppError { return newError(KindValidation, message) }

func Conflict(message string) *AppError { return newError(KindConflict, message) }

func Auth(message string) *AppError { return newError(KindAuth, message) }

func Forbidden(message string) *AppError { return newError(KindForbidden, message) }

func NotFound(message string) *AppError { return newError(KindNotFound, message) }

func InvalidSignature(message string) *AppError { return newError(KindInvalidSignature, message) }

func SubscriptionRequired(message string) *AppError {
	e := newError(KindSubscriptionRequired, message)
	e.Details = map[string]interface{}{"subscription_required": true}
	return e
}

// ExternalService reports a failed call to a third-party provider. flag names the
// provider-specific marker returned to clients (e.g. "ai_service_error").
func ExternalService(flag, message string, err error) *AppError {
	e := newError(KindExternalService, message)
	e.Err = err
	if flag != "" {
		e.Details = map[string]interface{}{flag: true}
	}
	return e
}

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// As extracts an *AppError from err.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
