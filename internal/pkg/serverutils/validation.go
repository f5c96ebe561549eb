package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"legal-letter-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest runs struct tag validation and reports the first failure as
// a validation error.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Validation(err.Error())
	}

	fe := verrs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return apperror.Validation(fmt.Sprintf("%s is required", field))
	case "email":
		return apperror.Validation(fmt.Sprintf("%s must be a valid email", field))
	case "min":
		return apperror.Validation(fmt.Sprintf("%s must be at least %s", field, fe.Param()))
	case "max":
		return apperror.Validation(fmt.Sprintf("%s must be at most %s", field, fe.Param()))
	case "oneof":
		return apperror.Validation(fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
	default:
		return apperror.Validation(fmt.Sprintf("%s is invalid", field))
	}
}
