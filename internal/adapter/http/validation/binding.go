package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Shutko92/TaskManagerApp/pkg/apierrors"
)

// BindingErrorMessage renders a gin binding failure for the client.
// Field-level validation errors are joined as "Field: message, ...";
// anything else (malformed JSON, type mismatches) collapses to the
// generic invalid-payload message in the request language.
func BindingErrorMessage(err error, lang string) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apierrors.GetTransErrorMsg(apierrors.MsgInvalidPayload, lang)
	}

	parts := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		parts = append(parts, fieldError.Field()+": "+fieldErrorMessage(fieldError))
	}

	return strings.Join(parts, ", ")
}

func fieldErrorMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fieldError.Param() + " characters"
	case "max":
		return "must be at most " + fieldError.Param() + " characters"
	case "oneof":
		return "must be one of " + fieldError.Param()
	default:
		return "is invalid"
	}
}
