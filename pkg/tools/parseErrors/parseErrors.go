package parseErrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError reports a validation failure on a single request field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError creates a FieldError for field
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

// ErrorResponse maps err to the JSON body returned to clients.
// Validation failures are reported per field under "errors", everything else under "error".
func ErrorResponse(err error) gin.H {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fieldName(fe)] = fieldMessage(fe)
		}
		return gin.H{"errors": fields}
	}

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return gin.H{"errors": map[string]string{fieldErr.Field: fieldErr.Message}}
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return gin.H{"errors": map[string]string{
			typeErr.Field: fmt.Sprintf("expected %s", typeErr.Type.String()),
		}}
	}

	return gin.H{"error": err.Error()}
}

func fieldName(fe validator.FieldError) string {
	// Namespace is "Struct.Field.Sub"; drop the root struct name.
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return toSnake(ns)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "url":
		return "enter a valid URL"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func toSnake(s string) string {
	var sb strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '.' && s[i-1] != '[' {
				sb.WriteByte('_')
			}
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
