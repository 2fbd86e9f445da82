package errors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationResponse is the 400 body for request-schema failures: one entry
// per failed field.
type ValidationResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// NewValidationResponse unpacks validator errors into a field-level list.
// Errors that did not come from the validator keep their message and carry
// no field list.
func NewValidationResponse(err error) ValidationResponse {
	resp := ValidationResponse{Error: "validation failed", Code: "VALIDATION_ERROR"}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		resp.Error = err.Error()
		return resp
	}

	for _, fe := range fieldErrs {
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("failed on the '%s=%s' rule", fe.Tag(), fe.Param())
		}
		resp.Fields = append(resp.Fields, FieldError{Field: fe.Field(), Message: msg})
	}
	return resp
}
