/*
Package errs provides the application error type and its business error codes.

This file defines CustomError, which carries a business code, the message shown to the
user and the HTTP status used when the error ends a request.
*/
package errs

import (
	"fmt"
	"net/http"
	"strings"

	"interviewbot/internal/pkg/logx"
)

// CustomError is the error type shared by the controller, the handlers and the middleware.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Message is the user-facing description.
	Message string

	// Status is the HTTP status used when this error aborts a request.
	Status int
}

// Error implements the error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError builds a *CustomError for a predefined code.
// details are printf arguments for templated messages; for ErrUnknown the first detail
// may be the underlying error, which is logged instead of shown. Unknown codes map to ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]
	if !ok {
		logx.Error(
			fmt.Errorf("unknown error code %d", code),
			"Unknown error code requested",
			"requested_code", code,
		)
		templateErr = errorMap[ErrUnknown]
	}

	customErr := templateErr
	if customErr.Status == 0 {
		customErr.Status = http.StatusOK
	}

	switch {
	case len(details) == 0:
	case customErr.Code == ErrUnknown:
		if originalErr, ok := details[0].(error); ok {
			logx.Error(originalErr, "Handling ErrUnknown with underlying error")
		}
	case strings.Contains(customErr.Message, "%"):
		customErr.Message = fmt.Sprintf(customErr.Message, details...)
	default:
		logx.Warn("Details provided for an error without placeholders. Details ignored.", "code", code)
	}

	return &customErr
}
