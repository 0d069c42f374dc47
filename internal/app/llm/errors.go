package llm

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies an adapter failure.
type Kind string

const (
	KindMissingCredential Kind = "missing_credential"
	KindAuth              Kind = "auth"
	KindTransport         Kind = "transport"
	KindUpstream          Kind = "upstream"
	KindMalformedResponse Kind = "malformed_response"
)

// Error is returned by every Client on failure.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("llm %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying provider error.
func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts an *Error from err. Errors of any other type are reported as transport failures.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}

func missingCredential(envVar string) *Error {
	return &Error{
		Kind:    KindMissingCredential,
		Message: fmt.Sprintf("API key not found. Please set %s.", envVar),
	}
}

func malformed(msg string) *Error {
	return &Error{Kind: KindMalformedResponse, Message: msg}
}

// classifyStatus maps an HTTP status returned by a provider onto a Kind.
func classifyStatus(status int) Kind {
	switch {
	case status == 401 || status == 403:
		return KindAuth
	case status > 0:
		return KindUpstream
	default:
		return KindTransport
	}
}

// isCanceled reports whether err came from the call's context.
func isCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
