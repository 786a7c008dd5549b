package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common error types for the dealer admin dashboard
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// Agency selection errors
	ErrNoActiveAgency = errors.New("no active agency selected")

	// Backend errors
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrNetwork    = errors.New("network error")

	// General errors
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// StatusError carries a backend HTTP status together with the server's
// human-readable detail message. The detail is surfaced to callers verbatim.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return http.StatusText(e.Status)
}

// Unwrap maps the HTTP status onto the error taxonomy above so that callers
// can match with errors.Is against the sentinels.
func (e *StatusError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthenticated
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status >= 400 && e.Status < 500:
		return ErrValidation
	default:
		return ErrInternal
	}
}

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
