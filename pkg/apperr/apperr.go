package apperr

import "errors"

// Sentinels for the request error taxonomy. Controllers map them to HTTP
// status codes; everything else surfaces as a 500.
var (
	ErrAuthRequired = errors.New("Authentication required")
	ErrForbidden    = errors.New("Unauthorized")
	ErrNotFound     = errors.New("not found")
)

// ValidationError carries a client-facing message for a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validation(msg string) error { return &ValidationError{Msg: msg} }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
