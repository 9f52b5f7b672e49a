// quantiri/types/errors.go
package types

import "errors"

var (
	ErrMisconfigured       = errors.New("server misconfigured: missing GROQ_API_KEY")
	ErrInvalidInput        = errors.New("invalid request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrProviderFailure     = errors.New("llm provider failure")
	ErrEmailTaken          = errors.New("Email already registered")
	ErrBadCredentials      = errors.New("Incorrect email or password")
	ErrEmailNotVerified    = errors.New("Please verify your email. We've sent you a link.")
	ErrVerificationInvalid = errors.New("Invalid or already used verification link")
	ErrVerificationExpired = errors.New("Verification link expired")
	ErrSessionNotFound     = errors.New("session not found or forbidden")
	ErrDatasetNotFound     = errors.New("dataset not found")
)

// FieldError carries the field path for a validation failure so the
// route layer can report field-level detail alongside ErrInvalidInput.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Issues []FieldError
}

func (e *ValidationError) Error() string { return ErrInvalidInput.Error() }

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func NewValidationError(issues ...FieldError) *ValidationError {
	return &ValidationError{Issues: issues}
}
