package services

import "fmt"

// NotFoundError means the entity is absent or not visible to the caller.
// Both cases look identical from the outside.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AuthError covers bad credentials and failed re-verification.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ConflictError means a uniqueness constraint would be violated.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// FieldError describes a single failing field of a request body.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every failing field, not just the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}
