package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrNoteNotFound       = errors.New("note not found")
	ErrForbidden          = errors.New("you do not have permission to perform this action")
	ErrUsernameTaken      = errors.New("a user with that username already exists")
	ErrInvalidCredentials = errors.New("no active account found with the given credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
