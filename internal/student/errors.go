package student

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStudentNotFound = errors.New("student not found")
	ErrStudentExists   = errors.New("student already exists")
	ErrInvalidInput    = errors.New("invalid input")
)

// StorageValidationError is returned when a record violates the storage
// schema. Only the first failing field is reported.
type StorageValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *StorageValidationError) Error() string {
	return fmt.Sprintf("student validation failed: %s: %s", e.Field, e.Message)
}

// Issue is one failed rule in a request payload.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// InputValidationError lists every rule a request payload failed.
type InputValidationError struct {
	Issues []Issue `json:"issues"`
}

func (e *InputValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "invalid student payload: " + strings.Join(parts, "; ")
}

// Is lets both validation errors match ErrInvalidInput.
func (e *StorageValidationError) Is(target error) bool { return target == ErrInvalidInput }

func (e *InputValidationError) Is(target error) bool { return target == ErrInvalidInput }
