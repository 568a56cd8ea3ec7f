package domain

import "strings"

// ValidationError collects human-readable messages about malformed input.
type ValidationError struct {
	Fields []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Fields: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Add(message string) {
	e.Fields = append(e.Fields, message)
}

// OrNil returns nil when nothing was collected, so callers can write
// `return v.OrNil()` after a series of checks.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}
