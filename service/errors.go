package services

import "fmt"

// ValidationError reports a missing or malformed request field. Handlers
// map it to a 400 response naming the field; storage is never touched
// when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Message)
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
