package services

import (
	"net/mail"
	"strings"
)

// ValidationError marks input rejected before any store call is made.
// Handlers map it to a 400; everything else from a service is a store
// failure.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationErr(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// validEmail is a syntactic check only; it mirrors the form-side check
// and does not verify deliverability.
func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
