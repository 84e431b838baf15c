// Package validator provides validation for contact-form submissions.
package validator

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/expensivecode/folio/app/contact"
)

// field limits, in characters.
const (
	maxName    = 100
	maxEmail   = 254
	maxPhone   = 32
	maxMessage = 5000
)

// FieldError describes the first invalid field of a submission.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Service validates contact submissions.
type Service struct{}

// NewService creates a new validation service.
func NewService() *Service {
	return &Service{}
}

// Validate checks that every field is present and well-formed.
// Fields are checked in form order: name, phone, email, message.
func (s *Service) Validate(sub contact.Submission) error {
	sub = sub.Trim()
	checks := []struct {
		field string
		value string
		max   int
	}{
		{"name", sub.Name, maxName},
		{"phone", sub.Phone, maxPhone},
		{"email", sub.Email, maxEmail},
		{"message", sub.Message, maxMessage},
	}
	for _, c := range checks {
		if c.value == "" {
			return &FieldError{Field: c.field, Reason: "is required"}
		}
		if utf8.RuneCountInString(c.value) > c.max {
			return &FieldError{Field: c.field, Reason: fmt.Sprintf("is too long (max %d characters)", c.max)}
		}
	}

	if err := s.validatePhone(sub.Phone); err != nil {
		return err
	}
	return s.validateEmail(sub.Email)
}

// validatePhone allows digits, spaces and the usual separators, with at least five digits.
func (s *Service) validatePhone(phone string) error {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case strings.ContainsRune(" +-().", r):
		default:
			return &FieldError{Field: "phone", Reason: fmt.Sprintf("contains invalid character %q", r)}
		}
	}
	if digits < 5 {
		return &FieldError{Field: "phone", Reason: "must contain at least 5 digits"}
	}
	return nil
}

// validateEmail requires a bare address with a dotted domain.
func (s *Service) validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return &FieldError{Field: "email", Reason: "is not a valid address"}
	}
	at := strings.LastIndex(email, "@")
	if at < 1 || !strings.Contains(email[at+1:], ".") {
		return &FieldError{Field: "email", Reason: "is not a valid address"}
	}
	return nil
}
