package contact

import (
	"errors"
	"net/mail"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 100
	MaxEmailLength = 254
)

// Domain errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrEmptyEmail   = errors.New("email cannot be empty")
	ErrInvalidEmail = errors.New("email address is not valid")
	ErrEmptyMessage = errors.New("message cannot be empty")
)

// Message is a contact-form submission from a visitor. SentAt is assigned by
// the server exactly once at creation and never changes.
type Message struct {
	ID      string
	Name    string
	Email   string
	Message string
	SentAt  time.Time
}

// Validate checks if the Message has valid data.
// PRE: Message struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return errors.New("name cannot exceed 100 characters")
	}
	if strings.TrimSpace(m.Email) == "" {
		return ErrEmptyEmail
	}
	if len(m.Email) > MaxEmailLength {
		return errors.New("email cannot exceed 254 characters")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(m.Message) == "" {
		return ErrEmptyMessage
	}
	return nil
}
