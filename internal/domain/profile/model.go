package profile

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 100
	MaxTitleLength = 100
	MaxEmailLength = 254
)

// Domain errors
var (
	ErrEmptyName    = errors.New("name cannot be empty")
	ErrNameTooLong  = errors.New("name cannot exceed 100 characters")
	ErrTitleTooLong = errors.New("title cannot exceed 100 characters")
	ErrInvalidEmail = errors.New("email must contain '@'")
)

// Profile holds the portfolio owner's personal information.
// At most one Profile row ever exists; creation of a second is a silent no-op
// enforced by the store.
type Profile struct {
	ID           string
	Name         string
	Title        string
	Bio          string
	ProfileImage string // media path, empty if none uploaded
	CVFile       string // media path, empty if none uploaded
	Email        string
	GitHubURL    string
	LinkedInURL  string
}

// Validate checks if the Profile has valid data.
// PRE: Profile struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if len(p.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(p.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if p.Email != "" {
		if len(p.Email) > MaxEmailLength {
			return errors.New("email cannot exceed 254 characters")
		}
		if !strings.Contains(p.Email, "@") {
			return ErrInvalidEmail
		}
	}
	return nil
}
