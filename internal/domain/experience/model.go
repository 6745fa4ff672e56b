package experience

import (
	"errors"
	"strings"
	"time"
)

// Category constants
const (
	CategoryWork      = "work"
	CategoryEducation = "education"
)

// ValidCategories contains all valid category values.
var ValidCategories = []string{CategoryWork, CategoryEducation}

// Domain errors
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrEmptyOrganization = errors.New("organization cannot be empty")
	ErrInvalidCategory   = errors.New("category must be one of: work, education")
	ErrMissingStartDate  = errors.New("start date is required")
	ErrEndBeforeStart    = errors.New("end date cannot be before start date")
)

// Experience is a single work or education entry. A zero EndDate means the
// entry is current.
type Experience struct {
	ID           string
	Category     string
	Title        string
	Organization string
	StartDate    time.Time
	EndDate      time.Time // zero value = current
	Description  string
}

// IsCurrent returns true if the experience has no end date.
// INVARIANT: Experience fields are not mutated
func (e *Experience) IsCurrent() bool {
	return e.EndDate.IsZero()
}

// Validate checks if the Experience has valid data.
// An end date, when present, must not precede the start date.
// PRE: Experience struct is populated
// POST: Returns nil if valid, error otherwise
func (e *Experience) Validate() error {
	if !isValidCategory(e.Category) {
		return ErrInvalidCategory
	}
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(e.Organization) == "" {
		return ErrEmptyOrganization
	}
	if e.StartDate.IsZero() {
		return ErrMissingStartDate
	}
	if !e.EndDate.IsZero() && e.EndDate.Before(e.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

func isValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}
