package project

import (
	"errors"
	"strings"
)

// Max length constants for user-editable fields.
const (
	MaxTitleLength = 200
)

// Domain errors
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrTitleTooLong     = errors.New("title cannot exceed 200 characters")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrNegativeOrder    = errors.New("display order must be zero or greater")
)

// Project is a portfolio entry. SkillIDs references Skill records; the
// references live in a join table and are written atomically with the project.
type Project struct {
	ID           string
	Title        string
	Description  string
	Image        string // media path, empty if none uploaded
	SkillIDs     []string
	RepoURL      string
	LiveURL      string
	DisplayOrder int // lower numbers appear first
}

// Validate checks if the Project has valid data.
// PRE: Project struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if len(p.Title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(p.Description) == "" {
		return ErrEmptyDescription
	}
	if p.DisplayOrder < 0 {
		return ErrNegativeOrder
	}
	return nil
}
