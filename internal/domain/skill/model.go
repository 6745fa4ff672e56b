package skill

import (
	"errors"
	"strings"
)

// MaxNameLength bounds the skill name.
const MaxNameLength = 100

// Domain errors
var (
	ErrEmptyName     = errors.New("skill name cannot be empty")
	ErrNameTooLong   = errors.New("skill name cannot exceed 100 characters")
	ErrDuplicateName = errors.New("a skill with this name already exists")
)

// Skill is a named technology or competency. Names are unique, compared
// case-sensitively. Projects reference skills by ID.
type Skill struct {
	ID   string
	Name string
}

// Validate checks if the Skill has valid data.
// PRE: Skill struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Skill) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if len(s.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
