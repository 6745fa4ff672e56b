package skill

import (
	"context"

	domain "folio/internal/domain/skill"
)

// Store persists Skill state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Skill, error)
	GetByName(ctx context.Context, name string) (domain.Skill, error)
	Save(ctx context.Context, value domain.Skill) error
	// Delete removes the skill and any project references to it in one
	// transaction. Projects themselves are untouched.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Skill, error)
}
