package project

import (
	"context"

	domain "folio/internal/domain/project"
)

// Store persists Project state, including skill references.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Project, error)
	// Save writes the project row and replaces its skill references in one
	// transaction.
	Save(ctx context.Context, value domain.Project) error
	Delete(ctx context.Context, id string) error
	// List returns projects in ascending display order.
	List(ctx context.Context) ([]domain.Project, error)
}
