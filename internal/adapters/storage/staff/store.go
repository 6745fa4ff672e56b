package staff

import (
	"context"

	domain "folio/internal/domain/staff"
)

// Store persists staff Account state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Account, error)
	GetByUsername(ctx context.Context, username string) (domain.Account, error)
	Save(ctx context.Context, value domain.Account) error
	Delete(ctx context.Context, id string) error
	// List returns staff accounts ordered by username.
	List(ctx context.Context) ([]domain.Account, error)
	Count(ctx context.Context) (int, error)
}
