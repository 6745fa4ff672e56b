package experience

import (
	"context"

	domain "folio/internal/domain/experience"
)

// Store persists Experience state.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Experience, error)
	Save(ctx context.Context, value domain.Experience) error
	Delete(ctx context.Context, id string) error
	// List returns experiences in descending start-date order.
	List(ctx context.Context) ([]domain.Experience, error)
	// ListByCategory returns one category partition, same ordering.
	ListByCategory(ctx context.Context, category string) ([]domain.Experience, error)
}
