package contact

import (
	"context"
	"time"

	domain "folio/internal/domain/contact"
)

// Store persists contact Message state. Messages are immutable after
// creation; there is no update operation.
type Store interface {
	GetByID(ctx context.Context, id string) (domain.Message, error)
	Insert(ctx context.Context, value domain.Message) error
	Delete(ctx context.Context, id string) error
	// List returns messages newest first.
	List(ctx context.Context) ([]domain.Message, error)
	// NewestSentAt returns the sent_at of the newest message, or the zero
	// time when no messages exist.
	NewestSentAt(ctx context.Context) (time.Time, error)
	// HasNewerThan reports whether any message has sent_at strictly after t.
	HasNewerThan(ctx context.Context, t time.Time) (bool, error)
}
