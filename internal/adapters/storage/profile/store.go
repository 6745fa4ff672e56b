package profile

import (
	"context"

	domain "folio/internal/domain/profile"
)

// Store persists the singleton Profile record.
type Store interface {
	// Get returns the profile, or an error wrapping sql.ErrNoRows if none exists.
	Get(ctx context.Context) (domain.Profile, error)
	GetByID(ctx context.Context, id string) (domain.Profile, error)
	// Insert creates the profile only when no profile exists yet.
	// A second insert is a silent no-op; the existing record is untouched.
	Insert(ctx context.Context, value domain.Profile) error
	// Update mutates the existing profile by ID; unknown ID is an error.
	Update(ctx context.Context, value domain.Profile) error
	Count(ctx context.Context) (int, error)
}
