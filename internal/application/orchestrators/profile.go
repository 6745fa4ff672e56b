package orchestrators

import (
	"context"
	"log/slog"

	"folio/internal/domain/profile"
)

// ProfileStoreForOrchestrator defines the store interface needed by profile orchestrators.
type ProfileStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (profile.Profile, error)
	Insert(ctx context.Context, p profile.Profile) error
	Update(ctx context.Context, p profile.Profile) error
	Count(ctx context.Context) (int, error)
}

// UpdateProfileInput carries submitted profile fields. Empty media paths keep
// the stored ones; there is no way to clear an uploaded file here.
type UpdateProfileInput struct {
	Name         string
	Title        string
	Bio          string
	ProfileImage string
	CVFile       string
	Email        string
	GitHubURL    string
	LinkedInURL  string
}

// ProfileDeps holds dependencies for the profile orchestrators.
type ProfileDeps struct {
	ProfileStore ProfileStoreForOrchestrator
	GenerateID   func() string
}

// ExecuteUpdateProfile updates the singleton profile record. There is no
// create path: the record is seeded at startup and only ever mutated.
// PRE: id resolves to the existing profile
// POST: Profile reflects the input; missing id is a not-found error
func ExecuteUpdateProfile(ctx context.Context, id string, input UpdateProfileInput, deps ProfileDeps) (profile.Profile, error) {
	p, err := deps.ProfileStore.GetByID(ctx, id)
	if err != nil {
		return profile.Profile{}, err
	}
	p.Name = input.Name
	p.Title = input.Title
	p.Bio = input.Bio
	p.Email = input.Email
	p.GitHubURL = input.GitHubURL
	p.LinkedInURL = input.LinkedInURL
	if input.ProfileImage != "" {
		p.ProfileImage = input.ProfileImage
	}
	if input.CVFile != "" {
		p.CVFile = input.CVFile
	}
	if err := p.Validate(); err != nil {
		return profile.Profile{}, err
	}
	if err := deps.ProfileStore.Update(ctx, p); err != nil {
		return profile.Profile{}, err
	}
	slog.Info("profile_updated", "id", p.ID, "name", p.Name)
	return p, nil
}

// ExecuteSeedProfile inserts a placeholder profile when none exists, so the
// dashboard's update path always has a target. Runs at startup; a second run
// is a no-op thanks to the store's singleton guard.
// POST: Exactly one profile row exists
func ExecuteSeedProfile(ctx context.Context, deps ProfileDeps) error {
	count, err := deps.ProfileStore.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	p := profile.Profile{
		ID:    deps.GenerateID(),
		Name:  "Your Name",
		Title: "Full-Stack Developer",
	}
	if err := deps.ProfileStore.Insert(ctx, p); err != nil {
		return err
	}
	slog.Info("profile_seeded", "id", p.ID)
	return nil
}
