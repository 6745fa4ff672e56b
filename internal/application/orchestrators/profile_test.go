package orchestrators

import (
	"context"
	"errors"
	"testing"

	"folio/internal/domain/profile"
)

// mockProfileStore implements ProfileStoreForOrchestrator for testing.
type mockProfileStore struct {
	profiles map[string]profile.Profile
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{profiles: make(map[string]profile.Profile)}
}

func (m *mockProfileStore) GetByID(_ context.Context, id string) (profile.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return profile.Profile{}, errors.New("not found")
	}
	return p, nil
}

func (m *mockProfileStore) Insert(_ context.Context, p profile.Profile) error {
	if len(m.profiles) > 0 {
		return nil // singleton guard: extra inserts are silent no-ops
	}
	m.profiles[p.ID] = p
	return nil
}

func (m *mockProfileStore) Update(_ context.Context, p profile.Profile) error {
	if _, ok := m.profiles[p.ID]; !ok {
		return errors.New("not found")
	}
	m.profiles[p.ID] = p
	return nil
}

func (m *mockProfileStore) Count(_ context.Context) (int, error) {
	return len(m.profiles), nil
}

// TestExecuteUpdateProfile tests updating the singleton record.
func TestExecuteUpdateProfile(t *testing.T) {
	store := newMockProfileStore()
	store.profiles["p1"] = profile.Profile{
		ID: "p1", Name: "Old Name", ProfileImage: "media/images/old.png",
	}
	deps := ProfileDeps{ProfileStore: store, GenerateID: seqID()}

	p, err := ExecuteUpdateProfile(context.Background(), "p1", UpdateProfileInput{
		Name:  "Ana Quim",
		Title: "Backend Engineer",
		Email: "ana@example.com",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "Ana Quim" || p.Title != "Backend Engineer" {
		t.Errorf("fields not applied: %+v", p)
	}
	// No new image submitted, the stored one survives.
	if p.ProfileImage != "media/images/old.png" {
		t.Errorf("ProfileImage = %q, want stored path kept", p.ProfileImage)
	}
}

// TestExecuteUpdateProfile_ReplacesMedia tests that submitted media paths win.
func TestExecuteUpdateProfile_ReplacesMedia(t *testing.T) {
	store := newMockProfileStore()
	store.profiles["p1"] = profile.Profile{
		ID: "p1", Name: "Ana", ProfileImage: "media/images/old.png", CVFile: "media/cv/old.pdf",
	}
	deps := ProfileDeps{ProfileStore: store, GenerateID: seqID()}

	p, err := ExecuteUpdateProfile(context.Background(), "p1", UpdateProfileInput{
		Name:         "Ana",
		ProfileImage: "media/images/new.png",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ProfileImage != "media/images/new.png" {
		t.Errorf("ProfileImage = %q, want new path", p.ProfileImage)
	}
	if p.CVFile != "media/cv/old.pdf" {
		t.Errorf("CVFile = %q, want stored path kept", p.CVFile)
	}
}

// TestExecuteUpdateProfile_NotFound tests the missing-id path.
func TestExecuteUpdateProfile_NotFound(t *testing.T) {
	deps := ProfileDeps{ProfileStore: newMockProfileStore(), GenerateID: seqID()}
	if _, err := ExecuteUpdateProfile(context.Background(), "missing", UpdateProfileInput{Name: "x"}, deps); err == nil {
		t.Error("expected not-found error")
	}
}

// TestExecuteUpdateProfile_Invalid tests that validation failures leave the
// stored record untouched.
func TestExecuteUpdateProfile_Invalid(t *testing.T) {
	store := newMockProfileStore()
	store.profiles["p1"] = profile.Profile{ID: "p1", Name: "Ana"}
	deps := ProfileDeps{ProfileStore: store, GenerateID: seqID()}

	if _, err := ExecuteUpdateProfile(context.Background(), "p1", UpdateProfileInput{Name: ""}, deps); err == nil {
		t.Fatal("expected validation error for empty name")
	}
	if store.profiles["p1"].Name != "Ana" {
		t.Error("stored profile was mutated")
	}
}

// TestExecuteSeedProfile tests placeholder seeding and its idempotence.
func TestExecuteSeedProfile(t *testing.T) {
	store := newMockProfileStore()
	deps := ProfileDeps{ProfileStore: store, GenerateID: seqID()}

	if err := ExecuteSeedProfile(context.Background(), deps); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if len(store.profiles) != 1 {
		t.Fatalf("got %d profiles, want 1", len(store.profiles))
	}
	var seeded profile.Profile
	for _, p := range store.profiles {
		seeded = p
	}
	if seeded.Name == "" || seeded.Title == "" {
		t.Errorf("placeholder fields empty: %+v", seeded)
	}

	if err := ExecuteSeedProfile(context.Background(), deps); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if len(store.profiles) != 1 {
		t.Errorf("got %d profiles after re-seed, want 1", len(store.profiles))
	}
}
