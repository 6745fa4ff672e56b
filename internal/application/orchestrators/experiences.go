package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"folio/internal/domain/experience"
)

// ExperienceStoreForOrchestrator defines the store interface needed by experience orchestrators.
type ExperienceStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (experience.Experience, error)
	Save(ctx context.Context, e experience.Experience) error
	Delete(ctx context.Context, id string) error
}

// ExperienceInput carries submitted experience fields.
type ExperienceInput struct {
	Category     string
	Title        string
	Organization string
	StartDate    time.Time
	EndDate      time.Time // zero value = current
	Description  string
}

// ExperienceDeps holds dependencies for the experience orchestrators.
type ExperienceDeps struct {
	ExperienceStore ExperienceStoreForOrchestrator
	GenerateID      func() string
}

// ExecuteCreateExperience creates a new work or education entry.
// PRE: input fields are as submitted
// POST: Experience is persisted, or no change on validation error
func ExecuteCreateExperience(ctx context.Context, input ExperienceInput, deps ExperienceDeps) (experience.Experience, error) {
	e := experience.Experience{
		ID:           deps.GenerateID(),
		Category:     input.Category,
		Title:        input.Title,
		Organization: input.Organization,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Description:  input.Description,
	}
	if err := e.Validate(); err != nil {
		return experience.Experience{}, err
	}
	if err := deps.ExperienceStore.Save(ctx, e); err != nil {
		return experience.Experience{}, err
	}
	slog.Info("experience_created", "id", e.ID, "category", e.Category, "title", e.Title)
	return e, nil
}

// ExecuteUpdateExperience updates an existing entry.
// PRE: id resolves to an existing experience
// POST: Experience reflects the input; missing id is a not-found error
func ExecuteUpdateExperience(ctx context.Context, id string, input ExperienceInput, deps ExperienceDeps) (experience.Experience, error) {
	e, err := deps.ExperienceStore.GetByID(ctx, id)
	if err != nil {
		return experience.Experience{}, err
	}
	e.Category = input.Category
	e.Title = input.Title
	e.Organization = input.Organization
	e.StartDate = input.StartDate
	e.EndDate = input.EndDate
	e.Description = input.Description
	if err := e.Validate(); err != nil {
		return experience.Experience{}, err
	}
	if err := deps.ExperienceStore.Save(ctx, e); err != nil {
		return experience.Experience{}, err
	}
	slog.Info("experience_updated", "id", e.ID, "title", e.Title)
	return e, nil
}

// ExecuteDeleteExperience removes an entry.
// PRE: id resolves to an existing experience
// POST: Experience is gone
func ExecuteDeleteExperience(ctx context.Context, id string, deps ExperienceDeps) error {
	if _, err := deps.ExperienceStore.GetByID(ctx, id); err != nil {
		return err
	}
	if err := deps.ExperienceStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("experience_deleted", "id", id)
	return nil
}
