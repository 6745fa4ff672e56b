package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"folio/internal/domain/project"
)

// ProjectStoreForOrchestrator defines the store interface needed by project orchestrators.
type ProjectStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (project.Project, error)
	Save(ctx context.Context, p project.Project) error
	Delete(ctx context.Context, id string) error
}

// ProjectInput carries submitted project fields.
type ProjectInput struct {
	Title        string
	Description  string
	Image        string // media path; empty keeps the existing image on update
	SkillIDs     []string
	RepoURL      string
	LiveURL      string
	DisplayOrder int
}

// ProjectDeps holds dependencies for the project orchestrators.
type ProjectDeps struct {
	ProjectStore ProjectStoreForOrchestrator
	SkillStore   SkillStoreForOrchestrator
	GenerateID   func() string
}

// ExecuteCreateProject creates a new project.
// Every skill reference must resolve; an invalid reference is rejected.
// PRE: input fields are as submitted
// POST: Project is persisted with its references, or no change on error
func ExecuteCreateProject(ctx context.Context, input ProjectInput, deps ProjectDeps) (project.Project, error) {
	p := project.Project{
		ID:           deps.GenerateID(),
		Title:        input.Title,
		Description:  input.Description,
		Image:        input.Image,
		SkillIDs:     input.SkillIDs,
		RepoURL:      input.RepoURL,
		LiveURL:      input.LiveURL,
		DisplayOrder: input.DisplayOrder,
	}
	if err := p.Validate(); err != nil {
		return project.Project{}, err
	}
	if err := resolveSkillRefs(ctx, deps.SkillStore, p.SkillIDs); err != nil {
		return project.Project{}, err
	}
	if err := deps.ProjectStore.Save(ctx, p); err != nil {
		return project.Project{}, err
	}
	slog.Info("project_created", "id", p.ID, "title", p.Title)
	return p, nil
}

// ExecuteUpdateProject updates an existing project.
// PRE: id resolves to an existing project
// POST: Project reflects the input; missing id is a not-found error
func ExecuteUpdateProject(ctx context.Context, id string, input ProjectInput, deps ProjectDeps) (project.Project, error) {
	p, err := deps.ProjectStore.GetByID(ctx, id)
	if err != nil {
		return project.Project{}, err
	}
	p.Title = input.Title
	p.Description = input.Description
	p.SkillIDs = input.SkillIDs
	p.RepoURL = input.RepoURL
	p.LiveURL = input.LiveURL
	p.DisplayOrder = input.DisplayOrder
	if input.Image != "" {
		p.Image = input.Image
	}
	if err := p.Validate(); err != nil {
		return project.Project{}, err
	}
	if err := resolveSkillRefs(ctx, deps.SkillStore, p.SkillIDs); err != nil {
		return project.Project{}, err
	}
	if err := deps.ProjectStore.Save(ctx, p); err != nil {
		return project.Project{}, err
	}
	slog.Info("project_updated", "id", p.ID, "title", p.Title)
	return p, nil
}

// ExecuteDeleteProject removes a project.
// PRE: id resolves to an existing project
// POST: Project and its skill references are gone; skills are untouched
func ExecuteDeleteProject(ctx context.Context, id string, deps ProjectDeps) error {
	if _, err := deps.ProjectStore.GetByID(ctx, id); err != nil {
		return err
	}
	if err := deps.ProjectStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("project_deleted", "id", id)
	return nil
}

// resolveSkillRefs rejects any reference that does not resolve to a skill.
func resolveSkillRefs(ctx context.Context, skills SkillStoreForOrchestrator, ids []string) error {
	for _, id := range ids {
		if _, err := skills.GetByID(ctx, id); err != nil {
			return fmt.Errorf("unknown skill reference %q: %w", id, err)
		}
	}
	return nil
}
