package orchestrators

import (
	"context"
	"errors"
	"testing"

	"folio/internal/domain/project"
	"folio/internal/domain/skill"
)

// mockProjectStore implements ProjectStoreForOrchestrator for testing.
type mockProjectStore struct {
	projects map[string]project.Project
}

func newMockProjectStore() *mockProjectStore {
	return &mockProjectStore{projects: make(map[string]project.Project)}
}

func (m *mockProjectStore) GetByID(_ context.Context, id string) (project.Project, error) {
	p, ok := m.projects[id]
	if !ok {
		return project.Project{}, errors.New("not found")
	}
	return p, nil
}

func (m *mockProjectStore) Save(_ context.Context, p project.Project) error {
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectStore) Delete(_ context.Context, id string) error {
	delete(m.projects, id)
	return nil
}

func newProjectDeps() (ProjectDeps, *mockProjectStore, *mockSkillStore) {
	projects := newMockProjectStore()
	skills := newMockSkillStore()
	return ProjectDeps{
		ProjectStore: projects,
		SkillStore:   skills,
		GenerateID:   seqID(),
	}, projects, skills
}

// TestExecuteCreateProject tests creation with resolving skill references.
func TestExecuteCreateProject(t *testing.T) {
	deps, projects, skills := newProjectDeps()
	skills.skills["s1"] = skill.Skill{ID: "s1", Name: "Go"}

	p, err := ExecuteCreateProject(context.Background(), ProjectInput{
		Title:       "Tracker",
		Description: "Tracks things",
		SkillIDs:    []string{"s1"},
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(projects.projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(projects.projects))
	}
	if len(p.SkillIDs) != 1 || p.SkillIDs[0] != "s1" {
		t.Errorf("SkillIDs = %v", p.SkillIDs)
	}
}

// TestExecuteCreateProject_UnknownSkillRef tests that a dangling reference
// is rejected before anything is stored.
func TestExecuteCreateProject_UnknownSkillRef(t *testing.T) {
	deps, projects, skills := newProjectDeps()
	skills.skills["s1"] = skill.Skill{ID: "s1", Name: "Go"}

	_, err := ExecuteCreateProject(context.Background(), ProjectInput{
		Title:       "Tracker",
		Description: "Habit tracker",
		SkillIDs:    []string{"s1", "ghost"},
	}, deps)
	if err == nil {
		t.Fatal("expected unknown-reference error")
	}
	if len(projects.projects) != 0 {
		t.Error("project was persisted despite bad reference")
	}
}

// TestExecuteUpdateProject_KeepsImageWhenEmpty tests the image-preserving
// update path.
func TestExecuteUpdateProject_KeepsImageWhenEmpty(t *testing.T) {
	deps, projects, _ := newProjectDeps()
	projects.projects["p1"] = project.Project{
		ID: "p1", Title: "Tracker", Image: "media/projects/shot.png",
	}

	p, err := ExecuteUpdateProject(context.Background(), "p1", ProjectInput{
		Title:       "Tracker v2",
		Description: "Habit tracker",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Image != "media/projects/shot.png" {
		t.Errorf("Image = %q, want stored path kept", p.Image)
	}
	if p.Title != "Tracker v2" {
		t.Errorf("Title = %q", p.Title)
	}
}

// TestExecuteUpdateProject_ReplacesSkillRefs tests that an update swaps the
// full reference set.
func TestExecuteUpdateProject_ReplacesSkillRefs(t *testing.T) {
	deps, projects, skills := newProjectDeps()
	skills.skills["s1"] = skill.Skill{ID: "s1", Name: "Go"}
	skills.skills["s2"] = skill.Skill{ID: "s2", Name: "SQL"}
	projects.projects["p1"] = project.Project{
		ID: "p1", Title: "Tracker", SkillIDs: []string{"s1"},
	}

	p, err := ExecuteUpdateProject(context.Background(), "p1", ProjectInput{
		Title:       "Tracker",
		Description: "Habit tracker",
		SkillIDs:    []string{"s2"},
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.SkillIDs) != 1 || p.SkillIDs[0] != "s2" {
		t.Errorf("SkillIDs = %v, want [s2]", p.SkillIDs)
	}
}

// TestExecuteDeleteProject tests removal and the missing-id path.
func TestExecuteDeleteProject(t *testing.T) {
	deps, projects, _ := newProjectDeps()
	projects.projects["p1"] = project.Project{ID: "p1", Title: "Tracker"}

	if err := ExecuteDeleteProject(context.Background(), "p1", deps); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(projects.projects) != 0 {
		t.Error("project still present")
	}
	if err := ExecuteDeleteProject(context.Background(), "p1", deps); err == nil {
		t.Error("expected not-found error")
	}
}
