package orchestrators

import (
	"context"
	"log/slog"

	"folio/internal/domain/skill"
)

// SkillStoreForOrchestrator defines the store interface needed by skill orchestrators.
type SkillStoreForOrchestrator interface {
	GetByID(ctx context.Context, id string) (skill.Skill, error)
	GetByName(ctx context.Context, name string) (skill.Skill, error)
	Save(ctx context.Context, s skill.Skill) error
	Delete(ctx context.Context, id string) error
}

// SkillDeps holds dependencies for the skill orchestrators.
type SkillDeps struct {
	SkillStore SkillStoreForOrchestrator
	GenerateID func() string
}

// ExecuteCreateSkill creates a new skill after checking name uniqueness.
// Uniqueness is a case-sensitive exact match; violating it is a validation
// error, never a silent overwrite.
// PRE: Name is the submitted skill name
// POST: Skill is persisted with a generated ID, or no change on error
func ExecuteCreateSkill(ctx context.Context, name string, deps SkillDeps) (skill.Skill, error) {
	s := skill.Skill{ID: deps.GenerateID(), Name: name}
	if err := s.Validate(); err != nil {
		return skill.Skill{}, err
	}
	if _, err := deps.SkillStore.GetByName(ctx, s.Name); err == nil {
		return skill.Skill{}, skill.ErrDuplicateName
	}
	if err := deps.SkillStore.Save(ctx, s); err != nil {
		return skill.Skill{}, err
	}
	slog.Info("skill_created", "id", s.ID, "name", s.Name)
	return s, nil
}

// ExecuteUpdateSkill renames an existing skill.
// PRE: id resolves to an existing skill
// POST: Skill is renamed, or unchanged on error; missing id is a not-found error
func ExecuteUpdateSkill(ctx context.Context, id, name string, deps SkillDeps) (skill.Skill, error) {
	s, err := deps.SkillStore.GetByID(ctx, id)
	if err != nil {
		return skill.Skill{}, err
	}
	s.Name = name
	if err := s.Validate(); err != nil {
		return skill.Skill{}, err
	}
	if existing, err := deps.SkillStore.GetByName(ctx, s.Name); err == nil && existing.ID != s.ID {
		return skill.Skill{}, skill.ErrDuplicateName
	}
	if err := deps.SkillStore.Save(ctx, s); err != nil {
		return skill.Skill{}, err
	}
	slog.Info("skill_updated", "id", s.ID, "name", s.Name)
	return s, nil
}

// ExecuteDeleteSkill removes a skill and its project references.
// PRE: id resolves to an existing skill
// POST: Skill is gone; projects that referenced it lose only the reference
func ExecuteDeleteSkill(ctx context.Context, id string, deps SkillDeps) error {
	if _, err := deps.SkillStore.GetByID(ctx, id); err != nil {
		return err
	}
	if err := deps.SkillStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.Info("skill_deleted", "id", id)
	return nil
}
