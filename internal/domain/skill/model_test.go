package skill_test

import (
	"strings"
	"testing"

	"folio/internal/domain/skill"
)

// TestSkill_Validate tests validation of Skill.
func TestSkill_Validate(t *testing.T) {
	valid := skill.Skill{ID: "1", Name: "Go"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid skill: %v", err)
	}

	empty := skill.Skill{ID: "2", Name: "  "}
	if err := empty.Validate(); err == nil {
		t.Error("expected error for blank name")
	}

	long := skill.Skill{ID: "3", Name: strings.Repeat("x", skill.MaxNameLength+1)}
	if err := long.Validate(); err == nil {
		t.Error("expected error for overlong name")
	}
}
