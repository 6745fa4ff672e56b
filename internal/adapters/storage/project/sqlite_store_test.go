package project

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"folio/internal/adapters/storage"
	skillStore "folio/internal/adapters/storage/skill"
	domain "folio/internal/domain/project"
	skillDomain "folio/internal/domain/skill"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return db
}

// TestProjectList_DisplayOrder verifies ascending display_order retrieval.
func TestProjectList_DisplayOrder(t *testing.T) {
	store := NewSQLiteStore(openTestDB(t))
	ctx := context.Background()

	for _, p := range []domain.Project{
		{ID: "c", Title: "Third", Description: "d", DisplayOrder: 7},
		{ID: "a", Title: "First", Description: "d", DisplayOrder: 0},
		{ID: "b", Title: "Second", Description: "d", DisplayOrder: 3},
	} {
		if err := store.Save(ctx, p); err != nil {
			t.Fatalf("save %s: %v", p.ID, err)
		}
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].DisplayOrder > got[i].DisplayOrder {
			t.Errorf("projects out of order at %d: %d > %d", i,
				got[i-1].DisplayOrder, got[i].DisplayOrder)
		}
	}
}

// TestProjectSave_ReplacesSkillRefs verifies the join set follows the entity.
func TestProjectSave_ReplacesSkillRefs(t *testing.T) {
	db := openTestDB(t)
	store := NewSQLiteStore(db)
	skills := skillStore.NewSQLiteStore(db)
	ctx := context.Background()

	for _, sk := range []skillDomain.Skill{
		{ID: "s1", Name: "Go"}, {ID: "s2", Name: "Python"}, {ID: "s3", Name: "SQL"},
	} {
		if err := skills.Save(ctx, sk); err != nil {
			t.Fatalf("save skill: %v", err)
		}
	}

	p := domain.Project{ID: "p1", Title: "Site", Description: "d", SkillIDs: []string{"s1", "s2"}}
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	p.SkillIDs = []string{"s3"}
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	got, err := store.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.SkillIDs) != 1 || got.SkillIDs[0] != "s3" {
		t.Errorf("skill refs = %v, want [s3]", got.SkillIDs)
	}
}

// TestSkillDelete_RemovesProjectRefs verifies deleting a skill drops only
// the reference, never the project.
func TestSkillDelete_RemovesProjectRefs(t *testing.T) {
	db := openTestDB(t)
	store := NewSQLiteStore(db)
	skills := skillStore.NewSQLiteStore(db)
	ctx := context.Background()

	if err := skills.Save(ctx, skillDomain.Skill{ID: "s1", Name: "Go"}); err != nil {
		t.Fatalf("save skill: %v", err)
	}
	p := domain.Project{ID: "p1", Title: "Site", Description: "d", SkillIDs: []string{"s1"}}
	if err := store.Save(ctx, p); err != nil {
		t.Fatalf("save project: %v", err)
	}

	if err := skills.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete skill: %v", err)
	}

	got, err := store.GetByID(ctx, "p1")
	if err != nil {
		t.Fatalf("project should survive skill deletion: %v", err)
	}
	if len(got.SkillIDs) != 0 {
		t.Errorf("expected no skill refs, got %v", got.SkillIDs)
	}
}
