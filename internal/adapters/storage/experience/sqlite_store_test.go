package experience

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"folio/internal/adapters/storage"
	domain "folio/internal/domain/experience"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return NewSQLiteStore(db)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedExperiences(t *testing.T, store *SQLiteStore) {
	t.Helper()
	ctx := context.Background()
	for _, e := range []domain.Experience{
		{ID: "e1", Category: domain.CategoryWork, Title: "Junior Dev", Organization: "Acme", StartDate: day(2018, 1, 1), EndDate: day(2020, 6, 30)},
		{ID: "e2", Category: domain.CategoryWork, Title: "Senior Dev", Organization: "Beta", StartDate: day(2022, 3, 1)},
		{ID: "e3", Category: domain.CategoryEducation, Title: "B.S. CS", Organization: "State U", StartDate: day(2014, 9, 1), EndDate: day(2018, 6, 1)},
	} {
		if err := store.Save(ctx, e); err != nil {
			t.Fatalf("save %s: %v", e.ID, err)
		}
	}
}

// TestExperienceList_NewestFirst verifies descending start_date ordering.
func TestExperienceList_NewestFirst(t *testing.T) {
	store := openTestStore(t)
	seedExperiences(t, store)

	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 experiences, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].StartDate.Before(got[i].StartDate) {
			t.Errorf("experiences out of order at %d: %v before %v", i,
				got[i-1].StartDate, got[i].StartDate)
		}
	}
}

// TestExperienceListByCategory verifies category partitioning.
func TestExperienceListByCategory(t *testing.T) {
	store := openTestStore(t)
	seedExperiences(t, store)
	ctx := context.Background()

	work, err := store.ListByCategory(ctx, domain.CategoryWork)
	if err != nil {
		t.Fatalf("list work: %v", err)
	}
	if len(work) != 2 {
		t.Errorf("expected 2 work entries, got %d", len(work))
	}

	education, err := store.ListByCategory(ctx, domain.CategoryEducation)
	if err != nil {
		t.Fatalf("list education: %v", err)
	}
	if len(education) != 1 || education[0].ID != "e3" {
		t.Errorf("expected education entry e3, got %v", education)
	}
}

// TestExperienceEndDateRoundTrip verifies the current-entry NULL handling.
func TestExperienceEndDateRoundTrip(t *testing.T) {
	store := openTestStore(t)
	seedExperiences(t, store)
	ctx := context.Background()

	current, err := store.GetByID(ctx, "e2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !current.IsCurrent() {
		t.Errorf("e2 should be current, got EndDate %v", current.EndDate)
	}

	finished, err := store.GetByID(ctx, "e1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if finished.IsCurrent() {
		t.Error("e1 should not be current")
	}
	if !finished.EndDate.Equal(day(2020, 6, 30)) {
		t.Errorf("end date = %v, want 2020-06-30", finished.EndDate)
	}
}
