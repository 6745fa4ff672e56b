package experience

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"folio/internal/adapters/storage"
	domain "folio/internal/domain/experience"
)

const dateLayout = "2006-01-02"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const experienceColumns = "id, category, title, organization, start_date, end_date, description"

// GetByID retrieves an Experience by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Experience, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+experienceColumns+" FROM experience WHERE id = ?", id)
	e, err := scanExperience(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Experience{}, fmt.Errorf("experience not found: %w", err)
	}
	return e, err
}

// Save persists an Experience to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, e domain.Experience) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO experience (`+experienceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   category=excluded.category, title=excluded.title,
		   organization=excluded.organization, start_date=excluded.start_date,
		   end_date=excluded.end_date, description=excluded.description`,
		e.ID, e.Category, e.Title, e.Organization,
		e.StartDate.Format(dateLayout), nullDate(e.EndDate), e.Description)
	return err
}

// Delete removes an Experience from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM experience WHERE id = ?", id)
	return err
}

// List retrieves all Experiences, newest start date first.
// POST: Returns experiences in non-increasing start_date order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Experience, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+experienceColumns+" FROM experience ORDER BY start_date DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExperiences(rows)
}

// ListByCategory retrieves one category partition, newest start date first.
// PRE: category is a valid category value
// POST: Returns matching experiences in non-increasing start_date order
func (s *SQLiteStore) ListByCategory(ctx context.Context, category string) ([]domain.Experience, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+experienceColumns+" FROM experience WHERE category = ? ORDER BY start_date DESC",
		category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanExperiences(rows)
}

func scanExperiences(rows *sql.Rows) ([]domain.Experience, error) {
	var results []domain.Experience
	for rows.Next() {
		e, err := scanExperience(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

func scanExperience(scan func(dest ...interface{}) error) (domain.Experience, error) {
	var e domain.Experience
	var startDate string
	var endDate sql.NullString
	err := scan(&e.ID, &e.Category, &e.Title, &e.Organization, &startDate, &endDate, &e.Description)
	if err != nil {
		return domain.Experience{}, err
	}
	e.StartDate, _ = time.Parse(dateLayout, startDate)
	if endDate.Valid && endDate.String != "" {
		e.EndDate, _ = time.Parse(dateLayout, endDate.String)
	}
	return e, nil
}

func nullDate(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.Format(dateLayout)
}
