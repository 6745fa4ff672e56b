package profile

import (
	"context"
	"database/sql"
	"fmt"

	"folio/internal/adapters/storage"
	domain "folio/internal/domain/profile"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const profileColumns = "id, name, title, bio, profile_image, cv_file, email, github_url, linkedin_url"

// Get retrieves the singleton Profile.
// POST: Returns the profile or an error wrapping sql.ErrNoRows
func (s *SQLiteStore) Get(ctx context.Context) (domain.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profile LIMIT 1")
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return domain.Profile{}, fmt.Errorf("profile not found: %w", err)
	}
	return p, err
}

// GetByID retrieves the Profile by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+profileColumns+" FROM profile WHERE id = ?", id)
	p, err := scanProfile(row)
	if err == sql.ErrNoRows {
		return domain.Profile{}, fmt.Errorf("profile not found: %w", err)
	}
	return p, err
}

// Insert creates the profile only when the table is empty. The guard runs in
// the same statement, so concurrent first inserts cannot both succeed.
// PRE: entity has been validated
// POST: At most one profile row exists
func (s *SQLiteStore) Insert(ctx context.Context, p domain.Profile) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profile (`+profileColumns+`)
		 SELECT ?, ?, ?, ?, ?, ?, ?, ?, ?
		 WHERE NOT EXISTS (SELECT 1 FROM profile)`,
		p.ID, p.Name, p.Title, p.Bio, p.ProfileImage, p.CVFile,
		p.Email, p.GitHubURL, p.LinkedInURL)
	return err
}

// Update mutates the existing profile row.
// PRE: entity has been validated and exists
// POST: Row is updated; returns an error wrapping sql.ErrNoRows for unknown IDs
func (s *SQLiteStore) Update(ctx context.Context, p domain.Profile) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE profile SET name = ?, title = ?, bio = ?, profile_image = ?,
		   cv_file = ?, email = ?, github_url = ?, linkedin_url = ?
		 WHERE id = ?`,
		p.Name, p.Title, p.Bio, p.ProfileImage, p.CVFile,
		p.Email, p.GitHubURL, p.LinkedInURL, p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("profile not found: %w", sql.ErrNoRows)
	}
	return nil
}

// Count returns the number of profile rows (0 or 1).
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profile").Scan(&count)
	return count, err
}

func scanProfile(row *sql.Row) (domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(&p.ID, &p.Name, &p.Title, &p.Bio, &p.ProfileImage,
		&p.CVFile, &p.Email, &p.GitHubURL, &p.LinkedInURL)
	if err != nil {
		return domain.Profile{}, err
	}
	return p, nil
}
