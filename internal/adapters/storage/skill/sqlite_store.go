package skill

import (
	"context"
	"database/sql"
	"fmt"

	"folio/internal/adapters/storage"
	domain "folio/internal/domain/skill"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Skill by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Skill, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, name FROM skill WHERE id = ?", id)
	var sk domain.Skill
	err := row.Scan(&sk.ID, &sk.Name)
	if err == sql.ErrNoRows {
		return domain.Skill{}, fmt.Errorf("skill not found: %w", err)
	}
	return sk, err
}

// GetByName retrieves a Skill by exact, case-sensitive name.
// PRE: name is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByName(ctx context.Context, name string) (domain.Skill, error) {
	// BINARY collation keeps the match case-sensitive regardless of column collation.
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM skill WHERE name = ? COLLATE BINARY", name)
	var sk domain.Skill
	err := row.Scan(&sk.ID, &sk.Name)
	if err == sql.ErrNoRows {
		return domain.Skill{}, fmt.Errorf("skill not found: %w", err)
	}
	return sk, err
}

// Save persists a Skill to the database.
// PRE: entity has been validated; name uniqueness checked by the caller
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, sk domain.Skill) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO skill (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name=excluded.name`,
		sk.ID, sk.Name)
	return err
}

// Delete removes a Skill and its project references.
// PRE: id is non-empty
// POST: Skill and its project_skill rows are removed atomically
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM project_skill WHERE skill_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM skill WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// List retrieves all Skills ordered by name.
// POST: Returns skills in ascending name order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Skill, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM skill ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Skill
	for rows.Next() {
		var sk domain.Skill
		if err := rows.Scan(&sk.ID, &sk.Name); err != nil {
			return nil, err
		}
		results = append(results, sk)
	}
	return results, rows.Err()
}
