package project

import (
	"context"
	"database/sql"
	"fmt"

	"folio/internal/adapters/storage"
	domain "folio/internal/domain/project"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const projectColumns = "id, title, description, image, repo_url, live_url, display_order"

// GetByID retrieves a Project by its ID, including skill references.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Project, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+projectColumns+" FROM project WHERE id = ?", id)
	p, err := scanProject(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Project{}, fmt.Errorf("project not found: %w", err)
	}
	if err != nil {
		return domain.Project{}, err
	}
	p.SkillIDs, err = s.skillIDs(ctx, p.ID)
	return p, err
}

// Save persists a Project and replaces its skill references.
// PRE: entity has been validated; skill references resolve to existing skills
// POST: Project row and join rows reflect the entity atomically
func (s *SQLiteStore) Save(ctx context.Context, p domain.Project) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO project (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, description=excluded.description,
		   image=excluded.image, repo_url=excluded.repo_url,
		   live_url=excluded.live_url, display_order=excluded.display_order`,
		p.ID, p.Title, p.Description, p.Image, p.RepoURL, p.LiveURL, p.DisplayOrder)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM project_skill WHERE project_id = ?", p.ID); err != nil {
		return err
	}
	for _, skillID := range p.SkillIDs {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO project_skill (project_id, skill_id) VALUES (?, ?)",
			p.ID, skillID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Delete removes a Project and its skill references.
// PRE: id is non-empty
// POST: Project and join rows are removed atomically
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM project_skill WHERE project_id = ?", id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM project WHERE id = ?", id); err != nil {
		return err
	}
	return tx.Commit()
}

// List retrieves all Projects in display order, with skill references.
// POST: Returns projects in non-decreasing display_order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+projectColumns+" FROM project ORDER BY display_order, title")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range results {
		results[i].SkillIDs, err = s.skillIDs(ctx, results[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// skillIDs returns the skill references for a project, ordered by skill name.
func (s *SQLiteStore) skillIDs(ctx context.Context, projectID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT ps.skill_id FROM project_skill ps
		 JOIN skill sk ON sk.id = ps.skill_id
		 WHERE ps.project_id = ? ORDER BY sk.name`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanProject(scan func(dest ...interface{}) error) (domain.Project, error) {
	var p domain.Project
	err := scan(&p.ID, &p.Title, &p.Description, &p.Image,
		&p.RepoURL, &p.LiveURL, &p.DisplayOrder)
	if err != nil {
		return domain.Project{}, err
	}
	return p, nil
}
