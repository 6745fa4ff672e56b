package staff

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"folio/internal/adapters/storage"
	domain "folio/internal/domain/staff"
)

const timeLayout = "2006-01-02T15:04:05.999999999Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const accountColumns = "id, username, email, password_hash, is_staff, is_superuser, created_at, failed_logins, locked_until"

// GetByID retrieves an Account by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM staff_account WHERE id = ?", id)
	a, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("staff account not found: %w", err)
	}
	return a, err
}

// GetByUsername retrieves an Account by username.
// PRE: username is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+accountColumns+" FROM staff_account WHERE username = ?", username)
	a, err := scanAccount(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Account{}, fmt.Errorf("staff account not found: %w", err)
	}
	return a, err
}

// Save persists an Account to the database.
// PRE: entity has been validated
// POST: Entity is persisted (insert or update)
func (s *SQLiteStore) Save(ctx context.Context, a domain.Account) error {
	var lockedUntil interface{}
	if !a.LockedUntil.IsZero() {
		lockedUntil = a.LockedUntil.Format(timeLayout)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO staff_account (`+accountColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   username=excluded.username, email=excluded.email,
		   password_hash=excluded.password_hash, is_staff=excluded.is_staff,
		   is_superuser=excluded.is_superuser, failed_logins=excluded.failed_logins,
		   locked_until=excluded.locked_until`,
		a.ID, a.Username, a.Email, a.PasswordHash, boolToInt(a.IsStaff),
		boolToInt(a.IsSuperuser), a.CreatedAt.Format(timeLayout),
		a.FailedLogins, lockedUntil)
	return err
}

// Delete removes an Account from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM staff_account WHERE id = ?", id)
	return err
}

// List retrieves all staff accounts ordered by username.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+accountColumns+" FROM staff_account ORDER BY username")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Account
	for rows.Next() {
		a, err := scanAccount(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, a)
	}
	return results, rows.Err()
}

// Count returns the total number of staff accounts.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM staff_account").Scan(&count)
	return count, err
}

func scanAccount(scan func(dest ...interface{}) error) (domain.Account, error) {
	var a domain.Account
	var isStaff, isSuperuser int
	var createdAt string
	var lockedUntil sql.NullString
	err := scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash,
		&isStaff, &isSuperuser, &createdAt, &a.FailedLogins, &lockedUntil)
	if err != nil {
		return domain.Account{}, err
	}
	a.IsStaff = isStaff != 0
	a.IsSuperuser = isSuperuser != 0
	a.CreatedAt, _ = time.Parse(timeLayout, createdAt)
	if lockedUntil.Valid && lockedUntil.String != "" {
		a.LockedUntil, _ = time.Parse(timeLayout, lockedUntil.String)
	}
	return a, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
