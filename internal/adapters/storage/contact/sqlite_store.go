package contact

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"folio/internal/adapters/storage"
	domain "folio/internal/domain/contact"
)

// Fixed-width fractional seconds and UTC-only storage keep the TEXT column's
// lexicographic order identical to chronological order, which the sent_at
// comparisons rely on.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByID retrieves a Message by its ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Message, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, name, email, message, sent_at FROM contact_message WHERE id = ?", id)
	m, err := scanMessage(row.Scan)
	if err == sql.ErrNoRows {
		return domain.Message{}, fmt.Errorf("message not found: %w", err)
	}
	return m, err
}

// Insert persists a new Message. SentAt is stored as given and never updated.
// PRE: entity has been validated; SentAt is set
// POST: Entity is persisted
func (s *SQLiteStore) Insert(ctx context.Context, m domain.Message) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_message (id, name, email, message, sent_at)
		 VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Email, m.Message, m.SentAt.UTC().Format(timeLayout))
	return err
}

// Delete removes a Message from the database.
// PRE: id is non-empty
// POST: Entity with given id is removed
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM contact_message WHERE id = ?", id)
	return err
}

// List retrieves all Messages, newest first.
// POST: Returns messages in non-increasing sent_at order
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, message, sent_at FROM contact_message ORDER BY sent_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Message
	for rows.Next() {
		m, err := scanMessage(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	return results, rows.Err()
}

// NewestSentAt returns the newest message timestamp, or zero when empty.
func (s *SQLiteStore) NewestSentAt(ctx context.Context) (time.Time, error) {
	var sentAt sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT MAX(sent_at) FROM contact_message").Scan(&sentAt)
	if err != nil {
		return time.Time{}, err
	}
	if !sentAt.Valid || sentAt.String == "" {
		return time.Time{}, nil
	}
	return time.Parse(timeLayout, sentAt.String)
}

// HasNewerThan reports whether any message arrived strictly after t.
// PRE: t is non-zero
// POST: Returns true when a newer message exists
func (s *SQLiteStore) HasNewerThan(ctx context.Context, t time.Time) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contact_message WHERE sent_at > ?",
		t.UTC().Format(timeLayout)).Scan(&count)
	return count > 0, err
}

func scanMessage(scan func(dest ...interface{}) error) (domain.Message, error) {
	var m domain.Message
	var sentAt string
	err := scan(&m.ID, &m.Name, &m.Email, &m.Message, &sentAt)
	if err != nil {
		return domain.Message{}, err
	}
	m.SentAt, _ = time.Parse(timeLayout, sentAt)
	return m, nil
}
