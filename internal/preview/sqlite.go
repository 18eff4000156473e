package preview

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ziadkadry99/foodee/internal/db"
)

// SQLiteStore keeps entries in the preview_entries table, scoped by origin.
type SQLiteStore struct {
	db     *db.DB
	origin string
}

// NewSQLiteStore creates a store for origin backed by the given database.
func NewSQLiteStore(database *db.DB, origin string) *SQLiteStore {
	return &SQLiteStore{db: database, origin: origin}
}

// Get implements Store.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM preview_entries WHERE scope = ? AND key = ?",
		s.origin, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preview entry: %w", err)
	}
	return value, true, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preview_entries (scope, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(scope, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		s.origin, key, value,
	)
	if err != nil {
		return fmt.Errorf("writing preview entry: %w", err)
	}
	return nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM preview_entries WHERE scope = ? AND key = ?",
		s.origin, key,
	)
	if err != nil {
		return fmt.Errorf("deleting preview entry: %w", err)
	}
	return nil
}
