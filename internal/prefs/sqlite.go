package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/asif-cs/portfolio/internal/db"
)

// SQLiteStore keeps preferences for every client in one database. Used
// directly it reads and writes the shared, client-less scope.
type SQLiteStore struct {
	db *db.DB
}

// NewSQLiteStore wraps an opened database.
func NewSQLiteStore(d *db.DB) *SQLiteStore {
	return &SQLiteStore{db: d}
}

// ForClient returns a store scoped to one browser client.
func (s *SQLiteStore) ForClient(id string) Store {
	return &clientStore{db: s.db, client: id}
}

// Touch records that a client was seen, creating it on first contact.
func (s *SQLiteStore) Touch(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO clients (id) VALUES (?)
		ON CONFLICT(id) DO UPDATE SET last_seen = datetime('now')`, id)
	if err != nil {
		return fmt.Errorf("touching client %s: %w", id, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	return get(ctx, s.db, "", key)
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return set(ctx, s.db, "", key, value)
}

type clientStore struct {
	db     *db.DB
	client string
}

func (c *clientStore) Get(ctx context.Context, key string) (string, bool, error) {
	return get(ctx, c.db, c.client, key)
}

func (c *clientStore) Set(ctx context.Context, key, value string) error {
	return set(ctx, c.db, c.client, key, value)
}

func get(ctx context.Context, d *db.DB, client, key string) (string, bool, error) {
	var value string
	err := d.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE client_id = ? AND key = ?`, client, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading preference %s: %w", key, err)
	}
	return value, true, nil
}

func set(ctx context.Context, d *db.DB, client, key, value string) error {
	_, err := d.ExecContext(ctx, `
		INSERT INTO preferences (client_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(client_id, key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')`,
		client, key, value)
	if err != nil {
		return fmt.Errorf("writing preference %s: %w", key, err)
	}
	return nil
}
