package store

import (
	"context"
	"database/sql"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog"
)

// SQLiteStore persists entries in the kv_entries table created by the
// embedded migrations.
type SQLiteStore struct {
	db     *sql.DB
	clock  clock.Clock
	logger zerolog.Logger
}

func NewSQLiteStore(db *sql.DB, c clock.Clock, logger zerolog.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, clock: c, logger: logger}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read entry")
		return "", err
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, s.clock.Now().UTC())
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write entry")
	}
	return err
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete entry")
	}
	return err
}
