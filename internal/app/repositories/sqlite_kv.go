package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/idscan/internal/pkg/logger"
)

const kvTable = "kv_store"

// SQLiteKV keeps values in the kv_store table of a SQLite database.
type SQLiteKV struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewSQLiteKV creates a SQLiteKV over an open database whose schema is in place
func NewSQLiteKV(db *sql.DB) *SQLiteKV {
	return &SQLiteKV{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
}

// Get returns the value stored under key
func (s *SQLiteKV) Get(ctx context.Context, key string) (string, error) {
	query, args, err := s.sb.Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build get value query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		logger.Error().Err(err).Str("key", key).Msg("Error reading value from sqlite")
		return "", fmt.Errorf("error reading value: %w", err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value
func (s *SQLiteKV) Set(ctx context.Context, key, value string) error {
	query, args, err := s.sb.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set value query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Error writing value to sqlite")
		return fmt.Errorf("error writing value: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
