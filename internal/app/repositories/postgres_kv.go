package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/idscan/internal/pkg/dberrors"
	"github.com/yigit/idscan/internal/pkg/logger"
)

// ErrSchemaMissing means kv_store does not exist; the migrations have not run.
var ErrSchemaMissing = errors.New("kv_store table is missing; run the database migrations")

// PostgresKV keeps values in the kv_store table of a PostgreSQL database.
type PostgresKV struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresKV creates a new PostgresKV
func NewPostgresKV(db *pgxpool.Pool) *PostgresKV {
	return &PostgresKV{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Get returns the value stored under key
func (r *PostgresKV) Get(ctx context.Context, key string) (string, error) {
	sql, args, err := r.sb.Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get value SQL")
		return "", fmt.Errorf("failed to build get value query: %w", err)
	}

	var value string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrKeyNotFound
		}
		if dberrors.IsUndefinedTable(err) {
			return "", fmt.Errorf("%w: %v", ErrSchemaMissing, err)
		}
		logger.Error().Err(err).Str("key", key).Msg("Error scanning value row")
		return "", fmt.Errorf("error getting value: %w", err)
	}
	return value, nil
}

// Set upserts value under key
func (r *PostgresKV) Set(ctx context.Context, key, value string) error {
	sql, args, err := r.sb.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building set value SQL")
		return fmt.Errorf("failed to build set value query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUndefinedTable(err) {
			return fmt.Errorf("%w: %v", ErrSchemaMissing, err)
		}
		logger.Error().Err(err).Str("key", key).Msg("Error executing set value query")
		return fmt.Errorf("error setting value: %w", err)
	}
	return nil
}

// Close is a no-op; the pool is owned by db.PostgresDB
func (r *PostgresKV) Close() error {
	return nil
}
