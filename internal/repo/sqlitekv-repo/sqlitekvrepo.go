package sqlitekvrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // драйвер sqlite3
	"go.uber.org/zap"
)

const (
	getQuery    = `SELECT value FROM kv_entries WHERE key = ?`
	upsertQuery = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Connect opens the sqlite file at path. A single connection is kept so
// in-memory databases survive between queries.
func Connect(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.GetContext(ctx, &value, getQuery, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		zap.L().Error("can't read entry", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

func (r *Repository) SetMany(ctx context.Context, entries map[string]string) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		zap.L().Error("can't begin tx", zap.Error(err))
		return err
	}
	for _, k := range keys {
		if _, err := tx.ExecContext(ctx, upsertQuery, k, entries[k]); err != nil {
			zap.L().Error("can't save entry", zap.String("key", k), zap.Error(err))
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
