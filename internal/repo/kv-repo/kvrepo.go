package kvrepo

import (
	"context"
	"errors"
	"sort"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ndvmoney/internal/pg"
)

const (
	getQuery    = `SELECT value FROM kv_entries WHERE key = $1`
	upsertQuery = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(ctx, getQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		zap.L().Error("can't read entry", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

// SetMany upserts all entries in one transaction, in key order.
func (r *Repository) SetMany(ctx context.Context, entries map[string]string) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		for _, k := range keys {
			if _, err := r.db.Exec(ctx, upsertQuery, k, entries[k]); err != nil {
				zap.L().Error("can't save entry", zap.String("key", k), zap.Error(err))
				return err
			}
		}
		return nil
	})
}
