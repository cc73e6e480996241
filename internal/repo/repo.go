package repo

import (
	"github.com/jmoiron/sqlx"

	"github.com/GlebRadaev/ndvmoney/internal/persist"
	"github.com/GlebRadaev/ndvmoney/internal/pg"
	kvrepo "github.com/GlebRadaev/ndvmoney/internal/repo/kv-repo"
	sqlitekvrepo "github.com/GlebRadaev/ndvmoney/internal/repo/sqlitekv-repo"
)

type Repositories struct {
	KV persist.Store
}

// New builds postgres-backed repositories.
func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		KV: kvrepo.New(conn, txManager),
	}
}

// NewSQLite builds repositories over a local sqlite file.
func NewSQLite(db *sqlx.DB) *Repositories {
	return &Repositories{
		KV: sqlitekvrepo.New(db),
	}
}
