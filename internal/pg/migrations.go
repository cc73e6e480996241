package pg

import (
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/GlebRadaev/ndvmoney/migrations"
)

const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

func RunMigrations(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	if err := Migrate(db, DialectPostgres); err != nil {
		return err
	}
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close db: %w", err)
	}
	return nil
}

// Migrate applies the embedded migrations to db. The same scripts run on
// postgres and sqlite.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
