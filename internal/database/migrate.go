package database

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/userstore/*.sql
var userStoreMigrations embed.FS

//go:embed migrations/gamestore/*.sql
var gameStoreMigrations embed.FS

// MigrateUserStore applies pending migrations to the user store.
func MigrateUserStore(connString string) error {
	return migrate(connString, userStoreMigrations, "migrations/userstore", "goose_userstore_version")
}

// MigrateGameStore applies pending migrations to the game store.
func MigrateGameStore(connString string) error {
	return migrate(connString, gameStoreMigrations, "migrations/gamestore", "goose_gamestore_version")
}

// Each store tracks its versions in its own table, so both schemas can live
// in one database when deployments choose to colocate them.
func migrate(connString string, fsys embed.FS, dir, versionTable string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(fsys)
	defer goose.SetBaseFS(nil)
	goose.SetTableName(versionTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
