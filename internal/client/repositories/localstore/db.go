package localstore

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
	"github.com/redsocial/redsocial-cli/internal/client/migrations"
)

// Open opens (creating if necessary) the local storage database at dsn and
// applies the embedded migrations. The caller is responsible for importing
// an sqlite driver registered under the name "sqlite".
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
