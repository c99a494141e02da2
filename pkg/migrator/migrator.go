package migrator

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/pressly/goose/v3"
)

// RunMigrations applies every pending goose migration found at the root of
// files to the database at dbURL.
func RunMigrations(dbURL string, files fs.FS) error {
	_, err := Up(context.Background(), dbURL, files)
	return err
}

// Up applies pending migrations and returns how many were applied.
// A goose Provider is used instead of the package-level API so concurrent
// callers (tests, several services) do not share global state.
func Up(ctx context.Context, dbURL string, files fs.FS) (int, error) {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return 0, fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	provider, err := goose.NewProvider(goose.DialectPostgres, db, files)
	if err != nil {
		return 0, fmt.Errorf("failed to create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return len(results), fmt.Errorf("failed to up migrations: %w", err)
	}
	return len(results), nil
}
