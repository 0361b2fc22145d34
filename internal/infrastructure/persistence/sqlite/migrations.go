package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/bnema/dumbcam/internal/logging"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(embedMigrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// RunMigrations applies pending media_images migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log := logging.FromContext(ctx)
	for _, res := range results {
		log.Info().
			Int64("version", res.Source.Version).
			Dur("took", res.Duration).
			Msg("media index migration applied")
	}
	return nil
}

// SchemaVersion reports the highest applied migration in db.
func SchemaVersion(ctx context.Context, db *sql.DB) (int64, error) {
	provider, err := newMigrationProvider(db)
	if err != nil {
		return 0, err
	}
	return provider.GetDBVersion(ctx)
}
