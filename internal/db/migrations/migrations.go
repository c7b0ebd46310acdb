// Package migrations owns the database schema. SQL files are embedded per
// dialect and applied with goose.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
)

//go:embed sqlite/*.sql mysql/*.sql postgres/*.sql
var FS embed.FS

var dialects = map[string]goose.Dialect{ //nolint:gochecknoglobals
	config.EngineSQLite:   goose.DialectSQLite3,
	config.EngineMySQL:    goose.DialectMySQL,
	config.EnginePostgres: goose.DialectPostgres,
}

// NewProvider returns a goose provider for db using the migrations of db's dialect.
func NewProvider(db *gorm.DB) (*goose.Provider, error) {
	engine := db.Dialector.Name()

	dialect, ok := dialects[engine]
	if !ok {
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedGormEngine, engine)
	}

	fsys, err := fs.Sub(FS, engine)
	if err != nil {
		return nil, fmt.Errorf("migrations for %s: %w", engine, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("create migration provider: %w", err)
	}

	return provider, nil
}

// Up applies all pending migrations.
func Up(ctx context.Context, db *gorm.DB) ([]*goose.MigrationResult, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return nil, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return results, fmt.Errorf("run migrations: %w", err)
	}

	return results, nil
}

// Down rolls back the most recently applied migration.
func Down(ctx context.Context, db *gorm.DB) (*goose.MigrationResult, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return nil, err
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return result, fmt.Errorf("rollback migration: %w", err)
	}

	return result, nil
}

// Status reports every known migration and whether it has been applied.
func Status(ctx context.Context, db *gorm.DB) ([]*goose.MigrationStatus, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return nil, err
	}

	status, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration status: %w", err)
	}

	return status, nil
}
