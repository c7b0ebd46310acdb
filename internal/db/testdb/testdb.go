// Package testdb provides migrated in-memory SQLite databases for tests.
package testdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	"github.com/superheroes-api/superheroes/internal/db/database"
	"github.com/superheroes-api/superheroes/internal/db/migrations"
	"github.com/superheroes-api/superheroes/internal/db/seed"
)

// Config returns the configuration of an in-memory SQLite database.
func Config() *config.Config {
	return &config.Config{
		DB: config.DB{
			GormEngine: config.EngineSQLite,
			Name:       ":memory:",
		},
	}
}

// New creates an empty, migrated in-memory database closed at the end of the test.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(Config())
	require.NoError(t, err, "failed to create test database")

	t.Cleanup(func() {
		_ = database.Close(db)
	})

	_, err = migrations.Up(context.Background(), db)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// NewSeeded creates a migrated in-memory database holding the seed data.
// Hero 1 is Kamala Khan (Ms. Marvel), power 1 is "super strength".
func NewSeeded(t *testing.T) *gorm.DB {
	t.Helper()

	db := New(t)

	_, err := seed.Run(db)
	require.NoError(t, err, "failed to seed test database")

	return db
}
