// Package database opens the gorm connection used by the whole service.
package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	"github.com/superheroes-api/superheroes/internal/db/dsn"
	"github.com/superheroes-api/superheroes/internal/logger/adapter/gormlogger"
)

// Open connects to the configured database.
//
// SQLite is limited to a single open connection: writes are serialized by
// the engine anyway and an in-memory database only lives as long as its
// connection.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	dialector, err := dsn.Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.New(nil, cfg.DB.SlowThreshold),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if dialector.Name() == config.EngineSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql handle: %w", err)
		}

		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}

	return sqlDB.Close()
}
