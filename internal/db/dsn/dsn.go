// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
)

const (
	sqliteForeignKeys = "_pragma=foreign_keys(1)"
	mysqlDefaults     = "charset=utf8mb4&parseTime=True&loc=UTC"
)

// Create builds the Data Source Name for the configured engine.
//
// SQLite connections always enable foreign key enforcement, the cascade
// delete of hero_powers depends on it.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		extras := cfg.DB.Extras
		if extras == "" {
			extras = mysqlDefaults
		}

		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.Name,
			extras,
		)
	case config.EnginePostgres:
		out := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
			cfg.DB.Host,
			cfg.DB.Port,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
		)
		if cfg.DB.Extras != "" {
			out += " " + cfg.DB.Extras
		}

		return out
	default:
		params := cfg.DB.Extras
		if !strings.Contains(params, "foreign_keys") {
			params = strings.TrimPrefix(params+"&"+sqliteForeignKeys, "&")
		}

		return cfg.DB.Name + "?" + params
	}
}

// Dialector returns the gorm dialector for the configured engine.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DB.GormEngine {
	case config.EngineSQLite, "":
		return sqlite.Open(Create(cfg)), nil
	case config.EngineMySQL:
		return mysql.Open(Create(cfg)), nil
	case config.EnginePostgres:
		return postgres.Open(Create(cfg)), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnsupportedGormEngine, cfg.DB.GormEngine)
	}
}
