package config

import "time"

// Supported values for DB.GormEngine.
const (
	EngineSQLite   = "sqlite"
	EngineMySQL    = "mysql"
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Extras        string
	Host          string
	Port          int
	User          string
	Password      string
	Name          string        // database name, or the file path for sqlite
	GormEngine    string        // sqlite, mysql or postgres
	Seed          bool          // seed heroes and powers on start if the tables are empty
	SlowThreshold time.Duration // queries slower than this are logged as warnings
}
