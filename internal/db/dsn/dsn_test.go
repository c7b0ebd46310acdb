package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superheroes-api/superheroes/internal/config"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name string
		db   config.DB
		want string
	}{
		{
			name: "sqlite file enables foreign keys",
			db:   config.DB{GormEngine: config.EngineSQLite, Name: "app.db"},
			want: "app.db?_pragma=foreign_keys(1)",
		},
		{
			name: "sqlite keeps extras",
			db:   config.DB{GormEngine: config.EngineSQLite, Name: ":memory:", Extras: "_pragma=busy_timeout(5000)"},
			want: ":memory:?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)",
		},
		{
			name: "sqlite explicit foreign keys setting wins",
			db:   config.DB{GormEngine: config.EngineSQLite, Name: "app.db", Extras: "_pragma=foreign_keys(0)"},
			want: "app.db?_pragma=foreign_keys(0)",
		},
		{
			name: "empty engine is sqlite",
			db:   config.DB{Name: "app.db"},
			want: "app.db?_pragma=foreign_keys(1)",
		},
		{
			name: "mysql defaults",
			db: config.DB{
				GormEngine: config.EngineMySQL,
				Host:       "localhost",
				Port:       3306,
				User:       "heroes",
				Password:   "secret",
				Name:       "superheroes",
			},
			want: "heroes:secret@tcp(localhost:3306)/superheroes?charset=utf8mb4&parseTime=True&loc=UTC",
		},
		{
			name: "postgres with extras",
			db: config.DB{
				GormEngine: config.EnginePostgres,
				Host:       "db",
				Port:       5432,
				User:       "heroes",
				Password:   "secret",
				Name:       "superheroes",
				Extras:     "sslmode=disable",
			},
			want: "host=db port=5432 user=heroes password=secret dbname=superheroes sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Create(&config.Config{DB: tt.db}))
		})
	}
}

func TestDialector(t *testing.T) {
	for _, engine := range []string{config.EngineSQLite, config.EngineMySQL, config.EnginePostgres} {
		t.Run(engine, func(t *testing.T) {
			d, err := Dialector(&config.Config{DB: config.DB{GormEngine: engine, Name: "x"}})
			require.NoError(t, err)
			assert.Equal(t, engine, d.Name())
		})
	}

	_, err := Dialector(&config.Config{DB: config.DB{GormEngine: "oracle"}})
	require.ErrorIs(t, err, config.ErrUnsupportedGormEngine)
}
