package daemon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superheroes-api/superheroes/internal/config"
	"github.com/superheroes-api/superheroes/internal/db/controller/hero"
	"github.com/superheroes-api/superheroes/internal/db/database"
	"github.com/superheroes-api/superheroes/internal/db/testdb"
)

func newDaemon(t *testing.T, seed bool) *Daemon {
	t.Helper()

	cfg := testdb.Config()
	cfg.DB.Seed = seed

	d, err := New(context.Background(), cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = database.Close(d.db)
	})

	return d
}

func TestNewNilConfig(t *testing.T) {
	_, err := New(context.Background(), nil)
	require.ErrorIs(t, err, config.ErrNilConfig)
}

func TestNewUnsupportedEngine(t *testing.T) {
	cfg := testdb.Config()
	cfg.DB.GormEngine = "oracle"

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
}

func TestNewSeeds(t *testing.T) {
	d := newDaemon(t, true)

	count, err := hero.Count(d.db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)

	// seeding twice leaves the data alone
	require.NoError(t, seed(d.cfg, d.db))

	count, err = hero.Count(d.db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
}

func TestNewWithoutSeed(t *testing.T) {
	d := newDaemon(t, false)

	count, err := hero.Count(d.db)
	require.NoError(t, err)
	assert.Zero(t, count)

	resp, err := d.webService.App.Test(httptest.NewRequest(http.MethodGet, "/heroes", nil))
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
