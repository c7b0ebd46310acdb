package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superheroes-api/superheroes/internal/db/controller/hero"
	"github.com/superheroes-api/superheroes/internal/db/models"
	"github.com/superheroes-api/superheroes/internal/db/seed"
	"github.com/superheroes-api/superheroes/internal/db/testdb"
)

func TestRun(t *testing.T) {
	db := testdb.New(t)

	res, err := seed.Run(db)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{Heroes: 10, Powers: 4, HeroPowers: 11}, res)

	h, err := hero.GetWithPowers(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "Kamala Khan", h.Name)
	require.Len(t, h.HeroPowers, 2)
	assert.Equal(t, "flight", h.HeroPowers[0].Power.Name)
	assert.Equal(t, models.StrengthStrong, h.HeroPowers[0].Strength)

	// a seeded database is left alone
	res, err = seed.Run(db)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, res)

	count, err := hero.Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
}

func TestSeedPowersAreValid(t *testing.T) {
	for _, p := range seed.Powers {
		_, err := models.NewPower(p.Name, p.Description)
		assert.NoError(t, err, p.Name)
	}
}
