package hero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superheroes-api/superheroes/internal/db/controller"
	"github.com/superheroes-api/superheroes/internal/db/controller/hero"
	"github.com/superheroes-api/superheroes/internal/db/models"
	"github.com/superheroes-api/superheroes/internal/db/testdb"
)

func TestGetAll(t *testing.T) {
	heroes, err := hero.GetAll(nil)
	require.ErrorIs(t, err, controller.ErrDBNil)
	assert.Nil(t, heroes)

	db := testdb.New(t)

	heroes, err = hero.GetAll(db)
	require.NoError(t, err)
	assert.NotNil(t, heroes)
	assert.Empty(t, heroes)

	db = testdb.NewSeeded(t)

	heroes, err = hero.GetAll(db)
	require.NoError(t, err)
	require.Len(t, heroes, 10)

	for i, h := range heroes {
		assert.Equal(t, uint(i+1), h.ID)
		assert.Nil(t, h.HeroPowers, "list does not load powers")
	}

	assert.Equal(t, "Ms. Marvel", heroes[0].SuperName)
}

func TestGet(t *testing.T) {
	db := testdb.NewSeeded(t)

	testCases := []struct {
		name    string
		id      uint
		wantErr error
		want    string
	}{
		{name: "existing", id: 2, want: "Squirrel Girl"},
		{name: "missing", id: 999, wantErr: hero.ErrHeroNotFound},
		{name: "zero", id: 0, wantErr: hero.ErrHeroNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h, err := hero.Get(db, tc.id)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, h)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, h.SuperName)
		})
	}
}

func TestGetWithPowers(t *testing.T) {
	db := testdb.NewSeeded(t)

	h, err := hero.GetWithPowers(db, 1)
	require.NoError(t, err)
	require.Len(t, h.HeroPowers, 2)

	first := h.HeroPowers[0]
	assert.Equal(t, uint(1), first.HeroID)
	assert.Equal(t, uint(2), first.PowerID)
	assert.Equal(t, models.StrengthStrong, first.Strength)
	assert.Equal(t, uint(2), first.Power.ID)
	assert.Equal(t, "flight", first.Power.Name)
	assert.Equal(t, "gives the wielder the ability to fly through the skies at supersonic speed", first.Power.Description)

	assert.Equal(t, "elasticity", h.HeroPowers[1].Power.Name)

	// Kitty Pryde has no powers
	h, err = hero.GetWithPowers(db, 9)
	require.NoError(t, err)
	assert.NotNil(t, h.HeroPowers)
	assert.Empty(t, h.HeroPowers)

	_, err = hero.GetWithPowers(db, 999)
	require.ErrorIs(t, err, hero.ErrHeroNotFound)
}

func TestCreate(t *testing.T) {
	db := testdb.New(t)

	h, err := hero.Create(db, "Kamala Khan", "Ms. Marvel")
	require.NoError(t, err)
	assert.NotZero(t, h.ID)

	_, err = hero.Create(db, "", "Ms. Marvel")

	var vErr *models.ValidationError
	require.ErrorAs(t, err, &vErr)

	count, err := hero.Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCascades(t *testing.T) {
	db := testdb.NewSeeded(t)

	var before int64
	require.NoError(t, db.Model(&models.HeroPower{}).Where("hero_id = ?", 1).Count(&before).Error)
	require.Equal(t, int64(2), before)

	require.NoError(t, hero.Delete(db, 1))

	var after int64
	require.NoError(t, db.Model(&models.HeroPower{}).Where("hero_id = ?", 1).Count(&after).Error)
	assert.Zero(t, after)

	var total int64
	require.NoError(t, db.Model(&models.HeroPower{}).Count(&total).Error)
	assert.Equal(t, int64(9), total, "other heroes keep their powers")

	require.ErrorIs(t, hero.Delete(db, 1), hero.ErrHeroNotFound)
	require.ErrorIs(t, hero.Delete(nil, 1), controller.ErrDBNil)
}
