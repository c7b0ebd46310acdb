package power_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superheroes-api/superheroes/internal/db/controller"
	"github.com/superheroes-api/superheroes/internal/db/controller/power"
	"github.com/superheroes-api/superheroes/internal/db/models"
	"github.com/superheroes-api/superheroes/internal/db/testdb"
)

const longDescription = "This is a sufficiently long description."

func TestGetAll(t *testing.T) {
	_, err := power.GetAll(nil)
	require.ErrorIs(t, err, controller.ErrDBNil)

	db := testdb.NewSeeded(t)

	powers, err := power.GetAll(db)
	require.NoError(t, err)
	require.Len(t, powers, 4)
	assert.Equal(t, "super strength", powers[0].Name)
	assert.Equal(t, "elasticity", powers[3].Name)
}

func TestGet(t *testing.T) {
	db := testdb.NewSeeded(t)

	p, err := power.Get(db, 2)
	require.NoError(t, err)
	assert.Equal(t, "flight", p.Name)

	p, err = power.Get(db, 999)
	require.ErrorIs(t, err, power.ErrPowerNotFound)
	assert.Nil(t, p)
}

func TestUpdateDescription(t *testing.T) {
	testCases := []struct {
		name        string
		id          uint
		description string
		wantErr     error
		wantStored  string
	}{
		{
			name:        "valid",
			id:          1,
			description: longDescription,
			wantStored:  longDescription,
		},
		{
			name:        "too short keeps stored value",
			id:          1,
			description: "Too short",
			wantErr:     models.ErrDescriptionTooShort,
			wantStored:  "gives the wielder super-human strengths",
		},
		{
			name:        "missing power",
			id:          999,
			description: longDescription,
			wantErr:     power.ErrPowerNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := testdb.NewSeeded(t)

			p, err := power.UpdateDescription(db, tc.id, tc.description)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, p)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.description, p.Description)
			}

			if tc.wantStored == "" {
				return
			}

			stored, err := power.Get(db, tc.id)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStored, stored.Description)
		})
	}
}

func TestSaveHookRejectsDirectAssignment(t *testing.T) {
	db := testdb.NewSeeded(t)

	p, err := power.Get(db, 1)
	require.NoError(t, err)

	p.Description = "short"
	require.ErrorIs(t, db.Save(p).Error, models.ErrDescriptionTooShort)

	stored, err := power.Get(db, 1)
	require.NoError(t, err)
	assert.Equal(t, "gives the wielder super-human strengths", stored.Description)
}

func TestCreate(t *testing.T) {
	db := testdb.New(t)

	p, err := power.Create(db, "invisibility", "can disappear from plain sight")
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	_, err = power.Create(db, "teleport", "Too short")
	require.ErrorIs(t, err, models.ErrDescriptionTooShort)

	count, err := power.Count(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteCascades(t *testing.T) {
	db := testdb.NewSeeded(t)

	// flight is used by four heroes
	var before int64
	require.NoError(t, db.Model(&models.HeroPower{}).Where("power_id = ?", 2).Count(&before).Error)
	require.Equal(t, int64(4), before)

	require.NoError(t, power.Delete(db, 2))

	var after int64
	require.NoError(t, db.Model(&models.HeroPower{}).Where("power_id = ?", 2).Count(&after).Error)
	assert.Zero(t, after)

	require.ErrorIs(t, power.Delete(db, 2), power.ErrPowerNotFound)
}
