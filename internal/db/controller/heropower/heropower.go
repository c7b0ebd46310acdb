// Package heropower creates and reads the links between heroes and powers.
package heropower

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/superheroes-api/superheroes/internal/db/controller"
	"github.com/superheroes-api/superheroes/internal/db/controller/hero"
	"github.com/superheroes-api/superheroes/internal/db/controller/power"
	"github.com/superheroes-api/superheroes/internal/db/models"
)

var (
	// ErrHeroPowerNotFound is returned when no hero power has the requested id.
	ErrHeroPowerNotFound = errors.New("hero power not found")
	// ErrDanglingReference is returned when the database rejects hero_id or power_id.
	ErrDanglingReference = errors.New("hero or power does not exist")
)

// Get retrieves a hero power with its hero and power joined.
func Get(db *gorm.DB, id uint) (*models.HeroPower, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	var hp models.HeroPower

	err := db.Joins("Hero").Joins("Power").First(&hp, "hero_powers.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeroPowerNotFound
		}

		return nil, err
	}

	return &hp, nil
}

// Create validates strength, checks that hero and power exist and inserts the
// hero power in one transaction. The returned hero power has Hero and Power set.
//
// Errors: *models.ValidationError, hero.ErrHeroNotFound, power.ErrPowerNotFound.
func Create(db *gorm.DB, strength string, heroID, powerID uint) (*models.HeroPower, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	hp, err := models.NewHeroPower(strength, heroID, powerID)
	if err != nil {
		return nil, err
	}

	var created *models.HeroPower

	err = db.Transaction(func(tx *gorm.DB) error {
		if _, err := hero.Get(tx, heroID); err != nil {
			return err
		}

		if _, err := power.Get(tx, powerID); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(hp).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return fmt.Errorf("%w: %w", ErrDanglingReference, err)
			}

			return err
		}

		created, err = Get(tx, hp.ID)

		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
