// Package hero provides read access to heroes and their powers.
package hero

import (
	"errors"

	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/db/controller"
	"github.com/superheroes-api/superheroes/internal/db/models"
)

// ErrHeroNotFound is returned when no hero has the requested id.
var ErrHeroNotFound = errors.New("hero not found")

// GetAll retrieves all heroes in id order, without their powers.
func GetAll(db *gorm.DB) ([]models.Hero, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	heroes := []models.Hero{}
	if err := db.Order("id").Find(&heroes).Error; err != nil {
		return nil, err
	}

	return heroes, nil
}

// Get retrieves a hero by its ID, without its powers.
func Get(db *gorm.DB, id uint) (*models.Hero, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	var hero models.Hero
	if err := db.First(&hero, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHeroNotFound
		}

		return nil, err
	}

	return &hero, nil
}

// GetWithPowers retrieves a hero and its hero powers, each joined with its power.
func GetWithPowers(db *gorm.DB, id uint) (*models.Hero, error) {
	hero, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	hero.HeroPowers = []models.HeroPower{}

	err = db.Joins("Power").
		Where("hero_powers.hero_id = ?", hero.ID).
		Order("hero_powers.id").
		Find(&hero.HeroPowers).Error
	if err != nil {
		return nil, err
	}

	return hero, nil
}

// Create validates and inserts a new hero.
func Create(db *gorm.DB, name, superName string) (*models.Hero, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	hero, err := models.NewHero(name, superName)
	if err != nil {
		return nil, err
	}

	if err := db.Create(hero).Error; err != nil {
		return nil, err
	}

	return hero, nil
}

// Count returns the number of heroes.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, controller.ErrDBNil
	}

	var count int64
	err := db.Model(&models.Hero{}).Count(&count).Error

	return count, err
}

// Delete deletes a hero by ID. Its hero powers are removed by the database (CASCADE).
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return controller.ErrDBNil
	}

	result := db.Delete(&models.Hero{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrHeroNotFound
	}

	return nil
}
