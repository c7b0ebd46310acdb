// Package power provides access to powers, including the description update.
package power

import (
	"errors"

	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/db/controller"
	"github.com/superheroes-api/superheroes/internal/db/models"
)

// ErrPowerNotFound is returned when no power has the requested id.
var ErrPowerNotFound = errors.New("power not found")

// GetAll retrieves all powers in id order.
func GetAll(db *gorm.DB) ([]models.Power, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	powers := []models.Power{}
	if err := db.Order("id").Find(&powers).Error; err != nil {
		return nil, err
	}

	return powers, nil
}

// Get retrieves a power by its ID.
func Get(db *gorm.DB, id uint) (*models.Power, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	var power models.Power
	if err := db.First(&power, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPowerNotFound
		}

		return nil, err
	}

	return &power, nil
}

// Create validates and inserts a new power.
func Create(db *gorm.DB, name, description string) (*models.Power, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	power, err := models.NewPower(name, description)
	if err != nil {
		return nil, err
	}

	if err := db.Create(power).Error; err != nil {
		return nil, err
	}

	return power, nil
}

// UpdateDescription sets the description of a power and commits it.
// A *models.ValidationError leaves the stored power untouched.
func UpdateDescription(db *gorm.DB, id uint, description string) (*models.Power, error) {
	if db == nil {
		return nil, controller.ErrDBNil
	}

	var power *models.Power

	err := db.Transaction(func(tx *gorm.DB) error {
		var err error

		if power, err = Get(tx, id); err != nil {
			return err
		}

		if err = power.SetDescription(description); err != nil {
			return err
		}

		return tx.Save(power).Error
	})
	if err != nil {
		return nil, err
	}

	return power, nil
}

// Count returns the number of powers.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, controller.ErrDBNil
	}

	var count int64
	err := db.Model(&models.Power{}).Count(&count).Error

	return count, err
}

// Delete deletes a power by ID. Its hero powers are removed by the database (CASCADE).
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return controller.ErrDBNil
	}

	result := db.Delete(&models.Power{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrPowerNotFound
	}

	return nil
}
