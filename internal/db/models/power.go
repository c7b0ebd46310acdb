package models

import (
	"time"

	"gorm.io/gorm"
)

// Power is an ability a hero can have.
type Power struct {
	// ID is the unique identifier for the power.
	ID uint `gorm:"primaryKey"`
	// Name is the short name of the power, e.g. "flight".
	Name string `gorm:"not null"`
	// Description must be at least DescriptionMinLength characters, see SetDescription.
	Description string `gorm:"not null"`
	// HeroPowers link this power to heroes. Removed with the power (CASCADE).
	HeroPowers []HeroPower `gorm:"foreignKey:PowerID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the power was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the power was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Power model.
func (Power) TableName() string {
	return "powers"
}

// NewPower returns a validated, not yet persisted power.
func NewPower(name, description string) (*Power, error) {
	p := &Power{Name: name}
	if err := p.SetDescription(description); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDescription stores description unchanged if it is long enough.
// On error the current description is kept.
func (p *Power) SetDescription(description string) error {
	if err := ValidateDescription(description); err != nil {
		return err
	}

	p.Description = description

	return nil
}

// Validate checks name and description.
func (p *Power) Validate() error {
	if err := required("name", p.Name); err != nil {
		return err
	}

	return ValidateDescription(p.Description)
}

// BeforeSave implements the gorm hook.
func (p *Power) BeforeSave(_ *gorm.DB) error {
	return p.Validate()
}
