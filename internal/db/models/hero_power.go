package models

import (
	"time"

	"gorm.io/gorm"
)

// Strength is how strong a hero is in one of their powers.
type Strength string

const (
	// StrengthStrong marks a hero's strongest powers.
	StrengthStrong Strength = "Strong"
	// StrengthWeak marks powers a hero barely controls.
	StrengthWeak Strength = "Weak"
	// StrengthAverage is everything in between.
	StrengthAverage Strength = "Average"
)

// HeroPower links a hero to a power and records the strength of that power.
type HeroPower struct {
	// ID is the unique identifier for the hero power.
	ID uint `gorm:"primaryKey"`
	// Strength is one of StrengthStrong, StrengthWeak or StrengthAverage, see SetStrength.
	Strength Strength `gorm:"type:varchar(20);not null"`
	// HeroID references the hero owning this power.
	HeroID uint `gorm:"not null;index"`
	// PowerID references the power.
	PowerID uint `gorm:"not null;index"`
	// Hero is only populated by queries joining heroes explicitly.
	Hero Hero `gorm:"foreignKey:HeroID;constraint:OnDelete:CASCADE"`
	// Power is only populated by queries joining powers explicitly.
	Power Power `gorm:"foreignKey:PowerID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the hero power was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the hero power was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the HeroPower model.
func (HeroPower) TableName() string {
	return "hero_powers"
}

// NewHeroPower returns a validated, not yet persisted hero power.
// The strength is checked first.
func NewHeroPower(strength string, heroID, powerID uint) (*HeroPower, error) {
	hp := &HeroPower{HeroID: heroID, PowerID: powerID}
	if err := hp.SetStrength(strength); err != nil {
		return nil, err
	}

	if err := hp.Validate(); err != nil {
		return nil, err
	}

	return hp, nil
}

// SetStrength stores strength unchanged if it is exactly Strong, Weak or Average.
// On error the current strength is kept.
func (hp *HeroPower) SetStrength(strength string) error {
	if err := ValidateStrength(strength); err != nil {
		return err
	}

	hp.Strength = Strength(strength)

	return nil
}

// Validate checks strength and both references.
func (hp *HeroPower) Validate() error {
	if err := ValidateStrength(string(hp.Strength)); err != nil {
		return err
	}

	if err := requiredID("hero_id", hp.HeroID); err != nil {
		return err
	}

	return requiredID("power_id", hp.PowerID)
}

// BeforeSave implements the gorm hook.
func (hp *HeroPower) BeforeSave(_ *gorm.DB) error {
	return hp.Validate()
}
