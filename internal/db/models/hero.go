package models

import (
	"time"

	"gorm.io/gorm"
)

// Hero is a person with a secret identity.
type Hero struct {
	// ID is the unique identifier for the hero.
	ID uint `gorm:"primaryKey"`
	// Name is the civilian name, e.g. "Kamala Khan".
	Name string `gorm:"not null"`
	// SuperName is the hero name, e.g. "Ms. Marvel".
	SuperName string `gorm:"not null"`
	// HeroPowers are the powers of this hero. Removed with the hero (CASCADE).
	HeroPowers []HeroPower `gorm:"foreignKey:HeroID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the hero was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the hero was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Hero model.
func (Hero) TableName() string {
	return "heroes"
}

// NewHero returns a validated, not yet persisted hero.
func NewHero(name, superName string) (*Hero, error) {
	h := &Hero{Name: name, SuperName: superName}
	if err := h.Validate(); err != nil {
		return nil, err
	}

	return h, nil
}

// Validate checks that both names are set.
func (h *Hero) Validate() error {
	if err := required("name", h.Name); err != nil {
		return err
	}

	return required("super_name", h.SuperName)
}

// BeforeSave implements the gorm hook.
func (h *Hero) BeforeSave(_ *gorm.DB) error {
	return h.Validate()
}
