package daemon

import (
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	dbseed "github.com/superheroes-api/superheroes/internal/db/seed"
)

// seed fills an empty database with the demo data unless disabled.
func seed(cfg *config.Config, db *gorm.DB) error {
	if !cfg.DB.Seed {
		return nil
	}

	_, err := dbseed.Run(db)

	return err
}
