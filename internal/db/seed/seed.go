// Package seed fills an empty database with the demo heroes and powers.
package seed

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/db/controller/hero"
	"github.com/superheroes-api/superheroes/internal/db/controller/power"
	"github.com/superheroes-api/superheroes/internal/db/models"
)

type heroSeed struct {
	name      string
	superName string
	powers    map[string]models.Strength
}

// Powers are seeded in this order, the first one gets id 1 in a fresh database.
var Powers = []struct{ Name, Description string }{ //nolint:gochecknoglobals
	{"super strength", "gives the wielder super-human strengths"},
	{"flight", "gives the wielder the ability to fly through the skies at supersonic speed"},
	{"super human senses", "allows the wielder to use her senses at a super-human level"},
	{"elasticity", "can stretch the human body to extreme lengths"},
}

var heroes = []heroSeed{ //nolint:gochecknoglobals
	{"Kamala Khan", "Ms. Marvel", map[string]models.Strength{
		"flight": models.StrengthStrong, "elasticity": models.StrengthAverage,
	}},
	{"Doreen Green", "Squirrel Girl", map[string]models.Strength{"super strength": models.StrengthAverage}},
	{"Gwen Stacy", "Spider-Gwen", map[string]models.Strength{"super human senses": models.StrengthStrong}},
	{"Janet Van Dyne", "The Wasp", map[string]models.Strength{"flight": models.StrengthWeak}},
	{"Wanda Maximoff", "Scarlet Witch", map[string]models.Strength{"super human senses": models.StrengthAverage}},
	{"Carol Danvers", "Captain Marvel", map[string]models.Strength{
		"super strength": models.StrengthStrong, "flight": models.StrengthStrong,
	}},
	{"Jean Grey", "Dark Phoenix", map[string]models.Strength{"super human senses": models.StrengthStrong}},
	{"Ororo Munroe", "Storm", map[string]models.Strength{"flight": models.StrengthAverage}},
	{"Kitty Pryde", "Shadowcat", nil},
	{"Elektra Natchios", "Elektra", map[string]models.Strength{"super human senses": models.StrengthWeak}},
}

// Result counts the rows created by Run.
type Result struct {
	Heroes     int
	Powers     int
	HeroPowers int
}

// Run seeds heroes, powers and hero powers in one transaction if the heroes
// table is empty. A non-empty database is left alone.
func Run(db *gorm.DB) (Result, error) {
	var res Result

	count, err := hero.Count(db)
	if err != nil {
		return res, err
	}

	if count > 0 {
		log.Debug().Int64("heroes", count).Msg("database already seeded")
		return res, nil
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		res = Result{}
		powerIDs := make(map[string]uint, len(Powers))

		for _, p := range Powers {
			created, err := power.Create(tx, p.Name, p.Description)
			if err != nil {
				return err
			}

			powerIDs[p.Name] = created.ID
			res.Powers++
		}

		for _, h := range heroes {
			created, err := hero.Create(tx, h.name, h.superName)
			if err != nil {
				return err
			}

			res.Heroes++

			// iterate Powers, not the map, to keep ids stable
			for _, p := range Powers {
				strength, ok := h.powers[p.Name]
				if !ok {
					continue
				}

				hp, err := models.NewHeroPower(string(strength), created.ID, powerIDs[p.Name])
				if err != nil {
					return err
				}

				if err := tx.Create(hp).Error; err != nil {
					return err
				}

				res.HeroPowers++
			}
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	log.Info().
		Int("heroes", res.Heroes).
		Int("powers", res.Powers).
		Int("hero_powers", res.HeroPowers).
		Msg("database seeded")

	return res, nil
}
