// Package hero serves the read-only hero endpoints.
package hero

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	controller "github.com/superheroes-api/superheroes/internal/db/controller/hero"
	"github.com/superheroes-api/superheroes/internal/web/handler"
)

const (
	// Path is the path of the hero collection.
	Path = "/heroes"

	// MsgNotFound is returned for unknown hero ids.
	MsgNotFound = "Hero not found"
)

// Service is the hero handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Init initializes the hero handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get(handler.IDParam, s.Get)
	})

	return nil
}

// List returns all heroes without their powers.
func (s *Service) List(c *fiber.Ctx) error {
	heroes, err := controller.GetAll(handler.Session(c, s.db))
	if err != nil {
		return handler.Internal(c, err, "failed to list heroes")
	}

	out := make([]handler.HeroResponse, 0, len(heroes))
	for i := range heroes {
		out = append(out, handler.NewHeroResponse(&heroes[i]))
	}

	return c.JSON(out)
}

// Get returns one hero with its hero powers and their powers.
func (s *Service) Get(c *fiber.Ctx) error {
	id, ok := handler.ID(c)
	if !ok {
		return handler.NotFound(c, MsgNotFound)
	}

	h, err := controller.GetWithPowers(handler.Session(c, s.db), id)
	if err != nil {
		if errors.Is(err, controller.ErrHeroNotFound) {
			return handler.NotFound(c, MsgNotFound)
		}

		return handler.Internal(c, err, "failed to load hero")
	}

	return c.JSON(handler.NewHeroDetailResponse(h))
}
