// Package power serves the power endpoints. Descriptions are the only
// updatable field.
package power

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	controller "github.com/superheroes-api/superheroes/internal/db/controller/power"
	"github.com/superheroes-api/superheroes/internal/web/handler"
)

const (
	// Path is the path of the power collection.
	Path = "/powers"

	// MsgNotFound is returned for unknown power ids.
	MsgNotFound = "Power not found"

	// MsgInvalidBody is returned if the body is not a JSON object.
	MsgInvalidBody = "Request body must be a JSON object"

	// MsgDescriptionNotString is returned for non-string descriptions.
	MsgDescriptionNotString = "description must be a string"
)

// Service is the power handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Init initializes the power handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Get(handler.IDParam, s.Get)
		router.Patch(handler.IDParam, s.Patch)
	})

	return nil
}

// List returns all powers.
func (s *Service) List(c *fiber.Ctx) error {
	powers, err := controller.GetAll(handler.Session(c, s.db))
	if err != nil {
		return handler.Internal(c, err, "failed to list powers")
	}

	out := make([]handler.PowerResponse, 0, len(powers))
	for i := range powers {
		out = append(out, handler.NewPowerResponse(&powers[i]))
	}

	return c.JSON(out)
}

// Get returns one power.
func (s *Service) Get(c *fiber.Ctx) error {
	id, ok := handler.ID(c)
	if !ok {
		return handler.NotFound(c, MsgNotFound)
	}

	p, err := controller.Get(handler.Session(c, s.db), id)
	if err != nil {
		if errors.Is(err, controller.ErrPowerNotFound) {
			return handler.NotFound(c, MsgNotFound)
		}

		return handler.Internal(c, err, "failed to load power")
	}

	return c.JSON(handler.NewPowerResponse(p))
}

// Patch updates the description of a power. An unknown power is a 404
// whatever the body. Keys other than description are ignored and a body
// without description leaves the power unchanged.
func (s *Service) Patch(c *fiber.Ctx) error {
	id, ok := handler.ID(c)
	if !ok {
		return handler.NotFound(c, MsgNotFound)
	}

	session := handler.Session(c, s.db)

	current, err := controller.Get(session, id)
	if err != nil {
		if errors.Is(err, controller.ErrPowerNotFound) {
			return handler.NotFound(c, MsgNotFound)
		}

		return handler.Internal(c, err, "failed to load power")
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(c.Body(), &body); err != nil || body == nil {
		log.Debug().Err(err).Uint("power_id", id).Msg("rejected power patch body")
		return handler.BadRequest(c, MsgInvalidBody)
	}

	raw, present := body["description"]
	if !present {
		return c.JSON(handler.NewPowerResponse(current))
	}

	var description string
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) || json.Unmarshal(raw, &description) != nil {
		return handler.BadRequest(c, MsgDescriptionNotString)
	}

	p, err := controller.UpdateDescription(session, id, description)
	if err != nil {
		if errors.Is(err, controller.ErrPowerNotFound) {
			return handler.NotFound(c, MsgNotFound)
		}

		if rejected, rErr := handler.ValidationFailed(c, err); rejected {
			return rErr
		}

		return handler.Internal(c, err, "failed to update power")
	}

	log.Info().Uint("power_id", p.ID).Msg("power description updated")

	return c.JSON(handler.NewPowerResponse(p))
}
