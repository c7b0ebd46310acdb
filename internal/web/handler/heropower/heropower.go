// Package heropower serves the endpoint linking heroes to powers.
package heropower

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	herocontroller "github.com/superheroes-api/superheroes/internal/db/controller/hero"
	controller "github.com/superheroes-api/superheroes/internal/db/controller/heropower"
	powercontroller "github.com/superheroes-api/superheroes/internal/db/controller/power"
	"github.com/superheroes-api/superheroes/internal/web/handler"
)

const (
	// Path is the path of the hero power collection.
	Path = "/hero_powers"

	// MsgInvalidBody is returned if the body is not a JSON object.
	MsgInvalidBody = "Request body must be a JSON object"

	// MsgHeroNotFound is returned if hero_id does not exist.
	MsgHeroNotFound = "Hero not found"

	// MsgPowerNotFound is returned if power_id does not exist.
	MsgPowerNotFound = "Power not found"

	// MsgDanglingReference is returned if hero or power vanished during the insert.
	MsgDanglingReference = "Hero or power does not exist"
)

// CreateRequest is the body of POST /hero_powers.
type CreateRequest struct {
	Strength *string `json:"strength" validate:"required"`
	HeroID   *uint   `json:"hero_id"  validate:"required"`
	PowerID  *uint   `json:"power_id" validate:"required"`
}

// Service is the hero power handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Init initializes the hero power handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.db = db
	s.validator = newValidator()

	app.Route(Path, func(router fiber.Router) {
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// newValidator reports fields by their json names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Post creates a hero power and returns it with its hero and power.
func (s *Service) Post(c *fiber.Ctx) error {
	var req CreateRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		log.Debug().Err(err).Msg("rejected hero power body")
		return handler.BadRequest(c, decodeErrorMessage(err))
	}

	if msgs := s.missingFields(&req); len(msgs) > 0 {
		return handler.BadRequest(c, msgs...)
	}

	hp, err := controller.Create(handler.Session(c, s.db), *req.Strength, *req.HeroID, *req.PowerID)
	if err != nil {
		switch {
		case errors.Is(err, herocontroller.ErrHeroNotFound):
			return handler.BadRequest(c, MsgHeroNotFound)
		case errors.Is(err, powercontroller.ErrPowerNotFound):
			return handler.BadRequest(c, MsgPowerNotFound)
		case errors.Is(err, controller.ErrDanglingReference):
			return handler.BadRequest(c, MsgDanglingReference)
		}

		if rejected, rErr := handler.ValidationFailed(c, err); rejected {
			return rErr
		}

		return handler.Internal(c, err, "failed to create hero power")
	}

	log.Info().
		Uint("hero_power_id", hp.ID).
		Uint("hero_id", hp.HeroID).
		Uint("power_id", hp.PowerID).
		Msg("hero power created")

	return c.JSON(handler.NewCreatedHeroPowerResponse(hp))
}

// missingFields returns one "<key> is required" message per absent key,
// in field order.
func (s *Service) missingFields(req *CreateRequest) []string {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		msgs = append(msgs, ve.Field()+" is required")
	}

	return msgs
}

func decodeErrorMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field + " has an invalid type"
	}

	return MsgInvalidBody
}
