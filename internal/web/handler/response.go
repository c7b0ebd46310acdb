package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/db/models"
)

// ErrorBody is returned for not found and unexpected errors.
type ErrorBody struct {
	Error string `json:"error"`
}

// ErrorsBody is returned for rejected input.
type ErrorsBody struct {
	Errors []string `json:"errors"`
}

// HeroResponse is a hero without its powers.
type HeroResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	SuperName string `json:"super_name"`
}

// PowerResponse is a power.
type PowerResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HeroPowerResponse is a hero power inside a hero detail response.
type HeroPowerResponse struct {
	ID       uint          `json:"id"`
	HeroID   uint          `json:"hero_id"`
	PowerID  uint          `json:"power_id"`
	Strength string        `json:"strength"`
	Power    PowerResponse `json:"power"`
}

// HeroDetailResponse is a hero with all its powers.
type HeroDetailResponse struct {
	HeroResponse
	HeroPowers []HeroPowerResponse `json:"hero_powers"`
}

// CreatedHeroPowerResponse is the answer to a created hero power.
type CreatedHeroPowerResponse struct {
	ID       uint          `json:"id"`
	HeroID   uint          `json:"hero_id"`
	PowerID  uint          `json:"power_id"`
	Strength string        `json:"strength"`
	Hero     HeroResponse  `json:"hero"`
	Power    PowerResponse `json:"power"`
}

// NewHeroResponse maps a hero.
func NewHeroResponse(h *models.Hero) HeroResponse {
	return HeroResponse{ID: h.ID, Name: h.Name, SuperName: h.SuperName}
}

// NewPowerResponse maps a power.
func NewPowerResponse(p *models.Power) PowerResponse {
	return PowerResponse{ID: p.ID, Name: p.Name, Description: p.Description}
}

// NewHeroDetailResponse maps a hero whose HeroPowers have Power joined.
func NewHeroDetailResponse(h *models.Hero) HeroDetailResponse {
	out := HeroDetailResponse{
		HeroResponse: NewHeroResponse(h),
		HeroPowers:   make([]HeroPowerResponse, 0, len(h.HeroPowers)),
	}

	for i := range h.HeroPowers {
		hp := &h.HeroPowers[i]
		out.HeroPowers = append(out.HeroPowers, HeroPowerResponse{
			ID:       hp.ID,
			HeroID:   hp.HeroID,
			PowerID:  hp.PowerID,
			Strength: string(hp.Strength),
			Power:    NewPowerResponse(&hp.Power),
		})
	}

	return out
}

// NewCreatedHeroPowerResponse maps a hero power with Hero and Power joined.
func NewCreatedHeroPowerResponse(hp *models.HeroPower) CreatedHeroPowerResponse {
	return CreatedHeroPowerResponse{
		ID:       hp.ID,
		HeroID:   hp.HeroID,
		PowerID:  hp.PowerID,
		Strength: string(hp.Strength),
		Hero:     NewHeroResponse(&hp.Hero),
		Power:    NewPowerResponse(&hp.Power),
	}
}

// NotFound responds 404 with {"error": msg}.
func NotFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(ErrorBody{Error: msg})
}

// BadRequest responds 400 with {"errors": msgs}.
func BadRequest(c *fiber.Ctx, msgs ...string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorsBody{Errors: msgs})
}

// ValidationFailed responds 400 if err is a *models.ValidationError and
// reports false otherwise.
func ValidationFailed(c *fiber.Ctx, err error) (bool, error) {
	var vErr *models.ValidationError
	if !errors.As(err, &vErr) {
		return false, nil
	}

	return true, BadRequest(c, vErr.Error())
}

// Internal logs err and returns the error rendered as a 500 by ErrorHandler.
func Internal(c *fiber.Ctx, err error, msg string) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg(msg)

	return fiber.ErrInternalServerError
}

// ID returns the numeric id route parameter. Ids that can't be a primary
// key report false.
func ID(c *fiber.Ctx) (uint, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}

	return uint(id), true
}

// Session returns a gorm session bound to the request context.
func Session(c *fiber.Ctx, db *gorm.DB) *gorm.DB {
	if db == nil {
		return nil
	}

	return db.WithContext(c.UserContext())
}

// ErrorHandler renders errors returned by handlers as {"error": msg}.
// Only *fiber.Error messages reach the client, anything else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := fiber.ErrInternalServerError.Message

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(code).JSON(ErrorBody{Error: msg})
}
