// Package handler holds what the route handlers share: the Service
// interface, the JSON error handler and the response shapes.
package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
)

// ErrNilDependency is returned by Init when app, cfg or db is nil.
var ErrNilDependency = errors.New(ErrNilACDFatalLogMsg)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error
}
