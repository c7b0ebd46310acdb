package config

import (
	"fmt"

	"github.com/superheroes-api/superheroes/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	DisableMetrics bool   // do not expose /metrics
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Addr returns the listen address of the webserver.
func (w Webserver) Addr() string {
	return fmt.Sprintf(":%d", w.Port)
}
