// Package daemon assembles the database and the web service into the
// running API server.
package daemon

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	"github.com/superheroes-api/superheroes/internal/db/database"
	"github.com/superheroes-api/superheroes/internal/db/migrations"
	"github.com/superheroes-api/superheroes/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start serves http on the configured port until SIGINT or SIGTERM, then
// closes the database.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	err := d.webService.Start(d.cfg.Webserver.Addr())

	if cErr := database.Close(d.db); cErr != nil {
		log.Error().Err(cErr).Msg("failed to close database")
	}

	return err
}

// New opens the database, applies pending migrations, seeds an empty
// database if enabled and builds the web service.
func New(ctx context.Context, cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, config.ErrNilConfig
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	d, err := build(ctx, cfg, db)
	if err != nil {
		_ = database.Close(db)
		return nil, err
	}

	return d, nil
}

func build(ctx context.Context, cfg *config.Config, db *gorm.DB) (*Daemon, error) {
	results, err := migrations.Up(ctx, db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	for _, r := range results {
		log.Info().Str("migration", r.Source.Path).Dur("duration", r.Duration).Msg("migration applied")
	}

	if err = seed(cfg, db); err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	webService, err := web.New(cfg, db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create web service")
	}

	return &Daemon{
		cfg:        cfg,
		db:         db,
		webService: webService,
	}, nil
}
