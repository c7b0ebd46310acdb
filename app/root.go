// Package app implements the main application commands.
package app

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	"github.com/superheroes-api/superheroes/internal/db/database"
	"github.com/superheroes-api/superheroes/internal/logger"
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(
		&configPath,
		"config",
		"./etc/",
		"directory containing "+config.FileName,
	)
}

var (
	configPath string // directory of the configuration file

	rootCmd = &cobra.Command{
		Use:   "superheroes",
		Short: "Superheroes is a small REST API for heroes and their powers",
		Long: `Superheroes serves a JSON API for superheroes, their powers and the
strength with which a hero wields a power. Run "start" to serve it.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// configDir returns configPath with a trailing separator.
func configDir() string {
	if configPath == "" || strings.HasSuffix(configPath, string(os.PathSeparator)) {
		return configPath
	}

	return configPath + string(os.PathSeparator)
}

// loadConfig reads the configuration and initializes the global logger.
func loadConfig() (*config.Config, error) {
	cfg, err := config.ReadConfig(configDir())
	if err != nil {
		return nil, err
	}

	if err = logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// withDB runs fn with an open database and closes it afterwards.
func withDB(fn func(cfg *config.Config, db *gorm.DB) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	db, err := database.Open(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = database.Close(db)
	}()

	return fn(cfg, db)
}
