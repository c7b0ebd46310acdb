package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	"github.com/superheroes-api/superheroes/internal/db/migrations"
	"github.com/superheroes-api/superheroes/internal/db/seed"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate and fill an empty database with the demo heroes and powers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDB(func(_ *config.Config, db *gorm.DB) error {
			if _, err := migrations.Up(cmd.Context(), db); err != nil {
				return err
			}

			res, err := seed.Run(db)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %d heroes, %d powers, %d hero powers\n", res.Heroes, res.Powers, res.HeroPowers)

			return nil
		})
	},
}
