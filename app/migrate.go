package app

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/superheroes-api/superheroes/internal/config"
	"github.com/superheroes-api/superheroes/internal/db/migrations"
)

func init() { //nolint: gochecknoinits
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

var (
	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateUpCmd = &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(_ *config.Config, db *gorm.DB) error {
				results, err := migrations.Up(cmd.Context(), db)
				if err != nil {
					return err
				}

				if len(results) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				}

				for _, r := range results {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "applied %s (%s)\n", r.Source.Path, r.Duration)
				}

				return nil
			})
		},
	}

	migrateDownCmd = &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(_ *config.Config, db *gorm.DB) error {
				r, err := migrations.Down(cmd.Context(), db)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s (%s)\n", r.Source.Path, r.Duration)

				return nil
			})
		},
	}

	migrateStatusCmd = &cobra.Command{
		Use:   "status",
		Short: "Show which migrations are applied",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(_ *config.Config, db *gorm.DB) error {
				statuses, err := migrations.Status(cmd.Context(), db)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint: mnd
				_, _ = fmt.Fprintln(w, "VERSION\tSTATE\tFILE")

				for _, s := range statuses {
					_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", s.Source.Version, s.State, s.Source.Path)
				}

				return w.Flush()
			})
		},
	}
)
