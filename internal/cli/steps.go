package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/wuyun-api/internal/config"
	"github.com/zapponejosh/wuyun-api/internal/database"
)

func stepsCmd(e *env) *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "steps",
		Short: "Print the six-step main-qi reference table",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if dbPath == "" {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				dbPath = cfg.DatabasePath
			}

			db, err := database.Open(database.DefaultConfig(dbPath), e.log)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer db.Close()

			ctx := c.Context()
			if _, err := db.Migrate(ctx); err != nil {
				return fmt.Errorf("migrate database: %w", err)
			}

			steps, err := db.ListSeasonalSteps(ctx)
			if err != nil {
				return fmt.Errorf("list seasonal steps: %w", err)
			}

			tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
			for _, s := range steps {
				fmt.Fprintf(tw, "%s\t%s\n", s.Label(), s.MainQi.Chinese())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite path (default: DATABASE_PATH)")
	return cmd
}
