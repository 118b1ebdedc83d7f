package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevatrack/volunteer-hours/pkg/core/services"
)

// SeedEventsCmd creates the seed-events command
func SeedEventsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-events <from> <until>",
		Short: "Expand the configured recurring event templates over a date window",
		Long: `Expand the recurring event templates declared in the config file over the
given date window (inclusive, YYYY-MM-DD) and create an event per occurrence.
Dates that already have an event of the same name are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid from date %q: %w", args[0], err)
			}
			until, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("invalid until date %q: %w", args[1], err)
			}

			result, err := services.SeedEvents(app.Ctx, app.Database, app.Cfg, app.Logger, from, until)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Events seeded: %d created, %d already existed\n", result.Created, result.Skipped)
			return nil
		},
	}
}
