package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevatrack/volunteer-hours/pkg/core/services"
)

// ImportVolunteersCmd creates the import-volunteers command
func ImportVolunteersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import-volunteers",
		Short: "Import the volunteer roster from the configured master spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := app.Sheets()
			if err != nil {
				return err
			}

			volunteers, err := sheets.ListRosterVolunteers(app.Cfg)
			if err != nil {
				return err
			}

			fmt.Printf("\nParsed %d volunteers from the roster sheet\n", len(volunteers))

			result, err := services.ImportRoster(app.Ctx, app.Database, volunteers, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("✓ Roster imported: %d added, %d updated\n", result.Added, result.Updated)
			return nil
		},
	}
}
