package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevatrack/volunteer-hours/pkg/core/services"
)

// NotifyPendingCmd creates the notify-pending command
func NotifyPendingCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify-pending",
		Short: "Email the approval recipient a digest of claims awaiting a decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipient, _ := cmd.Flags().GetString("to")
			if recipient == "" {
				recipient = app.Cfg.ApprovalRecipient
			}

			mailer, err := app.Gmail()
			if err != nil {
				return err
			}

			count, err := services.NotifyPendingApprovals(app.Ctx, app.Database, mailer, recipient, app.Logger)
			if err != nil {
				return err
			}

			if count == 0 {
				fmt.Println("\nNothing pending, no digest sent.")
				return nil
			}

			fmt.Printf("\n✓ Digest of %d pending claims sent to %s\n", count, recipient)
			return nil
		},
	}

	cmd.Flags().String("to", "", "Digest recipient (defaults to approvalRecipient from config)")

	return cmd
}
