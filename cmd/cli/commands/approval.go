package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sevatrack/volunteer-hours/pkg/core/services"
)

// ApproveHoursCmd creates the approve-hours command
func ApproveHoursCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "approve-hours <participation_id>",
		Short: "Approve a volunteer's claimed hours, optionally overriding the credit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			approverID, _ := cmd.Flags().GetString("approver")
			notes, _ := cmd.Flags().GetString("notes")

			var hoursOverride *float64
			if cmd.Flags().Changed("hours") {
				hours, _ := cmd.Flags().GetFloat64("hours")
				hoursOverride = &hours
			}

			if err := services.ApproveHours(app.Ctx, app.Database, app.Logger, args[0], approverID, hoursOverride, notes); err != nil {
				return err
			}

			fmt.Printf("\n✓ Hours approved for participation %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("approver", "", "Volunteer id of the approver")
	cmd.Flags().Float64("hours", 0, "Override the credited hours (defaults to the claimed hours)")
	cmd.Flags().String("notes", "", "Approval notes")
	cmd.MarkFlagRequired("approver")

	return cmd
}

// RejectHoursCmd creates the reject-hours command
func RejectHoursCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reject-hours <participation_id>",
		Short: "Reject a volunteer's claimed hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rejecterID, _ := cmd.Flags().GetString("approver")
			notes, _ := cmd.Flags().GetString("notes")

			if err := services.RejectHours(app.Ctx, app.Database, app.Logger, args[0], rejecterID, notes); err != nil {
				return err
			}

			fmt.Printf("\n✓ Hours rejected for participation %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().String("approver", "", "Volunteer id of the rejecter")
	cmd.Flags().String("notes", "", "Rejection notes")
	cmd.MarkFlagRequired("approver")

	return cmd
}

// BulkApproveCmd creates the bulk-approve command
func BulkApproveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk-approve <participation_id>...",
		Short: "Approve many pending claims at their attended hours in one shot",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			approverID, _ := cmd.Flags().GetString("approver")
			notes, _ := cmd.Flags().GetString("notes")

			result, err := services.BulkApproveHours(app.Ctx, app.Database, app.Logger, args, approverID, notes)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Bulk approval done: %d approved, %d skipped (already decided)\n",
				result.Approved, result.Skipped)
			return nil
		},
	}

	cmd.Flags().String("approver", "", "Volunteer id of the approver")
	cmd.Flags().String("notes", "", "Approval notes applied to every row")
	cmd.MarkFlagRequired("approver")

	return cmd
}

// ResetApprovalCmd creates the reset-approval command
func ResetApprovalCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-approval <participation_id>",
		Short: "Return a decided claim to the pending queue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.ResetApproval(app.Ctx, app.Database, app.Logger, args[0]); err != nil {
				return err
			}

			fmt.Printf("\n✓ Participation %s returned to pending\n", args[0])
			return nil
		},
	}
}

// PendingApprovalsCmd creates the pending-approvals command
func PendingApprovalsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pending-approvals",
		Short: "List every claim waiting for an approval decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pending, count, err := services.PendingApprovals(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if count == 0 {
				fmt.Println("\nNo pending approvals.")
				return nil
			}

			fmt.Printf("\n%d pending approvals:\n\n", count)
			for _, p := range pending {
				date := "-"
				if p.AttendanceDate != nil {
					date = p.AttendanceDate.Format("2006-01-02")
				}
				fmt.Printf("  %s  event=%s volunteer=%s  %s  %g hours\n",
					p.ID, p.EventID, p.VolunteerID, date, p.HoursAttended)
			}
			fmt.Println()

			return nil
		},
	}
}
