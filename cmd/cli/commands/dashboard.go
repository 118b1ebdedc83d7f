package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sevatrack/volunteer-hours/pkg/core/services"
)

// DashboardCmd creates the dashboard command
func DashboardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show headline stats, the approval queue, top events, and category distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := services.Dashboard(app.Ctx, app.Database, app.Logger, time.Now(), app.Cfg.TopEventsLimit)
			if err != nil {
				return err
			}

			fmt.Printf("\nActive volunteers:    %d\n", view.Stats.ActiveVolunteers)
			fmt.Printf("Total events:         %d\n", view.Stats.TotalEvents)
			fmt.Printf("Active events:        %d\n", view.Stats.ActiveEvents)
			fmt.Printf("Upcoming events:      %d\n", view.Stats.UpcomingEvents)
			fmt.Printf("Total approved hours: %g\n", view.Stats.TotalApprovedHours)
			fmt.Printf("Pending approvals:    %d\n", view.PendingApprovals)

			if len(view.TopEvents) > 0 {
				fmt.Printf("\nTop events:\n")
				for i, e := range view.TopEvents {
					fmt.Printf("  %2d. %-40s %3d participants  %g hours\n",
						i+1, e.EventName, e.ParticipantCount, e.TotalHours)
				}
			}

			if len(view.Categories) > 0 {
				fmt.Printf("\nHours by category:\n")
				for _, c := range view.Categories {
					fmt.Printf("  %-25s %3d events  %g hours\n", c.CategoryName, c.EventCount, c.TotalHours)
				}
			}
			fmt.Println()

			return nil
		},
	}
}

// VolunteerSummaryCmd creates the volunteer-summary command
func VolunteerSummaryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "volunteer-summary",
		Short: "Show per-volunteer effective hour totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := services.VolunteerSummaries(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Println("\nNo volunteer activity yet.")
				return nil
			}

			fmt.Printf("\n%-30s %8s %10s %8s  %s\n", "Volunteer", "Events", "Effective", "Approved", "Last activity")
			for _, r := range rows {
				lastActivity := "-"
				if r.LastActivity != nil {
					lastActivity = r.LastActivity.Format("2006-01-02")
				}
				fmt.Printf("%-30s %8d %10g %8g  %s\n",
					r.VolunteerName, r.EventCount, r.TotalHours, r.ApprovedHours, lastActivity)
			}
			fmt.Println()

			return nil
		},
	}
}

// AttendanceSummaryCmd creates the attendance-summary command
func AttendanceSummaryCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "attendance-summary",
		Short: "Show per-event attendance outcome counts and rates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := services.AttendanceSummaries(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			if len(rows) == 0 {
				fmt.Println("\nNo attendance recorded yet.")
				return nil
			}

			fmt.Printf("\n%-40s %10s %8s %8s %8s\n", "Event", "Registered", "Present", "Absent", "Rate")
			for _, r := range rows {
				fmt.Printf("%-40s %10d %8d %8d %7.1f%%\n",
					r.EventName, r.Registered, r.Present, r.Absent, r.AttendanceRate*100)
			}
			fmt.Println()

			return nil
		},
	}
}
