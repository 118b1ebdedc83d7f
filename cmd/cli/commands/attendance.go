package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/core/services"
)

// MarkAttendanceCmd creates the mark-attendance command, an interactive
// session for recording who turned up at an event
func MarkAttendanceCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark-attendance <event_id>",
		Short: "Interactively mark attendance for an event and submit it in one batch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID := args[0]
			recordedBy, _ := cmd.Flags().GetString("recorded-by")
			defaultHours, _ := cmd.Flags().GetFloat64("default-hours")

			if defaultHours == 0 {
				defaultHours = app.Cfg.DefaultSessionHours
			}

			event, err := app.Database.GetEvent(app.Ctx, eventID)
			if err != nil {
				return fmt.Errorf("failed to load event: %w", err)
			}

			ws, err := services.LoadWorkingSet(app.Ctx, app.Database, eventID, defaultHours)
			if err != nil {
				return err
			}

			app.Logger.Debug("Attendance session started",
				zap.String("event_id", eventID),
				zap.Int("participants", ws.Len()))

			fmt.Printf("\nMarking attendance for %q (%s)\n", event.Name, event.StartDate.Format("2006-01-02"))
			fmt.Printf("%d volunteers loaded. Type 'help' for commands.\n\n", ws.Len())

			return runAttendanceSession(app, ws, eventID, recordedBy)
		},
	}

	cmd.Flags().String("recorded-by", "", "Volunteer id of the person recording attendance")
	cmd.Flags().Float64("default-hours", 0, "Hours credited when a volunteer is toggled present (defaults to config)")
	cmd.MarkFlagRequired("recorded-by")

	return cmd
}

// runAttendanceSession drives the toggle/submit loop on stdin
func runAttendanceSession(app *AppContext, ws *services.WorkingSet, eventID, recordedBy string) error {
	scanner := bufio.NewScanner(os.Stdin)
	names := make(map[string]string)

	for {
		fmt.Print("attendance> ")

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "help":
			printAttendanceHelp()

		case "list":
			printWorkingSet(app, ws, names)

		case "toggle":
			if len(parts) != 2 {
				fmt.Println("usage: toggle <volunteer_id>")
				continue
			}
			ws.Toggle(parts[1])
			status, ok := ws.Status(parts[1])
			if !ok {
				fmt.Printf("%s removed from the set\n", parts[1])
				continue
			}
			fmt.Printf("%s -> %s\n", parts[1], status)

		case "hours":
			if len(parts) != 3 {
				fmt.Println("usage: hours <volunteer_id> <hours>")
				continue
			}
			hours, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				fmt.Printf("invalid hours %q\n", parts[2])
				continue
			}
			ws.SetHours(parts[1], hours)
			fmt.Printf("%s hours set to %g\n", parts[1], hours)

		case "all-present":
			ws.MarkAllPresent()
			fmt.Printf("all %d volunteers marked present\n", ws.Len())

		case "all-absent":
			ws.MarkAllAbsent()
			fmt.Printf("all %d volunteers marked absent\n", ws.Len())

		case "submit":
			result, err := services.SubmitAttendance(app.Ctx, app.Database, app.Logger, eventID, recordedBy, ws)
			if err != nil {
				return err
			}
			fmt.Printf("\n✓ Attendance submitted: %d added, %d updated\n", result.Added, result.Updated)
			return nil

		case "quit", "exit":
			fmt.Println("Session discarded, nothing submitted.")
			return nil

		default:
			fmt.Printf("unknown command %q (type 'help')\n", parts[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	return nil
}

func printAttendanceHelp() {
	fmt.Println("\nCommands:")
	fmt.Println("  list                         Show the working set")
	fmt.Println("  toggle <volunteer_id>        Cycle a volunteer's status")
	fmt.Println("  hours <volunteer_id> <h>     Set hours for a volunteer")
	fmt.Println("  all-present                  Mark everyone present")
	fmt.Println("  all-absent                   Mark everyone absent")
	fmt.Println("  submit                       Persist the working set and exit")
	fmt.Println("  quit, exit                   Discard the session")
	fmt.Println()
}

func printWorkingSet(app *AppContext, ws *services.WorkingSet, names map[string]string) {
	entries := ws.Entries()
	if len(entries) == 0 {
		fmt.Println("working set is empty")
		return
	}

	for _, entry := range entries {
		name, ok := names[entry.VolunteerID]
		if !ok {
			if v, err := app.Database.GetVolunteer(app.Ctx, entry.VolunteerID); err == nil {
				name = v.FullName()
			}
			names[entry.VolunteerID] = name
		}
		fmt.Printf("  %-36s %-20s %-18s %g hours\n", entry.VolunteerID, name, entry.Status, entry.Hours)
	}
}

// SyncRosterCmd creates the sync-roster command
func SyncRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-roster <event_id> <volunteer_id>...",
		Short: "Replace an event's roster with the given volunteer set",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eventID := args[0]
			volunteerIDs := args[1:]

			result, err := services.SyncRoster(app.Ctx, app.Database, app.Logger, eventID, volunteerIDs)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster synced: %d added, %d removed\n", result.Added, result.Removed)
			return nil
		},
	}
}

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register <event_id> <volunteer_id>",
		Short: "Register a volunteer for an upcoming event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, _ := cmd.Flags().GetFloat64("hours")

			if err := services.Register(app.Ctx, app.Database, app.Logger, args[0], args[1], hours); err != nil {
				return err
			}

			fmt.Printf("\n✓ Volunteer %s registered for event %s\n", args[1], args[0])
			return nil
		},
	}

	cmd.Flags().Float64("hours", 0, "Hours to commit to (defaults to the event's declared hours)")

	return cmd
}
