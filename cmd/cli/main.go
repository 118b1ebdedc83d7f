package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/cmd/cli/commands"
	"github.com/sevatrack/volunteer-hours/internal/config"
	"github.com/sevatrack/volunteer-hours/pkg/postgres"
	"github.com/sevatrack/volunteer-hours/pkg/utils/logging"
)

var (
	env      string
	database *postgres.DB

	// app is created empty before command registration and populated by
	// initApp once flags are parsed
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "volunteer-hours",
		Short: "Volunteer hours CLI - Track participation and approve hour credits",
		Long:  `A CLI tool for recording event attendance, approving volunteer hour claims, and exporting the hours pivot report.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if database != nil {
				database.Close()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.MarkAttendanceCmd(app))
	rootCmd.AddCommand(commands.SyncRosterCmd(app))
	rootCmd.AddCommand(commands.RegisterCmd(app))
	rootCmd.AddCommand(commands.ApproveHoursCmd(app))
	rootCmd.AddCommand(commands.RejectHoursCmd(app))
	rootCmd.AddCommand(commands.BulkApproveCmd(app))
	rootCmd.AddCommand(commands.ResetApprovalCmd(app))
	rootCmd.AddCommand(commands.PendingApprovalsCmd(app))
	rootCmd.AddCommand(commands.DashboardCmd(app))
	rootCmd.AddCommand(commands.VolunteerSummaryCmd(app))
	rootCmd.AddCommand(commands.AttendanceSummaryCmd(app))
	rootCmd.AddCommand(commands.ExportReportCmd(app))
	rootCmd.AddCommand(commands.SeedEventsCmd(app))
	rootCmd.AddCommand(commands.NotifyPendingCmd(app))
	rootCmd.AddCommand(commands.ImportVolunteersCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, and the database connection
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Env = env

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Connect to the database and apply migrations
	app.Logger.Info("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = database
	app.Logger.Info("Database initialized successfully")

	return nil
}
