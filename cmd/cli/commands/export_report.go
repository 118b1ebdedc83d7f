package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/core/pivot"
	"github.com/sevatrack/volunteer-hours/pkg/core/services"
)

// ExportReportCmd creates the export-report command
func ExportReportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-report",
		Short: "Build the hours pivot report and write it as csv, xlsx, or to Google Sheets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			outDir, _ := cmd.Flags().GetString("out")

			doc, err := services.BuildHoursReport(app.Ctx, app.Database, app.Cfg, app.Logger)
			if err != nil {
				return err
			}

			switch format {
			case "csv", "xlsx":
				return writeReportFile(app, doc, format, outDir)
			case "sheets":
				return publishReport(app, doc)
			default:
				return fmt.Errorf("unknown format %q (want csv, xlsx, or sheets)", format)
			}
		},
	}

	cmd.Flags().String("format", "csv", "Output format: csv, xlsx, or sheets")
	cmd.Flags().String("out", ".", "Directory to write the report file into")

	return cmd
}

func writeReportFile(app *AppContext, doc *pivot.Document, format, outDir string) error {
	path := filepath.Join(outDir, pivot.Filename(app.Cfg.ReportName, time.Now(), format))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	switch format {
	case "csv":
		err = pivot.RenderCSV(doc, file)
	case "xlsx":
		err = pivot.RenderXLSX(doc, file)
	}
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to flush report file: %w", err)
	}

	app.Logger.Info("Report written", zap.String("path", path))
	fmt.Printf("\n✓ Report written to %s\n", path)
	return nil
}

func publishReport(app *AppContext, doc *pivot.Document) error {
	if app.Cfg.ReportSheetID == "" {
		return fmt.Errorf("reportSheetID must be configured to publish to Sheets")
	}

	sheets, err := app.Sheets()
	if err != nil {
		return err
	}

	tabTitle := fmt.Sprintf("%s %s", app.Cfg.ReportName, time.Now().Format("2006-01-02"))
	if err := sheets.PublishReport(app.Cfg.ReportSheetID, tabTitle, doc); err != nil {
		return err
	}

	app.Logger.Info("Report published",
		zap.String("spreadsheet_id", app.Cfg.ReportSheetID),
		zap.String("tab", tabTitle))
	fmt.Printf("\n✓ Report published to tab %q\n", tabTitle)
	return nil
}
