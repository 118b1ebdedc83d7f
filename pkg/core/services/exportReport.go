package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/internal/config"
	"github.com/sevatrack/volunteer-hours/pkg/core/pivot"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// BuildHoursReport assembles the pivot-table document: active volunteers in
// column order, active events partitioned into the four report sections, and
// the countable participation cells. The export never mutates anything; it can
// run alongside attendance and approval traffic and at worst sees a slightly
// stale snapshot.
func BuildHoursReport(
	ctx context.Context,
	store db.ExportStore,
	cfg *config.Config,
	logger *zap.Logger,
) (*pivot.Document, error) {
	logger.Debug("Building hours report")

	volunteers, err := store.GetActiveVolunteers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}
	logger.Debug("Fetched volunteers", zap.Int("count", len(volunteers)))

	events, err := store.GetActiveEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	logger.Debug("Fetched events", zap.Int("count", len(events)))

	cells, err := store.GetReportCells(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report cells: %w", err)
	}
	logger.Debug("Fetched report cells", zap.Int("count", len(cells)))

	doc := pivot.BuildReport(cfg.ReportName, pivot.Input{
		Volunteers: volunteers,
		Events:     events,
		Cells:      cells,
	})

	logger.Info("Hours report built",
		zap.Int("rows", len(doc.Rows)),
		zap.Int("volunteers", len(volunteers)),
		zap.Int("events", len(events)))

	return doc, nil
}
