package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// DashboardView bundles everything the dashboard screen shows
type DashboardView struct {
	Stats            db.DashboardStats
	PendingApprovals int
	TopEvents        []db.TopEventRow
	Categories       []db.CategoryDistributionRow
}

// DashboardStore defines the reads the dashboard needs
type DashboardStore interface {
	GetDashboardStats(ctx context.Context, now time.Time) (db.DashboardStats, error)
	GetTopEvents(ctx context.Context, limit int) ([]db.TopEventRow, error)
	GetCategoryDistribution(ctx context.Context) ([]db.CategoryDistributionRow, error)
	CountPendingApprovals(ctx context.Context) (int, error)
}

// Dashboard assembles the headline view: stats, the approval queue size, the
// top events, and the category distribution. All figures come from approved
// hours; unapproved claims never reach these numbers.
func Dashboard(
	ctx context.Context,
	store DashboardStore,
	logger *zap.Logger,
	now time.Time,
	topEventsLimit int,
) (*DashboardView, error) {
	logger.Debug("Building dashboard view")

	stats, err := store.GetDashboardStats(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	pending, err := store.CountPendingApprovals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending approvals: %w", err)
	}

	topEvents, err := store.GetTopEvents(ctx, topEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top events: %w", err)
	}

	categories, err := store.GetCategoryDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch category distribution: %w", err)
	}

	return &DashboardView{
		Stats:            stats,
		PendingApprovals: pending,
		TopEvents:        topEvents,
		Categories:       categories,
	}, nil
}

// VolunteerSummaries returns per-volunteer hour totals for the summary screen
func VolunteerSummaries(
	ctx context.Context,
	store db.ReportStore,
	logger *zap.Logger,
) ([]db.VolunteerHoursSummaryRow, error) {
	rows, err := store.GetVolunteerHoursSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer summaries: %w", err)
	}

	logger.Debug("Loaded volunteer summaries", zap.Int("count", len(rows)))
	return rows, nil
}

// AttendanceSummaries returns per-event attendance outcome counts
func AttendanceSummaries(
	ctx context.Context,
	store db.ReportStore,
	logger *zap.Logger,
) ([]db.AttendanceSummaryRow, error) {
	rows, err := store.GetAttendanceSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance summaries: %w", err)
	}

	logger.Debug("Loaded attendance summaries", zap.Int("count", len(rows)))
	return rows, nil
}
