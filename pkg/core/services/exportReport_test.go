package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/internal/config"
	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/core/pivot"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// mockExportStore implements db.ExportStore
type mockExportStore struct {
	volunteers []model.Volunteer
	events     []model.Event
	cells      []db.ReportCell
	err        error
}

func (m *mockExportStore) GetActiveVolunteers(ctx context.Context) ([]model.Volunteer, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.volunteers, nil
}

func (m *mockExportStore) GetActiveEvents(ctx context.Context) ([]model.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockExportStore) GetReportCells(ctx context.Context) ([]db.ReportCell, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.cells, nil
}

func TestBuildHoursReport(t *testing.T) {
	store := &mockExportStore{
		volunteers: []model.Volunteer{
			{ID: "vol-1", FirstName: "Asha", LastName: "Rao", Gender: model.GenderFemale},
		},
		events: []model.Event{
			{ID: "ev-1", Name: "Cleanup", StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), DeclaredHours: 4, CategoryCode: "area_based_1"},
		},
		cells: []db.ReportCell{
			{EventID: "ev-1", VolunteerID: "vol-1", HoursAttended: 4},
		},
	}
	cfg := &config.Config{ReportName: "NSS Hours"}

	doc, err := BuildHoursReport(context.Background(), store, cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "NSS Hours", doc.Title)

	// The event row landed in the first section with the volunteer's hours
	assert.Equal(t, pivot.Text("Cleanup"), doc.Rows[4].Cells[0])
	assert.Equal(t, pivot.Number(4), doc.Rows[4].Cells[3])
}

func TestBuildHoursReport_StoreError(t *testing.T) {
	store := &mockExportStore{err: errors.New("connection reset")}
	cfg := &config.Config{ReportName: "NSS Hours"}

	_, err := BuildHoursReport(context.Background(), store, cfg, zap.NewNop())
	assert.Error(t, err)
}

// mockDashboardStore implements DashboardStore
type mockDashboardStore struct {
	stats      db.DashboardStats
	topEvents  []db.TopEventRow
	categories []db.CategoryDistributionRow
	pending    int
	limit      int
}

func (m *mockDashboardStore) GetDashboardStats(ctx context.Context, now time.Time) (db.DashboardStats, error) {
	return m.stats, nil
}

func (m *mockDashboardStore) GetTopEvents(ctx context.Context, limit int) ([]db.TopEventRow, error) {
	m.limit = limit
	return m.topEvents, nil
}

func (m *mockDashboardStore) GetCategoryDistribution(ctx context.Context) ([]db.CategoryDistributionRow, error) {
	return m.categories, nil
}

func (m *mockDashboardStore) CountPendingApprovals(ctx context.Context) (int, error) {
	return m.pending, nil
}

func TestDashboard(t *testing.T) {
	store := &mockDashboardStore{
		stats:   db.DashboardStats{ActiveVolunteers: 40, TotalApprovedHours: 512},
		pending: 7,
		topEvents: []db.TopEventRow{
			{EventID: "ev-1", EventName: "Cleanup", ParticipantCount: 25, TotalHours: 100},
		},
		categories: []db.CategoryDistributionRow{
			{CategoryCode: "area_based_1", CategoryName: "Area Based 1", EventCount: 3, TotalHours: 60},
		},
	}

	view, err := Dashboard(context.Background(), store, zap.NewNop(), time.Now(), 5)
	require.NoError(t, err)
	assert.Equal(t, 40, view.Stats.ActiveVolunteers)
	assert.Equal(t, 512.0, view.Stats.TotalApprovedHours)
	assert.Equal(t, 7, view.PendingApprovals)
	require.Len(t, view.TopEvents, 1)
	assert.Equal(t, "Cleanup", view.TopEvents[0].EventName)
	assert.Equal(t, 5, store.limit, "configured top events limit should reach the store")
}
