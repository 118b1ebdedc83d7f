package db

import (
	"context"
	"time"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
)

// ParticipationStore defines the mutations the attendance manager needs
type ParticipationStore interface {
	GetParticipants(ctx context.Context, eventID string) ([]model.Participation, error)
	SubmitAttendance(ctx context.Context, eventID, recordedBy string, entries []AttendanceEntry) (SubmitResult, error)
	SyncAttendance(ctx context.Context, eventID string, volunteerIDs []string) (SyncResult, error)
	RegisterForEvent(ctx context.Context, eventID, volunteerID string, declaredHours float64) error
}

// ApprovalStore defines the mutations and queries of the approval workflow
type ApprovalStore interface {
	GetParticipation(ctx context.Context, participationID string) (*model.Participation, error)
	ApproveHours(ctx context.Context, participationID, approverID string, hours float64, notes string) error
	RejectHours(ctx context.Context, participationID, rejecterID string, notes string) error
	BulkApproveHours(ctx context.Context, participationIDs []string, approverID string, notes string) (BulkApprovalResult, error)
	ResetApproval(ctx context.Context, participationID string) error
	CountPendingApprovals(ctx context.Context) (int, error)
	GetPendingParticipations(ctx context.Context) ([]model.Participation, error)
}

// ReportStore defines the read-only aggregate queries
type ReportStore interface {
	GetDashboardStats(ctx context.Context, now time.Time) (DashboardStats, error)
	GetCategoryDistribution(ctx context.Context) ([]CategoryDistributionRow, error)
	GetTopEvents(ctx context.Context, limit int) ([]TopEventRow, error)
	GetAttendanceSummary(ctx context.Context) ([]AttendanceSummaryRow, error)
	GetVolunteerHoursSummary(ctx context.Context) ([]VolunteerHoursSummaryRow, error)
}

// ExportStore defines the reads the pivot-table export needs
type ExportStore interface {
	GetActiveVolunteers(ctx context.Context) ([]model.Volunteer, error)
	GetActiveEvents(ctx context.Context) ([]model.Event, error)
	GetReportCells(ctx context.Context) ([]ReportCell, error)
}

// EventStore defines event reads plus the seeding insert
type EventStore interface {
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
	GetActiveEvents(ctx context.Context) ([]model.Event, error)
	InsertEvents(ctx context.Context, events []model.Event) (int, error)
}

// Database is the full persistence surface, implemented by postgres.DB
type Database interface {
	ParticipationStore
	ApprovalStore
	ReportStore
	ExportStore
	EventStore
	GetVolunteer(ctx context.Context, volunteerID string) (*model.Volunteer, error)
	UpsertVolunteers(ctx context.Context, volunteers []model.Volunteer) (SubmitResult, error)
}
