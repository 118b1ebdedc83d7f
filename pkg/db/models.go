package db

import (
	"time"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
)

// AttendanceEntry is one volunteer's attendance state in a submitted batch
type AttendanceEntry struct {
	VolunteerID string
	Status      model.ParticipationStatus
	Hours       float64
}

// SubmitResult reports the aggregate outcome of an attendance submission
type SubmitResult struct {
	Added   int
	Updated int
}

// SyncResult reports the aggregate outcome of a roster synchronization
type SyncResult struct {
	Added   int
	Removed int
}

// BulkApprovalResult reports how many rows a bulk decision actually touched.
// Skipped counts rows that were no longer pending when the update ran.
type BulkApprovalResult struct {
	Approved int
	Skipped  int
}

// DashboardStats holds the headline figures for the dashboard
type DashboardStats struct {
	ActiveVolunteers   int
	TotalEvents        int
	TotalApprovedHours float64
	ActiveEvents       int
	UpcomingEvents     int
}

// CategoryDistributionRow is one category's share of events, people, and hours
type CategoryDistributionRow struct {
	CategoryCode     string
	CategoryName     string
	EventCount       int
	ParticipantCount int
	TotalHours       float64
}

// TopEventRow is one entry in the participant-ranked event list
type TopEventRow struct {
	EventID          string
	EventName        string
	ParticipantCount int
	TotalHours       float64
}

// AttendanceSummaryRow summarises attendance outcomes for one event
type AttendanceSummaryRow struct {
	EventID        string
	EventName      string
	Registered     int
	Present        int
	Absent         int
	AttendanceRate float64
}

// VolunteerHoursSummaryRow summarises one volunteer's credited activity
type VolunteerHoursSummaryRow struct {
	VolunteerID   string
	VolunteerName string
	TotalHours    float64
	ApprovedHours float64
	EventCount    int
	LastActivity  *time.Time
}

// ReportCell is one (event, volunteer) hour figure feeding the pivot table.
// Only rows with a present or partially_present status and positive hours are
// ever loaded into one of these.
type ReportCell struct {
	EventID       string
	VolunteerID   string
	HoursAttended float64
}
