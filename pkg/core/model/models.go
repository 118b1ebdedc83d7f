package model

import "time"

// ParticipationStatus describes the attendance fact for one volunteer at one event.
type ParticipationStatus string

const (
	StatusRegistered       ParticipationStatus = "registered"
	StatusPresent          ParticipationStatus = "present"
	StatusAbsent           ParticipationStatus = "absent"
	StatusPartiallyPresent ParticipationStatus = "partially_present"
	StatusExcused          ParticipationStatus = "excused"
)

func (s ParticipationStatus) IsValid() bool {
	switch s {
	case StatusRegistered, StatusPresent, StatusAbsent, StatusPartiallyPresent, StatusExcused:
		return true
	}
	return false
}

// ApprovalStatus is the approval axis, independent of attendance.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) IsValid() bool {
	return s == ApprovalPending || s == ApprovalApproved || s == ApprovalRejected
}

// Gender uses single-letter codes matching the volunteer sheet convention.
type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderUnspecified Gender = ""
)

// Volunteer represents a registered programme volunteer
type Volunteer struct {
	ID          string
	FirstName   string
	LastName    string
	Gender      Gender
	YearOfStudy int
	Branch      string
	RollNumber  string
	Active      bool
}

// FullName returns "First Last", trimming the space when a part is missing.
func (v Volunteer) FullName() string {
	if v.FirstName == "" {
		return v.LastName
	}
	if v.LastName == "" {
		return v.FirstName
	}
	return v.FirstName + " " + v.LastName
}

// EventCategory groups events for reporting
type EventCategory struct {
	ID    string
	Code  string
	Name  string
	Color string
}

// Event represents a single volunteering event. Events are created by
// event-management flows and are read-only to this engine.
type Event struct {
	ID              string
	Name            string
	StartDate       time.Time
	EndDate         time.Time
	DeclaredHours   int
	CategoryID      string
	CategoryCode    string
	MaxParticipants int // 0 means unlimited
	Active          bool
	CreatedBy       string
}

// Participation is the central entity: one row per (event, volunteer) pair.
type Participation struct {
	ID                    string
	EventID               string
	VolunteerID           string
	Status                ParticipationStatus
	HoursAttended         float64
	DeclaredHours         float64
	ApprovalStatus        ApprovalStatus
	ApprovedHours         *float64
	RecordedByVolunteerID string
	ApprovedBy            string
	RegisteredAt          time.Time
	AttendanceDate        *time.Time
	ApprovedAt            *time.Time
	Notes                 string
	ApprovalNotes         string
}

// EffectiveHours returns the authoritative hour value for the row: approved
// hours once an approval exists, the raw attendance claim otherwise. Rejected
// rows always contribute zero.
func (p Participation) EffectiveHours() float64 {
	switch p.ApprovalStatus {
	case ApprovalApproved:
		if p.ApprovedHours != nil {
			return *p.ApprovedHours
		}
		return p.HoursAttended
	case ApprovalRejected:
		return 0
	}
	return p.HoursAttended
}

// MaxHoursPerEvent bounds hours_attended and approved_hours on a single row.
const MaxHoursPerEvent = 24
