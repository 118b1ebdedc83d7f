package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// statusRemoved is the toggle cycle's exit marker: the volunteer leaves the
// working set entirely.
const statusRemoved model.ParticipationStatus = ""

// toggleCycle drives the marking cycle: absent from the set -> present ->
// absent -> excused -> removed. Statuses loaded from persisted rows re-enter
// the cycle at a sensible point.
var toggleCycle = map[model.ParticipationStatus]model.ParticipationStatus{
	model.StatusPresent:          model.StatusAbsent,
	model.StatusAbsent:           model.StatusExcused,
	model.StatusExcused:          statusRemoved,
	model.StatusRegistered:       model.StatusPresent,
	model.StatusPartiallyPresent: model.StatusAbsent,
}

// WorkingSet accumulates the attendance selections of one marking session.
// It is purely in-memory; nothing touches the store until SubmitAttendance.
type WorkingSet struct {
	defaultHours float64
	entries      map[string]db.AttendanceEntry
}

// NewWorkingSet creates an empty working set. defaultHours is the hour credit
// a volunteer receives when first toggled to present.
func NewWorkingSet(defaultHours float64) *WorkingSet {
	return &WorkingSet{
		defaultHours: defaultHours,
		entries:      make(map[string]db.AttendanceEntry),
	}
}

// LoadWorkingSet seeds a working set from an event's persisted participation
// rows so a marking session starts from what was recorded last time.
func LoadWorkingSet(ctx context.Context, store db.ParticipationStore, eventID string, defaultHours float64) (*WorkingSet, error) {
	participants, err := store.GetParticipants(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	ws := NewWorkingSet(defaultHours)
	for _, p := range participants {
		ws.entries[p.VolunteerID] = db.AttendanceEntry{
			VolunteerID: p.VolunteerID,
			Status:      p.Status,
			Hours:       p.HoursAttended,
		}
	}
	return ws, nil
}

// Toggle advances one volunteer through the marking cycle. A volunteer not in
// the set joins as present with the default hours; present becomes absent,
// absent becomes excused, and excused leaves the set. The cycle is
// deterministic and has no side effects beyond this working set.
func (ws *WorkingSet) Toggle(volunteerID string) {
	entry, ok := ws.entries[volunteerID]
	if !ok {
		ws.entries[volunteerID] = db.AttendanceEntry{
			VolunteerID: volunteerID,
			Status:      model.StatusPresent,
			Hours:       ws.defaultHours,
		}
		return
	}

	next := toggleCycle[entry.Status]
	if next == statusRemoved {
		delete(ws.entries, volunteerID)
		return
	}

	entry.Status = next
	entry.Hours = 0
	if next == model.StatusPresent {
		entry.Hours = ws.defaultHours
	}
	ws.entries[volunteerID] = entry
}

// SetHours overrides the hour credit for a volunteer already in the set
func (ws *WorkingSet) SetHours(volunteerID string, hours float64) {
	entry, ok := ws.entries[volunteerID]
	if !ok {
		return
	}
	entry.Hours = hours
	ws.entries[volunteerID] = entry
}

// MarkAllPresent sets every volunteer in the working set to present with the
// default hours. Total replacement, not incremental.
func (ws *WorkingSet) MarkAllPresent() {
	for id, entry := range ws.entries {
		entry.Status = model.StatusPresent
		entry.Hours = ws.defaultHours
		ws.entries[id] = entry
	}
}

// MarkAllAbsent sets every volunteer in the working set to absent with zero hours
func (ws *WorkingSet) MarkAllAbsent() {
	for id, entry := range ws.entries {
		entry.Status = model.StatusAbsent
		entry.Hours = 0
		ws.entries[id] = entry
	}
}

// Status reports a volunteer's current state in the set
func (ws *WorkingSet) Status(volunteerID string) (model.ParticipationStatus, bool) {
	entry, ok := ws.entries[volunteerID]
	if !ok {
		return statusRemoved, false
	}
	return entry.Status, true
}

// Len returns the number of volunteers currently in the set
func (ws *WorkingSet) Len() int {
	return len(ws.entries)
}

// Entries returns the working set as an ordered batch, sorted by volunteer id
// so submission order is deterministic
func (ws *WorkingSet) Entries() []db.AttendanceEntry {
	entries := make([]db.AttendanceEntry, 0, len(ws.entries))
	for _, entry := range ws.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].VolunteerID < entries[j].VolunteerID
	})
	return entries
}

// SubmitAttendance validates and persists a working set in one transaction.
// An empty working set is a valid no-op. Validation happens before any store
// round-trip; the store applies the whole batch atomically.
func SubmitAttendance(
	ctx context.Context,
	store db.ParticipationStore,
	logger *zap.Logger,
	eventID, recordedBy string,
	ws *WorkingSet,
) (db.SubmitResult, error) {
	entries := ws.Entries()
	logger.Debug("Submitting attendance",
		zap.String("event_id", eventID),
		zap.Int("entries", len(entries)))

	if len(entries) == 0 {
		return db.SubmitResult{}, nil
	}

	for _, entry := range entries {
		if !entry.Status.IsValid() {
			return db.SubmitResult{}, fmt.Errorf("%w: invalid participation status %q", db.ErrValidation, entry.Status)
		}
		if entry.Hours < 0 || entry.Hours > model.MaxHoursPerEvent {
			return db.SubmitResult{}, fmt.Errorf("%w: hours %.1f for volunteer %s outside [0, %d]",
				db.ErrValidation, entry.Hours, entry.VolunteerID, model.MaxHoursPerEvent)
		}
	}

	result, err := store.SubmitAttendance(ctx, eventID, recordedBy, entries)
	if err != nil {
		return db.SubmitResult{}, fmt.Errorf("failed to submit attendance: %w", err)
	}

	logger.Info("Attendance submitted",
		zap.String("event_id", eventID),
		zap.Int("added", result.Added),
		zap.Int("updated", result.Updated))

	return result, nil
}

// SyncRoster replaces an event's roster with the desired volunteer set.
// Duplicate ids in the input are collapsed. Submitting the same roster twice
// in a row is a no-op.
func SyncRoster(
	ctx context.Context,
	store db.ParticipationStore,
	logger *zap.Logger,
	eventID string,
	volunteerIDs []string,
) (db.SyncResult, error) {
	seen := make(map[string]bool, len(volunteerIDs))
	deduped := make([]string, 0, len(volunteerIDs))
	for _, id := range volunteerIDs {
		if !seen[id] {
			seen[id] = true
			deduped = append(deduped, id)
		}
	}

	logger.Debug("Syncing roster",
		zap.String("event_id", eventID),
		zap.Int("desired", len(deduped)))

	result, err := store.SyncAttendance(ctx, eventID, deduped)
	if err != nil {
		return db.SyncResult{}, fmt.Errorf("failed to sync roster: %w", err)
	}

	logger.Info("Roster synced",
		zap.String("event_id", eventID),
		zap.Int("added", result.Added),
		zap.Int("removed", result.Removed))

	return result, nil
}

// RegisterStore is the persistence surface self-registration needs
type RegisterStore interface {
	db.ParticipationStore
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
}

// Register self-registers a volunteer for an event. requestedHours may be
// lower than the event's declared hours; zero means the event's declared
// hours, capped at the per-event maximum. Validation runs before the store
// transaction; capacity and duplicate checks happen inside it.
func Register(
	ctx context.Context,
	store RegisterStore,
	logger *zap.Logger,
	eventID, volunteerID string,
	requestedHours float64,
) error {
	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to load event: %w", err)
	}

	declared := requestedHours
	if declared == 0 {
		declared = float64(event.DeclaredHours)
		if declared > model.MaxHoursPerEvent {
			declared = model.MaxHoursPerEvent
		}
	}

	if declared < 0 || declared > model.MaxHoursPerEvent {
		return fmt.Errorf("%w: requested hours %.1f outside [0, %d]", db.ErrValidation, declared, model.MaxHoursPerEvent)
	}
	if declared > float64(event.DeclaredHours) {
		return fmt.Errorf("%w: requested hours %.1f exceed event's declared %d", db.ErrValidation, declared, event.DeclaredHours)
	}

	if err := store.RegisterForEvent(ctx, eventID, volunteerID, declared); err != nil {
		return err
	}

	logger.Info("Volunteer registered",
		zap.String("event_id", eventID),
		zap.String("volunteer_id", volunteerID),
		zap.Float64("declared_hours", declared))

	return nil
}
