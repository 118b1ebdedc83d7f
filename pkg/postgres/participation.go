package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

const participationColumns = `
	id::text, event_id::text, volunteer_id::text, participation_status,
	hours_attended, declared_hours, approval_status, approved_hours,
	COALESCE(recorded_by_volunteer_id::text, ''), COALESCE(approved_by::text, ''),
	registered_at, attendance_date, approved_at, notes, approval_notes`

func scanParticipation(row pgx.Row) (*model.Participation, error) {
	var p model.Participation
	if err := row.Scan(
		&p.ID, &p.EventID, &p.VolunteerID, &p.Status,
		&p.HoursAttended, &p.DeclaredHours, &p.ApprovalStatus, &p.ApprovedHours,
		&p.RecordedByVolunteerID, &p.ApprovedBy,
		&p.RegisteredAt, &p.AttendanceDate, &p.ApprovedAt, &p.Notes, &p.ApprovalNotes,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetParticipants retrieves all participation rows for an event
func (d *DB) GetParticipants(ctx context.Context, eventID string) ([]model.Participation, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+participationColumns+`
		FROM event_participation
		WHERE event_id = $1
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query participants: %w", translateError(err))
	}
	defer rows.Close()

	var participants []model.Participation
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		participants = append(participants, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participants: %w", translateError(err))
	}

	return participants, nil
}

// SubmitAttendance persists a marked attendance batch in one transaction.
// Each entry is upserted on the (event_id, volunteer_id) key: existing rows
// keep their approval state, notes, and registration timestamp.
func (d *DB) SubmitAttendance(ctx context.Context, eventID, recordedBy string, entries []db.AttendanceEntry) (db.SubmitResult, error) {
	var result db.SubmitResult
	if len(entries) == 0 {
		return result, nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: %v", db.ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	for _, entry := range entries {
		var recordedByArg *string
		if recordedBy != "" {
			recordedByArg = &recordedBy
		}

		// xmax = 0 only holds for freshly inserted rows, which distinguishes
		// the added count from the updated count without a second query.
		var inserted bool
		err := tx.QueryRow(ctx, `
			INSERT INTO event_participation
				(event_id, volunteer_id, participation_status, hours_attended,
				 declared_hours, attendance_date, recorded_by_volunteer_id)
			VALUES ($1, $2, $3, $4, $4, NOW(), $5)
			ON CONFLICT (event_id, volunteer_id) DO UPDATE SET
				participation_status = EXCLUDED.participation_status,
				hours_attended = EXCLUDED.hours_attended,
				attendance_date = NOW(),
				recorded_by_volunteer_id = EXCLUDED.recorded_by_volunteer_id
			RETURNING (xmax = 0)
		`, eventID, entry.VolunteerID, entry.Status, entry.Hours, recordedByArg).Scan(&inserted)
		if err != nil {
			return db.SubmitResult{}, fmt.Errorf("failed to upsert attendance for volunteer %s: %w", entry.VolunteerID, translateError(err))
		}

		if inserted {
			result.Added++
		} else {
			result.Updated++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return db.SubmitResult{}, fmt.Errorf("%w: %v", db.ErrStoreUnavailable, err)
	}

	return result, nil
}

// SyncAttendance replaces an event's roster by set difference: rows for
// volunteers no longer on the roster are deleted, missing volunteers are
// inserted as present with zero hours, and rows for volunteers who remain keep
// their approval state and notes untouched.
func (d *DB) SyncAttendance(ctx context.Context, eventID string, volunteerIDs []string) (db.SyncResult, error) {
	var result db.SyncResult

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: %v", db.ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT volunteer_id::text FROM event_participation WHERE event_id = $1
	`, eventID)
	if err != nil {
		return result, fmt.Errorf("failed to query current roster: %w", translateError(err))
	}

	current := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return result, fmt.Errorf("failed to scan roster entry: %w", err)
		}
		current[id] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return result, fmt.Errorf("error iterating roster: %w", translateError(err))
	}

	desired := make(map[string]bool, len(volunteerIDs))
	for _, id := range volunteerIDs {
		desired[id] = true
	}

	var toRemove []string
	for id := range current {
		if !desired[id] {
			toRemove = append(toRemove, id)
		}
	}

	var toAdd []string
	for _, id := range volunteerIDs {
		if !current[id] {
			toAdd = append(toAdd, id)
		}
	}

	if len(toRemove) > 0 {
		tag, err := tx.Exec(ctx, `
			DELETE FROM event_participation
			WHERE event_id = $1 AND volunteer_id = ANY($2)
		`, eventID, toRemove)
		if err != nil {
			return result, fmt.Errorf("failed to remove roster entries: %w", translateError(err))
		}
		result.Removed = int(tag.RowsAffected())
	}

	for _, volunteerID := range toAdd {
		_, err := tx.Exec(ctx, `
			INSERT INTO event_participation
				(event_id, volunteer_id, participation_status, hours_attended, declared_hours)
			VALUES ($1, $2, 'present', 0, 0)
		`, eventID, volunteerID)
		if err != nil {
			return db.SyncResult{}, fmt.Errorf("failed to add roster entry for volunteer %s: %w", volunteerID, translateError(err))
		}
		result.Added++
	}

	if err := tx.Commit(ctx); err != nil {
		return db.SyncResult{}, fmt.Errorf("%w: %v", db.ErrStoreUnavailable, err)
	}

	return result, nil
}

// RegisterForEvent inserts a self-registration row. The event row is locked
// for the duration of the transaction so two concurrent registrations cannot
// both pass the capacity check.
func (d *DB) RegisterForEvent(ctx context.Context, eventID, volunteerID string, declaredHours float64) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", db.ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	var maxParticipants int
	err = tx.QueryRow(ctx, `
		SELECT max_participants FROM events WHERE id = $1 AND is_active FOR UPDATE
	`, eventID).Scan(&maxParticipants)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("event %s: %w", eventID, db.ErrNotFound)
		}
		return fmt.Errorf("failed to lock event: %w", translateError(err))
	}

	var alreadyRegistered bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM event_participation WHERE event_id = $1 AND volunteer_id = $2
		)
	`, eventID, volunteerID).Scan(&alreadyRegistered)
	if err != nil {
		return fmt.Errorf("failed to check existing registration: %w", translateError(err))
	}
	if alreadyRegistered {
		return db.ErrAlreadyRegistered
	}

	if maxParticipants > 0 {
		var taken int
		err = tx.QueryRow(ctx, `
			SELECT COUNT(*) FROM event_participation
			WHERE event_id = $1 AND participation_status IN ('registered', 'present')
		`, eventID).Scan(&taken)
		if err != nil {
			return fmt.Errorf("failed to count registrations: %w", translateError(err))
		}
		if taken >= maxParticipants {
			return db.ErrCapacityExceeded
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO event_participation
			(event_id, volunteer_id, participation_status, hours_attended, declared_hours)
		VALUES ($1, $2, 'registered', 0, $3)
	`, eventID, volunteerID, declaredHours)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return db.ErrAlreadyRegistered
		}
		return fmt.Errorf("failed to insert registration: %w", translateError(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %v", db.ErrStoreUnavailable, err)
	}

	return nil
}
