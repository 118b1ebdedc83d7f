package postgres

import (
	"context"
	"fmt"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// GetEvent retrieves a single event with its category code
func (d *DB) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	var e model.Event
	var createdBy *string
	err := d.pool.QueryRow(ctx, `
		SELECT e.id::text, e.name, e.start_date, e.end_date, e.declared_hours,
		       e.category_id::text, c.code, e.max_participants, e.is_active, e.created_by::text
		FROM events e
		JOIN event_categories c ON c.id = e.category_id
		WHERE e.id = $1
	`, eventID).Scan(&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.DeclaredHours,
		&e.CategoryID, &e.CategoryCode, &e.MaxParticipants, &e.Active, &createdBy)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", eventID, translateError(err))
	}
	if createdBy != nil {
		e.CreatedBy = *createdBy
	}
	return &e, nil
}

// GetActiveEvents retrieves all active events in report row order: category
// code first, then chronological.
func (d *DB) GetActiveEvents(ctx context.Context) ([]model.Event, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT e.id::text, e.name, e.start_date, e.end_date, e.declared_hours,
		       e.category_id::text, c.code, e.max_participants, e.is_active, e.created_by::text
		FROM events e
		JOIN event_categories c ON c.id = e.category_id
		WHERE e.is_active
		ORDER BY c.code, e.start_date, e.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", translateError(err))
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var e model.Event
		var createdBy *string
		if err := rows.Scan(&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.DeclaredHours,
			&e.CategoryID, &e.CategoryCode, &e.MaxParticipants, &e.Active, &createdBy); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if createdBy != nil {
			e.CreatedBy = *createdBy
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", translateError(err))
	}

	return events, nil
}

// InsertEvents inserts seeded event rows in one transaction, resolving each
// category code to its id. Returns the number of rows inserted.
func (d *DB) InsertEvents(ctx context.Context, events []model.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", db.ErrStoreUnavailable, err)
	}
	defer tx.Rollback(ctx)

	inserted := 0
	for _, e := range events {
		var createdBy *string
		if e.CreatedBy != "" {
			createdBy = &e.CreatedBy
		}

		tag, err := tx.Exec(ctx, `
			INSERT INTO events
				(id, name, start_date, end_date, declared_hours, category_id, max_participants, is_active, created_by)
			SELECT $1, $2, $3, $4, $5, c.id, $7, TRUE, $8
			FROM event_categories c WHERE c.code = $6
		`, e.ID, e.Name, e.StartDate, e.EndDate, e.DeclaredHours, e.CategoryCode, e.MaxParticipants, createdBy)
		if err != nil {
			return 0, fmt.Errorf("failed to insert event %q: %w", e.Name, translateError(err))
		}
		if tag.RowsAffected() == 0 {
			return 0, fmt.Errorf("event %q: unknown category code %q: %w", e.Name, e.CategoryCode, db.ErrValidation)
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("%w: %v", db.ErrStoreUnavailable, err)
	}

	return inserted, nil
}
