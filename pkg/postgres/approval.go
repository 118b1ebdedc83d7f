package postgres

import (
	"context"
	"fmt"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// GetParticipation retrieves a single participation row by id
func (d *DB) GetParticipation(ctx context.Context, participationID string) (*model.Participation, error) {
	p, err := scanParticipation(d.pool.QueryRow(ctx, `
		SELECT `+participationColumns+`
		FROM event_participation
		WHERE id = $1
	`, participationID))
	if err != nil {
		return nil, fmt.Errorf("failed to get participation %s: %w", participationID, translateError(err))
	}
	return p, nil
}

// ApproveHours marks a participation row approved with the given hour credit.
// Re-approving an already-approved row overwrites the prior decision.
func (d *DB) ApproveHours(ctx context.Context, participationID, approverID string, hours float64, notes string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE event_participation SET
			approval_status = 'approved',
			approved_hours = $2,
			approved_by = $3,
			approved_at = NOW(),
			approval_notes = $4
		WHERE id = $1
	`, participationID, hours, approverID, notes)
	if err != nil {
		return fmt.Errorf("failed to approve hours: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participation %s: %w", participationID, db.ErrNotFound)
	}
	return nil
}

// RejectHours marks a participation row rejected. Approved hours are always
// forced to zero so a rejected claim can never contribute to totals.
func (d *DB) RejectHours(ctx context.Context, participationID, rejecterID string, notes string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE event_participation SET
			approval_status = 'rejected',
			approved_hours = 0,
			approved_by = $2,
			approved_at = NOW(),
			approval_notes = $3
		WHERE id = $1
	`, participationID, rejecterID, notes)
	if err != nil {
		return fmt.Errorf("failed to reject hours: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participation %s: %w", participationID, db.ErrNotFound)
	}
	return nil
}

// BulkApproveHours approves every listed row that is still pending, in one
// statement. The approval_status = 'pending' predicate is the concurrency
// guard: rows decided by another approver between selection and submission are
// skipped rather than overwritten.
func (d *DB) BulkApproveHours(ctx context.Context, participationIDs []string, approverID string, notes string) (db.BulkApprovalResult, error) {
	var result db.BulkApprovalResult
	if len(participationIDs) == 0 {
		return result, nil
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE event_participation SET
			approval_status = 'approved',
			approved_hours = hours_attended,
			approved_by = $2,
			approved_at = NOW(),
			approval_notes = $3
		WHERE id = ANY($1) AND approval_status = 'pending'
	`, participationIDs, approverID, notes)
	if err != nil {
		return result, fmt.Errorf("failed to bulk approve: %w", translateError(err))
	}

	result.Approved = int(tag.RowsAffected())
	result.Skipped = len(participationIDs) - result.Approved
	return result, nil
}

// ResetApproval returns a decided row to pending and clears the decision audit fields
func (d *DB) ResetApproval(ctx context.Context, participationID string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE event_participation SET
			approval_status = 'pending',
			approved_hours = NULL,
			approved_by = NULL,
			approved_at = NULL,
			approval_notes = ''
		WHERE id = $1
	`, participationID)
	if err != nil {
		return fmt.Errorf("failed to reset approval: %w", translateError(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participation %s: %w", participationID, db.ErrNotFound)
	}
	return nil
}

// CountPendingApprovals counts the actionable approval queue. Zero-hour
// pending rows are not actionable and are excluded.
func (d *DB) CountPendingApprovals(ctx context.Context) (int, error) {
	var count int
	err := d.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM event_participation
		WHERE approval_status = 'pending' AND hours_attended > 0
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending approvals: %w", translateError(err))
	}
	return count, nil
}

// GetPendingParticipations retrieves the actionable approval queue, oldest
// attendance first
func (d *DB) GetPendingParticipations(ctx context.Context) ([]model.Participation, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+participationColumns+`
		FROM event_participation
		WHERE approval_status = 'pending' AND hours_attended > 0
		ORDER BY attendance_date NULLS LAST, registered_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending participations: %w", translateError(err))
	}
	defer rows.Close()

	var pending []model.Participation
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		pending = append(pending, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending participations: %w", translateError(err))
	}

	return pending, nil
}
