package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// effectiveHoursExpr is the SQL form of the authoritative hour rule: approved
// hours once a decision exists, the raw claim while pending, zero when rejected.
const effectiveHoursExpr = `
	CASE p.approval_status
		WHEN 'approved' THEN COALESCE(p.approved_hours, p.hours_attended)
		WHEN 'rejected' THEN 0
		ELSE p.hours_attended
	END`

// GetDashboardStats computes the headline dashboard figures. Only approved
// hours count toward the total; unapproved claims never appear here.
func (d *DB) GetDashboardStats(ctx context.Context, now time.Time) (db.DashboardStats, error) {
	var stats db.DashboardStats
	err := d.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM volunteers WHERE is_active),
			(SELECT COUNT(*) FROM events),
			(SELECT COALESCE(SUM(approved_hours), 0) FROM event_participation WHERE approval_status = 'approved'),
			(SELECT COUNT(*) FROM events WHERE is_active),
			(SELECT COUNT(*) FROM events WHERE is_active AND start_date > $1)
	`, now).Scan(&stats.ActiveVolunteers, &stats.TotalEvents, &stats.TotalApprovedHours,
		&stats.ActiveEvents, &stats.UpcomingEvents)
	if err != nil {
		return stats, fmt.Errorf("failed to query dashboard stats: %w", translateError(err))
	}
	return stats, nil
}

// GetCategoryDistribution aggregates event, participant, and hour counts per category
func (d *DB) GetCategoryDistribution(ctx context.Context) ([]db.CategoryDistributionRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT c.code, c.name,
		       COUNT(DISTINCT e.id),
		       COUNT(DISTINCT p.volunteer_id),
		       COALESCE(SUM(`+effectiveHoursExpr+`), 0)
		FROM event_categories c
		LEFT JOIN events e ON e.category_id = c.id
		LEFT JOIN event_participation p ON p.event_id = e.id
		GROUP BY c.code, c.name
		ORDER BY c.code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category distribution: %w", translateError(err))
	}
	defer rows.Close()

	var result []db.CategoryDistributionRow
	for rows.Next() {
		var r db.CategoryDistributionRow
		if err := rows.Scan(&r.CategoryCode, &r.CategoryName, &r.EventCount, &r.ParticipantCount, &r.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan category distribution: %w", err)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category distribution: %w", translateError(err))
	}

	return result, nil
}

// GetTopEvents ranks events by participant count, with total hours breaking ties
func (d *DB) GetTopEvents(ctx context.Context, limit int) ([]db.TopEventRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT e.id::text, e.name,
		       COUNT(p.id) FILTER (WHERE p.participation_status IN ('present', 'partially_present')),
		       COALESCE(SUM(`+effectiveHoursExpr+`), 0)
		FROM events e
		LEFT JOIN event_participation p ON p.event_id = e.id
		GROUP BY e.id, e.name
		ORDER BY 3 DESC, 4 DESC, e.name
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top events: %w", translateError(err))
	}
	defer rows.Close()

	var result []db.TopEventRow
	for rows.Next() {
		var r db.TopEventRow
		if err := rows.Scan(&r.EventID, &r.EventName, &r.ParticipantCount, &r.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan top event: %w", err)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top events: %w", translateError(err))
	}

	return result, nil
}

// GetAttendanceSummary returns per-event registered/present/absent counts.
// The attendance rate is derived in Go so the division-by-zero guard is
// explicit and testable.
func (d *DB) GetAttendanceSummary(ctx context.Context) ([]db.AttendanceSummaryRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT e.id::text, e.name,
		       COUNT(p.id),
		       COUNT(p.id) FILTER (WHERE p.participation_status IN ('present', 'partially_present')),
		       COUNT(p.id) FILTER (WHERE p.participation_status = 'absent')
		FROM events e
		LEFT JOIN event_participation p ON p.event_id = e.id
		GROUP BY e.id, e.name
		ORDER BY e.start_date, e.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance summary: %w", translateError(err))
	}
	defer rows.Close()

	var result []db.AttendanceSummaryRow
	for rows.Next() {
		var r db.AttendanceSummaryRow
		if err := rows.Scan(&r.EventID, &r.EventName, &r.Registered, &r.Present, &r.Absent); err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		if r.Registered > 0 {
			r.AttendanceRate = float64(r.Present) / float64(r.Registered)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance summary: %w", translateError(err))
	}

	return result, nil
}

// GetVolunteerHoursSummary returns per-volunteer totals. Rejected rows are
// excluded from every figure; last activity is the latest of the attendance
// and approval timestamps.
func (d *DB) GetVolunteerHoursSummary(ctx context.Context) ([]db.VolunteerHoursSummaryRow, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT v.id::text,
		       TRIM(v.first_name || ' ' || v.last_name),
		       COALESCE(SUM(`+effectiveHoursExpr+`), 0),
		       COALESCE(SUM(CASE WHEN p.approval_status = 'approved' THEN COALESCE(p.approved_hours, p.hours_attended) ELSE 0 END), 0),
		       COUNT(DISTINCT p.event_id),
		       MAX(GREATEST(p.attendance_date, p.approved_at))
		FROM volunteers v
		LEFT JOIN event_participation p ON p.volunteer_id = v.id
		WHERE v.is_active
		GROUP BY v.id, v.first_name, v.last_name
		ORDER BY 3 DESC, 2
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteer hours summary: %w", translateError(err))
	}
	defer rows.Close()

	var result []db.VolunteerHoursSummaryRow
	for rows.Next() {
		var r db.VolunteerHoursSummaryRow
		if err := rows.Scan(&r.VolunteerID, &r.VolunteerName, &r.TotalHours, &r.ApprovedHours, &r.EventCount, &r.LastActivity); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer hours summary: %w", err)
		}
		result = append(result, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteer hours summary: %w", translateError(err))
	}

	return result, nil
}

// GetReportCells loads the participation rows that feed the pivot export:
// present or partially present, with effective hours above zero.
func (d *DB) GetReportCells(ctx context.Context) ([]db.ReportCell, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT p.event_id::text, p.volunteer_id::text, `+effectiveHoursExpr+`
		FROM event_participation p
		WHERE p.participation_status IN ('present', 'partially_present')
		  AND p.hours_attended > 0
		  AND p.approval_status <> 'rejected'
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query report cells: %w", translateError(err))
	}
	defer rows.Close()

	var cells []db.ReportCell
	for rows.Next() {
		var c db.ReportCell
		if err := rows.Scan(&c.EventID, &c.VolunteerID, &c.HoursAttended); err != nil {
			return nil, fmt.Errorf("failed to scan report cell: %w", err)
		}
		cells = append(cells, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report cells: %w", translateError(err))
	}

	return cells, nil
}
