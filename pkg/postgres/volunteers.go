package postgres

import (
	"context"
	"fmt"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// GetVolunteer retrieves a single volunteer by id
func (d *DB) GetVolunteer(ctx context.Context, volunteerID string) (*model.Volunteer, error) {
	var v model.Volunteer
	err := d.pool.QueryRow(ctx, `
		SELECT id::text, first_name, last_name, gender, year_of_study, branch, roll_number, is_active
		FROM volunteers
		WHERE id = $1
	`, volunteerID).Scan(&v.ID, &v.FirstName, &v.LastName, &v.Gender, &v.YearOfStudy, &v.Branch, &v.RollNumber, &v.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to get volunteer %s: %w", volunteerID, translateError(err))
	}
	return &v, nil
}

// GetActiveVolunteers retrieves all active volunteers in report column order:
// study year first, then name. This ordering is the one the export engine
// relies on, so it lives in one place.
func (d *DB) GetActiveVolunteers(ctx context.Context) ([]model.Volunteer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id::text, first_name, last_name, gender, year_of_study, branch, roll_number, is_active
		FROM volunteers
		WHERE is_active
		ORDER BY year_of_study, first_name, last_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", translateError(err))
	}
	defer rows.Close()

	var volunteers []model.Volunteer
	for rows.Next() {
		var v model.Volunteer
		if err := rows.Scan(&v.ID, &v.FirstName, &v.LastName, &v.Gender, &v.YearOfStudy, &v.Branch, &v.RollNumber, &v.Active); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		volunteers = append(volunteers, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", translateError(err))
	}

	return volunteers, nil
}

// UpsertVolunteers inserts or refreshes roster volunteers keyed by roll
// number, in one transaction. All imported volunteers are marked active.
func (d *DB) UpsertVolunteers(ctx context.Context, volunteers []model.Volunteer) (db.SubmitResult, error) {
	var result db.SubmitResult

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to begin transaction: %w", translateError(err))
	}
	defer tx.Rollback(ctx)

	for _, v := range volunteers {
		var inserted bool
		err := tx.QueryRow(ctx, `
			INSERT INTO volunteers (first_name, last_name, gender, year_of_study, branch, roll_number, is_active)
			VALUES ($1, $2, $3, $4, $5, $6, TRUE)
			ON CONFLICT (roll_number) WHERE roll_number <> ''
			DO UPDATE SET
				first_name = EXCLUDED.first_name,
				last_name = EXCLUDED.last_name,
				gender = EXCLUDED.gender,
				year_of_study = EXCLUDED.year_of_study,
				branch = EXCLUDED.branch,
				is_active = TRUE
			RETURNING (xmax = 0)
		`, v.FirstName, v.LastName, v.Gender, v.YearOfStudy, v.Branch, v.RollNumber).Scan(&inserted)
		if err != nil {
			return result, fmt.Errorf("failed to upsert volunteer %s: %w", v.RollNumber, translateError(err))
		}

		if inserted {
			result.Added++
		} else {
			result.Updated++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return result, fmt.Errorf("failed to commit transaction: %w", translateError(err))
	}

	return result, nil
}
