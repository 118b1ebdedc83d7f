package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// RosterStore defines the write the roster import needs
type RosterStore interface {
	UpsertVolunteers(ctx context.Context, volunteers []model.Volunteer) (db.SubmitResult, error)
}

// ImportRoster upserts the parsed roster into the volunteer table. Roll
// numbers must be unique within the batch since they key the upsert.
func ImportRoster(
	ctx context.Context,
	store RosterStore,
	volunteers []model.Volunteer,
	logger *zap.Logger,
) (db.SubmitResult, error) {
	var result db.SubmitResult

	if len(volunteers) == 0 {
		return result, fmt.Errorf("%w: roster is empty", db.ErrValidation)
	}

	seen := make(map[string]bool, len(volunteers))
	for _, v := range volunteers {
		if v.RollNumber == "" {
			return result, fmt.Errorf("%w: volunteer %s has no roll number", db.ErrValidation, v.FullName())
		}
		if seen[v.RollNumber] {
			return result, fmt.Errorf("%w: duplicate roll number %s in roster", db.ErrValidation, v.RollNumber)
		}
		seen[v.RollNumber] = true
	}

	result, err := store.UpsertVolunteers(ctx, volunteers)
	if err != nil {
		return result, fmt.Errorf("failed to import roster: %w", err)
	}

	logger.Info("Roster imported",
		zap.Int("added", result.Added),
		zap.Int("updated", result.Updated))

	return result, nil
}
