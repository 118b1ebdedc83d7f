package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/internal/config"
	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// SeedResult reports the outcome of a seeding run
type SeedResult struct {
	Created int
	Skipped int
}

// SeedEvents expands the configured recurring event templates over a date
// window and inserts an event row per occurrence. Dates that already carry an
// event of the same name are skipped, so re-running a window is harmless.
func SeedEvents(
	ctx context.Context,
	store db.EventStore,
	cfg *config.Config,
	logger *zap.Logger,
	from, until time.Time,
) (SeedResult, error) {
	var result SeedResult

	if until.Before(from) {
		return result, fmt.Errorf("%w: window end %s before start %s",
			db.ErrValidation, until.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	existing, err := store.GetActiveEvents(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to load existing events: %w", err)
	}

	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.Name+"|"+e.StartDate.Format("2006-01-02")] = true
	}

	var toInsert []model.Event
	for _, template := range cfg.EventTemplates {
		rule, err := rrule.StrToRRule(template.RRule)
		if err != nil {
			return result, fmt.Errorf("%w: template %q has invalid rrule: %v", db.ErrValidation, template.Name, err)
		}
		rule.DTStart(from)

		for _, date := range rule.Between(from, until, true) {
			key := template.Name + "|" + date.Format("2006-01-02")
			if seen[key] {
				result.Skipped++
				continue
			}
			seen[key] = true

			toInsert = append(toInsert, model.Event{
				ID:              uuid.New().String(),
				Name:            template.Name,
				StartDate:       date,
				EndDate:         date,
				DeclaredHours:   template.DeclaredHours,
				CategoryCode:    template.CategoryCode,
				MaxParticipants: template.MaxParticipants,
				Active:          true,
			})
		}
	}

	logger.Debug("Expanded event templates",
		zap.Int("templates", len(cfg.EventTemplates)),
		zap.Int("new_events", len(toInsert)),
		zap.Int("skipped", result.Skipped))

	if len(toInsert) == 0 {
		return result, nil
	}

	created, err := store.InsertEvents(ctx, toInsert)
	if err != nil {
		return result, fmt.Errorf("failed to insert seeded events: %w", err)
	}
	result.Created = created

	logger.Info("Events seeded",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped))

	return result, nil
}
