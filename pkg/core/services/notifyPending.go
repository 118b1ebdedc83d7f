package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// Mailer sends plain-text email, implemented by gmailclient.Client
type Mailer interface {
	SendEmail(to, subject, body string) error
}

// PendingDigestStore defines the reads the pending-approvals digest needs
type PendingDigestStore interface {
	GetPendingParticipations(ctx context.Context) ([]model.Participation, error)
	GetVolunteer(ctx context.Context, volunteerID string) (*model.Volunteer, error)
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
}

// NotifyPendingApprovals emails the approval recipient a digest of every
// participation still awaiting a decision. Nothing is sent when the queue is
// empty.
func NotifyPendingApprovals(
	ctx context.Context,
	store PendingDigestStore,
	mailer Mailer,
	recipient string,
	logger *zap.Logger,
) (int, error) {
	if recipient == "" {
		return 0, fmt.Errorf("%w: no approval recipient configured", db.ErrValidation)
	}

	pending, err := store.GetPendingParticipations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending approvals: %w", err)
	}

	if len(pending) == 0 {
		logger.Info("No pending approvals, skipping digest")
		return 0, nil
	}

	body, err := buildPendingDigest(ctx, store, pending)
	if err != nil {
		return 0, err
	}

	subject := fmt.Sprintf("%d volunteer hour %s awaiting approval",
		len(pending), pluralise("claim", len(pending)))

	if err := mailer.SendEmail(recipient, subject, body); err != nil {
		return 0, fmt.Errorf("failed to send pending approvals digest: %w", err)
	}

	logger.Info("Pending approvals digest sent",
		zap.String("recipient", recipient),
		zap.Int("pending", len(pending)))

	return len(pending), nil
}

func buildPendingDigest(ctx context.Context, store PendingDigestStore, pending []model.Participation) (string, error) {
	// Names are looked up per row. The queue is small enough that the extra
	// round trips do not matter for a daily digest.
	volunteerNames := make(map[string]string)
	eventNames := make(map[string]string)

	var sb strings.Builder
	sb.WriteString("The following hour claims are waiting for review:\n\n")

	for _, p := range pending {
		volunteerName, ok := volunteerNames[p.VolunteerID]
		if !ok {
			volunteer, err := store.GetVolunteer(ctx, p.VolunteerID)
			if err != nil {
				return "", fmt.Errorf("failed to resolve volunteer %s: %w", p.VolunteerID, err)
			}
			volunteerName = volunteer.FullName()
			volunteerNames[p.VolunteerID] = volunteerName
		}

		eventName, ok := eventNames[p.EventID]
		if !ok {
			event, err := store.GetEvent(ctx, p.EventID)
			if err != nil {
				return "", fmt.Errorf("failed to resolve event %s: %w", p.EventID, err)
			}
			eventName = event.Name
			eventNames[p.EventID] = eventName
		}

		date := "unknown date"
		if p.AttendanceDate != nil {
			date = p.AttendanceDate.Format("Mon Jan 02 2006")
		}

		sb.WriteString(fmt.Sprintf("- %s: %s, %s, %g hours (id %s)\n",
			volunteerName, eventName, date, p.HoursAttended, p.ID))
	}

	sb.WriteString("\nRun 'pending-approvals' to review and 'approve-hours' or 'bulk-approve' to action them.\n")
	return sb.String(), nil
}

func pluralise(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
