package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// ApproveHours approves one participation row. When hoursOverride is nil the
// volunteer's claimed hours are approved as-is; an override replaces them.
// The override-or-default resolution happens here, once, before the store is
// touched. Re-approving an already-approved row is permitted and overwrites
// the prior decision.
func ApproveHours(
	ctx context.Context,
	store db.ApprovalStore,
	logger *zap.Logger,
	participationID, approverID string,
	hoursOverride *float64,
	notes string,
) error {
	participation, err := store.GetParticipation(ctx, participationID)
	if err != nil {
		return fmt.Errorf("failed to load participation: %w", err)
	}

	hours := participation.HoursAttended
	if hoursOverride != nil {
		hours = *hoursOverride
	}

	if hours < 0 || hours > model.MaxHoursPerEvent {
		return fmt.Errorf("%w: approved hours %.1f outside [0, %d]", db.ErrValidation, hours, model.MaxHoursPerEvent)
	}

	if err := store.ApproveHours(ctx, participationID, approverID, hours, notes); err != nil {
		return err
	}

	logger.Info("Hours approved",
		zap.String("participation_id", participationID),
		zap.String("approver_id", approverID),
		zap.Float64("approved_hours", hours))

	return nil
}

// RejectHours rejects one participation row. The store forces approved hours
// to zero so the claim cannot reach any total.
func RejectHours(
	ctx context.Context,
	store db.ApprovalStore,
	logger *zap.Logger,
	participationID, rejecterID string,
	notes string,
) error {
	if err := store.RejectHours(ctx, participationID, rejecterID, notes); err != nil {
		return err
	}

	logger.Info("Hours rejected",
		zap.String("participation_id", participationID),
		zap.String("rejecter_id", rejecterID))

	return nil
}

// BulkApproveHours approves every still-pending row in the id list. Rows
// decided concurrently by another approver are skipped, not overwritten. An
// empty id list is a valid no-op.
func BulkApproveHours(
	ctx context.Context,
	store db.ApprovalStore,
	logger *zap.Logger,
	participationIDs []string,
	approverID string,
	notes string,
) (db.BulkApprovalResult, error) {
	if len(participationIDs) == 0 {
		return db.BulkApprovalResult{}, nil
	}

	result, err := store.BulkApproveHours(ctx, participationIDs, approverID, notes)
	if err != nil {
		return db.BulkApprovalResult{}, err
	}

	logger.Info("Bulk approval applied",
		zap.String("approver_id", approverID),
		zap.Int("approved", result.Approved),
		zap.Int("skipped", result.Skipped))

	return result, nil
}

// ResetApproval returns a decided row to pending, clearing the decision audit
// fields. Administrative undo.
func ResetApproval(
	ctx context.Context,
	store db.ApprovalStore,
	logger *zap.Logger,
	participationID string,
) error {
	if err := store.ResetApproval(ctx, participationID); err != nil {
		return err
	}

	logger.Info("Approval reset", zap.String("participation_id", participationID))
	return nil
}

// PendingApprovals returns the actionable approval queue and its size
func PendingApprovals(
	ctx context.Context,
	store db.ApprovalStore,
	logger *zap.Logger,
) ([]model.Participation, int, error) {
	pending, err := store.GetPendingParticipations(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load pending approvals: %w", err)
	}

	logger.Debug("Loaded pending approvals", zap.Int("count", len(pending)))
	return pending, len(pending), nil
}
