package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// mockApprovalStore implements db.ApprovalStore
type mockApprovalStore struct {
	participation *model.Participation
	getErr        error

	approvedID    string
	approvedBy    string
	approvedHours float64
	approvedNotes string
	approveErr    error

	rejectedID string
	resetID    string

	bulkIDs    []string
	bulkResult db.BulkApprovalResult
	bulkErr    error

	pending      []model.Participation
	pendingCount int
}

func (m *mockApprovalStore) GetParticipation(ctx context.Context, participationID string) (*model.Participation, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.participation, nil
}

func (m *mockApprovalStore) ApproveHours(ctx context.Context, participationID, approverID string, hours float64, notes string) error {
	if m.approveErr != nil {
		return m.approveErr
	}
	m.approvedID = participationID
	m.approvedBy = approverID
	m.approvedHours = hours
	m.approvedNotes = notes
	return nil
}

func (m *mockApprovalStore) RejectHours(ctx context.Context, participationID, rejecterID string, notes string) error {
	m.rejectedID = participationID
	return nil
}

func (m *mockApprovalStore) BulkApproveHours(ctx context.Context, participationIDs []string, approverID string, notes string) (db.BulkApprovalResult, error) {
	if m.bulkErr != nil {
		return db.BulkApprovalResult{}, m.bulkErr
	}
	m.bulkIDs = participationIDs
	return m.bulkResult, nil
}

func (m *mockApprovalStore) ResetApproval(ctx context.Context, participationID string) error {
	m.resetID = participationID
	return nil
}

func (m *mockApprovalStore) CountPendingApprovals(ctx context.Context) (int, error) {
	return m.pendingCount, nil
}

func (m *mockApprovalStore) GetPendingParticipations(ctx context.Context) ([]model.Participation, error) {
	return m.pending, nil
}

func TestApproveHours_DefaultsToAttendedHours(t *testing.T) {
	store := &mockApprovalStore{
		participation: &model.Participation{ID: "part-1", HoursAttended: 3.5},
	}

	err := ApproveHours(context.Background(), store, zap.NewNop(), "part-1", "appr-1", nil, "looks right")
	require.NoError(t, err)
	assert.Equal(t, "part-1", store.approvedID)
	assert.Equal(t, "appr-1", store.approvedBy)
	assert.Equal(t, 3.5, store.approvedHours)
	assert.Equal(t, "looks right", store.approvedNotes)
}

func TestApproveHours_OverrideReplacesClaim(t *testing.T) {
	store := &mockApprovalStore{
		participation: &model.Participation{ID: "part-1", HoursAttended: 8},
	}

	override := 5.0
	err := ApproveHours(context.Background(), store, zap.NewNop(), "part-1", "appr-1", &override, "")
	require.NoError(t, err)
	assert.Equal(t, 5.0, store.approvedHours)
}

func TestApproveHours_RejectsOutOfRangeOverride(t *testing.T) {
	store := &mockApprovalStore{
		participation: &model.Participation{ID: "part-1", HoursAttended: 4},
	}

	override := 30.0
	err := ApproveHours(context.Background(), store, zap.NewNop(), "part-1", "appr-1", &override, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrValidation)
	assert.Empty(t, store.approvedID)
}

func TestApproveHours_MissingRow(t *testing.T) {
	store := &mockApprovalStore{getErr: db.ErrNotFound}

	err := ApproveHours(context.Background(), store, zap.NewNop(), "part-x", "appr-1", nil, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrNotFound)
}

func TestRejectHours(t *testing.T) {
	store := &mockApprovalStore{}

	err := RejectHours(context.Background(), store, zap.NewNop(), "part-1", "appr-1", "no evidence")
	require.NoError(t, err)
	assert.Equal(t, "part-1", store.rejectedID)
}

func TestBulkApproveHours_EmptyListIsNoop(t *testing.T) {
	store := &mockApprovalStore{bulkErr: errors.New("store should not be called")}

	result, err := BulkApproveHours(context.Background(), store, zap.NewNop(), nil, "appr-1", "")
	require.NoError(t, err)
	assert.Equal(t, db.BulkApprovalResult{}, result)
}

func TestBulkApproveHours_ReportsSkipped(t *testing.T) {
	store := &mockApprovalStore{bulkResult: db.BulkApprovalResult{Approved: 2, Skipped: 1}}

	result, err := BulkApproveHours(context.Background(), store, zap.NewNop(),
		[]string{"p1", "p2", "p3"}, "appr-1", "weekly batch")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Approved)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"p1", "p2", "p3"}, store.bulkIDs)
}

func TestResetApproval(t *testing.T) {
	store := &mockApprovalStore{}

	err := ResetApproval(context.Background(), store, zap.NewNop(), "part-1")
	require.NoError(t, err)
	assert.Equal(t, "part-1", store.resetID)
}

func TestPendingApprovals(t *testing.T) {
	store := &mockApprovalStore{
		pending: []model.Participation{
			{ID: "p1", HoursAttended: 3},
			{ID: "p2", HoursAttended: 4},
		},
	}

	pending, count, err := PendingApprovals(context.Background(), store, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, pending, 2)
	assert.Equal(t, "p1", pending[0].ID)
}
