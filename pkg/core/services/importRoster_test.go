package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// mockRosterStore implements RosterStore
type mockRosterStore struct {
	upserted []model.Volunteer
	result   db.SubmitResult
	err      error
}

func (m *mockRosterStore) UpsertVolunteers(ctx context.Context, volunteers []model.Volunteer) (db.SubmitResult, error) {
	if m.err != nil {
		return db.SubmitResult{}, m.err
	}
	m.upserted = volunteers
	return m.result, nil
}

func TestImportRoster_Success(t *testing.T) {
	store := &mockRosterStore{result: db.SubmitResult{Added: 1, Updated: 1}}
	volunteers := []model.Volunteer{
		{FirstName: "Asha", RollNumber: "CB.EN.U4CSE21001"},
		{FirstName: "Bharat", RollNumber: "CB.EN.U4CSE21002"},
	}

	result, err := ImportRoster(context.Background(), store, volunteers, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, db.SubmitResult{Added: 1, Updated: 1}, result)
	assert.Len(t, store.upserted, 2)
}

func TestImportRoster_RejectsEmptyRoster(t *testing.T) {
	_, err := ImportRoster(context.Background(), &mockRosterStore{}, nil, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrValidation)
}

func TestImportRoster_RejectsMissingRollNumber(t *testing.T) {
	volunteers := []model.Volunteer{{FirstName: "Asha"}}

	_, err := ImportRoster(context.Background(), &mockRosterStore{}, volunteers, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrValidation)
}

func TestImportRoster_RejectsDuplicateRollNumbers(t *testing.T) {
	store := &mockRosterStore{}
	volunteers := []model.Volunteer{
		{FirstName: "Asha", RollNumber: "R1"},
		{FirstName: "Bharat", RollNumber: "R1"},
	}

	_, err := ImportRoster(context.Background(), store, volunteers, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, db.ErrValidation)
	assert.Empty(t, store.upserted)
}
