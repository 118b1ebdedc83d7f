package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipationStatus_IsValid(t *testing.T) {
	for _, s := range []ParticipationStatus{StatusRegistered, StatusPresent, StatusAbsent, StatusPartiallyPresent, StatusExcused} {
		assert.True(t, s.IsValid(), "%s should be valid", s)
	}
	assert.False(t, ParticipationStatus("late").IsValid())
	assert.False(t, ParticipationStatus("").IsValid())
}

func TestEffectiveHours(t *testing.T) {
	approved := 2.5

	tests := []struct {
		name string
		p    Participation
		want float64
	}{
		{
			name: "pending uses attended hours",
			p:    Participation{Status: StatusPresent, HoursAttended: 4, ApprovalStatus: ApprovalPending},
			want: 4,
		},
		{
			name: "approved uses approved hours",
			p:    Participation{HoursAttended: 4, ApprovalStatus: ApprovalApproved, ApprovedHours: &approved},
			want: 2.5,
		},
		{
			name: "approved without figure falls back to attended",
			p:    Participation{HoursAttended: 4, ApprovalStatus: ApprovalApproved},
			want: 4,
		},
		{
			name: "rejected is always zero",
			p:    Participation{HoursAttended: 4, ApprovalStatus: ApprovalRejected, ApprovedHours: &approved},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.EffectiveHours())
		})
	}
}

func TestVolunteerFullName(t *testing.T) {
	assert.Equal(t, "Asha Rao", Volunteer{FirstName: "Asha", LastName: "Rao"}.FullName())
	assert.Equal(t, "Asha", Volunteer{FirstName: "Asha"}.FullName())
	assert.Equal(t, "Rao", Volunteer{LastName: "Rao"}.FullName())
}

func TestSectionForCategory(t *testing.T) {
	assert.Equal(t, SectionAreaBased1, SectionForCategory("area_based_1"))
	assert.Equal(t, SectionAreaBased1, SectionForCategory("village_adoption"))
	assert.Equal(t, SectionAreaBased2, SectionForCategory("community_drive"))
	assert.Equal(t, SectionUniversity, SectionForCategory("university_event"))
	assert.Equal(t, SectionCollege, SectionForCategory("college_based"))
	// Unknown codes land in College Based rather than dropping out
	assert.Equal(t, SectionCollege, SectionForCategory("brand_new_code"))
}
