package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
)

func rosterHeader() []interface{} {
	return []interface{}{"Roll Number", "First Name", "Last Name", "Gender", "Year of Study", "Branch"}
}

func TestParseRoster(t *testing.T) {
	raw := [][]interface{}{
		rosterHeader(),
		{"CB.EN.U4CSE21001", "Asha", "Rao", "F", "2", "CSE"},
		{"CB.EN.U4ECE21007", "Bharat", "Kumar", "m", float64(3), "ECE"},
	}

	volunteers, err := parseRoster(raw)
	require.NoError(t, err)
	require.Len(t, volunteers, 2)

	assert.Equal(t, model.Volunteer{
		FirstName:   "Asha",
		LastName:    "Rao",
		Gender:      model.GenderFemale,
		YearOfStudy: 2,
		Branch:      "CSE",
		RollNumber:  "CB.EN.U4CSE21001",
		Active:      true,
	}, volunteers[0])

	// Lowercase gender and numeric year cells are normalised
	assert.Equal(t, model.GenderMale, volunteers[1].Gender)
	assert.Equal(t, 3, volunteers[1].YearOfStudy)
}

func TestParseRoster_SkipsRowsWithoutRollNumber(t *testing.T) {
	raw := [][]interface{}{
		rosterHeader(),
		{"", "Asha", "Rao", "F", "2", "CSE"},
		{"R2", "Bharat", "Kumar", "M", "3", "ECE"},
	}

	volunteers, err := parseRoster(raw)
	require.NoError(t, err)
	require.Len(t, volunteers, 1)
	assert.Equal(t, "R2", volunteers[0].RollNumber)
}

func TestParseRoster_MissingHeaderColumn(t *testing.T) {
	raw := [][]interface{}{
		{"Roll Number", "First Name", "Last Name"},
		{"R1", "Asha", "Rao"},
	}

	_, err := parseRoster(raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gender")
}

func TestParseRoster_InvalidGender(t *testing.T) {
	raw := [][]interface{}{
		rosterHeader(),
		{"R1", "Asha", "Rao", "X", "2", "CSE"},
	}

	_, err := parseRoster(raw)
	assert.Error(t, err)
}

func TestParseRoster_InvalidYear(t *testing.T) {
	raw := [][]interface{}{
		rosterHeader(),
		{"R1", "Asha", "Rao", "F", "ten", "CSE"},
	}

	_, err := parseRoster(raw)
	assert.Error(t, err)
}

func TestParseRoster_MissingFirstName(t *testing.T) {
	raw := [][]interface{}{
		rosterHeader(),
		{"R1", "", "Rao", "F", "2", "CSE"},
	}

	_, err := parseRoster(raw)
	assert.Error(t, err)
}
