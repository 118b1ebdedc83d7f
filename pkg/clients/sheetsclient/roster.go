package sheetsclient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sevatrack/volunteer-hours/internal/config"
	"github.com/sevatrack/volunteer-hours/pkg/core/model"
)

// Expected column names in the master roster sheet
var rosterFields = []string{
	"Roll Number",
	"First Name",
	"Last Name",
	"Gender",
	"Year of Study",
	"Branch",
}

// ListRosterVolunteers retrieves and parses the volunteer roster from the
// configured master spreadsheet
func (c *Client) ListRosterVolunteers(cfg *config.Config) ([]model.Volunteer, error) {
	if cfg.RosterSheetID == "" || cfg.RosterTab == "" {
		return nil, fmt.Errorf("rosterSheetID and rosterTab must be configured")
	}

	values, err := c.GetValues(cfg.RosterSheetID, cfg.RosterTab)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster data: %w", err)
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("roster sheet is empty")
	}

	volunteers, err := parseRoster(values)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	return volunteers, nil
}

// parseRoster converts raw spreadsheet data into Volunteer structs
func parseRoster(raw [][]interface{}) ([]model.Volunteer, error) {
	fieldIndexes := make(map[string]int)
	headerRow := raw[0]

	for _, field := range rosterFields {
		index := -1
		for i, cell := range headerRow {
			if cellStr, ok := cell.(string); ok && strings.EqualFold(strings.TrimSpace(cellStr), field) {
				index = i
				break
			}
		}
		if index == -1 {
			return nil, fmt.Errorf("missing required field in header: %s", field)
		}
		fieldIndexes[field] = index
	}

	getField := func(field string, row []interface{}) string {
		index := fieldIndexes[field]
		if index >= len(row) {
			return ""
		}
		switch v := row[index].(type) {
		case string:
			return strings.TrimSpace(v)
		case float64:
			// Sheets returns numeric-looking cells as numbers
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
		return ""
	}

	volunteers := make([]model.Volunteer, 0, len(raw)-1)
	for i := 1; i < len(raw); i++ {
		row := raw[i]

		rollNumber := getField("Roll Number", row)
		// Skip padding rows at the bottom of the sheet
		if rollNumber == "" {
			continue
		}

		firstName := getField("First Name", row)
		if firstName == "" {
			return nil, fmt.Errorf("row %d: roll number %s has no first name", i+1, rollNumber)
		}

		gender := model.Gender(strings.ToUpper(getField("Gender", row)))
		if gender != model.GenderMale && gender != model.GenderFemale && gender != model.GenderUnspecified {
			return nil, fmt.Errorf("row %d: invalid gender %q", i+1, gender)
		}

		yearOfStudy := 0
		if yearStr := getField("Year of Study", row); yearStr != "" {
			year, err := strconv.Atoi(yearStr)
			if err != nil || year < 1 || year > 6 {
				return nil, fmt.Errorf("row %d: invalid year of study %q", i+1, yearStr)
			}
			yearOfStudy = year
		}

		volunteers = append(volunteers, model.Volunteer{
			FirstName:   firstName,
			LastName:    getField("Last Name", row),
			Gender:      gender,
			YearOfStudy: yearOfStudy,
			Branch:      getField("Branch", row),
			RollNumber:  rollNumber,
			Active:      true,
		})
	}

	return volunteers, nil
}
