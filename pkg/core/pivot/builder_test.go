package pivot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// buildTestInput assembles a three-volunteer, four-event report covering
// three of the four sections (College Based stays empty on purpose).
func buildTestInput() Input {
	return Input{
		Volunteers: []model.Volunteer{
			{ID: "vol-a", FirstName: "Asha", LastName: "Rao", Gender: model.GenderFemale, YearOfStudy: 2},
			{ID: "vol-b", FirstName: "Bharat", LastName: "Kumar", Gender: model.GenderMale, YearOfStudy: 2},
			{ID: "vol-c", FirstName: "Chitra", LastName: "Devi", Gender: model.GenderFemale, YearOfStudy: 3},
		},
		Events: []model.Event{
			{ID: "ev-2", Name: "Health Camp", StartDate: date(2025, 6, 8), DeclaredHours: 6, CategoryCode: "village_adoption"},
			{ID: "ev-1", Name: "Village Cleanup", StartDate: date(2025, 6, 1), DeclaredHours: 4, CategoryCode: "area_based_1"},
			{ID: "ev-4", Name: "Blood Drive", StartDate: date(2025, 6, 2), DeclaredHours: 5, CategoryCode: "community_drive"},
			{ID: "ev-3", Name: "Tech Fest", StartDate: date(2025, 6, 5), DeclaredHours: 3, CategoryCode: "university_based"},
		},
		Cells: []db.ReportCell{
			{EventID: "ev-1", VolunteerID: "vol-a", HoursAttended: 4},
			{EventID: "ev-1", VolunteerID: "vol-b", HoursAttended: 4},
			{EventID: "ev-2", VolunteerID: "vol-a", HoursAttended: 6},
			{EventID: "ev-3", VolunteerID: "vol-b", HoursAttended: 3},
			{EventID: "ev-3", VolunteerID: "vol-c", HoursAttended: 2},
			{EventID: "ev-4", VolunteerID: "vol-c", HoursAttended: 5},
		},
	}
}

// Row layout for buildTestInput:
//
//	0-2   header rows
//	3     "Area Based - 1" title
//	4     Village Cleanup (Jun 1)
//	5     Health Camp (Jun 8)
//	6     TOTAL
//	7     separator
//	8     "Area Based - 2" title
//	9     Blood Drive
//	10    TOTAL
//	11    separator
//	12    "University Based" title
//	13    Tech Fest
//	14    TOTAL
//	15    separator
//	16    "College Based" title
//	17    TOTAL
//	18    separator
//	19-24 grand summary rows
const (
	colMeta  = 3
	colA     = 3
	colB     = 4
	colC     = 5
	colCount = 6
	colMale  = 7
	colFem   = 8
)

func TestBuildReport_Layout(t *testing.T) {
	doc := BuildReport("NSS Hours", buildTestInput())

	assert.Equal(t, "NSS Hours", doc.Title)
	require.Len(t, doc.Rows, 25)

	assert.Equal(t, Text("Area Based - 1"), doc.Rows[3].Cells[0])
	assert.Equal(t, Text("Area Based - 2"), doc.Rows[8].Cells[0])
	assert.Equal(t, Text("University Based"), doc.Rows[12].Cells[0])
	assert.Equal(t, Text("College Based"), doc.Rows[16].Cells[0])

	for _, i := range []int{7, 11, 15, 18} {
		assert.True(t, doc.Rows[i].IsSeparator(), "row %d should be a separator", i)
	}
}

func TestBuildReport_HeaderRows(t *testing.T) {
	doc := BuildReport("NSS Hours", buildTestInput())

	firstNames := doc.Rows[0].Cells
	assert.Equal(t, Blank(), firstNames[0])
	assert.Equal(t, Text("Asha"), firstNames[colA])
	assert.Equal(t, Text("Bharat"), firstNames[colB])
	assert.Equal(t, Text("Chitra"), firstNames[colC])

	lastNames := doc.Rows[1].Cells
	assert.Equal(t, Text("Event"), lastNames[0])
	assert.Equal(t, Text("Date"), lastNames[1])
	assert.Equal(t, Text("Hours"), lastNames[2])
	assert.Equal(t, Text("Rao"), lastNames[colA])
	assert.Equal(t, Text("Count"), lastNames[colCount])
	assert.Equal(t, Text("Male"), lastNames[colMale])
	assert.Equal(t, Text("Female"), lastNames[colFem])

	genders := doc.Rows[2].Cells
	assert.Equal(t, Text("F"), genders[colA])
	assert.Equal(t, Text("M"), genders[colB])
}

func TestBuildReport_EventRow(t *testing.T) {
	doc := BuildReport("NSS Hours", buildTestInput())

	row := doc.Rows[4].Cells
	assert.Equal(t, Text("Village Cleanup"), row[0])
	assert.Equal(t, Text("2025-06-01"), row[1])
	assert.Equal(t, Number(4), row[2])

	assert.Equal(t, Number(4), row[colA])
	assert.Equal(t, Number(4), row[colB])
	assert.Equal(t, Blank(), row[colC])

	assert.Equal(t, Number(2), row[colCount])
	assert.Equal(t, Number(1), row[colMale])
	assert.Equal(t, Number(1), row[colFem])
}

func TestBuildReport_EventsSortedByDateWithinSection(t *testing.T) {
	doc := BuildReport("NSS Hours", buildTestInput())

	// Village Cleanup (Jun 1) must come before Health Camp (Jun 8) even
	// though the input lists them the other way round
	assert.Equal(t, Text("Village Cleanup"), doc.Rows[4].Cells[0])
	assert.Equal(t, Text("Health Camp"), doc.Rows[5].Cells[0])
}

func TestBuildReport_SectionTotalRow(t *testing.T) {
	doc := BuildReport("NSS Hours", buildTestInput())

	total := doc.Rows[6].Cells
	assert.Equal(t, Text("TOTAL"), total[0])
	assert.Equal(t, Blank(), total[1])
	// The Hours column of a TOTAL row carries the declared capacity sum
	assert.Equal(t, Number(10), total[2])

	assert.Equal(t, Number(10), total[colA])
	assert.Equal(t, Number(4), total[colB])
	assert.Equal(t, Blank(), total[colC])

	assert.Equal(t, Number(2), total[colCount])
	assert.Equal(t, Number(1), total[colMale])
	assert.Equal(t, Number(1), total[colFem])
}

func TestBuildReport_EmptySectionStillEmitted(t *testing.T) {
	doc := BuildReport("NSS Hours", buildTestInput())

	total := doc.Rows[17].Cells
	assert.Equal(t, Text("TOTAL"), total[0])
	assert.Equal(t, Number(0), total[2])
	assert.Equal(t, Blank(), total[colA])
	assert.Equal(t, Blank(), total[colB])
	assert.Equal(t, Blank(), total[colC])
	assert.Equal(t, Number(0), total[colCount])
}

func TestBuildReport_GrandSummaryRows(t *testing.T) {
	doc := BuildReport("NSS Hours", buildTestInput())

	labels := []string{
		"Area Based 1 Hours",
		"Area Based 2 Hours",
		"Total Area Based (60)",
		"University Hours",
		"College Hours",
		"Total Hours (120)",
	}
	for i, label := range labels {
		row := doc.Rows[19+i]
		assert.Equal(t, Text(label), row.Cells[0], "summary row %d", i)
		// Summary rows carry no Count/Male/Female columns
		assert.Len(t, row.Cells, colMeta+3)
	}

	area1 := doc.Rows[19].Cells
	assert.Equal(t, Number(10), area1[colA])
	assert.Equal(t, Number(4), area1[colB])
	assert.Equal(t, Blank(), area1[colC])

	areaTotal := doc.Rows[21].Cells
	assert.Equal(t, Number(10), areaTotal[colA])
	assert.Equal(t, Number(4), areaTotal[colB])
	assert.Equal(t, Number(5), areaTotal[colC])

	grand := doc.Rows[24].Cells
	assert.Equal(t, Number(10), grand[colA])
	assert.Equal(t, Number(7), grand[colB])
	assert.Equal(t, Number(7), grand[colC])
}

func TestBuildReport_DuplicateCellsAccumulate(t *testing.T) {
	in := buildTestInput()
	in.Cells = append(in.Cells, db.ReportCell{EventID: "ev-1", VolunteerID: "vol-a", HoursAttended: 1.5})

	doc := BuildReport("NSS Hours", in)

	assert.Equal(t, Number(5.5), doc.Rows[4].Cells[colA])
	assert.Equal(t, Number(11.5), doc.Rows[6].Cells[colA])
}

func TestBuildReport_UnknownVolunteerCellIgnored(t *testing.T) {
	in := buildTestInput()
	in.Cells = append(in.Cells, db.ReportCell{EventID: "ev-1", VolunteerID: "vol-gone", HoursAttended: 8})

	doc := BuildReport("NSS Hours", in)

	// Row shape is unchanged and no total picked up the orphan hours
	assert.Len(t, doc.Rows[4].Cells, colMeta+3+3)
	assert.Equal(t, Number(10), doc.Rows[6].Cells[colA])
	assert.Equal(t, Number(4), doc.Rows[6].Cells[colB])
}

func TestBuildReport_UnknownCategoryFallsBackToCollege(t *testing.T) {
	in := buildTestInput()
	in.Events = append(in.Events, model.Event{
		ID: "ev-5", Name: "Mystery Event", StartDate: date(2025, 6, 3), DeclaredHours: 2, CategoryCode: "something_new",
	})

	doc := BuildReport("NSS Hours", in)

	// College Based section now has one event row
	require.Len(t, doc.Rows, 26)
	assert.Equal(t, Text("College Based"), doc.Rows[16].Cells[0])
	assert.Equal(t, Text("Mystery Event"), doc.Rows[17].Cells[0])
	assert.Equal(t, Text("TOTAL"), doc.Rows[18].Cells[0])
}

func TestBuildReport_NoVolunteersNoEvents(t *testing.T) {
	doc := BuildReport("Empty", Input{})

	// Headers, four empty sections, and the grand summary still render
	require.Len(t, doc.Rows, 21)
	assert.Equal(t, Text("TOTAL"), doc.Rows[4].Cells[0])
	assert.Equal(t, Text("Total Hours (120)"), doc.Rows[20].Cells[0])
}
