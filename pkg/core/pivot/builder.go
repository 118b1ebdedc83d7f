package pivot

import (
	"sort"

	"github.com/sevatrack/volunteer-hours/pkg/core/model"
	"github.com/sevatrack/volunteer-hours/pkg/db"
)

// metaColumns is the number of leading metadata columns (event name, date,
// declared hours) before the volunteer columns begin.
const metaColumns = 3

const dateLayout = "2006-01-02"

// Input carries everything the builder needs. Volunteers must already be in
// column order (study year, then name) and Cells must already be filtered to
// countable participation; the builder never reorders or refilters.
type Input struct {
	Volunteers []model.Volunteer
	Events     []model.Event
	Cells      []db.ReportCell
}

// BuildReport folds events and participation into the legacy category-sectioned
// pivot layout: three header rows, four fixed sections of event rows each
// closed by a TOTAL row, and the grand-summary rows with their target labels.
//
// The volunteer ordering is taken from the input once and reused for headers,
// event cells, section totals, and grand totals alike.
func BuildReport(title string, in Input) *Document {
	doc := &Document{Title: title}

	// Column position per volunteer, fixed for the whole document
	colByVolunteer := make(map[string]int, len(in.Volunteers))
	for i, v := range in.Volunteers {
		colByVolunteer[v.ID] = i
	}

	// hours[eventID][volunteerID]
	hours := make(map[string]map[string]float64)
	for _, cell := range in.Cells {
		byVolunteer, ok := hours[cell.EventID]
		if !ok {
			byVolunteer = make(map[string]float64)
			hours[cell.EventID] = byVolunteer
		}
		byVolunteer[cell.VolunteerID] += cell.HoursAttended
	}

	eventsBySection := make(map[model.Section][]model.Event)
	for _, e := range in.Events {
		section := model.SectionForCategory(e.CategoryCode)
		eventsBySection[section] = append(eventsBySection[section], e)
	}
	for _, events := range eventsBySection {
		sort.SliceStable(events, func(i, j int) bool {
			if !events[i].StartDate.Equal(events[j].StartDate) {
				return events[i].StartDate.Before(events[j].StartDate)
			}
			return events[i].Name < events[j].Name
		})
	}

	doc.Rows = append(doc.Rows, headerRows(in.Volunteers)...)

	sectionTotals := make(map[model.Section][]float64)
	for _, section := range model.SectionOrder {
		totals := make([]float64, len(in.Volunteers))

		doc.Rows = append(doc.Rows, Row{Cells: []Cell{Text(string(section))}})

		declaredSum := 0.0
		for _, event := range eventsBySection[section] {
			cells := make([]Cell, 0, metaColumns+len(in.Volunteers)+3)
			cells = append(cells,
				Text(event.Name),
				Text(event.StartDate.Format(dateLayout)),
				Number(float64(event.DeclaredHours)),
			)

			volunteerCells := make([]Cell, len(in.Volunteers))
			for volunteerID, h := range hours[event.ID] {
				col, ok := colByVolunteer[volunteerID]
				if !ok {
					continue // inactive volunteer, no column
				}
				volunteerCells[col] = NumberOrBlank(h)
				totals[col] += h
			}
			cells = append(cells, volunteerCells...)
			cells = append(cells, summaryCells(volunteerCells, in.Volunteers)...)

			doc.Rows = append(doc.Rows, Row{Cells: cells})
			declaredSum += float64(event.DeclaredHours)
		}

		// The TOTAL row's Hours column reports declared capacity, not the sum
		// of attended hours; the volunteer cells carry the credited totals.
		totalCells := make([]Cell, 0, metaColumns+len(in.Volunteers)+3)
		totalCells = append(totalCells, Text("TOTAL"), Blank(), Number(declaredSum))
		volunteerTotals := make([]Cell, len(in.Volunteers))
		for col, h := range totals {
			volunteerTotals[col] = NumberOrBlank(h)
		}
		totalCells = append(totalCells, volunteerTotals...)
		totalCells = append(totalCells, summaryCells(volunteerTotals, in.Volunteers)...)
		doc.Rows = append(doc.Rows, Row{Cells: totalCells})

		sectionTotals[section] = totals
		doc.Rows = append(doc.Rows, Row{}) // section separator
	}

	doc.Rows = append(doc.Rows, grandSummaryRows(in.Volunteers, sectionTotals)...)

	return doc
}

// headerRows builds the three header rows: first names, last names with the
// metadata and summary column titles, and genders. All three use the same
// column positions as every data row.
func headerRows(volunteers []model.Volunteer) []Row {
	firstNames := []Cell{Blank(), Blank(), Blank()}
	lastNames := []Cell{Text("Event"), Text("Date"), Text("Hours")}
	genders := []Cell{Blank(), Blank(), Blank()}

	for _, v := range volunteers {
		firstNames = append(firstNames, Text(v.FirstName))
		lastNames = append(lastNames, Text(v.LastName))
		genders = append(genders, Text(string(v.Gender)))
	}

	lastNames = append(lastNames, Text("Count"), Text("Male"), Text("Female"))

	return []Row{
		{Cells: firstNames},
		{Cells: lastNames},
		{Cells: genders},
	}
}

// summaryCells derives the Count/Male/Female columns from the volunteer cells
// of the row just built: count is the number of non-blank positive cells,
// male and female the gendered subsets of those.
func summaryCells(volunteerCells []Cell, volunteers []model.Volunteer) []Cell {
	count, male, female := 0, 0, 0
	for i, cell := range volunteerCells {
		if cell.Kind != CellNumber || cell.Number <= 0 {
			continue
		}
		count++
		switch volunteers[i].Gender {
		case model.GenderMale:
			male++
		case model.GenderFemale:
			female++
		}
	}
	return []Cell{Number(float64(count)), Number(float64(male)), Number(float64(female))}
}

// grandSummaryRows emits the per-section hour rows and the capped totals. The
// "(60)" and "(120)" suffixes are fixed target labels from the reporting
// format; nothing is computed or validated against them. These rows keep the
// metadata columns and volunteer columns but carry no Count/Male/Female cells.
func grandSummaryRows(volunteers []model.Volunteer, sectionTotals map[model.Section][]float64) []Row {
	n := len(volunteers)

	areaBased := make([]float64, n)
	overall := make([]float64, n)
	for _, section := range model.SectionOrder {
		totals := sectionTotals[section]
		for i, h := range totals {
			overall[i] += h
			if section == model.SectionAreaBased1 || section == model.SectionAreaBased2 {
				areaBased[i] += h
			}
		}
	}

	summaryRow := func(label string, totals []float64) Row {
		cells := make([]Cell, 0, metaColumns+n)
		cells = append(cells, Text(label), Blank(), Blank())
		for _, h := range totals {
			cells = append(cells, NumberOrBlank(h))
		}
		return Row{Cells: cells}
	}

	return []Row{
		summaryRow("Area Based 1 Hours", sectionTotals[model.SectionAreaBased1]),
		summaryRow("Area Based 2 Hours", sectionTotals[model.SectionAreaBased2]),
		summaryRow("Total Area Based (60)", areaBased),
		summaryRow("University Hours", sectionTotals[model.SectionUniversity]),
		summaryRow("College Hours", sectionTotals[model.SectionCollege]),
		summaryRow("Total Hours (120)", overall),
	}
}
