package sheetsclient

import (
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/sevatrack/volunteer-hours/pkg/core/pivot"
)

// PublishReport publishes a pivot report to Google Sheets under a tab named
// after the report title. A missing tab is created; an existing tab is cleared
// and rewritten in full, so republishing the same report is idempotent.
func (c *Client) PublishReport(spreadsheetID, tabTitle string, doc *pivot.Document) error {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}

	tabExists := false
	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties.Title == tabTitle {
			tabExists = true
			break
		}
	}

	if !tabExists {
		if _, err := c.CreateSheet(spreadsheetID, tabTitle); err != nil {
			return fmt.Errorf("failed to create report tab: %w", err)
		}
	} else {
		// Clear the whole tab so stale rows from a larger previous report
		// cannot survive below the new data
		_, err := c.service.Spreadsheets.Values.Clear(
			spreadsheetID,
			tabTitle,
			&sheets.ClearValuesRequest{},
		).Do()
		if err != nil {
			return fmt.Errorf("failed to clear report tab: %w", err)
		}
	}

	valueRange := &sheets.ValueRange{
		Values: doc.Grid(),
	}

	_, err = c.service.Spreadsheets.Values.Update(
		spreadsheetID,
		fmt.Sprintf("%s!A1", tabTitle),
		valueRange,
	).ValueInputOption("RAW").Do()
	if err != nil {
		return fmt.Errorf("failed to write report data: %w", err)
	}

	return nil
}
