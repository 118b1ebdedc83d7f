package pivot

import (
	"encoding/csv"
	"fmt"
	"io"
)

// RenderCSV serializes the document as UTF-8, comma-delimited CSV with
// RFC4180 quoting. Separator rows become blank lines between report sections.
func RenderCSV(doc *Document, w io.Writer) error {
	writer := csv.NewWriter(w)

	for _, row := range doc.Rows {
		if row.IsSeparator() {
			// An empty record writes just the line terminator
			if err := writer.Write(nil); err != nil {
				return fmt.Errorf("failed to write section separator: %w", err)
			}
			continue
		}

		record := make([]string, len(row.Cells))
		for i, cell := range row.Cells {
			record[i] = cell.String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv output: %w", err)
	}

	return nil
}
