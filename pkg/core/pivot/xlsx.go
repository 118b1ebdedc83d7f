package pivot

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// RenderXLSX serializes the document as a single-worksheet spreadsheet.
// Numeric cells are written as numbers so spreadsheet formulas can sum them;
// blank cells are skipped entirely rather than written as empty strings.
func RenderXLSX(doc *Document, w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	if doc.Title != "" {
		if err := file.SetSheetName(sheet, doc.Title); err != nil {
			return fmt.Errorf("failed to name worksheet: %w", err)
		}
		sheet = doc.Title
	}

	for rowIdx, row := range doc.Rows {
		for colIdx, cell := range row.Cells {
			if cell.Kind == CellBlank {
				continue
			}

			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return fmt.Errorf("failed to compute cell name: %w", err)
			}

			switch cell.Kind {
			case CellText:
				err = file.SetCellValue(sheet, cellName, cell.Text)
			case CellNumber:
				err = file.SetCellValue(sheet, cellName, cell.Number)
			}
			if err != nil {
				return fmt.Errorf("failed to set cell %s: %w", cellName, err)
			}
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}
