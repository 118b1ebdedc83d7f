package pivot

import (
	"fmt"
	"strconv"
	"time"
)

// CellKind distinguishes the three cell payloads a report can carry
type CellKind int

const (
	CellBlank CellKind = iota
	CellText
	CellNumber
)

// Cell is one value in a report row. Zero hour figures are represented as
// blank cells, never as "0" - the legacy spreadsheet convention the
// renderers must preserve.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Blank returns an empty cell
func Blank() Cell {
	return Cell{Kind: CellBlank}
}

// Text returns a text cell, or a blank cell for the empty string
func Text(s string) Cell {
	if s == "" {
		return Blank()
	}
	return Cell{Kind: CellText, Text: s}
}

// Number returns a numeric cell
func Number(n float64) Cell {
	return Cell{Kind: CellNumber, Number: n}
}

// NumberOrBlank returns a numeric cell, or a blank cell when the value is zero
func NumberOrBlank(n float64) Cell {
	if n == 0 {
		return Blank()
	}
	return Number(n)
}

// String renders the cell the way the CSV output does
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return ""
}

// Row is an ordered sequence of cells. A row with no cells is a section
// separator: CSV renders it as a blank line, the spreadsheet renderers as an
// empty row.
type Row struct {
	Cells []Cell
}

// IsSeparator reports whether the row is a section separator
func (r Row) IsSeparator() bool {
	return len(r.Cells) == 0
}

// Document is the format-agnostic report: an ordered sequence of rows, each
// an ordered sequence of cells. The CSV, XLSX, and Sheets renderers all
// consume this same model and differ only in serialization.
type Document struct {
	Title string
	Rows  []Row
}

// Grid converts the document to the value grid the Sheets API expects
func (d *Document) Grid() [][]interface{} {
	grid := make([][]interface{}, 0, len(d.Rows))
	for _, row := range d.Rows {
		values := make([]interface{}, len(row.Cells))
		for i, cell := range row.Cells {
			switch cell.Kind {
			case CellText:
				values[i] = cell.Text
			case CellNumber:
				values[i] = cell.Number
			default:
				values[i] = ""
			}
		}
		grid = append(grid, values)
	}
	return grid
}

// Filename returns the download file name convention: {reportName}-{ISO date}.{ext}
func Filename(reportName string, date time.Time, ext string) string {
	return fmt.Sprintf("%s-%s.%s", reportName, date.Format("2006-01-02"), ext)
}
