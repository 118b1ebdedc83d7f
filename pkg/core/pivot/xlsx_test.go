package pivot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRenderXLSX_RoundTrip(t *testing.T) {
	doc := &Document{
		Title: "Hours",
		Rows: []Row{
			{Cells: []Cell{Text("Event"), Text("Hours")}},
			{Cells: []Cell{Text("Cleanup"), Number(4)}},
			{Cells: []Cell{Text("Camp"), Blank()}},
			{},
			{Cells: []Cell{Text("TOTAL"), Number(4)}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderXLSX(doc, &buf))

	file, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer file.Close()

	require.Equal(t, "Hours", file.GetSheetName(0))

	value, err := file.GetCellValue("Hours", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Cleanup", value)

	value, err = file.GetCellValue("Hours", "B2")
	require.NoError(t, err)
	assert.Equal(t, "4", value)

	// Blank cells are omitted, not written as empty strings
	value, err = file.GetCellValue("Hours", "B3")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	value, err = file.GetCellValue("Hours", "A5")
	require.NoError(t, err)
	assert.Equal(t, "TOTAL", value)
}

func TestDocumentGrid(t *testing.T) {
	doc := &Document{
		Rows: []Row{
			{Cells: []Cell{Text("Cleanup"), Number(4), Blank()}},
			{},
		},
	}

	grid := doc.Grid()
	require.Len(t, grid, 2)
	assert.Equal(t, []interface{}{"Cleanup", 4.0, ""}, grid[0])
	assert.Empty(t, grid[1])
}
