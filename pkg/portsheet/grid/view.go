package grid

import "github.com/ukaji3/portsheet-go/pkg/portsheet/models"

// View is a read-only window over a sheet with leading rows and columns removed.
// Positions passed to CellAt are relative to the first visible row and column.
type View struct {
	sheet   *Sheet
	rowSkip int
	colSkip int
}

// Shape returns the visible number of rows and columns, never negative.
func (v *View) Shape() (rows, cols int) {
	rows, cols = v.sheet.Shape()
	return max(rows-v.rowSkip, 0), max(cols-v.colSkip, 0)
}

// Offset returns how many rows and columns the view hides.
func (v *View) Offset() (rows, cols int) {
	return v.rowSkip, v.colSkip
}

// CellAt returns the cell at a view-relative position.
func (v *View) CellAt(row, col int) models.Cell {
	return v.sheet.CellAt(row+v.rowSkip, col+v.colSkip)
}

// Index returns the full, unsliced index of the underlying sheet.
func (v *View) Index() *models.GridIndex {
	return v.sheet.Index()
}

// Variables returns the variables of the underlying sheet.
func (v *View) Variables() *models.VariableSet {
	return v.sheet.Variables()
}
