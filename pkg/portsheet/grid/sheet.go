// Package grid provides an in-memory sheet that the export engine can read.
package grid

import (
	"fmt"
	"slices"

	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

// Sheet is a dense, in-memory grid of cells.
type Sheet struct {
	index *models.GridIndex
	vars  *models.VariableSet
	cells [][]models.Cell
}

// New creates an empty sheet shaped by the index.
func New(index *models.GridIndex) *Sheet {
	rows, cols := index.Shape()
	cells := make([][]models.Cell, rows)
	for i := range cells {
		cells[i] = make([]models.Cell, cols)
	}
	return &Sheet{
		index: index,
		vars:  models.NewVariableSet(),
		cells: cells,
	}
}

// Shape returns the number of rows and columns.
func (s *Sheet) Shape() (rows, cols int) {
	return s.index.Shape()
}

// Index returns the labelling metadata.
func (s *Sheet) Index() *models.GridIndex {
	return s.index
}

// Variables returns the sheet variables.
func (s *Sheet) Variables() *models.VariableSet {
	return s.vars
}

// CellAt returns the cell at a position, or the zero cell when out of range.
func (s *Sheet) CellAt(row, col int) models.Cell {
	if row < 0 || row >= len(s.cells) || col < 0 || col >= len(s.cells[row]) {
		return models.Cell{}
	}
	return s.cells[row][col]
}

// ByPosition returns the cell at an integer position.
func (s *Sheet) ByPosition(row, col int) (models.Cell, error) {
	if err := s.checkPosition(row, col); err != nil {
		return models.Cell{}, err
	}
	return s.cells[row][col], nil
}

// ByNickname returns the cell addressed by its row and column nicknames.
func (s *Sheet) ByNickname(row, col string) (models.Cell, error) {
	r, c, err := s.resolveNicknames(row, col)
	if err != nil {
		return models.Cell{}, err
	}
	return s.cells[r][c], nil
}

// SetValue stores a literal value at a position.
func (s *Sheet) SetValue(row, col int, value any) error {
	return s.Set(row, col, models.Cell{Value: value})
}

// Set stores a cell at a position.
func (s *Sheet) Set(row, col int, cell models.Cell) error {
	if err := s.checkPosition(row, col); err != nil {
		return err
	}
	s.cells[row][col] = cell
	return nil
}

// SetByNickname stores a cell addressed by row and column nicknames.
func (s *Sheet) SetByNickname(row, col string, cell models.Cell) error {
	r, c, err := s.resolveNicknames(row, col)
	if err != nil {
		return err
	}
	s.cells[r][c] = cell
	return nil
}

// Skip returns a view without the first rows and cols of the sheet.
func (s *Sheet) Skip(rows, cols int) *View {
	return &View{sheet: s, rowSkip: max(rows, 0), colSkip: max(cols, 0)}
}

func (s *Sheet) checkPosition(row, col int) error {
	rows, cols := s.Shape()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return fmt.Errorf("position (%d, %d) outside sheet of shape (%d, %d)", row, col, rows, cols)
	}
	return nil
}

func (s *Sheet) resolveNicknames(row, col string) (int, int, error) {
	r := slices.Index(s.index.RowNicknames, row)
	if r < 0 {
		return 0, 0, fmt.Errorf("unknown row nickname %q", row)
	}
	c := slices.Index(s.index.ColumnNicknames, col)
	if c < 0 {
		return 0, 0, fmt.Errorf("unknown column nickname %q", col)
	}
	return r, c, nil
}
