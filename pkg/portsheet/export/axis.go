package export

import (
	"strings"

	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

// Axis keys used in documents.
const (
	KeyRows    = "rows"
	KeyColumns = "columns"
)

// Axis is one iteration dimension of an export.
type Axis struct {
	// Key is KeyRows or KeyColumns.
	Key string
	// Size is the number of exported entries along the axis.
	Size int
	// Labels are the offset-adjusted labels.
	Labels []string
	// HelpText is the offset-adjusted help text (nil if the index has none).
	HelpText []string
}

// Label returns the i-th label with spaces replaced, or "" past the end.
func (a Axis) Label(i int, spaces string) string {
	if i < 0 || i >= len(a.Labels) {
		return ""
	}
	return replaceSpaces(a.Labels[i], spaces)
}

// Help returns the i-th help text.
func (a Axis) Help(i int) (string, bool) {
	if a.HelpText == nil || i < 0 || i >= len(a.HelpText) {
		return "", false
	}
	return a.HelpText[i], true
}

// AxisPlan holds the two axes of an export. Primary is iterated outermost.
type AxisPlan struct {
	Primary   Axis
	Secondary Axis
	ByRow     bool
}

// ResolveAxes computes the iteration axes for a grid.
// With byRow rows are primary and columns secondary; otherwise they swap.
func ResolveAxes(g Grid, byRow bool, offset Offset) AxisPlan {
	rowCount, colCount := g.Shape()
	idx := g.Index()
	rows := Axis{
		Key:      KeyRows,
		Size:     max(rowCount, 0),
		Labels:   skip(idx.RowLabels, offset.Rows),
		HelpText: skip(idx.RowHelpText, offset.Rows),
	}
	cols := Axis{
		Key:      KeyColumns,
		Size:     max(colCount, 0),
		Labels:   skip(idx.ColumnLabels, offset.Columns),
		HelpText: skip(idx.ColumnHelpText, offset.Columns),
	}
	if byRow {
		return AxisPlan{Primary: rows, Secondary: cols, ByRow: true}
	}
	return AxisPlan{Primary: cols, Secondary: rows}
}

// Rows returns the axis describing rows.
func (p AxisPlan) Rows() Axis {
	if p.ByRow {
		return p.Primary
	}
	return p.Secondary
}

// Columns returns the axis describing columns.
func (p AxisPlan) Columns() Axis {
	if p.ByRow {
		return p.Secondary
	}
	return p.Primary
}

// Position maps a primary/secondary index pair to a row/column pair.
func (p AxisPlan) Position(primary, secondary int) (row, col int) {
	if p.ByRow {
		return primary, secondary
	}
	return secondary, primary
}

// Cell fetches the cell at a primary/secondary index pair.
func (p AxisPlan) Cell(g Grid, primary, secondary int) models.Cell {
	return g.CellAt(p.Position(primary, secondary))
}

// skip returns s[n:], nil for a nil slice and an empty slice when n is past the end.
func skip(s []string, n int) []string {
	if s == nil {
		return nil
	}
	if n <= 0 {
		return s
	}
	if n >= len(s) {
		return []string{}
	}
	return s[n:]
}

// replaceSpaces swaps spaces for replacement. An empty replacement keeps the label.
func replaceSpaces(label, replacement string) string {
	if replacement == "" || replacement == " " {
		return label
	}
	return strings.ReplaceAll(label, " ", replacement)
}
