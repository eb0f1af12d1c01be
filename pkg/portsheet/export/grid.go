// Package export projects a labelled grid of cells into workbook, document,
// delimited text, markdown, HTML, numeric matrix and flat sequence outputs.
//
// Every encoder reads the grid through the Grid interface and never mutates it.
// The grid passed in is expected to be restricted to the exported sub-shape
// already; Config.Offset tells the encoders how far to slice the label arrays
// of the (unsliced) index so labels line up with the visible cells.
package export

import "github.com/ukaji3/portsheet-go/pkg/portsheet/models"

// Grid is the read-only view of a sheet consumed by the encoders.
type Grid interface {
	// Shape returns the number of exported rows and columns.
	Shape() (rows, cols int)
	// CellAt returns the cell at an exported position.
	CellAt(row, col int) models.Cell
	// Variables returns the named variables of the sheet.
	Variables() *models.VariableSet
	// Index returns the labelling metadata of the whole sheet.
	Index() *models.GridIndex
}

// Offset is the number of leading rows and columns excluded from an export.
type Offset struct {
	Rows    int `json:"rows" yaml:"rows" toml:"rows"`
	Columns int `json:"columns" yaml:"columns" toml:"columns"`
}


// Config carries the settings shared by every encoder call.
type Config struct {
	// Offset is the number of leading rows and columns not exported.
	Offset Offset
	// ExportingSubset makes every call log the subset warning once.
	ExportingSubset bool
	// Warn receives diagnostics. A nil sink discards them.
	Warn Sink
	// Metrics records export counters (optional).
	Metrics *Metrics
}

// start fires the subset warning and counts the call.
func (c Config) start(format string) {
	c.Metrics.observeExport(format)
	if c.ExportingSubset {
		c.warn(noticeSubset, MessageSubset)
	}
}

func (c Config) warn(kind, message string) {
	c.Metrics.observeNotice(kind)
	if c.Warn != nil {
		c.Warn(message)
	}
}
