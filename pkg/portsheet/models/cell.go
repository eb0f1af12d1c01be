// Package models defines the read-only data structures the export engine consumes.
package models

// CellType distinguishes literal cells from cells built out of other cells.
type CellType int

const (
	// ValueOnly cells hold a literal value and no formula text.
	ValueOnly CellType = iota
	// Computational cells hold a cached value plus formula text per dialect.
	Computational
)

// String returns the lower-case name of the cell type.
func (t CellType) String() string {
	if t == Computational {
		return "computational"
	}
	return "value_only"
}

// Dialect names a target formula syntax a computational cell can render to.
type Dialect string

const (
	// DialectExcel is the spreadsheet formula dialect written into workbooks.
	DialectExcel Dialect = "excel"
	// DialectNative is the plain expression dialect.
	DialectNative Dialect = "native"
)

// Cell represents a single cell of a sheet.
type Cell struct {
	// Value is the computed value (nil if absent).
	Value any `json:"value"`
	// Type is the kind of the cell.
	Type CellType `json:"-"`
	// Parse maps a dialect to the formula text (computational cells only).
	Parse map[Dialect]string `json:"parse,omitempty"`
	// Words maps a dialect to the human readable phrase that built the cell.
	Words map[Dialect]string `json:"words,omitempty"`
	// Description is an optional free text describing the cell ("" if absent).
	Description string `json:"description,omitempty"`
	// Style holds target-agnostic style hints, interpreted by the workbook encoder.
	Style StyleHints `json:"style,omitempty"`
}

// IsComputational reports whether the cell carries formula text.
func (c Cell) IsComputational() bool {
	return c.Type == Computational
}

// Formula returns the formula text for the dialect.
// ok is false for value-only cells and for dialects the cell does not render to.
func (c Cell) Formula(d Dialect) (text string, ok bool) {
	if !c.IsComputational() {
		return "", false
	}
	text, ok = c.Parse[d]
	return text, ok
}

// StyleHints is a flat style dictionary, e.g. {"bold": true, "num_format": "0.00"}.
type StyleHints map[string]any
