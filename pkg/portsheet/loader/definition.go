// Package loader reads sheet definitions from YAML, TOML or JSON files.
package loader

import (
	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

// Definition describes a sheet, its variables and default export settings.
type Definition struct {
	// Rows and Columns label the two axes.
	Rows    []models.Label `json:"rows" yaml:"rows" toml:"rows"`
	Columns []models.Label `json:"columns" yaml:"columns" toml:"columns"`
	// Dialects lists the formula dialects cells may carry (default: excel, native).
	Dialects []string `json:"dialects,omitempty" yaml:"dialects,omitempty" toml:"dialects,omitempty"`
	// AppendLabels writes row and column labels into workbooks.
	AppendLabels bool `json:"append_labels,omitempty" yaml:"append_labels,omitempty" toml:"append_labels,omitempty"`
	// Values holds literal values row by row. Short rows leave the rest empty.
	Values [][]any `json:"values,omitempty" yaml:"values,omitempty" toml:"values,omitempty"`
	// Cells overrides single cells, applied after Values.
	Cells []CellDefinition `json:"cells,omitempty" yaml:"cells,omitempty" toml:"cells,omitempty"`
	// Variables are the named variables of the sheet, in order.
	Variables []VariableDefinition `json:"variables,omitempty" yaml:"variables,omitempty" toml:"variables,omitempty"`
	// Export holds default export settings.
	Export Settings `json:"export,omitempty" yaml:"export,omitempty" toml:"export,omitempty"`
}

// CellDefinition describes one cell, addressed by position or by nicknames.
type CellDefinition struct {
	Row         *int              `json:"row,omitempty" yaml:"row,omitempty" toml:"row,omitempty"`
	Column      *int              `json:"column,omitempty" yaml:"column,omitempty" toml:"column,omitempty"`
	RowName     string            `json:"row_name,omitempty" yaml:"row_name,omitempty" toml:"row_name,omitempty"`
	ColumnName  string            `json:"column_name,omitempty" yaml:"column_name,omitempty" toml:"column_name,omitempty"`
	Value       any               `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Formula     map[string]string `json:"formula,omitempty" yaml:"formula,omitempty" toml:"formula,omitempty"`
	Words       map[string]string `json:"words,omitempty" yaml:"words,omitempty" toml:"words,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Style       map[string]any    `json:"style,omitempty" yaml:"style,omitempty" toml:"style,omitempty"`
}

// VariableDefinition describes one named variable.
type VariableDefinition struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Value       any    `json:"value" yaml:"value" toml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Settings are export defaults stored alongside a definition.
// Nil pointers and empty strings leave the built-in defaults in place.
type Settings struct {
	Format             string            `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	ByRow              *bool             `json:"by_row,omitempty" yaml:"by_row,omitempty" toml:"by_row,omitempty"`
	SkipRows           int               `json:"skip_rows,omitempty" yaml:"skip_rows,omitempty" toml:"skip_rows,omitempty"`
	SkipColumns        int               `json:"skip_columns,omitempty" yaml:"skip_columns,omitempty" toml:"skip_columns,omitempty"`
	SheetName          string            `json:"sheet_name,omitempty" yaml:"sheet_name,omitempty" toml:"sheet_name,omitempty"`
	VariablesSheetName string            `json:"variables_sheet_name,omitempty" yaml:"variables_sheet_name,omitempty" toml:"variables_sheet_name,omitempty"`
	VariablesHeader    map[string]string `json:"variables_header,omitempty" yaml:"variables_header,omitempty" toml:"variables_header,omitempty"`
	SpacesReplacement  string            `json:"spaces_replacement,omitempty" yaml:"spaces_replacement,omitempty" toml:"spaces_replacement,omitempty"`
	CornerText         string            `json:"corner_text,omitempty" yaml:"corner_text,omitempty" toml:"corner_text,omitempty"`
	NAReplacement      string            `json:"na_replacement,omitempty" yaml:"na_replacement,omitempty" toml:"na_replacement,omitempty"`
	Separator          string            `json:"separator,omitempty" yaml:"separator,omitempty" toml:"separator,omitempty"`
	LineTerminator     string            `json:"line_terminator,omitempty" yaml:"line_terminator,omitempty" toml:"line_terminator,omitempty"`
	Dialects           []string          `json:"dialects,omitempty" yaml:"dialects,omitempty" toml:"dialects,omitempty"`
	Pseudonyms         []string          `json:"pseudonyms,omitempty" yaml:"pseudonyms,omitempty" toml:"pseudonyms,omitempty"`
	SkipNaNCell        bool              `json:"skip_nan_cell,omitempty" yaml:"skip_nan_cell,omitempty" toml:"skip_nan_cell,omitempty"`
	DescriptionDialect string            `json:"description_dialect,omitempty" yaml:"description_dialect,omitempty" toml:"description_dialect,omitempty"`
	RowLabelStyle      map[string]any    `json:"row_label_style,omitempty" yaml:"row_label_style,omitempty" toml:"row_label_style,omitempty"`
	ColumnLabelStyle   map[string]any    `json:"column_label_style,omitempty" yaml:"column_label_style,omitempty" toml:"column_label_style,omitempty"`
}
