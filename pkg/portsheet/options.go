// Package portsheet exports labelled sheets to workbook, document and text formats.
package portsheet

import (
	"fmt"
	"strings"

	"github.com/ukaji3/portsheet-go/pkg/portsheet/export"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/loader"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

// Format represents an output format.
type Format string

const (
	// FormatXLSX writes an Excel workbook.
	FormatXLSX Format = "xlsx"
	// FormatJSON writes the nested document as JSON.
	FormatJSON Format = "json"
	// FormatYAML writes the nested document as YAML.
	FormatYAML Format = "yaml"
	// FormatCSV writes delimited text.
	FormatCSV Format = "csv"
	// FormatMarkdown writes a markdown table.
	FormatMarkdown Format = "markdown"
	// FormatHTML writes an HTML table.
	FormatHTML Format = "html"
	// FormatMatrix writes the numeric matrix, one row per line.
	FormatMatrix Format = "matrix"
	// FormatList writes the raw values as a list literal.
	FormatList Format = "list"
)

// Formats lists every supported format.
var Formats = []Format{FormatXLSX, FormatJSON, FormatYAML, FormatCSV, FormatMarkdown, FormatHTML, FormatMatrix, FormatList}

// ParseFormat parses a format name. "md" is accepted for markdown and "yml" for YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	case FormatXLSX, FormatJSON, FormatYAML, FormatCSV, FormatMarkdown, FormatHTML, FormatMatrix, FormatList:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Options configures an export.
type Options struct {
	// Format is the output format.
	Format Format
	// Offset is the number of leading rows and columns left out.
	Offset export.Offset
	// ByRow makes rows the outer key of documents.
	// If nil, defaults to true.
	ByRow *bool
	// Pretty indents JSON output.
	Pretty bool

	Workbook export.WorkbookOptions
	Document export.DocumentOptions
	CSV      export.CSVOptions
	Markdown export.TextOptions
	HTML     export.HTMLOptions
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		Format:   FormatJSON,
		Workbook: export.DefaultWorkbookOptions(),
		Document: export.DefaultDocumentOptions(),
		CSV:      export.DefaultCSVOptions(),
		Markdown: export.DefaultTextOptions(),
		HTML:     export.DefaultHTMLOptions(),
	}
}

// ShouldExportByRow returns whether rows are the outer key of documents.
func (o Options) ShouldExportByRow() bool {
	if o.ByRow != nil {
		return *o.ByRow
	}
	return true
}

// IsSubset reports whether the export leaves part of the sheet out.
// Negative offsets skip nothing.
func (o Options) IsSubset() bool {
	return o.Offset.Rows > 0 || o.Offset.Columns > 0
}

// Apply copies the non-empty settings of a definition file into the options.
func (o *Options) Apply(s loader.Settings) error {
	if s.Format != "" {
		f, err := ParseFormat(s.Format)
		if err != nil {
			return err
		}
		o.Format = f
	}
	if s.ByRow != nil {
		byRow := *s.ByRow
		o.ByRow = &byRow
	}
	if s.SkipRows != 0 {
		o.Offset.Rows = s.SkipRows
	}
	if s.SkipColumns != 0 {
		o.Offset.Columns = s.SkipColumns
	}
	if s.SheetName != "" {
		o.Workbook.SheetName = s.SheetName
	}
	if s.VariablesSheetName != "" {
		o.Workbook.VariablesSheetName = s.VariablesSheetName
	}
	if h, ok := s.VariablesHeader["name"]; ok {
		o.Workbook.VariablesHeader.Name = h
	}
	if h, ok := s.VariablesHeader["value"]; ok {
		o.Workbook.VariablesHeader.Value = h
	}
	if h, ok := s.VariablesHeader["description"]; ok {
		o.Workbook.VariablesHeader.Description = h
	}
	if s.RowLabelStyle != nil {
		o.Workbook.RowLabelStyle = models.StyleHints(s.RowLabelStyle)
	}
	if s.ColumnLabelStyle != nil {
		o.Workbook.ColumnLabelStyle = models.StyleHints(s.ColumnLabelStyle)
	}
	if s.SpacesReplacement != "" {
		o.SetSpacesReplacement(s.SpacesReplacement)
	}
	if s.CornerText != "" {
		o.CSV.CornerText = s.CornerText
		o.Markdown.CornerText = s.CornerText
		o.HTML.CornerText = s.CornerText
	}
	if s.NAReplacement != "" {
		o.CSV.NAReplacement = s.NAReplacement
		o.Markdown.NAReplacement = s.NAReplacement
		o.HTML.NAReplacement = s.NAReplacement
	}
	if s.Separator != "" {
		o.CSV.Separator = s.Separator
	}
	if s.LineTerminator != "" {
		o.CSV.LineTerminator = s.LineTerminator
	}
	if s.Dialects != nil {
		o.Document.Dialects = make([]models.Dialect, len(s.Dialects))
		for i, d := range s.Dialects {
			o.Document.Dialects[i] = models.Dialect(d)
		}
	}
	if s.Pseudonyms != nil {
		o.Document.Pseudonyms = append([]string(nil), s.Pseudonyms...)
	}
	if s.SkipNaNCell {
		o.Document.SkipNaNCell = true
	}
	if s.DescriptionDialect != "" {
		o.HTML.DescriptionDialect = models.Dialect(s.DescriptionDialect)
	}
	return nil
}

// SetSpacesReplacement sets the label space replacement of every format.
func (o *Options) SetSpacesReplacement(r string) {
	o.Workbook.SpacesReplacement = r
	o.Document.SpacesReplacement = r
	o.CSV.SpacesReplacement = r
	o.Markdown.SpacesReplacement = r
	o.HTML.SpacesReplacement = r
}
