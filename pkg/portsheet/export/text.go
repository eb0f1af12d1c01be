package export

import "strings"

// TextOptions holds the label and placeholder settings shared by the text targets.
type TextOptions struct {
	// SpacesReplacement replaces spaces in labels ("" or " " keeps them).
	SpacesReplacement string
	// CornerText is written in the top left cell.
	CornerText string
	// NAReplacement is written for cells without a value.
	NAReplacement string
}

// DefaultTextOptions returns the default label and placeholder settings.
func DefaultTextOptions() TextOptions {
	return TextOptions{
		SpacesReplacement: " ",
		CornerText:        "Sheet",
	}
}

// CSVOptions configures ToCSV.
type CSVOptions struct {
	TextOptions
	// Separator separates values in a line.
	Separator string
	// LineTerminator ends every line but the last.
	LineTerminator string
}

// DefaultCSVOptions returns the default delimited text options.
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		TextOptions:    DefaultTextOptions(),
		Separator:      ",",
		LineTerminator: "\n",
	}
}

// ToCSV exports the values as delimited text with a header line of column labels
// and a leading row label on every data line.
// Values are not quoted; a value containing the separator misaligns its line.
func ToCSV(g Grid, cfg Config, opts CSVOptions) string {
	cfg.start(formatCSV)
	plan := ResolveAxes(g, true, cfg.Offset)
	rows, cols := plan.Rows(), plan.Columns()

	var b strings.Builder
	b.WriteString(opts.CornerText)
	b.WriteString(opts.Separator)
	for j := 0; j < cols.Size; j++ {
		if j > 0 {
			b.WriteString(opts.Separator)
		}
		b.WriteString(cols.Label(j, opts.SpacesReplacement))
	}
	for i := 0; i < rows.Size; i++ {
		b.WriteString(opts.LineTerminator)
		b.WriteString(rows.Label(i, opts.SpacesReplacement))
		b.WriteString(opts.Separator)
		for j := 0; j < cols.Size; j++ {
			if j > 0 {
				b.WriteString(opts.Separator)
			}
			b.WriteString(TextValue(g.CellAt(i, j).Value, opts.NAReplacement))
		}
	}
	return b.String()
}

// ToMarkdown exports the values as a markdown table with emphasised labels.
func ToMarkdown(g Grid, cfg Config, opts TextOptions) string {
	cfg.start(formatMarkdown)
	plan := ResolveAxes(g, true, cfg.Offset)
	rows, cols := plan.Rows(), plan.Columns()

	var b strings.Builder
	b.WriteString("| " + opts.CornerText + " |")
	for j := 0; j < cols.Size; j++ {
		b.WriteString("*" + cols.Label(j, opts.SpacesReplacement) + "*")
		if j < cols.Size-1 {
			b.WriteString(" | ")
		} else {
			b.WriteString(" |")
		}
	}
	b.WriteString("\n|----|")
	b.WriteString(strings.Repeat("----|", cols.Size))
	b.WriteString("\n")
	for i := 0; i < rows.Size; i++ {
		b.WriteString("| *" + rows.Label(i, opts.SpacesReplacement) + "* |")
		for j := 0; j < cols.Size; j++ {
			b.WriteString(" ")
			b.WriteString(TextValue(g.CellAt(i, j).Value, opts.NAReplacement))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	return b.String()
}
