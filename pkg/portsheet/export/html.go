package export

import (
	"html"
	"strings"

	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

// HTMLOptions configures ToHTMLTable.
type HTMLOptions struct {
	TextOptions
	// DescriptionDialect, when set, titles computational cells without a
	// description with their constructing phrase in this dialect.
	DescriptionDialect models.Dialect
}

// DefaultHTMLOptions returns the default HTML table options.
func DefaultHTMLOptions() HTMLOptions {
	return HTMLOptions{TextOptions: DefaultTextOptions()}
}

// ToHTMLTable exports the values as an HTML table. Labels and values are
// wrapped in anchors whose title attribute carries the help text or cell description.
func ToHTMLTable(g Grid, cfg Config, opts HTMLOptions) string {
	cfg.start(formatHTML)
	plan := ResolveAxes(g, true, cfg.Offset)
	rows, cols := plan.Rows(), plan.Columns()

	var b strings.Builder
	b.WriteString("<table><tr><th>")
	b.WriteString(html.EscapeString(opts.CornerText))
	b.WriteString("</th>")
	for j := 0; j < cols.Size; j++ {
		help, ok := cols.Help(j)
		b.WriteString("<th>")
		writeAnchor(&b, cols.Label(j, opts.SpacesReplacement), help, ok)
		b.WriteString("</th>")
	}
	b.WriteString("</tr>")
	for i := 0; i < rows.Size; i++ {
		help, ok := rows.Help(i)
		b.WriteString("<tr><td>")
		writeAnchor(&b, rows.Label(i, opts.SpacesReplacement), help, ok)
		b.WriteString("</td>")
		for j := 0; j < cols.Size; j++ {
			cell := g.CellAt(i, j)
			title, ok := cellTitle(cell, opts.DescriptionDialect)
			b.WriteString("<td>")
			writeAnchor(&b, TextValue(cell.Value, opts.NAReplacement), title, ok)
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table>")
	return b.String()
}

func cellTitle(cell models.Cell, dialect models.Dialect) (string, bool) {
	if cell.Description != "" {
		return cell.Description, true
	}
	if dialect == "" || !cell.IsComputational() {
		return "", false
	}
	words, ok := cell.Words[dialect]
	return words, ok
}

func writeAnchor(b *strings.Builder, text, title string, hasTitle bool) {
	b.WriteString(`<a href="javascript:;"`)
	if hasTitle {
		b.WriteString(` title="`)
		b.WriteString(html.EscapeString(title))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(text))
	b.WriteString("</a>")
}
