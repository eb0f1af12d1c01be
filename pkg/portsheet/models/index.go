package models

// Label describes one row or column of a sheet.
type Label struct {
	// Text is the display label.
	Text string `json:"label" yaml:"label" toml:"label"`
	// Nickname is a stable alternate key (defaults to Text when empty).
	Nickname string `json:"nickname,omitempty" yaml:"nickname,omitempty" toml:"nickname,omitempty"`
	// Help is an optional help text shown as a tooltip.
	Help string `json:"help,omitempty" yaml:"help,omitempty" toml:"help,omitempty"`
}

// GridIndex holds the labelling metadata of a sheet.
type GridIndex struct {
	// RowLabels are the display labels of rows.
	RowLabels []string
	// ColumnLabels are the display labels of columns.
	ColumnLabels []string
	// RowNicknames are unique keys for rows.
	RowNicknames []string
	// ColumnNicknames are unique keys for columns.
	ColumnNicknames []string
	// RowHelpText is the per-row help text (nil if absent).
	RowHelpText []string
	// ColumnHelpText is the per-column help text (nil if absent).
	ColumnHelpText []string
	// Dialects is the full set of dialects a computational cell may expose.
	Dialects []Dialect
	// AppendLabels makes the workbook encoder write labels into row 0 and column 0.
	AppendLabels bool
}

// NewGridIndex builds an index from row and column label descriptions.
// Help text slices are only populated when at least one label of the axis carries help.
func NewGridIndex(rows, columns []Label, dialects []Dialect) *GridIndex {
	idx := &GridIndex{Dialects: dialects}
	idx.RowLabels, idx.RowNicknames, idx.RowHelpText = splitLabels(rows)
	idx.ColumnLabels, idx.ColumnNicknames, idx.ColumnHelpText = splitLabels(columns)
	return idx
}

// Shape returns the number of rows and columns the index describes.
func (g *GridIndex) Shape() (rows, cols int) {
	return len(g.RowLabels), len(g.ColumnLabels)
}

func splitLabels(labels []Label) (text, nicknames, help []string) {
	text = make([]string, len(labels))
	nicknames = make([]string, len(labels))
	hasHelp := false
	for i, l := range labels {
		text[i] = l.Text
		nicknames[i] = l.Nickname
		if nicknames[i] == "" {
			nicknames[i] = l.Text
		}
		if l.Help != "" {
			hasHelp = true
		}
	}
	if hasHelp {
		help = make([]string, len(labels))
		for i, l := range labels {
			help[i] = l.Help
		}
	}
	return text, nicknames, help
}
