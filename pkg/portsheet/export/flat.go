package export

import "strings"

// ToRows exports the raw values as row-major nested slices. nil values are kept.
func ToRows(g Grid, cfg Config) [][]any {
	cfg.start(formatRows)
	rows, cols := g.Shape()
	out := make([][]any, 0, max(rows, 0))
	for i := 0; i < rows; i++ {
		row := make([]any, 0, max(cols, 0))
		for j := 0; j < cols; j++ {
			row = append(row, g.CellAt(i, j).Value)
		}
		out = append(out, row)
	}
	return out
}

// ToListLiteral renders the raw values as a list of lists, one row per line:
//
//	[[1, 2],
//	[3, nil]]
func ToListLiteral(g Grid, cfg Config) string {
	cfg.start(formatList)
	rows, cols := g.Shape()
	var b strings.Builder
	b.WriteString("[")
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteString(",\n")
		}
		b.WriteString("[")
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatScalar(g.CellAt(i, j).Value))
		}
		b.WriteString("]")
	}
	b.WriteString("]")
	return b.String()
}
