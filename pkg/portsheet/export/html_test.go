package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

func TestToHTMLTable(t *testing.T) {
	s := newSheet(t)

	out := ToHTMLTable(s, Config{}, DefaultHTMLOptions())
	require.True(t, strings.HasPrefix(out, `<table><tr><th>Sheet</th><th><a href="javascript:;">Col A</a></th>`), out)
	require.Contains(t, out, `<tr><td><a href="javascript:;" title="first row">Row 1</a></td>`)
	require.Contains(t, out, `<td><a href="javascript:;" title="a letter">x</a></td>`)
	require.Contains(t, out, `<td><a href="javascript:;">3</a></td>`)
	require.True(t, strings.HasSuffix(out, "</tr></table>"))
	require.Equal(t, 4, strings.Count(out, "<tr>"))
}

func TestToHTMLTableDescriptionDialect(t *testing.T) {
	s := newSheet(t)
	opts := DefaultHTMLOptions()
	opts.DescriptionDialect = models.DialectNative

	out := ToHTMLTable(s, Config{}, opts)
	require.Contains(t, out, `<td><a href="javascript:;" title="sum of a and b">3</a></td>`)
	// Value-only cells never fall back to a phrase.
	require.Contains(t, out, `<td><a href="javascript:;">1</a></td>`)
}

func TestToHTMLTableRowHelpFollowsRowOffset(t *testing.T) {
	s := newSheet(t)

	out := ToHTMLTable(s.Skip(1, 1), Config{Offset: Offset{Rows: 1, Columns: 1}}, DefaultHTMLOptions())
	require.Contains(t, out, `title="second row">Row 2</a>`)
	require.NotContains(t, out, "Row 1")
	require.NotContains(t, out, "Col A")
}

func TestToHTMLTableEscapes(t *testing.T) {
	s := squareSheet(t, [2][2]any{{"<b>", nil}, {1, 2}})
	opts := DefaultHTMLOptions()
	opts.NAReplacement = "&"

	out := ToHTMLTable(s, Config{}, opts)
	require.Contains(t, out, ">&lt;b&gt;</a>")
	require.Contains(t, out, ">&amp;</a>")
}
