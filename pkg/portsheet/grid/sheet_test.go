package grid

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

func newTestSheet() *Sheet {
	idx := models.NewGridIndex(
		[]models.Label{{Text: "Income", Nickname: "inc"}, {Text: "Costs", Nickname: "cost"}},
		[]models.Label{{Text: "2024"}, {Text: "2025"}, {Text: "2026"}},
		[]models.Dialect{models.DialectExcel},
	)
	return New(idx)
}

func TestSheetShape(t *testing.T) {
	s := newTestSheet()
	rows, cols := s.Shape()
	require.Equal(t, 2, rows)
	require.Equal(t, 3, cols)
}

func TestSheetByPositionAndNickname(t *testing.T) {
	s := newTestSheet()
	require.NoError(t, s.SetValue(1, 2, 42))
	require.NoError(t, s.SetByNickname("inc", "2024", models.Cell{Value: "x"}))

	c, err := s.ByNickname("cost", "2026")
	require.NoError(t, err)
	require.Equal(t, 42, c.Value)

	c, err = s.ByPosition(0, 0)
	require.NoError(t, err)
	require.Equal(t, "x", c.Value)
}

func TestSheetErrors(t *testing.T) {
	s := newTestSheet()

	_, err := s.ByPosition(2, 0)
	require.Error(t, err)
	require.Error(t, s.SetValue(0, -1, 1))
	_, err = s.ByNickname("missing", "2024")
	require.ErrorContains(t, err, "row nickname")
	_, err = s.ByNickname("inc", "1999")
	require.ErrorContains(t, err, "column nickname")
}

func TestSheetCellAtOutOfRange(t *testing.T) {
	s := newTestSheet()
	require.Equal(t, models.Cell{}, s.CellAt(5, 5))
}

func TestSkipView(t *testing.T) {
	s := newTestSheet()
	require.NoError(t, s.SetValue(1, 1, 7))

	v := s.Skip(1, 1)
	rows, cols := v.Shape()
	require.Equal(t, 1, rows)
	require.Equal(t, 2, cols)
	require.Equal(t, 7, v.CellAt(0, 0).Value)
	require.Same(t, s.Index(), v.Index())

	rows, cols = s.Skip(4, 9).Shape()
	require.Zero(t, rows)
	require.Zero(t, cols)

	r, c := s.Skip(-1, 2).Offset()
	require.Equal(t, 0, r)
	require.Equal(t, 2, c)
}

func TestNewGridIndexHelpText(t *testing.T) {
	idx := models.NewGridIndex(
		[]models.Label{{Text: "a"}, {Text: "b", Help: "bee"}},
		[]models.Label{{Text: "c"}},
		nil,
	)
	require.Equal(t, []string{"", "bee"}, idx.RowHelpText)
	require.Nil(t, idx.ColumnHelpText)
	require.Equal(t, []string{"a", "b"}, idx.RowNicknames)
}
