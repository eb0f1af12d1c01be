package export

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/grid"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

// newSheet builds a 3x2 sheet:
//
//	           Col A   Col B
//	Row 1      1       =A+... (computational, value 3)
//	Row 2      2       nil
//	Row 3      "x"     4.5
func newSheet(t *testing.T) *grid.Sheet {
	t.Helper()
	idx := models.NewGridIndex(
		[]models.Label{
			{Text: "Row 1", Nickname: "r1", Help: "first row"},
			{Text: "Row 2", Nickname: "r2", Help: "second row"},
			{Text: "Row 3", Nickname: "r3", Help: "third row"},
		},
		[]models.Label{
			{Text: "Col A", Nickname: "a"},
			{Text: "Col B", Nickname: "b"},
		},
		[]models.Dialect{models.DialectExcel, models.DialectNative},
	)
	s := grid.New(idx)
	require.NoError(t, s.SetValue(0, 0, 1))
	require.NoError(t, s.Set(0, 1, models.Cell{
		Value: 3,
		Type:  models.Computational,
		Parse: map[models.Dialect]string{
			models.DialectExcel:  "=A2+A3",
			models.DialectNative: "a+b",
		},
		Words: map[models.Dialect]string{
			models.DialectNative: "sum of a and b",
		},
	}))
	require.NoError(t, s.SetValue(1, 0, 2))
	require.NoError(t, s.Set(2, 0, models.Cell{Value: "x", Description: "a letter"}))
	require.NoError(t, s.SetValue(2, 1, 4.5))
	return s
}

// squareSheet builds a 2x2 sheet from the given values.
func squareSheet(t *testing.T, values [2][2]any) *grid.Sheet {
	t.Helper()
	idx := models.NewGridIndex(
		[]models.Label{{Text: "r0"}, {Text: "r1"}},
		[]models.Label{{Text: "c0"}, {Text: "c1"}},
		[]models.Dialect{models.DialectExcel},
	)
	s := grid.New(idx)
	for i, row := range values {
		for j, v := range row {
			require.NoError(t, s.SetValue(i, j, v))
		}
	}
	return s
}
