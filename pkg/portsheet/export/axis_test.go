package export

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveAxesByRow(t *testing.T) {
	s := newSheet(t)

	plan := ResolveAxes(s, true, Offset{})
	require.Equal(t, KeyRows, plan.Primary.Key)
	require.Equal(t, KeyColumns, plan.Secondary.Key)
	require.Equal(t, 3, plan.Primary.Size)
	require.Equal(t, 2, plan.Secondary.Size)
	require.Equal(t, []string{"Row 1", "Row 2", "Row 3"}, plan.Primary.Labels)
	require.Nil(t, plan.Secondary.HelpText)

	plan = ResolveAxes(s, false, Offset{})
	require.Equal(t, KeyColumns, plan.Primary.Key)
	require.Equal(t, KeyRows, plan.Secondary.Key)
	require.Equal(t, 2, plan.Primary.Size)
	require.Equal(t, []string{"first row", "second row", "third row"}, plan.Secondary.HelpText)
}

func TestAxisPlanCellIsTranspose(t *testing.T) {
	s := newSheet(t)
	byRow := ResolveAxes(s, true, Offset{})
	byCol := ResolveAxes(s, false, Offset{})

	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, byRow.Cell(s, i, j), byCol.Cell(s, j, i))
		}
	}
}

func TestResolveAxesOffset(t *testing.T) {
	s := newSheet(t)
	view := s.Skip(1, 0)

	plan := ResolveAxes(view, true, Offset{Rows: 1})
	require.Equal(t, 2, plan.Rows().Size)
	require.Equal(t, []string{"Row 2", "Row 3"}, plan.Rows().Labels)
	require.Equal(t, []string{"second row", "third row"}, plan.Rows().HelpText)
	require.Equal(t, []string{"Col A", "Col B"}, plan.Columns().Labels)
	require.Equal(t, 2, plan.Cell(view, 0, 0).Value)
}

func TestResolveAxesOffsetPastEnd(t *testing.T) {
	s := newSheet(t)
	view := s.Skip(10, 10)

	plan := ResolveAxes(view, true, Offset{Rows: 10, Columns: 10})
	require.Zero(t, plan.Rows().Size)
	require.Zero(t, plan.Columns().Size)
	require.Empty(t, plan.Rows().Labels)
	require.Empty(t, plan.Rows().HelpText)
	require.Equal(t, "", plan.Rows().Label(0, " "))
}

func TestAxisLabelSpacesReplacement(t *testing.T) {
	a := Axis{Labels: []string{"Total income"}}
	tests := []struct {
		replacement string
		expected    string
	}{
		{" ", "Total income"},
		{"", "Total income"},
		{"_", "Total_income"},
		{"&nbsp;", "Total&nbsp;income"},
	}
	for _, tt := range tests {
		if got := a.Label(0, tt.replacement); got != tt.expected {
			t.Errorf("Label(0, %q) = %q, expected %q", tt.replacement, got, tt.expected)
		}
	}
}
