package portsheet

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/loader"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	require.Equal(t, FormatJSON, opts.Format)
	require.True(t, opts.ShouldExportByRow())
	require.False(t, opts.IsSubset())
	require.Equal(t, "Results", opts.Workbook.SheetName)
	require.Equal(t, ",", opts.CSV.Separator)
}

func TestApplySettings(t *testing.T) {
	byRow := false
	opts := DefaultOptions()
	err := opts.Apply(loader.Settings{
		Format:             "html",
		ByRow:              &byRow,
		SkipRows:           2,
		SheetName:          "Data",
		VariablesSheetName: "Vars",
		VariablesHeader:    map[string]string{"value": "Amount"},
		SpacesReplacement:  "_",
		CornerText:         "Corner",
		Separator:          "\t",
		Dialects:           []string{"native"},
		DescriptionDialect: "native",
	})
	require.NoError(t, err)
	require.Equal(t, FormatHTML, opts.Format)
	require.False(t, opts.ShouldExportByRow())
	require.True(t, opts.IsSubset())
	require.Equal(t, 2, opts.Offset.Rows)
	require.Equal(t, "Data", opts.Workbook.SheetName)
	require.Equal(t, "Vars", opts.Workbook.VariablesSheetName)
	require.Equal(t, "Amount", opts.Workbook.VariablesHeader.Value)
	require.Equal(t, "Name", opts.Workbook.VariablesHeader.Name)
	require.Equal(t, "_", opts.HTML.SpacesReplacement)
	require.Equal(t, "_", opts.Document.SpacesReplacement)
	require.Equal(t, "Corner", opts.Markdown.CornerText)
	require.Equal(t, "\t", opts.CSV.Separator)
	require.Equal(t, []models.Dialect{models.DialectNative}, opts.Document.Dialects)
	require.Equal(t, models.DialectNative, opts.HTML.DescriptionDialect)

	err = opts.Apply(loader.Settings{Format: "docx"})
	require.ErrorIs(t, err, ErrUnknownFormat)
}
