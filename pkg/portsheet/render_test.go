package portsheet

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/export"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/grid"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/loader"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

const definition = `
rows:
  - label: a
  - label: b
columns:
  - label: x
  - label: y
append_labels: true
values:
  - [1, 2]
  - [3, "n/a"]
variables:
  - name: rate
    value: 0.5
`

func buildSheet(t *testing.T) *grid.Sheet {
	t.Helper()
	def, err := loader.Parse([]byte(definition), ".yaml")
	require.NoError(t, err)
	sheet, err := def.Build()
	require.NoError(t, err)
	return sheet
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	got, err := ParseFormat("md")
	require.NoError(t, err)
	require.Equal(t, FormatMarkdown, got)

	_, err = ParseFormat("pdf")
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderText(t *testing.T) {
	sheet := buildSheet(t)
	opts := DefaultOptions()

	opts.Format = FormatCSV
	data, err := Render(sheet, opts, export.Config{})
	require.NoError(t, err)
	require.Equal(t, "Sheet,x,y\na,1,2\nb,3,n/a", string(data))

	opts.Format = FormatMatrix
	var notices []string
	data, err = Render(sheet, opts, export.Config{Warn: export.Collect(&notices)})
	require.NoError(t, err)
	require.Equal(t, "1 2\n3 NaN\n", string(data))
	require.Equal(t, []string{export.MessageCoercion}, notices)

	opts.Format = FormatList
	data, err = Render(sheet, opts, export.Config{})
	require.NoError(t, err)
	require.Equal(t, "[[1, 2],\n[3, n/a]]", string(data))
}

func TestRenderDocument(t *testing.T) {
	sheet := buildSheet(t)
	opts := DefaultOptions()
	byRow := false
	opts.ByRow = &byRow

	data, err := Render(sheet, opts, export.Config{})
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Contains(t, doc, "variables")
	columns, ok := doc["columns"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, columns, "x")

	opts.Format = FormatYAML
	data, err = Render(sheet, opts, export.Config{})
	require.NoError(t, err)
	var node map[string]any
	require.NoError(t, yaml.Unmarshal(data, &node))
	columns, ok = node["columns"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, columns, "y")
}

func TestRenderJSONWithNaN(t *testing.T) {
	def, err := loader.Parse([]byte("rows: [{label: r}]\ncolumns: [{label: c}]\nvalues: [[.nan]]\n"), ".yaml")
	require.NoError(t, err)
	sheet, err := def.Build()
	require.NoError(t, err)

	opts := DefaultOptions()
	data, err := Render(sheet, opts, export.Config{})
	require.NoError(t, err)
	require.Contains(t, string(data), `"value":null`)

	opts.Format = FormatCSV
	data, err = Render(sheet, opts, export.Config{})
	require.NoError(t, err)
	require.Equal(t, "Sheet,c\nr,NaN", string(data))
}

func TestRenderNegativeOffsetIsNotSubset(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatCSV
	opts.Offset = export.Offset{Rows: -1, Columns: -2}
	require.False(t, opts.IsSubset())

	var notices []string
	data, err := Render(buildSheet(t), opts, export.Config{Warn: export.Collect(&notices)})
	require.NoError(t, err)
	require.Equal(t, "Sheet,x,y\na,1,2\nb,3,n/a", string(data))
	require.Empty(t, notices)
}

func TestRenderSubset(t *testing.T) {
	sheet := buildSheet(t)
	opts := DefaultOptions()
	opts.Format = FormatCSV
	opts.Offset = export.Offset{Rows: 1}

	var notices []string
	data, err := Render(sheet, opts, export.Config{Warn: export.Collect(&notices)})
	require.NoError(t, err)
	require.Equal(t, "Sheet,x,y\nb,3,n/a", string(data))
	require.Equal(t, []string{export.MessageSubset}, notices)
}

func TestRenderUnknownFormat(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = "pdf"
	_, err := Render(buildSheet(t), opts, export.Config{})

	var exportErr *ExportError
	require.True(t, errors.As(err, &exportErr))
	require.Equal(t, Format("pdf"), exportErr.Format)
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRenderWorkbookError(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatXLSX
	opts.Workbook.SheetName = ""
	_, err := Render(buildSheet(t), opts, export.Config{})
	require.ErrorIs(t, err, export.ErrInvalidArgument)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	sheet := buildSheet(t)
	opts := DefaultOptions()
	opts.Format = FormatXLSX

	err := WriteFile(sheet, filepath.Join(dir, "out.xls"), opts, export.Config{})
	require.ErrorIs(t, err, export.ErrInvalidArgument)

	path := filepath.Join(dir, "out.xlsx")
	require.NoError(t, WriteFile(sheet, path, opts, export.Config{}))
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	v, err := f.GetCellValue("Results", "B2")
	require.NoError(t, err)
	require.Equal(t, "1", v)

	opts.Format = FormatMarkdown
	md := filepath.Join(dir, "out.md")
	require.NoError(t, WriteFile(sheet, md, opts, export.Config{}))
	data, err := os.ReadFile(md)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "| Sheet |*x* | *y* |\n"))
}

func TestExportDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sheet.yaml")
	content := definition + "export:\n  format: csv\n  separator: \";\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	data, err := ExportDefinition(path, "", DefaultOptions(), nil, export.Config{})
	require.NoError(t, err)
	require.Equal(t, "Sheet;x;y\na;1;2\nb;3;n/a", string(data))

	data, err = ExportDefinition(path, "", DefaultOptions(), func(o *Options) {
		o.Format = FormatList
	}, export.Config{})
	require.NoError(t, err)
	require.Equal(t, "[[1, 2],\n[3, n/a]]", string(data))

	_, err = ExportDefinition(filepath.Join(dir, "missing.yaml"), "", DefaultOptions(), nil, export.Config{})
	require.ErrorIs(t, err, loader.ErrFileNotFound)
}
