package portsheet

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/ukaji3/portsheet-go/pkg/portsheet/export"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/grid"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/loader"
	"gopkg.in/yaml.v3"
)

// Render exports a sheet in opts.Format and returns the encoded bytes.
// cfg supplies the diagnostics sink and metrics; its offset is taken from opts.
func Render(sheet *grid.Sheet, opts Options, cfg export.Config) ([]byte, error) {
	view, cfg := restrict(sheet, opts, cfg)
	data, err := render(view, opts, cfg)
	if err != nil {
		return nil, NewExportError(opts.Format, err)
	}
	return data, nil
}

// WriteFile exports a sheet to a file. Workbooks are saved directly so the
// .xlsx suffix rule applies to path.
func WriteFile(sheet *grid.Sheet, path string, opts Options, cfg export.Config) error {
	if opts.Format == FormatXLSX {
		view, cfg := restrict(sheet, opts, cfg)
		if err := export.ToWorkbook(view, path, cfg, opts.Workbook); err != nil {
			return NewExportError(opts.Format, err)
		}
		return nil
	}
	data, err := Render(sheet, opts, cfg)
	if err != nil {
		return err
	}
	return writeBytes(path, data)
}

// ExportDefinition loads a definition file, applies its export settings under
// opts and exports it. An empty out renders to the returned bytes instead.
func ExportDefinition(defPath, out string, opts Options, override func(*Options), cfg export.Config) ([]byte, error) {
	def, err := loader.LoadFile(defPath)
	if err != nil {
		return nil, err
	}
	if err := opts.Apply(def.Export); err != nil {
		return nil, err
	}
	if override != nil {
		override(&opts)
	}
	sheet, err := def.Build()
	if err != nil {
		return nil, err
	}
	if out != "" {
		return nil, WriteFile(sheet, out, opts, cfg)
	}
	return Render(sheet, opts, cfg)
}

func restrict(sheet *grid.Sheet, opts Options, cfg export.Config) (*grid.View, export.Config) {
	cfg.Offset = opts.Offset
	cfg.ExportingSubset = cfg.ExportingSubset || opts.IsSubset()
	return sheet.Skip(opts.Offset.Rows, opts.Offset.Columns), cfg
}

func render(g export.Grid, opts Options, cfg export.Config) ([]byte, error) {
	switch opts.Format {
	case FormatXLSX:
		var buf bytes.Buffer
		if err := export.WriteWorkbook(g, &buf, cfg, opts.Workbook); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON, FormatYAML:
		docOpts := opts.Document
		docOpts.ByRow = opts.ShouldExportByRow()
		doc, err := export.ToDocument(g, cfg, docOpts)
		if err != nil {
			return nil, err
		}
		if opts.Format == FormatYAML {
			return yaml.Marshal(doc)
		}
		if opts.Pretty {
			return json.MarshalIndent(doc, "", "  ")
		}
		return json.Marshal(doc)
	case FormatCSV:
		return []byte(export.ToCSV(g, cfg, opts.CSV)), nil
	case FormatMarkdown:
		return []byte(export.ToMarkdown(g, cfg, opts.Markdown)), nil
	case FormatHTML:
		return []byte(export.ToHTMLTable(g, cfg, opts.HTML)), nil
	case FormatMatrix:
		return []byte(formatMatrix(export.ToMatrix(g, cfg))), nil
	case FormatList:
		return []byte(export.ToListLiteral(g, cfg)), nil
	}
	return nil, ErrUnknownFormat
}

// formatMatrix writes one line per row with space separated values.
func formatMatrix(m *export.Matrix) string {
	var b strings.Builder
	for _, row := range m.Slices() {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
