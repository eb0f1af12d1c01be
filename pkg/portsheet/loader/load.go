package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/grid"
	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
	"gopkg.in/yaml.v3"
)

// ErrFileNotFound indicates the definition file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the definition file extension is not recognised.
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// DefaultDialects are used when a definition lists none.
var DefaultDialects = []models.Dialect{models.DialectExcel, models.DialectNative}

// LoadFile reads a definition from a .yaml, .yml, .toml or .json file.
func LoadFile(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read definition %q: %w", path, err)
	}
	def, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition %q: %w", path, err)
	}
	return def, nil
}

// Parse decodes a definition. ext selects the syntax (".yaml", ".yml", ".toml", ".json").
func Parse(data []byte, ext string) (*Definition, error) {
	var def Definition
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &def); err != nil {
			return nil, err
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&def); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return &def, nil
}

// Build creates the sheet a definition describes.
func (d *Definition) Build() (*grid.Sheet, error) {
	dialects := DefaultDialects
	if len(d.Dialects) > 0 {
		dialects = make([]models.Dialect, len(d.Dialects))
		for i, name := range d.Dialects {
			dialects[i] = models.Dialect(name)
		}
	}
	idx := models.NewGridIndex(d.Rows, d.Columns, dialects)
	idx.AppendLabels = d.AppendLabels
	if err := checkUnique("row", idx.RowNicknames); err != nil {
		return nil, err
	}
	if err := checkUnique("column", idx.ColumnNicknames); err != nil {
		return nil, err
	}

	sheet := grid.New(idx)
	for i, row := range d.Values {
		for j, v := range row {
			if err := sheet.SetValue(i, j, normalizeScalar(v)); err != nil {
				return nil, fmt.Errorf("values: %w", err)
			}
		}
	}
	for n, c := range d.Cells {
		if err := c.apply(sheet); err != nil {
			return nil, fmt.Errorf("cells[%d]: %w", n, err)
		}
	}
	for _, v := range d.Variables {
		if v.Name == "" {
			return nil, errors.New("variables: name is required")
		}
		sheet.Variables().Set(v.Name, normalizeScalar(v.Value), v.Description)
	}
	return sheet, nil
}

func (c CellDefinition) apply(sheet *grid.Sheet) error {
	cell := models.Cell{
		Value:       normalizeScalar(c.Value),
		Description: c.Description,
	}
	if len(c.Formula) > 0 {
		cell.Type = models.Computational
		cell.Parse = dialectMap(c.Formula)
		cell.Words = dialectMap(c.Words)
	}
	if len(c.Style) > 0 {
		cell.Style = models.StyleHints(c.Style)
	}
	switch {
	case c.Row != nil && c.Column != nil:
		return sheet.Set(*c.Row, *c.Column, cell)
	case c.RowName != "" && c.ColumnName != "":
		return sheet.SetByNickname(c.RowName, c.ColumnName, cell)
	}
	return errors.New("either row and column or row_name and column_name are required")
}

func dialectMap(m map[string]string) map[models.Dialect]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[models.Dialect]string, len(m))
	for k, v := range m {
		out[models.Dialect(k)] = v
	}
	return out
}

func checkUnique(axis string, nicknames []string) error {
	seen := make(map[string]bool, len(nicknames))
	for _, n := range nicknames {
		if seen[n] {
			return fmt.Errorf("duplicate %s nickname %q", axis, n)
		}
		seen[n] = true
	}
	return nil
}

// normalizeScalar maps decoder-specific number types onto int64 and float64.
func normalizeScalar(v any) any {
	switch n := v.(type) {
	case json.Number:
		return parseValue(n.String())
	case int:
		return int64(n)
	}
	return v
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
