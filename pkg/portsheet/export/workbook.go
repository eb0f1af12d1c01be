package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
	"github.com/xuri/excelize/v2"
)

// VariablesHeader holds the header labels of the variables sheet.
type VariablesHeader struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Value       string `json:"value" yaml:"value" toml:"value"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// WorkbookOptions configures ToWorkbook and WriteWorkbook.
type WorkbookOptions struct {
	// SheetName is the name of the data sheet.
	SheetName string
	// SpacesReplacement replaces spaces in labels ("" or " " keeps them).
	SpacesReplacement string
	// RowLabelStyle styles the row labels in column A.
	RowLabelStyle models.StyleHints
	// ColumnLabelStyle styles the column labels in row 1 and the variables header.
	ColumnLabelStyle models.StyleHints
	// VariablesSheetName, when set, writes variables to their own sheet.
	// Otherwise they become workbook-level named constants.
	VariablesSheetName string
	// VariablesHeader labels the columns of the variables sheet.
	VariablesHeader VariablesHeader
	// Dialect is the formula dialect written into formula cells.
	Dialect models.Dialect
}

// DefaultWorkbookOptions returns fresh default workbook options.
func DefaultWorkbookOptions() WorkbookOptions {
	return WorkbookOptions{
		SheetName:         "Results",
		SpacesReplacement: " ",
		RowLabelStyle:     BoldStyle(),
		ColumnLabelStyle:  BoldStyle(),
		VariablesHeader: VariablesHeader{
			Name:        "Name",
			Value:       "Value",
			Description: "Description",
		},
		Dialect: models.DialectExcel,
	}
}

// ToWorkbook exports the grid to an .xlsx file at path.
// The path must end in ".xlsx" and the sheet name must not be empty; both are
// checked before anything is created.
//
// Formula cells carry their value as the cached result only when it is
// numeric; other values are left for the spreadsheet application to compute.
func ToWorkbook(g Grid, path string, cfg Config, opts WorkbookOptions) error {
	if len(path) < 5 || path[len(path)-5:] != ".xlsx" {
		return invalidArgument("path", "suffix of %q has to be .xlsx", path)
	}
	if err := opts.validate(); err != nil {
		return err
	}
	f, err := buildWorkbook(g, cfg, opts)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// WriteWorkbook exports the grid as .xlsx bytes to w.
func WriteWorkbook(g Grid, w io.Writer, cfg Config, opts WorkbookOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	f, err := buildWorkbook(g, cfg, opts)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func (o WorkbookOptions) validate() error {
	if o.SheetName == "" {
		return invalidArgument("sheet name", "has to be a non-empty string")
	}
	if o.VariablesSheetName == o.SheetName {
		return invalidArgument("variables sheet name", "%q is already the data sheet", o.SheetName)
	}
	return nil
}

// buildWorkbook fills a new workbook. The caller closes it.
func buildWorkbook(g Grid, cfg Config, opts WorkbookOptions) (_ *excelize.File, err error) {
	cfg.start(formatWorkbook)

	f := excelize.NewFile()
	defer func() {
		if err != nil {
			f.Close()
		}
	}()
	if err := f.SetSheetName(f.GetSheetName(0), opts.SheetName); err != nil {
		return nil, fmt.Errorf("sheet %q: %w", opts.SheetName, err)
	}
	colLabelStyle, err := f.NewStyle(styleFromHints(opts.ColumnLabelStyle))
	if err != nil {
		return nil, fmt.Errorf("column label style: %w", err)
	}
	rowLabelStyle, err := f.NewStyle(styleFromHints(opts.RowLabelStyle))
	if err != nil {
		return nil, fmt.Errorf("row label style: %w", err)
	}

	if err := writeVariables(f, g.Variables(), opts, colLabelStyle); err != nil {
		return nil, err
	}
	if err := writeCells(f, g, opts); err != nil {
		return nil, err
	}
	if g.Index().AppendLabels {
		plan := ResolveAxes(g, true, cfg.Offset)
		if err := writeLabels(f, plan, opts, rowLabelStyle, colLabelStyle); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeCells(f *excelize.File, g Grid, opts WorkbookOptions) error {
	shift := 0
	if g.Index().AppendLabels {
		shift = 1
	}
	dialect := opts.Dialect
	if dialect == "" {
		dialect = models.DialectExcel
	}
	rows, cols := g.Shape()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cell := g.CellAt(i, j)
			if cell.Value == nil {
				continue
			}
			name, err := excelize.CoordinatesToCellName(j+1+shift, i+1+shift)
			if err != nil {
				return err
			}
			formula, isFormula := cell.Formula(dialect)
			// A formula keeps the raw cell text as its cached value, which is only
			// meaningful for numbers; shared string indexes would leak through.
			_, numeric := NumericValue(cell.Value)
			if !isFormula || numeric {
				if err := f.SetCellValue(opts.SheetName, name, cell.Value); err != nil {
					return fmt.Errorf("cell %s: %w", name, err)
				}
			}
			if isFormula {
				if err := f.SetCellFormula(opts.SheetName, name, strings.TrimPrefix(formula, "=")); err != nil {
					return fmt.Errorf("cell %s: %w", name, err)
				}
			}
			if len(cell.Style) > 0 {
				style, err := f.NewStyle(styleFromHints(cell.Style))
				if err != nil {
					return fmt.Errorf("cell %s style: %w", name, err)
				}
				if err := f.SetCellStyle(opts.SheetName, name, name, style); err != nil {
					return fmt.Errorf("cell %s style: %w", name, err)
				}
			}
		}
	}
	return nil
}

func writeLabels(f *excelize.File, plan AxisPlan, opts WorkbookOptions, rowStyle, colStyle int) error {
	cols := plan.Columns()
	for j := 0; j < cols.Size; j++ {
		if err := writeStyled(f, opts.SheetName, j+2, 1, cols.Label(j, opts.SpacesReplacement), colStyle); err != nil {
			return err
		}
	}
	rows := plan.Rows()
	for i := 0; i < rows.Size; i++ {
		if err := writeStyled(f, opts.SheetName, 1, i+2, rows.Label(i, opts.SpacesReplacement), rowStyle); err != nil {
			return err
		}
	}
	return nil
}

func writeVariables(f *excelize.File, vars *models.VariableSet, opts WorkbookOptions, headerStyle int) error {
	if vars.Empty() {
		return nil
	}
	if opts.VariablesSheetName == "" {
		for _, v := range vars.All() {
			if err := f.SetDefinedName(&excelize.DefinedName{
				Name:     v.Name,
				RefersTo: constantFormula(v.Value),
			}); err != nil {
				return fmt.Errorf("variable %q: %w", v.Name, err)
			}
		}
		return nil
	}

	sheet := opts.VariablesSheetName
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("sheet %q: %w", sheet, err)
	}
	header := []string{opts.VariablesHeader.Name, opts.VariablesHeader.Value, opts.VariablesHeader.Description}
	for col, text := range header {
		if err := writeStyled(f, sheet, col+1, 1, text, headerStyle); err != nil {
			return err
		}
	}
	for i, v := range vars.All() {
		row := i + 2
		for col, value := range []any{v.Name, v.Value, v.Description} {
			name, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, name, value); err != nil {
				return fmt.Errorf("variable %q: %w", v.Name, err)
			}
		}
		if err := f.SetDefinedName(&excelize.DefinedName{
			Name:     v.Name,
			RefersTo: VariableReference(sheet, row),
		}); err != nil {
			return fmt.Errorf("variable %q: %w", v.Name, err)
		}
	}
	return nil
}

func writeStyled(f *excelize.File, sheet string, col, row int, value any, style int) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, name, value); err != nil {
		return fmt.Errorf("cell %s: %w", name, err)
	}
	return f.SetCellStyle(sheet, name, name, style)
}

// VariableReference returns the absolute reference to the value cell of a
// variables sheet row, e.g. Variables!$B$2. Sheet names with spaces are quoted.
func VariableReference(sheet string, row int) string {
	if strings.ContainsAny(sheet, " -'") {
		sheet = "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	}
	return sheet + "!$B$" + strconv.Itoa(row)
}

// constantFormula renders a variable value as a defined-name constant.
func constantFormula(v any) string {
	switch c := v.(type) {
	case nil:
		return `""`
	case string:
		return `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	case bool:
		return strings.ToUpper(strconv.FormatBool(c))
	}
	return formatScalar(v)
}
