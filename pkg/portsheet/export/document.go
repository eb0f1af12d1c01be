package export

import (
	"slices"

	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
)

// Document keys.
const (
	KeyValue        = "value"
	KeyDescription  = "description"
	KeyHelpText     = "help_text"
	KeyVariables    = "variables"
	KeyRowLabels    = "row-labels"
	KeyColumnLabels = "column-labels"
)

// DocumentOptions configures ToDocument.
type DocumentOptions struct {
	// Dialects selects the formula dialects to export. nil exports every dialect of the index.
	Dialects []models.Dialect
	// Pseudonyms renames the dialects in the output; must match Dialects in length.
	Pseudonyms []string
	// ByRow makes rows the outer key. Otherwise columns are.
	ByRow bool
	// SpacesReplacement replaces spaces in labels ("" or " " keeps them).
	SpacesReplacement string
	// SkipNaNCell leaves out cells without a value.
	SkipNaNCell bool
	// NaNReplacement is used as the value of cells without a value.
	NaNReplacement any
}

// DefaultDocumentOptions returns the default document options.
func DefaultDocumentOptions() DocumentOptions {
	return DocumentOptions{
		ByRow:             true,
		SpacesReplacement: " ",
	}
}

// ToDocument exports the grid to a nested ordered map that marshals to JSON or YAML.
//
// Layout:
//
//	{<primary key>: {<primary label>: {<secondary key>: {<secondary label>: record}, "help_text"?}},
//	 "variables": {...}, "row-labels": [...], "column-labels": [...]}
//
// A record holds one entry per dialect (or pseudonym), then "value", "description"
// and the optional "help_text" of the secondary axis.
func ToDocument(g Grid, cfg Config, opts DocumentOptions) (*Map, error) {
	dialects := opts.Dialects
	if dialects == nil {
		dialects = g.Index().Dialects
	}
	if opts.Pseudonyms != nil && len(opts.Pseudonyms) != len(dialects) {
		return nil, invalidArgument("pseudonyms",
			"got %d pseudonyms for %d dialects", len(opts.Pseudonyms), len(dialects))
	}
	for _, d := range dialects {
		if !slices.Contains(g.Index().Dialects, d) {
			return nil, invalidArgument("dialects", "sheet does not support dialect %q", d)
		}
	}
	names, err := recordKeys(dialects, opts.Pseudonyms)
	if err != nil {
		return nil, err
	}

	cfg.start(formatDocument)

	plan := ResolveAxes(g, opts.ByRow, cfg.Offset)
	primaryLabels := labelsOf(plan.Primary, opts.SpacesReplacement)
	secondaryLabels := labelsOf(plan.Secondary, opts.SpacesReplacement)

	outer := NewMap()
	for i := 0; i < plan.Primary.Size; i++ {
		inner := NewMap()
		for j := 0; j < plan.Secondary.Size; j++ {
			cell := plan.Cell(g, i, j)
			value, keep := DocumentValue(cell.Value, opts.SkipNaNCell, opts.NaNReplacement)
			if !keep {
				continue
			}
			record := NewMap()
			for k, d := range dialects {
				record.Set(names[k], dialectText(cell, d))
			}
			record.Set(KeyValue, value)
			record.Set(KeyDescription, optionalString(cell.Description))
			if help, ok := plan.Secondary.Help(j); ok {
				record.Set(KeyHelpText, help)
			}
			inner.Set(labelAt(secondaryLabels, j), record)
		}
		entry := NewMap()
		entry.Set(plan.Secondary.Key, inner)
		if help, ok := plan.Primary.Help(i); ok {
			entry.Set(KeyHelpText, help)
		}
		outer.Set(labelAt(primaryLabels, i), entry)
	}

	doc := NewMap()
	doc.Set(plan.Primary.Key, outer)
	doc.Set(KeyVariables, variablesMap(g.Variables()))
	if plan.ByRow {
		doc.Set(KeyRowLabels, primaryLabels)
		doc.Set(KeyColumnLabels, secondaryLabels)
	} else {
		doc.Set(KeyRowLabels, secondaryLabels)
		doc.Set(KeyColumnLabels, primaryLabels)
	}
	return doc, nil
}

// recordKeys names the dialect entries of a record. Names must be unique and
// must not collide with the value, description or help text keys.
func recordKeys(dialects []models.Dialect, pseudonyms []string) ([]string, error) {
	argument := "dialects"
	if pseudonyms != nil {
		argument = "pseudonyms"
	}
	names := make([]string, len(dialects))
	seen := make(map[string]bool, len(dialects))
	for i, d := range dialects {
		name := string(d)
		if pseudonyms != nil {
			name = pseudonyms[i]
		}
		switch {
		case name == KeyValue || name == KeyDescription || name == KeyHelpText:
			return nil, invalidArgument(argument, "%q is a reserved record key", name)
		case seen[name]:
			return nil, invalidArgument(argument, "%q is used twice", name)
		}
		seen[name] = true
		names[i] = name
	}
	return names, nil
}

// dialectText is the formula text of a computational cell, or the rendered
// value of a value-only cell.
func dialectText(cell models.Cell, d models.Dialect) string {
	if text, ok := cell.Formula(d); ok {
		return text
	}
	if cell.IsComputational() {
		return ""
	}
	return TextValue(cell.Value, "")
}

func labelsOf(a Axis, spaces string) []string {
	out := make([]string, len(a.Labels))
	for i := range a.Labels {
		out[i] = a.Label(i, spaces)
	}
	return out
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

func optionalString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func variablesMap(vars *models.VariableSet) *Map {
	out := NewMap()
	for _, v := range vars.All() {
		entry := NewMap()
		entry.Set(KeyValue, v.Value)
		entry.Set(KeyDescription, v.Description)
		out.Set(v.Name, entry)
	}
	return out
}
