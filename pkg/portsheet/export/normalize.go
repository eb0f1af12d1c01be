package export

import (
	"fmt"
	"math"
	"strconv"
)

// Format names, used for metrics and error messages.
const (
	formatWorkbook = "xlsx"
	formatDocument = "document"
	formatCSV      = "csv"
	formatMarkdown = "markdown"
	formatHTML     = "html"
	formatMatrix   = "matrix"
	formatRows     = "rows"
	formatList     = "list"
)

// TextValue renders a value for the text targets. nil becomes placeholder.
func TextValue(v any, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return formatScalar(v)
}

// DocumentValue applies the document null rules.
// keep is false when the cell must be left out of the document.
func DocumentValue(v any, skipNaN bool, replacement any) (out any, keep bool) {
	if v != nil {
		return v, true
	}
	if skipNaN {
		return nil, false
	}
	return replacement, true
}

// NumericValue converts a value for the matrix target.
// ok is false when the value was substituted with NaN.
func NumericValue(v any) (f float64, ok bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return math.NaN(), false
}

// formatScalar is the native stringification used by every text target.
func formatScalar(v any) string {
	switch s := v.(type) {
	case nil:
		return "nil"
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'g', -1, 32)
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}
