package export

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/portsheet-go/pkg/portsheet/models"
	"github.com/xuri/excelize/v2"
)

// BoldStyle is the default label style.
func BoldStyle() models.StyleHints {
	return models.StyleHints{"bold": true}
}

// styleFromHints translates a flat style dictionary into an excelize style.
// Recognised keys: bold, italic, underline, strikeout, font_name, font_size,
// font_color, bg_color, num_format, align, valign, text_wrap, rotation, border,
// border_color. Other keys are ignored.
func styleFromHints(h models.StyleHints) *excelize.Style {
	s := &excelize.Style{}
	font := &excelize.Font{}
	align := &excelize.Alignment{}
	hasFont, hasAlign := false, false

	for key, v := range h {
		switch key {
		case "bold":
			font.Bold, hasFont = hintBool(v), true
		case "italic":
			font.Italic, hasFont = hintBool(v), true
		case "underline":
			if u, ok := v.(string); ok {
				font.Underline = u
			} else if hintBool(v) {
				font.Underline = "single"
			}
			hasFont = true
		case "strikeout":
			font.Strike, hasFont = hintBool(v), true
		case "font_name":
			font.Family, hasFont = hintString(v), true
		case "font_size":
			font.Size, hasFont = hintFloat(v), true
		case "font_color":
			font.Color, hasFont = hintString(v), true
		case "bg_color":
			s.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hintString(v)}}
		case "num_format":
			if code, ok := v.(string); ok {
				s.CustomNumFmt = &code
			} else {
				s.NumFmt = int(hintFloat(v))
			}
		case "align":
			align.Horizontal, hasAlign = hintString(v), true
		case "valign":
			align.Vertical, hasAlign = verticalAlignment(hintString(v)), true
		case "text_wrap":
			align.WrapText, hasAlign = hintBool(v), true
		case "rotation":
			align.TextRotation, hasAlign = int(hintFloat(v)), true
		case "border":
			style := int(hintFloat(v))
			color := hintString(h["border_color"])
			for _, side := range []string{"left", "top", "right", "bottom"} {
				s.Border = append(s.Border, excelize.Border{Type: side, Color: color, Style: style})
			}
		}
	}
	if hasFont {
		s.Font = font
	}
	if hasAlign {
		s.Alignment = align
	}
	return s
}

func verticalAlignment(v string) string {
	if v == "vcenter" {
		return "center"
	}
	return v
}

func hintBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, _ := strconv.ParseBool(b)
		return parsed
	}
	f, ok := NumericValue(v)
	return ok && f != 0
}

func hintFloat(v any) float64 {
	if s, ok := v.(string); ok {
		f, _ := strconv.ParseFloat(s, 64)
		return f
	}
	f, ok := NumericValue(v)
	if !ok {
		return 0
	}
	return f
}

func hintString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
