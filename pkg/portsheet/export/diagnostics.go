package export

import "github.com/charmbracelet/log"

// Sink receives non-fatal diagnostics raised while exporting.
type Sink func(message string)

// Diagnostic messages.
const (
	MessageSubset   = "exporting a subset of the sheet, some data may be lost"
	MessageCoercion = "some values in the sheet are not numbers, NaN is set instead"
)

// Notice kinds used as metric labels.
const (
	noticeSubset   = "subset"
	noticeCoercion = "coercion"
)

// LogSink forwards diagnostics to a logger at warn level.
func LogSink(l *log.Logger) Sink {
	if l == nil {
		l = log.Default()
	}
	return func(message string) {
		l.Warn(message, "component", "export")
	}
}

// Collect returns a sink that appends every message to dst.
func Collect(dst *[]string) Sink {
	return func(message string) {
		*dst = append(*dst, message)
	}
}
