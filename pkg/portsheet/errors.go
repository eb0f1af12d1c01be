package portsheet

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat indicates the requested output format is not supported.
var ErrUnknownFormat = errors.New("unknown format")

// ExportError represents an error while exporting to a format.
type ExportError struct {
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export to %s: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(format Format, err error) *ExportError {
	return &ExportError{
		Format: format,
		Err:    err,
	}
}
