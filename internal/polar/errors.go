package polar

import (
	"errors"
	"fmt"
)

// Domain errors for polar file parsing.
var (
	// ErrMissingMetadata indicates a header marker line was not found.
	// It is never returned from Parse; records carry it in Missing.
	ErrMissingMetadata = errors.New("polar: header metadata missing")

	// ErrMalformedHeader indicates a header marker line that cannot be decoded.
	ErrMalformedHeader = errors.New("polar: malformed header line")

	// ErrMalformedRow indicates a data line that is not seven numeric columns.
	ErrMalformedRow = errors.New("polar: malformed data row")

	// ErrEmptyTable indicates a file with no data rows after the header.
	ErrEmptyTable = errors.New("polar: no data rows")

	// ErrFileUnreadable indicates the file could not be opened or read.
	ErrFileUnreadable = errors.New("polar: file unreadable")

	// ErrInvalidFormat indicates an unusable Format configuration.
	ErrInvalidFormat = errors.New("polar: invalid format")
)

// ParseError wraps an error with the file and line it came from.
type ParseError struct {
	Path    string
	Line    int
	Wrapped error
}

func (e *ParseError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Wrapped)
	case e.Path != "":
		return fmt.Sprintf("%s: %v", e.Path, e.Wrapped)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %v", e.Line, e.Wrapped)
	}
	return e.Wrapped.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}
