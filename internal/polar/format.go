package polar

import (
	"fmt"
	"strings"
)

const (
	DefaultHeaderLines    = 12
	DefaultNameMarker     = "Calculated polar for"
	DefaultReynoldsMarker = "Re ="

	// UnknownAirfoil is used when the header has no name line.
	UnknownAirfoil = "Unknown Airfoil"

	numColumns = 7
)

// DefaultColumns is the column order XFOIL writes with PACC.
var DefaultColumns = []string{"alpha", "CL", "CD", "CDp", "CM", "Top_Xtr", "Bot_Xtr"}

// Format describes the fixed layout of an XFOIL polar file.
type Format struct {
	HeaderLines    int      `yaml:"header_lines" toml:"header_lines"`
	Columns        []string `yaml:"columns" toml:"columns"`
	NameMarker     string   `yaml:"name_marker" toml:"name_marker"`
	ReynoldsMarker string   `yaml:"reynolds_marker" toml:"reynolds_marker"`
}

func DefaultFormat() Format {
	return Format{
		HeaderLines:    DefaultHeaderLines,
		Columns:        append([]string(nil), DefaultColumns...),
		NameMarker:     DefaultNameMarker,
		ReynoldsMarker: DefaultReynoldsMarker,
	}
}

// Validate reports whether the format can drive a Parser.
func (f Format) Validate() error {
	if f.HeaderLines < 0 {
		return fmt.Errorf("%w: header_lines %d is negative", ErrInvalidFormat, f.HeaderLines)
	}
	if len(f.Columns) != numColumns {
		return fmt.Errorf("%w: want %d columns, got %d", ErrInvalidFormat, numColumns, len(f.Columns))
	}
	for i, c := range f.Columns {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: column %d has no name", ErrInvalidFormat, i+1)
		}
	}
	if f.NameMarker == "" || f.ReynoldsMarker == "" {
		return fmt.Errorf("%w: markers must not be empty", ErrInvalidFormat)
	}
	return nil
}
