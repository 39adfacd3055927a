package polar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// minReynoldsTokens is the token count "Re =" needs: mantissa, "e", exponent.
const minReynoldsTokens = 3

// Parser reads XFOIL polar files laid out according to a Format.
type Parser struct {
	format Format
}

func NewParser(format Format) (*Parser, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	return &Parser{format: format}, nil
}

func (p *Parser) Format() Format {
	return p.format
}

// ParseFile reads the whole file at path and parses it.
func (p *Parser) ParseFile(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Wrapped: fmt.Errorf("%w: %v", ErrFileUnreadable, err)}
	}
	defer f.Close()

	rec, err := p.Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, err
		}
		return nil, &ParseError{Path: path, Wrapped: err}
	}
	rec.Path = path
	return rec, nil
}

// Parse reads a polar from r. Missing name or Reynolds lines are not errors;
// they are listed in Record.Missing.
func (p *Parser) Parse(r io.Reader) (*Record, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileUnreadable, err)
	}

	headerEnd := min(p.format.HeaderLines, len(lines))
	header := lines[:headerEnd]

	var missing []error
	name, ok := p.extractName(header)
	if !ok {
		missing = append(missing, fmt.Errorf("%w: no %q line", ErrMissingMetadata, p.format.NameMarker))
	}

	reynolds, lineNo, err := p.extractReynolds(header)
	if err != nil {
		return nil, &ParseError{Line: lineNo, Wrapped: err}
	}
	if reynolds == nil {
		missing = append(missing, fmt.Errorf("%w: no %q line", ErrMissingMetadata, p.format.ReynoldsMarker))
	}

	rows := make([]Row, 0, len(lines)-headerEnd)
	for i := headerEnd; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		row, err := p.parseRow(fields)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Wrapped: err}
		}
		rows = append(rows, row)
	}

	rec, err := NewRecord(name, reynolds, rows)
	if err != nil {
		return nil, err
	}
	rec.Missing = missing
	return rec, nil
}

// extractName returns the text after the last colon of the name line.
func (p *Parser) extractName(header []string) (string, bool) {
	for _, line := range header {
		if !strings.Contains(line, p.format.NameMarker) {
			continue
		}
		idx := strings.LastIndex(line, ":")
		return strings.TrimSpace(line[idx+1:]), true
	}
	return UnknownAirfoil, false
}

// extractReynolds finds the Reynolds line and rebuilds the number XFOIL splits
// across columns, e.g. "1.000 e 6" -> 1.000E6. It returns nil when no line
// carries the marker, and the 1-based line number alongside any error.
func (p *Parser) extractReynolds(header []string) (*float64, int, error) {
	for i, line := range header {
		idx := strings.Index(line, p.format.ReynoldsMarker)
		if idx < 0 {
			continue
		}
		v, err := ParseReynolds(line[idx+len(p.format.ReynoldsMarker):])
		if err != nil {
			return nil, i + 1, err
		}
		return &v, i + 1, nil
	}
	return nil, 0, nil
}

// ParseReynolds decodes the text following "Re =". It needs at least three
// whitespace-separated tokens; the first is the mantissa and the third the
// exponent.
func ParseReynolds(s string) (float64, error) {
	tokens := strings.Fields(s)
	if len(tokens) < minReynoldsTokens {
		return 0, fmt.Errorf("%w: reynolds needs %d tokens, got %d", ErrMalformedHeader, minReynoldsTokens, len(tokens))
	}
	v, err := strconv.ParseFloat(tokens[0]+"E"+tokens[2], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: reynolds %q: %v", ErrMalformedHeader, tokens[0]+"E"+tokens[2], err)
	}
	return v, nil
}

func (p *Parser) parseRow(fields []string) (Row, error) {
	if len(fields) != numColumns {
		return Row{}, fmt.Errorf("%w: want %d columns, got %d", ErrMalformedRow, numColumns, len(fields))
	}
	var vals [numColumns]float64
	for j, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Row{}, fmt.Errorf("%w: column %s: %q is not a number", ErrMalformedRow, p.format.Columns[j], f)
		}
		vals[j] = v
	}
	return Row{
		Alpha:  vals[0],
		CL:     vals[1],
		CD:     vals[2],
		CDp:    vals[3],
		CM:     vals[4],
		TopXtr: vals[5],
		BotXtr: vals[6],
	}, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
