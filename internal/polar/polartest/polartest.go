// Package polartest builds XFOIL polar files for tests.
package polartest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TB is the part of testing.TB that Write needs; GinkgoT satisfies it too.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// Polar describes the content of a synthetic polar file. An empty Name or
// Reynolds drops that header line; the header is always twelve lines.
type Polar struct {
	Name     string
	Reynolds string
	Rows     [][]float64
	// Raw lines are appended after Rows verbatim.
	Raw []string
}

// Content renders p in the layout XFOIL writes with PACC.
func (p Polar) Content() string {
	nameLine := ""
	if p.Name != "" {
		nameLine = " Calculated polar for: " + p.Name
	}
	reLine := " Mach =   0.000     Ncrit =   9.000"
	if p.Reynolds != "" {
		reLine = " Mach =   0.000     Re =     " + p.Reynolds + "     Ncrit =   9.000"
	}

	header := []string{
		"",
		"       XFOIL         Version 6.99",
		"",
		nameLine,
		"",
		" 1 1 Reynolds number fixed          Mach number fixed",
		"",
		" xtrf =   1.000 (top)        1.000 (bottom)",
		reLine,
		"",
		"   alpha    CL        CD       CDp       CM     Top_Xtr  Bot_Xtr",
		"  ------ -------- --------- --------- -------- -------- --------",
	}

	var b strings.Builder
	for _, line := range header {
		b.WriteString(line + "\n")
	}
	for _, row := range p.Rows {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = fmt.Sprintf("%9.4f", v)
		}
		b.WriteString(strings.Join(fields, " ") + "\n")
	}
	for _, line := range p.Raw {
		b.WriteString(line + "\n")
	}
	return b.String()
}

// Write stores p as dir/name and returns the path.
func Write(t TB, dir, name string, p Polar) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(p.Content()), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Row builds a seven-column row with fixed CDp, CM and transition values.
func Row(alpha, cl, cd float64) []float64 {
	return []float64{alpha, cl, cd, cd / 2, -0.05, 0.6, 1.0}
}

// NACA2412 is a three-row polar with its best CL/CD at alpha 4.
var NACA2412 = Polar{
	Name:     "NACA 2412",
	Reynolds: "1.000 e 6",
	Rows: [][]float64{
		Row(0, 0.25, 0.006),
		Row(2, 0.48, 0.007),
		Row(4, 0.70, 0.009),
	},
}
