package polar

import (
	"fmt"
	"math"
)

// Row is one angle-of-attack point of a polar.
type Row struct {
	Alpha  float64 `json:"alpha"`
	CL     float64 `json:"cl"`
	CD     float64 `json:"cd"`
	CDp    float64 `json:"cdp"`
	CM     float64 `json:"cm"`
	TopXtr float64 `json:"top_xtr"`
	BotXtr float64 `json:"bot_xtr"`
}

// Ratio returns CL/CD without guarding against CD == 0.
func (r Row) Ratio() float64 {
	return r.CL / r.CD
}

// Record is one parsed polar file with its max CL/CD point.
// Fields are set by NewRecord and must not be modified afterwards.
type Record struct {
	Path     string
	Name     string
	Reynolds *float64
	Rows     []Row
	Ratios   []float64

	BestIndex int
	BestAlpha float64
	BestCL    float64
	BestCD    float64
	BestRatio float64

	// Missing lists header metadata that fell back to a default.
	Missing []error
}

// NewRecord computes the derived metrics for rows. Rows with a non-finite
// CL/CD (CD == 0) are skipped when choosing the best row; ties go to the
// earliest row.
func NewRecord(name string, reynolds *float64, rows []Row) (*Record, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	ratios := make([]float64, len(rows))
	best := -1
	for i, row := range rows {
		ratios[i] = row.Ratio()
		if math.IsNaN(ratios[i]) || math.IsInf(ratios[i], 0) {
			continue
		}
		if best < 0 || ratios[i] > ratios[best] {
			best = i
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("%w: no row has a finite CL/CD", ErrMalformedRow)
	}

	return &Record{
		Name:      name,
		Reynolds:  reynolds,
		Rows:      rows,
		Ratios:    ratios,
		BestIndex: best,
		BestAlpha: rows[best].Alpha,
		BestCL:    rows[best].CL,
		BestCD:    rows[best].CD,
		BestRatio: ratios[best],
	}, nil
}

// Column returns one coefficient across all rows, in file order.
func (r *Record) Column(pick func(Row) float64) []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = pick(row)
	}
	return out
}

func (r *Record) Alphas() []float64 { return r.Column(func(row Row) float64 { return row.Alpha }) }
func (r *Record) CLs() []float64    { return r.Column(func(row Row) float64 { return row.CL }) }
func (r *Record) CDs() []float64    { return r.Column(func(row Row) float64 { return row.CD }) }

// ReynoldsString formats Re to three significant digits, or "N/A".
func (r *Record) ReynoldsString() string {
	if r.Reynolds == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.3e", *r.Reynolds)
}
