package polar

import (
	"errors"
	"math"
	"testing"
)

func rows(points ...[3]float64) []Row {
	out := make([]Row, len(points))
	for i, p := range points {
		out[i] = Row{Alpha: p[0], CL: p[1], CD: p[2]}
	}
	return out
}

func TestNewRecord_UniqueMax(t *testing.T) {
	rec, err := NewRecord("A", nil, rows(
		[3]float64{0, 0.2, 0.01},
		[3]float64{1, 0.5, 0.01},
		[3]float64{2, 0.6, 0.02},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.BestIndex != 1 || rec.BestAlpha != 1 {
		t.Errorf("expected best at alpha 1, got index %d alpha %v", rec.BestIndex, rec.BestAlpha)
	}
	if rec.BestRatio != 0.5/0.01 {
		t.Errorf("expected ratio %v, got %v", 0.5/0.01, rec.BestRatio)
	}
}

func TestNewRecord_TieGoesToFirst(t *testing.T) {
	rec, err := NewRecord("A", nil, rows(
		[3]float64{0, 0.1, 0.01},
		[3]float64{1, 0.4, 0.02},
		[3]float64{2, 0.2, 0.01},
		[3]float64{3, 0.3, 0.02},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.BestIndex != 1 {
		t.Errorf("expected earliest maximum at index 1, got %d", rec.BestIndex)
	}
}

func TestNewRecord_ZeroDrag(t *testing.T) {
	rec, err := NewRecord("A", nil, rows(
		[3]float64{0, 0.3, 0},
		[3]float64{1, 0.5, 0.01},
		[3]float64{2, 0, 0},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsInf(rec.Ratios[0], 1) {
		t.Errorf("expected +Inf ratio for zero drag, got %v", rec.Ratios[0])
	}
	if !math.IsNaN(rec.Ratios[2]) {
		t.Errorf("expected NaN ratio for 0/0, got %v", rec.Ratios[2])
	}
	if rec.BestIndex != 1 {
		t.Errorf("zero-drag rows must not win, got index %d", rec.BestIndex)
	}
}

func TestNewRecord_AllZeroDrag(t *testing.T) {
	_, err := NewRecord("A", nil, rows([3]float64{0, 0.3, 0}, [3]float64{1, 0.5, 0}))
	if !errors.Is(err, ErrMalformedRow) {
		t.Errorf("expected ErrMalformedRow, got %v", err)
	}
}

func TestNewRecord_Empty(t *testing.T) {
	if _, err := NewRecord("A", nil, nil); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable, got %v", err)
	}
}

func TestRecord_Columns(t *testing.T) {
	rec, err := NewRecord("A", nil, rows([3]float64{0, 0.2, 0.01}, [3]float64{1, 0.5, 0.02}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	alphas, cls, cds := rec.Alphas(), rec.CLs(), rec.CDs()
	if alphas[1] != 1 || cls[1] != 0.5 || cds[1] != 0.02 {
		t.Errorf("columns wrong: %v %v %v", alphas, cls, cds)
	}
}

func TestRecord_ReynoldsString(t *testing.T) {
	re := 1.234e6
	rec := &Record{Reynolds: &re}
	if got := rec.ReynoldsString(); got != "1.234e+06" {
		t.Errorf("expected 1.234e+06, got %s", got)
	}
}

func TestReynoldsNumber(t *testing.T) {
	tests := []struct {
		v, c, nu float64
		expected float64
	}{
		{10, 1, KinematicViscosityAir, 10 / KinematicViscosityAir},
		{10, 1, 0, 10 / KinematicViscosityAir},
		{20, 0.5, 1e-5, 1e6},
	}

	for _, tt := range tests {
		if got := ReynoldsNumber(tt.v, tt.c, tt.nu); math.Abs(got-tt.expected) > 1e-6 {
			t.Errorf("ReynoldsNumber(%v, %v, %v) = %v, want %v", tt.v, tt.c, tt.nu, got, tt.expected)
		}
	}
}
