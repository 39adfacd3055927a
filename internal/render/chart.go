package render

import (
	"bytes"
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/zakriahayder/airfoil-selection-tool/internal/report"
)

var panelColors = map[string]drawing.Color{
	"blue":  chart.ColorBlue,
	"green": chart.ColorGreen,
	"red":   chart.ColorRed,
}

// referenceStyle is the dashed grey used for the marker lines.
func referenceStyle() chart.Style {
	return chart.Style{
		StrokeColor:     chart.ColorAlternateGray,
		StrokeWidth:     1,
		StrokeDashArray: []float64{5, 5},
	}
}

// PanelPNG draws one panel as a PNG of the given pixel size: the curve, a
// vertical and a horizontal reference line through the marker, and the
// marker label.
func PanelPNG(p report.Panel, width, height int) ([]byte, error) {
	xs, ys := finitePoints(p.X, p.Y)
	if len(xs) == 0 {
		return nil, fmt.Errorf("panel %q has no finite points", p.Title)
	}

	xr := paddedRange(xs, p.MarkX)
	yr := paddedRange(ys, p.MarkY)

	color, ok := panelColors[p.Color]
	if !ok {
		color = chart.ColorBlack
	}

	curve := chart.ContinuousSeries{
		Name:    p.YLabel,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeColor: color, StrokeWidth: 2},
	}
	if len(xs) == 1 {
		curve.Style.DotColor = color
		curve.Style.DotWidth = 3
	}

	ch := chart.Chart{
		Title:      p.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 10}},
		XAxis: chart.XAxis{
			Name:           p.XLabel,
			Range:          xr,
			GridMajorStyle: chart.Style{StrokeColor: drawing.ColorFromHex("dddddd"), StrokeWidth: 1},
		},
		YAxis: chart.YAxis{
			Name:           p.YLabel,
			Range:          yr,
			GridMajorStyle: chart.Style{StrokeColor: drawing.ColorFromHex("dddddd"), StrokeWidth: 1},
		},
		Series: []chart.Series{
			curve,
			chart.ContinuousSeries{
				XValues: []float64{p.MarkX, p.MarkX},
				YValues: []float64{yr.Min, yr.Max},
				Style:   referenceStyle(),
			},
			chart.ContinuousSeries{
				XValues: []float64{xr.Min, xr.Max},
				YValues: []float64{p.MarkY, p.MarkY},
				Style:   referenceStyle(),
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{XValue: p.MarkX, YValue: p.MarkY, Label: p.Label}},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render panel %q: %w", p.Title, err)
	}
	return buf.Bytes(), nil
}

// finitePoints drops points whose y is NaN or infinite, as CL/CD is for
// rows with zero drag.
func finitePoints(x, y []float64) ([]float64, []float64) {
	n := min(len(x), len(y))
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			continue
		}
		xs = append(xs, x[i])
		ys = append(ys, y[i])
	}
	return xs, ys
}

// paddedRange spans vals and mark with a 5% margin; a zero-width span is
// widened so single-row polars still render.
func paddedRange(vals []float64, mark float64) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range append([]float64{mark}, vals...) {
		if !isFinite(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = math.Max(math.Abs(hi), 1)
	}
	pad := span * 0.05
	return &chart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
