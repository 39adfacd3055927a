package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/zakriahayder/airfoil-selection-tool/internal/report"
)

const (
	DefaultTextWidth = 72
	plotHeight       = 10
	pageBreak        = "\f\n"
)

// Text writes report pages as plain text with ASCII plots.
type Text struct {
	w      io.Writer
	width  int
	pages  int
	closed bool
}

func NewText(w io.Writer, width int) *Text {
	if width <= 0 {
		width = DefaultTextWidth
	}
	return &Text{w: w, width: width}
}

func (s *Text) WritePage(p report.Page) error {
	if s.closed {
		return errClosed
	}
	if s.pages > 0 {
		if _, err := io.WriteString(s.w, pageBreak); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(s.w, RenderPage(p, s.width)); err != nil {
		return err
	}
	s.pages++
	return nil
}

// Close marks the end of the report. It does not close the writer.
func (s *Text) Close() error {
	if s.closed {
		return errClosed
	}
	s.closed = true
	return nil
}

// RenderPage draws one page as text, width columns wide.
func RenderPage(p report.Page, width int) string {
	if width <= 0 {
		width = DefaultTextWidth
	}

	var b strings.Builder
	switch p.Kind {
	case report.TitlePage:
		b.WriteString("\n\n" + center(p.Heading, width) + "\n\n\n")
	case report.ContentsPage:
		b.WriteString(center(p.Heading, width) + "\n\n")
		for _, e := range p.Entries {
			num := fmt.Sprintf("Page %d", e.Page)
			dots := width - len([]rune(e.Label)) - len(num) - 2
			if dots < 1 {
				dots = 1
			}
			b.WriteString(e.Label + " " + strings.Repeat(".", dots) + " " + num + "\n")
		}
		b.WriteString("\n")
	case report.PlotPage:
		b.WriteString(center(p.Heading, width) + "\n\n")
		for _, panel := range p.Panels {
			b.WriteString(PlotPanel(panel, width) + "\n\n")
		}
		b.WriteString(p.Summary + "\n")
	}
	b.WriteString(fmt.Sprintf("%*s\n", width, p.Footer()))
	return b.String()
}

// PlotPanel draws the curve with a horizontal reference line at the marker.
// asciigraph has no x axis, so the alpha range and marker go in the caption.
func PlotPanel(p report.Panel, width int) string {
	ys := make([]float64, len(p.Y))
	ref := make([]float64, len(p.Y))
	for i, v := range p.Y {
		ys[i] = v
		if !isFinite(v) {
			ys[i] = math.NaN()
		}
		ref[i] = p.MarkY
	}

	caption := p.Title
	if n := len(p.X); n > 0 {
		caption = fmt.Sprintf("%s, α %.2f..%.2f, marker %s", p.Title, p.X[0], p.X[n-1], p.Label)
	}

	if len(ys) < 2 {
		return caption + ": " + p.Label
	}

	return asciigraph.PlotMany([][]float64{ys, ref},
		asciigraph.Height(plotHeight),
		asciigraph.Width(max(width-12, 10)),
		asciigraph.Precision(3),
		asciigraph.Caption(caption),
	)
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}
