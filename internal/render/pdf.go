package render

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/zakriahayder/airfoil-selection-tool/internal/config"
	"github.com/zakriahayder/airfoil-selection-tool/internal/report"
)

const (
	fontFamily   = "Helvetica"
	headerHeight = 22.0
	footerHeight = 25.0
	lineHeight   = 7.0
)

var errClosed = errors.New("render: sink already closed")

// The core PDF fonts are cp1252 and have no Greek letters.
var latin = strings.NewReplacer("α", "alpha")

// PDF assembles report pages into one PDF file. Pages are built in memory
// and the file at path is written by Close.
type PDF struct {
	path   string
	layout config.Layout
	doc    *fpdf.Fpdf
	tr     func(string) string
	pages  int
	closed bool
}

func NewPDF(path string, layout *config.Layout) *PDF {
	if layout == nil {
		layout = config.GetLayout(config.DefaultLayout)
	}
	doc := fpdf.New("P", "mm", layout.Paper, "")
	doc.SetMargins(layout.Margin, layout.Margin, layout.Margin)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCreator("airfoil", false)

	return &PDF{
		path:   path,
		layout: *layout,
		doc:    doc,
		tr:     doc.UnicodeTranslatorFromDescriptor(""),
	}
}

func (s *PDF) text(str string) string {
	return s.tr(latin.Replace(str))
}

func (s *PDF) WritePage(p report.Page) error {
	if s.closed {
		return errClosed
	}

	s.doc.AddPage()
	switch p.Kind {
	case report.TitlePage:
		s.doc.SetTitle(p.Heading, true)
		s.titlePage(p)
	case report.ContentsPage:
		s.contentsPage(p)
	case report.PlotPage:
		if err := s.plotPage(p); err != nil {
			return err
		}
	default:
		return fmt.Errorf("render: unknown page kind %v", p.Kind)
	}
	s.pageNumber(p)
	s.pages++

	if s.doc.Err() {
		return s.doc.Error()
	}
	return nil
}

func (s *PDF) titlePage(p report.Page) {
	w, h := s.doc.GetPageSize()
	s.doc.SetFont(fontFamily, "B", 20)
	s.doc.SetXY(0, h/2-5)
	s.doc.CellFormat(w, 10, s.text(p.Heading), "", 0, "C", false, 0, "")
}

func (s *PDF) contentsPage(p report.Page) {
	w, h := s.doc.GetPageSize()
	s.doc.SetFont(fontFamily, "B", s.layout.HeaderSize)
	s.doc.SetXY(0, h*0.1-5)
	s.doc.CellFormat(w, 10, s.text(p.Heading), "", 0, "C", false, 0, "")

	// Entries start at 20% of the page height and shrink to fit above the
	// footer when there are many airfoils.
	top := h * 0.2
	step := h * 0.05
	if n := len(p.Entries); n > 0 {
		step = min(step, (h-footerHeight-top)/float64(n))
	}
	size := min(s.layout.BodySize, step*72/25.4)

	s.doc.SetFont(fontFamily, "", size)
	left, right := w*0.1, w*0.9
	for i, e := range p.Entries {
		y := top + step*float64(i)
		s.doc.SetXY(left, y)
		s.doc.CellFormat(right-left, step, s.text(e.Label), "", 0, "L", false, 0, "")
		s.doc.SetXY(left, y)
		s.doc.CellFormat(right-left, step, fmt.Sprintf("Page %d", e.Page), "", 0, "R", false, 0, "")
	}
}

func (s *PDF) plotPage(p report.Page) error {
	w, h := s.doc.GetPageSize()
	m := s.layout.Margin

	s.doc.SetFont(fontFamily, "B", s.layout.HeaderSize)
	s.doc.SetXY(0, m)
	s.doc.CellFormat(w, 10, s.text(p.Heading), "", 0, "C", false, 0, "")

	if len(p.Panels) > 0 {
		contentW := w - 2*m
		slot := (h - headerHeight - footerHeight) / float64(len(p.Panels))
		px := s.layout.ChartWidth
		py := int(float64(px) * slot / contentW)

		opts := fpdf.ImageOptions{ImageType: "PNG"}
		for i, panel := range p.Panels {
			img, err := PanelPNG(panel, px, py)
			if err != nil {
				return fmt.Errorf("page %d: %w", p.Number, err)
			}
			name := fmt.Sprintf("page%d-panel%d", p.Number, i)
			s.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img))
			s.doc.ImageOptions(name, m, headerHeight+slot*float64(i), contentW, slot, false, opts, 0, "")
		}
	}

	if p.Summary != "" {
		s.doc.SetFont(fontFamily, "", s.layout.FootnoteSize)
		summary := s.text(p.Summary)
		sw := s.doc.GetStringWidth(summary) + 6
		s.doc.SetFillColor(255, 200, 128)
		s.doc.SetXY((w-sw)/2, h-footerHeight+8)
		s.doc.CellFormat(sw, lineHeight, summary, "", 0, "C", true, 0, "")
	}
	return nil
}

func (s *PDF) pageNumber(p report.Page) {
	w, h := s.doc.GetPageSize()
	s.doc.SetFont(fontFamily, "", s.layout.FootnoteSize)
	s.doc.SetXY(w*0.05, h-10)
	s.doc.CellFormat(w*0.9, 5, p.Footer(), "", 0, "R", false, 0, "")
}

// Pages reports how many pages have been written.
func (s *PDF) Pages() int {
	return s.pages
}

// Close writes the document to disk. It may be called once.
func (s *PDF) Close() error {
	if s.closed {
		return errClosed
	}
	s.closed = true
	if err := s.doc.OutputFileAndClose(s.path); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
