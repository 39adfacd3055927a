package report

import (
	"fmt"

	"github.com/zakriahayder/airfoil-selection-tool/internal/polar"
)

const (
	titlePageNumber    = 1
	contentsPageNumber = 2
	// FirstRecordPage is the page of the first airfoil in sort order.
	FirstRecordPage = 3
)

// Pages lays out the report for records, which must already be sorted: a
// title page, a contents page, then one plot page per record.
func (b *Builder) Pages(records []*polar.Record) []Page {
	pages := make([]Page, 0, len(records)+2)
	pages = append(pages, b.titlePage(), ContentsFor(records))
	for i, rec := range records {
		pages = append(pages, PlotPageFor(rec, FirstRecordPage+i))
	}
	return pages
}

func (b *Builder) titlePage() Page {
	return Page{Number: titlePageNumber, Kind: TitlePage, Heading: b.title}
}

// ContentsFor lists records with the page each will appear on.
func ContentsFor(records []*polar.Record) Page {
	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = Entry{
			Rank:  i + 1,
			Label: fmt.Sprintf("%d. %s, CL at Max CL/CD: %.4f", i+1, rec.Name, rec.BestCL),
			Page:  FirstRecordPage + i,
		}
	}
	return Page{
		Number:  contentsPageNumber,
		Kind:    ContentsPage,
		Heading: "Table of Contents",
		Entries: entries,
	}
}

// PlotPageFor builds the CL, CD and CL/CD panels for one airfoil.
func PlotPageFor(rec *polar.Record, number int) Page {
	alphas := rec.Alphas()
	panels := []Panel{
		panel(rec, "CL", "Lift Coefficient (CL)", "blue", alphas, rec.CLs(), rec.BestCL),
		panel(rec, "CD", "Drag Coefficient (CD)", "green", alphas, rec.CDs(), rec.BestCD),
		panel(rec, "CL/CD", "Lift-to-Drag Ratio (CL/CD)", "red", alphas, rec.Ratios, rec.BestRatio),
	}

	return Page{
		Number:  number,
		Kind:    PlotPage,
		Heading: fmt.Sprintf("%s, Re = %s", rec.Name, rec.ReynoldsString()),
		Panels:  panels,
		Summary: fmt.Sprintf("At α = %.2f: CL = %.4f, CD = %.4f, Max CL/CD = %.4f",
			rec.BestAlpha, rec.BestCL, rec.BestCD, rec.BestRatio),
	}
}

func panel(rec *polar.Record, quantity, ylabel, color string, x, y []float64, markY float64) Panel {
	return Panel{
		Title:  fmt.Sprintf("%s vs. α (%s)", quantity, rec.Name),
		XLabel: "Angle of Attack (α)",
		YLabel: ylabel,
		Color:  color,
		X:      x,
		Y:      y,
		MarkX:  rec.BestAlpha,
		MarkY:  markY,
		Label:  fmt.Sprintf("(%.2f, %.4f)", rec.BestAlpha, markY),
	}
}
