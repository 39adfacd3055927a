package report

import "fmt"

// PageKind identifies the layout a sink should use for a Page.
type PageKind int

const (
	TitlePage PageKind = iota
	ContentsPage
	PlotPage
)

func (k PageKind) String() string {
	switch k {
	case TitlePage:
		return "title"
	case ContentsPage:
		return "contents"
	case PlotPage:
		return "plot"
	}
	return "unknown"
}

// Page is a sink-independent description of one report page.
type Page struct {
	Number  int
	Kind    PageKind
	Heading string

	// Entries is set on the contents page.
	Entries []Entry

	// Panels and Summary are set on plot pages.
	Panels  []Panel
	Summary string
}

// Footer is the page-number line every page carries.
func (p Page) Footer() string {
	return fmt.Sprintf("Page %d", p.Number)
}

// Entry is one line of the contents page.
type Entry struct {
	Rank  int
	Label string
	Page  int
}

// Panel is one curve plotted against angle of attack, with a marker at the
// max CL/CD point.
type Panel struct {
	Title  string
	XLabel string
	YLabel string
	Color  string
	X      []float64
	Y      []float64

	MarkX float64
	MarkY float64
	// Label annotates the marker, e.g. "(4.00, 0.7000)".
	Label string
}

// Sink receives pages in order and writes them as one document. Close is
// called exactly once, after the last page.
type Sink interface {
	WritePage(Page) error
	Close() error
}
