package config

import "sort"

// Layout is the page geometry of the PDF report. Paper is an fpdf size name,
// Margin is in millimetres, font sizes in points and ChartWidth is the raster
// width of each plot panel in pixels.
type Layout struct {
	Paper        string
	Margin       float64
	ChartWidth   int
	HeaderSize   float64
	BodySize     float64
	FootnoteSize float64
}

var Layouts = map[string]*Layout{
	"letter": {
		Paper: "Letter", Margin: 12,
		ChartWidth: 1200,
		HeaderSize: 16, BodySize: 12, FootnoteSize: 10,
	},
	"a4": {
		Paper: "A4", Margin: 12,
		ChartWidth: 1200,
		HeaderSize: 16, BodySize: 12, FootnoteSize: 10,
	},
}

func GetLayout(name string) *Layout {
	l, ok := Layouts[name]
	if !ok {
		return nil
	}
	return l
}

func ListLayouts() []string {
	names := make([]string, 0, len(Layouts))
	for name := range Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
