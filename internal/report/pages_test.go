package report_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zakriahayder/airfoil-selection-tool/internal/polar"
	"github.com/zakriahayder/airfoil-selection-tool/internal/report"
)

var _ = Describe("Pages", func() {
	var rec *polar.Record

	BeforeEach(func() {
		re := 1.234e6
		var err error
		rec, err = polar.NewRecord("NACA 2412", &re, []polar.Row{
			{Alpha: 0, CL: 0.25, CD: 0.006},
			{Alpha: 2, CL: 0.48, CD: 0.007},
			{Alpha: 4, CL: 0.70, CD: 0.009},
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("numbers contents entries from page 3", func() {
		page := report.ContentsFor([]*polar.Record{rec, rec, rec})
		Expect(page.Number).To(Equal(2))
		Expect(page.Footer()).To(Equal("Page 2"))
		for i, e := range page.Entries {
			Expect(e.Rank).To(Equal(i + 1))
			Expect(e.Page).To(Equal(i + 3))
		}
	})

	It("describes a plot page for one airfoil", func() {
		page := report.PlotPageFor(rec, 3)
		Expect(page.Kind).To(Equal(report.PlotPage))
		Expect(page.Heading).To(Equal("NACA 2412, Re = 1.234e+06"))
		Expect(page.Summary).To(Equal("At α = 4.00: CL = 0.7000, CD = 0.0090, Max CL/CD = 77.7778"))
		Expect(page.Footer()).To(Equal("Page 3"))

		Expect(page.Panels).To(HaveLen(3))
		cl, cd, ratio := page.Panels[0], page.Panels[1], page.Panels[2]

		Expect(cl.Title).To(Equal("CL vs. α (NACA 2412)"))
		Expect(cl.X).To(Equal([]float64{0, 2, 4}))
		Expect(cl.Y).To(Equal([]float64{0.25, 0.48, 0.70}))
		Expect(cl.MarkX).To(Equal(4.0))
		Expect(cl.MarkY).To(Equal(0.70))
		Expect(cl.Label).To(Equal("(4.00, 0.7000)"))

		Expect(cd.MarkY).To(Equal(0.009))
		Expect(cd.Label).To(Equal("(4.00, 0.0090)"))

		Expect(ratio.Y).To(Equal(rec.Ratios))
		Expect(ratio.Label).To(Equal("(4.00, 77.7778)"))
	})

	It("shows N/A for an unknown Reynolds number", func() {
		rec.Reynolds = nil
		page := report.PlotPageFor(rec, 3)
		Expect(page.Heading).To(Equal("NACA 2412, Re = N/A"))
	})

	It("names page kinds", func() {
		Expect(report.TitlePage.String()).To(Equal("title"))
		Expect(report.ContentsPage.String()).To(Equal("contents"))
		Expect(report.PlotPage.String()).To(Equal("plot"))
	})
})
