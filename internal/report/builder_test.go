package report_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zakriahayder/airfoil-selection-tool/internal/polar"
	"github.com/zakriahayder/airfoil-selection-tool/internal/polar/polartest"
	"github.com/zakriahayder/airfoil-selection-tool/internal/report"
)

type recordingSink struct {
	pages    []report.Page
	closed   int
	failPage int
}

func (s *recordingSink) WritePage(p report.Page) error {
	if s.failPage != 0 && p.Number == s.failPage {
		return errors.New("disk full")
	}
	s.pages = append(s.pages, p)
	return nil
}

func (s *recordingSink) Close() error {
	s.closed++
	return nil
}

// airfoil returns a polar whose best row has the given CL.
func airfoil(name string, bestCL float64) polartest.Polar {
	return polartest.Polar{
		Name:     name,
		Reynolds: "5.000 e 5",
		Rows: [][]float64{
			polartest.Row(0, bestCL/2, 0.02),
			polartest.Row(2, bestCL, 0.01),
			polartest.Row(4, bestCL*1.1, 0.03),
		},
	}
}

func recordWithCL(name string, cl float64) *polar.Record {
	rec, err := polar.NewRecord(name, nil, []polar.Row{{Alpha: 1, CL: cl, CD: 0.01}})
	Expect(err).NotTo(HaveOccurred())
	return rec
}

var _ = Describe("Builder", func() {
	var (
		dir      string
		builder  *report.Builder
		observed *observer.ObservedLogs
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "polars")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		core, logs := observer.New(zap.DebugLevel)
		observed = logs
		builder, err = report.NewBuilder(report.Options{Logger: zap.New(core)})
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Scan", func() {
		It("selects files by exact extension and ignores subdirectories", func() {
			polartest.Write(GinkgoT(), dir, "b_polar.txt", airfoil("B", 1))
			polartest.Write(GinkgoT(), dir, "a_polar.txt", airfoil("A", 1))
			polartest.Write(GinkgoT(), dir, "upper.TXT", airfoil("C", 1))
			polartest.Write(GinkgoT(), dir, "notes.md", airfoil("D", 1))
			Expect(os.Mkdir(filepath.Join(dir, "nested.txt"), 0755)).To(Succeed())

			paths, err := builder.Scan(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(Equal([]string{
				filepath.Join(dir, "a_polar.txt"),
				filepath.Join(dir, "b_polar.txt"),
			}))
		})

		It("fails when nothing matches", func() {
			polartest.Write(GinkgoT(), dir, "notes.md", airfoil("D", 1))

			_, err := builder.Scan(dir)
			Expect(err).To(MatchError(report.ErrNoCandidateFiles))
		})

		It("fails on a missing directory", func() {
			_, err := builder.Scan(filepath.Join(dir, "absent"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Load", func() {
		It("skips a malformed file and keeps its siblings", func() {
			bad := airfoil("Bad", 1)
			bad.Raw = []string{"6.0 0.8 0.011 0.005 -0.05"}
			badPath := polartest.Write(GinkgoT(), dir, "bad.txt", bad)
			polartest.Write(GinkgoT(), dir, "good.txt", airfoil("Good", 1))

			records, skipped, err := builder.Load(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].Name).To(Equal("Good"))

			Expect(skipped).To(HaveLen(1))
			Expect(skipped[0].Path).To(Equal(badPath))
			Expect(skipped[0].Err).To(MatchError(polar.ErrMalformedRow))

			warnings := observed.FilterMessage("skipping polar file").All()
			Expect(warnings).To(HaveLen(1))
			Expect(warnings[0].ContextMap()).To(HaveKeyWithValue("path", badPath))
		})

		It("logs missing header metadata without skipping", func() {
			src := airfoil("", 1)
			src.Reynolds = ""
			polartest.Write(GinkgoT(), dir, "bare.txt", src)

			records, skipped, err := builder.Load(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(skipped).To(BeEmpty())
			Expect(records[0].Name).To(Equal(polar.UnknownAirfoil))
			Expect(records[0].Reynolds).To(BeNil())
			Expect(observed.FilterMessage("polar header incomplete").Len()).To(Equal(2))
		})

		It("fails when every file is bad", func() {
			polartest.Write(GinkgoT(), dir, "empty.txt", polartest.Polar{Name: "Empty", Reynolds: "1.000 e 6"})

			_, skipped, err := builder.Load(dir)
			Expect(err).To(MatchError(report.ErrNoRecords))
			Expect(skipped).To(HaveLen(1))
			Expect(skipped[0].Err).To(MatchError(polar.ErrEmptyTable))
		})
	})

	Describe("SortRecords", func() {
		It("orders by ascending CL at max CL/CD", func() {
			records := []*polar.Record{recordWithCL("A", 3.1), recordWithCL("B", 1.2), recordWithCL("C", 2.0)}
			report.SortRecords(records)

			var cls []float64
			for _, r := range records {
				cls = append(cls, r.BestCL)
			}
			Expect(cls).To(Equal([]float64{1.2, 2.0, 3.1}))
		})

		It("keeps scan order for equal keys", func() {
			records := []*polar.Record{
				recordWithCL("first", 1.0), recordWithCL("low", 0.5),
				recordWithCL("second", 1.0), recordWithCL("third", 1.0),
			}
			report.SortRecords(records)

			var names []string
			for _, r := range records {
				names = append(names, r.Name)
			}
			Expect(names).To(Equal([]string{"low", "first", "second", "third"}))
		})
	})

	Describe("Build", func() {
		It("writes title, contents and one plot page per airfoil in order", func() {
			polartest.Write(GinkgoT(), dir, "a.txt", airfoil("High", 3.1))
			polartest.Write(GinkgoT(), dir, "b.txt", airfoil("Low", 1.2))
			polartest.Write(GinkgoT(), dir, "c.txt", airfoil("Mid", 2.0))

			sink := &recordingSink{}
			summary, err := builder.Build(dir, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.closed).To(Equal(1))
			Expect(summary.Pages).To(Equal(5))

			Expect(sink.pages).To(HaveLen(5))
			Expect(sink.pages[0].Kind).To(Equal(report.TitlePage))
			Expect(sink.pages[0].Heading).To(Equal("Airfoil Analysis Report"))
			Expect(sink.pages[1].Kind).To(Equal(report.ContentsPage))

			entries := sink.pages[1].Entries
			Expect(entries).To(HaveLen(3))
			Expect([]int{entries[0].Page, entries[1].Page, entries[2].Page}).To(Equal([]int{3, 4, 5}))
			Expect(entries[0].Label).To(Equal("1. Low, CL at Max CL/CD: 1.2000"))
			Expect(entries[2].Label).To(Equal("3. High, CL at Max CL/CD: 3.1000"))

			for i, name := range []string{"Low", "Mid", "High"} {
				page := sink.pages[i+2]
				Expect(page.Kind).To(Equal(report.PlotPage))
				Expect(page.Number).To(Equal(i + 3))
				Expect(page.Heading).To(Equal(name + ", Re = 5.000e+05"))
			}
		})

		It("excludes a malformed file while its siblings still get pages", func() {
			bad := airfoil("Bad", 1)
			bad.Raw = []string{"1 2 3 4 5"}
			polartest.Write(GinkgoT(), dir, "bad.txt", bad)
			polartest.Write(GinkgoT(), dir, "good.txt", airfoil("Good", 1))

			sink := &recordingSink{}
			summary, err := builder.Build(dir, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Skipped).To(HaveLen(1))
			Expect(sink.pages).To(HaveLen(3))
			Expect(sink.pages[2].Heading).To(HavePrefix("Good"))
		})

		It("leaves the sink untouched when there are no candidates", func() {
			sink := &recordingSink{}
			_, err := builder.Build(dir, sink)
			Expect(err).To(MatchError(report.ErrNoCandidateFiles))
			Expect(sink.pages).To(BeEmpty())
			Expect(sink.closed).To(Equal(0))
		})

		It("closes the sink when a page fails", func() {
			polartest.Write(GinkgoT(), dir, "a.txt", airfoil("A", 1))

			sink := &recordingSink{failPage: 2}
			_, err := builder.Build(dir, sink)
			Expect(err).To(MatchError(ContainSubstring("write page 2")))
			Expect(sink.closed).To(Equal(1))
		})

		It("uses a custom title", func() {
			b, err := report.NewBuilder(report.Options{Title: "Wing Study"})
			Expect(err).NotTo(HaveOccurred())
			polartest.Write(GinkgoT(), dir, "a.txt", airfoil("A", 1))

			sink := &recordingSink{}
			_, err = b.Build(dir, sink)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.pages[0].Heading).To(Equal("Wing Study"))
		})
	})
})
