package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/zakriahayder/airfoil-selection-tool/internal/polar"
)

const (
	DefaultExtension = ".txt"
	DefaultTitle     = "Airfoil Analysis Report"
)

type Options struct {
	// Extension selects candidate files by exact, case-sensitive suffix.
	Extension string
	Title     string
	Parser    *polar.Parser
	Logger    *zap.Logger
}

// Builder turns a directory of polar files into an ordered page sequence.
// A Builder is not safe for concurrent use.
type Builder struct {
	ext    string
	title  string
	parser *polar.Parser
	log    *zap.Logger
}

func NewBuilder(opts Options) (*Builder, error) {
	b := &Builder{
		ext:    opts.Extension,
		title:  opts.Title,
		parser: opts.Parser,
		log:    opts.Logger,
	}
	if b.ext == "" {
		b.ext = DefaultExtension
	}
	if b.title == "" {
		b.title = DefaultTitle
	}
	if b.log == nil {
		b.log = zap.NewNop()
	}
	if b.parser == nil {
		p, err := polar.NewParser(polar.DefaultFormat())
		if err != nil {
			return nil, err
		}
		b.parser = p
	}
	return b, nil
}

// Scan lists the candidate files directly inside dir, in name order.
func (b *Builder) Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), b.ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no *%s files in %s", ErrNoCandidateFiles, b.ext, dir)
	}
	return paths, nil
}

// Load parses every candidate in dir. Files that fail are logged and
// returned as Skipped; only an empty result is an error.
func (b *Builder) Load(dir string) ([]*polar.Record, []Skipped, error) {
	paths, err := b.Scan(dir)
	if err != nil {
		return nil, nil, err
	}

	records := make([]*polar.Record, 0, len(paths))
	var skipped []Skipped
	for _, path := range paths {
		rec, err := b.parser.ParseFile(path)
		if err != nil {
			b.log.Warn("skipping polar file", zap.String("path", path), zap.Error(err))
			skipped = append(skipped, Skipped{Path: path, Err: err})
			continue
		}
		for _, m := range rec.Missing {
			b.log.Info("polar header incomplete", zap.String("path", path), zap.Error(m))
		}
		b.log.Debug("parsed polar file",
			zap.String("path", path),
			zap.String("airfoil", rec.Name),
			zap.Int("rows", len(rec.Rows)),
			zap.Float64("best_alpha", rec.BestAlpha))
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, skipped, fmt.Errorf("%w: %d of %d files failed in %s", ErrNoRecords, len(skipped), len(paths), dir)
	}
	return records, skipped, nil
}

// SortRecords orders records by ascending CL at max CL/CD. Equal keys keep
// their scan order.
func SortRecords(records []*polar.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].BestCL < records[j].BestCL
	})
}

// Summary describes a finished Build.
type Summary struct {
	Records []*polar.Record
	Skipped []Skipped
	Pages   int
}

// Build loads and sorts the polars in dir and writes the report to sink.
// The sink is closed once all pages are written, or after the first page
// that fails. Errors found before the first page leave sink untouched.
func (b *Builder) Build(dir string, sink Sink) (*Summary, error) {
	records, skipped, err := b.Load(dir)
	if err != nil {
		return &Summary{Skipped: skipped}, err
	}
	SortRecords(records)

	pages := b.Pages(records)
	summary := &Summary{Records: records, Skipped: skipped}
	for _, page := range pages {
		if err := sink.WritePage(page); err != nil {
			werr := fmt.Errorf("write page %d: %w", page.Number, err)
			return summary, errors.Join(werr, sink.Close())
		}
		summary.Pages++
	}
	if err := sink.Close(); err != nil {
		return summary, fmt.Errorf("close report: %w", err)
	}

	b.log.Info("report written",
		zap.Int("airfoils", len(records)),
		zap.Int("skipped", len(skipped)),
		zap.Int("pages", summary.Pages))
	return summary, nil
}
