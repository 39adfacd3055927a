package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zakriahayder/airfoil-selection-tool/internal/config"
	"github.com/zakriahayder/airfoil-selection-tool/internal/export"
	"github.com/zakriahayder/airfoil-selection-tool/internal/polar"
	"github.com/zakriahayder/airfoil-selection-tool/internal/render"
	"github.com/zakriahayder/airfoil-selection-tool/internal/report"
	"github.com/zakriahayder/airfoil-selection-tool/internal/tui"
)

var (
	configFile string
	verbose    bool
	logger     *zap.Logger

	extension string
	output    string
	title     string
	layout    string

	textWidth    int
	exportFormat string
	exportRows   bool

	velocity float64
	chord    float64
	nu       float64
)

var (
	heading = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	warn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00"))
)

// main registers the airfoil commands and exits with status 1 when the
// selected command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "airfoil",
		Short:        "compare XFOIL polars by max lift-to-drag ratio",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			cfg.Encoding = "console"
			cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&extension, "ext", config.DefaultExtension, "polar file extension (case-sensitive)")

	reportCmd := &cobra.Command{
		Use:   "report [dir]",
		Short: "write the PDF report for a directory of polars",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReport,
	}
	reportCmd.Flags().StringVarP(&output, "out", "o", config.DefaultOutput, "output PDF path")
	reportCmd.Flags().StringVar(&title, "title", config.DefaultTitle, "title page heading")
	reportCmd.Flags().StringVar(&layout, "layout", config.DefaultLayout, "page layout")

	previewCmd := &cobra.Command{
		Use:   "preview [dir]",
		Short: "print the report as text",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&title, "title", config.DefaultTitle, "title page heading")
	previewCmd.Flags().IntVar(&textWidth, "width", render.DefaultTextWidth, "text width")

	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "list airfoils sorted by CL at max CL/CD",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}

	showCmd := &cobra.Command{
		Use:   "show [file]",
		Short: "parse one polar file and plot it",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().IntVar(&textWidth, "width", render.DefaultTextWidth, "text width")

	browseCmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "browse the report interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runBrowse,
	}

	exportCmd := &cobra.Command{
		Use:   "export [dir]",
		Short: "export airfoil summaries as json, csv or xlsx",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "json, csv or xlsx")
	exportCmd.Flags().StringVarP(&output, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().BoolVar(&exportRows, "rows", false, "include every polar row (json only)")

	reynoldsCmd := &cobra.Command{
		Use:   "reynolds",
		Short: "compute the Reynolds number for a chord and velocity",
		Args:  cobra.NoArgs,
		RunE:  runReynolds,
	}
	reynoldsCmd.Flags().Float64Var(&velocity, "velocity", 10.0, "freestream velocity (m/s)")
	reynoldsCmd.Flags().Float64Var(&chord, "chord", 1.0, "chord length (m)")
	reynoldsCmd.Flags().Float64Var(&nu, "nu", polar.KinematicViscosityAir, "kinematic viscosity (m^2/s)")

	layoutsCmd := &cobra.Command{
		Use:   "layouts",
		Short: "list available page layouts",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListLayouts() {
				l := config.GetLayout(name)
				fmt.Fprintf(cmd.OutOrStdout(), "  %-8s %s\n", name, l.Paper)
			}
		},
	}

	rootCmd.AddCommand(reportCmd, previewCmd, listCmd, showCmd, browseCmd, exportCmd, reynoldsCmd, layoutsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config and the AIRFOIL_* environment; flags set on the
// command line win over both.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("ext") {
		cfg.Extension = extension
	}
	if cmd.Name() == "report" && flags.Changed("out") {
		cfg.Output = output
	}
	if flags.Changed("title") {
		cfg.Title = title
	}
	if flags.Changed("layout") {
		cfg.Layout = layout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newBuilder(cfg *config.Config) (*report.Builder, error) {
	parser, err := cfg.Parser()
	if err != nil {
		return nil, err
	}
	return report.NewBuilder(report.Options{
		Extension: cfg.Extension,
		Title:     cfg.Title,
		Parser:    parser,
		Logger:    logger,
	})
}

func inputDir(args []string, cfg *config.Config) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.InputDir
}

// loadSorted parses every polar in the input directory and sorts the result.
func loadSorted(cmd *cobra.Command, args []string) (*config.Config, *report.Builder, []*polar.Record, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	b, err := newBuilder(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	records, skipped, err := b.Load(inputDir(args, cfg))
	printSkipped(cmd.ErrOrStderr(), skipped)
	if err != nil {
		return nil, nil, nil, err
	}
	report.SortRecords(records)
	return cfg, b, records, nil
}

func printSkipped(w io.Writer, skipped []report.Skipped) {
	for _, s := range skipped {
		fmt.Fprintf(w, "%s %v\n", warn.Render("skipped:"), s.Err)
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	b, err := newBuilder(cfg)
	if err != nil {
		return err
	}

	sink := render.NewPDF(cfg.Output, config.GetLayout(cfg.Layout))
	summary, err := b.Build(inputDir(args, cfg), sink)
	printSkipped(cmd.ErrOrStderr(), summary.Skipped)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "report written: %s (%d airfoils, %d pages)\n",
		cfg.Output, len(summary.Records), summary.Pages)
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	b, err := newBuilder(cfg)
	if err != nil {
		return err
	}

	summary, err := b.Build(inputDir(args, cfg), render.NewText(cmd.OutOrStdout(), textWidth))
	printSkipped(cmd.ErrOrStderr(), summary.Skipped)
	return err
}

func runList(cmd *cobra.Command, args []string) error {
	_, _, records, err := loadSorted(cmd, args)
	if err != nil {
		return err
	}

	headers := []string{"#", "AIRFOIL", "RE", "ALPHA", "CL", "CD", "CL/CD", "PAGE"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.Name,
			rec.ReynoldsString(),
			fmt.Sprintf("%.2f", rec.BestAlpha),
			fmt.Sprintf("%.4f", rec.BestCL),
			fmt.Sprintf("%.4f", rec.BestCD),
			fmt.Sprintf("%.4f", rec.BestRatio),
			strconv.Itoa(report.FirstRecordPage + i),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	parser, err := cfg.Parser()
	if err != nil {
		return err
	}

	rec, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, heading.Render(rec.Name))
	fmt.Fprintln(out, dim.Render(fmt.Sprintf("file: %s", rec.Path)))
	fmt.Fprintln(out, dim.Render(fmt.Sprintf("rows: %d  Re: %s", len(rec.Rows), rec.ReynoldsString())))
	for _, m := range rec.Missing {
		fmt.Fprintln(out, warn.Render(m.Error()))
	}
	fmt.Fprintln(out)

	page := report.PlotPageFor(rec, report.FirstRecordPage)
	for _, panel := range page.Panels {
		fmt.Fprintln(out, render.PlotPanel(panel, textWidth))
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out, page.Summary)
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return fmt.Errorf("browse needs a terminal; use preview for plain text")
	}
	_, b, records, err := loadSorted(cmd, args)
	if err != nil {
		return err
	}
	return tui.Run(b.Pages(records))
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	switch exportFormat {
	case "json", "csv", "xlsx":
	default:
		return fmt.Errorf("unknown format: %s (available: json, csv, xlsx)", exportFormat)
	}

	_, _, records, err := loadSorted(cmd, args)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if output != "" {
		f, cerr := os.Create(output)
		if cerr != nil {
			return cerr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch exportFormat {
	case "csv":
		return export.WriteCSV(w, records)
	case "xlsx":
		return export.WriteXLSX(w, records)
	}
	return export.WriteJSON(w, records, exportRows)
}

func runReynolds(cmd *cobra.Command, args []string) error {
	if velocity <= 0 || chord <= 0 {
		return fmt.Errorf("velocity and chord must be positive")
	}
	re := polar.ReynoldsNumber(velocity, chord, nu)
	fmt.Fprintf(cmd.OutOrStdout(), "Calculated Reynolds number: %.0f\n", re)
	return nil
}
