package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alexiusacademia/aci318/internal/diagram"
	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/report"
	"github.com/alexiusacademia/aci318/internal/search"
	"github.com/spf13/cobra"
)

var (
	// Demand
	designMu float64
	designVu float64

	// Search space
	designMinWidth, designMaxWidth, designWidthStep    float64
	designMinHeight, designMaxHeight, designHeightStep float64
	designMinBar, designMaxBarSize                     string
	designMaxBars, designMaxCompBars                   int
	designStirrupSize                                  string
	designLegs                                         int
	designStrain                                       float64
	designWorkers                                      int
	designFirst                                        bool
	designProgress                                     bool
	designMaterials                                    materialFlags

	// Post-processing
	designDedupe      string
	designWidthFilter float64
	designMaxBar      string
	designSortArea    bool
	designLimit       int

	// Output
	designTitle       string
	designXLSX        string
	designPDF         string
	designShowDiagram bool
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Search for rectangular sections that carry a factored moment",
	Long: `Enumerate widths, heights and bar layouts and list every section whose
design strength φMn reaches Mu while the net tensile strain stays at or
above the tension-controlled limit (0.005).

For each width and height the single-layer tension options are tried
from the lightest up; when none works, compression steel is added. The
first passing layout per geometry is kept. With --vu each design also
gets stirrups and is dropped if the shear cannot be carried.

Widths are searched in parallel; press Ctrl+C to cancel.

Examples:
  aci318 design --mu 150
  aci318 design --mu 150 --vu 30 --first
  aci318 design --mu 200 --min-width 10 --max-width 16 --dedupe depth --limit 10
  aci318 design --mu 150 --max-bar "#8" --sort-area --xlsx designs.xlsx --pdf designs.pdf`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)

	f := designCmd.Flags()
	def := search.DefaultConfig()

	f.Float64VarP(&designMu, "mu", "m", 0, "Factored moment Mu (kip-ft) [required]")
	f.Float64Var(&designVu, "vu", 0, "Factored shear Vu (kips); adds stirrup design")
	designCmd.MarkFlagRequired("mu")

	f.Float64Var(&designMinWidth, "min-width", def.MinWidth, "Smallest width (in)")
	f.Float64Var(&designMaxWidth, "max-width", def.MaxWidth, "Largest width (in)")
	f.Float64Var(&designWidthStep, "width-step", def.WidthStep, "Width increment (in)")
	f.Float64Var(&designMinHeight, "min-height", def.MinHeight, "Smallest height (in)")
	f.Float64Var(&designMaxHeight, "max-height", def.MaxHeight, "Largest height (in)")
	f.Float64Var(&designHeightStep, "height-step", def.HeightStep, "Height increment (in)")
	f.StringVar(&designMinBar, "min-bar-size", "#3", "Smallest longitudinal bar")
	f.StringVar(&designMaxBarSize, "max-bar-size", "#11", "Largest longitudinal bar")
	f.IntVar(&designMaxBars, "max-bars", def.MaxTensionBars, "Most tension bars in the layer")
	f.IntVar(&designMaxCompBars, "max-comp-bars", def.MaxCompressionBars, "Most compression bars; 0 disables compression steel")
	f.StringVar(&designStirrupSize, "stirrup-size", def.StirrupSize.String(), "Stirrup bar size")
	f.IntVar(&designLegs, "legs", def.StirrupLegs, "Stirrup legs")
	f.Float64Var(&designStrain, "min-strain", def.DuctilityStrain, "Minimum net tensile strain εt")
	f.IntVar(&designWorkers, "workers", -1, "Concurrent widths; 0 uses all CPUs [default ACI318_WORKERS or 0]")
	f.BoolVar(&designFirst, "first", false, "Return only the smallest feasible section")
	f.BoolVar(&designProgress, "progress", false, "Report searched widths on stderr")
	designMaterials.register(designCmd)

	f.StringVar(&designDedupe, "dedupe", "", "Keep one design per bar layout: depth or width")
	f.Float64Var(&designWidthFilter, "width-filter", 0, "Keep only this width (in)")
	f.StringVar(&designMaxBar, "max-bar", "", `Keep designs whose tension bars are at most this size, e.g. "#8"`)
	f.BoolVar(&designSortArea, "sort-area", false, "Sort by gross area, then steel area")
	f.IntVar(&designLimit, "limit", 0, "Show at most this many designs")

	f.StringVar(&designTitle, "title", "Beam design summary", "Report title for --xlsx and --pdf")
	f.StringVar(&designXLSX, "xlsx", "", "Write designs to an .xlsx workbook")
	f.StringVar(&designPDF, "pdf", "", "Write a PDF summary")
	f.BoolVar(&designShowDiagram, "diagram", false, "Show the ASCII section of the first design")
}

func designConfig() (search.Config, error) {
	cfg := defaults.Search()
	cfg.Fc, cfg.Fy, cfg.Es, cfg.TensionCover, cfg.SideCover, cfg.ClearSpacing = designMaterials.resolved()
	cfg.CompressionCover = cfg.TensionCover

	cfg.MinWidth, cfg.MaxWidth, cfg.WidthStep = designMinWidth, designMaxWidth, designWidthStep
	cfg.MinHeight, cfg.MaxHeight, cfg.HeightStep = designMinHeight, designMaxHeight, designHeightStep

	from, err := rebar.Parse(designMinBar)
	if err != nil {
		return cfg, err
	}
	to, err := rebar.Parse(designMaxBarSize)
	if err != nil {
		return cfg, err
	}
	cfg.TensionSizes = rebar.Range(from, to)
	cfg.CompressionSizes = rebar.Range(from, to)
	cfg.MaxTensionBars = designMaxBars
	cfg.MaxCompressionBars = designMaxCompBars

	if cfg.StirrupSize, err = rebar.Parse(designStirrupSize); err != nil {
		return cfg, err
	}
	cfg.StirrupLegs = designLegs
	cfg.DuctilityStrain = designStrain
	cfg.FirstOnly = designFirst
	if designWorkers >= 0 {
		cfg.Workers = designWorkers
	}
	return cfg, cfg.Validate()
}

func runDesign(cmd *cobra.Command, args []string) error {
	cfg, err := designConfig()
	if err != nil {
		return err
	}
	if designDedupe != "" && designDedupe != "depth" && designDedupe != "width" {
		return fmt.Errorf("unknown --dedupe %q (want depth or width)", designDedupe)
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt)
	defer stop()

	start := time.Now()
	demand := search.Demand{Mu: designMu, Vu: designVu}
	opts := []search.Option{search.WithLogger(logger)}
	if designProgress {
		total, done := len(cfg.Widths()), 0
		errOut := cmd.ErrOrStderr()
		opts = append(opts, search.WithProgress(func(width float64, found int) {
			done++
			fmt.Fprintf(errOut, "\r  widths searched: %d/%d", done, total)
		}))
	}
	results, stats, err := search.Run(ctx, demand, cfg, opts...)
	if designProgress {
		fmt.Fprintln(cmd.ErrOrStderr())
	}
	if err != nil {
		return err
	}

	switch designDedupe {
	case "depth":
		results = search.DedupeByDepth(results)
	case "width":
		results = search.DedupeByWidth(results)
	}
	if designWidthFilter > 0 {
		results = search.FilterWidth(results, designWidthFilter)
	}
	if designMaxBar != "" {
		size, err := rebar.Parse(designMaxBar)
		if err != nil {
			return err
		}
		results = search.FilterMaxBar(results, size)
	}
	if designSortArea {
		results = search.SortByArea(results)
	}
	total := len(results)
	if designLimit > 0 && len(results) > designLimit {
		results = results[:designLimit]
	}

	out := cmd.OutOrStdout()
	printTitle(out, "SECTION DESIGN SEARCH - ACI 318-19")

	printHeading(out, "DEMAND AND SEARCH SPACE:")
	w := newTable(out)
	fmt.Fprintf(w, "  Factored moment (Mu):\t%.2f kip-ft\n", designMu)
	if designVu > 0 {
		fmt.Fprintf(w, "  Factored shear (Vu):\t%.2f kips\n", designVu)
	}
	fmt.Fprintf(w, "  Width:\t%g to %g in, step %g\n", cfg.MinWidth, cfg.MaxWidth, cfg.WidthStep)
	fmt.Fprintf(w, "  Height:\t%g to %g in, step %g\n", cfg.MinHeight, cfg.MaxHeight, cfg.HeightStep)
	fmt.Fprintf(w, "  Bars:\t%s to %s, up to %d per layer\n", designMinBar, designMaxBarSize, cfg.MaxTensionBars)
	fmt.Fprintf(w, "  f'c / fy:\t%.0f / %.0f psi\n", cfg.Fc, cfg.Fy)
	fmt.Fprintf(w, "  Geometries / trials:\t%d / %d (%d pruned)\n", stats.Geometries, stats.Trials, stats.Pruned)
	fmt.Fprintf(w, "  Elapsed:\t%s\n", time.Since(start).Round(time.Millisecond))
	w.Flush()
	fmt.Fprintln(out)

	if total == 0 {
		fmt.Fprintln(out, "  no feasible design found")
		fmt.Fprintln(out)
		return nil
	}

	printHeading(out, fmt.Sprintf("DESIGNS (%d of %d):", len(results), total))
	printDesigns(out, results)

	if designShowDiagram {
		fmt.Fprintln(out, diagram.DrawSection(diagram.FromResult(results[0])))
	}
	return exportResults(cmd, report.Meta{Title: designTitle, MuKipFt: designMu, VuKips: designVu}, results)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
