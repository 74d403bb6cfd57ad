package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/alexiusacademia/aci318/internal/diagram"
	"github.com/alexiusacademia/aci318/internal/flexure"
	"github.com/alexiusacademia/aci318/internal/report"
	"github.com/spf13/cobra"
)

var (
	analyzeSection     sectionFlags
	analyzeShowDiagram bool
	analyzeExportFile  string
	analyzeBatch       string
	analyzeXLSX        string
	analyzePDF         string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze moment capacity of a reinforced rectangular section",
	Long: `Calculate the moment capacity (φMn) of a rectangular section with any
number of tension and compression layers by strain compatibility.

The neutral axis is found by sampling the force equilibrium over
[0, 5h] and refining each sign change by bisection. Steel is
elastic-perfectly-plastic and the concrete uses the ACI equivalent
rectangular stress block (22.2.2.4).

Layers are written as qty-#size@depth with the depth measured from
the compression face. Stirrups given with --stirrup add a shear check.

Examples:
  aci318 analyze --file b1.json
  aci318 analyze -b 12 --height 18 -t "3-#8@16.5"
  aci318 analyze -b 12 --height 20 -t "3-#9@17.5, 2-#9@15" -c "2-#6@2.5" -s "#3x2@6" --diagram
  aci318 analyze --batch beams.xlsx --xlsx results.xlsx`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeSection.register(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeBatch, "batch", "", "Analyze every section listed in an .xlsx workbook")
	analyzeCmd.Flags().StringVar(&analyzeXLSX, "xlsx", "", "Write results to an .xlsx workbook")
	analyzeCmd.Flags().StringVar(&analyzePDF, "pdf", "", "Write a PDF summary")

	// Diagram options
	analyzeCmd.Flags().BoolVar(&analyzeShowDiagram, "diagram", false, "Show ASCII section and strain diagrams")
	analyzeCmd.Flags().StringVarP(&analyzeExportFile, "output", "o", "", "Export diagram to file (png, svg, pdf)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeBatch != "" {
		return runAnalyzeBatch(cmd)
	}

	sec, err := analyzeSection.section()
	if err != nil {
		return err
	}
	opts := []flexure.Option{flexure.WithLogger(logger)}
	if len(sec.Stirrups) > 0 {
		opts = append(opts, flexure.WithShear())
	}
	result, err := flexure.Analyze(sec, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "RECTANGULAR SECTION ANALYSIS - ACI 318-19")
	printAnalysis(out, result)

	data := diagram.FromResult(result)
	if analyzeShowDiagram {
		fmt.Fprintln(out, diagram.DrawSection(data))
		fmt.Fprintln(out, diagram.DrawStrain(data))
	}
	if analyzeExportFile != "" {
		if err := diagram.ExportSection(data, analyzeExportFile); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", analyzeExportFile)
	}
	return exportResults(cmd, report.Meta{Title: "Section analysis", Project: sec.Name}, []*flexure.Result{result})
}

func runAnalyzeBatch(cmd *cobra.Command) error {
	f, err := os.Open(analyzeBatch)
	if err != nil {
		return err
	}
	defer f.Close()

	sections, rowErrs, err := report.ReadSections(f)
	if err != nil {
		return fmt.Errorf("read %s: %w", analyzeBatch, err)
	}
	for _, e := range rowErrs {
		logger.Warn("skipped row", "file", analyzeBatch, "error", e)
	}

	out := cmd.OutOrStdout()
	printTitle(out, "BATCH SECTION ANALYSIS - ACI 318-19")

	var results []*flexure.Result
	for _, sec := range sections {
		opts := []flexure.Option{flexure.WithLogger(logger)}
		if len(sec.Stirrups) > 0 {
			opts = append(opts, flexure.WithShear())
		}
		r, err := flexure.Analyze(sec, opts...)
		if err != nil {
			fmt.Fprintf(out, "  %s: %v\n", sec.Name, err)
			continue
		}
		results = append(results, r)
	}
	if len(results) == 0 {
		return errors.New("no section could be analyzed")
	}
	printDesigns(out, results)
	if len(rowErrs) > 0 {
		fmt.Fprintf(out, "  %d row(s) skipped, run with --verbose for details\n\n", len(rowErrs))
	}
	return exportResults(cmd, report.Meta{Title: "Batch analysis", Project: analyzeBatch}, results)
}

// exportResults writes the --xlsx and --pdf outputs when requested.
func exportResults(cmd *cobra.Command, meta report.Meta, results []*flexure.Result) error {
	xlsxPath, _ := cmd.Flags().GetString("xlsx")
	pdfPath, _ := cmd.Flags().GetString("pdf")
	out := cmd.OutOrStdout()

	if xlsxPath != "" {
		if err := writeFile(xlsxPath, func(f *os.File) error { return report.WriteXLSX(f, meta, results) }); err != nil {
			return fmt.Errorf("write %s: %w", xlsxPath, err)
		}
		fmt.Fprintf(out, "Results written to: %s\n", xlsxPath)
	}
	if pdfPath != "" {
		if err := writeFile(pdfPath, func(f *os.File) error { return report.WritePDF(f, meta, results) }); err != nil {
			return fmt.Errorf("write %s: %w", pdfPath, err)
		}
		fmt.Fprintf(out, "Summary written to: %s\n", pdfPath)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
