package cmd

import (
	"fmt"

	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/spf13/cobra"
)

var rebarWidth float64

var rebarCmd = &cobra.Command{
	Use:   "rebar",
	Short: "List the standard bar sizes",
	Long: `Print the ASTM A615 bar catalog: nominal diameter, area and unit
weight. With --width the largest number of bars of each size that fit
in one layer of that beam width is shown too.

Examples:
  aci318 rebar
  aci318 rebar --width 12`,
	RunE: runRebar,
}

func init() {
	rootCmd.AddCommand(rebarCmd)
	rebarCmd.Flags().Float64VarP(&rebarWidth, "width", "b", 0, "Beam width (in) for the bars-per-layer column")
}

func runRebar(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	printTitle(out, "REINFORCING BAR CATALOG")

	var sec section.Section
	if rebarWidth > 0 {
		sec = section.New(rebarWidth, 2*rebarWidth, defaults.SectionOptions()...)
	}

	w := newTable(out)
	if rebarWidth > 0 {
		fmt.Fprintf(w, "  Size\tdb (in)\tAb (in²)\tWeight (lb/ft)\tMax in %g in\n", rebarWidth)
		fmt.Fprintf(w, "  ────\t───────\t────────\t──────────────\t───────────\n")
	} else {
		fmt.Fprintf(w, "  Size\tdb (in)\tAb (in²)\tWeight (lb/ft)\n")
		fmt.Fprintf(w, "  ────\t───────\t────────\t──────────────\n")
	}
	for _, s := range rebar.Sizes() {
		b := s.Bar()
		if rebarWidth > 0 {
			fmt.Fprintf(w, "  %s\t%.3f\t%.2f\t%.3f\t%d\n", s, b.Diameter, b.Area, b.Weight, sec.MaxBarsPerLayer(s))
			continue
		}
		fmt.Fprintf(w, "  %s\t%.3f\t%.2f\t%.3f\n", s, b.Diameter, b.Area, b.Weight)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}
