package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/spf13/cobra"
)

var (
	// Unfactored moments (kip-ft)
	momentDead       float64
	momentLive       float64
	momentRoof       float64
	momentSnow       float64
	momentRain       float64
	momentWind       float64
	momentEarthquake float64

	// Options
	showAll       bool
	useSimplified bool
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate factored moment using ACI 318-19 load combinations",
	Long: `Calculate the factored moment (Mu) from the ACI 318-19 Table 5.3.1
load combinations.

Provide unfactored moments from different load types and this command will
compute the factored moments for all applicable combinations.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  S  - Snow load
  R  - Rain load
  W  - Wind load
  E  - Earthquake load

Examples:
  # Simple gravity loads (dead + live)
  aci318 moment --dead 50 --live 30

  # With wind load
  aci318 moment --dead 50 --live 30 --wind 20

  # Show all combinations
  aci318 moment --dead 50 --live 30 --all`,
	RunE: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	// Load moment flags
	momentCmd.Flags().Float64VarP(&momentDead, "dead", "d", 0, "Moment due to dead load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentLive, "live", "l", 0, "Moment due to live load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentRoof, "roof", "r", 0, "Moment due to roof live load (kip-ft)")
	momentCmd.Flags().Float64Var(&momentSnow, "snow", 0, "Moment due to snow load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentRain, "rain", "R", 0, "Moment due to rain load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentWind, "wind", "w", 0, "Moment due to wind load (kip-ft)")
	momentCmd.Flags().Float64VarP(&momentEarthquake, "earthquake", "e", 0, "Moment due to earthquake load (kip-ft)")

	// Options
	momentCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show all load combination results")
	momentCmd.Flags().BoolVar(&useSimplified, "simplified", false, "Use gravity combinations only (1.4D and 1.2D+1.6L)")
}

func runMoment(cmd *cobra.Command, args []string) error {
	moments := aci.LoadMoments{
		Dead:       momentDead,
		Live:       momentLive,
		Roof:       momentRoof,
		Snow:       momentSnow,
		Rain:       momentRain,
		Wind:       momentWind,
		Earthquake: momentEarthquake,
	}
	if moments.IsZero() {
		return errors.New("provide at least one unfactored moment (see 'aci318 moment --help')")
	}

	// Select which combinations to use
	combinations := aci.LoadCombinations
	if useSimplified {
		combinations = aci.GravityCombinations
	}

	out := cmd.OutOrStdout()
	printTitle(out, "ACI 318-19 FACTORED MOMENT CALCULATION")

	printHeading(out, "UNFACTORED MOMENTS (kip-ft):")
	w := newTable(out)
	for _, m := range []struct {
		label string
		value float64
	}{
		{"Dead Load (D)", moments.Dead},
		{"Live Load (L)", moments.Live},
		{"Roof Live Load (Lr)", moments.Roof},
		{"Snow Load (S)", moments.Snow},
		{"Rain Load (R)", moments.Rain},
		{"Wind Load (W)", moments.Wind},
		{"Earthquake Load (E)", moments.Earthquake},
	} {
		if m.value != 0 {
			fmt.Fprintf(w, "  %s:\t%.2f\n", m.label, m.value)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	// Calculate governing moment
	maxMu, governing := aci.GoverningMoment(moments, combinations)

	if showAll {
		printHeading(out, "LOAD COMBINATIONS (ACI 318-19 Table 5.3.1):")
		w = newTable(out)
		fmt.Fprintf(w, "  #\tEq.\tCombination\tMu (kip-ft)\n")
		fmt.Fprintf(w, "  ─\t───\t───────────\t───────────\n")
		for _, combo := range combinations {
			marker := ""
			if combo.ID == governing.ID {
				marker = " ← GOVERNS"
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f%s\n", combo.ID, combo.Equation, combo.Description, combo.Factored(moments), marker)
		}
		w.Flush()
		fmt.Fprintln(out)
	}

	printHeading(out, "RESULT:")
	fmt.Fprintf(out, "  Governing combination: %s (Eq. %s)\n", governing.Description, governing.Equation)
	fmt.Fprintf(out, "  Factored moment Mu = %.2f kip-ft\n", maxMu)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Next: aci318 design --mu %.2f\n", maxMu)
	fmt.Fprintln(out)
	return nil
}
