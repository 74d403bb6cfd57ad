package cmd

import (
	"fmt"

	"github.com/alexiusacademia/aci318/internal/beam"
	"github.com/spf13/cobra"
)

var (
	// Analysis inputs
	beamAnalyzeWidth float64
	beamAnalyzeDepth float64
	beamAnalyzeAs    float64
	beamAnalyzeFc    float64
	beamAnalyzeFy    float64
)

var beamAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze moment capacity of a singly reinforced beam",
	Long: `Calculate the moment capacity (φMn) of a singly reinforced
rectangular beam given the tension reinforcement area (As), assuming
the steel yields:

  a  = As·fy / (0.85·f'c·b)
  Mn = As·fy·(d - a/2)

Examples:
  # 12 in. wide beam, d = 16.5 in., 3-#8 bars (As = 2.37 in²)
  aci318 beam analyze --width 12 --depth 16.5 --as 2.37`,
	RunE: runBeamAnalyze,
}

func init() {
	beamCmd.AddCommand(beamAnalyzeCmd)

	beamAnalyzeCmd.Flags().Float64VarP(&beamAnalyzeWidth, "width", "b", 0, "Beam width (in) [required]")
	beamAnalyzeCmd.Flags().Float64VarP(&beamAnalyzeDepth, "depth", "d", 0, "Effective depth d (in) [required]")
	beamAnalyzeCmd.Flags().Float64VarP(&beamAnalyzeAs, "as", "a", 0, "Tension reinforcement area As (in²) [required]")
	beamAnalyzeCmd.Flags().Float64Var(&beamAnalyzeFc, "fc", 0, "Concrete compressive strength f'c (psi) [default 4000 or ACI318_FC]")
	beamAnalyzeCmd.Flags().Float64Var(&beamAnalyzeFy, "fy", 0, "Steel yield strength fy (psi) [default 60000 or ACI318_FY]")

	beamAnalyzeCmd.MarkFlagRequired("width")
	beamAnalyzeCmd.MarkFlagRequired("depth")
	beamAnalyzeCmd.MarkFlagRequired("as")
}

func runBeamAnalyze(cmd *cobra.Command, args []string) error {
	b := newClosedForm(beamAnalyzeWidth, beamAnalyzeDepth, beamAnalyzeFc, beamAnalyzeFy)
	result, err := b.Analyze(beamAnalyzeAs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "SINGLY REINFORCED BEAM ANALYSIS - ACI 318-19")
	printClosedFormInput(out, b)

	printHeading(out, "REINFORCEMENT RATIOS:")
	w := newTable(out)
	fmt.Fprintf(w, "  ρ_min:\t%.6f\n", result.RhoMin)
	fmt.Fprintf(w, "  ρ_bal:\t%.6f\n", result.RhoBalanced)
	fmt.Fprintf(w, "  ρ_actual:\t%.6f %s\n", result.Rho, okMark(result.MeetsMinReinf))
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "SECTION PROPERTIES:")
	w = newTable(out)
	fmt.Fprintf(w, "  β₁:\t%.4f\n", result.Beta1)
	fmt.Fprintf(w, "  Compression block depth (a):\t%.3f in\n", result.A)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.3f in\n", result.C)
	fmt.Fprintf(w, "  c/d ratio:\t%.4f\n", result.C/b.EffectiveDepth)
	fmt.Fprintf(w, "  Tensile strain (εt):\t%.6f\n", result.EpsilonT)
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f\n", result.Phi)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "MOMENT CAPACITY:")
	fmt.Fprintf(out, "  Mn  = %.2f kip-ft\n", result.Mn/12000)
	fmt.Fprintf(out, "  φMn = %.2f kip-ft\n", result.PhiMn/12000)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s\n\n", result.Message)
	return nil
}

// newClosedForm builds the closed-form beam, taking unset materials from
// the environment defaults.
func newClosedForm(width, d, fc, fy float64) *beam.SinglyReinforced {
	if fc <= 0 {
		fc = defaults.Fc
	}
	if fy <= 0 {
		fy = defaults.Fy
	}
	b := beam.NewSinglyReinforced(width, d, fc, fy)
	b.Es = defaults.Es
	return b
}
