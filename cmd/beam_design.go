package cmd

import (
	"fmt"
	"io"
	"math"

	"github.com/alexiusacademia/aci318/internal/beam"
	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/spf13/cobra"
)

var (
	// Design inputs
	beamDesignWidth float64
	beamDesignDepth float64
	beamDesignFc    float64
	beamDesignFy    float64
	beamDesignMu    float64
)

var beamDesignCmd = &cobra.Command{
	Use:   "design",
	Short: "Design reinforcement for a singly reinforced beam",
	Long: `Calculate the required tension reinforcement area (As) for a
singly reinforced rectangular beam given the factored moment (Mu).

  Rn = Mu / (φ·b·d²)
  ρ  = (0.85·f'c/fy)·(1 - √(1 - 2·Rn/(0.85·f'c)))

The result is checked against ρmin (9.6.1.2) and the tension-controlled
limit εt ≥ 0.005 (21.2.2).

Examples:
  aci318 beam design --width 12 --depth 16.5 --mu 150
  aci318 beam design -b 12 -d 16.5 --fc 5000 -m 150`,
	RunE: runBeamDesign,
}

func init() {
	beamCmd.AddCommand(beamDesignCmd)

	beamDesignCmd.Flags().Float64VarP(&beamDesignWidth, "width", "b", 0, "Beam width (in) [required]")
	beamDesignCmd.Flags().Float64VarP(&beamDesignDepth, "depth", "d", 0, "Effective depth d (in) [required]")
	beamDesignCmd.Flags().Float64Var(&beamDesignFc, "fc", 0, "Concrete compressive strength f'c (psi) [default 4000 or ACI318_FC]")
	beamDesignCmd.Flags().Float64Var(&beamDesignFy, "fy", 0, "Steel yield strength fy (psi) [default 60000 or ACI318_FY]")
	beamDesignCmd.Flags().Float64VarP(&beamDesignMu, "mu", "m", 0, "Factored moment Mu (kip-ft) [required]")

	beamDesignCmd.MarkFlagRequired("width")
	beamDesignCmd.MarkFlagRequired("depth")
	beamDesignCmd.MarkFlagRequired("mu")
}

func runBeamDesign(cmd *cobra.Command, args []string) error {
	b := newClosedForm(beamDesignWidth, beamDesignDepth, beamDesignFc, beamDesignFy)
	result, err := b.Design(beamDesignMu * 12000)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "SINGLY REINFORCED BEAM DESIGN - ACI 318-19")
	printClosedFormInput(out, b)
	fmt.Fprintf(out, "  Factored moment (Mu): %.2f kip-ft\n\n", beamDesignMu)

	printHeading(out, "REINFORCEMENT RATIOS:")
	w := newTable(out)
	fmt.Fprintf(w, "  ρ_min:\t%.6f\n", result.RhoMin)
	fmt.Fprintf(w, "  ρ_max (tension-controlled):\t%.6f\n", result.RhoMax)
	fmt.Fprintf(w, "  ρ_bal:\t%.6f\n", result.RhoBalanced)
	fmt.Fprintf(w, "  ρ_required:\t%.6f\n", result.RhoRequired)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "STEEL AREA LIMITS:")
	w = newTable(out)
	fmt.Fprintf(w, "  As,min:\t%.3f in²\n", result.AsMin)
	fmt.Fprintf(w, "  As,max:\t%.3f in² (φMn,max = %.2f kip-ft)\n", result.AsMax, result.PhiMnMax/12000)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "DESIGN RESULT:")
	if !result.IsAdequate {
		fmt.Fprintln(out, "  ╔═════════════════════════════════════════╗")
		fmt.Fprintln(out, "  ║  DESIGN NOT ADEQUATE                    ║")
		fmt.Fprintln(out, "  ╚═════════════════════════════════════════╝")
		fmt.Fprintf(out, "\n  %s\n", result.Message)
		fmt.Fprintln(out, "  Try 'aci318 beam doubly' or a larger section.")
		fmt.Fprintln(out)
		return nil
	}

	w = newTable(out)
	fmt.Fprintf(w, "  Required As:\t%.3f in²\n", result.AsProvided)
	fmt.Fprintf(w, "  Compression block depth (a):\t%.3f in\n", result.A)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.3f in\n", result.C)
	fmt.Fprintf(w, "  Tensile strain (εt):\t%.6f\n", result.EpsilonT)
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f\n", result.Phi)
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  φMn = %.2f kip-ft ≥ Mu = %.2f kip-ft ✓\n", result.PhiMn/12000, beamDesignMu)
	fmt.Fprintf(out, "  Status: %s\n\n", result.Message)

	printBarSuggestions(out, result.AsProvided, b.Width)
	return nil
}

func printClosedFormInput(out io.Writer, b *beam.SinglyReinforced) {
	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	fmt.Fprintf(w, "  Beam width (b):\t%g in\n", b.Width)
	fmt.Fprintf(w, "  Effective depth (d):\t%g in\n", b.EffectiveDepth)
	fmt.Fprintf(w, "  f'c:\t%.0f psi\n", b.Fc)
	fmt.Fprintf(w, "  fy:\t%.0f psi\n", b.Fy)
	w.Flush()
	fmt.Fprintln(out)
}

// printBarSuggestions lists, per bar size, the fewest bars providing
// asRequired and whether they fit one layer of the width.
func printBarSuggestions(out io.Writer, asRequired, width float64) {
	printHeading(out, "SUGGESTED BAR COMBINATIONS:")

	w := newTable(out)
	fmt.Fprintf(w, "  Bars\tAs provided\tRatio\tOne layer\n")
	fmt.Fprintf(w, "  ────\t───────────\t─────\t─────────\n")
	for _, size := range rebar.Range(rebar.No5, rebar.No11) {
		count := int(math.Ceil(asRequired/size.Area() - 1e-9))
		if count < 2 || count > 8 {
			continue
		}
		area := float64(count) * size.Area()
		fits := section.FitsWidth(width, defaults.SideCover, defaults.ClearSpacing, size, count)
		fmt.Fprintf(w, "  %d-%s\t%.2f in²\t%.2f\t%s\n", count, size, area, area/asRequired, yesNo(fits))
	}
	w.Flush()
	fmt.Fprintln(out)
}
