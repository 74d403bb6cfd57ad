package cmd

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/beam"
	"github.com/spf13/cobra"
)

var (
	// Doubly design inputs
	beamDoublyWidth     float64
	beamDoublyDepth     float64
	beamDoublyDPrime    float64
	beamDoublyFc        float64
	beamDoublyFy        float64
	beamDoublyMu        float64
	beamDoublyMinStrain float64
)

var beamDoublyCmd = &cobra.Command{
	Use:   "doubly",
	Short: "Split a moment between the concrete couple and compression steel",
	Long: `Calculate the tension (As) and compression (A's) reinforcement for a
doubly reinforced rectangular beam given the factored moment (Mu).

The concrete couple is taken at the strain limit (εt = 0.005 by default).
The remainder is carried by a steel couple with lever arm d - d'. When Mu
fits within the concrete couple no compression steel is required.

Examples:
  aci318 beam doubly --width 12 --depth 17.5 --dprime 2.5 --mu 300
  aci318 beam doubly -b 12 -d 17.5 --dprime 2.5 -m 300 --min-strain 0.004`,
	RunE: runBeamDoubly,
}

func init() {
	beamCmd.AddCommand(beamDoublyCmd)

	beamDoublyCmd.Flags().Float64VarP(&beamDoublyWidth, "width", "b", 0, "Beam width (in) [required]")
	beamDoublyCmd.Flags().Float64VarP(&beamDoublyDepth, "depth", "d", 0, "Effective depth d (in) [required]")
	beamDoublyCmd.Flags().Float64Var(&beamDoublyDPrime, "dprime", 2.5, "Depth to compression steel centroid d' (in)")
	beamDoublyCmd.Flags().Float64Var(&beamDoublyFc, "fc", 0, "Concrete compressive strength f'c (psi) [default 4000 or ACI318_FC]")
	beamDoublyCmd.Flags().Float64Var(&beamDoublyFy, "fy", 0, "Steel yield strength fy (psi) [default 60000 or ACI318_FY]")
	beamDoublyCmd.Flags().Float64VarP(&beamDoublyMu, "mu", "m", 0, "Factored moment Mu (kip-ft) [required]")
	beamDoublyCmd.Flags().Float64Var(&beamDoublyMinStrain, "min-strain", aci.EpsilonTC, "Tensile strain limit for the concrete couple")

	beamDoublyCmd.MarkFlagRequired("width")
	beamDoublyCmd.MarkFlagRequired("depth")
	beamDoublyCmd.MarkFlagRequired("mu")
}

func runBeamDoubly(cmd *cobra.Command, args []string) error {
	singly := newClosedForm(beamDoublyWidth, beamDoublyDepth, beamDoublyFc, beamDoublyFy)
	b := &beam.DoublyReinforced{SinglyReinforced: *singly, CoverComp: beamDoublyDPrime}

	result, err := b.Design(beamDoublyMu*12000, beamDoublyMinStrain)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printTitle(out, "DOUBLY REINFORCED BEAM DESIGN - ACI 318-19")
	printClosedFormInput(out, singly)

	printHeading(out, "DESIGN DETERMINATION:")
	w := newTable(out)
	fmt.Fprintf(w, "  Compression steel depth (d'):\t%g in\n", b.CoverComp)
	fmt.Fprintf(w, "  Strain limit (εt):\t%.4f\n", beamDoublyMinStrain)
	fmt.Fprintf(w, "  Max φMn (concrete couple):\t%.2f kip-ft\n", result.Mu1/12000)
	fmt.Fprintf(w, "  Required Mu:\t%.2f kip-ft\n", beamDoublyMu)
	if result.RequiresCompSteel {
		fmt.Fprintf(w, "  Design type:\tDOUBLY REINFORCED REQUIRED\n")
	} else {
		fmt.Fprintf(w, "  Design type:\tSingly reinforced adequate\n")
	}
	w.Flush()
	fmt.Fprintln(out)

	if !result.RequiresCompSteel {
		fmt.Fprintf(out, "  %s\n", result.Message)
		fmt.Fprintf(out, "  Run 'aci318 beam design --width %g --depth %g --mu %g' for As.\n\n",
			b.Width, b.EffectiveDepth, beamDoublyMu)
		return nil
	}

	printHeading(out, "MOMENT DISTRIBUTION:")
	w = newTable(out)
	fmt.Fprintf(w, "  Mu1 (concrete couple):\t%.2f kip-ft\n", result.Mu1/12000)
	fmt.Fprintf(w, "  Mu2 (steel couple):\t%.2f kip-ft\n", result.Mu2/12000)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "COMPRESSION STEEL CHECK:")
	w = newTable(out)
	fmt.Fprintf(w, "  c (at strain limit):\t%.3f in\n", result.CMax)
	fmt.Fprintf(w, "  a (at strain limit):\t%.3f in\n", result.AMax)
	fmt.Fprintf(w, "  ε's:\t%.6f\n", result.EpsilonSc)
	fmt.Fprintf(w, "  εy:\t%.6f\n", b.Fy/b.Es)
	if result.CompYielded {
		fmt.Fprintf(w, "  Compression steel:\tYIELDS (f's = fy = %.0f psi)\n", b.Fy)
	} else {
		fmt.Fprintf(w, "  Compression steel:\tDOES NOT YIELD (f's = %.0f psi)\n", result.FscStress)
	}
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "DESIGN RESULT:")
	w = newTable(out)
	fmt.Fprintf(w, "  As1 (for Mu1):\t%.3f in²\n", result.As1)
	fmt.Fprintf(w, "  As2 (for Mu2):\t%.3f in²\n", result.As2)
	fmt.Fprintf(w, "  Tension steel As:\t%.3f in²\n", result.AsTotal)
	if math.IsInf(result.AscRequired, 1) {
		fmt.Fprintf(w, "  Compression steel A's:\tnot effective\n")
	} else {
		fmt.Fprintf(w, "  Compression steel A's:\t%.3f in² (at least %.3f in²)\n", result.AscRequired, result.AscMin)
	}
	w.Flush()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  Status: %s\n\n", result.Message)

	if math.IsInf(result.AscRequired, 1) {
		return nil
	}
	fmt.Fprintln(out, "  Tension steel:")
	printBarSuggestions(out, result.AsTotal, b.Width)
	fmt.Fprintln(out, "  Compression steel:")
	printBarSuggestions(out, result.AscRequired, b.Width)
	return nil
}
