package cmd

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/shear"
	"github.com/spf13/cobra"
)

var (
	shearSection     sectionFlags
	shearVu          float64
	shearStirrupSize string
	shearLegs        int
)

var shearCmd = &cobra.Command{
	Use:   "shear",
	Short: "Check shear strength or design stirrup spacing",
	Long: `Compute the one-way shear strength of a rectangular section per
ACI 318-19 22.5, or select the stirrup spacing for a factored shear.

With --stirrup the given stirrup sets are checked: Vc = 2√f'c·b·d,
Vs = Av·fyt·d/s capped at 8√f'c·b·d, and the spacing limits of 9.7.6.2.2.

With --vu the spacing of --stirrup-size stirrups with --legs legs is
chosen from the strength, minimum-Av and maximum-spacing limits,
rounded down to 0.5 in.

Examples:
  aci318 shear -b 12 --height 18 -t "3-#8@16.5" -s "#3x2@6"
  aci318 shear -b 12 --height 18 -t "3-#8@16.5" --vu 40
  aci318 shear --file b1.json --vu 25 --stirrup-size "#4" --legs 2`,
	RunE: runShear,
}

func init() {
	rootCmd.AddCommand(shearCmd)

	shearSection.register(shearCmd)
	shearCmd.Flags().Float64Var(&shearVu, "vu", 0, "Factored shear Vu (kips); selects stirrup spacing")
	shearCmd.Flags().StringVar(&shearStirrupSize, "stirrup-size", "#3", "Stirrup bar size for --vu")
	shearCmd.Flags().IntVar(&shearLegs, "legs", 2, "Stirrup legs for --vu")
}

func runShear(cmd *cobra.Command, args []string) error {
	sec, err := shearSection.section()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if shearVu <= 0 {
		if len(sec.Stirrups) == 0 {
			return errors.New("provide --stirrup to check or --vu to design")
		}
		printTitle(out, "SHEAR STRENGTH - ACI 318-19")
		printSectionInput(out, sec)
		r := shear.Analyze(sec, sec.Stirrups)
		printShear(out, r)
		printNotes(out, r.Warnings, nil)
		return nil
	}

	size, err := rebar.Parse(shearStirrupSize)
	if err != nil {
		return err
	}
	sel, err := shear.Design(sec, shearVu*1000, size, shearLegs)
	if err != nil {
		return err
	}
	logger.Debug("stirrups selected", "vu_kips", shearVu, "stirrup", sel.Stirrup.String(), "min_governs", sel.MinGoverns)

	printTitle(out, "STIRRUP DESIGN - ACI 318-19")
	printSectionInput(out, sec)

	printHeading(out, "DESIGN:")
	w := newTable(out)
	fmt.Fprintf(w, "  Factored shear (Vu):\t%.2f kips\n", shearVu)
	fmt.Fprintf(w, "  Concrete (Vc):\t%.2f kips\n", sel.Result.VcKips())
	fmt.Fprintf(w, "  Required Vs = Vu/φ - Vc:\t%.2f kips\n", sel.VsRequired/1000)
	governs := "strength"
	if sel.MinGoverns {
		governs = "minimum Av / maximum spacing"
	}
	fmt.Fprintf(w, "  Spacing governed by:\t%s\n", governs)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  USE %s x%d legs @ %g in\n\n", sel.Stirrup.Size, sel.Stirrup.Legs, sel.Stirrup.Spacing)
	printShear(out, sel.Result)
	printNotes(out, sel.Result.Warnings, nil)
	return nil
}
