package cmd

import (
	"fmt"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/spf13/cobra"
)

var (
	proportionSpan    float64
	proportionMember  string
	proportionExposed bool
	proportionEarth   bool
	proportionAgg     float64
	proportionBar     float64
)

var proportionCmd = &cobra.Command{
	Use:   "proportion",
	Short: "Suggest preliminary member dimensions and detailing limits",
	Long: `Suggest a first-guess width and depth for a member from its span and
print the specified cover and minimum bar spacing that apply to it.

Beams use the simply supported depth of Table 9.3.1.1 (L/16) with a
width of about half the depth. Slabs and walls are sized per 12 in. strip.

Members: beam, slab, one-way-slab, two-way-slab, wall, retaining-wall,
column, joist.

Examples:
  aci318 proportion --span 24
  aci318 proportion --span 12 --member two-way-slab --exposed`,
	RunE: runProportion,
}

func init() {
	rootCmd.AddCommand(proportionCmd)

	proportionCmd.Flags().Float64VarP(&proportionSpan, "span", "L", 0, "Span, wall height or unbraced length (ft) [required]")
	proportionCmd.Flags().StringVar(&proportionMember, "member", "beam", "Member type")
	proportionCmd.Flags().BoolVar(&proportionExposed, "exposed", false, "Exposed to weather or in contact with ground")
	proportionCmd.Flags().BoolVar(&proportionEarth, "cast-against-earth", false, "Cast against and permanently in contact with ground")
	proportionCmd.Flags().Float64Var(&proportionAgg, "aggregate", 0.75, "Nominal maximum aggregate size (in)")
	proportionCmd.Flags().Float64Var(&proportionBar, "bar-diameter", 1.0, "Longitudinal bar diameter for the spacing check (in)")
	proportionCmd.MarkFlagRequired("span")
}

func runProportion(cmd *cobra.Command, args []string) error {
	member, err := aci.ParseMemberType(proportionMember)
	if err != nil {
		return err
	}
	if proportionSpan <= 0 {
		return fmt.Errorf("span must be positive, got %g", proportionSpan)
	}

	width, depth := aci.ProportionDimensions(proportionSpan, member)
	cover, coverRef := aci.MinCoverCIP(member, aci.Longitudinal, proportionEarth, proportionExposed)
	stirrupCover, stirrupRef := aci.MinCoverCIP(member, aci.Stirrup, proportionEarth, proportionExposed)
	clear, clearRef := aci.MinHorizontalClearSpacing(proportionBar, proportionAgg, aci.Longitudinal, member)
	vertical, verticalRef := aci.MinVerticalClearSpacing()

	out := cmd.OutOrStdout()
	printTitle(out, "PRELIMINARY PROPORTIONING - ACI 318-19")

	printHeading(out, "DIMENSIONS:")
	w := newTable(out)
	fmt.Fprintf(w, "  Member:\t%s\n", member)
	fmt.Fprintf(w, "  Span:\t%g ft\n", proportionSpan)
	fmt.Fprintf(w, "  Width:\t%g in\n", width)
	fmt.Fprintf(w, "  Depth:\t%g in\n", depth)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "DETAILING LIMITS:")
	w = newTable(out)
	fmt.Fprintf(w, "  Cover, primary bars:\t%g in\t%s\n", cover, coverRef)
	fmt.Fprintf(w, "  Cover, stirrups and ties:\t%g in\t%s\n", stirrupCover, stirrupRef)
	fmt.Fprintf(w, "  Clear spacing in a layer:\t%.3f in\t%s\n", clear, clearRef)
	fmt.Fprintf(w, "  Clear spacing between layers:\t%g in\t%s\n", vertical, verticalRef)
	w.Flush()
	fmt.Fprintln(out)

	if member == aci.Beam {
		fmt.Fprintf(out, "  Next: aci318 design --mu <Mu> --min-width %g --max-width %g --min-height %g --max-height %g\n\n",
			width, width+6, depth-4, depth+6)
	}
	return nil
}
