package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/aci318/internal/flexure"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/alexiusacademia/aci318/internal/shear"
)

const rule = "───────────────────────────────────────────────────────────────"

func printTitle(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printHeading(out io.Writer, heading string) {
	fmt.Fprintln(out, heading)
	fmt.Fprintln(out, rule)
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func printSectionInput(out io.Writer, s section.Section) {
	printHeading(out, "INPUT DATA:")
	w := newTable(out)
	if s.Name != "" {
		fmt.Fprintf(w, "  Name:\t%s\n", s.Name)
	}
	fmt.Fprintf(w, "  Width (b):\t%g in\n", s.Width)
	fmt.Fprintf(w, "  Height (h):\t%g in\n", s.Height)
	fmt.Fprintf(w, "  Effective depth (d):\t%.3f in\n", s.EffectiveDepth())
	fmt.Fprintf(w, "  f'c:\t%.0f psi\n", s.Fc)
	fmt.Fprintf(w, "  fy:\t%.0f psi\n", s.Fy)
	fmt.Fprintf(w, "  Es:\t%.0f psi\n", s.Es)
	fmt.Fprintf(w, "  Tension steel:\t%s (%.3f in²)\n", orNone(section.Notation(s.Tension)), s.AsT())
	fmt.Fprintf(w, "  Compression steel:\t%s (%.3f in²)\n", orNone(section.Notation(s.Compression)), s.AsC())
	w.Flush()
	fmt.Fprintln(out)
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func printAnalysis(out io.Writer, r *flexure.Result) {
	printSectionInput(out, r.Section)

	printHeading(out, "REINFORCEMENT LAYERS:")
	w := newTable(out)
	fmt.Fprintf(w, "  Layer\tKind\tStrain\tStress (psi)\tForce (kips)\tYields\n")
	fmt.Fprintf(w, "  ─────\t────\t──────\t────────────\t────────────\t──────\n")
	for _, l := range r.Layers {
		fmt.Fprintf(w, "  %s\t%s\t%+.5f\t%+.0f\t%+.2f\t%s\n",
			l.Layer, l.Kind, l.Strain, l.Stress, l.Force/1000, yesNo(l.Yielded))
	}
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "SECTION ANALYSIS:")
	w = newTable(out)
	fmt.Fprintf(w, "  Neutral axis depth (c):\t%.3f in\n", r.C)
	fmt.Fprintf(w, "  Stress block depth (a = β1·c):\t%.3f in (β1 = %.3f)\n", r.A, r.Beta1)
	fmt.Fprintf(w, "  Concrete compression (Cc):\t%.2f kips\n", r.Cc/1000)
	fmt.Fprintf(w, "  Net tensile strain (εt):\t%.5f at dt = %.3f in\n", r.EpsilonT, r.DepthEpsilonT)
	fmt.Fprintf(w, "  Section status:\t%s\n", r.Class)
	fmt.Fprintf(w, "  Strength reduction factor (φ):\t%.3f\n", r.Phi)
	fmt.Fprintf(w, "  ρ = As/(b·d):\t%.5f\n", r.Rho)
	fmt.Fprintf(w, "  ρb / ρmin:\t%.5f / %.5f\n", r.RhoBalanced, r.RhoMin)
	fmt.Fprintf(w, "  Solver iterations:\t%d\n", r.Iterations)
	w.Flush()
	fmt.Fprintln(out)

	printHeading(out, "RESULT:")
	fmt.Fprintf(out, "  Mn  = %.2f kip-ft\n", r.MnKipFt())
	fmt.Fprintf(out, "  φMn = %.2f kip-ft\n", r.PhiMnKipFt())
	fmt.Fprintln(out)

	if r.Shear != nil {
		printShear(out, *r.Shear)
	}
	printNotes(out, r.Warnings(), r.Trail.Notes)
}

func printShear(out io.Writer, s shear.Result) {
	printHeading(out, "SHEAR:")
	w := newTable(out)
	fmt.Fprintf(w, "  Vc = 2λ√f'c·b·d:\t%.2f kips\n", s.VcKips())
	for _, l := range s.Layers {
		capped := ""
		if l.Capped {
			capped = " (capped at Vs,max)"
		}
		fmt.Fprintf(w, "  %s:\tVs = %.2f kips%s, s,max = %g in %s\n",
			section.StirrupNotation(l.Stirrup), l.Vs/1000, capped, l.MaxSpacing, okMark(l.SpacingOK))
	}
	fmt.Fprintf(w, "  φVn (φ = %.2f):\t%.2f kips\n", s.Phi, s.PhiVnKips())
	w.Flush()
	fmt.Fprintln(out)
}

func printNotes(out io.Writer, warnings, notes []string) {
	if len(warnings) > 0 {
		printHeading(out, "WARNINGS:")
		for _, m := range warnings {
			fmt.Fprintf(out, "  ⚠ %s\n", m)
		}
		fmt.Fprintln(out)
	}
	if len(notes) > 0 {
		printHeading(out, "NOTES:")
		for _, m := range notes {
			fmt.Fprintf(out, "  • %s\n", m)
		}
		fmt.Fprintln(out)
	}
}

func printDesigns(out io.Writer, results []*flexure.Result) {
	w := newTable(out)
	fmt.Fprintf(w, "  #\tb x h (in)\tTension\tCompression\tStirrups\tφMn (kip-ft)\tεt\tφVn (kips)\n")
	fmt.Fprintf(w, "  ─\t──────────\t───────\t───────────\t────────\t────────────\t──\t──────────\n")
	for i, r := range results {
		s := r.Section
		stirrups, phiVn := "-", "-"
		if len(s.Stirrups) > 0 {
			stirrups = section.StirrupNotation(s.Stirrups[0])
		}
		if r.Shear != nil {
			phiVn = fmt.Sprintf("%.2f", r.Shear.PhiVnKips())
		}
		fmt.Fprintf(w, "  %d\t%g x %g\t%s\t%s\t%s\t%.2f\t%.5f\t%s\n",
			i+1, s.Width, s.Height, section.Notation(s.Tension), orNone(section.Notation(s.Compression)),
			stirrups, r.PhiMnKipFt(), r.EpsilonT, phiVn)
	}
	w.Flush()
	fmt.Fprintln(out)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func okMark(b bool) string {
	if b {
		return "✓"
	}
	return "✗ spacing outside limits"
}
