package diagram

import (
	"fmt"
	"math"
	"strings"
)

const (
	asciiWidth  = 30
	asciiHeight = 20
)

// row maps a depth from the top onto a drawing row.
func row(depth, height float64, rows int) int {
	if height <= 0 {
		return 0
	}
	r := int(math.Round(depth / height * float64(rows)))
	return min(max(r, 0), rows)
}

// DrawSection creates a text drawing of the section with the stress
// block, the bar layers and the strain at each layer.
func DrawSection(d Data) string {
	var sb strings.Builder

	naLine := row(d.NeutralAxisDepth, d.Height, asciiHeight)
	aLine := row(d.StressBlockDepth, d.Height, asciiHeight)

	bars := map[int][]Bar{}
	for _, b := range d.Bars {
		i := row(b.Depth, d.Height, asciiHeight)
		i = min(max(i, 1), asciiHeight-1)
		bars[i] = append(bars[i], b)
	}

	sb.WriteString("\n")
	sb.WriteString("  SECTION                           STRAIN / STRESS\n")
	sb.WriteString("  ───────                           ───────────────\n")

	for i := 0; i <= asciiHeight; i++ {
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", asciiWidth)))
		case asciiHeight:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", asciiWidth)))
		default:
			fill := []rune(strings.Repeat(" ", asciiWidth))
			if i <= aLine {
				fill = []rune(strings.Repeat("░", asciiWidth))
			}
			if layer, ok := bars[i]; ok {
				n := min(layer[0].Qty, asciiWidth/3)
				gap := asciiWidth / (n + 1)
				for k := 1; k <= n; k++ {
					fill[k*gap] = '●'
				}
			}
			sb.WriteString(fmt.Sprintf("  │%s│", string(fill)))
		}

		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  εcu = %.4f  0.85f'c = %.0f psi", d.EpsilonCU, d.ConcreteStress))
		case bars[i] != nil:
			for _, b := range bars[i] {
				yield := ""
				if b.Yielded {
					yield = " (yields)"
				}
				sb.WriteString(fmt.Sprintf("  %s  ε = %+.5f  fs = %+.0f psi%s", b.Label, b.Strain, b.Stress, yield))
			}
		case i == naLine:
			sb.WriteString("  ◄─ N.A.  ε = 0")
		case i == aLine && aLine > 0:
			sb.WriteString("  ◄─ a")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString("  ░░░ = compression block    ● = bars\n")
	sb.WriteString(fmt.Sprintf("  c = %.3f in    a = %.3f in    φMn = %.2f kip-ft\n",
		d.NeutralAxisDepth, d.StressBlockDepth, d.PhiMnKipFt))
	return sb.String()
}

// DrawStrain creates a text strain distribution, one bar per row scaled to
// the largest strain, compression to the top.
func DrawStrain(d Data) string {
	var sb strings.Builder

	const rows, span = 15, 30
	maxStrain := math.Max(d.EpsilonCU, math.Abs(d.strainAt(d.Height)))
	if maxStrain <= 0 {
		maxStrain = d.EpsilonCU
	}
	scale := float64(span) / maxStrain

	naLine := row(d.NeutralAxisDepth, d.Height, rows)
	steelLine := row(deepest(d), d.Height, rows)

	sb.WriteString("\n")
	sb.WriteString("  STRAIN DISTRIBUTION\n")
	sb.WriteString("  ───────────────────\n\n")

	for i := 0; i <= rows; i++ {
		y := float64(i) / rows * d.Height
		n := int(math.Abs(d.strainAt(y)) * scale)
		bar := strings.Repeat("█", n)
		switch {
		case i == 0:
			sb.WriteString(fmt.Sprintf("  Top    │%s▶ εcu=%.4f\n", bar, d.EpsilonCU))
		case i == naLine:
			sb.WriteString("  N.A.   ├───── (ε=0)\n")
		case i == steelLine:
			sb.WriteString(fmt.Sprintf("  Steel  │%s▶ εt=%.4f\n", bar, d.EpsilonT))
		case i == rows:
			sb.WriteString(fmt.Sprintf("  Bottom │%s\n", bar))
		default:
			sb.WriteString(fmt.Sprintf("         │%s\n", bar))
		}
	}

	yieldBar := int(d.EpsilonY * scale)
	sb.WriteString(fmt.Sprintf("\n  εy = %.4f %s┤ (yield strain)\n", d.EpsilonY, strings.Repeat("─", yieldBar)))
	return sb.String()
}

// deepest is the depth of the lowest tension layer.
func deepest(d Data) float64 {
	var y float64
	for _, b := range d.Bars {
		if !b.Compression && b.Depth > y {
			y = b.Depth
		}
	}
	return y
}

// DrawSummaryBox creates a framed box of result lines.
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := len([]rune(title))
	for _, line := range lines {
		width = max(width, len([]rune(line)))
	}
	width += 4

	border := strings.Repeat("═", width)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, width-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, width-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))
	return sb.String()
}

// pad right-pads s to n runes; %-*s counts bytes and misaligns Greek text.
func pad(s string, n int) string {
	if k := len([]rune(s)); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
