package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/aci318/internal/flexure"
	"github.com/alexiusacademia/aci318/internal/section"
)

var pdfColumns = []struct {
	title string
	width float64
}{
	{"#", 8},
	{"b x h (in)", 22},
	{"Tension", 52},
	{"Compression", 36},
	{"Stirrups", 22},
	{"phiMn (k-ft)", 24},
	{"et", 16},
}

// WritePDF renders a design summary table. Core PDF fonts have no
// Unicode glyphs, so labels are spelled out (phi, et).
func WritePDF(w io.Writer, meta Meta, results []*flexure.Result) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	title := meta.Title
	if title == "" {
		title = "Beam design summary"
	}
	pdf.Cell(0, 8, title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 10)
	if meta.Project != "" {
		pdf.Cell(0, 6, "Project: "+meta.Project)
		pdf.Ln(6)
	}
	demand := fmt.Sprintf("Mu = %.2f kip-ft", meta.MuKipFt)
	if meta.VuKips > 0 {
		demand += fmt.Sprintf("    Vu = %.2f kips", meta.VuKips)
	}
	pdf.Cell(0, 6, demand)
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%d design(s)", len(results)))
	pdf.Ln(10)

	if len(results) == 0 {
		pdf.Cell(0, 6, "No feasible design found.")
		return pdf.Output(w)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, c := range pdfColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	var notes []string
	for i, r := range results {
		s := r.Section
		stirrups := "-"
		if len(s.Stirrups) > 0 {
			stirrups = section.StirrupNotation(s.Stirrups[0])
		}
		compression := section.Notation(s.Compression)
		if compression == "" {
			compression = "-"
		}
		cells := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%g x %g", s.Width, s.Height),
			section.Notation(s.Tension),
			compression,
			stirrups,
			fmt.Sprintf("%.2f", r.PhiMnKipFt()),
			fmt.Sprintf("%.4f", r.EpsilonT),
		}
		for j, c := range pdfColumns {
			align := "L"
			if j == 0 || j >= 5 {
				align = "R"
			}
			pdf.CellFormat(c.width, 6, cells[j], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)

		for _, warn := range r.Warnings() {
			notes = append(notes, fmt.Sprintf("%d: %s", i+1, ascii(warn)))
		}
	}

	if len(notes) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, "Warnings")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, strings.Join(notes, "\n"), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

var asciiReplacer = strings.NewReplacer(
	"φ", "phi", "ε", "e", "ρ", "rho", "β", "beta", "≥", ">=", "≤", "<=", "′", "'",
)

// ascii replaces the Greek letters used in warnings.
func ascii(s string) string { return asciiReplacer.Replace(s) }
