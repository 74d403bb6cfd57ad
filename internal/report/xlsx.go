// Package report exports design results to spreadsheets and PDF, and
// imports batches of sections from spreadsheets.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/aci318/internal/flexure"
	"github.com/alexiusacademia/aci318/internal/section"
)

// Meta describes the run a report belongs to.
type Meta struct {
	Title   string
	Project string
	MuKipFt float64
	VuKips  float64
}

const (
	designSheet = "Designs"
	inputSheet  = "Input"
)

var designHeader = []string{
	"#", "b (in)", "h (in)", "Tension", "Compression", "Stirrups",
	"AsT (in2)", "AsC (in2)", "c (in)", "et", "phi", "phiMn (kip-ft)",
	"phiVn (kips)", "Warnings",
}

// Row flattens a result into the exported columns.
func Row(i int, r *flexure.Result) []any {
	s := r.Section
	stirrups := ""
	if len(s.Stirrups) > 0 {
		stirrups = section.StirrupNotation(s.Stirrups[0])
	}
	var phiVn any = ""
	if r.Shear != nil {
		phiVn = round(r.Shear.PhiVnKips(), 2)
	}
	return []any{
		i + 1, s.Width, s.Height,
		section.Notation(s.Tension), section.Notation(s.Compression), stirrups,
		round(s.AsT(), 3), round(s.AsC(), 3), round(r.C, 3), round(r.EpsilonT, 5),
		round(r.Phi, 3), round(r.PhiMnKipFt(), 2), phiVn,
		strings.Join(r.Warnings(), "; "),
	}
}

func round(v float64, places int) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return f
}

// WriteXLSX writes the designs to an Excel workbook with a Designs sheet
// and an Input sheet holding the demand.
func WriteXLSX(w io.Writer, meta Meta, results []*flexure.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", designSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeRow(f, designSheet, 1, toAny(designHeader)); err != nil {
		return err
	}
	if err := f.SetRowStyle(designSheet, 1, 1, bold); err != nil {
		return err
	}
	for i, r := range results {
		if err := writeRow(f, designSheet, i+2, Row(i, r)); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(designSheet, "D", "F", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(designSheet, "N", "N", 60); err != nil {
		return err
	}
	if err := f.SetPanes(designSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return err
	}

	if _, err := f.NewSheet(inputSheet); err != nil {
		return err
	}
	input := [][]any{
		{"Title", meta.Title},
		{"Project", meta.Project},
		{"Mu (kip-ft)", meta.MuKipFt},
		{"Vu (kips)", meta.VuKips},
		{"Designs", len(results)},
	}
	for i, row := range input {
		if err := writeRow(f, inputSheet, i+1, row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// ImportError reports a spreadsheet row that could not be turned into a
// section.
type ImportError struct {
	Row int
	Err error
}

func (e *ImportError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

func (e *ImportError) Unwrap() error { return e.Err }

// ReadSections imports sections from the first sheet of a workbook. The
// first row is a header; the columns are name, width, height, f'c, fy,
// tension layers, compression layers and stirrup, with layers written as
// "3-#8@16" and the stirrup as "#3x2@6". Empty material cells take the
// defaults. Bad rows are reported and skipped.
func ReadSections(r io.Reader) ([]section.Section, []error, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var (
		out  []section.Section
		errs []error
	)
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		s, err := parseRow(rows[i])
		if err != nil {
			errs = append(errs, &ImportError{Row: i + 1, Err: err})
			continue
		}
		out = append(out, s)
	}
	return out, errs, nil
}

func parseRow(row []string) (section.Section, error) {
	col := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	num := func(i int, name string, def float64) (float64, error) {
		v := col(i)
		if v == "" {
			if def > 0 {
				return def, nil
			}
			return 0, fmt.Errorf("%s is required", name)
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return x, nil
	}

	width, err := num(1, "width", 0)
	if err != nil {
		return section.Section{}, err
	}
	height, err := num(2, "height", 0)
	if err != nil {
		return section.Section{}, err
	}
	fc, err := num(3, "fc", section.DefaultFc)
	if err != nil {
		return section.Section{}, err
	}
	fy, err := num(4, "fy", section.DefaultFy)
	if err != nil {
		return section.Section{}, err
	}

	s := section.New(width, height, section.WithMaterials(fc, fy))
	s.Name = col(0)
	if s.Tension, err = section.ParseLayers(col(5)); err != nil {
		return section.Section{}, err
	}
	if len(s.Tension) == 0 {
		return section.Section{}, fmt.Errorf("tension layers are required")
	}
	if s.Compression, err = section.ParseLayers(col(6)); err != nil {
		return section.Section{}, err
	}
	if v := col(7); v != "" {
		st, err := section.ParseStirrup(v)
		if err != nil {
			return section.Section{}, err
		}
		s.Stirrups = []section.Stirrup{st}
	}
	if err := s.Validate(); err != nil {
		return section.Section{}, err
	}
	return s, nil
}
