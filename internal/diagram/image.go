package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	blockFill  = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	blockEdge  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	steelColor = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	naColor    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	yieldColor = color.RGBA{R: 255, G: 165, B: 0, A: 255}
)

// SectionPlot builds the section drawing: outline, compression block,
// neutral axis and one row of bars per layer. Y runs up from the bottom
// face.
func SectionPlot(d Data) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Section Analysis"
	p.X.Label.Text = "Width (in)"
	p.Y.Label.Text = "Height (in)"

	outline, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: 0}, {X: d.Width, Y: 0}, {X: d.Width, Y: d.Height}, {X: 0, Y: d.Height}, {X: 0, Y: 0},
	})
	if err != nil {
		return nil, err
	}
	outline.LineStyle.Width = vg.Points(2)
	outline.LineStyle.Color = color.Black
	p.Add(outline)

	block, err := plotter.NewPolygon(plotter.XYs{
		{X: 0, Y: d.Height},
		{X: d.Width, Y: d.Height},
		{X: d.Width, Y: d.Height - d.StressBlockDepth},
		{X: 0, Y: d.Height - d.StressBlockDepth},
	})
	if err != nil {
		return nil, err
	}
	block.Color = blockFill
	block.LineStyle.Color = blockEdge
	p.Add(block)

	margin := d.Width * 0.15
	naY := d.Height - d.NeutralAxisDepth
	na, err := plotter.NewLine(plotter.XYs{{X: -margin, Y: naY}, {X: d.Width + margin, Y: naY}})
	if err != nil {
		return nil, err
	}
	na.LineStyle.Width = vg.Points(1.5)
	na.LineStyle.Color = naColor
	na.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(na)

	labels := plotter.XYLabels{
		XYs:    []plotter.XY{{X: d.Width + margin, Y: naY}, {X: d.Width + margin, Y: d.Height - d.StressBlockDepth/2}},
		Labels: []string{fmt.Sprintf("c=%.2f", d.NeutralAxisDepth), fmt.Sprintf("a=%.2f", d.StressBlockDepth)},
	}
	for _, b := range d.Bars {
		pts := make(plotter.XYs, b.Qty)
		for k := range pts {
			pts[k] = plotter.XY{X: d.Width * float64(k+1) / float64(b.Qty+1), Y: d.Height - b.Depth}
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = steelColor
		sc.GlyphStyle.Radius = vg.Points(5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)

		labels.XYs = append(labels.XYs, plotter.XY{X: d.Width + margin, Y: d.Height - b.Depth})
		labels.Labels = append(labels.Labels, fmt.Sprintf("As=%.2f", b.Area))
	}
	l, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(l)
	return p, nil
}

// StrainPlot builds the strain profile over the depth with the yield
// strain marked on both sides. Depth runs down from the top.
func StrainPlot(d Data) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Strain Distribution"
	p.X.Label.Text = "Strain (tension +)"
	p.Y.Label.Text = "Height above bottom (in)"

	profile, err := plotter.NewLine(plotter.XYs{
		{X: -d.EpsilonCU, Y: d.Height},
		{X: d.strainAt(d.Height), Y: 0},
	})
	if err != nil {
		return nil, err
	}
	profile.LineStyle.Width = vg.Points(2)
	profile.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	p.Add(profile)

	zero, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 0, Y: d.Height}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Color = color.Gray{Y: 128}
	zero.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(zero)

	for _, x := range []float64{d.EpsilonY, -d.EpsilonY} {
		y, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: d.Height}})
		if err != nil {
			return nil, err
		}
		y.LineStyle.Color = yieldColor
		y.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(y)
	}

	pts := make(plotter.XYs, 0, len(d.Bars)+1)
	pts = append(pts, plotter.XY{X: 0, Y: d.Height - d.NeutralAxisDepth})
	for _, b := range d.Bars {
		pts = append(pts, plotter.XY{X: b.Strain, Y: d.Height - b.Depth})
	}
	keys, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	keys.GlyphStyle.Color = naColor
	keys.GlyphStyle.Radius = vg.Points(4)
	p.Add(keys)
	return p, nil
}

// format returns the image format for a file extension; unknown
// extensions fall back to png.
func format(filename string) string {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")); ext {
	case "png", "svg", "pdf", "jpg", "jpeg", "eps", "tif", "tiff":
		return ext
	default:
		return "png"
	}
}

// WriteSection renders the section plot to w in the given format.
func WriteSection(w io.Writer, d Data, format string) error {
	p, err := SectionPlot(d)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// ExportSection saves the section plot, choosing the format from the
// file extension. A name without a known extension gets ".png".
func ExportSection(d Data, filename string) error {
	p, err := SectionPlot(d)
	if err != nil {
		return err
	}
	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportStrain saves the strain plot.
func ExportStrain(d Data, filename string) error {
	p, err := StrainPlot(d)
	if err != nil {
		return err
	}
	return save(p, 6*vg.Inch, 8*vg.Inch, filename)
}

func save(p *plot.Plot, w, h vg.Length, filename string) error {
	if format(filename) == "png" && !strings.EqualFold(filepath.Ext(filename), ".png") {
		filename += ".png"
	}
	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return p.Save(w, h, filename)
}
