package cmd

import (
	"errors"

	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/spf13/cobra"
)

// materialFlags are shared by the commands that build sections. Zero
// values fall back to the environment defaults.
type materialFlags struct {
	fc, fy, es         float64
	cover, side, clear float64
}

func (m *materialFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&m.fc, "fc", 0, "Concrete compressive strength f'c (psi) [default 4000 or ACI318_FC]")
	f.Float64Var(&m.fy, "fy", 0, "Steel yield strength fy (psi) [default 60000 or ACI318_FY]")
	f.Float64Var(&m.es, "es", 0, "Steel modulus Es (psi) [default 29000000 or ACI318_ES]")
	f.Float64Var(&m.cover, "cover", 0, "Cover to bar centroid at both faces (in) [default 1.5 or ACI318_COVER]")
	f.Float64Var(&m.side, "side-cover", 0, "Side cover to the outer bar face (in) [default 1.5 or ACI318_SIDE_COVER]")
	f.Float64Var(&m.clear, "clear-spacing", 0, "Minimum clear spacing between bars (in) [default 1 or ACI318_CLEAR_SPACING]")
}

// resolved returns the environment defaults overridden by the given flags.
func (m *materialFlags) resolved() (fc, fy, es, cover, side, clear float64) {
	pick := func(flag, def float64) float64 {
		if flag > 0 {
			return flag
		}
		return def
	}
	return pick(m.fc, defaults.Fc), pick(m.fy, defaults.Fy), pick(m.es, defaults.Es),
		pick(m.cover, defaults.Cover), pick(m.side, defaults.SideCover), pick(m.clear, defaults.ClearSpacing)
}

func (m *materialFlags) options() []section.Option {
	fc, fy, es, cover, side, clear := m.resolved()
	return []section.Option{
		section.WithMaterials(fc, fy),
		section.WithSteelModulus(es),
		section.WithCovers(cover, cover, side),
		section.WithClearSpacing(clear),
	}
}

// sectionFlags describe a section either as a JSON file or inline.
type sectionFlags struct {
	file        string
	width       float64
	height      float64
	tension     string
	compression string
	stirrups    []string
	materials   materialFlags
}

func (s *sectionFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.file, "file", "f", "", "Path to section JSON file")
	f.Float64VarP(&s.width, "width", "b", 0, "Section width (in)")
	f.Float64Var(&s.height, "height", 0, "Section height (in)")
	f.StringVarP(&s.tension, "tension", "t", "", `Tension layers, e.g. "3-#8@16" or "3-#9@17.5, 2-#9@15"`)
	f.StringVarP(&s.compression, "compression", "c", "", `Compression layers, e.g. "2-#5@2.5"`)
	f.StringArrayVarP(&s.stirrups, "stirrup", "s", nil, `Stirrup set, e.g. "#3x2@6" (repeatable)`)
	s.materials.register(cmd)
}

// section loads the file when given, otherwise builds the section from
// the inline flags.
func (s *sectionFlags) section() (section.Section, error) {
	var sec section.Section
	if s.file != "" {
		loaded, err := section.LoadFromFile(s.file)
		if err != nil {
			return section.Section{}, err
		}
		sec = *loaded
	} else {
		if s.width <= 0 || s.height <= 0 {
			return section.Section{}, errors.New("provide --file or both --width and --height")
		}
		sec = section.New(s.width, s.height, s.materials.options()...)
		var err error
		if sec.Tension, err = section.ParseLayers(s.tension); err != nil {
			return section.Section{}, err
		}
		if sec.Compression, err = section.ParseLayers(s.compression); err != nil {
			return section.Section{}, err
		}
	}
	for _, v := range s.stirrups {
		st, err := section.ParseStirrup(v)
		if err != nil {
			return section.Section{}, err
		}
		sec.Stirrups = append(sec.Stirrups, st)
	}
	return sec, sec.Validate()
}
