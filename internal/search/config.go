package search

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
)

// ErrInvalidConfig is returned by Validate and DesignAll for unusable
// search bounds, materials or demands.
var ErrInvalidConfig = errors.New("invalid search configuration")

// Demand is the factored load the section must resist.
type Demand struct {
	Mu float64 // kip-ft
	Vu float64 // kips, zero skips shear design
}

// Config bounds the design space.
type Config struct {
	// Geometry bounds (in)
	MinWidth, MaxWidth, WidthStep    float64
	MinHeight, MaxHeight, HeightStep float64

	// Materials (psi)
	Fc, Fy, Es, EpsilonCU float64

	// Detailing (in)
	TensionCover     float64 // compression face to tension layer is h - TensionCover
	CompressionCover float64
	SideCover        float64
	ClearSpacing     float64

	TensionSizes       []rebar.Size
	CompressionSizes   []rebar.Size
	MaxTensionBars     int // per layer
	MaxCompressionBars int // zero disables the doubly reinforced fallback

	StirrupSize rebar.Size
	StirrupLegs int

	// Minimum net tensile strain for acceptance
	DuctilityStrain float64

	// FirstOnly returns only the smallest feasible section.
	FirstOnly bool

	// Workers bounds concurrent widths; zero means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the standard search space: 4 to 35 in by 1 in,
// #3 to #11 bars, up to 4 bars per layer.
func DefaultConfig() Config {
	return Config{
		MinWidth:           4,
		MaxWidth:           35,
		WidthStep:          1,
		MinHeight:          4,
		MaxHeight:          35,
		HeightStep:         1,
		Fc:                 section.DefaultFc,
		Fy:                 section.DefaultFy,
		Es:                 aci.Es,
		EpsilonCU:          aci.EpsilonCU,
		TensionCover:       section.DefaultCover,
		CompressionCover:   section.DefaultCover,
		SideCover:          section.DefaultCover,
		ClearSpacing:       section.DefaultClearSpacing,
		TensionSizes:       rebar.Range(rebar.No3, rebar.No11),
		CompressionSizes:   rebar.Range(rebar.No3, rebar.No11),
		MaxTensionBars:     4,
		MaxCompressionBars: 4,
		StirrupSize:        rebar.No3,
		StirrupLegs:        2,
		DuctilityStrain:    aci.EpsilonTC,
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.MinWidth <= 0 || c.MaxWidth < c.MinWidth || c.WidthStep <= 0 {
		return invalid("width range %g..%g step %g", c.MinWidth, c.MaxWidth, c.WidthStep)
	}
	if c.MinHeight <= 0 || c.MaxHeight < c.MinHeight || c.HeightStep <= 0 {
		return invalid("height range %g..%g step %g", c.MinHeight, c.MaxHeight, c.HeightStep)
	}
	if c.Fc <= 0 || c.Fy <= 0 || c.Es <= 0 || c.EpsilonCU <= 0 {
		return invalid("material properties must be positive")
	}
	if c.TensionCover <= 0 || c.CompressionCover <= 0 || c.SideCover < 0 || c.ClearSpacing < 0 {
		return invalid("covers must be positive and spacing non-negative")
	}
	if len(c.TensionSizes) == 0 || c.MaxTensionBars <= 0 {
		return invalid("at least one tension bar option is required")
	}
	for _, s := range append(append([]rebar.Size(nil), c.TensionSizes...), c.CompressionSizes...) {
		if _, err := rebar.Lookup(s); err != nil {
			return invalid("%v", err)
		}
	}
	if c.MaxCompressionBars < 0 {
		return invalid("max compression bars %d", c.MaxCompressionBars)
	}
	if _, err := rebar.Lookup(c.StirrupSize); err != nil {
		return invalid("stirrup: %v", err)
	}
	if c.StirrupLegs <= 0 {
		return invalid("stirrup legs %d", c.StirrupLegs)
	}
	if c.DuctilityStrain <= 0 {
		return invalid("ductility strain %g", c.DuctilityStrain)
	}
	if c.Workers < 0 {
		return invalid("workers %d", c.Workers)
	}
	return nil
}

// Widths lists the candidate widths in search order.
func (c Config) Widths() []float64 { return steps(c.MinWidth, c.MaxWidth, c.WidthStep) }

// heights lists the candidate heights.
func (c Config) heights() []float64 { return steps(c.MinHeight, c.MaxHeight, c.HeightStep) }

func steps(from, to, step float64) []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := from + float64(i)*step
		if v > to+1e-9 {
			return out
		}
		out = append(out, v)
	}
}

// base returns a bare section of the configured materials and detailing.
func (c Config) base(width, height float64) section.Section {
	return section.New(width, height,
		section.WithMaterials(c.Fc, c.Fy),
		section.WithSteelModulus(c.Es),
		section.WithUltimateStrain(c.EpsilonCU),
		section.WithCovers(c.TensionCover, c.CompressionCover, c.SideCover),
		section.WithClearSpacing(c.ClearSpacing),
	)
}
