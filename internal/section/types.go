// Package section models a rectangular reinforced concrete cross section.
//
// Depths are measured from the extreme compression fiber (top of the
// section). Units are inches and psi.
package section

import (
	"fmt"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/rebar"
)

// Defaults applied by New and LoadFromFile
const (
	DefaultCover        = 1.5    // in
	DefaultClearSpacing = 1.5    // in
	DefaultFc           = 4000.0 // psi
	DefaultFy           = 60000.0

	// nominal half bar diameter used for d when no tension layer exists
	nominalHalfBar = 0.5
)

// Section is a rectangular concrete section with layered reinforcement.
// It is a value type; use Clone or the With* helpers to derive trial
// sections so the layer slices are never shared.
type Section struct {
	Name string `json:"name,omitempty"`

	// Geometry (in)
	Width  float64 `json:"width"`  // b
	Height float64 `json:"height"` // h

	TensionCover     float64 `json:"tension_cover"`
	CompressionCover float64 `json:"compression_cover"`
	SideCover        float64 `json:"side_cover"`
	ClearSpacing     float64 `json:"clear_spacing"` // between bars in a layer

	// Materials
	Fc        float64 `json:"fc"`         // f'c (psi)
	Fy        float64 `json:"fy"`         // fy (psi)
	Es        float64 `json:"es"`         // steel modulus (psi)
	EpsilonCU float64 `json:"epsilon_cu"` // ultimate concrete strain

	// Reinforcement
	Tension     []Layer   `json:"tension"`
	Compression []Layer   `json:"compression,omitempty"`
	Stirrups    []Stirrup `json:"stirrups,omitempty"`
}

// Layer is a row of identical longitudinal bars.
type Layer struct {
	Size  rebar.Size `json:"size"`
	Qty   int        `json:"qty"`
	Depth float64    `json:"depth"` // centroid depth from the compression face (in)
}

// Bar resolves the catalog entry of the layer.
func (l Layer) Bar() rebar.Bar { return l.Size.Bar() }

// Area is the steel area of the layer (in²).
func (l Layer) Area() float64 {
	return float64(l.Qty) * l.Size.Area()
}

func (l Layer) String() string {
	return fmt.Sprintf("%d-%s @ %.2f", l.Qty, l.Size, l.Depth)
}

// Stirrup describes a set of shear reinforcement.
type Stirrup struct {
	Size    rebar.Size `json:"size"`
	Legs    int        `json:"legs"`
	Spacing float64    `json:"spacing"`         // in
	Start   float64    `json:"start,omitempty"` // position along the member (in)
	End     float64    `json:"end,omitempty"`
}

// Av is the total area of the legs crossing a shear plane (in²).
func (s Stirrup) Av() float64 {
	return float64(s.Legs) * s.Size.Area()
}

// AvOverS is Av divided by spacing (in²/in).
func (s Stirrup) AvOverS() float64 {
	if s.Spacing <= 0 {
		return 0
	}
	return s.Av() / s.Spacing
}

func (s Stirrup) String() string {
	return fmt.Sprintf("%s x%d @ %.2f", s.Size, s.Legs, s.Spacing)
}

// Option configures a Section built by New.
type Option func(*Section)

// WithMaterials sets f'c and fy.
func WithMaterials(fc, fy float64) Option {
	return func(s *Section) {
		s.Fc = fc
		s.Fy = fy
	}
}

// WithSteelModulus sets Es.
func WithSteelModulus(es float64) Option {
	return func(s *Section) { s.Es = es }
}

// WithUltimateStrain sets the ultimate concrete strain.
func WithUltimateStrain(eps float64) Option {
	return func(s *Section) { s.EpsilonCU = eps }
}

// WithCovers sets the tension, compression and side covers.
func WithCovers(tension, compression, side float64) Option {
	return func(s *Section) {
		s.TensionCover = tension
		s.CompressionCover = compression
		s.SideCover = side
	}
}

// WithClearSpacing sets the minimum clear spacing between bars.
func WithClearSpacing(clear float64) Option {
	return func(s *Section) { s.ClearSpacing = clear }
}

// New creates a section with default covers and materials.
func New(width, height float64, opts ...Option) Section {
	s := Section{
		Width:            width,
		Height:           height,
		TensionCover:     DefaultCover,
		CompressionCover: DefaultCover,
		SideCover:        DefaultCover,
		ClearSpacing:     DefaultClearSpacing,
		Fc:               DefaultFc,
		Fy:               DefaultFy,
		Es:               aci.Es,
		EpsilonCU:        aci.EpsilonCU,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// applyDefaults fills zero material constants and covers.
func (s *Section) applyDefaults() {
	if s.Es == 0 {
		s.Es = aci.Es
	}
	if s.EpsilonCU == 0 {
		s.EpsilonCU = aci.EpsilonCU
	}
	if s.TensionCover == 0 {
		s.TensionCover = DefaultCover
	}
	if s.CompressionCover == 0 {
		s.CompressionCover = DefaultCover
	}
	if s.SideCover == 0 {
		s.SideCover = DefaultCover
	}
	if s.ClearSpacing == 0 {
		s.ClearSpacing = DefaultClearSpacing
	}
}

// Validate checks if the section definition is valid
func (s Section) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return &ValidationError{fmt.Sprintf("invalid section dimensions: b=%.2f, h=%.2f", s.Width, s.Height)}
	}
	if s.Fc <= 0 {
		return &ValidationError{"f'c must be positive"}
	}
	if s.Fy <= 0 {
		return &ValidationError{"fy must be positive"}
	}
	if s.Es <= 0 {
		return &ValidationError{"Es must be positive"}
	}
	if s.EpsilonCU <= 0 {
		return &ValidationError{"ultimate concrete strain must be positive"}
	}
	if err := s.validateLayers("tension", s.Tension); err != nil {
		return err
	}
	if err := s.validateLayers("compression", s.Compression); err != nil {
		return err
	}
	for i, st := range s.Stirrups {
		if _, err := rebar.Lookup(st.Size); err != nil {
			return &ValidationError{fmt.Sprintf("stirrup %d: %v", i+1, err)}
		}
		if st.Legs <= 0 {
			return &ValidationError{fmt.Sprintf("stirrup %d must have at least one leg", i+1)}
		}
		if st.Spacing <= 0 {
			return &ValidationError{fmt.Sprintf("stirrup %d must have positive spacing", i+1)}
		}
	}
	return nil
}

func (s Section) validateLayers(kind string, layers []Layer) error {
	for i, l := range layers {
		if _, err := rebar.Lookup(l.Size); err != nil {
			return &ValidationError{fmt.Sprintf("%s layer %d: %v", kind, i+1, err)}
		}
		if l.Qty <= 0 {
			return &ValidationError{fmt.Sprintf("%s layer %d must have a positive bar count", kind, i+1)}
		}
		if l.Depth <= 0 || l.Depth >= s.Height {
			return &ValidationError{fmt.Sprintf("%s layer %d depth %.2f must lie between 0 and h=%.2f", kind, i+1, l.Depth, s.Height)}
		}
	}
	return nil
}

// ValidationError represents a section validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
