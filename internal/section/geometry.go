package section

import (
	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/rebar"
)

// fitTolerance absorbs float noise so an exact fit is accepted
const fitTolerance = 1e-9

// GrossArea is b·h (in²).
func (s Section) GrossArea() float64 { return s.Width * s.Height }

// Ix is the gross moment of inertia about the horizontal axis (in⁴).
func (s Section) Ix() float64 { return s.Width * s.Height * s.Height * s.Height / 12 }

// Iy is the gross moment of inertia about the vertical axis (in⁴).
func (s Section) Iy() float64 { return s.Height * s.Width * s.Width * s.Width / 12 }

// AsT is the total tension steel area (in²).
func (s Section) AsT() float64 { return totalArea(s.Tension) }

// AsC is the total compression steel area (in²).
func (s Section) AsC() float64 { return totalArea(s.Compression) }

func totalArea(layers []Layer) float64 {
	var a float64
	for _, l := range layers {
		a += l.Area()
	}
	return a
}

func centroid(layers []Layer) (float64, bool) {
	var area, moment float64
	for _, l := range layers {
		area += l.Area()
		moment += l.Area() * l.Depth
	}
	if area <= 0 {
		return 0, false
	}
	return moment / area, true
}

// EffectiveDepth calculates d, the depth to the centroid of the tension
// steel. Without tension layers it falls back to h - cover - 0.5 in.
func (s Section) EffectiveDepth() float64 {
	if d, ok := centroid(s.Tension); ok {
		return d
	}
	return s.Height - s.TensionCover - nominalHalfBar
}

// CompressionDepth calculates d', the depth to the centroid of the
// compression steel, falling back to the compression cover.
func (s Section) CompressionDepth() float64 {
	if d, ok := centroid(s.Compression); ok {
		return d
	}
	return s.CompressionCover
}

// ExtremeTensionDepth is the depth of the deepest tension layer, or d
// when there are no tension layers.
func (s Section) ExtremeTensionDepth() float64 {
	if len(s.Tension) == 0 {
		return s.EffectiveDepth()
	}
	deepest := s.Tension[0].Depth
	for _, l := range s.Tension[1:] {
		if l.Depth > deepest {
			deepest = l.Depth
		}
	}
	return deepest
}

// Rho is the tension steel ratio AsT/(b·d).
func (s Section) Rho() float64 {
	bd := s.Width * s.EffectiveDepth()
	if bd <= 0 {
		return 0
	}
	return s.AsT() / bd
}

// YieldStrain is fy/Es.
func (s Section) YieldStrain() float64 { return s.Fy / s.Es }

// Beta1 is the stress block factor for the section's concrete.
func (s Section) Beta1() float64 { return aci.Beta1(s.Fc) }

// RhoBalanced is the balanced steel ratio ρb.
func (s Section) RhoBalanced() float64 {
	return aci.RhoBalanced(s.Fc, s.Fy, s.Es, s.EpsilonCU)
}

// RhoMax is 0.75 ρb.
func (s Section) RhoMax() float64 {
	return aci.RhoMax(s.Fc, s.Fy, s.Es, s.EpsilonCU)
}

// RhoMin is the greater of the strength and area based minimums.
func (s Section) RhoMin() float64 { return aci.RhoMin(s.Fc, s.Fy) }

// RhoAtStrain is the singly reinforced ratio producing the given strain.
func (s Section) RhoAtStrain(strain float64) float64 {
	return aci.RhoAtStrain(s.Fc, s.Fy, s.EpsilonCU, strain)
}

// Clone returns a deep copy; the copy shares no slices with s.
func (s Section) Clone() Section {
	c := s
	c.Tension = append([]Layer(nil), s.Tension...)
	c.Compression = append([]Layer(nil), s.Compression...)
	c.Stirrups = append([]Stirrup(nil), s.Stirrups...)
	return c
}

// Bare returns a clone without any reinforcement.
func (s Section) Bare() Section {
	c := s
	c.Tension = nil
	c.Compression = nil
	c.Stirrups = nil
	return c
}

// WithTension returns a clone with the layers appended to the tension steel.
func (s Section) WithTension(layers ...Layer) Section {
	c := s.Clone()
	c.Tension = append(c.Tension, layers...)
	return c
}

// WithCompression returns a clone with the layers appended to the
// compression steel.
func (s Section) WithCompression(layers ...Layer) Section {
	c := s.Clone()
	c.Compression = append(c.Compression, layers...)
	return c
}

// WithStirrups returns a clone with the stirrups appended.
func (s Section) WithStirrups(st ...Stirrup) Section {
	c := s.Clone()
	c.Stirrups = append(c.Stirrups, st...)
	return c
}

// AddTension appends a tension layer after resolving the bar size.
func (s *Section) AddTension(size rebar.Size, qty int, depth float64) error {
	if _, err := rebar.Lookup(size); err != nil {
		return err
	}
	s.Tension = append(s.Tension, Layer{Size: size, Qty: qty, Depth: depth})
	return nil
}

// AddCompression appends a compression layer after resolving the bar size.
func (s *Section) AddCompression(size rebar.Size, qty int, depth float64) error {
	if _, err := rebar.Lookup(size); err != nil {
		return err
	}
	s.Compression = append(s.Compression, Layer{Size: size, Qty: qty, Depth: depth})
	return nil
}

// AddStirrup appends a stirrup set after resolving the bar size.
func (s *Section) AddStirrup(size rebar.Size, legs int, spacing float64) error {
	if _, err := rebar.Lookup(size); err != nil {
		return err
	}
	s.Stirrups = append(s.Stirrups, Stirrup{Size: size, Legs: legs, Spacing: spacing})
	return nil
}

// LayerWidth is the width a row of qty bars occupies including side covers:
// qty·db + (qty-1)·clear + 2·side.
func LayerWidth(size rebar.Size, qty int, sideCover, clearSpacing float64) float64 {
	if qty <= 0 {
		return 2 * sideCover
	}
	return float64(qty)*size.Diameter() + float64(qty-1)*clearSpacing + 2*sideCover
}

// FitsWidth reports whether qty bars of size fit in width. A layer whose
// footprint equals the width exactly fits.
func FitsWidth(width, sideCover, clearSpacing float64, size rebar.Size, qty int) bool {
	return LayerWidth(size, qty, sideCover, clearSpacing) <= width+fitTolerance
}

// Fits reports whether the layer fits the section width.
func (s Section) Fits(l Layer) bool {
	return FitsWidth(s.Width, s.SideCover, s.ClearSpacing, l.Size, l.Qty)
}

// MaxBarsPerLayer is the largest bar count of size that fits the width.
func (s Section) MaxBarsPerLayer(size rebar.Size) int {
	n := 0
	for FitsWidth(s.Width, s.SideCover, s.ClearSpacing, size, n+1) {
		n++
	}
	return n
}
