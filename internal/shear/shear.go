// Package shear computes the one-way shear strength of a rectangular
// section per ACI 318-19 Chapter 22 and selects stirrup spacing.
//
// Forces are in lb; the *Kips helpers convert for display.
package shear

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
)

// ErrSectionTooSmall is returned when the required Vs exceeds 8√f'c·b·d,
// so no stirrup arrangement can carry the demand.
var ErrSectionTooSmall = errors.New("section too small for shear demand")

// ErrSpacingTooTight is returned when the required spacing falls below
// MinSpacing for the chosen stirrup.
var ErrSpacingTooTight = errors.New("required stirrup spacing below practical minimum")

// Spacing limits (in)
const (
	MinSpacing = 3.0 // practical floor

	maxSpacingLight = 24.0 // 9.7.6.2.2, Vs <= 4√f'c·bw·d
	maxSpacingHeavy = 12.0
	spacingRound    = 0.5
)

// LayerResult is the strength provided by one stirrup set.
type LayerResult struct {
	Stirrup    section.Stirrup
	Vs         float64 // capped at VsMax
	Vn         float64
	PhiVn      float64
	MaxSpacing float64
	SpacingOK  bool // MinSpacing <= s <= MaxSpacing
	Capped     bool // Vs limited by VsMax
}

// Result holds the shear strength of a section.
type Result struct {
	D     float64 // effective depth (in)
	Vc    float64 // 2√f'c·b·d
	VsMax float64 // 8√f'c·b·d
	Phi   float64

	Layers []LayerResult

	// Governing (minimum) values over the layers, or the concrete-only
	// values when there are no stirrups
	Vs    float64
	Vn    float64
	PhiVn float64

	Warnings []string
}

// VcKips returns Vc in kips.
func (r Result) VcKips() float64 { return r.Vc / 1000 }

// VsKips returns the governing Vs in kips.
func (r Result) VsKips() float64 { return r.Vs / 1000 }

// VnKips returns the governing Vn in kips.
func (r Result) VnKips() float64 { return r.Vn / 1000 }

// PhiVnKips returns the governing φVn in kips.
func (r Result) PhiVnKips() float64 { return r.PhiVn / 1000 }

// Vc is the concrete contribution 2√f'c·b·d (lb), ACI 318-19 Eq. 22.5.5.1.
func Vc(fc, b, d float64) float64 {
	return 2 * math.Sqrt(fc) * b * d
}

// VsMax is the upper limit on the stirrup contribution 8√f'c·b·d (lb),
// ACI 318-19 22.5.1.2.
func VsMax(fc, b, d float64) float64 {
	return 8 * math.Sqrt(fc) * b * d
}

// Vs is the stirrup contribution (Av/s)·fyt·d (lb), Eq. 22.5.8.5.3.
func Vs(avOverS, fyt, d float64) float64 {
	return avOverS * fyt * d
}

// MaxSpacing returns the maximum stirrup spacing for a required Vs.
// Shear is heavy when Vs exceeds 4√f'c·b·d (Table 9.7.6.2.2).
func MaxSpacing(d, vs, fc, b float64) float64 {
	if vs > 4*math.Sqrt(fc)*b*d {
		return math.Min(d/4, maxSpacingHeavy)
	}
	return math.Min(d/2, maxSpacingLight)
}

// AvMinOverS is the minimum shear reinforcement per unit spacing,
// max(0.75√f'c, 50)·bw/fyt (Table 9.6.3.4).
func AvMinOverS(fc, b, fyt float64) float64 {
	return math.Max(0.75*math.Sqrt(fc), 50) * b / fyt
}

// Analyze computes Vc, and Vs, Vn and φVn for every stirrup set. The
// governing values are the weakest set's. Without stirrups Vn = Vc.
func Analyze(sec section.Section, stirrups []section.Stirrup) Result {
	d := sec.EffectiveDepth()
	r := Result{
		D:     d,
		Vc:    Vc(sec.Fc, sec.Width, d),
		VsMax: VsMax(sec.Fc, sec.Width, d),
		Phi:   aci.PhiShear,
	}

	r.Vn = r.Vc
	r.PhiVn = r.Phi * r.Vn
	for i, st := range stirrups {
		vs := Vs(st.AvOverS(), sec.Fy, d)
		capped := vs > r.VsMax
		if capped {
			vs = r.VsMax
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("stirrup set %d: Vs limited to 8√f'c·b·d = %.1f kips", i+1, r.VsMax/1000))
		}
		smax := MaxSpacing(d, vs, sec.Fc, sec.Width)
		lr := LayerResult{
			Stirrup:    st,
			Vs:         vs,
			Vn:         r.Vc + vs,
			PhiVn:      r.Phi * (r.Vc + vs),
			MaxSpacing: smax,
			SpacingOK:  st.Spacing >= MinSpacing && st.Spacing <= smax,
			Capped:     capped,
		}
		if !lr.SpacingOK {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("stirrup set %d: spacing %.2f in outside %.2f to %.2f in", i+1, st.Spacing, MinSpacing, smax))
		}
		if st.AvOverS() < AvMinOverS(sec.Fc, sec.Width, sec.Fy) {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("stirrup set %d: Av/s below minimum shear reinforcement", i+1))
		}
		r.Layers = append(r.Layers, lr)

		if i == 0 || lr.PhiVn < r.PhiVn {
			r.Vs = lr.Vs
			r.Vn = lr.Vn
			r.PhiVn = lr.PhiVn
		}
	}
	return r
}

// Selection is a stirrup choice for a factored shear.
type Selection struct {
	Vu         float64 // lb
	VsRequired float64 // Vu/φ - Vc, not less than zero
	Stirrup    section.Stirrup
	MinGoverns bool // spacing set by minimum Av or maximum spacing
	Result     Result
}

// Design selects the spacing of size stirrups with legs legs for a
// factored shear vu (lb). The spacing is the smallest of the strength,
// minimum-Av and maximum-spacing limits, rounded down to 0.5 in.
func Design(sec section.Section, vu float64, size rebar.Size, legs int) (Selection, error) {
	bar, err := rebar.Lookup(size)
	if err != nil {
		return Selection{}, err
	}
	if legs <= 0 {
		return Selection{}, fmt.Errorf("stirrup legs must be positive, got %d", legs)
	}

	d := sec.EffectiveDepth()
	vc := Vc(sec.Fc, sec.Width, d)
	vsMax := VsMax(sec.Fc, sec.Width, d)
	vsReq := math.Max(vu/aci.PhiShear-vc, 0)
	if vsReq > vsMax {
		return Selection{}, fmt.Errorf("%w: Vs required %.1f kips > %.1f kips",
			ErrSectionTooSmall, vsReq/1000, vsMax/1000)
	}

	av := float64(legs) * bar.Area
	limit := math.Min(MaxSpacing(d, vsReq, sec.Fc, sec.Width), av/AvMinOverS(sec.Fc, sec.Width, sec.Fy))
	s := limit
	minGoverns := true
	if vsReq > 0 {
		if strength := av * sec.Fy * d / vsReq; strength < s {
			s = strength
			minGoverns = false
		}
	}
	s = math.Floor(s/spacingRound) * spacingRound
	if s < MinSpacing {
		return Selection{}, fmt.Errorf("%w: %s x%d needs %.2f in", ErrSpacingTooTight, size, legs, s)
	}

	st := section.Stirrup{Size: size, Legs: legs, Spacing: s}
	return Selection{
		Vu:         vu,
		VsRequired: vsReq,
		Stirrup:    st,
		MinGoverns: minGoverns,
		Result:     Analyze(sec, []section.Stirrup{st}),
	}, nil
}
