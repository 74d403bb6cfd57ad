// Package beam holds closed-form solutions for rectangular beams with a
// single line of tension steel (and optionally one of compression steel).
// They assume the tension steel yields, which makes them upper bounds on
// the strain-compatibility capacity and cheap pruning checks for the
// design search.
//
// Units: in, psi, lb, lb-in.
package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/aci318/internal/aci"
)

// SinglyReinforced represents a singly reinforced rectangular beam section
type SinglyReinforced struct {
	// Geometry (in)
	Width          float64 // b - beam width
	EffectiveDepth float64 // d - depth to centroid of tension steel

	// Materials (psi)
	Fc        float64 // f'c - concrete compressive strength
	Fy        float64 // fy - steel yield strength
	Es        float64
	EpsilonCU float64
}

// NewSinglyReinforced creates a singly reinforced beam with the default
// steel modulus and ultimate concrete strain.
func NewSinglyReinforced(width, d, fc, fy float64) *SinglyReinforced {
	return &SinglyReinforced{
		Width:          width,
		EffectiveDepth: d,
		Fc:             fc,
		Fy:             fy,
		Es:             aci.Es,
		EpsilonCU:      aci.EpsilonCU,
	}
}

func (b *SinglyReinforced) validate() error {
	if b.Width <= 0 || b.EffectiveDepth <= 0 {
		return fmt.Errorf("invalid beam dimensions: width=%.2f, d=%.2f", b.Width, b.EffectiveDepth)
	}
	if b.Fc <= 0 || b.Fy <= 0 {
		return fmt.Errorf("invalid material properties: f'c=%.2f, fy=%.2f", b.Fc, b.Fy)
	}
	return nil
}

// StressBlock returns a = As·fy / (0.85·f'c·b).
func (b *SinglyReinforced) StressBlock(as float64) float64 {
	return as * b.Fy / (0.85 * b.Fc * b.Width)
}

// NominalMoment returns Mn = As·fy·(d - a/2) in lb-in.
func (b *SinglyReinforced) NominalMoment(as float64) float64 {
	return as * b.Fy * (b.EffectiveDepth - b.StressBlock(as)/2)
}

// TensionControlledLimit returns the largest steel area that keeps the
// net tensile strain at or above strain, and the design moment φMn at
// that area with φ = 0.90.
func (b *SinglyReinforced) TensionControlledLimit(strain float64) (as, phiMn float64) {
	rho := aci.RhoAtStrain(b.Fc, b.Fy, b.EpsilonCU, strain)
	as = rho * b.Width * b.EffectiveDepth
	return as, aci.PhiTension * b.NominalMoment(as)
}

// DesignResult holds the results of beam design
type DesignResult struct {
	// Reinforcement (in²)
	AsRequired float64 // steel needed for Mu before the minimum check
	AsMin      float64
	AsMax      float64 // at the tension-controlled strain limit
	AsProvided float64 // max(AsRequired, AsMin)

	// Reinforcement ratios
	RhoRequired float64
	RhoMin      float64
	RhoMax      float64
	RhoBalanced float64

	// Section properties
	A        float64 // Depth of compression block (in)
	C        float64 // Neutral axis depth (in)
	EpsilonT float64 // Tensile strain
	Phi      float64 // Strength reduction factor

	// Capacity (lb-in)
	PhiMn    float64
	PhiMnMax float64 // at AsMax

	// Status
	IsTensionControlled bool
	IsAdequate          bool
	Message             string
}

// Design calculates the required reinforcement for a factored moment mu
// (lb-in), assuming a tension-controlled section.
func (b *SinglyReinforced) Design(mu float64) (*DesignResult, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	result := &DesignResult{}
	bd := b.Width * b.EffectiveDepth

	result.RhoMin = aci.RhoMin(b.Fc, b.Fy)
	result.RhoMax = aci.RhoAtStrain(b.Fc, b.Fy, b.EpsilonCU, aci.EpsilonTC)
	result.RhoBalanced = aci.RhoBalanced(b.Fc, b.Fy, b.Es, b.EpsilonCU)
	result.AsMin = result.RhoMin * bd
	result.AsMax, result.PhiMnMax = b.TensionControlledLimit(aci.EpsilonTC)

	if mu > result.PhiMnMax {
		result.Message = fmt.Sprintf("Section inadequate for singly reinforced design. Mu=%.2f kip-ft > φMn,max=%.2f kip-ft",
			mu/12000, result.PhiMnMax/12000)
		result.PhiMn = result.PhiMnMax
		return result, nil
	}

	// Rn = Mu / (φ·b·d²)
	// ρ = (0.85·f'c/fy)·(1 - √(1 - 2·Rn/(0.85·f'c)))
	rn := mu / (aci.PhiTension * b.Width * b.EffectiveDepth * b.EffectiveDepth)
	term := 2 * rn / (0.85 * b.Fc)
	if term > 1 {
		result.Message = "Section inadequate - moment too high for singly reinforced design"
		return result, nil
	}
	result.RhoRequired = (0.85 * b.Fc / b.Fy) * (1 - math.Sqrt(1-term))
	result.AsRequired = result.RhoRequired * bd
	result.AsProvided = math.Max(result.AsRequired, result.AsMin)

	result.A = b.StressBlock(result.AsProvided)
	result.C = result.A / aci.Beta1(b.Fc)
	result.EpsilonT = b.EpsilonCU * (b.EffectiveDepth - result.C) / result.C
	result.Phi = aci.PhiFlexure(result.EpsilonT)
	result.IsTensionControlled = result.EpsilonT >= aci.EpsilonTC
	result.PhiMn = result.Phi * b.NominalMoment(result.AsProvided)

	result.IsAdequate = result.PhiMn >= mu*(1-1e-9)
	switch {
	case !result.IsAdequate:
		result.Message = "Design inadequate"
	case result.IsTensionControlled:
		result.Message = "Design OK - Section is tension-controlled"
	default:
		result.Message = "Design OK - Section is in transition zone"
	}

	return result, nil
}

// AnalysisResult holds the results of beam analysis
type AnalysisResult struct {
	A        float64 // Depth of compression block (in)
	C        float64 // Neutral axis depth (in)
	Beta1    float64
	EpsilonT float64
	Phi      float64

	Rho         float64
	RhoMin      float64
	RhoBalanced float64

	// Capacity (lb-in)
	Mn    float64
	PhiMn float64

	IsTensionControlled bool
	MeetsMinReinf       bool
	Message             string
}

// Analyze calculates the moment capacity for a given reinforcement area,
// assuming the steel yields.
func (b *SinglyReinforced) Analyze(as float64) (*AnalysisResult, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if as <= 0 {
		return nil, fmt.Errorf("invalid reinforcement area: As=%.2f", as)
	}

	result := &AnalysisResult{}
	result.Beta1 = aci.Beta1(b.Fc)
	result.RhoMin = aci.RhoMin(b.Fc, b.Fy)
	result.RhoBalanced = aci.RhoBalanced(b.Fc, b.Fy, b.Es, b.EpsilonCU)
	result.Rho = as / (b.Width * b.EffectiveDepth)
	result.MeetsMinReinf = result.Rho >= result.RhoMin

	// T = C → As·fy = 0.85·f'c·b·a
	result.A = b.StressBlock(as)
	result.C = result.A / result.Beta1
	result.EpsilonT = b.EpsilonCU * (b.EffectiveDepth - result.C) / result.C

	result.Phi = aci.PhiFlexure(result.EpsilonT)
	result.IsTensionControlled = result.EpsilonT >= aci.EpsilonTC

	result.Mn = b.NominalMoment(as)
	result.PhiMn = result.Phi * result.Mn

	if result.IsTensionControlled {
		result.Message = "Section is tension-controlled (εt ≥ 0.005)"
	} else if result.EpsilonT >= b.Fy/b.Es {
		result.Message = "Section is in transition zone"
	} else {
		result.Message = "Section is compression-controlled (εt < εy)"
	}
	if !result.MeetsMinReinf {
		result.Message += " | WARNING: Below minimum reinforcement"
	}

	return result, nil
}

// MomentBound is As·fy·d, an upper bound on Mn for any section whose
// tension steel area is as and whose tension centroid is at d.
func MomentBound(as, fy, d float64) float64 {
	return as * fy * d
}
