// Package aci encodes the ACI 318-19 provisions used by the analysis and
// design engines. Units are psi and inches.
package aci

import "math"

// ACI 318-19 Material Constants

const (
	// Beta1 factors for equivalent rectangular stress block
	// Table 22.2.2.4.3
	Beta1Max = 0.85 // for f'c <= 4000 psi
	Beta1Min = 0.65 // for f'c >= 8000 psi

	// Strain limits
	EpsilonCU = 0.003 // Ultimate concrete strain (22.2.2.1)
	EpsilonTY = 0.002 // Compression-controlled strain limit (Table 21.2.2)
	EpsilonTC = 0.005 // Tension-controlled strain limit (Table 21.2.2)

	// Strength reduction factors (Table 21.2.1)
	PhiTension     = 0.90 // Tension-controlled sections
	PhiShear       = 0.75 // Shear and torsion
	PhiCompression = 0.65 // Compression-controlled (tied)

	// Modulus of elasticity for nonprestressed steel (20.2.2.2)
	Es = 29000000.0 // psi

	// Maximum ratio relative to the balanced ratio
	RhoMaxFactor = 0.75
)

// Beta1 calculates the factor for equivalent rectangular stress block
// ACI 318-19 Table 22.2.2.4.3
func Beta1(fc float64) float64 {
	if fc <= 4000 {
		return Beta1Max
	}
	// β1 = 0.85 - 0.05(f'c - 4000)/1000 for 4000 < f'c < 8000 psi
	beta1 := Beta1Max - 0.05*(fc-4000)/1000
	return math.Max(beta1, Beta1Min)
}

// DuctilityClass classifies a section by its net tensile strain.
type DuctilityClass int

const (
	CompressionControlled DuctilityClass = iota
	Transition
	TensionControlled
)

func (d DuctilityClass) String() string {
	switch d {
	case TensionControlled:
		return "tension-controlled"
	case Transition:
		return "transition"
	default:
		return "compression-controlled"
	}
}

// Classify returns the ductility class for a net tensile strain.
func Classify(epsilonT float64) DuctilityClass {
	switch {
	case epsilonT >= EpsilonTC:
		return TensionControlled
	case epsilonT <= EpsilonTY:
		return CompressionControlled
	default:
		return Transition
	}
}

// PhiFlexure calculates the strength reduction factor from the net
// tensile strain at the extreme tension layer.
// ACI 318-19 Table 21.2.2
func PhiFlexure(epsilonT float64) float64 {
	switch Classify(epsilonT) {
	case TensionControlled:
		return PhiTension
	case CompressionControlled:
		return PhiCompression
	}
	// Transition zone
	return PhiCompression + (PhiTension-PhiCompression)*(epsilonT-EpsilonTY)/(EpsilonTC-EpsilonTY)
}

// RhoMin calculates minimum reinforcement ratio
// ACI 318-19 9.6.1.2
func RhoMin(fc, fy float64) float64 {
	// ρmin = max(3√f'c / fy, 200/fy)
	return math.Max(RhoMinStrength(fc, fy), RhoMinArea(fy))
}

// RhoMinStrength is the strength-based lower bound 3√f'c/fy.
func RhoMinStrength(fc, fy float64) float64 {
	return 3 * math.Sqrt(fc) / fy
}

// RhoMinArea is the area-based lower bound 200/fy.
func RhoMinArea(fy float64) float64 {
	return 200 / fy
}

// RhoBalanced calculates balanced reinforcement ratio
func RhoBalanced(fc, fy, es, epsilonCU float64) float64 {
	epsilonY := fy / es
	return 0.85 * fc * Beta1(fc) / (fy * (1 + epsilonY/epsilonCU))
}

// RhoMax is 0.75 ρb.
func RhoMax(fc, fy, es, epsilonCU float64) float64 {
	return RhoMaxFactor * RhoBalanced(fc, fy, es, epsilonCU)
}

// RhoAtStrain returns the singly reinforced ratio that produces the given
// net tensile strain. RhoAtStrain(..., 0.005) is the tension-controlled limit.
func RhoAtStrain(fc, fy, epsilonCU, strain float64) float64 {
	return 0.85 * fc * Beta1(fc) / (fy * (1 + strain/epsilonCU))
}
