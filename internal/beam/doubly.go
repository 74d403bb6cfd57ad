package beam

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/aci318/internal/aci"
)

// DoublyReinforced represents a doubly reinforced rectangular beam section
type DoublyReinforced struct {
	SinglyReinforced
	CoverComp float64 // d' - depth to centroid of compression steel (in)
}

// NewDoublyReinforced creates a doubly reinforced beam
func NewDoublyReinforced(width, d, dPrime, fc, fy float64) *DoublyReinforced {
	return &DoublyReinforced{
		SinglyReinforced: *NewSinglyReinforced(width, d, fc, fy),
		CoverComp:        dPrime,
	}
}

// DoublyDesignResult holds the closed-form split of a moment into a
// concrete couple and a steel couple.
type DoublyDesignResult struct {
	RequiresCompSteel bool

	// Moment components (lb-in, design level)
	Mu1 float64 // concrete couple at the tension-controlled limit
	Mu2 float64 // steel couple

	// Reinforcement (in²)
	As1         float64
	As2         float64
	AsTotal     float64
	AscRequired float64 // using the compression steel stress at cMax
	AscMin      float64 // Mu2 / (φ·fy·(d - d')), valid for any c

	AMax float64
	CMax float64

	FscStress   float64
	CompYielded bool
	EpsilonSc   float64

	Message string
}

// Design splits mu (lb-in) between the concrete couple at the strain
// limit and a compression steel couple.
func (b *DoublyReinforced) Design(mu, strain float64) (*DoublyDesignResult, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}
	if b.CoverComp <= 0 || b.CoverComp >= b.EffectiveDepth {
		return nil, fmt.Errorf("invalid compression steel depth: d'=%.2f", b.CoverComp)
	}

	result := &DoublyDesignResult{}
	beta1 := aci.Beta1(b.Fc)

	result.As1, result.Mu1 = b.TensionControlledLimit(strain)
	result.AMax = b.StressBlock(result.As1)
	result.CMax = result.AMax / beta1

	if mu <= result.Mu1 {
		result.Message = "Singly reinforced design is adequate"
		return result, nil
	}

	result.RequiresCompSteel = true
	result.Mu2 = mu - result.Mu1

	// εsc = εcu·(c - d')/c at the limiting neutral axis
	result.EpsilonSc = b.EpsilonCU * (result.CMax - b.CoverComp) / result.CMax
	result.FscStress = math.Min(math.Max(result.EpsilonSc*b.Es, 0), b.Fy)
	result.CompYielded = result.EpsilonSc >= b.Fy/b.Es

	// Mu2 = φ·As2·fy·(d - d')
	lever := b.EffectiveDepth - b.CoverComp
	result.As2 = result.Mu2 / (aci.PhiTension * b.Fy * lever)
	result.AsTotal = result.As1 + result.As2
	result.AscMin = result.As2

	if result.FscStress > 0 {
		result.AscRequired = result.As2 * b.Fy / result.FscStress
		if result.CompYielded {
			result.Message = "Doubly reinforced design - Compression steel yields"
		} else {
			result.Message = fmt.Sprintf("Doubly reinforced design - Compression steel does not yield (f'sc = %.0f psi)", result.FscStress)
		}
	} else {
		result.AscRequired = math.Inf(1)
		result.Message = "Compression steel lies below the neutral axis - increase section depth"
	}

	return result, nil
}
