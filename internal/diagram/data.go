// Package diagram draws section, strain and stress diagrams of a
// flexural analysis, as terminal text or as plot images.
package diagram

import (
	"github.com/alexiusacademia/aci318/internal/flexure"
)

// Bar is one reinforcement layer as drawn.
type Bar struct {
	Label       string
	Qty         int
	Depth       float64 // from the top (in)
	Area        float64 // in²
	Strain      float64 // tension positive
	Stress      float64 // psi, tension positive
	Yielded     bool
	Compression bool
}

// Data holds what the diagrams show of an analyzed section.
type Data struct {
	Width  float64 // in
	Height float64 // in

	NeutralAxisDepth float64 // c from top (in)
	StressBlockDepth float64 // a from top (in)

	EpsilonCU float64
	EpsilonT  float64 // at the extreme tension layer
	EpsilonY  float64

	ConcreteStress float64 // 0.85 f'c (psi)
	PhiMnKipFt     float64

	Bars []Bar
}

// FromResult collects the diagram data of an analysis.
func FromResult(r *flexure.Result) Data {
	s := r.Section
	d := Data{
		Width:            s.Width,
		Height:           s.Height,
		NeutralAxisDepth: r.C,
		StressBlockDepth: r.A,
		EpsilonCU:        s.EpsilonCU,
		EpsilonT:         r.EpsilonT,
		EpsilonY:         s.YieldStrain(),
		ConcreteStress:   0.85 * s.Fc,
		PhiMnKipFt:       r.PhiMnKipFt(),
	}
	for _, l := range r.Layers {
		d.Bars = append(d.Bars, Bar{
			Label:       l.Layer.String(),
			Qty:         l.Layer.Qty,
			Depth:       l.Layer.Depth,
			Area:        l.Area,
			Strain:      l.Strain,
			Stress:      l.Stress,
			Yielded:     l.Yielded,
			Compression: l.Kind == flexure.Compression,
		})
	}
	return d
}

// strainAt is the strain at depth y, tension positive.
func (d Data) strainAt(y float64) float64 {
	if d.NeutralAxisDepth <= 0 {
		return 0
	}
	return d.EpsilonCU * (y - d.NeutralAxisDepth) / d.NeutralAxisDepth
}
