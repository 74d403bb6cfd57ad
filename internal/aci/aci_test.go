package aci_test

import (
	"testing"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/stretchr/testify/assert"
)

func TestBeta1(t *testing.T) {
	tests := []struct {
		fc   float64
		want float64
	}{
		{2500, 0.85},
		{3000, 0.85},
		{4000, 0.85},
		{5000, 0.80},
		{6000, 0.75},
		{8000, 0.65},
		{10000, 0.65},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, aci.Beta1(tt.fc), 1e-12, "f'c=%v", tt.fc)
	}
}

func TestPhiFlexure(t *testing.T) {
	assert.Equal(t, 0.90, aci.PhiFlexure(0.005), "tension-controlled limit")
	assert.Equal(t, 0.65, aci.PhiFlexure(0.002), "compression-controlled limit")
	assert.InDelta(t, 0.775, aci.PhiFlexure(0.0035), 1e-12, "midpoint")
	assert.Equal(t, 0.90, aci.PhiFlexure(0.02))
	assert.Equal(t, 0.65, aci.PhiFlexure(0.0005))
	assert.Equal(t, 0.65, aci.PhiFlexure(-0.001))

	// monotone through the transition zone
	prev := aci.PhiFlexure(0.002)
	for e := 0.0021; e < 0.005; e += 0.0001 {
		phi := aci.PhiFlexure(e)
		assert.GreaterOrEqual(t, phi, prev)
		prev = phi
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, aci.TensionControlled, aci.Classify(0.005))
	assert.Equal(t, aci.Transition, aci.Classify(0.004))
	assert.Equal(t, aci.CompressionControlled, aci.Classify(0.002))
	assert.Equal(t, "transition", aci.Transition.String())
}

func TestReinforcementRatios(t *testing.T) {
	fc, fy := 4000.0, 60000.0

	// 0.85 * 4000 * 0.85 / (60000 * (1 + (60000/29e6)/0.003))
	rhoB := aci.RhoBalanced(fc, fy, aci.Es, aci.EpsilonCU)
	assert.InDelta(t, 0.02851, rhoB, 1e-5)
	assert.InDelta(t, 0.75*rhoB, aci.RhoMax(fc, fy, aci.Es, aci.EpsilonCU), 1e-15)

	// 200/fy governs below f'c = 4444 psi
	assert.InDelta(t, 200.0/60000, aci.RhoMin(fc, fy), 1e-15)
	assert.InDelta(t, 3*100/60000.0, aci.RhoMin(10000, fy), 1e-15)

	// tension-controlled limit ratio, c/d = 3/8
	assert.InDelta(t, 0.85*4000*0.85/60000*0.375, aci.RhoAtStrain(fc, fy, aci.EpsilonCU, 0.005), 1e-12)
}

func TestGoverningMoment(t *testing.T) {
	m := aci.LoadMoments{Dead: 50, Live: 30}
	mu, combo := aci.GoverningMoment(m, aci.LoadCombinations)
	assert.InDelta(t, 1.2*50+1.6*30, mu, 1e-9)
	assert.Equal(t, "5.3.1b", combo.Equation)

	mu, combo = aci.GoverningMoment(aci.LoadMoments{Dead: 100}, aci.GravityCombinations)
	assert.InDelta(t, 140, mu, 1e-9)
	assert.Equal(t, "1", combo.ID)

	assert.True(t, aci.LoadMoments{}.IsZero())
	assert.False(t, m.IsZero())
}

func TestMinCoverCIP(t *testing.T) {
	c, _ := aci.MinCoverCIP(aci.Beam, aci.Longitudinal, true, true)
	assert.Equal(t, 3.0, c)
	c, _ = aci.MinCoverCIP(aci.Slab, aci.Longitudinal, false, false)
	assert.Equal(t, 0.75, c)
	c, msg := aci.MinCoverCIP(aci.Beam, aci.Stirrup, false, false)
	assert.Equal(t, 1.5, c)
	assert.Contains(t, msg, "20.5.1.3.1")
}

func TestMinHorizontalClearSpacing(t *testing.T) {
	// 1 in. governs for small bars and aggregate
	s, _ := aci.MinHorizontalClearSpacing(0.5, 0.5, aci.Longitudinal, aci.Beam)
	assert.Equal(t, 1.0, s)
	// bar diameter governs
	s, _ = aci.MinHorizontalClearSpacing(1.41, 0.75, aci.Longitudinal, aci.Beam)
	assert.Equal(t, 1.41, s)
	// aggregate governs
	s, _ = aci.MinHorizontalClearSpacing(0.75, 1.5, aci.Longitudinal, aci.Beam)
	assert.InDelta(t, 2.0, s, 1e-12)
	// columns use 1.5 db
	s, msg := aci.MinHorizontalClearSpacing(1.27, 0.75, aci.Longitudinal, aci.Column)
	assert.InDelta(t, 1.905, s, 1e-12)
	assert.Contains(t, msg, "25.2.3")
}

func TestProportionDimensions(t *testing.T) {
	b, h := aci.ProportionDimensions(20, aci.Beam)
	assert.Equal(t, 15.0, h)
	assert.Equal(t, 8.0, b)

	b, h = aci.ProportionDimensions(10, aci.OneWaySlab)
	assert.Equal(t, 12.0, b)
	assert.Equal(t, 6.0, h)

	b, h = aci.ProportionDimensions(12, aci.Column)
	assert.Equal(t, b, h)
}

func TestParseMemberType(t *testing.T) {
	m, err := aci.ParseMemberType("beam")
	assert.NoError(t, err)
	assert.Equal(t, aci.Beam, m)
	_, err = aci.ParseMemberType("arch")
	assert.Error(t, err)
}
