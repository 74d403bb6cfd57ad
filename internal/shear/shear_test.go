package shear_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/alexiusacademia/aci318/internal/shear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beam() section.Section {
	s := section.New(12, 18)
	s.Tension = []section.Layer{{Size: rebar.No8, Qty: 3, Depth: 16}}
	return s
}

var sqrtFc = math.Sqrt(4000)

func TestConcreteOnly(t *testing.T) {
	r := shear.Analyze(beam(), nil)
	assert.InDelta(t, 2*sqrtFc*12*16, r.Vc, 1e-9)
	assert.InDelta(t, 4*r.Vc, r.VsMax, 1e-9)
	assert.Equal(t, r.Vc, r.Vn)
	assert.Equal(t, 0.0, r.Vs)
	assert.InDelta(t, 0.75*r.Vc, r.PhiVn, 1e-9)
	assert.InDelta(t, r.Vc/1000, r.VcKips(), 1e-12)
	assert.Empty(t, r.Layers)
}

func TestStirrupContribution(t *testing.T) {
	st := section.Stirrup{Size: rebar.No3, Legs: 2, Spacing: 6}
	r := shear.Analyze(beam(), []section.Stirrup{st})
	require.Len(t, r.Layers, 1)

	vs := 0.22 / 6 * 60000 * 16
	assert.InDelta(t, vs, r.Vs, 1e-9)
	assert.InDelta(t, r.Vc+vs, r.Vn, 1e-9)
	assert.InDelta(t, 0.75*(r.Vc+vs), r.PhiVn, 1e-9)
	assert.InDelta(t, 35.2, r.VsKips(), 1e-9)
	assert.Equal(t, 8.0, r.Layers[0].MaxSpacing)
	assert.True(t, r.Layers[0].SpacingOK)
	assert.Empty(t, r.Warnings)
}

func TestGoverningLayer(t *testing.T) {
	r := shear.Analyze(beam(), []section.Stirrup{
		{Size: rebar.No3, Legs: 2, Spacing: 6},
		{Size: rebar.No3, Legs: 2, Spacing: 10},
	})
	require.Len(t, r.Layers, 2)
	assert.Equal(t, r.Layers[1].PhiVn, r.PhiVn)
	assert.Less(t, r.Layers[1].PhiVn, r.Layers[0].PhiVn)
	assert.False(t, r.Layers[1].SpacingOK)
	assert.NotEmpty(t, r.Warnings)
}

func TestVsCapped(t *testing.T) {
	r := shear.Analyze(beam(), []section.Stirrup{{Size: rebar.No4, Legs: 4, Spacing: 3}})
	require.Len(t, r.Layers, 1)
	assert.True(t, r.Layers[0].Capped)
	assert.Equal(t, r.VsMax, r.Vs)
	assert.InDelta(t, 5*r.Vc, r.Vn, 1e-9)
}

func TestMaxSpacing(t *testing.T) {
	// 4√f'c·b·d for b=12, d=16 is about 48.6 kips
	assert.Equal(t, 8.0, shear.MaxSpacing(16, 30000, 4000, 12))
	assert.Equal(t, 4.0, shear.MaxSpacing(16, 50000, 4000, 12))
	assert.Equal(t, 24.0, shear.MaxSpacing(60, 0, 4000, 12))
	assert.Equal(t, 12.0, shear.MaxSpacing(60, 1e6, 4000, 12))
}

func TestAvMinOverS(t *testing.T) {
	// 0.75√4000 = 47.4 < 50
	assert.InDelta(t, 50*12/60000.0, shear.AvMinOverS(4000, 12, 60000), 1e-15)
	// 0.75√5000 = 53.0
	assert.InDelta(t, 0.75*math.Sqrt(5000)*12/60000, shear.AvMinOverS(5000, 12, 60000), 1e-15)
}

func TestDesign(t *testing.T) {
	tests := []struct {
		name       string
		vu         float64
		spacing    float64
		minGoverns bool
	}{
		{"strength governs", 40000, 7.0, false},
		{"maximum spacing governs", 10000, 8.0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shear.Design(beam(), tt.vu, rebar.No3, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.spacing, got.Stirrup.Spacing)
			assert.Equal(t, tt.minGoverns, got.MinGoverns)
			assert.GreaterOrEqual(t, got.Result.PhiVn, tt.vu)
		})
	}
}

func TestDesign_Errors(t *testing.T) {
	_, err := shear.Design(beam(), 100000, rebar.No3, 2)
	assert.ErrorIs(t, err, shear.ErrSectionTooSmall)

	_, err = shear.Design(beam(), 90000, rebar.No3, 2)
	assert.ErrorIs(t, err, shear.ErrSpacingTooTight)

	_, err = shear.Design(beam(), 10000, rebar.Size(12), 2)
	assert.ErrorIs(t, err, rebar.ErrUnknownSize)

	_, err = shear.Design(beam(), 10000, rebar.No3, 0)
	assert.Error(t, err)
}
