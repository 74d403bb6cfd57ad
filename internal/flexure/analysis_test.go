package flexure_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/flexure"
	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/alexiusacademia/aci318/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beam12x18() section.Section {
	s := section.New(12, 18)
	s.Tension = []section.Layer{{Size: rebar.No8, Qty: 3, Depth: 16}}
	return s
}

func TestAnalyze_EndToEnd(t *testing.T) {
	r, err := flexure.Analyze(beam12x18())
	require.NoError(t, err)

	// hand calculation: a = 2.37·60000/(0.85·4000·12) = 3.485 in
	// Mn = 142200·(16 - 3.485/2) = 2,027,400 lb-in = 168.95 kip-ft
	assert.Greater(t, r.C, 0.0)
	assert.Less(t, r.C, 16.0)
	assert.InDelta(t, 4.100, r.C, 1e-3)
	assert.InDelta(t, 3.485, r.A, 1e-3)
	assert.Equal(t, 0.85, r.Beta1)
	assert.Equal(t, 0.9, r.Phi)
	assert.Equal(t, aci.TensionControlled, r.Class)
	assert.True(t, r.IsTensionControlled())
	assert.InEpsilon(t, 168.95, r.MnKipFt(), 0.005)
	assert.InEpsilon(t, 152.05, r.PhiMnKipFt(), 0.005)
	assert.InDelta(t, 0.00871, r.EpsilonT, 1e-4)
	assert.Equal(t, 16.0, r.DepthEpsilonT)
	assert.False(t, r.OverReinforced)
	assert.Empty(t, r.Warnings())

	assert.InEpsilon(t, r.MomentAboutTension, r.MomentAboutTop, 1e-6)
	require.Len(t, r.Layers, 1)
	assert.True(t, r.Layers[0].Yielded)
	assert.Equal(t, 60000.0, r.Layers[0].Stress)
	assert.InDelta(t, r.Cc, r.Layers[0].Force, 1.0)
}

func TestAnalyze_NoTensionSteel(t *testing.T) {
	s := section.New(12, 18)
	s.Compression = []section.Layer{{Size: rebar.No5, Qty: 2, Depth: 2.5}}
	_, err := flexure.Analyze(s)
	assert.ErrorIs(t, err, flexure.ErrNoTensionSteel)
}

func TestAnalyze_InvalidSection(t *testing.T) {
	s := beam12x18()
	s.Tension[0].Depth = 20
	_, err := flexure.Analyze(s)
	var verr *section.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAnalyze_SolverErrorsPropagate(t *testing.T) {
	_, err := flexure.Analyze(beam12x18(), flexure.WithSolverOptions(solver.WithSamples(1)))
	assert.ErrorIs(t, err, solver.ErrOutOfDomain)
}

func TestAnalyze_Idempotent(t *testing.T) {
	s := beam12x18()
	a, err := flexure.Analyze(s)
	require.NoError(t, err)
	b, err := flexure.Analyze(s)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAnalyze_OwnsSection(t *testing.T) {
	s := beam12x18()
	r, err := flexure.Analyze(s)
	require.NoError(t, err)

	s.Tension[0].Qty = 6
	s.Width = 30
	assert.Equal(t, 3, r.Section.Tension[0].Qty)
	assert.Equal(t, 12.0, r.Section.Width)
}

func TestAnalyze_OverReinforcedUsesEffectiveDepth(t *testing.T) {
	// 4-#11 at mid-height: As/(b·d) = 6.24/196 exceeds ρb, As/Ag = 6.24/420 does not
	s := section.New(14, 30)
	s.Tension = []section.Layer{{Size: rebar.No11, Qty: 4, Depth: 14}}
	r, err := flexure.Analyze(s)
	require.NoError(t, err)

	assert.InDelta(t, 6.24/(14*14), r.Rho, 1e-9)
	assert.Less(t, s.AsT()/s.GrossArea(), r.RhoBalanced)
	assert.Greater(t, r.Rho, r.RhoBalanced)
	assert.True(t, r.OverReinforced)
	require.NotEmpty(t, r.Warnings())
	assert.Contains(t, r.Warnings()[0], "over-reinforced")
}

func TestAnalyze_OverReinforced(t *testing.T) {
	s := section.New(10, 20)
	s.Tension = []section.Layer{
		{Size: rebar.No11, Qty: 3, Depth: 17.5},
		{Size: rebar.No11, Qty: 3, Depth: 15},
	}
	r, err := flexure.Analyze(s)
	require.NoError(t, err)

	assert.True(t, r.OverReinforced)
	assert.InDelta(t, 11.53, r.C, 0.02)
	assert.Equal(t, aci.CompressionControlled, r.Class)
	assert.Equal(t, 0.65, r.Phi)
	assert.Equal(t, 17.5, r.DepthEpsilonT)

	w := r.Warnings()
	require.NotEmpty(t, w)
	assert.Contains(t, w[0], "over-reinforced")
	assert.Contains(t, r.Summary(), "warnings")
}

func TestAnalyze_Doubly(t *testing.T) {
	s := section.New(12, 20)
	s.Tension = []section.Layer{
		{Size: rebar.No9, Qty: 3, Depth: 17.5},
		{Size: rebar.No9, Qty: 2, Depth: 15},
	}
	s.Compression = []section.Layer{{Size: rebar.No6, Qty: 2, Depth: 2.5}}

	r, err := flexure.Analyze(s)
	require.NoError(t, err)
	require.Len(t, r.Layers, 3)
	assert.Equal(t, flexure.Compression, r.Layers[2].Kind)
	assert.Less(t, r.Layers[2].Force, 0.0, "compression steel carries compression")
	assert.Equal(t, 17.5, r.DepthEpsilonT)
	assert.InEpsilon(t, r.MomentAboutTension, r.MomentAboutTop, 1e-5)

	// doubly capacity exceeds the same section without compression steel
	singly, err := flexure.Analyze(s.Bare().WithTension(s.Tension...))
	require.NoError(t, err)
	assert.Greater(t, r.Mn, singly.Mn)
}

func TestAnalyze_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := flexure.Analyze(beam12x18(), flexure.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "flexure analyzed")
}

func TestSummaryAndShear(t *testing.T) {
	s := beam12x18().WithStirrups(section.Stirrup{Size: rebar.No3, Legs: 2, Spacing: 6})
	r, err := flexure.Analyze(s)
	require.NoError(t, err)
	assert.Nil(t, r.Shear)

	r, err = flexure.Analyze(s, flexure.WithShear())
	require.NoError(t, err)
	require.NotNil(t, r.Shear)
	assert.InDelta(t, 35.2, r.Shear.VsKips(), 1e-9)

	sum := r.Summary()
	assert.Contains(t, sum, "12x18")
	assert.Contains(t, sum, "3-#8 @ 16.00")
	assert.Contains(t, sum, "φVn")
	assert.Contains(t, sum, "#3 x2 @ 6.00")
}
