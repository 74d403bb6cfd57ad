package solver_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/alexiusacademia/aci318/internal/solver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singly() section.Section {
	s := section.New(12, 18)
	s.Tension = []section.Layer{{Size: rebar.No8, Qty: 3, Depth: 16}}
	return s
}

func TestNeutralAxis_MatchesClosedForm(t *testing.T) {
	s := singly()
	root, err := solver.NeutralAxis(s)
	require.NoError(t, err)

	// steel yields, so As·fy = 0.85·f'c·b·β1·c
	want := 2.37 * 60000 / (0.85 * 4000 * 12 * 0.85)
	assert.InDelta(t, want, root.C, 1e-5)
	assert.Greater(t, root.Iterations, 0)
	assert.NotEmpty(t, root.Candidates)
}

func TestNeutralAxis_Doubly(t *testing.T) {
	s := section.New(12, 20)
	s.Tension = []section.Layer{
		{Size: rebar.No9, Qty: 3, Depth: 17.5},
		{Size: rebar.No9, Qty: 2, Depth: 15},
	}
	s.Compression = []section.Layer{{Size: rebar.No6, Qty: 2, Depth: 2.5}}

	root, err := solver.NeutralAxis(s)
	require.NoError(t, err)
	assert.Greater(t, root.C, 0.0)
	assert.Less(t, root.C, s.Height)

	f := solver.Equilibrium(s)
	// force residual at the root is tiny compared with the steel force
	assert.Less(t, math.Abs(f(root.C)), 1.0)
}

func TestNeutralAxis_NoTensionSteel(t *testing.T) {
	s := section.New(12, 18)
	_, err := solver.NeutralAxis(s)
	assert.ErrorIs(t, err, solver.ErrNoRoot)
}

func TestNeutralAxis_Idempotent(t *testing.T) {
	s := singly()
	a, err := solver.NeutralAxis(s)
	require.NoError(t, err)
	b, err := solver.NeutralAxis(s)
	require.NoError(t, err)
	assert.Equal(t, a.C, b.C)
	assert.Equal(t, a.Iterations, b.Iterations)
}

func TestNeutralAxis_InvalidDomain(t *testing.T) {
	s := singly()
	s.Height = 0
	_, err := solver.NeutralAxis(s)
	assert.ErrorIs(t, err, solver.ErrOutOfDomain)

	_, err = solver.NeutralAxis(singly(), solver.WithSamples(1))
	assert.ErrorIs(t, err, solver.ErrOutOfDomain)

	_, err = solver.NeutralAxis(singly(), solver.WithTolerance(0))
	assert.ErrorIs(t, err, solver.ErrOutOfDomain)
}

func TestNeutralAxis_Options(t *testing.T) {
	coarse, err := solver.NeutralAxis(singly(),
		solver.WithSamples(20),
		solver.WithDomainFactor(2),
		solver.WithTolerance(1e-3),
		solver.WithMaxIterations(100),
	)
	require.NoError(t, err)
	fine, err := solver.NeutralAxis(singly())
	require.NoError(t, err)
	assert.InDelta(t, fine.C, coarse.C, 1e-3)
	assert.Less(t, coarse.Iterations, fine.Iterations)
}

func TestFindRoot_SmallestPositive(t *testing.T) {
	f := func(x float64) float64 { return (x - 1) * (x - 2) * (x - 3) }
	root, err := solver.FindRoot(f, 0.5, 4, solver.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, root.C, 1e-6)
	require.Len(t, root.Candidates, 3)
	assert.InDelta(t, 2.0, root.Candidates[1], 1e-6)
	assert.InDelta(t, 3.0, root.Candidates[2], 1e-6)
}

func TestFindRoot_NoSignChange(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }
	_, err := solver.FindRoot(f, 1e-6, 10, solver.DefaultOptions())
	assert.ErrorIs(t, err, solver.ErrNoRoot)
}

func TestStrainAndStress(t *testing.T) {
	// fiber at the compression face carries -ε_cu
	assert.InDelta(t, -0.003, solver.Strain(0.003, 4, 0), 1e-15)
	assert.Equal(t, 0.0, solver.Strain(0.003, 4, 4))
	assert.InDelta(t, 0.009, solver.Strain(0.003, 4, 16), 1e-15)

	assert.Equal(t, 60000.0, solver.Stress(0.01, 29e6, 60000))
	assert.Equal(t, -60000.0, solver.Stress(-0.01, 29e6, 60000))
	assert.InDelta(t, 29000.0, solver.Stress(0.001, 29e6, 60000), 1e-9)

	s := singly()
	assert.InDelta(t, 0.85*4, solver.StressBlockDepth(s, 4), 1e-12)
	assert.Equal(t, 18.0, solver.StressBlockDepth(s, 40))
}
