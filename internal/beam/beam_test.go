package beam_test

import (
	"testing"

	"github.com/alexiusacademia/aci318/internal/beam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kipFt = 12000.0

func TestSingly_Analyze(t *testing.T) {
	b := beam.NewSinglyReinforced(12, 16, 4000, 60000)
	r, err := b.Analyze(2.37)
	require.NoError(t, err)

	assert.InDelta(t, 3.4853, r.A, 1e-4)
	assert.InDelta(t, 4.1003, r.C, 1e-4)
	assert.Equal(t, 0.9, r.Phi)
	assert.True(t, r.IsTensionControlled)
	assert.InDelta(t, 2027395, r.Mn, 5)
	assert.True(t, r.MeetsMinReinf)

	_, err = b.Analyze(0)
	assert.Error(t, err)
}

func TestSingly_TensionControlledLimit(t *testing.T) {
	b := beam.NewSinglyReinforced(12, 16, 4000, 60000)
	as, phiMn := b.TensionControlledLimit(0.005)
	assert.InDelta(t, 0.0180625*12*16, as, 1e-9)
	assert.InDelta(t, 209.9, phiMn/kipFt, 0.1)

	// the area at the limit produces exactly the limiting strain
	r, err := b.Analyze(as)
	require.NoError(t, err)
	assert.InDelta(t, 0.005, r.EpsilonT, 1e-12)
}

func TestSingly_Design(t *testing.T) {
	b := beam.NewSinglyReinforced(12, 16, 4000, 60000)

	r, err := b.Design(150 * kipFt)
	require.NoError(t, err)
	assert.True(t, r.IsAdequate)
	assert.True(t, r.IsTensionControlled)
	assert.InDelta(t, 2.334, r.AsRequired, 1e-3)
	assert.InDelta(t, 150*kipFt, r.PhiMn, 1)

	r, err = b.Design(5 * kipFt)
	require.NoError(t, err)
	assert.Equal(t, r.AsMin, r.AsProvided, "minimum steel governs light moments")

	r, err = b.Design(250 * kipFt)
	require.NoError(t, err)
	assert.False(t, r.IsAdequate)
	assert.Contains(t, r.Message, "inadequate")

	_, err = beam.NewSinglyReinforced(0, 16, 4000, 60000).Design(1)
	assert.Error(t, err)
}

func TestDoubly_Design(t *testing.T) {
	b := beam.NewDoublyReinforced(12, 16, 2.5, 4000, 60000)

	r, err := b.Design(150*kipFt, 0.005)
	require.NoError(t, err)
	assert.False(t, r.RequiresCompSteel)

	r, err = b.Design(250*kipFt, 0.005)
	require.NoError(t, err)
	require.True(t, r.RequiresCompSteel)
	assert.InDelta(t, 6.0, r.CMax, 1e-9)
	assert.False(t, r.CompYielded)
	assert.InDelta(t, 0.00175*29e6, r.FscStress, 1e-6)
	assert.InDelta(t, r.As2, r.AscMin, 1e-12)
	assert.Greater(t, r.AscRequired, r.AscMin)
	assert.InDelta(t, r.As1+r.As2, r.AsTotal, 1e-12)

	_, err = beam.NewDoublyReinforced(12, 16, 0, 4000, 60000).Design(1, 0.005)
	assert.Error(t, err)
}

func TestMomentBound(t *testing.T) {
	b := beam.NewSinglyReinforced(12, 16, 4000, 60000)
	assert.Greater(t, beam.MomentBound(2.37, 60000, 16), b.NominalMoment(2.37))
}
