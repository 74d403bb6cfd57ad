package section_test

import (
	"testing"

	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayer(t *testing.T) {
	l, err := section.ParseLayer("3-#8@16")
	require.NoError(t, err)
	assert.Equal(t, section.Layer{Size: rebar.No8, Qty: 3, Depth: 16}, l)

	l, err = section.ParseLayer(" 2-9 @ 17.5 ")
	require.NoError(t, err)
	assert.Equal(t, section.Layer{Size: rebar.No9, Qty: 2, Depth: 17.5}, l)

	for _, bad := range []string{"3#8@16", "3-#8", "x-#8@16", "3-#8@deep"} {
		_, err := section.ParseLayer(bad)
		assert.Error(t, err, bad)
	}
	_, err = section.ParseLayer("3-#12@16")
	assert.ErrorIs(t, err, rebar.ErrUnknownSize)
}

func TestParseLayers(t *testing.T) {
	ls, err := section.ParseLayers("3-#9@17.5, 2-#9@15;")
	require.NoError(t, err)
	require.Len(t, ls, 2)
	assert.Equal(t, 15.0, ls[1].Depth)

	ls, err = section.ParseLayers("")
	require.NoError(t, err)
	assert.Empty(t, ls)

	assert.Equal(t, "3-#9@17.5, 2-#9@15", section.Notation([]section.Layer{
		{Size: rebar.No9, Qty: 3, Depth: 17.5},
		{Size: rebar.No9, Qty: 2, Depth: 15},
	}))
}

func TestParseStirrup(t *testing.T) {
	st, err := section.ParseStirrup("#3x2@6")
	require.NoError(t, err)
	assert.Equal(t, section.Stirrup{Size: rebar.No3, Legs: 2, Spacing: 6}, st)

	st, err = section.ParseStirrup("#4 X 4 @ 5.5")
	require.NoError(t, err)
	assert.Equal(t, section.Stirrup{Size: rebar.No4, Legs: 4, Spacing: 5.5}, st)

	assert.Equal(t, "#4x4@5.5", section.StirrupNotation(st))

	st, err = section.ParseStirrup("#3@8")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Legs)

	_, err = section.ParseStirrup("#3x2")
	assert.Error(t, err)
	_, err = section.ParseStirrup("#3xa@6")
	assert.Error(t, err)
}
