package section_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func beam12x18() section.Section {
	s := section.New(12, 18)
	s.Tension = []section.Layer{{Size: rebar.No8, Qty: 3, Depth: 16}}
	return s
}

func TestNewDefaults(t *testing.T) {
	s := section.New(12, 18)
	assert.Equal(t, 1.5, s.TensionCover)
	assert.Equal(t, 1.5, s.CompressionCover)
	assert.Equal(t, 1.5, s.SideCover)
	assert.Equal(t, 1.5, s.ClearSpacing)
	assert.Equal(t, 4000.0, s.Fc)
	assert.Equal(t, 60000.0, s.Fy)
	assert.Equal(t, 29e6, s.Es)
	assert.Equal(t, 0.003, s.EpsilonCU)

	s = section.New(10, 20,
		section.WithMaterials(5000, 75000),
		section.WithCovers(2, 2.5, 1.75),
		section.WithClearSpacing(1),
		section.WithSteelModulus(29.5e6),
		section.WithUltimateStrain(0.0035),
	)
	assert.Equal(t, 5000.0, s.Fc)
	assert.Equal(t, 75000.0, s.Fy)
	assert.Equal(t, 2.0, s.TensionCover)
	assert.Equal(t, 2.5, s.CompressionCover)
	assert.Equal(t, 1.75, s.SideCover)
	assert.Equal(t, 1.0, s.ClearSpacing)
	assert.Equal(t, 29.5e6, s.Es)
	assert.Equal(t, 0.0035, s.EpsilonCU)
}

func TestDerivedQuantities(t *testing.T) {
	s := beam12x18()
	assert.Equal(t, 216.0, s.GrossArea())
	assert.InDelta(t, 12*18*18*18/12.0, s.Ix(), 1e-9)
	assert.InDelta(t, 2.37, s.AsT(), 1e-12)
	assert.Equal(t, 0.0, s.AsC())
	assert.Equal(t, 16.0, s.EffectiveDepth())
	assert.Equal(t, 16.0, s.ExtremeTensionDepth())
	assert.InDelta(t, 2.37/(12*16), s.Rho(), 1e-12)
	assert.InDelta(t, 0.75*s.RhoBalanced(), s.RhoMax(), 1e-15)
	assert.InDelta(t, 200/60000.0, s.RhoMin(), 1e-15)
	assert.InDelta(t, 60000/29e6, s.YieldStrain(), 1e-15)
}

func TestEffectiveDepth_Weighted(t *testing.T) {
	s := section.New(14, 24)
	s.Tension = []section.Layer{
		{Size: rebar.No9, Qty: 2, Depth: 21.5}, // 2.00 in²
		{Size: rebar.No8, Qty: 2, Depth: 19.5}, // 1.58 in²
	}
	want := (2.0*21.5 + 1.58*19.5) / 3.58
	assert.InDelta(t, want, s.EffectiveDepth(), 1e-12)
	assert.Equal(t, 21.5, s.ExtremeTensionDepth())
}

func TestEffectiveDepth_Fallback(t *testing.T) {
	s := section.New(12, 18)
	assert.Equal(t, 18-1.5-0.5, s.EffectiveDepth())
	assert.Equal(t, 1.5, s.CompressionDepth())
}

func TestCloneIsolation(t *testing.T) {
	base := beam12x18()
	base.Compression = []section.Layer{{Size: rebar.No4, Qty: 2, Depth: 2}}
	base.Stirrups = []section.Stirrup{{Size: rebar.No3, Legs: 2, Spacing: 6}}

	trial := base.Clone()
	trial.Tension[0].Qty = 5
	trial.Tension = append(trial.Tension, section.Layer{Size: rebar.No5, Qty: 2, Depth: 14})
	trial.Compression[0].Size = rebar.No6
	trial.Stirrups[0].Spacing = 3

	assert.Equal(t, 3, base.Tension[0].Qty)
	assert.Len(t, base.Tension, 1)
	assert.Equal(t, rebar.No4, base.Compression[0].Size)
	assert.Equal(t, 6.0, base.Stirrups[0].Spacing)
}

func TestWithHelpersDoNotMutate(t *testing.T) {
	base := section.New(12, 18)
	base.Tension = make([]section.Layer, 1, 8) // spare capacity must not leak
	base.Tension[0] = section.Layer{Size: rebar.No8, Qty: 3, Depth: 16}

	a := base.WithTension(section.Layer{Size: rebar.No5, Qty: 2, Depth: 14})
	b := base.WithTension(section.Layer{Size: rebar.No6, Qty: 2, Depth: 13})
	c := base.WithCompression(section.Layer{Size: rebar.No4, Qty: 2, Depth: 2})

	assert.Len(t, base.Tension, 1)
	assert.Empty(t, base.Compression)
	require.Len(t, a.Tension, 2)
	require.Len(t, b.Tension, 2)
	assert.Equal(t, rebar.No5, a.Tension[1].Size)
	assert.Equal(t, rebar.No6, b.Tension[1].Size)
	assert.Len(t, c.Compression, 1)

	bare := a.Bare()
	assert.Empty(t, bare.Tension)
	assert.Len(t, a.Tension, 2)
}

func TestAddLayers(t *testing.T) {
	s := section.New(12, 18)
	require.NoError(t, s.AddTension(rebar.No8, 3, 16))
	require.NoError(t, s.AddCompression(rebar.No4, 2, 2))
	require.NoError(t, s.AddStirrup(rebar.No3, 2, 6))
	assert.Len(t, s.Tension, 1)
	assert.Len(t, s.Compression, 1)
	assert.InDelta(t, 0.22/6, s.Stirrups[0].AvOverS(), 1e-12)

	err := s.AddTension(rebar.Size(12), 2, 16)
	assert.ErrorIs(t, err, rebar.ErrUnknownSize)
	assert.Len(t, s.Tension, 1)
}

func TestFitsWidth_Boundary(t *testing.T) {
	// 3 #8: 3*1.0 + 2*1.5 + 2*1.5 = 9.0 in
	assert.True(t, section.FitsWidth(9, 1.5, 1.5, rebar.No8, 3), "exact fit accepted")
	assert.False(t, section.FitsWidth(8, 1.5, 1.5, rebar.No8, 3), "one unit under rejected")
	assert.False(t, section.FitsWidth(8.999, 1.5, 1.5, rebar.No8, 3))

	// 4 #5: 4*0.625 + 3*1.5 + 2*1.5 = 10.0 in, float arithmetic
	assert.True(t, section.FitsWidth(10, 1.5, 1.5, rebar.No5, 4))
	assert.False(t, section.FitsWidth(9, 1.5, 1.5, rebar.No5, 4))

	assert.InDelta(t, 9.0, section.LayerWidth(rebar.No8, 3, 1.5, 1.5), 1e-12)
}

func TestMaxBarsPerLayer(t *testing.T) {
	s := section.New(12, 18)
	// n*1.0 + (n-1)*1.5 + 3 <= 12  ->  n <= 4.2
	assert.Equal(t, 4, s.MaxBarsPerLayer(rebar.No8))
	assert.True(t, s.Fits(section.Layer{Size: rebar.No8, Qty: 4}))
	assert.False(t, s.Fits(section.Layer{Size: rebar.No8, Qty: 5}))

	narrow := section.New(4, 10)
	assert.Equal(t, 0, narrow.MaxBarsPerLayer(rebar.No11))
}

func TestValidate(t *testing.T) {
	ok := beam12x18()
	require.NoError(t, ok.Validate())

	tests := []struct {
		name   string
		mutate func(*section.Section)
	}{
		{"zero width", func(s *section.Section) { s.Width = 0 }},
		{"negative fc", func(s *section.Section) { s.Fc = -1 }},
		{"zero fy", func(s *section.Section) { s.Fy = 0 }},
		{"zero qty", func(s *section.Section) { s.Tension[0].Qty = 0 }},
		{"depth at top", func(s *section.Section) { s.Tension[0].Depth = 0 }},
		{"depth at bottom", func(s *section.Section) { s.Tension[0].Depth = 18 }},
		{"unknown bar", func(s *section.Section) { s.Tension[0].Size = 13 }},
		{"bad stirrup", func(s *section.Section) {
			s.Stirrups = []section.Stirrup{{Size: rebar.No3, Legs: 2, Spacing: 0}}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := beam12x18().Clone()
			tt.mutate(&s)
			err := s.Validate()
			var verr *section.ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "b1.json")
	data := `{
		"name": "B1",
		"width": 12, "height": 18,
		"fc": 4000, "fy": 60000,
		"tension": [{"size": "#8", "qty": 3, "depth": 16}],
		"compression": [{"size": "#4", "qty": 2, "depth": 2.5}],
		"stirrups": [{"size": "#3", "legs": 2, "spacing": 6}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := section.LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "B1", s.Name)
	assert.Equal(t, 29e6, s.Es)
	assert.Equal(t, 0.003, s.EpsilonCU)
	assert.Equal(t, 1.5, s.TensionCover)
	require.Len(t, s.Tension, 1)
	assert.Equal(t, rebar.No8, s.Tension[0].Size)
	assert.Equal(t, rebar.No4, s.Compression[0].Size)
	assert.Equal(t, 2, s.Stirrups[0].Legs)

	_, err = section.LoadFromFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestParse_UnknownBar(t *testing.T) {
	_, err := section.Parse([]byte(`{"width":12,"height":18,"fc":4000,"fy":60000,
		"tension":[{"size":"#12","qty":3,"depth":16}]}`))
	assert.ErrorIs(t, err, rebar.ErrUnknownSize)
}
