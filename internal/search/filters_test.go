package search_test

import (
	"testing"

	"github.com/alexiusacademia/aci318/internal/flexure"
	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/search"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func design(t *testing.T, b, h float64, size rebar.Size, qty int) *flexure.Result {
	t.Helper()
	s := section.New(b, h).WithTension(section.Layer{Size: size, Qty: qty, Depth: h - 1.5})
	r, err := flexure.Analyze(s)
	require.NoError(t, err)
	return r
}

func fixtures(t *testing.T) []*flexure.Result {
	return []*flexure.Result{
		design(t, 12, 18, rebar.No8, 3),
		design(t, 12, 20, rebar.No8, 3),
		design(t, 12, 20, rebar.No9, 2),
		design(t, 14, 18, rebar.No8, 3),
	}
}

func dims(results []*flexure.Result) [][2]float64 {
	out := make([][2]float64, len(results))
	for i, r := range results {
		out[i] = [2]float64{r.Section.Width, r.Section.Height}
	}
	return out
}

func TestDedupeByDepth(t *testing.T) {
	got := search.DedupeByDepth(fixtures(t))
	assert.Equal(t, [][2]float64{{12, 18}, {12, 20}, {14, 18}}, dims(got))
	assert.Equal(t, rebar.No9, got[1].Section.Tension[0].Size)
}

func TestDedupeByWidth(t *testing.T) {
	got := search.DedupeByWidth(fixtures(t))
	assert.Equal(t, [][2]float64{{12, 18}, {12, 20}, {12, 20}}, dims(got))
}

func TestFilterWidthAndMaxBar(t *testing.T) {
	in := fixtures(t)
	assert.Len(t, search.FilterWidth(in, 12), 3)
	assert.Empty(t, search.FilterWidth(in, 13))

	got := search.FilterMaxBar(in, rebar.No8)
	require.Len(t, got, 3)
	for _, r := range got {
		assert.Equal(t, rebar.No8, r.Section.Tension[0].Size)
	}
}

func TestSortByArea(t *testing.T) {
	in := fixtures(t)
	got := search.SortByArea(in)
	assert.Equal(t, [][2]float64{{12, 18}, {12, 20}, {12, 20}, {14, 18}}, dims(got))
	assert.Equal(t, rebar.No9, got[1].Section.Tension[0].Size, "lighter steel first on equal gross area")
	assert.Equal(t, rebar.No8, in[1].Section.Tension[0].Size, "input untouched")
}
