package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexiusacademia/aci318/internal/flexure"
	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
)

// barSignature lists the tension bar diameters ordered by depth.
func barSignature(sec section.Section) string {
	layers := append([]section.Layer(nil), sec.Tension...)
	sort.SliceStable(layers, func(i, j int) bool { return layers[i].Depth < layers[j].Depth })
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = fmt.Sprintf("%g", l.Size.Diameter())
	}
	return strings.Join(parts, ";")
}

// dedupe keeps, for each key, the result minimizing less, in the order
// the winners first appear.
func dedupe(results []*flexure.Result, key func(section.Section) string, less func(a, b section.Section) bool) []*flexure.Result {
	best := make(map[string]int)
	var order []string
	for i, r := range results {
		k := key(r.Section)
		j, ok := best[k]
		if !ok {
			best[k] = i
			order = append(order, k)
			continue
		}
		if less(r.Section, results[j].Section) {
			best[k] = i
		}
	}
	out := make([]*flexure.Result, 0, len(order))
	for _, k := range order {
		out = append(out, results[best[k]])
	}
	return out
}

// DedupeByDepth keeps the shallowest design among those sharing a width
// and tension bar signature.
func DedupeByDepth(results []*flexure.Result) []*flexure.Result {
	return dedupe(results,
		func(s section.Section) string { return fmt.Sprintf("%g|%s", s.Width, barSignature(s)) },
		func(a, b section.Section) bool { return a.Height < b.Height })
}

// DedupeByWidth keeps the narrowest design among those sharing a height
// and tension bar signature.
func DedupeByWidth(results []*flexure.Result) []*flexure.Result {
	return dedupe(results,
		func(s section.Section) string { return fmt.Sprintf("%g|%s", s.Height, barSignature(s)) },
		func(a, b section.Section) bool { return a.Width < b.Width })
}

// FilterWidth keeps designs of the given width.
func FilterWidth(results []*flexure.Result, width float64) []*flexure.Result {
	var out []*flexure.Result
	for _, r := range results {
		if r.Section.Width == width {
			out = append(out, r)
		}
	}
	return out
}

// FilterMaxBar keeps designs whose longitudinal bars are all size or smaller.
func FilterMaxBar(results []*flexure.Result, size rebar.Size) []*flexure.Result {
	var out []*flexure.Result
next:
	for _, r := range results {
		for _, l := range append(append([]section.Layer(nil), r.Section.Tension...), r.Section.Compression...) {
			if l.Size > size {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// SortByArea orders designs by gross area, then tension steel area. The
// input slice is not modified.
func SortByArea(results []*flexure.Result) []*flexure.Result {
	out := append([]*flexure.Result(nil), results...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Section, out[j].Section
		if ga, gb := a.GrossArea(), b.GrossArea(); ga != gb {
			return ga < gb
		}
		return a.AsT() < b.AsT()
	})
	return out
}
