package aci

import "math"

// ProportionDimensions returns a rule-of-thumb first guess of width and
// depth (in) for a member. span is in feet:
//   - beams and slabs: simply supported span
//   - two-way slabs: the longer span
//   - walls and retaining walls: wall height
//   - columns: unbraced length
//
// Slabs and walls are proportioned per 12 in. strip.
func ProportionDimensions(span float64, member MemberType) (width, depth float64) {
	in := span * 12
	switch member {
	case Beam:
		// Table 9.3.1.1 simply supported depth, width about half of it
		depth = math.Ceil(in / 16)
		return math.Ceil(depth / 2), depth
	case Slab, OneWaySlab:
		return 12, math.Ceil(in / 20)
	case TwoWaySlab:
		return 12, math.Ceil(in / 30)
	case Wall:
		return 12, math.Ceil(in / 25)
	case RetainingWall:
		return 12, math.Ceil(in * 0.1)
	case Column:
		side := math.Ceil(in / 40)
		return side, side
	default:
		return 12, 12
	}
}
