package aci

import (
	"fmt"
	"math"
)

// MemberType identifies the kind of member a detailing rule applies to.
type MemberType int

const (
	Slab MemberType = iota
	Joist
	Wall
	Beam
	Column
	TensionTie
	Strut
	Pedestal
	WallBoundaryElement
	OneWaySlab
	TwoWaySlab
	RetainingWall
)

var memberNames = map[MemberType]string{
	Slab:                "slab",
	Joist:               "joist",
	Wall:                "wall",
	Beam:                "beam",
	Column:              "column",
	TensionTie:          "tension-tie",
	Strut:               "strut",
	Pedestal:            "pedestal",
	WallBoundaryElement: "wall-boundary",
	OneWaySlab:          "one-way-slab",
	TwoWaySlab:          "two-way-slab",
	RetainingWall:       "retaining-wall",
}

func (m MemberType) String() string {
	if s, ok := memberNames[m]; ok {
		return s
	}
	return fmt.Sprintf("member(%d)", int(m))
}

// ParseMemberType resolves a member name as printed by String.
func ParseMemberType(s string) (MemberType, error) {
	for m, name := range memberNames {
		if name == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown member type %q", s)
}

// ReinforcementType identifies the role of the bars being detailed.
type ReinforcementType int

const (
	Longitudinal ReinforcementType = iota
	Stirrup
	Tie
	Spiral
	Hoop
)

func (m MemberType) slabLike() bool {
	switch m {
	case Slab, OneWaySlab, TwoWaySlab, Joist, Wall, WallBoundaryElement:
		return true
	}
	return false
}

// MinCoverCIP returns the specified cover for cast-in-place nonprestressed
// members and the clause it came from.
// ACI 318-19 Table 20.5.1.3.1
func MinCoverCIP(member MemberType, reinf ReinforcementType, castAgainstEarth, exposed bool) (float64, string) {
	switch {
	case castAgainstEarth:
		return 3.0, "3.0 in. cast against and permanently in contact with ground per Table 20.5.1.3.1"
	case exposed && member.slabLike():
		return 1.5, "1.5 in. for slabs, joists and walls exposed to weather per Table 20.5.1.3.1"
	case exposed:
		return 2.0, "2.0 in. for other members exposed to weather per Table 20.5.1.3.1"
	case member.slabLike():
		return 0.75, "0.75 in. for slabs, joists and walls not exposed to weather per Table 20.5.1.3.1"
	case reinf == Longitudinal:
		return 1.5, "1.5 in. for primary reinforcement in beams, columns and tension ties per Table 20.5.1.3.1"
	default:
		return 1.5, "1.5 in. for stirrups, ties, spirals and hoops per Table 20.5.1.3.1"
	}
}

// MinHorizontalClearSpacing returns the minimum clear spacing between
// parallel bars in a layer for a bar diameter db and nominal maximum
// aggregate size agg.
// ACI 318-19 25.2.1 (beams and slabs) and 25.2.3 (columns and similar)
func MinHorizontalClearSpacing(db, agg float64, reinf ReinforcementType, member MemberType) (float64, string) {
	if reinf == Longitudinal {
		switch member {
		case Column, Pedestal, Strut, WallBoundaryElement:
			s := math.Max(math.Max(1.5, 1.5*db), 4.0/3.0*agg)
			return s, fmt.Sprintf("min. horizontal clear spacing = %.3f in. per 25.2.3", s)
		}
		s := math.Max(math.Max(1.0, db), 4.0/3.0*agg)
		return s, fmt.Sprintf("min. horizontal clear spacing = %.3f in. per 25.2.1", s)
	}
	// TODO: prestressing strand and bundled bar clearances (25.2.4-25.2.10)
	s := math.Max(math.Max(1.5, 1.5*db), 4.0/3.0*agg)
	return s, fmt.Sprintf("min. horizontal clear spacing = %.3f in. per 25.2.3", s)
}

// MinVerticalClearSpacing between layers of parallel bars.
// ACI 318-19 25.2.2
func MinVerticalClearSpacing() (float64, string) {
	return 1.0, "min. vertical clear spacing = 1.0 in. per 25.2.2"
}
