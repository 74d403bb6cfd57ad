// Package rebar holds the ACI standard reinforcing bar catalog.
package rebar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownSize is returned when a bar designation is not in the catalog.
var ErrUnknownSize = errors.New("unknown bar size")

// Size is an ACI bar designation. The numeric value is the bar number,
// so No8 prints as "#8".
type Size int

// Standard ACI bar sizes
const (
	No3  Size = 3
	No4  Size = 4
	No5  Size = 5
	No6  Size = 6
	No7  Size = 7
	No8  Size = 8
	No9  Size = 9
	No10 Size = 10
	No11 Size = 11
	No14 Size = 14
	No18 Size = 18
)

// Bar is an immutable catalog entry
type Bar struct {
	Size     Size
	Diameter float64 // in
	Area     float64 // in²
	Weight   float64 // lb/ft
}

// table is indexed by bar number; unused slots have zero area
var table = [...]Bar{
	No3:  {No3, 0.375, 0.11, 0.376},
	No4:  {No4, 0.500, 0.20, 0.668},
	No5:  {No5, 0.625, 0.31, 1.043},
	No6:  {No6, 0.750, 0.44, 1.502},
	No7:  {No7, 0.875, 0.60, 2.044},
	No8:  {No8, 1.000, 0.79, 2.670},
	No9:  {No9, 1.128, 1.00, 3.400},
	No10: {No10, 1.270, 1.27, 4.303},
	No11: {No11, 1.410, 1.56, 5.313},
	No14: {No14, 1.693, 2.25, 7.650},
	No18: {No18, 2.257, 4.00, 13.60},
}

var sizes = []Size{No3, No4, No5, No6, No7, No8, No9, No10, No11, No14, No18}

// Valid reports whether s is a catalog size.
func (s Size) Valid() bool {
	return s > 0 && int(s) < len(table) && table[s].Area > 0
}

// Bar returns the catalog entry for s. Sizes that are not in the catalog
// return the zero Bar; use Lookup when the size comes from user input.
func (s Size) Bar() Bar {
	if !s.Valid() {
		return Bar{}
	}
	return table[s]
}

// Diameter is a shortcut for s.Bar().Diameter.
func (s Size) Diameter() float64 { return s.Bar().Diameter }

// Area is a shortcut for s.Bar().Area.
func (s Size) Area() float64 { return s.Bar().Area }

func (s Size) String() string {
	return "#" + strconv.Itoa(int(s))
}

// Lookup returns the bar for s or ErrUnknownSize.
func Lookup(s Size) (Bar, error) {
	if !s.Valid() {
		return Bar{}, fmt.Errorf("%w: %s", ErrUnknownSize, s)
	}
	return table[s], nil
}

// Parse resolves a designation such as "#8" or "8".
func Parse(designation string) (Size, error) {
	v := strings.TrimPrefix(strings.TrimSpace(designation), "#")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSize, designation)
	}
	s := Size(n)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSize, designation)
	}
	return s, nil
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(designation string) Size {
	s, err := Parse(designation)
	if err != nil {
		panic(err)
	}
	return s
}

// Sizes returns every catalog size in ascending order.
func Sizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes)
	return out
}

// Range returns the catalog sizes from..to inclusive.
func Range(from, to Size) []Size {
	var out []Size
	for _, s := range sizes {
		if s >= from && s <= to {
			out = append(out, s)
		}
	}
	return out
}

// MarshalText implements encoding.TextMarshaler ("#8").
func (s Size) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSize, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Size) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
