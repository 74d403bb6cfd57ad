package section

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/aci318/internal/rebar"
)

// ParseLayer reads the short layer notation "qty-#size@depth", e.g.
// "3-#8@16". The depth is measured from the compression face.
func ParseLayer(s string) (Layer, error) {
	qtyPart, rest, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Layer{}, fmt.Errorf("layer %q: want qty-#size@depth", s)
	}
	sizePart, depthPart, ok := strings.Cut(rest, "@")
	if !ok {
		return Layer{}, fmt.Errorf("layer %q: want qty-#size@depth", s)
	}

	qty, err := strconv.Atoi(strings.TrimSpace(qtyPart))
	if err != nil {
		return Layer{}, fmt.Errorf("layer %q: bad quantity: %w", s, err)
	}
	size, err := rebar.Parse(sizePart)
	if err != nil {
		return Layer{}, fmt.Errorf("layer %q: %w", s, err)
	}
	depth, err := strconv.ParseFloat(strings.TrimSpace(depthPart), 64)
	if err != nil {
		return Layer{}, fmt.Errorf("layer %q: bad depth: %w", s, err)
	}
	return Layer{Size: size, Qty: qty, Depth: depth}, nil
}

// ParseLayers reads a comma or semicolon separated list of layers.
func ParseLayers(s string) ([]Layer, error) {
	var out []Layer
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if strings.TrimSpace(part) == "" {
			continue
		}
		l, err := ParseLayer(part)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// ParseStirrup reads "#size x legs @ spacing", e.g. "#3x2@6". Spaces are
// ignored and the legs default to 2 when omitted ("#3@6").
func ParseStirrup(s string) (Stirrup, error) {
	compact := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	head, spacingPart, ok := strings.Cut(compact, "@")
	if !ok {
		return Stirrup{}, fmt.Errorf("stirrup %q: want #size x legs @ spacing", s)
	}
	sizePart, legsPart, hasLegs := strings.Cut(strings.ToLower(head), "x")

	size, err := rebar.Parse(sizePart)
	if err != nil {
		return Stirrup{}, fmt.Errorf("stirrup %q: %w", s, err)
	}
	legs := 2
	if hasLegs {
		if legs, err = strconv.Atoi(legsPart); err != nil {
			return Stirrup{}, fmt.Errorf("stirrup %q: bad legs: %w", s, err)
		}
	}
	spacing, err := strconv.ParseFloat(spacingPart, 64)
	if err != nil {
		return Stirrup{}, fmt.Errorf("stirrup %q: bad spacing: %w", s, err)
	}
	return Stirrup{Size: size, Legs: legs, Spacing: spacing}, nil
}

// Notation formats layers in the form ParseLayers accepts.
func Notation(layers []Layer) string {
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = fmt.Sprintf("%d-%s@%g", l.Qty, l.Size, l.Depth)
	}
	return strings.Join(parts, ", ")
}

// StirrupNotation formats a stirrup in the form ParseStirrup accepts.
func StirrupNotation(st Stirrup) string {
	return fmt.Sprintf("%sx%d@%g", st.Size, st.Legs, st.Spacing)
}
