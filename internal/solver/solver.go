// Package solver finds the neutral axis depth of a reinforced concrete
// section by strain compatibility and force equilibrium.
//
// The equilibrium function is piecewise smooth with kinks where a layer
// yields, so the solver samples it across a bounded domain, bisects every
// bracketed sign change and keeps the smallest positive root.
package solver

import (
	"errors"
	"fmt"
	"math"

	"github.com/alexiusacademia/aci318/internal/section"
)

var (
	// ErrNoRoot is returned when the equilibrium function does not change
	// sign anywhere in the sampled domain.
	ErrNoRoot = errors.New("no neutral axis root in domain")

	// ErrOutOfDomain is returned when the section or options give an
	// empty or non-finite search domain.
	ErrOutOfDomain = errors.New("neutral axis domain is invalid")
)

// Default solver parameters
const (
	DefaultSamples       = 250
	DefaultDomainFactor  = 5.0 // upper bound = factor * h
	DefaultLower         = 1e-6
	DefaultTolerance     = 1e-6
	DefaultMaxIterations = 200
)

// Options holds the sampling and bisection parameters.
type Options struct {
	Samples       int
	DomainFactor  float64
	Lower         float64
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the default parameters.
func DefaultOptions() Options {
	return Options{
		Samples:       DefaultSamples,
		DomainFactor:  DefaultDomainFactor,
		Lower:         DefaultLower,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// Option adjusts Options.
type Option func(*Options)

// WithSamples sets the number of sample points.
func WithSamples(n int) Option {
	return func(o *Options) { o.Samples = n }
}

// WithDomainFactor sets the upper bound of the domain as a multiple of h.
func WithDomainFactor(f float64) Option {
	return func(o *Options) { o.DomainFactor = f }
}

// WithTolerance sets the bisection interval tolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithMaxIterations caps bisection steps per bracket.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// Root is a solved neutral axis.
type Root struct {
	C          float64   // neutral axis depth from the compression face (in)
	Iterations int       // bisection steps spent on the selected root
	Candidates []float64 // every refined root, ascending
}

// Func is an equilibrium function of the neutral axis depth.
type Func func(c float64) float64

// StressBlockDepth returns a = β1·c, limited to the section height.
func StressBlockDepth(sec section.Section, c float64) float64 {
	return math.Min(sec.Beta1()*c, sec.Height)
}

// Strain returns the strain at depth z for neutral axis c, tension positive,
// scaled so the extreme compression fiber strain is -ε_cu.
func Strain(epsilonCU, c, z float64) float64 {
	return epsilonCU * (z - c) / c
}

// Stress returns sign(ε)·min(|ε·Es|, fy).
func Stress(strain, es, fy float64) float64 {
	s := math.Min(math.Abs(strain*es), fy)
	if strain < 0 {
		return -s
	}
	return s
}

// Equilibrium builds F(c) = Cc + ΣCs - ΣT for sec. The returned closure
// captures copies of the coefficients, not the section.
func Equilibrium(sec section.Section) Func {
	var (
		b     = sec.Width
		fc    = sec.Fc
		fy    = sec.Fy
		es    = sec.Es
		eps   = sec.EpsilonCU
		beta1 = sec.Beta1()
		h     = sec.Height
	)
	type bar struct{ area, depth float64 }
	tension := make([]bar, 0, len(sec.Tension))
	for _, l := range sec.Tension {
		tension = append(tension, bar{l.Area(), l.Depth})
	}
	compression := make([]bar, 0, len(sec.Compression))
	for _, l := range sec.Compression {
		compression = append(compression, bar{l.Area(), l.Depth})
	}

	return func(c float64) float64 {
		a := math.Min(beta1*c, h)
		f := 0.85 * fc * b * a
		for _, l := range compression {
			// compression positive
			f -= l.area * Stress(Strain(eps, c, l.depth), es, fy)
		}
		for _, l := range tension {
			f -= l.area * Stress(Strain(eps, c, l.depth), es, fy)
		}
		return f
	}
}

// NeutralAxis solves the neutral axis depth of sec.
func NeutralAxis(sec section.Section, opts ...Option) (Root, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	upper := o.DomainFactor * sec.Height
	return FindRoot(Equilibrium(sec), o.Lower, upper, o)
}

// FindRoot samples f over [lower, upper], refines every sign change by
// bisection and returns the smallest positive root.
func FindRoot(f Func, lower, upper float64, o Options) (Root, error) {
	if o.Samples < 2 || o.Tolerance <= 0 || o.MaxIterations <= 0 {
		return Root{}, fmt.Errorf("%w: samples=%d tolerance=%g iterations=%d",
			ErrOutOfDomain, o.Samples, o.Tolerance, o.MaxIterations)
	}
	if !(lower > 0) || !(upper > lower) || math.IsInf(upper, 0) {
		return Root{}, fmt.Errorf("%w: [%g, %g]", ErrOutOfDomain, lower, upper)
	}

	step := (upper - lower) / float64(o.Samples-1)
	var (
		roots []float64
		iters []int
	)
	x0 := lower
	f0 := f(x0)
	if f0 == 0 {
		roots = append(roots, x0)
		iters = append(iters, 0)
	}
	for i := 1; i < o.Samples; i++ {
		x1 := lower + float64(i)*step
		if i == o.Samples-1 {
			x1 = upper
		}
		f1 := f(x1)
		switch {
		case math.IsNaN(f0) || math.IsNaN(f1):
		case f1 == 0:
			roots = append(roots, x1)
			iters = append(iters, 0)
		case f0 != 0 && (f0 < 0) != (f1 < 0):
			r, n := bisect(f, x0, x1, f0, o)
			roots = append(roots, r)
			iters = append(iters, n)
		}
		x0, f0 = x1, f1
	}

	best := -1
	for i, r := range roots {
		if r > 0 && (best < 0 || r < roots[best]) {
			best = i
		}
	}
	if best < 0 {
		return Root{}, ErrNoRoot
	}
	return Root{C: roots[best], Iterations: iters[best], Candidates: roots}, nil
}

// bisect refines a bracket [lo, hi] with f(lo) = flo of opposite sign to f(hi).
func bisect(f Func, lo, hi, flo float64, o Options) (float64, int) {
	n := 0
	for ; n < o.MaxIterations && hi-lo > o.Tolerance; n++ {
		mid := 0.5 * (lo + hi)
		fm := f(mid)
		if fm == 0 {
			return mid, n + 1
		}
		if (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), n
}
