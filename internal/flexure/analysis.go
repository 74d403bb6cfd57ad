// Package flexure computes the nominal and design moment strength of a
// rectangular section by strain compatibility, ACI 318-19 Chapter 22.
package flexure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/alexiusacademia/aci318/internal/shear"
	"github.com/alexiusacademia/aci318/internal/solver"
)

// ErrNoTensionSteel is returned for a section without tension layers.
var ErrNoTensionSteel = errors.New("section has no tension reinforcement")

// momentTolerance is the relative difference allowed between the two
// moment sums before a discrepancy is reported.
const momentTolerance = 1e-6

// LayerKind tells tension layers from compression layers.
type LayerKind int

const (
	Tension LayerKind = iota
	Compression
)

func (k LayerKind) String() string {
	if k == Compression {
		return "compression"
	}
	return "tension"
}

// LayerResult holds analysis results for each reinforcement layer
type LayerResult struct {
	Kind    LayerKind
	Layer   section.Layer
	Area    float64 // in²
	Strain  float64 // tension positive
	Stress  float64 // psi, tension positive
	Force   float64 // lb, tension positive
	Yielded bool
}

// Trail collects advisory messages produced during an analysis.
type Trail struct {
	Warnings []string
	Notes    []string
}

func (t *Trail) warn(format string, args ...any) {
	t.Warnings = append(t.Warnings, fmt.Sprintf(format, args...))
}

func (t *Trail) note(format string, args ...any) {
	t.Notes = append(t.Notes, fmt.Sprintf(format, args...))
}

// Result is the outcome of a flexural analysis. It owns a private copy of
// the analyzed section and is not modified after Analyze returns.
type Result struct {
	Section section.Section

	// Neutral axis and compression block
	C     float64 // from the compression face (in)
	A     float64 // β1·c, limited to h (in)
	Beta1 float64

	// Capacity (lb-in)
	Mn    float64
	Phi   float64
	PhiMn float64

	// Governing strain at the deepest tension layer
	EpsilonT      float64
	DepthEpsilonT float64
	Class         aci.DuctilityClass

	// Ratios
	Rho            float64 // AsT/(b·d)
	RhoBalanced    float64
	RhoMin         float64
	OverReinforced bool

	// Forces (lb)
	Cc     float64
	Layers []LayerResult

	// Moment sums used for the self-consistency check (lb-in)
	MomentAboutTension float64
	MomentAboutTop     float64

	Iterations int
	Trail      Trail

	// Set when analyzed WithShear
	Shear *shear.Result
}

// Options configures an analysis.
type Options struct {
	Logger *slog.Logger
	Solver []solver.Option
	Shear  bool
}

// Option is a functional option for Analyze.
type Option func(*Options)

// WithLogger sets the logger used for diagnostics. A nil logger discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithSolverOptions forwards options to the neutral axis solver.
func WithSolverOptions(opts ...solver.Option) Option {
	return func(o *Options) { o.Solver = append(o.Solver, opts...) }
}

// WithShear also computes the shear strength of the section with its own
// stirrups.
func WithShear() Option {
	return func(o *Options) { o.Shear = true }
}

// Analyze calculates the moment capacity of sec.
func Analyze(sec section.Section, opts ...Option) (*Result, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if len(sec.Tension) == 0 {
		return nil, ErrNoTensionSteel
	}
	if err := sec.Validate(); err != nil {
		return nil, err
	}

	root, err := solver.NeutralAxis(sec, o.Solver...)
	if err != nil {
		return nil, fmt.Errorf("flexure %s: %w", describe(sec), err)
	}

	r := &Result{
		Section:     sec.Clone(),
		C:           root.C,
		Beta1:       sec.Beta1(),
		Iterations:  root.Iterations,
		Rho:         sec.Rho(),
		RhoBalanced: sec.RhoBalanced(),
		RhoMin:      sec.RhoMin(),
	}
	sec = r.Section
	c := r.C
	r.A = solver.StressBlockDepth(sec, c)
	r.Cc = 0.85 * sec.Fc * sec.Width * r.A
	if len(root.Candidates) > 1 {
		r.Trail.note("equilibrium has %d roots, smallest c = %.4f in used", len(root.Candidates), c)
	}

	epsY := sec.YieldStrain()
	addLayers := func(kind LayerKind, layers []section.Layer) {
		for _, l := range layers {
			strain := solver.Strain(sec.EpsilonCU, c, l.Depth)
			stress := solver.Stress(strain, sec.Es, sec.Fy)
			r.Layers = append(r.Layers, LayerResult{
				Kind:    kind,
				Layer:   l,
				Area:    l.Area(),
				Strain:  strain,
				Stress:  stress,
				Force:   l.Area() * stress,
				Yielded: math.Abs(strain) >= epsY,
			})
		}
	}
	addLayers(Tension, sec.Tension)
	addLayers(Compression, sec.Compression)

	// Mn = Cc·(dref - a/2) - ΣF·(dref - z), with F tension positive
	dt := sec.ExtremeTensionDepth()
	r.DepthEpsilonT = dt
	r.MomentAboutTension = r.Cc * (dt - r.A/2)
	r.MomentAboutTop = -r.Cc * r.A / 2
	for _, l := range r.Layers {
		r.MomentAboutTension -= l.Force * (dt - l.Layer.Depth)
		r.MomentAboutTop += l.Force * l.Layer.Depth
	}
	r.Mn = r.MomentAboutTension
	if diff := math.Abs(r.MomentAboutTension - r.MomentAboutTop); diff > momentTolerance*math.Max(math.Abs(r.Mn), 1) {
		r.Trail.note("moment sums differ by %.3g lb-in (tension layer %.1f, top fiber %.1f)",
			diff, r.MomentAboutTension, r.MomentAboutTop)
		logger.Warn("moment cross-check discrepancy",
			"section", describe(sec),
			"about_tension", r.MomentAboutTension,
			"about_top", r.MomentAboutTop,
			"diff", diff)
	}

	// εt = -εcu + (dt/c)·εcu
	r.EpsilonT = -sec.EpsilonCU + dt/c*sec.EpsilonCU
	r.Phi = aci.PhiFlexure(r.EpsilonT)
	r.Class = aci.Classify(r.EpsilonT)
	r.PhiMn = r.Phi * r.Mn

	r.OverReinforced = r.Rho > r.RhoBalanced
	if r.OverReinforced {
		r.Trail.warn("over-reinforced: ρ = %.5f > ρb = %.5f", r.Rho, r.RhoBalanced)
	}
	if r.Rho < r.RhoMin {
		r.Trail.warn("below minimum reinforcement: ρ = %.5f < ρmin = %.5f", r.Rho, r.RhoMin)
	}
	for _, l := range r.Layers {
		switch {
		case l.Kind == Compression && l.Strain > 0:
			r.Trail.warn("compression steel %s is below the neutral axis (in tension)", l.Layer)
		case l.Kind == Compression && !l.Yielded:
			r.Trail.warn("compression steel %s has not yielded (f's = %.0f psi)", l.Layer, -l.Stress)
		case l.Kind == Tension && !l.Yielded:
			r.Trail.warn("tension steel %s has not yielded (fs = %.0f psi)", l.Layer, l.Stress)
		}
	}
	if r.A >= sec.Height {
		r.Trail.warn("stress block reaches the full section height")
	}
	if o.Shear {
		sr := shear.Analyze(sec, sec.Stirrups)
		r.Shear = &sr
	}

	logger.LogAttrs(context.Background(), slog.LevelDebug, "flexure analyzed",
		slog.String("section", describe(sec)),
		slog.Float64("c", r.C),
		slog.Float64("phi_mn_kip_ft", r.PhiMnKipFt()),
		slog.Float64("epsilon_t", r.EpsilonT),
		slog.Int("iterations", r.Iterations))

	return r, nil
}

// MnKipFt returns Mn in kip-ft.
func (r *Result) MnKipFt() float64 { return r.Mn / 12000 }

// PhiMnKipFt returns φMn in kip-ft.
func (r *Result) PhiMnKipFt() float64 { return r.PhiMn / 12000 }

// IsTensionControlled reports εt >= 0.005.
func (r *Result) IsTensionControlled() bool { return r.Class == aci.TensionControlled }

// Warnings returns the flexural warnings followed by any shear warnings.
func (r *Result) Warnings() []string {
	out := append([]string(nil), r.Trail.Warnings...)
	if r.Shear != nil {
		out = append(out, r.Shear.Warnings...)
	}
	return out
}

// Summary is a one line description of the design.
func (r *Result) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%gx%g | T: %s | C: %s | φMn = %.1f kip-ft (φ=%.3f, εt=%.5f)",
		r.Section.Width, r.Section.Height,
		layerSummary(r.Section.Tension), layerSummary(r.Section.Compression),
		r.PhiMnKipFt(), r.Phi, r.EpsilonT)
	if r.Shear != nil {
		fmt.Fprintf(&sb, " | φVn = %.1f kips (Vc=%.1f, Vs=%.1f)",
			r.Shear.PhiVnKips(), r.Shear.VcKips(), r.Shear.VsKips())
		if len(r.Section.Stirrups) > 0 {
			fmt.Fprintf(&sb, " %s", r.Section.Stirrups[0])
		}
	}
	if w := r.Warnings(); len(w) > 0 {
		fmt.Fprintf(&sb, " | warnings: %s", strings.Join(w, "; "))
	}
	return sb.String()
}

func layerSummary(layers []section.Layer) string {
	if len(layers) == 0 {
		return "none"
	}
	parts := make([]string, len(layers))
	for i, l := range layers {
		parts[i] = l.String()
	}
	return strings.Join(parts, ", ")
}

func describe(sec section.Section) string {
	if sec.Name != "" {
		return sec.Name
	}
	return fmt.Sprintf("%gx%g", sec.Width, sec.Height)
}
