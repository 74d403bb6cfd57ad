// Package search enumerates rectangular section sizes and reinforcement
// layouts and returns the designs that satisfy a factored demand.
//
// Widths are searched in parallel. For each (width, height) pair the
// single-layer tension options are tried in ascending steel area and the
// first one meeting both the strength and the ductility gate is kept; when
// none does, compression steel is added in the same order.
package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/aci318/internal/aci"
	"github.com/alexiusacademia/aci318/internal/beam"
	"github.com/alexiusacademia/aci318/internal/flexure"
	"github.com/alexiusacademia/aci318/internal/rebar"
	"github.com/alexiusacademia/aci318/internal/section"
	"github.com/alexiusacademia/aci318/internal/shear"
)

// ProgressFunc is called once per completed width with the number of
// designs found for it. Calls are serialized.
type ProgressFunc func(width float64, found int)

// Options configures DesignAll.
type Options struct {
	Logger   *slog.Logger
	Progress ProgressFunc
}

// Option is a functional option for DesignAll.
type Option func(*Options)

// WithLogger sets the logger. A nil logger discards.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// WithProgress registers a per-width progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) { o.Progress = fn }
}

// Stats counts the work done by a search.
type Stats struct {
	Geometries int // (width, height) pairs evaluated
	Pruned     int // pairs skipped by the closed-form bounds
	Trials     int // flexural analyses run
	Infeasible int // trials rejected by a solver or precondition failure
	ShearFail  int // accepted flexural designs rejected for shear
	Designs    int
}

func (s *Stats) add(o Stats) {
	s.Geometries += o.Geometries
	s.Pruned += o.Pruned
	s.Trials += o.Trials
	s.Infeasible += o.Infeasible
	s.ShearFail += o.ShearFail
	s.Designs += o.Designs
}

// DesignAll returns every feasible design for demand within cfg, sorted by
// width, height, tension steel area and compression steel area. An empty
// result is not an error. Cancelling ctx discards partial results.
func DesignAll(ctx context.Context, demand Demand, cfg Config, opts ...Option) ([]*flexure.Result, error) {
	results, _, err := Run(ctx, demand, cfg, opts...)
	return results, err
}

// Run is DesignAll that also reports search statistics.
func Run(ctx context.Context, demand Demand, cfg Config, opts ...Option) ([]*flexure.Result, Stats, error) {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if err := cfg.Validate(); err != nil {
		return nil, Stats{}, err
	}
	if !(demand.Mu > 0) || demand.Vu < 0 {
		return nil, Stats{}, invalid("demand Mu=%g kip-ft, Vu=%g kips", demand.Mu, demand.Vu)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	s := &searcher{
		cfg:     cfg,
		mu:      demand.Mu * 12000,
		vu:      demand.Vu * 1000,
		heights: cfg.heights(),
		logger:  logger,
	}

	var (
		lock      sync.Mutex
		results   []*flexure.Result
		stats     Stats
		bestWidth = math.Inf(1)
		start     = time.Now()
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, width := range cfg.Widths() {
		width := width
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if cfg.FirstOnly {
				lock.Lock()
				skip := width > bestWidth
				lock.Unlock()
				if skip {
					return nil
				}
			}

			found, st := s.width(width)

			lock.Lock()
			defer lock.Unlock()
			results = append(results, found...)
			stats.add(st)
			if len(found) > 0 && width < bestWidth {
				bestWidth = width
			}
			if o.Progress != nil {
				o.Progress(width, len(found))
			}
			logger.Debug("width searched",
				"width", width,
				"designs", len(found),
				"trials", st.Trials,
				"infeasible", st.Infeasible)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, stats, err
	}
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	sortResults(results)
	if cfg.FirstOnly && len(results) > 1 {
		results = results[:1]
	}
	stats.Designs = len(results)
	if results == nil {
		results = []*flexure.Result{}
	}

	logger.Info("design search complete",
		"mu_kip_ft", demand.Mu,
		"vu_kips", demand.Vu,
		"designs", stats.Designs,
		"geometries", stats.Geometries,
		"pruned", stats.Pruned,
		"trials", stats.Trials,
		"infeasible", stats.Infeasible,
		"shear_rejected", stats.ShearFail,
		"elapsed", time.Since(start))

	return results, stats, nil
}

func sortResults(results []*flexure.Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Section, results[j].Section
		if a.Width != b.Width {
			return a.Width < b.Width
		}
		if a.Height != b.Height {
			return a.Height < b.Height
		}
		if at, bt := a.AsT(), b.AsT(); at != bt {
			return at < bt
		}
		return a.AsC() < b.AsC()
	})
}

// searcher holds the read-only state shared by the width tasks.
type searcher struct {
	cfg     Config
	mu      float64 // lb-in
	vu      float64 // lb
	heights []float64
	logger  *slog.Logger
}

// width searches every height for one width.
func (s *searcher) width(width float64) ([]*flexure.Result, Stats) {
	var (
		found []*flexure.Result
		st    Stats
	)
	for _, h := range s.heights {
		st.Geometries++
		r := s.geometry(width, h, &st)
		if r == nil {
			continue
		}
		found = append(found, r)
		if s.cfg.FirstOnly {
			break
		}
	}
	return found, st
}

// option is a candidate layer with its area cached for sorting.
type option struct {
	layer section.Layer
	area  float64
}

// options lists the fitting layers of sizes x 1..maxQty at depth, in
// ascending area, then fewer bars, then smaller bar.
func options(sec section.Section, sizes []rebar.Size, maxQty int, depth, minArea float64) []option {
	var out []option
	for _, size := range sizes {
		for qty := 1; qty <= maxQty; qty++ {
			l := section.Layer{Size: size, Qty: qty, Depth: depth}
			if !sec.Fits(l) {
				break
			}
			if a := l.Area(); a >= minArea {
				out = append(out, option{layer: l, area: a})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].area != out[j].area {
			return out[i].area < out[j].area
		}
		if out[i].layer.Qty != out[j].layer.Qty {
			return out[i].layer.Qty < out[j].layer.Qty
		}
		return out[i].layer.Size < out[j].layer.Size
	})
	return out
}

// geometry returns the most economical accepted design for one
// (width, height) pair, or nil.
func (s *searcher) geometry(width, height float64, st *Stats) *flexure.Result {
	cfg := s.cfg
	base := cfg.base(width, height)
	d := height - cfg.TensionCover
	if d <= 0 {
		st.Pruned++
		return nil
	}

	minArea := base.RhoMin() * width * d
	tension := options(base, cfg.TensionSizes, cfg.MaxTensionBars, d, minArea)
	if len(tension) == 0 {
		st.Pruned++
		return nil
	}
	var compression []option
	if cfg.MaxCompressionBars > 0 && cfg.CompressionCover < d {
		compression = options(base, cfg.CompressionSizes, cfg.MaxCompressionBars, cfg.CompressionCover, 0)
	}

	// Mn never exceeds fy·d times the total steel area
	steel := tension[len(tension)-1].area
	if len(compression) > 0 {
		steel += compression[len(compression)-1].area
	}
	if aci.PhiTension*beam.MomentBound(steel, cfg.Fy, d) < s.mu {
		st.Pruned++
		return nil
	}

	closed := &beam.SinglyReinforced{
		Width: width, EffectiveDepth: d,
		Fc: cfg.Fc, Fy: cfg.Fy, Es: cfg.Es, EpsilonCU: cfg.EpsilonCU,
	}

	if r := s.singly(base, closed, tension, st); r != nil {
		return s.withShear(r, st)
	}
	if r := s.doubly(base, closed, tension, compression, st); r != nil {
		return s.withShear(r, st)
	}
	return nil
}

// singly tries the tension options alone. Options below the closed-form
// required area or above the area at the ductility strain cannot pass.
func (s *searcher) singly(base section.Section, closed *beam.SinglyReinforced, tension []option, st *Stats) *flexure.Result {
	asMax, phiMnMax := closed.TensionControlledLimit(s.cfg.DuctilityStrain)
	limit := math.Min(tension[len(tension)-1].area, asMax)
	if aci.PhiTension*closed.NominalMoment(limit) < s.mu || phiMnMax < s.mu {
		return nil
	}
	asReq := 0.0
	if dr, err := closed.Design(s.mu); err == nil && dr.IsAdequate {
		asReq = dr.AsRequired
	}

	for _, opt := range tension {
		if opt.area < asReq*(1-1e-9) {
			continue
		}
		if opt.area > asMax*(1+1e-9) {
			break
		}
		if r := s.try(base.WithTension(opt.layer), st); r != nil {
			return r
		}
	}
	return nil
}

// doubly adds compression layers at the compression cover depth.
func (s *searcher) doubly(base section.Section, closed *beam.SinglyReinforced, tension, compression []option, st *Stats) *flexure.Result {
	if len(compression) == 0 {
		return nil
	}
	cfg := s.cfg
	dPrime := cfg.CompressionCover
	d := closed.EffectiveDepth
	maxComp := compression[len(compression)-1].area

	// Compression steel below Mu2 / (φ·fy·(d - d')) cannot close the gap
	ascMin := 0.0
	db := &beam.DoublyReinforced{SinglyReinforced: *closed, CoverComp: dPrime}
	if dr, err := db.Design(s.mu, cfg.DuctilityStrain); err == nil && dr.RequiresCompSteel {
		ascMin = dr.AscMin
	}

	for _, t := range tension {
		if aci.PhiTension*beam.MomentBound(t.area+maxComp, cfg.Fy, d) < s.mu {
			continue
		}
		trial := base.WithTension(t.layer)
		for _, c := range compression {
			if c.area < ascMin*(1-1e-9) {
				continue
			}
			if r := s.try(trial.WithCompression(c.layer), st); r != nil {
				return r
			}
		}
	}
	return nil
}

// try analyzes a trial section and applies the strength and ductility
// gates. Solver and precondition failures count as infeasible trials.
func (s *searcher) try(trial section.Section, st *Stats) *flexure.Result {
	st.Trials++
	r, err := flexure.Analyze(trial)
	if err != nil {
		st.Infeasible++
		s.logger.Debug("infeasible trial",
			"width", trial.Width, "height", trial.Height, "error", err)
		return nil
	}
	if r.PhiMn >= s.mu && r.EpsilonT >= s.cfg.DuctilityStrain {
		return r
	}
	return nil
}

// withShear designs stirrups for accepted flexural designs when a shear
// demand is given. A section that cannot carry the shear is rejected.
func (s *searcher) withShear(r *flexure.Result, st *Stats) *flexure.Result {
	if s.vu <= 0 {
		return r
	}
	sd, err := shear.Design(r.Section, s.vu, s.cfg.StirrupSize, s.cfg.StirrupLegs)
	if err != nil {
		st.ShearFail++
		if !errors.Is(err, shear.ErrSectionTooSmall) && !errors.Is(err, shear.ErrSpacingTooTight) {
			s.logger.Warn("shear design failed", "width", r.Section.Width, "height", r.Section.Height, "error", err)
		}
		return nil
	}
	final, err := flexure.Analyze(r.Section.WithStirrups(sd.Stirrup), flexure.WithShear())
	if err != nil {
		st.Infeasible++
		return nil
	}
	return final
}
