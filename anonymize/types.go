// Package anonymize - tunable options, result types, and error definitions
// for the proximity engine.
package anonymize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphanon/dist"
)

// Sentinel errors for engine execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("anonymize: graph is nil")

	// ErrAlphaRange is returned when alpha lies outside [0,1].
	ErrAlphaRange = errors.New("anonymize: alpha outside [0,1]")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("anonymize: invalid option supplied")
)

// Option configures engine behavior via functional arguments.
// If an Option is invalid (e.g. a negative edge ceiling), it is recorded
// internally and surfaced as ErrOptionViolation when the engine runs.
type Option func(*Options)

// Options holds the parameters shared by every engine entry point.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per repair step.
	Ctx context.Context

	// Metric selects the distribution distance (default TotalVariation,
	// the measure the greedy deficiency analysis is calibrated against).
	Metric dist.Metric

	// Seed drives the engine's private RNG when Rand is nil.
	// Seed 0 selects a fixed default seed, so zero-value options are
	// still fully deterministic.
	Seed int64

	// Rand, when non-nil, overrides Seed entirely. The engine owns the
	// source for the duration of the call; do not share it across
	// goroutines.
	Rand *rand.Rand

	// MaxEdges caps the total number of inserted edges (safety valve for
	// very low alpha on large graphs). 0 means no cap.
	MaxEdges int

	// Log receives progress at Info/Debug level. Defaults to a discard
	// logger, so the engine is silent unless a logger is injected.
	Log *logrus.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - TotalVariation metric
//   - Seed 0 (fixed default seed), no external Rand
//   - no edge ceiling
//   - discard logger.
func DefaultOptions() Options {
	log := logrus.New()
	log.SetOutput(io.Discard)

	return Options{
		Ctx:      context.Background(),
		Metric:   dist.TotalVariation,
		Seed:     0,
		Rand:     nil,
		MaxEdges: 0,
		Log:      log,
		err:      nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMetric selects the distribution distance used by proximity checks.
// Values outside the Metric enum surface ErrOptionViolation.
func WithMetric(m dist.Metric) Option {
	return func(o *Options) {
		switch m {
		case dist.TotalVariation, dist.Hellinger, dist.JensenShannon:
			o.Metric = m
		default:
			o.err = fmt.Errorf("%w: unknown metric %d", ErrOptionViolation, int(m))
		}
	}
}

// WithSeed seeds the engine's private RNG. Seed 0 keeps the fixed default
// seed; any other value is used verbatim. Ignored when WithRand is set.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies an external random source, overriding WithSeed.
// A nil source is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithMaxEdges caps the number of edges the engine may insert.
//
//	k > 0: stop after k insertions, reporting Converged accordingly
//	k == 0: explicit no cap
//	k < 0: invalid option → ErrOptionViolation
func WithMaxEdges(k int) Option {
	return func(o *Options) {
		switch {
		case k < 0:
			o.err = fmt.Errorf("%w: MaxEdges cannot be negative (%d)", ErrOptionViolation, k)
		default:
			o.MaxEdges = k
		}
	}
}

// WithLogger injects a logger for progress reporting. Nil is ignored.
func WithLogger(log *logrus.Logger) Option {
	return func(o *Options) {
		if log != nil {
			o.Log = log
		}
	}
}

// resolve folds opts over the defaults and reports the first recorded
// option violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}

// rng materializes the random source the resolved options describe.
func (o *Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rngFromSeed(o.Seed)
}

// Result summarizes one repair run.
type Result struct {
	// EdgesAdded is the number of edges inserted into the graph.
	EdgesAdded int

	// Iterations is the number of repair passes executed.
	Iterations int

	// Converged reports whether the graph was alpha-proximal when the
	// run stopped. False means the run hit completeness or the MaxEdges
	// ceiling first (a reported outcome, not an error).
	Converged bool
}

// ExposureReport is the per-vertex disclosure audit produced by Exposure.
type ExposureReport struct {
	// Distances holds the metric distance between every vertex's closed
	// neighborhood and the global label distribution, indexed by vertex.
	Distances []float64

	// Max is the worst distance and MaxVertex the first vertex attaining
	// it: the pair that decides alpha-proximity.
	Max       float64
	MaxVertex int

	// Mean and StdDev summarize the distance profile (StdDev is 0 for a
	// single-vertex graph).
	Mean   float64
	StdDev float64

	// Metric records which distance the profile was computed under.
	Metric dist.Metric
}

// Proximal reports whether the audited graph satisfies alpha-proximity,
// i.e. Max ≤ alpha.
func (r *ExposureReport) Proximal(alpha float64) bool { return r.Max <= alpha }
