// File: proximity.go
// Role: Disclosure auditing: IsAlphaProximal and the Exposure report.
//       worstDistance is the shared allocation-light sweep the repair
//       strategies re-check after every step.
package anonymize

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphanon/core"
	"github.com/katalvlaran/graphanon/dist"
)

// globalDistribution snapshots the graph-wide label distribution. Labels
// never change during repair, so strategies compute this once per run.
func globalDistribution(g *core.Graph) (dist.Distribution, error) {
	return dist.FromCounts(g.LabelHistogram())
}

// neighborhoodDistribution snapshots the closed-neighborhood label
// distribution of v (v itself plus its neighbors).
func neighborhoodDistribution(g *core.Graph, v int) (dist.Distribution, error) {
	h, err := g.NeighborhoodHistogram(v)
	if err != nil {
		return dist.Distribution{}, err
	}

	return dist.FromCounts(h)
}

// worstDistance sweeps every vertex and returns the largest
// neighborhood-to-global distance together with the first vertex
// attaining it.
// Complexity: O(m + n·l).
func worstDistance(g *core.Graph, global dist.Distribution, m dist.Metric) (float64, int, error) {
	worst, worstVertex := -1.0, 0
	for v := 0; v < g.VertexCount(); v++ {
		nh, err := neighborhoodDistribution(g, v)
		if err != nil {
			return 0, 0, err
		}
		d, err := dist.Between(nh, global, m)
		if err != nil {
			return 0, 0, err
		}
		if d > worst {
			worst, worstVertex = d, v
		}
	}

	return worst, worstVertex, nil
}

// IsAlphaProximal reports whether every vertex's closed neighborhood lies
// within statistical distance alpha of the global label distribution
// under the configured metric. An adversary who knows a vertex's
// neighborhood learns at most alpha beyond the public global mix.
// Returns ErrNilGraph, ErrAlphaRange, or ErrOptionViolation.
// Complexity: O(m + n·l).
func IsAlphaProximal(g *core.Graph, alpha float64, opts ...Option) (bool, error) {
	o, err := resolve(opts)
	if err != nil {
		return false, err
	}
	if g == nil {
		return false, ErrNilGraph
	}
	if alpha < 0 || alpha > 1 {
		return false, ErrAlphaRange
	}

	global, err := globalDistribution(g)
	if err != nil {
		return false, err
	}

	worst, _, err := worstDistance(g, global, o.Metric)
	if err != nil {
		return false, err
	}

	return worst <= alpha, nil
}

// Exposure computes the full disclosure profile: one distance per vertex,
// the worst vertex, and the mean/standard deviation of the profile. The
// report is what `check` surfaces and what convergence experiments plot.
// Returns ErrNilGraph or ErrOptionViolation.
// Complexity: O(m + n·l).
func Exposure(g *core.Graph, opts ...Option) (*ExposureReport, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	global, err := globalDistribution(g)
	if err != nil {
		return nil, err
	}

	n := g.VertexCount()
	report := &ExposureReport{
		Distances: make([]float64, n),
		Metric:    o.Metric,
	}

	worst, worstVertex := -1.0, 0
	for v := 0; v < n; v++ {
		nh, err := neighborhoodDistribution(g, v)
		if err != nil {
			return nil, err
		}
		d, err := dist.Between(nh, global, o.Metric)
		if err != nil {
			return nil, err
		}
		report.Distances[v] = d
		if d > worst {
			worst, worstVertex = d, v
		}
	}

	report.Max, report.MaxVertex = worst, worstVertex
	report.Mean = stat.Mean(report.Distances, nil)
	if n > 1 {
		report.StdDev = stat.StdDev(report.Distances, nil)
	}

	return report, nil
}
