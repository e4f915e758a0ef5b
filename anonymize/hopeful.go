// File: hopeful.go
// Role: The baseline repair strategy: insert uniformly random edges until
//       the graph is alpha-proximal or complete.
package anonymize

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphanon/core"
)

// Hopeful repairs g by blind uniform edge insertion: as long as some
// vertex's neighborhood strays more than alpha from the global label
// distribution, one random absent edge is added and the graph is
// re-audited. Every random edge is expected to pull neighborhoods toward
// the global mix, hence the name.
//
// The run stops with Converged=true at alpha-proximity, or with
// Converged=false when the graph completes or the MaxEdges ceiling is
// reached first; both are reported outcomes, not errors. The inserted
// edges stay in g either way.
// Returns ErrNilGraph, ErrAlphaRange, ErrOptionViolation, or the context
// error when cancelled.
// Complexity: one O(m + n·l) audit per inserted edge.
func Hopeful(g *core.Graph, alpha float64, opts ...Option) (*Result, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if alpha < 0 || alpha > 1 {
		return nil, ErrAlphaRange
	}

	rng := o.rng()
	global, err := globalDistribution(g)
	if err != nil {
		return nil, err
	}

	log := o.Log.WithFields(logrus.Fields{
		"strategy": "hopeful",
		"alpha":    alpha,
		"metric":   o.Metric.String(),
		"vertices": g.VertexCount(),
		"labels":   g.LabelCount(),
	})
	log.Info("repair started")

	res := &Result{}
	for {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}

		worst, worstVertex, err := worstDistance(g, global, o.Metric)
		if err != nil {
			return nil, err
		}
		if worst <= alpha {
			res.Converged = true
			break
		}
		if g.IsComplete() {
			break
		}
		if o.MaxEdges > 0 && res.EdgesAdded >= o.MaxEdges {
			break
		}
		res.Iterations++

		u, v, err := g.AddRandomEdge(rng)
		if err != nil {
			return nil, err
		}
		res.EdgesAdded++

		log.WithFields(logrus.Fields{
			"iteration":    res.Iterations,
			"edge":         [2]int{u, v},
			"worst":        worst,
			"worst_vertex": worstVertex,
		}).Debug("random edge inserted")
	}

	log.WithFields(logrus.Fields{
		"edges_added": res.EdgesAdded,
		"iterations":  res.Iterations,
		"converged":   res.Converged,
	}).Info("repair finished")

	return res, nil
}
