// Package socialgraph builds the small-world friendship graph over the
// agent population: a Watts-Strogatz ring lattice with random rewiring,
// followed by probabilistic self-loops and bounded-normal edge weights.
package socialgraph

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/commuter-abm/scengen/internal/dist"
)

// Params configure one graph build.
type Params struct {
	N            int     // population size
	K            int     // ring-lattice neighbour count (even, < N)
	Rewire       float64 // per-edge rewiring probability
	SelfLoopProb float64 // probability an agent influences itself
	WeightLoc    float64 // edge weight location
	WeightScale  float64 // edge weight scale
}

func (p Params) validate() error {
	if p.N <= 0 {
		return fmt.Errorf("social graph: population must be positive, got %d", p.N)
	}
	if p.K <= 0 || p.K%2 != 0 {
		return fmt.Errorf("social graph: neighbour count must be positive and even, got %d", p.K)
	}
	if p.K >= p.N {
		return fmt.Errorf("social graph: neighbour count %d must be below population %d", p.K, p.N)
	}
	if p.Rewire < 0 || p.Rewire > 1 {
		return fmt.Errorf("social graph: rewiring probability must be in [0,1], got %v", p.Rewire)
	}
	if p.SelfLoopProb < 0 || p.SelfLoopProb > 1 {
		return fmt.Errorf("social graph: self-loop probability must be in [0,1], got %v", p.SelfLoopProb)
	}
	return nil
}

// Randomize redraws the scenario-level topology parameters: neighbour count
// from a binomial (rounded up to even, floored at 2) and rewiring
// probability from a bounded normal on [0, 1].
func (p Params) Randomize(trials int, prob, rewireLoc, rewireScale float64, rng *rand.Rand) (Params, error) {
	bin, err := dist.NewBinomial(trials, prob, rng)
	if err != nil {
		return Params{}, err
	}
	k := bin.Rand()
	if k%2 != 0 {
		k++
	}
	if k < 2 {
		k = 2
	}
	rw, err := dist.NewBounded(rewireLoc, rewireScale, 0, 1, rng)
	if err != nil {
		return Params{}, err
	}
	p.K = k
	p.Rewire = rw.Rand()
	return p, nil
}

// Build constructs the Watts-Strogatz topology: each node starts connected
// to its K nearest neighbours on a ring, then every right-hand lattice edge
// is independently rewired with probability Rewire to a uniform random
// target, skipping self-edges and duplicates. Self-loops and weights are
// not part of the topology; Rows applies them.
func Build(p Params, rng *rand.Rand) (*simple.UndirectedGraph, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	g := simple.NewUndirectedGraph()
	for i := 0; i < p.N; i++ {
		g.AddNode(simple.Node(i))
	}

	half := p.K / 2
	for j := 1; j <= half; j++ {
		for u := 0; u < p.N; u++ {
			v := (u + j) % p.N
			g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
		}
	}

	// Rewire lane by lane. The edge (u, u+j) keeps endpoint u and moves
	// its far endpoint to a uniform random node.
	for j := 1; j <= half; j++ {
		for u := 0; u < p.N; u++ {
			if rng.Float64() >= p.Rewire {
				continue
			}
			// A node adjacent to everyone has nowhere to rewire to.
			if g.From(int64(u)).Len() >= p.N-1 {
				continue
			}
			w := rng.Intn(p.N)
			for w == u || g.HasEdgeBetween(int64(u), int64(w)) {
				w = rng.Intn(p.N)
			}
			g.RemoveEdge(int64(u), int64((u+j)%p.N))
			g.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(w)})
		}
	}

	return g, nil
}

// Rows converts the graph into per-agent friend maps keyed by agent
// identifier, adding self-loops with probability SelfLoopProb and drawing
// every edge weight from a bounded normal on [0, 1] (the weight is an
// influence multiplier, so its domain is [0, 1] rather than [-1, 1]).
//
// Storage is asymmetric: construction is undirected, but each edge is
// recorded exactly once, on the lower-indexed endpoint's row. Self-loops
// sit on their own agent's row. Consumers that need the symmetric view
// must union both directions.
func Rows(g *simple.UndirectedGraph, p Params, ids []string, rng *rand.Rand) ([]map[string]float64, error) {
	if len(ids) != p.N {
		return nil, fmt.Errorf("social graph: got %d agent ids for population %d", len(ids), p.N)
	}
	weight, err := dist.NewBounded(p.WeightLoc, p.WeightScale, 0, 1, rng)
	if err != nil {
		return nil, err
	}
	selfLoop, err := dist.NewBernoulli(p.SelfLoopProb, rng)
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]float64, p.N)
	for u := 0; u < p.N; u++ {
		row := make(map[string]float64)
		if selfLoop.Rand() {
			row[ids[u]] = weight.Rand()
		}
		for _, v := range neighboursAbove(g, u) {
			row[ids[v]] = weight.Rand()
		}
		rows[u] = row
	}
	return rows, nil
}

// neighboursAbove returns u's neighbours with index greater than u, sorted,
// so weight draws consume the random source in a deterministic order.
func neighboursAbove(g *simple.UndirectedGraph, u int) []int {
	var out []int
	for _, n := range graph.NodesOf(g.From(int64(u))) {
		if v := int(n.ID()); v > u {
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
