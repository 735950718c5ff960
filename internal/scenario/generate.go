package scenario

import (
	"golang.org/x/exp/rand"

	"github.com/commuter-abm/scengen/internal/catalog"
	"github.com/commuter-abm/scengen/internal/dist"
	"github.com/commuter-abm/scengen/internal/ident"
	"github.com/commuter-abm/scengen/internal/socialgraph"
)

// Generate runs the full pipeline and returns a verified bundle. Stage
// order is fixed (select beliefs, sample belief parameters, sample PRS,
// build graph, initialize agents); reordering stages would change how the
// random source is consumed and break seed reproducibility.
func Generate(p Params) (*Bundle, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	rng := dist.NewSource(p.Seed)

	specs := catalog.Beliefs()
	include, err := selectBeliefs(p, len(specs), rng)
	if err != nil {
		return nil, err
	}

	behaviours := behaviourCatalog()

	beliefs, err := sampleBeliefs(specs, include, p.ScaleDivisor, behaviours, rng)
	if err != nil {
		return nil, err
	}

	prs, prsMat, err := samplePRS(specs, include, p.ScaleDivisor, behaviours, rng)
	if err != nil {
		return nil, err
	}

	graphParams := p.Graph
	graphParams.N = p.Agents
	if r := p.GraphRandomize; r != nil {
		graphParams, err = graphParams.Randomize(r.NeighbourTrials, r.NeighbourProb, r.RewireLoc, r.RewireScale, rng)
		if err != nil {
			return nil, err
		}
	}
	g, err := socialgraph.Build(graphParams, rng)
	if err != nil {
		return nil, err
	}

	agentIDs := make([]string, p.Agents)
	for i := range agentIDs {
		agentIDs[i] = ident.Agent(p.Version, i)
	}
	friends, err := socialgraph.Rows(g, graphParams, agentIDs, rng)
	if err != nil {
		return nil, err
	}

	agents, err := initAgents(p, agentIDs, friends, beliefs, prsMat, behaviours, rng)
	if err != nil {
		return nil, err
	}

	b := &Bundle{
		ScenarioID: p.ScenarioID,
		Seed:       p.Seed,
		Behaviours: behaviours,
		Beliefs:    beliefs,
		PRS:        prs,
		Agents:     agents,
	}
	if err := Verify(b); err != nil {
		return nil, err
	}
	return b, nil
}

func behaviourCatalog() []Behaviour {
	names := catalog.BehaviourNames()
	out := make([]Behaviour, len(names))
	for i, name := range names {
		out[i] = Behaviour{Name: name, UUID: ident.Behaviour(name)}
	}
	return out
}

// selectBeliefs produces the inclusion mask over the belief superset,
// order preserved.
func selectBeliefs(p Params, n int, rng *rand.Rand) ([]bool, error) {
	include := make([]bool, n)
	switch p.Inclusion {
	case IncludeAll:
		for i := range include {
			include[i] = true
		}
	case IncludeBernoulli:
		bern, err := dist.NewBernoulli(p.InclusionProb, rng)
		if err != nil {
			return nil, err
		}
		for i := range include {
			include[i] = bern.Rand()
		}
	}
	return include, nil
}

// sampleBeliefs draws the perception and relationship maps for every
// included belief. Excluded beliefs are not sampled at all: their rows are
// skipped and their identifiers never appear in any relationship map.
func sampleBeliefs(specs []catalog.BeliefSpec, include []bool, divisor float64, behaviours []Behaviour, rng *rand.Rand) ([]Belief, error) {
	beliefIDs := make([]string, len(specs))
	for i, s := range specs {
		beliefIDs[i] = ident.Belief(s.Name)
	}

	var out []Belief
	for i, s := range specs {
		if !include[i] {
			continue
		}
		perceptions := make(map[string]float64, len(behaviours))
		for j, bhv := range behaviours {
			cell := s.Perception[j]
			d, err := dist.NewBounded(cell.Loc, cell.Scale/divisor, -1, 1, rng)
			if err != nil {
				return nil, err
			}
			perceptions[bhv.UUID] = d.Rand()
		}
		relationships := make(map[string]float64)
		for k, loc := range s.Relationship {
			if !include[k] {
				continue
			}
			d, err := dist.NewBounded(loc, catalog.RelationshipScale/divisor, -1, 1, rng)
			if err != nil {
				return nil, err
			}
			relationships[beliefIDs[k]] = d.Rand()
		}
		out = append(out, Belief{
			Name:          s.Name,
			UUID:          beliefIDs[i],
			Perceptions:   perceptions,
			Relationships: relationships,
		})
	}
	return out, nil
}

// samplePRS draws one PRS entry per (included belief, behaviour) pair. It
// also returns the same values as a dense matrix with rows aligned to the
// included-belief order, which initAgents uses for action selection.
func samplePRS(specs []catalog.BeliefSpec, include []bool, divisor float64, behaviours []Behaviour, rng *rand.Rand) ([]PRSEntry, [][]float64, error) {
	var entries []PRSEntry
	var mat [][]float64
	for i, s := range specs {
		if !include[i] {
			continue
		}
		beliefID := ident.Belief(s.Name)
		row := make([]float64, len(behaviours))
		for j, bhv := range behaviours {
			cell := s.PRS[j]
			d, err := dist.NewBounded(cell.Loc, cell.Scale/divisor, -1, 1, rng)
			if err != nil {
				return nil, nil, err
			}
			v := d.Rand()
			row[j] = v
			entries = append(entries, PRSEntry{
				BeliefUUID:    beliefID,
				BehaviourUUID: bhv.UUID,
				Value:         v,
			})
		}
		mat = append(mat, row)
	}
	return entries, mat, nil
}
