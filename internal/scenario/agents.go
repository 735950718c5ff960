package scenario

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/commuter-abm/scengen/internal/dist"
)

// Delta distribution: belief-update rates are drawn close to 1 and forced
// strictly positive, so downstream use as a multiplicative factor can never
// zero out or flip an activation.
const (
	deltaLocation = 0.999
	deltaScale    = 0.1
	deltaFloor    = 1e-4

	activationLocation = 0.0
	activationScale    = 0.1
)

// initAgents builds the population: per-agent deltas, initial activations
// (with the optional treatment override applied afterwards) and the initial
// action chosen by maximizing the activation-weighted PRS score.
func initAgents(p Params, ids []string, friends []map[string]float64, beliefs []Belief, prsMat [][]float64, behaviours []Behaviour, rng *rand.Rand) ([]Agent, error) {
	deltaDist, err := dist.NewNormal(deltaLocation, deltaScale, rng)
	if err != nil {
		return nil, err
	}
	zeroGate, err := dist.NewBernoulli(p.ZeroActivationProb, rng)
	if err != nil {
		return nil, err
	}
	actDist, err := dist.NewBounded(activationLocation, activationScale, -1, 1, rng)
	if err != nil {
		return nil, err
	}

	// A treatment naming an excluded belief is skipped entirely: the
	// belief's identifier must not appear anywhere in the scenario.
	treatIdx := -1
	var treatGate dist.Bernoulli
	var treatDist dist.Bounded
	if t := p.Treatment; t != nil {
		for k, b := range beliefs {
			if b.Name == t.Belief {
				treatIdx = k
				break
			}
		}
		if treatIdx >= 0 {
			treatGate, err = dist.NewBernoulli(t.Probability, rng)
			if err != nil {
				return nil, err
			}
			treatDist, err = dist.NewBounded(t.Location, t.Scale, -1, 1, rng)
			if err != nil {
				return nil, err
			}
		}
	}

	agents := make([]Agent, p.Agents)
	for i := range agents {
		deltas := make(map[string]float64, len(beliefs))
		for _, b := range beliefs {
			deltas[b.UUID] = math.Abs(deltaDist.Rand()) + deltaFloor
		}

		vec := make([]float64, len(beliefs))
		for k := range beliefs {
			if zeroGate.Rand() {
				vec[k] = 0.0
			} else {
				vec[k] = actDist.Rand()
			}
		}
		if treatIdx >= 0 && treatGate.Rand() {
			vec[treatIdx] = treatDist.Rand()
		}

		activations := make(map[string]float64, len(beliefs))
		for k, b := range beliefs {
			activations[b.UUID] = vec[k]
		}

		agents[i] = Agent{
			UUID:        ids[i],
			Friends:     friends[i],
			Deltas:      deltas,
			Activations: map[int]map[string]float64{0: activations},
			Actions:     map[int]string{0: behaviours[chooseAction(vec, prsMat, len(behaviours))].UUID},
		}
	}
	return agents, nil
}

// chooseAction scores each behaviour as the dot product of the activation
// vector with the PRS column and returns the argmax, ties broken by lowest
// behaviour index so a fixed seed always yields the same choice.
func chooseAction(vec []float64, prsMat [][]float64, nBehaviours int) int {
	best := 0
	bestScore := math.Inf(-1)
	for j := 0; j < nBehaviours; j++ {
		var score float64
		for k := range vec {
			score += vec[k] * prsMat[k][j]
		}
		if score > bestScore {
			best = j
			bestScore = score
		}
	}
	return best
}
