// Package scenario runs the generation pipeline: select beliefs, sample
// perception/relationship/PRS parameters, build the friendship graph,
// initialize the agent population and assemble the bundle.
//
// The pipeline is linear and single-pass. Each stage's output is immutable
// input to the next; no stage mutates another's output, and all sampling
// flows through one seeded source in a fixed stage order, so a seed fully
// determines the bundle.
package scenario

import (
	"fmt"

	"github.com/commuter-abm/scengen/internal/socialgraph"
)

// Behaviour is one entry of the fixed transport behaviour catalog.
type Behaviour struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// Belief is an included candidate belief with its sampled parameters.
// Perceptions are keyed by behaviour identifier, relationships by the
// identifiers of the other included beliefs.
type Belief struct {
	Name          string             `json:"name"`
	UUID          string             `json:"uuid"`
	Perceptions   map[string]float64 `json:"perceptions"`
	Relationships map[string]float64 `json:"relationships"`
}

// PRSEntry is the preference strength of one belief toward adopting one
// behaviour.
type PRSEntry struct {
	BeliefUUID    string  `json:"beliefUuid"`
	BehaviourUUID string  `json:"behaviourUuid"`
	Value         float64 `json:"value"`
}

// Agent is one member of the generated population. Activations and actions
// are keyed by time step; the generator only ever emits step 0.
type Agent struct {
	UUID        string                     `json:"uuid"`
	Friends     map[string]float64         `json:"friends"`
	Deltas      map[string]float64         `json:"deltas"`
	Activations map[int]map[string]float64 `json:"activations"`
	Actions     map[int]string             `json:"actions"`
}

// Bundle is one scenario's complete, cross-referenced output. Every
// identifier referenced anywhere in the bundle resolves within it.
type Bundle struct {
	ScenarioID string
	Seed       uint64
	Behaviours []Behaviour
	Beliefs    []Belief
	PRS        []PRSEntry
	Agents     []Agent
}

// InclusionPolicy selects which candidate beliefs a scenario includes.
type InclusionPolicy string

const (
	// IncludeAll includes every candidate belief.
	IncludeAll InclusionPolicy = "all"
	// IncludeBernoulli includes each belief independently with the
	// configured probability.
	IncludeBernoulli InclusionPolicy = "bernoulli"
)

// Treatment forces one belief's initial activation to a separate bounded
// normal draw for a random share of agents, modelling an experimental
// condition. It is applied after the generic activation draw. The scale is
// used as configured; the scenario scale divisor does not apply to it.
type Treatment struct {
	Belief      string
	Probability float64
	Location    float64
	Scale       float64
}

// GraphRandomize, when present, redraws the graph topology parameters per
// scenario instead of using the fixed constants in Params.Graph.
type GraphRandomize struct {
	NeighbourTrials int
	NeighbourProb   float64
	RewireLoc       float64
	RewireScale     float64
}

// Params configure one scenario generation run.
type Params struct {
	ScenarioID string
	Seed       uint64
	Agents     int
	Version    string // dataset version tag embedded in agent names

	Inclusion     InclusionPolicy
	InclusionProb float64
	ScaleDivisor  float64 // divides the catalog scales; later variants use 3

	ZeroActivationProb float64
	Treatment          *Treatment

	Graph          socialgraph.Params
	GraphRandomize *GraphRandomize
}

func (p Params) validate() error {
	if p.ScenarioID == "" {
		return fmt.Errorf("scenario: missing scenario id")
	}
	if p.Agents <= 0 {
		return fmt.Errorf("scenario: agent population must be positive, got %d", p.Agents)
	}
	if p.Version == "" {
		return fmt.Errorf("scenario: missing dataset version tag")
	}
	switch p.Inclusion {
	case IncludeAll, IncludeBernoulli:
	default:
		return fmt.Errorf("scenario: unknown inclusion policy %q", p.Inclusion)
	}
	if p.InclusionProb < 0 || p.InclusionProb > 1 {
		return fmt.Errorf("scenario: inclusion probability must be in [0,1], got %v", p.InclusionProb)
	}
	if p.ScaleDivisor <= 0 {
		return fmt.Errorf("scenario: scale divisor must be positive, got %v", p.ScaleDivisor)
	}
	if p.ZeroActivationProb < 0 || p.ZeroActivationProb > 1 {
		return fmt.Errorf("scenario: zero-activation probability must be in [0,1], got %v", p.ZeroActivationProb)
	}
	if t := p.Treatment; t != nil {
		if t.Belief == "" {
			return fmt.Errorf("scenario: treatment belief name is empty")
		}
		if t.Probability < 0 || t.Probability > 1 {
			return fmt.Errorf("scenario: treatment probability must be in [0,1], got %v", t.Probability)
		}
		if t.Scale <= 0 {
			return fmt.Errorf("scenario: treatment scale must be positive, got %v", t.Scale)
		}
	}
	return nil
}
