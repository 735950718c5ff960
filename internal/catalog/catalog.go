// Package catalog holds the fixed domain data for commuter scenarios: the
// behaviour catalog, the candidate belief superset, and the hand-authored
// distribution parameters for each belief's perception, relationship and
// PRS table rows. Keeping the tables as structured data separates the
// domain content from the sampling mechanics.
package catalog

// Behaviour indices into perception and PRS rows.
const (
	Walk = iota
	Cycle
	PT
	Drive

	NumBehaviours
)

// NumBeliefs is the size of the candidate belief superset. A scenario
// includes some subset of it; the superset itself never changes.
const NumBeliefs = 20

// RelationshipScale is the undivided scale shared by every relationship
// table cell. The authored tables only vary relationship locations.
const RelationshipScale = 0.1

// BehaviourNames returns the behaviour catalog in canonical order.
func BehaviourNames() []string {
	return []string{"Walk", "Cycle", "PT", "Drive"}
}

// Param is the location/scale pair parameterizing one bounded-normal table
// cell. Scale is stored undivided; the scenario's scale divisor applies at
// sampling time.
type Param struct {
	Loc   float64
	Scale float64
}

// BeliefSpec is one row of the authored belief table.
type BeliefSpec struct {
	Name string

	// Perception of each behaviour, indexed by the behaviour constants.
	Perception [NumBehaviours]Param

	// Relationship locations toward every belief in the superset, in
	// superset order. All cells share RelationshipScale.
	Relationship [NumBeliefs]float64

	// PRS is the preference strength toward each behaviour.
	PRS [NumBehaviours]Param
}

// Beliefs returns the candidate belief superset, order preserved.
func Beliefs() []BeliefSpec {
	return beliefTable[:]
}
