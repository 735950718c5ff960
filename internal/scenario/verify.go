package scenario

import "fmt"

// Verify checks the bundle's internal references and value domains: no
// dangling belief/behaviour/agent identifiers, every sampled value inside
// its domain, deltas strictly positive, and an initial action for every
// agent. A failure here is a defect in the generator, not a user or
// runtime error; callers must treat it as fatal rather than recover.
func Verify(b *Bundle) error {
	behaviourSet := make(map[string]bool, len(b.Behaviours))
	for _, bhv := range b.Behaviours {
		behaviourSet[bhv.UUID] = true
	}
	beliefSet := make(map[string]bool, len(b.Beliefs))
	for _, bl := range b.Beliefs {
		beliefSet[bl.UUID] = true
	}
	agentSet := make(map[string]bool, len(b.Agents))
	for _, a := range b.Agents {
		agentSet[a.UUID] = true
	}

	for _, bl := range b.Beliefs {
		for id, v := range bl.Perceptions {
			if !behaviourSet[id] {
				return fmt.Errorf("belief %q perception references unknown behaviour %s", bl.Name, id)
			}
			if v < -1 || v > 1 {
				return fmt.Errorf("belief %q perception of %s out of [-1,1]: %v", bl.Name, id, v)
			}
		}
		for id, v := range bl.Relationships {
			if !beliefSet[id] {
				return fmt.Errorf("belief %q relationship references excluded belief %s", bl.Name, id)
			}
			if v < -1 || v > 1 {
				return fmt.Errorf("belief %q relationship with %s out of [-1,1]: %v", bl.Name, id, v)
			}
		}
	}

	for _, e := range b.PRS {
		if !beliefSet[e.BeliefUUID] {
			return fmt.Errorf("prs entry references excluded belief %s", e.BeliefUUID)
		}
		if !behaviourSet[e.BehaviourUUID] {
			return fmt.Errorf("prs entry references unknown behaviour %s", e.BehaviourUUID)
		}
		if e.Value < -1 || e.Value > 1 {
			return fmt.Errorf("prs value for belief %s out of [-1,1]: %v", e.BeliefUUID, e.Value)
		}
	}

	for _, a := range b.Agents {
		if len(a.Deltas) != len(b.Beliefs) {
			return fmt.Errorf("agent %s has %d deltas for %d included beliefs", a.UUID, len(a.Deltas), len(b.Beliefs))
		}
		for id, v := range a.Deltas {
			if !beliefSet[id] {
				return fmt.Errorf("agent %s delta references excluded belief %s", a.UUID, id)
			}
			if v <= 0 {
				return fmt.Errorf("agent %s delta for belief %s is not positive: %v", a.UUID, id, v)
			}
		}

		initial, ok := a.Activations[0]
		if !ok {
			return fmt.Errorf("agent %s has no initial activations", a.UUID)
		}
		if len(initial) != len(b.Beliefs) {
			return fmt.Errorf("agent %s has %d activations for %d included beliefs", a.UUID, len(initial), len(b.Beliefs))
		}
		for id, v := range initial {
			if !beliefSet[id] {
				return fmt.Errorf("agent %s activation references excluded belief %s", a.UUID, id)
			}
			if v < -1 || v > 1 {
				return fmt.Errorf("agent %s activation for belief %s out of [-1,1]: %v", a.UUID, id, v)
			}
		}

		action, ok := a.Actions[0]
		if !ok {
			return fmt.Errorf("agent %s has no initial action", a.UUID)
		}
		if !behaviourSet[action] {
			return fmt.Errorf("agent %s initial action references unknown behaviour %s", a.UUID, action)
		}

		for id, w := range a.Friends {
			if !agentSet[id] {
				return fmt.Errorf("agent %s friend edge references unknown agent %s", a.UUID, id)
			}
			if w < 0 || w > 1 {
				return fmt.Errorf("agent %s friend weight for %s out of [0,1]: %v", a.UUID, id, w)
			}
		}
	}

	return nil
}
