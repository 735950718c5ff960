// Package ident derives stable identifiers for generated entities.
//
// Identifiers are UUIDv5 values computed from fixed namespaces, so the same
// name yields the same identifier on every run and in every scenario.
// Downstream consumers join the generated documents (behaviours.json,
// beliefs.json, prs.json, agents.json) by identifier alone; there is no
// shared sequence counter.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

var (
	behaviourNamespace = uuid.MustParse("24875ff2-c3ee-449a-85ad-c271bd369caf")
	beliefNamespace    = uuid.MustParse("034d3135-f1f0-441b-a476-9fac37cafc92")
	agentNamespace     = uuid.MustParse("1a9e3ee9-a068-41f8-9f46-a5f684f0101e")
)

// Behaviour returns the identifier for a behaviour name.
func Behaviour(name string) string {
	return uuid.NewSHA1(behaviourNamespace, []byte(name)).String()
}

// Belief returns the identifier for a belief name.
func Belief(name string) string {
	return uuid.NewSHA1(beliefNamespace, []byte(name)).String()
}

// Agent returns the identifier for the agent at index i. The dataset version
// tag is part of the derived name so populations regenerated under a new tag
// do not collide with older ones.
func Agent(version string, i int) string {
	return uuid.NewSHA1(agentNamespace, []byte(fmt.Sprintf("agent_%s_%d", version, i))).String()
}
