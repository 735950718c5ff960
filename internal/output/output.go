// Package output writes and reads scenario bundles as JSON artifact files
// under a per-scenario directory.
package output

import (
	"path/filepath"
)

// Artifact file names within a scenario directory.
const (
	BehavioursFile = "behaviours.json"
	BeliefsFile    = "beliefs.json"
	PRSFile        = "prs.json"
	AgentsFile     = "agents.json"
)

// ArtifactFiles lists the files one bundle produces, in write order.
func ArtifactFiles() []string {
	return []string{BehavioursFile, BeliefsFile, PRSFile, AgentsFile}
}

// ScenarioDir returns the directory artifacts for scenarioID live in.
func ScenarioDir(root, scenarioID string) string {
	return filepath.Join(root, "scenario", scenarioID)
}
