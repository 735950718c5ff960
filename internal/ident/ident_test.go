package ident

import "testing"

func TestBehaviourIsStable(t *testing.T) {
	a := Behaviour("Walk")
	b := Behaviour("Walk")
	if a != b {
		t.Fatalf("same name produced different ids: %s vs %s", a, b)
	}
	if a == Behaviour("Cycle") {
		t.Fatal("different names produced the same id")
	}
}

func TestNamespacesAreDistinct(t *testing.T) {
	// The same name in different namespaces must never collide: a belief
	// called "Walk" is not the behaviour "Walk".
	name := "Walk"
	ids := map[string]string{
		"behaviour": Behaviour(name),
		"belief":    Belief(name),
	}
	if ids["behaviour"] == ids["belief"] {
		t.Fatalf("behaviour and belief namespaces collide for %q", name)
	}
}

func TestAgentIncludesVersion(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		i        int
		otherVer string
		otherI   int
	}{
		{name: "different index", version: "20221019v1", i: 0, otherVer: "20221019v1", otherI: 1},
		{name: "different version", version: "20221019v1", i: 0, otherVer: "20230101v2", otherI: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Agent(tt.version, tt.i)
			b := Agent(tt.otherVer, tt.otherI)
			if a == b {
				t.Fatalf("expected distinct agent ids, both %s", a)
			}
		})
	}
}

func TestAgentIsStable(t *testing.T) {
	if Agent("20221019v1", 42) != Agent("20221019v1", 42) {
		t.Fatal("same version and index produced different ids")
	}
}
