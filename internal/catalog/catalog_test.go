package catalog

import "testing"

func TestCatalogShape(t *testing.T) {
	specs := Beliefs()
	if len(specs) != NumBeliefs {
		t.Fatalf("expected %d beliefs, got %d", NumBeliefs, len(specs))
	}
	names := BehaviourNames()
	if len(names) != NumBehaviours {
		t.Fatalf("expected %d behaviours, got %d", NumBehaviours, len(names))
	}
}

func TestBeliefNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Beliefs() {
		if s.Name == "" {
			t.Fatal("belief with empty name")
		}
		if seen[s.Name] {
			t.Fatalf("duplicate belief name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestParametersWellFormed(t *testing.T) {
	for _, s := range Beliefs() {
		for j, p := range s.Perception {
			if p.Scale <= 0 {
				t.Fatalf("belief %q perception %d has scale %v", s.Name, j, p.Scale)
			}
			if p.Loc < -1 || p.Loc > 1 {
				t.Fatalf("belief %q perception %d location %v out of [-1,1]", s.Name, j, p.Loc)
			}
		}
		for j, p := range s.PRS {
			if p.Scale <= 0 {
				t.Fatalf("belief %q prs %d has scale %v", s.Name, j, p.Scale)
			}
		}
		for k, loc := range s.Relationship {
			if loc < -1 || loc > 1 {
				t.Fatalf("belief %q relationship %d location %v out of [-1,1]", s.Name, k, loc)
			}
		}
	}
}

func TestTreatmentTargetExists(t *testing.T) {
	// The default treatment configuration names this belief; it must stay
	// in the catalog under exactly this name.
	const target = "Cycling is dangerous"
	for _, s := range Beliefs() {
		if s.Name == target {
			return
		}
	}
	t.Fatalf("catalog is missing belief %q", target)
}
