package output

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/commuter-abm/scengen/internal/scenario"
	"github.com/commuter-abm/scengen/internal/socialgraph"
)

func testBundle(t *testing.T) *scenario.Bundle {
	t.Helper()
	b, err := scenario.Generate(scenario.Params{
		ScenarioID:         "roundtrip",
		Seed:               543879,
		Agents:             30,
		Version:            "testv1",
		Inclusion:          scenario.IncludeAll,
		ScaleDivisor:       3,
		ZeroActivationProb: 0.5,
		Graph: socialgraph.Params{
			K:            4,
			Rewire:       0.3,
			SelfLoopProb: 0.8,
			WeightLoc:    0.5,
			WeightScale:  0.15,
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return b
}

func TestWriteReadRoundtrip(t *testing.T) {
	root := t.TempDir()
	bundle := testBundle(t)

	w, err := NewWriter(root, bundle.ScenarioID)
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	if err := w.WriteBundle(bundle); err != nil {
		t.Fatalf("WriteBundle: %v", err)
	}

	for _, name := range ArtifactFiles() {
		if _, err := os.Stat(w.Path(name)); err != nil {
			t.Fatalf("artifact %s missing: %v", name, err)
		}
	}

	got, err := ReadBundle(w.Dir())
	if err != nil {
		t.Fatalf("ReadBundle: %v", err)
	}
	if got.ScenarioID != bundle.ScenarioID {
		t.Fatalf("scenario id %q, want %q", got.ScenarioID, bundle.ScenarioID)
	}
	if !reflect.DeepEqual(got.Behaviours, bundle.Behaviours) {
		t.Fatal("behaviours did not survive the roundtrip")
	}
	if !reflect.DeepEqual(got.Beliefs, bundle.Beliefs) {
		t.Fatal("beliefs did not survive the roundtrip")
	}
	if !reflect.DeepEqual(got.PRS, bundle.PRS) {
		t.Fatal("prs entries did not survive the roundtrip")
	}
	if !reflect.DeepEqual(got.Agents, bundle.Agents) {
		t.Fatal("agents did not survive the roundtrip")
	}
	if err := scenario.Verify(got); err != nil {
		t.Fatalf("reloaded bundle failed verification: %v", err)
	}
}

func TestNewWriterFailsFast(t *testing.T) {
	// A regular file where the scenario tree should go makes MkdirAll fail
	// on every platform and for every uid.
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "scenario"), nil, 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	if _, err := NewWriter(root, "denied"); err == nil {
		t.Fatal("expected error for unwritable output root")
	}
}

func TestScenarioDirLayout(t *testing.T) {
	got := ScenarioDir("out", "abc")
	want := filepath.Join("out", "scenario", "abc")
	if got != want {
		t.Fatalf("ScenarioDir = %q, want %q", got, want)
	}
}

func TestReadBundleMissingFile(t *testing.T) {
	if _, err := ReadBundle(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing artifacts")
	}
}
