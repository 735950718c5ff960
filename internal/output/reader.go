package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/commuter-abm/scengen/internal/scenario"
)

// ReadBundle loads a previously written scenario directory back into a
// bundle so it can be re-verified. The scenario id is recovered from the
// directory name; the seed is not stored in the artifacts and is left zero.
func ReadBundle(dir string) (*scenario.Bundle, error) {
	b := &scenario.Bundle{ScenarioID: filepath.Base(dir)}
	if err := readJSON(filepath.Join(dir, BehavioursFile), &b.Behaviours); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, BeliefsFile), &b.Beliefs); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, PRSFile), &b.PRS); err != nil {
		return nil, err
	}
	if err := readJSON(filepath.Join(dir, AgentsFile), &b.Agents); err != nil {
		return nil, err
	}
	return b, nil
}

func readJSON(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
