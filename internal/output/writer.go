package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/commuter-abm/scengen/internal/scenario"
)

// Writer emits one scenario's artifact files.
type Writer struct {
	dir string
}

// NewWriter creates the scenario directory up front so an unwritable
// destination fails before any generation work is spent.
func NewWriter(root, scenarioID string) (*Writer, error) {
	dir := ScenarioDir(root, scenarioID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create scenario directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the scenario directory this writer targets.
func (w *Writer) Dir() string {
	return w.dir
}

// Path returns the full path of a named artifact file.
func (w *Writer) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// WriteBundle writes all four artifact files. The agent file is streamed
// agent by agent rather than marshalled in one piece; a full population
// serializes to hundreds of megabytes.
func (w *Writer) WriteBundle(b *scenario.Bundle) error {
	if err := w.writeJSON(BehavioursFile, b.Behaviours); err != nil {
		return err
	}
	if err := w.writeJSON(BeliefsFile, b.Beliefs); err != nil {
		return err
	}
	if err := w.writeJSON(PRSFile, b.PRS); err != nil {
		return err
	}
	return w.writeAgents(b.Agents)
}

func (w *Writer) writeJSON(name string, v any) error {
	f, err := os.Create(w.Path(name))
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	enc := json.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

func (w *Writer) writeAgents(agents []scenario.Agent) error {
	f, err := os.Create(w.Path(AgentsFile))
	if err != nil {
		return fmt.Errorf("create %s: %w", AgentsFile, err)
	}
	bw := bufio.NewWriterSize(f, 1<<20)
	if _, err := bw.WriteString("["); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", AgentsFile, err)
	}
	for i := range agents {
		if i > 0 {
			if _, err := bw.WriteString(","); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", AgentsFile, err)
			}
		}
		raw, err := json.Marshal(&agents[i])
		if err != nil {
			f.Close()
			return fmt.Errorf("encode agent %s: %w", agents[i].UUID, err)
		}
		if _, err := bw.Write(raw); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", AgentsFile, err)
		}
	}
	if _, err := bw.WriteString("]\n"); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", AgentsFile, err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush %s: %w", AgentsFile, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", AgentsFile, err)
	}
	return nil
}
