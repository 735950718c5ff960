package main

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/commuter-abm/scengen/internal/config"
	"github.com/commuter-abm/scengen/internal/logging"
	"github.com/commuter-abm/scengen/internal/manifest"
	"github.com/commuter-abm/scengen/internal/output"
	"github.com/commuter-abm/scengen/internal/scenario"
	"github.com/commuter-abm/scengen/internal/socialgraph"
	"github.com/commuter-abm/scengen/internal/upload"
)

// Scenario identifiers become directory names and object keys, so they are
// restricted to a filesystem-safe alphabet.
var scenarioIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type generateSummary struct {
	ScenarioID string   `json:"scenarioId"`
	Seed       uint64   `json:"seed"`
	Agents     int      `json:"agents"`
	Beliefs    int      `json:"beliefs"`
	Behaviours int      `json:"behaviours"`
	OutputDir  string   `json:"outputDir"`
	RunID      int64    `json:"runId"`
	Uploaded   []string `json:"uploaded,omitempty"`
}

func newGenerateCmd(jsonOut *bool, configPath *string) *cobra.Command {
	var (
		outDir    string
		agents    int
		seedFlag  uint64
		inclusion string
		doUpload  bool
	)

	cmd := &cobra.Command{
		Use:   "generate <scenario-id>",
		Short: "Generate one scenario's configuration artifacts",
		Long: `Generate derives a seed from the scenario identifier, runs the full
pipeline and writes behaviours.json, beliefs.json, prs.json and agents.json
under <output-dir>/scenario/<scenario-id>. The run is recorded in the local
manifest; with --upload the artifacts are also pushed to object storage.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarioID := args[0]
			if !scenarioIDPattern.MatchString(scenarioID) {
				return fmt.Errorf("scenario id %q: only letters, digits, '-' and '_' are allowed", scenarioID)
			}

			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.Output.Dir = outDir
			}
			if agents > 0 {
				cfg.Scenario.Agents = agents
			}
			if inclusion != "" {
				cfg.Scenario.Inclusion = inclusion
			}
			if doUpload {
				cfg.Upload.Enabled = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

			seed := deriveSeed(cfg.Scenario.SeedBase, scenarioID)
			if cmd.Flags().Changed("seed") {
				seed = seedFlag
			}

			params := buildParams(cfg, scenarioID, seed)

			// Create the destination before generating so a bad output path
			// fails in milliseconds, not after the population is built.
			writer, err := output.NewWriter(cfg.Output.Dir, scenarioID)
			if err != nil {
				return err
			}

			log.Info("generating scenario",
				"scenario", scenarioID, "seed", seed,
				"agents", params.Agents, "inclusion", string(params.Inclusion))
			start := time.Now()
			bundle, err := scenario.Generate(params)
			if err != nil {
				return fmt.Errorf("generate scenario %s: %w", scenarioID, err)
			}
			log.Info("pipeline complete",
				"beliefs", len(bundle.Beliefs), "prs", len(bundle.PRS),
				"elapsed", time.Since(start).Round(time.Millisecond))

			if err := writer.WriteBundle(bundle); err != nil {
				return err
			}
			log.Info("artifacts written", "dir", writer.Dir())

			runID, err := recordRun(cfg, writer, bundle)
			if err != nil {
				return err
			}

			var uploaded []string
			if cfg.Upload.Enabled {
				uploaded = uploadArtifacts(cmd, cfg, writer, bundle.ScenarioID, runID, log)
			}

			summary := generateSummary{
				ScenarioID: bundle.ScenarioID,
				Seed:       bundle.Seed,
				Agents:     len(bundle.Agents),
				Beliefs:    len(bundle.Beliefs),
				Behaviours: len(bundle.Behaviours),
				OutputDir:  writer.Dir(),
				RunID:      runID,
				Uploaded:   uploaded,
			}
			if *jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"scenario %s: %d agents, %d beliefs, %d behaviours (seed %d)\nwritten to %s (run %d)\n",
				summary.ScenarioID, summary.Agents, summary.Beliefs,
				summary.Behaviours, summary.Seed, summary.OutputDir, summary.RunID)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides config)")
	cmd.Flags().IntVar(&agents, "agents", 0, "agent population size (overrides config)")
	cmd.Flags().Uint64Var(&seedFlag, "seed", 0, "explicit seed (overrides derivation from scenario id)")
	cmd.Flags().StringVar(&inclusion, "include", "", "belief inclusion policy: all or bernoulli")
	cmd.Flags().BoolVar(&doUpload, "upload", false, "upload artifacts to object storage")

	return cmd
}

// deriveSeed maps a scenario id to a seed. Numeric identifiers offset the
// base directly, so numbered scenario batches get consecutive seeds;
// anything else is hashed.
func deriveSeed(base uint64, scenarioID string) uint64 {
	if n, err := strconv.ParseUint(scenarioID, 10, 64); err == nil {
		return base + n
	}
	h := fnv.New64a()
	h.Write([]byte(scenarioID))
	return base + h.Sum64()
}

func buildParams(cfg *config.Config, scenarioID string, seed uint64) scenario.Params {
	p := scenario.Params{
		ScenarioID:         scenarioID,
		Seed:               seed,
		Agents:             cfg.Scenario.Agents,
		Version:            cfg.Scenario.Version,
		Inclusion:          scenario.InclusionPolicy(cfg.Scenario.Inclusion),
		InclusionProb:      cfg.Scenario.InclusionProb,
		ScaleDivisor:       cfg.Scenario.ScaleDivisor,
		ZeroActivationProb: cfg.Scenario.ZeroActivationProb,
		Graph: socialgraph.Params{
			K:            cfg.Graph.Neighbours,
			Rewire:       cfg.Graph.Rewire,
			SelfLoopProb: cfg.Graph.SelfLoopProb,
			WeightLoc:    cfg.Graph.WeightLoc,
			WeightScale:  cfg.Graph.WeightScale,
		},
	}
	if t := cfg.Scenario.Treatment; t.Belief != "" {
		p.Treatment = &scenario.Treatment{
			Belief:      t.Belief,
			Probability: t.Probability,
			Location:    t.Location,
			Scale:       t.Scale,
		}
	}
	if cfg.Graph.Randomize {
		p.GraphRandomize = &scenario.GraphRandomize{
			NeighbourTrials: cfg.Graph.NeighbourTrials,
			NeighbourProb:   cfg.Graph.NeighbourProb,
			RewireLoc:       cfg.Graph.RewireLoc,
			RewireScale:     cfg.Graph.RewireScale,
		}
	}
	return p
}

func recordRun(cfg *config.Config, writer *output.Writer, bundle *scenario.Bundle) (int64, error) {
	m, err := manifest.Open(cfg.Output.ManifestPath)
	if err != nil {
		return 0, err
	}
	defer m.Close()

	run := manifest.Run{
		ScenarioID: bundle.ScenarioID,
		Seed:       bundle.Seed,
		Agents:     len(bundle.Agents),
		Beliefs:    len(bundle.Beliefs),
		CreatedAt:  time.Now(),
	}
	for _, name := range output.ArtifactFiles() {
		run.Artifacts = append(run.Artifacts, manifest.Artifact{
			Name: name,
			Path: writer.Path(name),
		})
	}
	return m.Record(run)
}

// uploadArtifacts pushes each artifact and marks it in the manifest. Upload
// failures are reported but do not fail the run: the local artifacts are
// complete and the manifest records what is still pending.
func uploadArtifacts(cmd *cobra.Command, cfg *config.Config, writer *output.Writer, scenarioID string, runID int64, log *slog.Logger) []string {
	sink, err := upload.NewS3Sink(cfg.Upload.Endpoint, cfg.Upload.AccessKey, cfg.Upload.SecretKey, cfg.Upload.UseSSL)
	if err != nil {
		log.Warn("upload skipped", "error", err)
		return nil
	}

	m, err := manifest.Open(cfg.Output.ManifestPath)
	if err != nil {
		log.Warn("upload bookkeeping unavailable", "error", err)
		m = nil
	} else {
		defer m.Close()
	}

	var uploaded []string
	for _, name := range output.ArtifactFiles() {
		key := upload.ObjectKey(scenarioID, name)
		if err := sink.Put(cmd.Context(), writer.Path(name), cfg.Upload.Bucket, key); err != nil {
			log.Warn("upload failed", "artifact", name, "error", err)
			continue
		}
		uploaded = append(uploaded, name)
		log.Info("uploaded", "bucket", cfg.Upload.Bucket, "key", key)
		if m != nil {
			if err := m.MarkUploaded(runID, name); err != nil {
				log.Warn("could not mark artifact uploaded", "artifact", name, "error", err)
			}
		}
	}
	return uploaded
}
