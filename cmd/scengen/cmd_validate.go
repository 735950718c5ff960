package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/commuter-abm/scengen/internal/output"
	"github.com/commuter-abm/scengen/internal/scenario"
)

type validateSummary struct {
	ScenarioID string `json:"scenarioId"`
	Agents     int    `json:"agents"`
	Beliefs    int    `json:"beliefs"`
	Behaviours int    `json:"behaviours"`
	PRSEntries int    `json:"prsEntries"`
	Valid      bool   `json:"valid"`
}

func newValidateCmd(jsonOut *bool, configPath *string) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "validate <scenario-id>",
		Short: "Re-verify a previously generated scenario's artifacts",
		Long: `Validate reads a scenario's artifact files back from disk and re-runs
the referential and domain checks: every identifier must resolve within the
bundle and every sampled value must lie in its domain.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarioID := args[0]
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if outDir != "" {
				cfg.Output.Dir = outDir
			}

			dir := output.ScenarioDir(cfg.Output.Dir, scenarioID)
			bundle, err := output.ReadBundle(dir)
			if err != nil {
				return fmt.Errorf("read scenario %s: %w", scenarioID, err)
			}
			if err := scenario.Verify(bundle); err != nil {
				return fmt.Errorf("scenario %s is invalid: %w", scenarioID, err)
			}

			summary := validateSummary{
				ScenarioID: scenarioID,
				Agents:     len(bundle.Agents),
				Beliefs:    len(bundle.Beliefs),
				Behaviours: len(bundle.Behaviours),
				PRSEntries: len(bundle.PRS),
				Valid:      true,
			}
			if *jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "scenario %s: valid (%d agents, %d beliefs, %d prs entries) in %s\n",
				scenarioID, summary.Agents, summary.Beliefs, summary.PRSEntries, filepath.Clean(dir))
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides config)")
	return cmd
}
