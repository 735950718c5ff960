package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/commuter-abm/scengen/internal/manifest"
)

func newRunsCmd(jsonOut *bool, configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			m, err := manifest.Open(cfg.Output.ManifestPath)
			if err != nil {
				return err
			}
			defer m.Close()

			runs, err := m.List()
			if err != nil {
				return err
			}

			if *jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RUN\tSCENARIO\tSEED\tAGENTS\tBELIEFS\tUPLOADED\tCREATED")
			for _, r := range runs {
				uploaded := 0
				for _, a := range r.Artifacts {
					if a.Uploaded {
						uploaded++
					}
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d/%d\t%s\n",
					r.ID, r.ScenarioID, r.Seed, r.Agents, r.Beliefs,
					uploaded, len(r.Artifacts), r.CreatedAt.Format(time.RFC3339))
			}
			return tw.Flush()
		},
	}
}
