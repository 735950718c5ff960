// Command scengen generates synthetic scenario configurations for the
// commuter transport-choice simulation: behaviour and belief catalogs,
// preference matrices and a fully initialized agent population, written as
// JSON artifacts and tracked in a local run manifest.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/commuter-abm/scengen/internal/config"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var jsonOut bool
	var configPath string

	root := &cobra.Command{
		Use:   "scengen",
		Short: "Scenario configuration generator for the commuter simulation",
		Long: `scengen generates the configuration documents one simulation scenario
needs: the transport behaviour catalog, a sampled belief system, the
preferred-state (PRS) matrix, and an agent population wired into a
small-world friendship graph. A scenario identifier fully determines its
output through a derived random seed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON output")
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ./scengen.yaml)")

	root.AddCommand(newGenerateCmd(&jsonOut, &configPath))
	root.AddCommand(newValidateCmd(&jsonOut, &configPath))
	root.AddCommand(newRunsCmd(&jsonOut, &configPath))
	root.AddCommand(newVersionCmd(&jsonOut))

	return root
}

// loadConfig resolves the effective configuration. Without --config the
// local scengen.yaml is used when present, defaults otherwise.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		path = "scengen.yaml"
	}
	return config.Load(path)
}

func newVersionCmd(jsonOut *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the scengen version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if *jsonOut {
				fmt.Fprintf(cmd.OutOrStdout(), "{\"version\":%q}\n", version)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "scengen", version)
			return nil
		},
	}
}
