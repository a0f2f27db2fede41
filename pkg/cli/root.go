// Package cli implements the s2gnn command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds version information injected at build time.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

var buildInfo = BuildInfo{Version: "dev", Commit: "none", BuildDate: "unknown"}

// SetBuildInfo is called by main with ldflags-injected values.
func SetBuildInfo(bi BuildInfo) { buildInfo = bi }

// NewRootCmd assembles the full s2gnn command tree. Each invocation
// returns a fresh tree so tests can execute commands independently.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "s2gnn",
		Short: "Run-configuration toolkit for spectral GNN training",
		Long: `s2gnn loads, validates, and inspects training-run configurations for
spectral GNN experiments (QM9, DES370K, MD17 and friends).

A run config is a YAML document with a fixed schema: dataset selection,
positional encodings, the message-passing backbone and its spectral
filter, optimizer settings, and shared dimensions. s2gnn checks the
document against that schema, fills documented defaults, applies
dotted-path overrides, and verifies derived fields such as
share.dim_in before any GPU time is spent on a broken config.

The training framework itself consumes the validated config; s2gnn
never launches training.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newValidateCmd(),
		newShowCmd(),
		newGridCmd(),
		newInitCmd(),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the command tree and exits non-zero on any error, so
// shell scripts can gate training launches on `s2gnn validate`.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveConfigPath falls back to discovery (S2GNN_CONFIG or
// config.yaml in the working directory) when no -f flag was given.
func resolveConfigPath(path string, discover func() (string, error)) (string, error) {
	if path != "" {
		return path, nil
	}
	return discover()
}
