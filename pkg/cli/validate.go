package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/d-rothen/gem-s2gnn/pkg/config"
)

func newValidateCmd() *cobra.Command {
	var (
		configPath   string
		opts         []string
		verbose      bool
		showResolved bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a run config without launching training",
		Long: `Validate a run config file without launching training.

This command checks:
  - YAML syntax and unknown sections/options (rejected, not ignored)
  - Option types and enumerations against the embedded schema
  - Value domains (learning rate > 0, dropout in [0,1), ...)
  - Derived-field consistency, e.g. share.dim_in against
    gnn.dim_inner plus the enabled positional-encoding widths

Exit code 0 means the config would load cleanly; any parse,
validation, or consistency error exits non-zero.`,
		Example: `  # Validate the config discovered in the current directory
  s2gnn validate

  # Validate a specific file
  s2gnn validate -f configs/qm9-maglap.yaml

  # Check that an override grid point is still consistent
  s2gnn validate -f configs/qm9-maglap.yaml --opt optim.base_lr=0.0003

  # Show the fully resolved config after defaults and overrides
  s2gnn validate -f configs/qm9-maglap.yaml --show-resolved`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(configPath, config.Discover)
			if err != nil {
				return err
			}

			cfg, err := config.Load(path, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: configuration is valid\n", path)
			if verbose {
				printSummary(out, cfg)
			}
			if showResolved {
				data, err := config.ToYAML(cfg)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\nResolved configuration:\n%s", data)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "", "run config file path")
	cmd.Flags().StringArrayVar(&opts, "opt", nil, "dotted-path override key=value (repeatable)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "print a summary of the resolved run")
	cmd.Flags().BoolVar(&showResolved, "show-resolved", false, "print the resolved config as YAML")
	return cmd
}

// printSummary prints the handful of facts someone double-checks
// before queueing a run.
func printSummary(w io.Writer, cfg *config.RunConfig) {
	var posenc []string
	if cfg.PosencMagLapPE.Enable {
		posenc = append(posenc, fmt.Sprintf("MagLapPE(%d)", cfg.PosencMagLapPE.DimPe))
	}
	if cfg.PosencRWSE.Enable {
		posenc = append(posenc, fmt.Sprintf("RWSE(%d)", cfg.PosencRWSE.DimPe))
	}
	if len(posenc) == 0 {
		posenc = append(posenc, "none")
	}

	fmt.Fprintf(w, "  dataset:    %s (%s, %s %s)\n",
		cfg.Dataset.Name, cfg.Dataset.Format, cfg.Dataset.Task, cfg.Dataset.TaskType)
	fmt.Fprintf(w, "  model:      %s, %d mp layers of %s, dim_inner %d\n",
		cfg.Model.Type, cfg.GNN.LayersMP, cfg.GNN.LayerType, cfg.GNN.DimInner)
	fmt.Fprintf(w, "  spectral:   %s filter, variant %s, window %s\n",
		cfg.GNN.Spectral.FilterEncoder, cfg.GNN.Spectral.FilterVariant, cfg.GNN.Spectral.Window)
	fmt.Fprintf(w, "  posenc:     %s\n", strings.Join(posenc, " + "))
	fmt.Fprintf(w, "  dims:       dim_in %d, dim_out %d\n", cfg.Share.DimIn, cfg.Share.DimOut)
	fmt.Fprintf(w, "  optim:      %s, lr %g, %d epochs, averaging %s\n",
		cfg.Optim.Optimizer, cfg.Optim.BaseLR, cfg.Optim.MaxEpoch, cfg.Optim.ModelAveraging)
	fmt.Fprintf(w, "  metric:     %s (%s)\n", cfg.MetricBest, cfg.MetricAgg)
}
