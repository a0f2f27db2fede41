package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/d-rothen/gem-s2gnn/pkg/config"
)

func newShowCmd() *cobra.Command {
	var (
		configPath string
		opts       []string
		jsonOut    bool
		runDir     bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective run config",
		Long: `Print the effective run config: the file contents with every
documented default filled in, overrides applied, and derived fields
resolved. This is exactly what the training framework would consume.`,
		Example: `  # Effective config as YAML
  s2gnn show -f configs/qm9-maglap.yaml

  # As JSON, with an override applied
  s2gnn show -f configs/qm9-maglap.yaml --opt train.batch_size=256 --json

  # Print a freshly assigned output directory for this run
  s2gnn show -f configs/qm9-maglap.yaml --run-dir`,
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

			if runDir {
				fmt.Fprintln(out, config.RunDir(cfg, config.NewRunID()))
				return nil
			}

			if jsonOut {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n", data)
				return nil
			}

			data, err := config.ToYAML(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s", data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "f", "", "run config file path")
	cmd.Flags().StringArrayVar(&opts, "opt", nil, "dotted-path override key=value (repeatable)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output JSON instead of YAML")
	cmd.Flags().BoolVar(&runDir, "run-dir", false, "print a newly assigned run output directory")
	return cmd
}
