package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(map[string]string{
					"version":   buildInfo.Version,
					"commit":    buildInfo.Commit,
					"buildDate": buildInfo.BuildDate,
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\n", data)
				return nil
			}
			fmt.Fprintf(out, "s2gnn %s (commit %s, built %s)\n",
				buildInfo.Version, buildInfo.Commit, buildInfo.BuildDate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	return cmd
}
