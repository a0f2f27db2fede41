// s2gnn - run-configuration toolkit for spectral GNN training
package main

import (
	"github.com/d-rothen/gem-s2gnn/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.SetBuildInfo(cli.BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
	})
	cli.Execute()
}
