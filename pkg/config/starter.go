package config

import (
	"fmt"
	"strings"
)

// StarterNames lists the available starter templates.
func StarterNames() []string { return []string{"qm9", "des370k", "md17"} }

// Starter returns a ready-to-edit run config for a named template.
// share.dim_in is left at 0 in every template so it is derived on
// load instead of going stale when the template is edited.
func Starter(name string) (*RunConfig, error) {
	cfg := DefaultRunConfig()

	switch strings.ToLower(name) {
	case "qm9", "default":
		cfg.PosencMagLapPE.Enable = true
		cfg.GNN.Spectral.Window = "tukey"
		cfg.GNN.Spectral.FrequencyCutoff = 2.0

	case "des370k":
		cfg.Dataset.Format = "PyG-DES370K"
		cfg.Dataset.Name = "DES370K"
		cfg.PosencMagLapPE.Enable = true
		cfg.Train.BatchSize = 64
		cfg.Optim.MaxEpoch = 300
		cfg.Optim.ModelAveraging = "ema"

	case "md17":
		cfg.Dataset.Format = "PyG-MD17"
		cfg.Dataset.Name = "aspirin"
		cfg.PosencRWSE.Enable = true
		cfg.Train.BatchSize = 32

	default:
		return nil, fmt.Errorf("unknown template %q, available: %s",
			name, strings.Join(StarterNames(), ", "))
	}

	cfg.Share.DimIn = 0
	return cfg, nil
}
