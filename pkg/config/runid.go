package config

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NewRunID generates a short random run identifier. Run IDs are never
// part of ApplyDefaults: loading the same file twice must yield equal
// configs, so identity is assigned by whoever launches the run.
func NewRunID() string {
	return uuid.NewString()[:8]
}

// RunName composes a human-readable run tag from the dataset and a
// run ID, e.g. "qm9-3f2a91bc". Used for wandb name tags.
func RunName(cfg *RunConfig, id string) string {
	return datasetSlug(cfg) + "-" + id
}

// RunDir composes the output directory for one run beneath out_dir.
func RunDir(cfg *RunConfig, id string) string {
	return filepath.Join(cfg.OutDir, RunName(cfg, id))
}

func datasetSlug(cfg *RunConfig) string {
	slug := strings.ToLower(cfg.Dataset.Name)
	slug = strings.ReplaceAll(slug, " ", "-")
	if slug == "" {
		slug = "run"
	}
	return slug
}
