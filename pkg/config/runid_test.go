package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}

func TestRunName(t *testing.T) {
	cfg := DefaultRunConfig()
	assert.Equal(t, "qm9-3f2a91bc", RunName(cfg, "3f2a91bc"))

	cfg.Dataset.Name = "DES 370K"
	assert.Equal(t, "des-370k-abc", RunName(cfg, "abc"))

	cfg.Dataset.Name = ""
	assert.Equal(t, "run-abc", RunName(cfg, "abc"))
}

func TestRunDir(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.OutDir = "results"
	assert.Equal(t, filepath.Join("results", "qm9-x1"), RunDir(cfg, "x1"))
}

func TestStarterTemplatesValidate(t *testing.T) {
	for _, name := range StarterNames() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Starter(name)
			require.NoError(t, err)
			require.NoError(t, Validate(cfg).Err())
			require.NoError(t, ResolveDerived(cfg))
			assert.Equal(t, ComputedDimIn(cfg), cfg.Share.DimIn)
		})
	}
}

func TestStarterQM9(t *testing.T) {
	cfg, err := Starter("qm9")
	require.NoError(t, err)
	assert.True(t, cfg.PosencMagLapPE.Enable)
	assert.Equal(t, "tukey", cfg.GNN.Spectral.Window)
	assert.Zero(t, cfg.Share.DimIn, "dim_in is derived on load, not baked in")
}

func TestStarterIsCaseInsensitive(t *testing.T) {
	_, err := Starter("MD17")
	assert.NoError(t, err)
}

func TestStarterUnknown(t *testing.T) {
	_, err := Starter("zinc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "qm9, des370k, md17")
}
