package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDerivedFillsDimIn(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.GNN.DimInner = 128
	cfg.PosencMagLapPE.Enable = true
	cfg.PosencMagLapPE.DimPe = 8
	cfg.Share.DimIn = 0

	require.NoError(t, ResolveDerived(cfg))
	assert.Equal(t, 136, cfg.Share.DimIn)
}

func TestResolveDerivedSumsAllEnabledEncodings(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.GNN.DimInner = 128
	cfg.PosencMagLapPE.Enable = true
	cfg.PosencMagLapPE.DimPe = 8
	cfg.PosencRWSE.Enable = true
	cfg.PosencRWSE.DimPe = 16
	cfg.Share.DimIn = 0

	require.NoError(t, ResolveDerived(cfg))
	assert.Equal(t, 152, cfg.Share.DimIn)
}

func TestResolveDerivedAcceptsMatchingStatedValue(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.GNN.DimInner = 128
	cfg.PosencMagLapPE.Enable = true
	cfg.PosencMagLapPE.DimPe = 8
	cfg.Share.DimIn = 136

	require.NoError(t, ResolveDerived(cfg))
	assert.Equal(t, 136, cfg.Share.DimIn)
}

// A stated dim_in of 236 against a computed 136 is the discrepancy the
// two original example grids shipped with; it must fail loudly instead
// of being silently overwritten.
func TestResolveDerivedRejectsContradiction(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.GNN.DimInner = 128
	cfg.PosencMagLapPE.Enable = true
	cfg.PosencMagLapPE.DimPe = 8
	cfg.Share.DimIn = 236

	err := ResolveDerived(cfg)
	require.Error(t, err)

	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "share.dim_in", ce.Key)
	assert.Equal(t, 236, ce.Stated)
	assert.Equal(t, 136, ce.Computed)
	assert.Equal(t, 236, cfg.Share.DimIn, "the stated value must be left untouched")
}

func TestResolveDerivedIgnoresDisabledEncodings(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.GNN.DimInner = 128
	cfg.PosencMagLapPE.Enable = false
	cfg.PosencMagLapPE.DimPe = 8
	cfg.Share.DimIn = 0

	require.NoError(t, ResolveDerived(cfg))
	assert.Equal(t, 128, cfg.Share.DimIn, "disabled encodings do not count")
}

func TestResolveDerivedDimOut(t *testing.T) {
	cfg := DefaultRunConfig() // graph regression
	cfg.Share.DimOut = 0
	require.NoError(t, ResolveDerived(cfg))
	assert.Equal(t, 1, cfg.Share.DimOut)

	cfg = DefaultRunConfig()
	cfg.Dataset.TaskType = "classification"
	cfg.Share.DimOut = 0
	require.NoError(t, ResolveDerived(cfg))
	assert.Equal(t, 0, cfg.Share.DimOut,
		"classification widths depend on the dataset and must be stated")

	cfg = DefaultRunConfig()
	cfg.Share.DimOut = 12
	require.NoError(t, ResolveDerived(cfg))
	assert.Equal(t, 12, cfg.Share.DimOut, "a stated dim_out wins")
}
