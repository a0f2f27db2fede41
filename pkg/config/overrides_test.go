package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverridesChangesOnlyTheNamedField(t *testing.T) {
	cfg := DefaultRunConfig()
	want := *cfg
	want.Optim.BaseLR = 0.0005

	require.NoError(t, ApplyOverrides(cfg, []string{"optim.base_lr=0.0005"}))
	assert.Equal(t, &want, cfg)
}

func TestApplyOverridesScalarTypes(t *testing.T) {
	cfg := DefaultRunConfig()
	err := ApplyOverrides(cfg, []string{
		"seed=42",
		"device=cuda:1",
		"wandb.use=true",
		"gnn.dropout=0.1",
		"train.batch_size=64",
	})
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Seed)
	assert.Equal(t, "cuda:1", cfg.Device)
	assert.True(t, cfg.Wandb.Use)
	assert.Equal(t, 0.1, cfg.GNN.Dropout)
	assert.Equal(t, 64, cfg.Train.BatchSize)
}

func TestApplyOverridesSequenceValue(t *testing.T) {
	cfg := DefaultRunConfig()
	require.NoError(t, ApplyOverrides(cfg, []string{"gnn.layer_skip=[3,4,5]"}))
	assert.Equal(t, []int{3, 4, 5}, cfg.GNN.LayerSkip)
}

func TestApplyOverridesBoolPointerField(t *testing.T) {
	cfg := DefaultRunConfig()
	require.NoError(t, ApplyOverrides(cfg, []string{"gnn.batchnorm=false"}))
	require.NotNil(t, cfg.GNN.BatchNorm)
	assert.False(t, *cfg.GNN.BatchNorm)
	assert.False(t, cfg.GNN.BatchNormEnabled())
}

func TestApplyOverridesAppliedInOrder(t *testing.T) {
	cfg := DefaultRunConfig()
	err := ApplyOverrides(cfg, []string{"seed=1", "seed=2"})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Seed, "later overrides win")
}

func TestApplyOverridesUnknownKey(t *testing.T) {
	cfg := DefaultRunConfig()
	err := ApplyOverrides(cfg, []string{"optim.base_lrr=0.001"})
	require.Error(t, err)

	var uk *UnknownKeyError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "optim.base_lrr", uk.Key)
}

func TestApplyOverridesUnknownSection(t *testing.T) {
	cfg := DefaultRunConfig()
	var uk *UnknownKeyError
	require.ErrorAs(t, ApplyOverrides(cfg, []string{"optimm.base_lr=0.001"}), &uk)
}

func TestApplyOverridesMalformed(t *testing.T) {
	cfg := DefaultRunConfig()

	assert.Error(t, ApplyOverrides(cfg, []string{"optim.base_lr"}),
		"missing = must be rejected")
	assert.Error(t, ApplyOverrides(cfg, []string{".base_lr=0.1"}),
		"empty path segment must be rejected")
	assert.Error(t, ApplyOverrides(cfg, []string{"optim..base_lr=0.1"}),
		"empty path segment must be rejected")
}

func TestApplyOverridesTypeMismatch(t *testing.T) {
	cfg := DefaultRunConfig()
	err := ApplyOverrides(cfg, []string{"train.batch_size=large"})
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Error(), "batch_size")
}
