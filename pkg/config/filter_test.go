package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterMatchesDocumentKeys(t *testing.T) {
	cfg := DefaultRunConfig()
	cfg.Dataset.Name = "QM9"
	cfg.Optim.BaseLR = 0.0005

	tests := []struct {
		expr string
		want bool
	}{
		{`dataset.name == "QM9"`, true},
		{`dataset.name == "DES370K"`, false},
		{`optim.base_lr < 0.001`, true},
		{`gnn.spectral.filter_encoder == "basis"`, true},
		{`posenc_MagLapPE.enable`, false},
		{`dataset.name == "QM9" && optim.base_lr < 0.001`, true},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			f, err := CompileFilter(tc.expr)
			require.NoError(t, err)
			got, err := f.Match(cfg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFilterRejectsNonBooleanResult(t *testing.T) {
	f, err := CompileFilter(`optim.base_lr + 1`)
	if err != nil {
		// Rejected at compile time, which is fine too.
		return
	}
	_, err = f.Match(DefaultRunConfig())
	assert.Error(t, err)
}

func TestCompileFilterRejectsBadSyntax(t *testing.T) {
	_, err := CompileFilter(`dataset.name ==`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter expression")
}

func TestFilterString(t *testing.T) {
	f, err := CompileFilter(`wandb.use`)
	require.NoError(t, err)
	assert.Equal(t, `wandb.use`, f.String())
}
