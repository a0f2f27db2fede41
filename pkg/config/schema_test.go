package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDocumentAcceptsValidConfig(t *testing.T) {
	doc := []byte(`
dataset:
  format: PyG-QM9
  name: QM9
gnn:
  dim_inner: 128
  spectral:
    filter_encoder: basis
optim:
  base_lr: 0.001
`)
	assert.NoError(t, ValidateDocument(doc))
}

func TestValidateDocumentUnknownSection(t *testing.T) {
	err := ValidateDocument([]byte("datasett:\n  name: QM9\n"))
	require.Error(t, err)

	var uk *UnknownKeyError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "datasett", uk.Key)
}

func TestValidateDocumentUnknownNestedKey(t *testing.T) {
	err := ValidateDocument([]byte("optim:\n  base_lrr: 0.001\n"))
	require.Error(t, err)

	var uk *UnknownKeyError
	require.ErrorAs(t, err, &uk)
	assert.Equal(t, "optim.base_lrr", uk.Key)
}

func TestValidateDocumentWrongType(t *testing.T) {
	err := ValidateDocument([]byte("train:\n  batch_size: big\n"))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "train.batch_size", ve.Key)
}

func TestValidateDocumentEnumViolation(t *testing.T) {
	err := ValidateDocument([]byte("gnn:\n  spectral:\n    filter_encoder: foo\n"))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "gnn.spectral.filter_encoder", ve.Key)
}

func TestValidateDocumentEmpty(t *testing.T) {
	assert.ErrorIs(t, ValidateDocument(nil), ErrEmptyDocument)
	assert.ErrorIs(t, ValidateDocument([]byte("# only a comment\n")), ErrEmptyDocument)
}

func TestValidateDocumentMalformedYAML(t *testing.T) {
	var pe *ParseError
	assert.ErrorAs(t, ValidateDocument([]byte("dataset: [\n")), &pe)
}

func TestValidateDocumentCollectsMultipleViolations(t *testing.T) {
	doc := []byte(`
metric_agg: argmedian
gnn:
  spectral:
    filter_encoder: foo
`)
	err := ValidateDocument(doc)
	require.Error(t, err)

	var r *Result
	require.ErrorAs(t, err, &r)
	assert.GreaterOrEqual(t, len(r.Errors), 2)
}

func TestDottedPath(t *testing.T) {
	assert.Equal(t, "", dottedPath(""))
	assert.Equal(t, "gnn.spectral.window", dottedPath("/gnn/spectral/window"))
	assert.Equal(t, "optim", dottedPath("/optim"))
}
