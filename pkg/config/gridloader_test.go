package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGridFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGridLoaderLoadsEveryConfig(t *testing.T) {
	dir := t.TempDir()
	writeGridFile(t, dir, "a.yaml", minimalQM9)
	writeGridFile(t, dir, "b.yml", minimalQM9)

	result, err := NewGridLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, 2, result.FileCount)
	assert.Len(t, result.Runs, 2)
	assert.Empty(t, result.Errors)
}

func TestGridLoaderCollectsPerFileFailures(t *testing.T) {
	dir := t.TempDir()
	writeGridFile(t, dir, "good.yaml", minimalQM9)
	writeGridFile(t, dir, "bad.yaml", "metric_agg: argmedian\n")
	writeGridFile(t, dir, "broken.yaml", "dataset: [\n")

	result, err := NewGridLoader(dir).Load()
	require.NoError(t, err, "per-file failures must not abort the grid")

	assert.Equal(t, 3, result.FileCount)
	require.Len(t, result.Runs, 1)
	assert.Equal(t, filepath.Join(dir, "good.yaml"), result.Runs[0].Path)
	assert.Len(t, result.Errors, 2)
}

func TestGridLoaderRecursive(t *testing.T) {
	dir := t.TempDir()
	writeGridFile(t, dir, "top.yaml", minimalQM9)
	writeGridFile(t, dir, filepath.Join("sweep", "lr1.yaml"), minimalQM9)
	writeGridFile(t, dir, filepath.Join("sweep", "deep", "lr2.yaml"), minimalQM9)

	result, err := NewGridLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, 3, result.FileCount)

	flat := &GridLoader{Path: dir}
	result, err = flat.Load()
	require.NoError(t, err)
	assert.Equal(t, 1, result.FileCount)
}

func TestGridLoaderOrderedByPath(t *testing.T) {
	dir := t.TempDir()
	writeGridFile(t, dir, "c.yaml", minimalQM9)
	writeGridFile(t, dir, "a.yaml", minimalQM9)
	writeGridFile(t, dir, "b.yaml", minimalQM9)

	result, err := NewGridLoader(dir).Load()
	require.NoError(t, err)
	require.Len(t, result.Runs, 3)
	assert.Equal(t, filepath.Join(dir, "a.yaml"), result.Runs[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.yaml"), result.Runs[1].Path)
	assert.Equal(t, filepath.Join(dir, "c.yaml"), result.Runs[2].Path)
}

func TestGridLoaderSkipsHiddenFiles(t *testing.T) {
	dir := t.TempDir()
	writeGridFile(t, dir, "run.yaml", minimalQM9)
	writeGridFile(t, dir, ".draft.yaml", "metric_agg: argmedian\n")
	writeGridFile(t, dir, "notes.txt", "not a config")

	result, err := NewGridLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, 1, result.FileCount)
	assert.Empty(t, result.Errors)
}

func TestGridLoaderMissingDirectory(t *testing.T) {
	_, err := NewGridLoader(filepath.Join(t.TempDir(), "nope")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not found")
}

func TestGridLoaderPathIsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeGridFile(t, dir, "run.yaml", minimalQM9)

	_, err := NewGridLoader(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestGridLoaderFilter(t *testing.T) {
	dir := t.TempDir()
	writeGridFile(t, dir, "qm9.yaml", minimalQM9)
	writeGridFile(t, dir, "des.yaml", `
dataset:
  format: PyG-DES370K
  name: DES370K
`)

	filter, err := CompileFilter(`dataset.name == "QM9"`)
	require.NoError(t, err)

	loader := NewGridLoader(dir)
	loader.Filter = filter
	result, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, 2, result.FileCount)
	require.Len(t, result.Runs, 1)
	assert.Equal(t, "QM9", result.Runs[0].Config.Dataset.Name)
}
