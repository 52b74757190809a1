package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRun_GenerateEndToEnd(t *testing.T) {
	dir := t.TempDir()

	manifest := filepath.Join(dir, "graph.hcl")
	require.NoError(t, os.WriteFile(manifest, []byte(`
package "CUDA" "12.1.1" {}

package "PyTorch" "2.1.2" {
  dependency "CUDA-12.1.1" { kind = "runtime" }
}
`), 0o644))

	config := filepath.Join(dir, ".gitlab-ci.yml")
	require.NoError(t, os.WriteFile(config, []byte(`
default:
  tags: [gpu]
`), 0o644))

	output := filepath.Join(dir, "child-pipeline.yml")

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	err := run(out, errOut, []string{
		"generate", manifest,
		"--config", config,
		"--output", output,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))

	job, ok := doc["PyTorch-2.1.2"].(map[string]any)
	require.True(t, ok, "PyTorch job missing from document")
	assert.Equal(t, []any{"CUDA-12.1.1"}, job["needs"])

	def, ok := doc["default"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"gpu"}, def["tags"])

	assert.Contains(t, out.String(), "Total jobs:    2")
}

func TestRun_GenerateFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()

	manifest := filepath.Join(dir, "graph.hcl")
	require.NoError(t, os.WriteFile(manifest, []byte(`
package "X" "1.0" {
  dependency "Y-1.0" {}
}

package "Y" "1.0" {
  dependency "X-1.0" {}
}
`), 0o644))

	config := filepath.Join(dir, ".gitlab-ci.yml")
	require.NoError(t, os.WriteFile(config, []byte(""), 0o644))

	output := filepath.Join(dir, "child-pipeline.yml")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{
		"generate", manifest,
		"--config", config,
		"--output", output,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "dependency cycle")

	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr), "no document should be written on failure")
}

func TestRun_Help(t *testing.T) {
	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"--help"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_MissingArguments(t *testing.T) {
	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"generate"})
	require.Error(t, err)
}
