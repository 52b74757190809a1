package baseconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gitlab-ci.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		path := writeConfig(t, `
default:
  tags: [gpu, slurm]
  before_script:
    - ml python
  id_tokens:
    CI_JOB_JWT:
      aud: https://codebase.example.org
  retry:
    max: 1
    when: [runner_system_failure]
  timeout: 4h
  image: easybuild:latest

execute_builds:
  stage: build
  variables:
    EASYBUILD_PREFIX: /apps/eb
    SCHEDULER_PARAMETERS: "-p gpu"
`)

		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)

		assert.Equal(t, []string{"gpu", "slurm"}, cfg.Defaults.Tags)
		assert.Equal(t, []string{"ml python"}, cfg.Defaults.BeforeScript)
		assert.Equal(t, "https://codebase.example.org", cfg.Defaults.IDTokens["CI_JOB_JWT"].Aud)
		require.NotNil(t, cfg.Defaults.Retry)
		assert.Equal(t, 1, cfg.Defaults.Retry.Max)
		assert.Equal(t, "4h", cfg.Defaults.Timeout)
		assert.Equal(t, "easybuild:latest", cfg.Defaults.Image)
		assert.Equal(t, "/apps/eb", cfg.Variables["EASYBUILD_PREFIX"])
	})

	t.Run("empty file is valid", func(t *testing.T) {
		path := writeConfig(t, "")

		cfg, err := Load(context.Background(), path)
		require.NoError(t, err)
		assert.Empty(t, cfg.Defaults.Tags)
		assert.NotNil(t, cfg.Variables)
		assert.Empty(t, cfg.Variables)
	})

	t.Run("missing file is a distinct error", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yml"))

		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "default: [unclosed")

		_, err := Load(context.Background(), path)

		var parseErr *ParseError
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestValidateVariables(t *testing.T) {
	t.Run("no references", func(t *testing.T) {
		assert.NoError(t, ValidateVariables(map[string]string{
			"A": "plain",
			"B": "also plain",
		}))
	})

	t.Run("acyclic chain", func(t *testing.T) {
		assert.NoError(t, ValidateVariables(map[string]string{
			"A": "${B}/bin",
			"B": "$C",
			"C": "/opt",
		}))
	})

	t.Run("reference to undefined name resolves at runtime", func(t *testing.T) {
		assert.NoError(t, ValidateVariables(map[string]string{
			"A": "$HOME/stuff",
		}))
	})

	t.Run("direct self-reference", func(t *testing.T) {
		err := ValidateVariables(map[string]string{"A": "${A}"})

		var circErr *CircularVariableError
		require.ErrorAs(t, err, &circErr)
		assert.Equal(t, []string{"A"}, circErr.Cycle)
	})

	t.Run("bare dollar self-reference", func(t *testing.T) {
		err := ValidateVariables(map[string]string{"EB_PATH": "$EB_PATH"})

		var circErr *CircularVariableError
		require.ErrorAs(t, err, &circErr)
		assert.Equal(t, []string{"EB_PATH"}, circErr.Cycle)
	})

	t.Run("two-variable cycle", func(t *testing.T) {
		err := ValidateVariables(map[string]string{
			"A": "${B}",
			"B": "${A}",
		})

		var circErr *CircularVariableError
		require.ErrorAs(t, err, &circErr)
		assert.ElementsMatch(t, []string{"A", "B"}, circErr.Cycle)
	})

	t.Run("longer cycle through clean variables", func(t *testing.T) {
		err := ValidateVariables(map[string]string{
			"CLEAN": "/opt",
			"A":     "${B}",
			"B":     "${C}",
			"C":     "${A} and ${CLEAN}",
		})

		var circErr *CircularVariableError
		require.ErrorAs(t, err, &circErr)
		assert.ElementsMatch(t, []string{"A", "B", "C"}, circErr.Cycle)
	})
}

func TestReferences(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, references("${A}/x/$B"))
	assert.Empty(t, references("no refs here"))
	assert.Empty(t, references("escaped $$ is still matched as nothing"))
}
