// SPDX-License-Identifier: MIT
package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baranwa2/RandomWalkGCN/batch"
	"github.com/baranwa2/RandomWalkGCN/config"
)

func TestDefaults(t *testing.T) {
	c := config.New()

	assert.Equal(t, 0.6, c.P1())
	assert.Equal(t, 0.3, c.P2())
	assert.Equal(t, 0.1, c.Q())
	assert.Equal(t, 0.05, c.Tau())
	assert.Equal(t, 0.4, c.K1())
	assert.Equal(t, 0.6, c.K2())
	assert.Equal(t, 1000, c.N())
	assert.Equal(t, 100, c.BaseCount())
	assert.Equal(t, 100, c.PerturbedCount())
	assert.Equal(t, int64(0), c.Seed())
	assert.False(t, c.SeedSet())
	assert.Equal(t, 20000, c.SeedMax())
	assert.Equal(t, 1, c.Workers())
	assert.Equal(t, "", c.Manifest())
	assert.Equal(t, ".", c.OutputDir())
	assert.Equal(t, "json", c.OutputFormat())
	assert.Equal(t, "info", c.LogLevel())
	require.NoError(t, c.Validate())

	assert.Equal(t, batch.DefaultTwoRegime(), c.TwoRegime())
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sbmgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
model:
  n: 250
  tau: 0.02
batch:
  workers: 3
  phases:
    perturbed: 10
output:
  format: gob
`), 0o644))

	c := config.New()
	require.NoError(t, c.LoadFromFile(path))
	assert.Equal(t, 250, c.N())
	assert.Equal(t, 0.02, c.Tau())
	assert.Equal(t, 3, c.Workers())
	assert.Equal(t, 100, c.BaseCount())
	assert.Equal(t, 10, c.PerturbedCount())
	assert.Equal(t, "gob", c.OutputFormat())
	require.NoError(t, c.Validate())

	require.Error(t, config.New().LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sbmgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("batch:\n  seed: 0\n  workers: 2\n"), 0o644))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers())
	assert.Equal(t, int64(0), c.Seed())
	assert.True(t, c.SeedSet())
	assert.Equal(t, 1000, c.N())

	c, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Workers())
	assert.False(t, c.SeedSet())

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SBMGEN_MODEL_P1", "0.7")
	t.Setenv("SBMGEN_BATCH_SEED", "1234")
	t.Setenv("SBMGEN_OUTPUT_DIR", "/tmp/graphs")

	c := config.New()
	assert.Equal(t, 0.7, c.P1())
	assert.Equal(t, int64(1234), c.Seed())
	assert.True(t, c.SeedSet())
	assert.Equal(t, "/tmp/graphs", c.OutputDir())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(env, []byte("SBMGEN_MODEL_N=321\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("SBMGEN_MODEL_N") })

	require.NoError(t, config.LoadDotEnv(env))
	assert.Equal(t, 321, config.New().N())

	require.NoError(t, config.LoadDotEnv(filepath.Join(dir, "absent.env")))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  interface{}
	}{
		{"fractions", config.KeyK1, 0.5},
		{"n", config.KeyN, 0},
		{"phase count", config.KeyBaseCount, -1},
		{"workers", config.KeyWorkers, 0},
		{"seed max", config.KeySeedMax, 0},
		{"format", config.KeyOutputFormat, "gpickle"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := config.New()
			c.Set(tc.key, tc.val)
			require.ErrorIs(t, c.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := config.NewLogger(&buf, "warn")
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	fallback := config.NewLogger(&buf, "nonsense")
	fallback.Info().Msg("fallback")
	assert.Contains(t, buf.String(), "fallback")

	buf.Reset()
	c := config.New()
	c.Set(config.KeyLogLevel, "debug")
	debugLog := c.Logger(&buf)
	debugLog.Debug().Msg("debugging")
	assert.Contains(t, buf.String(), "debugging")
}
