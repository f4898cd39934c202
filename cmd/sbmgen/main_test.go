// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baranwa2/RandomWalkGCN/batch"
	"github.com/baranwa2/RandomWalkGCN/graphio"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGenerateThenVerify(t *testing.T) {
	t.Setenv("SBMGEN_MODEL_N", "40")
	t.Setenv("SBMGEN_BATCH_PHASES_BASE", "3")
	t.Setenv("SBMGEN_BATCH_PHASES_PERTURBED", "2")

	dir := t.TempDir()
	manifest := filepath.Join(dir, "manifest.json")
	out, err := run(t, "generate", "--out", dir, "--seed", "5", "--format", "gob",
		"--manifest", manifest, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "wrote 5 graphs")

	for i := 1; i <= 5; i++ {
		_, err := os.Stat(filepath.Join(dir, graphio.FileName(i, "gob")))
		require.NoError(t, err)
	}
	_, err = os.Stat(manifest)
	require.NoError(t, err)

	out, err = run(t, "verify", "--dir", dir, "--format", "gob", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "base")
	require.Contains(t, out, "perturbed")
	require.Contains(t, out, "components=")

	_, err = run(t, "verify", "--dir", dir, "--format", "json", "--log-level", "error")
	require.Error(t, err)
}

func TestGenerate_InvalidConfig(t *testing.T) {
	t.Setenv("SBMGEN_MODEL_K1", "0.9")

	_, err := run(t, "generate", "--out", t.TempDir(), "--log-level", "error")
	require.Error(t, err)

	_, err = run(t, "generate", "--workers", "0", "--log-level", "error")
	require.Error(t, err)
}

func TestGenerate_SeedZeroReproduces(t *testing.T) {
	t.Setenv("SBMGEN_MODEL_N", "30")
	t.Setenv("SBMGEN_BATCH_PHASES_BASE", "2")
	t.Setenv("SBMGEN_BATCH_PHASES_PERTURBED", "2")

	dirs := []string{t.TempDir(), t.TempDir()}
	for _, dir := range dirs {
		_, err := run(t, "generate", "--out", dir, "--seed", "0",
			"--manifest", filepath.Join(dir, "manifest.json"), "--log-level", "error")
		require.NoError(t, err)

		m, err := batch.ReadManifest(filepath.Join(dir, "manifest.json"))
		require.NoError(t, err)
		require.Zero(t, m.MasterSeed)
		require.Equal(t, batch.Seeds(0, 4, batch.DefaultSeedMax), []int64{
			m.Records[0].Seed, m.Records[1].Seed, m.Records[2].Seed, m.Records[3].Seed,
		})
	}
	for i := 1; i <= 4; i++ {
		a, err := os.ReadFile(filepath.Join(dirs[0], graphio.FileName(i, "json")))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirs[1], graphio.FileName(i, "json")))
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestGenerate_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "sbmgen.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(`
model:
  n: 20
batch:
  seed: 9
  phases:
    base: 1
    perturbed: 1
output:
  format: gob
`), 0o644))

	out, err := run(t, "generate", "--config", cfg, "--out", dir, "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, out, "wrote 2 graphs")
	require.Contains(t, out, "master seed 9")
	_, err = os.Stat(filepath.Join(dir, graphio.FileName(2, "gob")))
	require.NoError(t, err)

	_, err = run(t, "generate", "--config", filepath.Join(dir, "absent.yaml"), "--log-level", "error")
	require.Error(t, err)
}
