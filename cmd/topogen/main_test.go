package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/serial"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newApp().Run(append([]string{"topogen", "--verbosity", "0"}, args...))
}

func readSource(t *testing.T, dir string) string {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join(dir, serial.SourceFile))
	require.NoError(t, err)
	return string(raw)
}

func TestSymmetricCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, "symmetric", "--nodes", "6", "--min-peers", "1", "--max-peers", "3",
		"--seed", "42", "--out", dir))

	header, err := os.ReadFile(filepath.Join(dir, serial.HeaderFile))
	require.NoError(t, err)
	assert.Contains(t, string(header), "#define N_NODES 6\n")
	assert.Contains(t, string(header), "#define MAX_PEERS 3\n")

	// Matches the library output for the same seed.
	g, err := builder.RandomSymmetric(6, 1, 3, builder.WithSeed(42))
	require.NoError(t, err)
	s, err := serial.Serialize(g, 6, 1, 3)
	require.NoError(t, err)
	var want strings.Builder
	require.NoError(t, serial.WriteSource(&want, s))
	assert.Equal(t, want.String(), readSource(t, dir))
}

func TestSmallWorldCommand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, run(t, "smallworld", "--nodes", "50", "--density", "0.3", "--propagation", "0.2",
		"--max-distance", "10", "--seed", "5", "--trial", "single", "--workers", "3", "--out", dir))
	assert.Contains(t, readSource(t, dir), "peer_list_sizes[N_NODES] = {")
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()

	err := run(t, "symmetric", "--nodes", "10", "--min-peers", "5", "--max-peers", "3", "--out", dir)
	require.ErrorIs(t, err, builder.ErrInvalidParameters)

	err = run(t, "smallworld", "--nodes", "10", "--density", "0.3", "--propagation", "0.2",
		"--max-distance", "3", "--trial", "triple", "--out", dir)
	require.ErrorIs(t, err, builder.ErrInvalidParameters)

	err = run(t, "symmetric", "--nodes", "10", "--min-peers", "1", "--max-peers", "3",
		"--attempts-factor", "0", "--out", dir)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, serial.SourceFile))
	assert.True(t, os.IsNotExist(statErr), "failed runs must not write files")
}
