package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/config"
)

func TestDefaultIsSane(t *testing.T) {
	cfg := config.Default()
	require.Greater(t, cfg.HashMB, 0)
	require.Equal(t, 1, cfg.Threads)
	require.Greater(t, cfg.MoveOverhead, time.Duration(0))
	require.False(t, cfg.Ponder)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corvid.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
hash_mb = 256
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 256, cfg.HashMB)
	// Fields absent from the file keep Default's values.
	require.Equal(t, config.Default().Threads, cfg.Threads)
	require.Equal(t, config.Default().MoveOverhead, cfg.MoveOverhead)
}

func TestLoadAllFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corvid.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
hash_mb = 128
threads = 1
move_overhead = 50000000
ponder = true
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 128, cfg.HashMB)
	require.Equal(t, 50*time.Millisecond, cfg.MoveOverhead)
	require.True(t, cfg.Ponder)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestLoadMalformedTOMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "corvid.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid toml"), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
