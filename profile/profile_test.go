package profile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/jlv/profile"
)

func TestDisabledIsNoop(t *testing.T) {
	t.Parallel()

	var cfg profile.Config

	p, err := cfg.Start()
	require.NoError(t, err)
	require.NoError(t, p.Stop())
}

func TestWritesProfiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := profile.Config{
		CPUProfile:  filepath.Join(dir, "cpu.pprof"),
		HeapProfile: filepath.Join(dir, "heap.pprof"),
	}

	p, err := cfg.Start()
	require.NoError(t, err)
	require.NoError(t, p.Stop())

	for _, path := range []string{cfg.CPUProfile, cfg.HeapProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}
