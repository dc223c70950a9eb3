package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-delivery-canvas/pkg/render"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "canvas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 25.0, cfg.CellSize())
	assert.Equal(t, render.DefaultPalette(), cfg.RenderPalette())
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
width: 300
height: 200
seed: 7
jobs: 4
palette:
  slot_filled: "#000000"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 200, cfg.Height)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 4, cfg.Jobs)
	assert.Equal(t, DefaultAgents, cfg.Agents)
	assert.Equal(t, uint8(0), cfg.RenderPalette().SlotFilled.R)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad_yaml", "width: [", false},
		{"zero_width", "width: 0", true},
		{"tiny_space", "space_size: 0.5", true},
		{"bad_split", "split: 1.5", true},
		{"negative_jobs", "jobs: -1", true},
		{"zero_tps", "tps: 0", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeFile(t, c.body))
			require.Error(t, err)
			assert.Equal(t, c.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canvas.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jobs: 3\n"), 0o644))

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("jobs: 9\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("jobs: 4\n"), 0o644))

	select {
	case cfg := <-w.Configs:
		assert.Equal(t, 4, cfg.Jobs)
	case err := <-w.Errors:
		t.Fatalf("unexpected watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within 5s")
	}
}
