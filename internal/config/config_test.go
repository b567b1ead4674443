package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Nil(t, cfg.Validate())
	assert.False(t, cfg.Front.Reverse)
	assert.True(t, cfg.Back.Reverse)
	assert.Equal(t, 50, cfg.CircleSamples)
	assert.Equal(t, "snake_nolips.txt", cfg.Outputs.NoLips)
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
input: raw.txt
tolerance: 1.0e-9
front:
  before: 0.15
  after: 0.25
body:
  angle: 35
`))
	require.Nil(t, err)
	assert.Equal(t, "raw.txt", cfg.Input)
	assert.Equal(t, 1e-9, cfg.Tolerance)
	assert.Equal(t, Lip{Before: 0.15, After: 0.25}, cfg.Front)
	assert.Equal(t, Default().Back, cfg.Back)
	assert.Equal(t, 35.0, cfg.Body.Angle)
	assert.Equal(t, 0.004, cfg.Body.Spacing)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("front: [1, 2]"))
	assert.NotNil(t, err)

	_, err = Parse([]byte("back:\n  before: 0\n"))
	assert.ErrorContains(t, err, "back lip")

	_, err = Parse([]byte("circle_samples: 1\ntolerance: -1\n"))
	assert.ErrorContains(t, err, "circle_samples")
	assert.ErrorContains(t, err, "tolerance")
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.Nil(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "lips.yaml")
	require.Nil(t, os.WriteFile(path, []byte("output_dir: out\n"), 0o644))
	cfg, err = Load(path)
	require.Nil(t, err)
	assert.Equal(t, "out", cfg.OutputDir)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestValidateOrder(t *testing.T) {
	cfg := Default()
	cfg.Front.Before = 0
	cfg.Back.After = -1
	cfg.Body.Section = ""
	cfg.Body.Output = ""

	want := cfg.Validate()
	require.NotNil(t, want)
	msg := want.Error()
	assert.Contains(t, msg, "body section is required")
	assert.Contains(t, msg, "body output is required")
	assert.Less(t, strings.Index(msg, "front lip"), strings.Index(msg, "back lip"))
	for range 20 {
		assert.Equal(t, msg, cfg.Validate().Error())
	}
}
