package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Board.GridSize)
	assert.Equal(t, 100.0, cfg.Board.SlotSize)
	assert.Equal(t, 8.0, cfg.Board.BarThickness)
	assert.False(t, cfg.Board.EnforceLegality)
	assert.Equal(t, 0.2, cfg.Style.PreviewOpacity)
	assert.Equal(t, color.RGBA{R: 0x40, G: 0x40, B: 0xbf, A: 0xff}, cfg.Style.CrossColor.Color())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_env(t *testing.T) {
	t.Setenv("TICTACTOE_GRID_SIZE", "5")
	t.Setenv("TICTACTOE_ENFORCE_LEGALITY", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Board.GridSize)
	assert.True(t, cfg.Board.EnforceLegality)
}

func TestLoad_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := `
log-level: debug
board:
  grid-size: 4
  slot-size: 64
style:
  circle-color: "#00ff00"
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Board.GridSize)
	assert.Equal(t, 64.0, cfg.Board.SlotSize)
	assert.Equal(t, 8.0, cfg.Board.BarThickness)
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, cfg.Style.CircleColor.Color())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Default()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{name: "zero grid size", mutate: func(cfg *Config) { cfg.Board.GridSize = 0 }},
		{name: "negative slot size", mutate: func(cfg *Config) { cfg.Board.SlotSize = -1 }},
		{name: "zero bar thickness", mutate: func(cfg *Config) { cfg.Board.BarThickness = 0 }},
		{name: "zero stroke width", mutate: func(cfg *Config) { cfg.Style.StrokeWidth = 0 }},
		{name: "opacity above one", mutate: func(cfg *Config) { cfg.Style.PreviewOpacity = 1.5 }},
		{name: "malformed colour", mutate: func(cfg *Config) { cfg.Style.BarColor = "red" }},
		{name: "empty screen", mutate: func(cfg *Config) { cfg.Screen.Width = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}

	assert.NoError(t, valid().Validate())
}
