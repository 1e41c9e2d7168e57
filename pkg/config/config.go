package config

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the immutable board configuration handed to every component at
// construction.
type Config struct {
	LogLevel string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	Debug    bool   `yaml:"debug" env:"TICTACTOE_DEBUG" env-default:"false"`

	Board  Board  `yaml:"board"`
	Style  Style  `yaml:"style"`
	Screen Screen `yaml:"screen"`
}

type Board struct {
	// GridSize is the number of cells along each axis.
	GridSize int `yaml:"grid-size" env:"TICTACTOE_GRID_SIZE" env-default:"3"`
	// SlotSize is the world-space side length of one cell.
	SlotSize float64 `yaml:"slot-size" env:"TICTACTOE_SLOT_SIZE" env-default:"100"`
	// BarThickness is the thickness of the grid lines.
	BarThickness float64 `yaml:"bar-thickness" env:"TICTACTOE_BAR_THICKNESS" env-default:"8"`
	// EnforceLegality rejects confirms on cells that already hold a mark.
	EnforceLegality bool `yaml:"enforce-legality" env:"TICTACTOE_ENFORCE_LEGALITY" env-default:"false"`
}

type Style struct {
	StrokeWidth    float64  `yaml:"stroke-width" env:"TICTACTOE_STROKE_WIDTH" env-default:"6"`
	PreviewOpacity float64  `yaml:"preview-opacity" env:"TICTACTOE_PREVIEW_OPACITY" env-default:"0.2"`
	BarColor       HexColor `yaml:"bar-color" env:"TICTACTOE_BAR_COLOR" env-default:"#404040"`
	CrossColor     HexColor `yaml:"cross-color" env:"TICTACTOE_CROSS_COLOR" env-default:"#4040bf"`
	CircleColor    HexColor `yaml:"circle-color" env:"TICTACTOE_CIRCLE_COLOR" env-default:"#bf4040"`
}

type Screen struct {
	Width  int    `yaml:"width" env:"TICTACTOE_SCREEN_WIDTH" env-default:"640"`
	Height int    `yaml:"height" env:"TICTACTOE_SCREEN_HEIGHT" env-default:"480"`
	Title  string `yaml:"title" env:"TICTACTOE_SCREEN_TITLE" env-default:"Tic-Tac-Toe"`
}

// HexColor is an opaque colour written as "#rrggbb".
type HexColor string

// Parse returns the colour described by c.
func (c HexColor) Parse() (color.RGBA, error) {
	var r, g, b uint8
	if len(c) != 7 {
		return color.RGBA{}, fmt.Errorf("%w: colour %q is not of the form #rrggbb", ErrInvalidConfig, string(c))
	}
	if _, err := fmt.Sscanf(string(c), "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("%w: colour %q: %v", ErrInvalidConfig, string(c), err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Color is Parse for values that have already been validated.
func (c HexColor) Color() color.RGBA {
	clr, err := c.Parse()
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return clr
}

// Default returns the configuration populated from env-default tags only.
func Default() (*Config, error) {
	return Load("")
}

// Load reads the configuration from the YAML file at path, or from the
// environment when path is empty. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %v", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read config from environment: %v", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// MustLoad is Load that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}
	return cfg
}

// Validate reports geometry and style values the board cannot be built from.
func (c *Config) Validate() error {
	if c.Board.GridSize <= 0 {
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfig, c.Board.GridSize)
	}
	if c.Board.SlotSize <= 0 {
		return fmt.Errorf("%w: slot size must be positive, got %v", ErrInvalidConfig, c.Board.SlotSize)
	}
	if c.Board.BarThickness <= 0 {
		return fmt.Errorf("%w: bar thickness must be positive, got %v", ErrInvalidConfig, c.Board.BarThickness)
	}
	if c.Style.StrokeWidth <= 0 {
		return fmt.Errorf("%w: stroke width must be positive, got %v", ErrInvalidConfig, c.Style.StrokeWidth)
	}
	if c.Style.PreviewOpacity < 0 || c.Style.PreviewOpacity > 1 {
		return fmt.Errorf("%w: preview opacity must be within [0, 1], got %v", ErrInvalidConfig, c.Style.PreviewOpacity)
	}
	for _, clr := range []HexColor{c.Style.BarColor, c.Style.CrossColor, c.Style.CircleColor} {
		if _, err := clr.Parse(); err != nil {
			return err
		}
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d", ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	return nil
}
