// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"go-delivery-canvas/pkg/render"

	"gopkg.in/yaml.v3"
)

const (
	CanvasSize   = 500
	SpaceSize    = 20.0
	MaxDeltaTime = 0.06
	DefaultTPS   = 10

	DefaultJobs       = 10
	DefaultAgents     = 5
	DefaultWarehouses = 1
	DefaultSplit      = 0.4 // share of trucks among agents

	CarSpeed      = 0.1
	CarCapacity   = 1
	TruckSpeed    = 0.04
	TruckCapacity = 3

	JobMinValue    = 1
	JobMaxValue    = 9
	JobPriorities  = 3
	ArrivalRadius  = 1.0
	AgentDiameter  = 1.0
	JobRadiusScale = 0.75 // triangle radius as a share of one cell

	// HUD buttons in the viewer, measured from the top-right corner
	PauseButtonOffsetX = 30
	SpeedButtonOffsetX = 70
	ButtonY            = 24
	ButtonSize         = 10.0
)

var (
	CarColor       = color.RGBA{0xe3, 0xad, 0xb5, 255}
	TruckColor     = color.RGBA{0x95, 0xdd, 0xe3, 255}
	WarehouseColor = color.RGBA{0x65, 0x43, 0x21, 255}
	PriorityColors = map[int]color.RGBA{
		1: {0xff, 0x4e, 0x11, 255}, // high
		2: {0xfa, 0xb7, 0x33, 255},
		3: {0x69, 0xb3, 0x4c, 255}, // low
	}
	// PriorityWeights scales allocation odds and waiting-time score by job priority.
	PriorityWeights = map[int]int{1: 5, 2: 3, 3: 1}
	BackgroundColor = color.RGBA{255, 255, 255, 255}

	PauseColor        = color.RGBA{70, 130, 180, 220}
	PlayColor         = color.RGBA{60, 170, 90, 220}
	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds everything a run needs: surface size and simulation parameters.
type Config struct {
	Width      int                     `yaml:"width"`
	Height     int                     `yaml:"height"`
	SpaceSize  float64                 `yaml:"space_size"`
	Seed       int64                   `yaml:"seed"`
	Jobs       int                     `yaml:"jobs"`
	Agents     int                     `yaml:"agents"`
	Split      float64                 `yaml:"split"`
	Warehouses int                     `yaml:"warehouses"`
	Steps      int                     `yaml:"steps"`
	TPS        int                     `yaml:"tps"`
	Palette    render.PaletteOverrides `yaml:"palette"`
}

// Default mirrors the parameters of the delivery server.
func Default() Config {
	return Config{
		Width:      CanvasSize,
		Height:     CanvasSize,
		SpaceSize:  SpaceSize,
		Jobs:       DefaultJobs,
		Agents:     DefaultAgents,
		Split:      DefaultSplit,
		Warehouses: DefaultWarehouses,
		Steps:      200,
		TPS:        DefaultTPS,
	}
}

// Load reads a YAML file on top of Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: surface size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SpaceSize <= AgentDiameter:
		return fmt.Errorf("%w: space_size %.2f", ErrInvalidConfig, c.SpaceSize)
	case c.Jobs < 0 || c.Agents < 0 || c.Warehouses < 0:
		return fmt.Errorf("%w: negative agent count", ErrInvalidConfig)
	case c.Split < 0 || c.Split > 1:
		return fmt.Errorf("%w: split %.2f outside [0,1]", ErrInvalidConfig, c.Split)
	case c.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	return nil
}

// RenderPalette returns the default palette with the file's overrides applied.
func (c Config) RenderPalette() render.Palette {
	return c.Palette.Apply(render.DefaultPalette())
}

// CellSize is the pixel length of one space unit along x.
func (c Config) CellSize() float64 {
	return float64(c.Width) / c.SpaceSize
}
