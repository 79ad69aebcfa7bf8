package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all viewer configuration values
type Config struct {
	Display DisplayConfig `yaml:"display"`
	World   WorldConfig   `yaml:"world"`
	Tiles   TileConfig    `yaml:"tiles"`
	Input   InputConfig   `yaml:"input"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type WorldConfig struct {
	MapWidth  int   `yaml:"map_width"`
	MapHeight int   `yaml:"map_height"`
	Variants  int   `yaml:"variants"`
	Seed      int64 `yaml:"seed"`
}

type TileConfig struct {
	Dir        string `yaml:"dir"`
	TileWidth  int    `yaml:"tile_width"`
	TileHeight int    `yaml:"tile_height"`
}

type InputConfig struct {
	WheelPanScale float64 `yaml:"wheel_pan_scale"`
	KeyPanSpeed   float64 `yaml:"key_pan_speed"`
	ZoomRate      float64 `yaml:"zoom_rate"`
	ZoomInitial   float64 `yaml:"zoom_initial"`
	ZoomMin       float64 `yaml:"zoom_min"`
	ZoomMax       float64 `yaml:"zoom_max"`
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}

	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

func (c *Config) validate() error {
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.World.MapWidth <= 0 || c.World.MapHeight <= 0 {
		return fmt.Errorf("map size must be positive, got %dx%d", c.World.MapWidth, c.World.MapHeight)
	}
	if c.Tiles.TileWidth <= 0 || c.Tiles.TileHeight <= 0 {
		return fmt.Errorf("tile size must be positive, got %dx%d", c.Tiles.TileWidth, c.Tiles.TileHeight)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetMapWidth() int {
	return c.World.MapWidth
}

func (c *Config) GetMapHeight() int {
	return c.World.MapHeight
}

func (c *Config) GetTileWidth() int {
	return c.Tiles.TileWidth
}

func (c *Config) GetTileHeight() int {
	return c.Tiles.TileHeight
}

// GetZoomInitial returns the starting zoom factor, defaulting to 1.
func (c *Config) GetZoomInitial() float64 {
	if c.Input.ZoomInitial <= 0 {
		return 1
	}
	return c.Input.ZoomInitial
}

// GetZoomRange returns the zoom clamp bounds, defaulting to [0.25, 4].
func (c *Config) GetZoomRange() (float64, float64) {
	min, max := c.Input.ZoomMin, c.Input.ZoomMax
	if min <= 0 {
		min = 0.25
	}
	if max <= 0 {
		max = 4
	}
	return min, max
}
