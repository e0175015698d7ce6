package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/dominoscore/internal/location"
	"github.com/lox/dominoscore/internal/scoreboard"
)

// DefaultFile is read when no --config is given
const DefaultFile = "dominoscore.hcl"

// Config represents the complete scorekeeper configuration
type Config struct {
	UI       *UISettings       `hcl:"ui,block"`
	Location *LocationSettings `hcl:"location,block"`
	Game     *GameSettings     `hcl:"game,block"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Color    string `hcl:"color,optional"`
}

// LocationSettings selects where "fetch" gets coordinates from
type LocationSettings struct {
	Provider       string  `hcl:"provider,optional"`
	URL            string  `hcl:"url,optional"`
	TimeoutSeconds int     `hcl:"timeout_seconds,optional"`
	Latitude       float64 `hcl:"latitude,optional"`
	Longitude      float64 `hcl:"longitude,optional"`
}

// GameSettings holds scoring-table preferences
type GameSettings struct {
	Names []string `hcl:"names,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		UI: &UISettings{
			LogLevel: "info",
			LogFile:  "dominoscore.log",
			Color:    "auto",
		},
		Location: &LocationSettings{
			Provider:       "http",
			URL:            location.DefaultGeoIPURL,
			TimeoutSeconds: int(location.DefaultTimeout / time.Second),
		},
		Game: &GameSettings{
			Names: scoreboard.SuggestedNames(),
		},
	}
}

// Load reads configuration from an HCL file, returning defaults when the
// file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.UI == nil {
		c.UI = defaults.UI
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Color == "" {
		c.UI.Color = defaults.UI.Color
	}

	if c.Location == nil {
		c.Location = defaults.Location
	}
	if c.Location.Provider == "" {
		c.Location.Provider = defaults.Location.Provider
	}
	if c.Location.URL == "" {
		c.Location.URL = defaults.Location.URL
	}
	if c.Location.TimeoutSeconds == 0 {
		c.Location.TimeoutSeconds = defaults.Location.TimeoutSeconds
	}

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if len(c.Game.Names) == 0 {
		c.Game.Names = defaults.Game.Names
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[c.UI.Color] {
		return fmt.Errorf("invalid color mode: %s", c.UI.Color)
	}

	switch c.Location.Provider {
	case "http", "none":
	case "static":
		if c.Location.Latitude < -90 || c.Location.Latitude > 90 {
			return fmt.Errorf("latitude must be between -90 and 90, got %v", c.Location.Latitude)
		}
		if c.Location.Longitude < -180 || c.Location.Longitude > 180 {
			return fmt.Errorf("longitude must be between -180 and 180, got %v", c.Location.Longitude)
		}
	default:
		return fmt.Errorf("invalid location provider: %s", c.Location.Provider)
	}

	if c.Location.TimeoutSeconds <= 0 {
		return fmt.Errorf("location timeout must be positive")
	}

	return nil
}

// LocationTimeout returns the bound on a single position request
func (c *Config) LocationTimeout() time.Duration {
	return time.Duration(c.Location.TimeoutSeconds) * time.Second
}

// Locator builds the positioning source selected by the location block
func (c *Config) Locator() location.Locator {
	switch c.Location.Provider {
	case "static":
		return location.StaticLocator{Coordinates: location.Coordinates{
			Latitude:  c.Location.Latitude,
			Longitude: c.Location.Longitude,
		}}
	case "none":
		return location.Disabled{}
	default:
		return location.NewHTTPLocator(c.Location.URL)
	}
}
