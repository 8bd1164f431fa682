package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const configFileName = ".arrowpadrc.toml"

type Config struct {
	SaveDirectory   string  `toml:"save_directory"`
	PickRadius      float64 `toml:"pick_radius"`
	NodeRadius      float64 `toml:"node_radius"`
	NodeColor       string  `toml:"node_color"`
	ConnectionColor string  `toml:"connection_color"`
	HighlightColor  string  `toml:"highlight_color"`
	ArrowWidth      float64 `toml:"arrow_width"`
	ExtendFactor    float64 `toml:"extend_factor"`
	ShowLabels      bool    `toml:"show_labels"`
}

func defaultConfig() *Config {
	return &Config{
		SaveDirectory:   "",
		PickRadius:      defaultPickRadius,
		NodeRadius:      defaultNodeRadius,
		NodeColor:       "#ff0000",
		ConnectionColor: "#ff0000",
		HighlightColor:  "#00ff00",
		ArrowWidth:      defaultArrowWidth,
		ExtendFactor:    defaultExtendFactor,
		ShowLabels:      true,
	}
}

// loadConfig reads ~/.arrowpadrc.toml. A missing or unreadable file leaves
// the defaults in place.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}
	cfg, err := loadConfigFile(filepath.Join(homeDir, configFileName))
	if err != nil {
		return defaultConfig()
	}
	return cfg
}

func loadConfigFile(path string) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	if strings.HasPrefix(config.SaveDirectory, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			config.SaveDirectory = filepath.Join(homeDir, strings.TrimPrefix(config.SaveDirectory, "~"))
		}
	}
	if config.SaveDirectory != "" && !filepath.IsAbs(config.SaveDirectory) {
		if absPath, err := filepath.Abs(config.SaveDirectory); err == nil {
			config.SaveDirectory = absPath
		}
	}

	defaults := defaultConfig()
	if config.PickRadius <= 0 {
		config.PickRadius = defaults.PickRadius
	}
	if config.NodeRadius <= 0 {
		config.NodeRadius = defaults.NodeRadius
	}
	if config.ArrowWidth <= 0 {
		config.ArrowWidth = defaults.ArrowWidth
	}
	if config.ExtendFactor <= 0 {
		config.ExtendFactor = defaults.ExtendFactor
	}
	return config, nil
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}

// Apply copies the drawing settings onto r.
func (c *Config) Apply(r *Renderer) {
	r.SetConnectionColor(parseHexColor(c.ConnectionColor, colorRed))
	r.SetHighlightColor(parseHexColor(c.HighlightColor, colorGreen))
	r.SetArrowWidth(c.ArrowWidth)
	r.SetArrowExtendFactor(c.ExtendFactor)
}

func (c *Config) nodeColor() color.Color {
	return parseHexColor(c.NodeColor, colorRed)
}

// parseHexColor accepts #rrggbb or #rgb and returns fallback for anything else.
func parseHexColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 255}
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
