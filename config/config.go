package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

// Config holds the client settings read from config.json.
type Config struct {
	ServerURL   string  `json:"server_url"`
	SurfaceSize int     `json:"surface_size"`
	Palette     Palette `json:"palette"`
	LogLevel    string  `json:"log_level"`
	MonitorAddr string  `json:"monitor_addr"`
	WindowTitle string  `json:"window_title"`
}

// Palette colours are "#rrggbb" or CSS names.
type Palette struct {
	Background string `json:"background"`
	Snake      string `json:"snake"`
	Rival      string `json:"rival"`
	Food       string `json:"food"`
}

// Colors is a parsed Palette.
type Colors struct {
	Background color.RGBA
	Snake      color.RGBA
	Rival      color.RGBA
	Food       color.RGBA
}

func Default() *Config {
	return &Config{
		ServerURL:   "ws://localhost:3000/play",
		SurfaceSize: 600,
		Palette: Palette{
			Background: "#231f20",
			Snake:      "#c2c2c2",
			Rival:      "red",
			Food:       "#e66916",
		},
		LogLevel:    "info",
		WindowTitle: "Snake",
	}
}

// Load reads the config file over the defaults. A missing file is created
// with the defaults written into it; failing to write it is only logged.
func Load(filePath string) (*Config, error) {
	cfg := Default()
	file, err := os.Open(filePath)
	if errors.Is(err, os.ErrNotExist) {
		if err := save(filePath, cfg); err != nil {
			log.WithError(err).WithField("path", filePath).Warn("running on defaults, config not written")
		}
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", filePath, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", filePath, err)
	}
	return cfg, nil
}

func save(filePath string, cfg *Config) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cfg)
}

func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return errors.New("server_url is empty")
	}
	if c.SurfaceSize < 1 {
		return fmt.Errorf("surface_size %d must be positive", c.SurfaceSize)
	}
	_, err := c.Palette.Parse()
	return err
}

func (p Palette) Parse() (Colors, error) {
	var (
		c   Colors
		err error
	)
	if c.Background, err = ParseColor(p.Background); err != nil {
		return c, fmt.Errorf("palette background: %w", err)
	}
	if c.Snake, err = ParseColor(p.Snake); err != nil {
		return c, fmt.Errorf("palette snake: %w", err)
	}
	if c.Rival, err = ParseColor(p.Rival); err != nil {
		return c, fmt.Errorf("palette rival: %w", err)
	}
	if c.Food, err = ParseColor(p.Food); err != nil {
		return c, fmt.Errorf("palette food: %w", err)
	}
	return c, nil
}

// ParseColor accepts "#rgb", "#rrggbb" or a CSS colour name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[s]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	u, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u), A: 0xff}, nil
}
