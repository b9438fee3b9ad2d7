package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bitraster/internal/raster"
)

const (
	// DefaultDelayMS is the pause between automaton generations and
	// between stream-mode lines.
	DefaultDelayMS = 250
	// DefaultIdleMS paces the viewer's idle refresh while the automaton
	// is off.
	DefaultIdleMS = 100
)

// Config holds viewer defaults loadable from a yaml file. CLI flags
// override any field they explicitly set.
type Config struct {
	WidthBits int    `yaml:"width_bits"` // 0 = fit the terminal
	Offset    int64  `yaml:"offset"`
	DelayMS   int    `yaml:"delay_ms"`
	BitOrder  string `yaml:"bit_order"` // "msb" (default) or "lsb"
}

func DefaultConfig() *Config {
	return &Config{
		DelayMS:  DefaultDelayMS,
		BitOrder: "msb",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Order resolves the configured bit order name.
func (c *Config) Order() (raster.Order, error) {
	switch c.BitOrder {
	case "", "msb":
		return raster.MSBFirst, nil
	case "lsb":
		return raster.LSBFirst, nil
	}
	return 0, fmt.Errorf("bit_order %q: want msb or lsb", c.BitOrder)
}

// Validate checks the constraints shared by config files and CLI flags.
func (c *Config) Validate() error {
	if c.WidthBits < 0 || c.WidthBits%8 != 0 {
		return fmt.Errorf("width %d: must be a non-negative multiple of 8", c.WidthBits)
	}
	if c.Offset < 0 {
		return fmt.Errorf("offset %d: must not be negative", c.Offset)
	}
	if c.DelayMS < 0 {
		return fmt.Errorf("delay %dms: must not be negative", c.DelayMS)
	}
	if _, err := c.Order(); err != nil {
		return err
	}
	return nil
}
