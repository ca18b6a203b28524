package sprite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultCapacity is the initial slot capacity of a SpriteList. The
	// attribute buffers double from here whenever the sequential slot
	// counter reaches capacity.
	DefaultCapacity = 100

	// DefaultBruteForceThreshold is the sprite count below which the
	// against-a-list collision query brute-forces every sprite instead of
	// asking the renderer to narrow candidates. Purely a performance
	// heuristic; every broad-phase path converges after the narrow phase.
	DefaultBruteForceThreshold = 1500

	// DefaultCellSize is the spatial hash cell edge length in world units.
	DefaultCellSize = 128.0
)

// Config holds the tunable knobs of a SpriteList. The zero value of any
// field falls back to its default.
type Config struct {
	InitialCapacity     int     `yaml:"initial_capacity"`
	BruteForceThreshold int     `yaml:"brute_force_threshold"`
	EnableSpatialHash   bool    `yaml:"enable_spatial_hash"`
	HashCellSize        float64 `yaml:"hash_cell_size"`
}

// DefaultConfig returns a Config with every knob at its default.
func DefaultConfig() Config {
	return Config{
		InitialCapacity:     DefaultCapacity,
		BruteForceThreshold: DefaultBruteForceThreshold,
		HashCellSize:        DefaultCellSize,
	}
}

// normalized fills zero-valued fields with defaults.
func (c Config) normalized() Config {
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = DefaultCapacity
	}
	if c.BruteForceThreshold <= 0 {
		c.BruteForceThreshold = DefaultBruteForceThreshold
	}
	if c.HashCellSize <= 0 {
		c.HashCellSize = DefaultCellSize
	}
	return c
}

// LoadConfig reads a YAML config file. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg.normalized(), nil
}
