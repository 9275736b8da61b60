package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-lifelike/rules"
)

// Seed modes for the initial board
const (
	SeedModeRandom = "random"
	SeedModeNoise  = "noise"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	FrameRate           time.Duration `json:"frame_rate"`
	Rule                string        `json:"rule"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	UseParallel         bool          `json:"use_parallel"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	RandomDensity       float64       `json:"random_density"`
	InjectionCount      int           `json:"injection_count"`
	SeedMode            string        `json:"seed_mode"`
	NoiseScale          float64       `json:"noise_scale"`
	NoiseThreshold      float64       `json:"noise_threshold"`
	Seed                int64         `json:"seed"`
	Interactive         bool          `json:"interactive"`
	Color               bool          `json:"color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		Rule:                "life",
		AutoRestart:         true,
		StagnationThreshold: 5,
		UseParallel:         true,
		Workers:             0, // one per CPU
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		RandomDensity:       0.15,
		InjectionCount:      3,
		SeedMode:            SeedModeRandom,
		NoiseScale:          0.1,
		NoiseThreshold:      0.05,
		Interactive:         false,
		Color:               true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the config for values the simulation cannot run with
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid size %dx%d", c.Width, c.Height)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random_density %v not in [0,1]", c.RandomDensity)
	}
	if c.SeedMode != SeedModeRandom && c.SeedMode != SeedModeNoise {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown seed_mode %q", c.SeedMode)
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers %d", c.Workers)
	}
	// An empty rule means the default rules
	if c.Rule == "" {
		return nil
	}
	if _, err := rules.Parse(c.Rule); err != nil {
		return errors.Wrap(err, "[Validate]")
	}
	return nil
}
