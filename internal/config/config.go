package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/sortviz/internal/bars"
	"gopkg.in/yaml.v3"
)

const (
	DefaultSize      = 50
	DefaultSpeed     = 25 * time.Millisecond
	DefaultShape     = "random"
	DefaultAlgorithm = "merge"
	DefaultLogLevel  = "info"

	MinSpeed = 10 * time.Millisecond
	MaxSpeed = 200 * time.Millisecond
)

var ErrInvalid = errors.New("config: invalid value")

type Config struct {
	Size      int           `yaml:"size"`
	Speed     time.Duration `yaml:"speed"`
	Seed      int64         `yaml:"seed"`
	Shape     string        `yaml:"shape"`
	Algorithm string        `yaml:"algorithm"`
	LogLevel  string        `yaml:"log_level"`
	LogFile   string        `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:      DefaultSize,
		Speed:     DefaultSpeed,
		Shape:     DefaultShape,
		Algorithm: DefaultAlgorithm,
		LogLevel:  DefaultLogLevel,
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
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

// Validate checks the ranges the UI controls allow. Shape and algorithm names
// are resolved by their own packages.
func (c *Config) Validate() error {
	if c.Size < bars.MinSize || c.Size > bars.MaxSize {
		return fmt.Errorf("%w: size %d not in [%d, %d]", ErrInvalid, c.Size, bars.MinSize, bars.MaxSize)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %v not in [%v, %v]", ErrInvalid, c.Speed, MinSpeed, MaxSpeed)
	}
	if c.Shape == "" {
		return fmt.Errorf("%w: empty shape", ErrInvalid)
	}
	return nil
}

// ClampSpeed limits d to the range of the speed control.
func ClampSpeed(d time.Duration) time.Duration {
	if d < MinSpeed {
		return MinSpeed
	}
	if d > MaxSpeed {
		return MaxSpeed
	}
	return d
}
