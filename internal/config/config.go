package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/engine"
)

const (
	DefaultAlgorithm = "selection"
	DefaultSize      = 50
	DefaultMin       = 1
	DefaultMax       = 100
	DefaultTheme     = "cyberpunk"
	DefaultFrameRate = 30
)

type Config struct {
	Algorithm string      `yaml:"algorithm" validate:"required,oneof=selection bubble"`
	Input     InputConfig `yaml:"input"`
	Delays    DelayConfig `yaml:"delays"`
	Theme     string      `yaml:"theme"`
	FrameRate int         `yaml:"fps" validate:"gte=1,lte=120"`
}

type InputConfig struct {
	Shape  string `yaml:"shape" validate:"omitempty,oneof=random reversed sorted few_unique"`
	Size   int    `yaml:"size" validate:"gte=1,lte=500"`
	Min    int    `yaml:"min" validate:"gte=0"`
	Max    int    `yaml:"max" validate:"gtefield=Min"`
	Seed   int64  `yaml:"seed"`
	Values []int  `yaml:"values,omitempty"`
}

type DelayConfig struct {
	Compare time.Duration `yaml:"compare" validate:"gt=0"`
	Swap    time.Duration `yaml:"swap" validate:"gt=0"`
}

func DefaultConfig() *Config {
	return &Config{
		Algorithm: DefaultAlgorithm,
		Input: InputConfig{
			Shape: string(dataset.Random),
			Size:  DefaultSize,
			Min:   DefaultMin,
			Max:   DefaultMax,
		},
		Delays: DelayConfig{
			Compare: engine.DefaultCompareDelay,
			Swap:    engine.DefaultSwapDelay,
		},
		Theme:     DefaultTheme,
		FrameRate: DefaultFrameRate,
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

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate.Struct(c)
}

// Values returns the array the config describes: the explicit values when
// present, a generated array otherwise.
func (c *Config) Values() ([]int, error) {
	if len(c.Input.Values) > 0 {
		out := make([]int, len(c.Input.Values))
		copy(out, c.Input.Values)
		return out, nil
	}
	return dataset.Generate(dataset.Spec{
		Shape: dataset.Shape(c.Input.Shape),
		Size:  c.Input.Size,
		Min:   c.Input.Min,
		Max:   c.Input.Max,
		Seed:  c.Input.Seed,
	})
}

func (c *Config) Pacer() engine.Fixed {
	return engine.NewFixed(c.Delays.Compare, c.Delays.Swap)
}
