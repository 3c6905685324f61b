package train

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig marks training configuration validation failures.
var ErrInvalidConfig = errors.New("invalid training config")

// ConfigError wraps a validation failure with the offending field.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s: %s", ErrInvalidConfig.Error(), e.Field, e.Msg)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

func invalidf(field, format string, args ...any) error {
	return &ConfigError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Config holds the training hyperparameters.
//
// LearningRate decays linearly: lr(k) = learning_rate - decay * k / epochs,
// matching the reference schedule (1.0 down to 0.1 over 100 epochs).
type Config struct {
	Epochs            int     `yaml:"epochs"`
	Hidden            []int   `yaml:"hidden"`
	Alpha             float64 `yaml:"alpha"` // L2 regularization strength
	LearningRate      float64 `yaml:"learning_rate"`
	LearningRateDecay float64 `yaml:"learning_rate_decay"`
	Seed              int64   `yaml:"seed"`

	// DatasetPath points at an x,y,label CSV. When empty, Samples points are
	// generated instead.
	DatasetPath string  `yaml:"dataset_path"`
	Samples     int     `yaml:"samples"`
	Noise       float64 `yaml:"noise"`
}

// DefaultConfig mirrors the reference training run.
func DefaultConfig() Config {
	return Config{
		Epochs:            100,
		Hidden:            []int{16, 16},
		Alpha:             1e-4,
		LearningRate:      1.0,
		LearningRateDecay: 0.9,
		Seed:              1337,
		Samples:           100,
		Noise:             0.1,
	}
}

// LoadConfig reads a YAML file over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("train: read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("train: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the hyperparameters for internal consistency.
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return invalidf("epochs", "must be > 0 (got %d)", c.Epochs)
	}
	if len(c.Hidden) == 0 {
		return invalidf("hidden", "at least one hidden layer is required")
	}
	for i, h := range c.Hidden {
		if h <= 0 {
			return invalidf("hidden", "layer %d width must be > 0 (got %d)", i, h)
		}
	}
	if c.Alpha < 0 {
		return invalidf("alpha", "must be >= 0 (got %v)", c.Alpha)
	}
	if c.LearningRate <= 0 {
		return invalidf("learning_rate", "must be > 0 (got %v)", c.LearningRate)
	}
	if c.LearningRateDecay < 0 || c.LearningRateDecay >= c.LearningRate {
		return invalidf("learning_rate_decay", "must be in [0, learning_rate) (got %v)", c.LearningRateDecay)
	}
	if c.DatasetPath == "" {
		if c.Samples < 2 {
			return invalidf("samples", "must be >= 2 when generating data (got %d)", c.Samples)
		}
		if c.Noise < 0 {
			return invalidf("noise", "must be >= 0 (got %v)", c.Noise)
		}
	}
	return nil
}

// learningRateAt returns the decayed learning rate for epoch k.
func (c Config) learningRateAt(k int) float64 {
	return c.LearningRate - c.LearningRateDecay*float64(k)/float64(c.Epochs)
}
