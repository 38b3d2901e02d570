// Package config holds the runtime settings of the batch runner: worker
// count, input limits, logging and metrics. Values come from Default, then
// an optional YAML file, then TULIP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "TULIP"

// Exported defaults.
const (
	DefaultWorkers        = 4
	DefaultMaxInputLength = 1_000_000
	DefaultNamespace      = "tulip"
)

// Config is the full runtime configuration.
type Config struct {
	// Workers bounds the number of indicator jobs computed concurrently.
	Workers int `yaml:"workers" envconfig:"WORKERS" validate:"min=1,max=1024"`
	// MaxInputLength rejects series longer than this many samples.
	MaxInputLength int           `yaml:"max_input_length" envconfig:"MAX_INPUT_LENGTH" validate:"min=1"`
	Logging        LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Metrics        MetricsConfig `yaml:"metrics" envconfig:"METRICS"`
	Signals        SignalConfig  `yaml:"signals" envconfig:"SIGNALS"`
}

// LoggingConfig selects the zap logger built by internal/logging.
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Encoding    string `yaml:"encoding" envconfig:"ENCODING" validate:"oneof=json console"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// MetricsConfig controls the Prometheus collectors of the suite.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled" envconfig:"ENABLED"`
	Namespace string `yaml:"namespace" envconfig:"NAMESPACE" validate:"required_if=Enabled true"`
}

// SignalConfig holds the oscillator bands used by suite.Outlook.
type SignalConfig struct {
	RSIOverbought float64 `yaml:"rsi_overbought" envconfig:"RSI_OVERBOUGHT" validate:"lte=100,gtfield=RSIOversold"`
	RSIOversold   float64 `yaml:"rsi_oversold" envconfig:"RSI_OVERSOLD" validate:"gte=0"`
	MFIOverbought float64 `yaml:"mfi_overbought" envconfig:"MFI_OVERBOUGHT" validate:"lte=100,gtfield=MFIOversold"`
	MFIOversold   float64 `yaml:"mfi_oversold" envconfig:"MFI_OVERSOLD" validate:"gte=0"`
	// Period is shared by the RSI, MFI and Aroon votes.
	Period int `yaml:"period" envconfig:"PERIOD" validate:"min=2,max=1000"`
	// HMAPeriod is the Hull average the close is compared against.
	HMAPeriod int `yaml:"hma_period" envconfig:"HMA_PERIOD" validate:"min=2,max=1000"`
}

// Default returns a sensible set of defaults.
func Default() Config {
	return Config{
		Workers:        DefaultWorkers,
		MaxInputLength: DefaultMaxInputLength,
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Signals: SignalConfig{
			RSIOverbought: 70,
			RSIOversold:   30,
			MFIOverbought: 80,
			MFIOversold:   20,
			Period:        14,
			HMAPeriod:     9,
		},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration values are sensible.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment, and validates the result.
// Environment variables take precedence over the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FieldErrors returns the failing field names of a validation error, or nil
// when err did not come from Validate.
func FieldErrors(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, len(verrs))
	for i, fe := range verrs {
		fields[i] = fe.Namespace()
	}
	return fields
}
