// Package config loads resampling settings from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YuminosukeSato/imbalance/pkg/errors"
	"github.com/YuminosukeSato/imbalance/pkg/log"
	"github.com/YuminosukeSato/imbalance/sklearn/resample"
)

// Config is the file form of a resampling run. Pointer fields distinguish
// "not set" from the zero value so that defaults and command-line flags can
// be layered.
type Config struct {
	Method      string      `yaml:"method,omitempty"`
	Ratio       RatioConfig `yaml:"ratio,omitempty"`
	Shuffle     *bool       `yaml:"shuffle,omitempty"`
	Validate    *bool       `yaml:"validate,omitempty"`
	RandomSeed  *int64      `yaml:"random_seed,omitempty"`
	Strict      bool        `yaml:"strict,omitempty"`
	LabelColumn string      `yaml:"label_column,omitempty"`
	Properties  []string    `yaml:"properties,omitempty"`
	LogLevel    string      `yaml:"log_level,omitempty"`
	LogFormat   string      `yaml:"log_format,omitempty"`
}

// RatioConfig is either one ratio for every class or a label: ratio mapping.
//
//	ratio: 0.5
//
//	ratio:
//	  fraud: 1.0
//	  chargeback: 0.5
type RatioConfig struct {
	Scalar   *float64
	PerClass map[string]float64
}

// IsZero reports whether no ratio was configured.
func (r RatioConfig) IsZero() bool {
	return r.Scalar == nil && r.PerClass == nil
}

// UnmarshalYAML accepts a number or a mapping of label to number.
func (r *RatioConfig) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := value.Decode(&f); err != nil {
			return fmt.Errorf("ratio must be a number: %w", err)
		}
		r.Scalar, r.PerClass = &f, nil
		return nil
	case yaml.MappingNode:
		var m map[string]float64
		if err := value.Decode(&m); err != nil {
			return fmt.Errorf("invalid per-class ratio: %w", err)
		}
		r.Scalar, r.PerClass = nil, m
		return nil
	}
	return fmt.Errorf("ratio must be a number or a mapping, got %v", value.Kind)
}

// MarshalYAML writes the scalar or the mapping.
func (r RatioConfig) MarshalYAML() (interface{}, error) {
	if r.PerClass != nil {
		return r.PerClass, nil
	}
	if r.Scalar != nil {
		return *r.Scalar, nil
	}
	return nil, nil
}

// Spec converts the ratio to a RatioSpec. An unset ratio is 1.0.
func (r RatioConfig) Spec() resample.RatioSpec[string] {
	switch {
	case r.PerClass != nil:
		return resample.PerClass(r.PerClass)
	case r.Scalar != nil:
		return resample.Scalar[string](*r.Scalar)
	default:
		return resample.Scalar[string](1.0)
	}
}

// Defaults returns the settings used when no file or flag overrides them.
func Defaults() *Config {
	shuffle, validate := true, true
	one := 1.0
	return &Config{
		Method:    "RandomOverSampler",
		Ratio:     RatioConfig{Scalar: &one},
		Shuffle:   &shuffle,
		Validate:  &validate,
		LogLevel:  "info",
		LogFormat: "json",
	}
}

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML and fills unset fields from Defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WithStack(err)
	}
	cfg.fillDefaults()
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) fillDefaults() {
	d := Defaults()
	if c.Method == "" {
		c.Method = d.Method
	}
	if c.Ratio.IsZero() {
		c.Ratio = d.Ratio
	}
	if c.Shuffle == nil {
		c.Shuffle = d.Shuffle
	}
	if c.Validate == nil {
		c.Validate = d.Validate
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
}

// Check validates every field without touching any data.
func (c *Config) Check() error {
	if err := resample.Lookup(c.Method); err != nil {
		return errors.NewInvalidConfigurationError("method", err.Error(), c.Method)
	}
	if err := c.Ratio.Spec().Validate(); err != nil {
		return err
	}
	if _, err := log.ToLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		return errors.NewInvalidConfigurationError("log_format", "must be json or console", c.LogFormat)
	}
	return nil
}

// Options converts the config into resampler options.
func (c *Config) Options() []resample.Option[string] {
	opts := []resample.Option[string]{
		resample.WithRatioSpec(c.Ratio.Spec()),
		resample.WithStrictRatios[string](c.Strict),
	}
	if c.Shuffle != nil {
		opts = append(opts, resample.WithShuffle[string](*c.Shuffle))
	}
	if c.Validate != nil {
		opts = append(opts, resample.WithValidate[string](*c.Validate))
	}
	if c.RandomSeed != nil {
		opts = append(opts, resample.WithRandomState[string](*c.RandomSeed))
	}
	return opts
}

// Dump encodes c as YAML.
func (c *Config) Dump() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return out, nil
}
