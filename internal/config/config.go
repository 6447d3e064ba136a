// Package config loads the tunable parameters of the activation calculator
// and the impact engine. Values come from NEUROTWIN_* environment variables
// with built-in defaults, optionally overlaid by a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/neurotwin/core/internal/models"
)

const envPrefix = "NEUROTWIN_"

type Config struct {
	// ConfigFile names an optional YAML file. Keys set in the file override
	// defaults and environment variables.
	ConfigFile string `yaml:"-" env:"CONFIG_FILE"`

	Log        LogConfig        `yaml:"log" envPrefix:"LOG_"`
	Activation ActivationConfig `yaml:"activation" envPrefix:"ACTIVATION_"`
	Impact     ImpactConfig     `yaml:"impact" envPrefix:"IMPACT_"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LEVEL" envDefault:"info"`
	Format string `yaml:"format" env:"FORMAT" envDefault:"json"`
}

type ActivationConfig struct {
	// SeverityWeights maps a diagnosis severity to the factor used in place
	// of a symptom's severity/10.
	SeverityWeights       map[string]float64 `yaml:"severity_weights" env:"SEVERITY_WEIGHTS" envDefault:"mild:0.3,moderate:0.6,severe:0.9,in remission:0.15,unspecified:0.5"`
	UnknownSeverityWeight float64            `yaml:"unknown_severity_weight" env:"UNKNOWN_SEVERITY_WEIGHT" envDefault:"0.5"`
}

type ImpactConfig struct {
	ActivityMagnitude      float64 `yaml:"activity_magnitude" env:"ACTIVITY_MAGNITUDE" envDefault:"0.7"`
	ActivityConfidence     float64 `yaml:"activity_confidence" env:"ACTIVITY_CONFIDENCE" envDefault:"0.8"`
	ConnectivityMagnitude  float64 `yaml:"connectivity_magnitude" env:"CONNECTIVITY_MAGNITUDE" envDefault:"0.6"`
	ConnectivityConfidence float64 `yaml:"connectivity_confidence" env:"CONNECTIVITY_CONFIDENCE" envDefault:"0.7"`
	MechanismMagnitude     float64 `yaml:"mechanism_magnitude" env:"MECHANISM_MAGNITUDE" envDefault:"0.8"`

	HighThreshold     float64 `yaml:"high_threshold" env:"HIGH_THRESHOLD" envDefault:"0.8"`
	ModerateThreshold float64 `yaml:"moderate_threshold" env:"MODERATE_THRESHOLD" envDefault:"0.5"`
	LowThreshold      float64 `yaml:"low_threshold" env:"LOW_THRESHOLD" envDefault:"0.2"`

	// ProjectedTimeline and Reversibility are reported verbatim; nothing
	// derives them from the treatments.
	ProjectedTimeline string `yaml:"projected_timeline" env:"PROJECTED_TIMELINE" envDefault:"4-6 weeks"`
	Reversibility     string `yaml:"reversibility" env:"REVERSIBILITY" envDefault:"reversible"`
}

// Load reads the environment, applies the optional YAML file and validates
// the result.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.ConfigFile != "" {
		if err := cfg.applyFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads NEUROTWIN_* environment variables into target.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	return c.ApplyYAML(data)
}

// ApplyYAML overlays the keys present in data onto c.
func (c *Config) ApplyYAML(data []byte) error {
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q: expected json or console", c.Log.Format)
	}

	for severity, w := range c.Activation.SeverityWeights {
		if !unit(w) {
			return fmt.Errorf("invalid severity weight for %q: %v is not between 0 and 1", severity, w)
		}
	}
	if !unit(c.Activation.UnknownSeverityWeight) {
		return fmt.Errorf("invalid unknown severity weight: %v is not between 0 and 1", c.Activation.UnknownSeverityWeight)
	}

	im := c.Impact
	weights := map[string]float64{
		"activity_magnitude":      im.ActivityMagnitude,
		"activity_confidence":     im.ActivityConfidence,
		"connectivity_magnitude":  im.ConnectivityMagnitude,
		"connectivity_confidence": im.ConnectivityConfidence,
		"mechanism_magnitude":     im.MechanismMagnitude,
	}
	for name, w := range weights {
		if !unit(w) {
			return fmt.Errorf("invalid impact %s: %v is not between 0 and 1", name, w)
		}
	}

	if !(im.HighThreshold > im.ModerateThreshold && im.ModerateThreshold > im.LowThreshold && im.LowThreshold >= 0) {
		return fmt.Errorf("invalid severity thresholds: expected high > moderate > low >= 0, got %v/%v/%v",
			im.HighThreshold, im.ModerateThreshold, im.LowThreshold)
	}

	if !models.Reversibility(im.Reversibility).Valid() {
		return fmt.Errorf("invalid reversibility %q", im.Reversibility)
	}
	return nil
}

// DiagnosisWeights converts the configured table to the calculator's key type.
func (c ActivationConfig) DiagnosisWeights() map[models.DiagnosisSeverity]float64 {
	out := make(map[models.DiagnosisSeverity]float64, len(c.SeverityWeights))
	for k, v := range c.SeverityWeights {
		out[models.DiagnosisSeverity(k)] = v
	}
	return out
}

func unit(v float64) bool {
	return v >= 0 && v <= 1
}
