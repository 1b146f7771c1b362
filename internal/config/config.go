package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/venturesim/internal/sim"
)

const (
	DefaultAmbition       = 0.5
	DefaultSkill          = 0.5
	DefaultSelfRegulation = 0.5
	DefaultDynamism       = 0.2
	DefaultHorizon        = 500
	DefaultRuns           = 100
)

// Config is the file-level simulation setup: founder traits, model
// coefficient overrides, horizon, campaign size, and an optional fixed
// seed (0 means draw a fresh one).
type Config struct {
	Ambition       float64            `yaml:"ambition"`
	Skill          float64            `yaml:"skill"`
	SelfRegulation float64            `yaml:"self_regulation"`
	Dynamism       float64            `yaml:"dynamism"`
	Horizon        int                `yaml:"horizon"`
	Runs           int                `yaml:"runs"`
	Seed           int64              `yaml:"seed"`
	Coefficients   map[string]float64 `yaml:"coefficients"`
}

func DefaultConfig() *Config {
	return &Config{
		Ambition:       DefaultAmbition,
		Skill:          DefaultSkill,
		SelfRegulation: DefaultSelfRegulation,
		Dynamism:       DefaultDynamism,
		Horizon:        DefaultHorizon,
		Runs:           DefaultRuns,
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

// Parameters converts the config into engine parameters. Coefficient keys
// "var1".."var10" override the 1.0 defaults; other keys are ignored.
func (c *Config) Parameters() sim.Parameters {
	return sim.Parameters{
		Ambition:       c.Ambition,
		Skill:          c.Skill,
		SelfRegulation: c.SelfRegulation,
		Dynamism:       c.Dynamism,
		Coeffs:         sim.CoefficientsFromMap(c.Coefficients),
	}
}
