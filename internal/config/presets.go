package config

// Presets are named founder scenarios covering the interesting corners of
// the trait space.
var Presets = map[string]*Config{
	"baseline": {
		Ambition: 0.5, Skill: 0.5, SelfRegulation: 0.5, Dynamism: 0.2,
		Horizon: 500, Runs: 100,
	},
	"driven": {
		Ambition: 0.9, Skill: 0.6, SelfRegulation: 0.3, Dynamism: 0.2,
		Horizon: 500, Runs: 100,
	},
	"craftsman": {
		Ambition: 0.4, Skill: 0.9, SelfRegulation: 0.7, Dynamism: 0.2,
		Horizon: 500, Runs: 100,
	},
	"turbulent": {
		Ambition: 0.6, Skill: 0.5, SelfRegulation: 0.5, Dynamism: 0.8,
		Horizon: 500, Runs: 100,
	},
	"composed": {
		Ambition: 0.5, Skill: 0.5, SelfRegulation: 0.9, Dynamism: 0.2,
		Horizon: 500, Runs: 100,
	},
	"dormant": {
		Ambition: 0.0, Skill: 0.5, SelfRegulation: 0.5, Dynamism: 0.2,
		Horizon: 500, Runs: 100,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
