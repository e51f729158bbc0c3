package config

import "sort"

// Presets are common code-unit conventions for simulation setups.
var Presets = map[string]*Config{
	"galactic": {
		System: "cgs", Mu: DefaultMu,
		Scales: ScalesConfig{Length: "pc", Mass: "m_Sun", Time: "Myr"},
	},
	"cluster": {
		System: "cgs", Mu: DefaultMu,
		Scales: ScalesConfig{Mass: "m_Sun", Time: "kyr", Velocity: "kms"},
	},
	"si-galactic": {
		System: "si", Mu: DefaultMu,
		Scales: ScalesConfig{Length: "pc", Mass: "Solar", Time: "Myr"},
	},
	"solar": {
		System: "cgs", Mu: DefaultMu,
		Scales: ScalesConfig{Length: "1.498e13", Mass: "1.989e33", Time: "yr"},
	},
}

// GetPreset returns the named preset, or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
