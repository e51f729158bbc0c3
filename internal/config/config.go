package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSystem   = "cgs"
	DefaultMu       = 2.4
	DefaultColormap = "viridis"
)

type Config struct {
	System  string        `yaml:"system"`
	Mu      float64       `yaml:"mu"`
	Scales  ScalesConfig  `yaml:"scales"`
	Display DisplayConfig `yaml:"display"`
}

// ScalesConfig holds base-scale inputs as text: numeric literals or symbols
// such as "pc" and "Myr". Empty means unset.
type ScalesConfig struct {
	Length   string `yaml:"length"`
	Mass     string `yaml:"mass"`
	Time     string `yaml:"time"`
	Density  string `yaml:"density"`
	Velocity string `yaml:"velocity"`
}

type DisplayConfig struct {
	Colormap string   `yaml:"colormap"`
	VMin     *float64 `yaml:"vmin"`
	VMax     *float64 `yaml:"vmax"`
	Output   string   `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		System: DefaultSystem,
		Mu:     DefaultMu,
		Display: DisplayConfig{
			Colormap: DefaultColormap,
			Output:   "out.png",
		},
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
