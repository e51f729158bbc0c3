package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/astroviz/internal/units"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.System != "cgs" {
		t.Errorf("expected system cgs, got %s", cfg.System)
	}
	if cfg.Mu != DefaultMu {
		t.Errorf("expected mu %g, got %g", DefaultMu, cfg.Mu)
	}
	if cfg.Display.Colormap != DefaultColormap {
		t.Errorf("expected colormap %s, got %s", DefaultColormap, cfg.Display.Colormap)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("galactic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Scales.Length != "pc" || cfg.Scales.Time != "Myr" {
		t.Errorf("galactic preset scales = %+v", cfg.Scales)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsDerive(t *testing.T) {
	// Every shipped preset must name a derivable base-scale combination.
	for name, cfg := range Presets {
		s, err := units.DeriveSystem(cfg.System, units.Params{
			Length:   units.ParseQuantity(cfg.Scales.Length),
			Mass:     units.ParseQuantity(cfg.Scales.Mass),
			Time:     units.ParseQuantity(cfg.Scales.Time),
			Density:  units.ParseQuantity(cfg.Scales.Density),
			Velocity: units.ParseQuantity(cfg.Scales.Velocity),
			Mu:       cfg.Mu,
		})
		if err != nil {
			t.Errorf("preset %q does not derive: %v", name, err)
			continue
		}
		if s.Length <= 0 || s.Mass <= 0 || s.Time <= 0 || s.Density <= 0 || s.Velocity <= 0 {
			t.Errorf("preset %q yields non-positive scales: %+v", name, s)
		}
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("presets not sorted: %v", names)
			break
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "system: si\nscales:\n  length: pc\n  mass: m_Sun\n  time: Myr\ndisplay:\n  colormap: gray\n  vmin: 0.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.System != "si" {
		t.Errorf("system = %s, want si", cfg.System)
	}
	if cfg.Mu != DefaultMu {
		t.Errorf("mu should keep default, got %g", cfg.Mu)
	}
	if cfg.Display.Colormap != "gray" {
		t.Errorf("colormap = %s, want gray", cfg.Display.Colormap)
	}
	if cfg.Display.VMin == nil || *cfg.Display.VMin != 0 {
		t.Error("vmin should be set to 0")
	}
	if cfg.Display.VMax != nil {
		t.Error("vmax should stay unset")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")

	cfg := DefaultConfig()
	cfg.System = "mks"
	cfg.Scales.Velocity = "kms"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.System != "mks" || got.Scales.Velocity != "kms" {
		t.Errorf("round trip = %+v", got)
	}
}
