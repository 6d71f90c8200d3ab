package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Size != 50 {
		t.Errorf("expected size 50, got %d", cfg.Size)
	}
	if cfg.Speed != 25*time.Millisecond {
		t.Errorf("expected speed 25ms, got %v", cfg.Speed)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"size too small", func(c *Config) { c.Size = 9 }},
		{"size too large", func(c *Config) { c.Size = 301 }},
		{"speed too fast", func(c *Config) { c.Speed = time.Millisecond }},
		{"speed too slow", func(c *Config) { c.Speed = time.Second }},
		{"empty shape", func(c *Config) { c.Shape = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")

	cfg := DefaultConfig()
	cfg.Size = 120
	cfg.Speed = 40 * time.Millisecond
	cfg.Seed = 42
	cfg.Algorithm = "heap"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("size: 80\nspeed: 100ms\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Size != 80 || cfg.Speed != 100*time.Millisecond {
		t.Errorf("unexpected values %+v", cfg)
	}
	if cfg.Shape != DefaultShape || cfg.Algorithm != DefaultAlgorithm {
		t.Errorf("defaults not kept: %+v", cfg)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("size: 5000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid, got %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("large")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Size != 300 {
		t.Errorf("expected size 300, got %d", cfg.Size)
	}

	cfg.Size = 11
	if Presets["large"].Size != 300 {
		t.Error("GetPreset returned a shared pointer")
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestClampSpeed(t *testing.T) {
	if ClampSpeed(time.Millisecond) != MinSpeed {
		t.Error("expected clamp to MinSpeed")
	}
	if ClampSpeed(time.Hour) != MaxSpeed {
		t.Error("expected clamp to MaxSpeed")
	}
	if ClampSpeed(50*time.Millisecond) != 50*time.Millisecond {
		t.Error("in-range speed changed")
	}
}
