package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/spf13/cobra"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	preset, configFile = "", ""
	cmd := &cobra.Command{Use: "test"}
	f := cmd.Flags()
	f.IntVar(&size, "size", config.DefaultSize, "")
	f.DurationVar(&speed, "speed", config.DefaultSpeed, "")
	f.Int64Var(&seed, "seed", 0, "")
	f.StringVar(&shape, "shape", config.DefaultShape, "")
	f.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return cmd
}

func TestLoadConfigDefaults(t *testing.T) {
	cmd := newTestCmd(t, "--seed", "9")
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != config.DefaultSize || cfg.Speed != config.DefaultSpeed || cfg.Shape != config.DefaultShape {
		t.Errorf("got %+v, want defaults", cfg)
	}
	if cfg.Seed != 9 {
		t.Errorf("Seed = %d, want 9", cfg.Seed)
	}
}

func TestLoadConfigRandomSeed(t *testing.T) {
	cfg, err := loadConfig(newTestCmd(t))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed == 0 {
		t.Error("expected a clock seed")
	}
}

func TestLoadConfigPresetThenFlags(t *testing.T) {
	cmd := newTestCmd(t, "--size", "20")
	preset = "reversed"
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 20 {
		t.Errorf("Size = %d, want flag value 20", cfg.Size)
	}
	if cfg.Shape != "reversed" || cfg.Algorithm != "comb" {
		t.Errorf("preset not applied: %+v", cfg)
	}
}

func TestLoadConfigUnknownPreset(t *testing.T) {
	cmd := newTestCmd(t)
	preset = "nope"
	if _, err := loadConfig(cmd); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	want := config.DefaultConfig()
	want.Size = 120
	want.Speed = 40 * time.Millisecond
	want.Shape = "few"
	want.Seed = 5
	if err := config.Save(path, want); err != nil {
		t.Fatal(err)
	}

	cmd := newTestCmd(t, "--speed", "15ms")
	configFile = path
	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Size != 120 || cfg.Shape != "few" || cfg.Seed != 5 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Speed != 15*time.Millisecond {
		t.Errorf("Speed = %v, want flag value 15ms", cfg.Speed)
	}
}

func TestLoadConfigOutOfRange(t *testing.T) {
	if _, err := loadConfig(newTestCmd(t, "--size", "5000")); err == nil {
		t.Error("expected validation error")
	}
}
