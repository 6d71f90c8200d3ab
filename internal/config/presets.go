package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"small": {
		Size: 10, Speed: 200 * time.Millisecond, Shape: "random", Algorithm: "bubble",
	},
	"large": {
		Size: 300, Speed: 10 * time.Millisecond, Shape: "random", Algorithm: "quick",
	},
	"reversed": {
		Size: 80, Speed: 25 * time.Millisecond, Shape: "reversed", Algorithm: "comb",
	},
	"nearly": {
		Size: 120, Speed: 25 * time.Millisecond, Shape: "nearly", Algorithm: "gnome",
	},
	"duplicates": {
		Size: 100, Speed: 25 * time.Millisecond, Shape: "few", Algorithm: "heap",
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
