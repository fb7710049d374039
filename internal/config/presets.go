package config

import (
	"sort"
	"time"
)

var Presets = map[string]*Config{
	"demo": {
		Algorithm: "selection",
		Input:     InputConfig{Shape: "random", Size: 50, Min: 1, Max: 100},
		Delays:    DelayConfig{Compare: 50 * time.Millisecond, Swap: 100 * time.Millisecond},
	},
	"small": {
		Algorithm: "selection",
		Input:     InputConfig{Shape: "random", Size: 10, Min: 1, Max: 100},
		Delays:    DelayConfig{Compare: 150 * time.Millisecond, Swap: 300 * time.Millisecond},
	},
	"worst": {
		Algorithm: "bubble",
		Input:     InputConfig{Shape: "reversed", Size: 24, Min: 1, Max: 100},
		Delays:    DelayConfig{Compare: 30 * time.Millisecond, Swap: 60 * time.Millisecond},
	},
	"presorted": {
		Algorithm: "bubble",
		Input:     InputConfig{Shape: "sorted", Size: 24, Min: 1, Max: 100},
		Delays:    DelayConfig{Compare: 50 * time.Millisecond, Swap: 100 * time.Millisecond},
	},
	"duplicates": {
		Algorithm: "selection",
		Input:     InputConfig{Shape: "few_unique", Size: 30, Min: 1, Max: 100},
		Delays:    DelayConfig{Compare: 50 * time.Millisecond, Swap: 100 * time.Millisecond},
	},
}

// GetPreset returns a copy of the named preset, filled in with defaults for
// anything the preset leaves unset.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Algorithm = p.Algorithm
	cfg.Input = p.Input
	cfg.Delays = p.Delays
	if p.Theme != "" {
		cfg.Theme = p.Theme
	}
	if p.FrameRate != 0 {
		cfg.FrameRate = p.FrameRate
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
