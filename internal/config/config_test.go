package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level should be info, got %q", cfg.Log.Level)
	}
	if cfg.Runner.TimeoutSeconds != 10 {
		t.Errorf("default runner timeout should be 10, got %d", cfg.Runner.TimeoutSeconds)
	}
	if cfg.Roadmap.Weights.PrereqsMet != 20 {
		t.Errorf("default prereqs_met weight should be 20, got %v", cfg.Roadmap.Weights.PrereqsMet)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("log:\n  level: debug\nroadmap:\n  weak_threshold: 0.6\n  weights:\n    weak_skill: 15\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level not applied, got %q", cfg.Log.Level)
	}
	if cfg.Roadmap.WeakThreshold != 0.6 {
		t.Errorf("weak_threshold not applied, got %v", cfg.Roadmap.WeakThreshold)
	}
	if cfg.Roadmap.Weights.WeakSkill != 15 {
		t.Errorf("weights.weak_skill not applied, got %v", cfg.Roadmap.Weights.WeakSkill)
	}
	// Untouched keys keep their defaults.
	if cfg.Roadmap.Weights.Project != 3 {
		t.Errorf("weights.project should keep its default, got %v", cfg.Roadmap.Weights.Project)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOKU_CFG_LOG__LEVEL", "error")
	t.Setenv("TOKU_CFG_ROADMAP__MAX_WEEKS", "6")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("env should win over file, got %q", cfg.Log.Level)
	}
	if cfg.Roadmap.MaxWeeks != 6 {
		t.Errorf("nested env override not applied, got %d", cfg.Roadmap.MaxWeeks)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Log.Level = "debug"
	cfg.Roadmap.HoursPerWeek = 12
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Log.Level != "debug" || loaded.Roadmap.HoursPerWeek != 12 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"zero timeout", func(c *Config) { c.Runner.TimeoutSeconds = 0 }},
		{"threshold over one", func(c *Config) { c.Roadmap.WeakThreshold = 1.5 }},
		{"negative weight", func(c *Config) { c.Roadmap.Weights.Exercise = -1 }},
		{"zero horizon", func(c *Config) { c.Roadmap.MaxWeeks = 0 }},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "bard" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
