package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

// Config is the full application configuration.
type Config struct {
	// DBPath overrides the default database location when set.
	DBPath string `koanf:"db_path" yaml:"db_path"`

	Log     LogConfig     `koanf:"log" yaml:"log"`
	Runner  RunnerConfig  `koanf:"runner" yaml:"runner"`
	Roadmap RoadmapConfig `koanf:"roadmap" yaml:"roadmap"`
	LLM     LLMConfig     `koanf:"llm" yaml:"llm"`
}

// LogConfig controls the debug log.
type LogConfig struct {
	Level string `koanf:"level" yaml:"level"` // debug, info, warn, error
	File  string `koanf:"file" yaml:"file"`   // empty means the default state dir
}

// RunnerConfig controls the code-exercise runner.
type RunnerConfig struct {
	TimeoutSeconds int `koanf:"timeout_seconds" yaml:"timeout_seconds"`
}

// RoadmapConfig controls selection and the default plan horizon.
type RoadmapConfig struct {
	WeakThreshold float64       `koanf:"weak_threshold" yaml:"weak_threshold"`
	Weights       WeightsConfig `koanf:"weights" yaml:"weights"`
	DefaultRole   string        `koanf:"default_role" yaml:"default_role"`
	MaxWeeks      int           `koanf:"max_weeks" yaml:"max_weeks"`
	HoursPerWeek  int           `koanf:"hours_per_week" yaml:"hours_per_week"`
}

// WeightsConfig mirrors the selection weights. They are tuning knobs
// with no derivation behind them, hence configurable.
type WeightsConfig struct {
	WeakSkill  float64 `koanf:"weak_skill" yaml:"weak_skill"`
	RoleFocus  float64 `koanf:"role_focus" yaml:"role_focus"`
	PrereqsMet float64 `koanf:"prereqs_met" yaml:"prereqs_met"`
	Project    float64 `koanf:"project" yaml:"project"`
	Exercise   float64 `koanf:"exercise" yaml:"exercise"`
}

// ToWeights converts to the selector's weight type.
func (w WeightsConfig) ToWeights() roadmap.Weights {
	return roadmap.Weights{
		WeakSkill:  w.WeakSkill,
		RoleFocus:  w.RoleFocus,
		PrereqsMet: w.PrereqsMet,
		Project:    w.Project,
		Exercise:   w.Exercise,
	}
}

// LLMConfig selects the optional text-grading model. Keys and models
// come from TOKU_* environment variables, never the config file.
type LLMConfig struct {
	Provider string `koanf:"provider" yaml:"provider"` // anthropic, openai, mock or empty
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	dw := roadmap.DefaultWeights()
	return &Config{
		Log: LogConfig{Level: "info"},
		Runner: RunnerConfig{
			TimeoutSeconds: 10,
		},
		Roadmap: RoadmapConfig{
			WeakThreshold: roadmap.DefaultWeakThreshold,
			Weights: WeightsConfig{
				WeakSkill:  dw.WeakSkill,
				RoleFocus:  dw.RoleFocus,
				PrereqsMet: dw.PrereqsMet,
				Project:    dw.Project,
				Exercise:   dw.Exercise,
			},
			DefaultRole:  string(taxonomy.DefaultRole),
			MaxWeeks:     12,
			HoursPerWeek: 8,
		},
	}
}

// DefaultPath resolves the config file location:
// $XDG_CONFIG_HOME/toku/config.yaml, falling back to ~/.config.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toku", "config.yaml"), nil
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides. Nested keys use a double underscore:
// TOKU_CFG_ROADMAP__WEAK_THRESHOLD -> roadmap.weak_threshold.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("TOKU_CFG_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "TOKU_CFG_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", c.Log.Level)
	}
	if c.Runner.TimeoutSeconds <= 0 {
		return fmt.Errorf("runner timeout_seconds must be positive")
	}
	if c.Roadmap.WeakThreshold <= 0 || c.Roadmap.WeakThreshold > 1 {
		return fmt.Errorf("roadmap weak_threshold must be in (0, 1], got %f", c.Roadmap.WeakThreshold)
	}
	if c.Roadmap.MaxWeeks <= 0 || c.Roadmap.HoursPerWeek <= 0 {
		return fmt.Errorf("roadmap horizon must be positive, got %d weeks x %d hours", c.Roadmap.MaxWeeks, c.Roadmap.HoursPerWeek)
	}
	w := c.Roadmap.Weights
	for name, v := range map[string]float64{
		"weak_skill":  w.WeakSkill,
		"role_focus":  w.RoleFocus,
		"prereqs_met": w.PrereqsMet,
		"project":     w.Project,
		"exercise":    w.Exercise,
	} {
		if v < 0 {
			return fmt.Errorf("roadmap weight %s must be non-negative, got %f", name, v)
		}
	}
	switch c.LLM.Provider {
	case "", "anthropic", "openai", "mock":
	default:
		return fmt.Errorf("invalid llm provider %q", c.LLM.Provider)
	}
	return nil
}
