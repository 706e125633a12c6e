package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GuardsConfig switches individual guards on or off per project. Rule
// sets, thresholds, and timeouts are compile-time constants; the only
// configurable surface is whether a guard runs at all.
type GuardsConfig struct {
	Security   bool
	Protect    bool
	Quality    bool
	Typecheck  bool
	DocSuggest bool
	Metrics    bool
}

// guardsFile uses pointers so an absent key means "default", not "off".
type guardsFile struct {
	Security   *bool `yaml:"security"`
	Protect    *bool `yaml:"protect"`
	Quality    *bool `yaml:"quality"`
	Typecheck  *bool `yaml:"typecheck"`
	DocSuggest *bool `yaml:"doc_suggest"`
	Metrics    *bool `yaml:"metrics"`
}

// DefaultGuardsConfig enables every guard.
func DefaultGuardsConfig() *GuardsConfig {
	return &GuardsConfig{
		Security:   true,
		Protect:    true,
		Quality:    true,
		Typecheck:  true,
		DocSuggest: true,
		Metrics:    true,
	}
}

// LoadGuardsConfig reads .claude/guards.yaml from the project directory.
// A missing or unparseable file yields the defaults.
func LoadGuardsConfig(projectDir string) *GuardsConfig {
	cfg := DefaultGuardsConfig()

	data, err := os.ReadFile(filepath.Join(projectDir, ".claude", "guards.yaml"))
	if err != nil {
		return cfg
	}

	var file guardsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg
	}

	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&cfg.Security, file.Security)
	apply(&cfg.Protect, file.Protect)
	apply(&cfg.Quality, file.Quality)
	apply(&cfg.Typecheck, file.Typecheck)
	apply(&cfg.DocSuggest, file.DocSuggest)
	apply(&cfg.Metrics, file.Metrics)
	return cfg
}
