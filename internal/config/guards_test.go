package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGuardsYAML(t *testing.T, dir, content string) {
	t.Helper()
	claudeDir := filepath.Join(dir, ".claude")
	if err := os.MkdirAll(claudeDir, 0755); err != nil {
		t.Fatalf("failed to create .claude dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(claudeDir, "guards.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write guards.yaml: %v", err)
	}
}

func allEnabled(cfg *GuardsConfig) bool {
	return cfg.Security && cfg.Protect && cfg.Quality && cfg.Typecheck && cfg.DocSuggest && cfg.Metrics
}

func TestLoadGuardsConfigDefaults(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if !allEnabled(LoadGuardsConfig(t.TempDir())) {
			t.Error("expected every guard enabled by default")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeGuardsYAML(t, dir, ":\tnot yaml {{")
		if !allEnabled(LoadGuardsConfig(dir)) {
			t.Error("expected defaults for unparseable config")
		}
	})

	t.Run("empty file", func(t *testing.T) {
		dir := t.TempDir()
		writeGuardsYAML(t, dir, "")
		if !allEnabled(LoadGuardsConfig(dir)) {
			t.Error("expected defaults for empty config")
		}
	})
}

func TestLoadGuardsConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	writeGuardsYAML(t, dir, "quality: false\ndoc_suggest: false\n")

	cfg := LoadGuardsConfig(dir)
	if cfg.Quality {
		t.Error("expected quality disabled")
	}
	if cfg.DocSuggest {
		t.Error("expected doc_suggest disabled")
	}
	// Keys absent from the file keep their defaults.
	if !cfg.Security || !cfg.Protect || !cfg.Typecheck || !cfg.Metrics {
		t.Error("expected unlisted guards to stay enabled")
	}
}

func TestLoadGuardsConfigExplicitEnable(t *testing.T) {
	dir := t.TempDir()
	writeGuardsYAML(t, dir, "security: true\nmetrics: false\n")

	cfg := LoadGuardsConfig(dir)
	if !cfg.Security {
		t.Error("expected security enabled")
	}
	if cfg.Metrics {
		t.Error("expected metrics disabled")
	}
}
