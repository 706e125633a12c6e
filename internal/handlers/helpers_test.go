package handlers

import (
	"os"
	"path/filepath"
	"testing"
)

// writeGuardsConfig drops a .claude/guards.yaml into dir.
func writeGuardsConfig(t *testing.T, dir, content string) {
	t.Helper()
	claudeDir := filepath.Join(dir, ".claude")
	if err := os.MkdirAll(claudeDir, 0755); err != nil {
		t.Fatalf("failed to create .claude dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(claudeDir, "guards.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write guards.yaml: %v", err)
	}
}
