package handlers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFindTSConfigDir(t *testing.T) {
	root := t.TempDir()
	project := filepath.Join(root, "web")
	nested := filepath.Join(project, "src", "components")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create dirs: %v", err)
	}
	if err := os.WriteFile(filepath.Join(project, "tsconfig.json"), []byte("{}"), 0644); err != nil {
		t.Fatalf("failed to write tsconfig: %v", err)
	}

	t.Run("walks up to nearest tsconfig", func(t *testing.T) {
		got := findTSConfigDir(filepath.Join(nested, "Button.tsx"))
		if got != project {
			t.Errorf("expected %s, got %s", project, got)
		}
	})

	t.Run("no tsconfig anywhere", func(t *testing.T) {
		other := t.TempDir()
		if got := findTSConfigDir(filepath.Join(other, "app.ts")); got != "" {
			t.Errorf("expected empty string, got %s", got)
		}
	})
}

func TestTypeScriptCheckSkipsNonTypeScript(t *testing.T) {
	for _, path := range []string{"main.go", "script.py", "style.css", ""} {
		input := fileEditInput(t, path, "whatever")
		out, err := TypeScriptCheck(context.Background(), input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", path, err)
		}
		if out.Output != "" {
			t.Errorf("%s: expected no output for non-TypeScript file", path)
		}
	}
}

func TestTypeScriptCheckNoTSConfig(t *testing.T) {
	// A .ts file with no tsconfig.json anywhere above it is skipped.
	dir := t.TempDir()
	input := fileEditInput(t, filepath.Join(dir, "app.ts"), "let x = 1")

	out, err := TypeScriptCheck(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Output != "" {
		t.Errorf("expected silence without a tsconfig, got %q", out.Output)
	}
}
