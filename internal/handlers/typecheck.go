package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"guardhooks/internal/config"
	"guardhooks/internal/hooks"
)

const (
	tscTimeout   = 30 * time.Second
	tscOutputCap = 2000
)

// TypeScriptCheck runs `npx tsc --noEmit` after a .ts/.tsx edit, in the
// directory of the nearest tsconfig.json above the edited file. Purely
// informational: type errors are surfaced as a warning and nothing else
// happens. Missing npx, missing tsconfig, and timeouts are all silent.
func TypeScriptCheck(ctx context.Context, input hooks.HookInput) (hooks.HookOutput, error) {
	cfg := config.LoadGuardsConfig(input.CWD)
	if !cfg.Typecheck {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	fileInput, err := input.GetFileInput()
	if err != nil || fileInput.FilePath == "" {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	ext := strings.ToLower(filepath.Ext(fileInput.FilePath))
	if ext != ".ts" && ext != ".tsx" {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	projectDir := findTSConfigDir(fileInput.FilePath)
	if projectDir == "" {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	if _, err := exec.LookPath("npx"); err != nil {
		slog.Debug("npx not found in PATH", "error", err)
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, tscTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "npx", "tsc", "--noEmit", "--pretty")
	cmd.Dir = projectDir
	var stdout strings.Builder
	cmd.Stdout = &stdout
	err = cmd.Run()

	// Non-zero exit with no output means nothing to report.
	if err == nil || stdout.Len() == 0 {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	output := stdout.String()
	truncated := false
	if len(output) > tscOutputCap {
		output = output[:tscOutputCap]
		truncated = true
	}

	var b strings.Builder
	b.WriteString("TypeScript errors found — fix these before committing to maintain type safety:\n")
	fmt.Fprintf(&b, "  File edited: %s\n", filepath.Base(fileInput.FilePath))
	b.WriteString(output)
	if truncated {
		b.WriteString("\n  ... (truncated)")
	}
	b.WriteString("\nRun 'npx tsc --noEmit' locally to see full error output.")

	return hooks.HookOutput{Decision: "continue", Output: b.String()}, nil
}

// findTSConfigDir walks up from the edited file looking for the nearest
// tsconfig.json and returns its directory, or "".
func findTSConfigDir(filePath string) string {
	dir, err := filepath.Abs(filepath.Dir(filePath))
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "tsconfig.json")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
