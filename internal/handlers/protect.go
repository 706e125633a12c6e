package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"guardhooks/internal/config"
	"guardhooks/internal/hooks"
	"guardhooks/internal/rules"
)

// ProtectFiles blocks edits to protected paths (lock files, env files,
// secrets directories, .git internals) and warns on sensitive but
// editable ones. Content is never inspected; the path alone decides.
func ProtectFiles(ctx context.Context, input hooks.HookInput) (hooks.HookOutput, error) {
	cfg := config.LoadGuardsConfig(input.CWD)
	if !cfg.Protect {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	fileInput, err := input.GetFileInput()
	if err != nil {
		slog.Debug("no file input found", "error", err)
		return hooks.HookOutput{Decision: "approve"}, nil
	}
	if fileInput.FilePath == "" {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	path := strings.TrimPrefix(fileInput.FilePath, "./")

	if rule, ok := rules.MatchPath(path, rules.ProtectedPaths); ok {
		slog.Warn("blocked edit to protected file", "file", path, "pattern", rule.Pattern)
		out := fmt.Sprintf("BLOCKED: %s\n   Matches protected pattern: %s\n   Reason: %s\n   Use --force if this is intentional",
			path, rule.Pattern, rule.Reason)
		return hooks.HookOutput{
			Decision: "block",
			Reason:   fmt.Sprintf("Cannot edit protected file %s: %s", path, rule.Reason),
			Output:   out,
		}, nil
	}

	if rule, ok := rules.MatchPath(path, rules.SensitivePaths); ok {
		slog.Info("warning about sensitive file edit", "file", path, "pattern", rule.Pattern)
		out := fmt.Sprintf("⚠️ WARNING: Editing sensitive file: %s\n   Matches pattern: %s\n   %s",
			path, rule.Pattern, rule.Reason)
		return hooks.HookOutput{Decision: "approve", Output: out}, nil
	}

	return hooks.HookOutput{Decision: "approve"}, nil
}
