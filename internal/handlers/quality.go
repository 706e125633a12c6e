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

// QualityCheck warns about debug statements, temporary markers, and
// oversized content in the new text of an edit. It never blocks.
func QualityCheck(ctx context.Context, input hooks.HookInput) (hooks.HookOutput, error) {
	cfg := config.LoadGuardsConfig(input.CWD)
	if !cfg.Quality {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	fileInput, err := input.GetFileInput()
	if err != nil {
		slog.Debug("no file input found", "error", err)
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	content := fileInput.Text()
	if content == "" {
		return hooks.HookOutput{Decision: "approve"}, nil
	}
	if fileInput.FilePath != "" && rules.Exempt(fileInput.FilePath) {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	var issues []string
	for _, f := range rules.MatchContent(content, rules.DebugRules) {
		issues = append(issues, fmt.Sprintf("Debug statement found: %s → %s", f.Label, f.Remediation))
	}
	for _, f := range rules.MatchContent(content, rules.MarkerRules) {
		issues = append(issues, fmt.Sprintf("Temporary marker found: %s → %s", f.Label, f.Remediation))
	}
	if size := len(content); size > rules.MaxContentSize {
		issues = append(issues, fmt.Sprintf("Large file content: %dKB (limit: %dKB) → Consider splitting into smaller modules or extracting data",
			size/1024, rules.MaxContentSize/1024))
	}

	if len(issues) == 0 {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	slog.Info("quality issues detected", "file", fileInput.FilePath, "issues", len(issues))

	var b strings.Builder
	b.WriteString("Quality check - issues detected:\n")
	for _, issue := range issues {
		fmt.Fprintf(&b, "  - %s\n", issue)
	}
	b.WriteString("\nConsider resolving before committing.")

	return hooks.HookOutput{Decision: "approve", Output: b.String()}, nil
}
