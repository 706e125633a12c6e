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

// CheckSecrets blocks edits whose new content matches a secret pattern.
func CheckSecrets(ctx context.Context, input hooks.HookInput) (hooks.HookOutput, error) {
	cfg := config.LoadGuardsConfig(input.CWD)
	if !cfg.Security {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	fileInput, err := input.GetFileInput()
	if err != nil {
		slog.Debug("no file input found", "error", err)
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	content := fileInput.Text()
	if fileInput.FilePath == "" || content == "" {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	if rules.Exempt(fileInput.FilePath) {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	findings := rules.MatchContent(content, rules.SecretRules)
	if rules.Decide(findings, nil) != rules.Block {
		return hooks.HookOutput{Decision: "approve"}, nil
	}

	slog.Warn("blocked edit with potential secrets",
		"file", fileInput.FilePath,
		"findings", len(findings))

	var b strings.Builder
	fmt.Fprintf(&b, "🚫 BLOCKED - Security issue detected in %s:\n", fileInput.FilePath)
	for _, f := range findings {
		fmt.Fprintf(&b, "  - Potential %s detected → %s\n", f.Label, f.Remediation)
	}
	b.WriteString("\nThis edit has been BLOCKED to prevent committing secrets.\n")
	b.WriteString("If this is a false positive, review and adjust the security guard patterns.")

	return hooks.HookOutput{
		Decision: "block",
		Reason:   fmt.Sprintf("Potential secrets detected in %s", fileInput.FilePath),
		Output:   b.String(),
	}, nil
}
