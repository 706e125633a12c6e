package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"guardhooks/internal/config"
)

var (
	uninstall  bool
	global     bool
	local      bool
	installCmd = &cobra.Command{
		Use:   "install",
		Short: "Install guardhooks into Claude Code settings",
		Long: `Register guardhooks as a Claude Code hook handler.

By default, installs to project settings (.claude/settings.json in current directory).
Use --global for user settings (~/.claude/settings.json).
Use --local for local directory settings (./.claude/settings.local.json).

This command registers the binary for:
  PreToolUse (Write|Edit|MultiEdit)  - secret, protected-file, and quality guards
  PostToolUse (Write|Edit|MultiEdit) - TypeScript type checking
  Stop                               - doc-update suggestions and session metrics

Use --uninstall to remove guardhooks from Claude settings.`,
		RunE: runInstall,
	}
)

func init() {
	rootCmd.AddCommand(installCmd)
	installCmd.Flags().BoolVar(&uninstall, "uninstall", false, "Remove hooks from Claude settings")
	installCmd.Flags().BoolVar(&global, "global", false, "Install to global settings (~/.claude/settings.json)")
	installCmd.Flags().BoolVar(&local, "local", false, "Install to local settings (./.claude/settings.local.json)")
	installCmd.MarkFlagsMutuallyExclusive("global", "local")
}

func runInstall(cmd *cobra.Command, args []string) error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	executable, err = filepath.Abs(executable)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	var settingsPath string
	var scope string
	switch {
	case global:
		settingsPath = config.GetGlobalSettingsPath()
		scope = "global"
	case local:
		settingsPath = config.GetLocalSettingsPath()
		scope = "local"
	default:
		settingsPath = config.GetProjectSettingsPath()
		scope = "project"
	}

	// A binary under the temp dir disappears; the registration would dangle.
	if !uninstall {
		realExecutable, err := filepath.EvalSymlinks(executable)
		if err != nil {
			realExecutable = executable
		}
		if strings.HasPrefix(realExecutable, os.TempDir()) || strings.HasPrefix(executable, "/tmp/") {
			return fmt.Errorf("cannot install from temporary directory: %s\nPlease build and install guardhooks properly:\n  go install && guardhooks install", executable)
		}
	}

	if uninstall {
		slog.Info("uninstalling hooks", "binary", executable, "scope", scope)
		if err := config.UninstallHooksFromPath(executable, settingsPath); err != nil {
			return fmt.Errorf("failed to uninstall hooks: %w", err)
		}
		fmt.Printf("✓ guardhooks uninstalled successfully from %s settings\n", scope)
		return nil
	}

	slog.Info("installing hooks", "binary", executable, "scope", scope)
	if err := config.InstallHooksToPath(executable, settingsPath); err != nil {
		return fmt.Errorf("failed to install hooks: %w", err)
	}

	fmt.Printf(`✓ guardhooks installed successfully to %s settings
  Binary: %s
  Settings: %s

What guardhooks does:
  • Blocks edits that would introduce API keys, tokens, or private keys
  • Blocks edits to protected files (lock files, .env files, secrets dirs)
  • Warns about debug statements, FIXME/HACK/XXX markers, oversized content
  • Type-checks TypeScript files after edits (informational)
  • Suggests documentation updates and records metrics at session end

Configuration:
  • Guards can be toggled per project in .claude/guards.yaml
  • Use 'guardhooks metrics list' to view recorded session metrics
`, scope, executable, settingsPath)

	return nil
}
