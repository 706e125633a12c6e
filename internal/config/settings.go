package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings mirrors the Claude Code settings.json hook schema.
type Settings struct {
	Hooks map[string][]HookDefinition `json:"hooks"`
}

type HookDefinition struct {
	Matcher string       `json:"matcher"`
	Hooks   []HookAction `json:"hooks"`
}

type HookAction struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// guardEvents lists the hook events the guards need, with the tool matcher
// each registers under. The edit guards only care about file-writing
// tools; the session guards match everything.
var guardEvents = []struct {
	Event   string
	Matcher string
}{
	{"PreToolUse", "Write|Edit|MultiEdit"},
	{"PostToolUse", "Write|Edit|MultiEdit"},
	{"Stop", "*"},
}

func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{Hooks: map[string][]HookDefinition{}}, nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if settings.Hooks == nil {
		settings.Hooks = map[string][]HookDefinition{}
	}
	return &settings, nil
}

func SaveSettings(path string, settings *Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

func GetGlobalSettingsPath() string {
	if path := os.Getenv("CLAUDE_SETTINGS_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "settings.json")
}

func GetLocalSettingsPath() string {
	return filepath.Join(".", ".claude", "settings.local.json")
}

func GetProjectSettingsPath() string {
	return filepath.Join(".", ".claude", "settings.json")
}

// guardCommand is the command line registered in settings.json.
func guardCommand(binaryPath string) string {
	return binaryPath + " run"
}

// InstallHooksToPath registers the guard binary for every guard event in
// the given settings file, updating an existing registration in place so
// repeated installs never duplicate hooks.
func InstallHooksToPath(binaryPath, settingsPath string) error {
	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	command := guardCommand(binaryPath)
	action := HookAction{Type: "command", Command: command}

	for _, ge := range guardEvents {
		updated := false
		for i, def := range settings.Hooks[ge.Event] {
			for j, existing := range def.Hooks {
				if existing.Command == command {
					settings.Hooks[ge.Event][i].Hooks[j] = action
					settings.Hooks[ge.Event][i].Matcher = ge.Matcher
					updated = true
				}
			}
		}
		if !updated {
			settings.Hooks[ge.Event] = append(settings.Hooks[ge.Event], HookDefinition{
				Matcher: ge.Matcher,
				Hooks:   []HookAction{action},
			})
		}
	}

	return SaveSettings(settingsPath, settings)
}

// UninstallHooksFromPath removes every registration of the guard binary,
// leaving other tools' hooks untouched. Events with no remaining hooks are
// dropped entirely.
func UninstallHooksFromPath(binaryPath, settingsPath string) error {
	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	command := guardCommand(binaryPath)
	for event, defs := range settings.Hooks {
		var keptDefs []HookDefinition
		for _, def := range defs {
			var kept []HookAction
			for _, action := range def.Hooks {
				if action.Command != command {
					kept = append(kept, action)
				}
			}
			if len(kept) > 0 {
				def.Hooks = kept
				keptDefs = append(keptDefs, def)
			}
		}
		if len(keptDefs) > 0 {
			settings.Hooks[event] = keptDefs
		} else {
			delete(settings.Hooks, event)
		}
	}

	return SaveSettings(settingsPath, settings)
}
