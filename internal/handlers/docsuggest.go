package handlers

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"guardhooks/internal/config"
	"guardhooks/internal/gitinfo"
	"guardhooks/internal/hooks"
)

// configBasenames are project configuration files whose modification
// usually deserves a matching documentation update.
var configBasenames = []string{
	"package.json",
	"tsconfig.json",
	"pyproject.toml",
	"Cargo.toml",
	"go.mod",
	"Makefile",
	"Dockerfile",
	"docker-compose.yml",
	"docker-compose.yaml",
	".eslintrc",
	".prettierrc",
	"webpack.config",
	"vite.config",
	"next.config",
	"tailwind.config",
	"jest.config",
	"vitest.config",
	".env.example",
	"requirements.txt",
	"setup.py",
	"setup.cfg",
}

var extensionLabels = map[string]string{
	".rs":     "Rust",
	".go":     "Go",
	".py":     "Python",
	".ts":     "TypeScript",
	".tsx":    "React/TSX",
	".jsx":    "React/JSX",
	".vue":    "Vue",
	".svelte": "Svelte",
	".rb":     "Ruby",
	".java":   "Java",
	".kt":     "Kotlin",
	".swift":  "Swift",
	".c":      "C",
	".cpp":    "C++",
	".zig":    "Zig",
}

// largeChangeThreshold is the changed-file count above which a session
// learnings review is suggested.
const largeChangeThreshold = 10

// SuggestDocUpdates inspects the working tree at session end and prints
// documentation-update suggestions to stderr, so the advice never mixes
// with other guards' stdout. Informational only; no git, no suggestions.
func SuggestDocUpdates(ctx context.Context, input hooks.HookInput) (hooks.HookOutput, error) {
	cfg := config.LoadGuardsConfig(input.CWD)
	if !cfg.DocSuggest {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	reader := gitinfo.NewReader(input.CWD)
	changes := reader.ChangedFiles(ctx)
	if len(changes) == 0 {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	suggestions := buildSuggestions(changes, reader.TrackedFiles(ctx))
	if len(suggestions) == 0 {
		return hooks.HookOutput{Decision: "continue"}, nil
	}

	var b strings.Builder
	b.WriteString("\nDocumentation update suggested:\n")
	for _, s := range suggestions {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	return hooks.HookOutput{Decision: "continue", Notice: b.String()}, nil
}

func buildSuggestions(changes []gitinfo.Change, trackedFiles []string) []string {
	var suggestions []string

	for _, dir := range newDirectories(changes) {
		suggestions = append(suggestions,
			fmt.Sprintf("New directory '%s/' created -> Document %s architecture in CLAUDE.md", dir, filepath.Base(dir)))
	}

	for _, ext := range newFileTypes(changes, trackedFiles) {
		label, ok := extensionLabels[ext]
		if !ok {
			label = ext
		}
		suggestions = append(suggestions,
			fmt.Sprintf("New file type '%s' (%s) introduced -> Update stack info in CLAUDE.md", ext, label))
	}

	if deleted := deletedFiles(changes); len(deleted) > 0 {
		if len(deleted) <= 3 {
			for _, f := range deleted {
				suggestions = append(suggestions,
					fmt.Sprintf("'%s' deleted -> Check if removed feature needs doc cleanup", f))
			}
		} else {
			suggestions = append(suggestions,
				fmt.Sprintf("%d files deleted -> Review docs for removed features", len(deleted)))
		}
	}

	for _, cfg := range configChanges(changes) {
		suggestions = append(suggestions,
			fmt.Sprintf("%s modified -> Update project dependencies/config section", filepath.Base(cfg)))
	}

	if len(changes) > largeChangeThreshold {
		suggestions = append(suggestions,
			fmt.Sprintf("%d files changed -> Consider reviewing and saving session learnings", len(changes)))
	}

	return suggestions
}

// newDirectories collects the parent directories of added files.
func newDirectories(changes []gitinfo.Change) []string {
	dirs := map[string]bool{}
	for _, c := range changes {
		if !strings.HasPrefix(c.Status, "A") && !strings.HasPrefix(c.Status, "?") {
			continue
		}
		if dir := filepath.Dir(c.Path); dir != "." && dir != "/" {
			dirs[dir] = true
		}
	}
	return sortedKeys(dirs)
}

// newFileTypes collects extensions of added files that no tracked file
// already uses.
func newFileTypes(changes []gitinfo.Change, trackedFiles []string) []string {
	existing := map[string]bool{}
	for _, f := range trackedFiles {
		if ext := filepath.Ext(f); ext != "" {
			existing[ext] = true
		}
	}

	added := map[string]bool{}
	for _, c := range changes {
		if !strings.HasPrefix(c.Status, "A") && !strings.HasPrefix(c.Status, "?") {
			continue
		}
		if ext := filepath.Ext(c.Path); ext != "" && !existing[ext] {
			added[ext] = true
		}
	}
	return sortedKeys(added)
}

func deletedFiles(changes []gitinfo.Change) []string {
	var deleted []string
	for _, c := range changes {
		if strings.HasPrefix(c.Status, "D") {
			deleted = append(deleted, c.Path)
		}
	}
	return deleted
}

func configChanges(changes []gitinfo.Change) []string {
	var modified []string
	for _, c := range changes {
		base := filepath.Base(c.Path)
		for _, pattern := range configBasenames {
			if base == pattern || strings.HasPrefix(base, pattern) {
				modified = append(modified, c.Path)
				break
			}
		}
	}
	return modified
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
