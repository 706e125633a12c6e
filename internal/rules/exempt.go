package rules

import (
	"path/filepath"
	"strings"
)

// File formats that never hold scannable source content.
var skipExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
	".rst":      true,
	".json":     true,
	".yml":      true,
	".yaml":     true,
}

// Template env files are meant to look like the real thing.
var skipBasenames = map[string]bool{
	".env.example":      true,
	".env.template":     true,
	".env.sample":       true,
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
}

// Exempt reports whether a file is out of scope for content scanning:
// documentation and data formats, test and spec files, and example or
// template files. Test fixtures routinely contain key-shaped strings and
// debug calls on purpose, so scanning them would be all false positives.
// An empty path is not exempt; absent path information fails open toward
// scanning.
func Exempt(path string) bool {
	if path == "" {
		return false
	}

	base := strings.ToLower(filepath.Base(path))
	if skipBasenames[base] {
		return true
	}
	if strings.Contains(base, "test") || strings.Contains(base, "spec") {
		return true
	}
	if skipExtensions[strings.ToLower(filepath.Ext(path))] {
		return true
	}

	lower := strings.ToLower(filepath.ToSlash(path))
	for _, seg := range strings.Split(lower, "/") {
		switch seg {
		case "tests", "test", "__tests__", "examples":
			return true
		}
	}
	return strings.Contains(lower, "example")
}
