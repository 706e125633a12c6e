package rules

import (
	"path/filepath"
	"regexp"
	"strings"
)

// PathRule protects a file path by glob pattern. The pattern uses
// fnmatch-style semantics where '*' also crosses directory separators, so
// '**/secrets/*' covers a secrets directory at any depth.
type PathRule struct {
	Pattern string
	Reason  string

	re *regexp.Regexp
}

func pathRule(pattern, reason string) PathRule {
	return PathRule{Pattern: pattern, Reason: reason, re: globRegexp(pattern)}
}

// globRegexp translates an fnmatch-style glob into an anchored regexp.
// '*' matches any run of characters including '/', '?' matches a single
// character; everything else is literal.
func globRegexp(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`^`)
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString(`$`)
	return regexp.MustCompile(b.String())
}

// MatchPath returns the first rule matching the path, trying the full
// path and then its basename. The basename pass lets bare-filename rules
// like 'yarn.lock' protect the file anywhere in the tree.
func MatchPath(path string, set []PathRule) (PathRule, bool) {
	path = strings.TrimPrefix(path, "./")
	base := filepath.Base(path)
	for _, r := range set {
		if r.re.MatchString(path) || r.re.MatchString(base) {
			return r, true
		}
	}
	return PathRule{}, false
}

// ProtectedPaths block edits outright.
var ProtectedPaths = []PathRule{
	// Lock files are generated; hand edits desync them from their manifests.
	pathRule("package-lock.json", "Lock files should be updated via package manager (npm install), not edited directly"),
	pathRule("yarn.lock", "Lock files should be updated via package manager (yarn install), not edited directly"),
	pathRule("pnpm-lock.yaml", "Lock files should be updated via package manager (pnpm install), not edited directly"),
	pathRule("Gemfile.lock", "Lock files should be updated via package manager (bundle install), not edited directly"),
	pathRule("poetry.lock", "Lock files should be updated via package manager (poetry lock), not edited directly"),
	pathRule("Cargo.lock", "Lock files should be updated via package manager (cargo update), not edited directly"),

	pathRule(".env", ".env files contain secrets — edit manually outside of Claude Code"),
	pathRule(".env.local", ".env files contain secrets — edit manually outside of Claude Code"),
	pathRule(".env.production", ".env files contain secrets — edit manually outside of Claude Code"),
	pathRule("**/secrets/*", "Secrets directory contains sensitive data — manage outside of Claude Code"),
	pathRule("**/credentials/*", "Credentials directory contains sensitive data — manage outside of Claude Code"),

	pathRule(".git/*", ".git directory is managed by Git — never edit directly"),
}

// SensitivePaths warn but allow the edit.
var SensitivePaths = []PathRule{
	pathRule(".github/workflows/*", "CI workflow changes affect every contributor"),
	pathRule("docker-compose.yml", "Compose changes affect local and deployed environments"),
	pathRule("Dockerfile", "Image changes affect every deployment"),
	pathRule("**/production/*", "Production configuration — review carefully"),
}
