package rules

import "regexp"

// SecretRules detect credentials that must never land in an edit. Matching
// any of these blocks the operation. The patterns are heuristic: obfuscated
// secrets slip through and key-shaped fixtures can false-positive; the
// eligibility filter keeps test files out of scope.
var SecretRules = []Rule{
	{regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?[a-zA-Z0-9_-]{20,}`), "API key",
		"Move to .env file and use environment variables (e.g., process.env.API_KEY)"},
	{regexp.MustCompile(`(?i)(secret|password|passwd|pwd)\s*[:=]\s*["'][^"']+["']`), "Password/Secret",
		"Use environment variables or a .env file, never hardcode credentials"},
	{regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9_-]{20,}`), "Bearer token",
		"Move to .env file and use environment variables (e.g., process.env.AUTH_TOKEN)"},
	{regexp.MustCompile(`ghp_[a-zA-Z0-9]{36}`), "GitHub Personal Access Token",
		"Move to .env file and use environment variables (e.g., process.env.GITHUB_TOKEN)"},
	{regexp.MustCompile(`github_pat_[a-zA-Z0-9]{22}_[a-zA-Z0-9]{59}`), "GitHub PAT (fine-grained)",
		"Move to .env file and use environment variables (e.g., process.env.GITHUB_TOKEN)"},
	{regexp.MustCompile(`sk-[a-zA-Z0-9]{48}`), "OpenAI API Key",
		"Move to .env file and use environment variables (e.g., process.env.OPENAI_API_KEY)"},
	{regexp.MustCompile(`sk-ant-[a-zA-Z0-9-]{90,}`), "Anthropic API Key",
		"Move to .env file and use environment variables (e.g., process.env.ANTHROPIC_API_KEY)"},
	{regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA )?PRIVATE KEY-----`), "Private key",
		"Store in a secrets manager (AWS Secrets Manager, Vault, etc.) — never commit private keys"},
	{regexp.MustCompile(`(?i)aws[_-]?access[_-]?key[_-]?id\s*[:=]\s*[A-Z0-9]{20}`), "AWS Access Key",
		"Move to .env file and use environment variables (e.g., process.env.AWS_ACCESS_KEY_ID)"},
	{regexp.MustCompile(`(?i)aws[_-]?secret[_-]?access[_-]?key\s*[:=]\s*[a-zA-Z0-9/+=]{40}`), "AWS Secret Key",
		"Move to .env file and use environment variables (e.g., process.env.AWS_SECRET_ACCESS_KEY)"},
}

// DebugRules detect leftover debugging aids. Warn only.
var DebugRules = []Rule{
	{regexp.MustCompile(`\bconsole\.log\s*\(`), "console.log",
		"Remove before commit, or use a proper logger (e.g., winston, pino)"},
	{regexp.MustCompile(`\bconsole\.debug\s*\(`), "console.debug",
		"Remove before commit, or use a proper logger (e.g., winston, pino)"},
	{regexp.MustCompile(`\bdebugger\b`), "debugger statement",
		"Remove before commit — debugger statements pause execution in production"},
	{regexp.MustCompile(`\bbreakpoint\s*\(`), "breakpoint()",
		"Remove before commit — use a conditional breakpoint or logging instead"},
	{regexp.MustCompile(`\bpdb\.set_trace\s*\(`), "pdb.set_trace()",
		"Remove before commit, or use a proper logger (e.g., logging module)"},
}

// MarkerRules detect temporary work markers. Warn only.
var MarkerRules = []Rule{
	{regexp.MustCompile(`\bFIXME\b`), "FIXME",
		"Address the issue or convert to a tracked GitHub issue"},
	{regexp.MustCompile(`\bHACK\b`), "HACK",
		"Refactor the workaround or document why it is necessary in a comment"},
	{regexp.MustCompile(`\bXXX\b`), "XXX",
		"Resolve the concern or convert to a tracked GitHub issue"},
}

// MaxContentSize is the byte length above which the quality guard warns
// about oversized content.
const MaxContentSize = 500 * 1024
