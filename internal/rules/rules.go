// Package rules implements the pattern-classification contract shared by
// the guard handlers: immutable (pattern, label, remediation) rule sets,
// a content matcher producing ordered findings, path protection globs, and
// the eligibility filter that exempts documentation and test files from
// content scanning.
//
// Classification is a pure function of (content, path) plus the static
// rule sets: the same input always yields the same findings in the same
// order.
package rules

import "regexp"

// Decision is the outcome of one classifier run.
type Decision int

const (
	Allow Decision = iota
	Warn
	Block
)

func (d Decision) String() string {
	switch d {
	case Block:
		return "block"
	case Warn:
		return "warn"
	default:
		return "allow"
	}
}

// Decide maps findings to the classifier outcome. Any blocking finding
// wins over any number of warning findings.
func Decide(blocking, warning []Finding) Decision {
	switch {
	case len(blocking) > 0:
		return Block
	case len(warning) > 0:
		return Warn
	default:
		return Allow
	}
}

// Rule pairs a content pattern with the label and remediation guidance
// reported when it matches. Rules are defined once at package init and
// never mutated.
type Rule struct {
	Pattern     *regexp.Regexp
	Label       string
	Remediation string
}

// Finding records a matched rule. Multiple occurrences of the same
// pattern produce a single finding; existence is all that matters.
type Finding struct {
	Label       string
	Remediation string
}

// MatchContent evaluates every rule in order against content using search
// semantics and returns one finding per matching rule. It never
// short-circuits: a blocking match does not hide later findings.
func MatchContent(content string, set []Rule) []Finding {
	var findings []Finding
	for _, r := range set {
		if r.Pattern.MatchString(content) {
			findings = append(findings, Finding{Label: r.Label, Remediation: r.Remediation})
		}
	}
	return findings
}
