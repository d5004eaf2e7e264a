package psl

import "strings"

// RuleKind identifies the variant of a suffix rule.
type RuleKind int

const (
	// KindExact matches the rule's label sequence verbatim.
	KindExact RuleKind = iota

	// KindWildcard matches any single label followed by the rule's literal labels.
	KindWildcard

	// KindException carves a specific name out of a wildcard rule's matches.
	KindException
)

// Rule is a single Public Suffix List entry.
type Rule struct {
	// Labels is the rule's label sequence, most significant label last.
	// The leading "*." of a wildcard rule is not included.
	// The leading label of an exception rule is included, without its "!".
	Labels []string

	// Kind is the rule variant.
	Kind RuleKind

	// Line is the rule's index into the owning table.
	Line int
}

// parseRule parses a rule line into a [Rule].
// The dataset format only reads a line up to the first whitespace.
func parseRule(text string, line int) Rule {
	if i := strings.IndexByte(text, ' '); i != -1 {
		text = text[:i]
	}

	r := Rule{Kind: KindExact, Line: line}

	switch {
	case strings.HasPrefix(text, "!"):
		r.Kind = KindException
		text = text[1:]
	case strings.HasPrefix(text, "*."):
		r.Kind = KindWildcard
		text = text[2:]
	}

	r.Labels = strings.Split(text, ".")
	return r
}
