package psl

import (
	"strings"

	"github.com/sql-sith/pslkit/domain"
)

// Result is the outcome of matching a domain name against a table.
// Empty strings and a negative line index represent absent values.
type Result struct {
	// PublicSuffix is the longest matching public suffix.
	PublicSuffix string

	// RegistrableDomain is the public suffix plus one more label
	// from the matched domain, or "" if the domain is the suffix itself.
	RegistrableDomain string

	// Line is the table line index of the winning rule,
	// or -1 when no table rule matched.
	Line int
}

// Match finds the longest public suffix of the domain name in the table
// and derives the registrable domain from it.
//
// The domain name is normalized but not validated. Callers that need
// syntactic guarantees must check [domain.Valid] first.
//
// When no rule matches, the rightmost label is treated as the public suffix,
// as if the dataset ended with a universal wildcard rule.
func Match(domainName string, t *Table) Result {
	name := domain.Normalize(domainName)
	if name == "" {
		return Result{Line: -1}
	}
	labels := domain.Labels(name)

	var (
		found         bool
		bestLen       int
		bestSuffix    int
		bestLine      int
		bestException bool
	)

	for _, r := range t.rules {
		matchLen, suffixLen, ok := matchRule(r, labels)
		if !ok {
			continue
		}
		exception := r.Kind == KindException
		if !found || matchLen > bestLen || matchLen == bestLen && exception && !bestException {
			found = true
			bestLen = matchLen
			bestSuffix = suffixLen
			bestLine = r.Line
			bestException = exception
		}
	}

	if !found {
		// Implicit universal wildcard: the apex label alone is the suffix.
		bestSuffix = 1
		bestLine = -1
	}

	result := Result{
		PublicSuffix: strings.Join(labels[len(labels)-bestSuffix:], "."),
		Line:         bestLine,
	}
	if len(labels) > bestSuffix {
		result.RegistrableDomain = strings.Join(labels[len(labels)-bestSuffix-1:], ".")
	}
	return result
}

// matchRule right-aligns the rule's labels against the domain's labels.
// matchLen is the number of domain labels the rule consumed and suffixLen
// the number of labels in the rule's effective public suffix.
func matchRule(r Rule, labels []string) (matchLen, suffixLen int, ok bool) {
	switch r.Kind {
	case KindExact:
		if !labelsHaveSuffix(labels, r.Labels) {
			return 0, 0, false
		}
		return len(r.Labels), len(r.Labels), true

	case KindWildcard:
		// The wildcard consumes one generic label left of the literal labels.
		if len(labels) < len(r.Labels)+1 || !labelsHaveSuffix(labels, r.Labels) {
			return 0, 0, false
		}
		return len(r.Labels) + 1, len(r.Labels) + 1, true

	case KindException:
		// The effective suffix drops the rule's bang label.
		if len(r.Labels) < 2 || !labelsHaveSuffix(labels, r.Labels) {
			return 0, 0, false
		}
		return len(r.Labels), len(r.Labels) - 1, true

	default:
		return 0, 0, false
	}
}

// labelsHaveSuffix reports whether suffix is a label-wise suffix of labels.
func labelsHaveSuffix(labels, suffix []string) bool {
	if len(suffix) > len(labels) {
		return false
	}
	offset := len(labels) - len(suffix)
	for i, label := range suffix {
		if labels[offset+i] != label {
			return false
		}
	}
	return true
}
