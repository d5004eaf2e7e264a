// Package domain implements syntactic validation and decomposition of domain names.
package domain

import "strings"

const (
	// MaxDomainLength is the maximum length of a full domain name.
	MaxDomainLength = 253

	// MaxLabelLength is the maximum length of a single label.
	MaxLabelLength = 63
)

// Normalize trims surrounding whitespace and lowercases the domain name.
// Only ASCII letters are folded. IDN labels are passed through untouched.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Labels splits the domain name into its dot-separated labels,
// most significant label last.
func Labels(domainName string) []string {
	return strings.Split(domainName, ".")
}

// Valid reports whether the domain name is syntactically valid:
//
//   - The full name is 1 to 253 characters long.
//   - It consists of at least two dot-separated labels.
//   - Each label is 1 to 63 characters of ASCII letters, digits and hyphens,
//     and neither starts nor ends with a hyphen.
//   - The final label is 2 to 63 characters of letters only.
//
// Validation is purely syntactic. It does not imply that the domain
// exists or is registrable.
func Valid(domainName string) bool {
	if len(domainName) == 0 || len(domainName) > MaxDomainLength {
		return false
	}

	labels := Labels(domainName)
	if len(labels) < 2 {
		return false
	}

	for _, label := range labels[:len(labels)-1] {
		if !validLabel(label) {
			return false
		}
	}

	return validApexLabel(labels[len(labels)-1])
}

func validLabel(label string) bool {
	if len(label) == 0 || len(label) > MaxLabelLength {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isLetterDigitHyphen(label[i]) {
			return false
		}
	}
	return true
}

// validApexLabel checks the rightmost label, which must be letters only
// and at least two characters long.
func validApexLabel(label string) bool {
	if len(label) < 2 || len(label) > MaxLabelLength {
		return false
	}
	for i := 0; i < len(label); i++ {
		if !isLetter(label[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isLetterDigitHyphen(c byte) bool {
	return isLetter(c) || '0' <= c && c <= '9' || c == '-'
}
