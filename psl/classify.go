package psl

// Category is a diagnostic classification of a match result.
// It is advisory only and never affects matching.
type Category int

const (
	// CategoryUnparseable: neither a public suffix nor a registrable domain
	// was recovered.
	CategoryUnparseable Category = iota

	// CategoryPublicSuffix: the domain is itself a public suffix.
	CategoryPublicSuffix

	// CategoryRegistrable: an ordinary registrable domain under a recognized
	// public suffix.
	CategoryRegistrable

	// CategoryInconsistent: the two components contradict each other.
	CategoryInconsistent
)

// String implements [fmt.Stringer.String].
func (c Category) String() string {
	switch c {
	case CategoryUnparseable:
		return "unparseable"
	case CategoryPublicSuffix:
		return "public suffix"
	case CategoryRegistrable:
		return "registrable domain"
	case CategoryInconsistent:
		return "inconsistent data"
	default:
		return "unknown"
	}
}

// Classify interprets a (public suffix, registrable domain) pair.
// Empty strings represent absent values.
func Classify(tld, sld string) Category {
	switch {
	case tld == "" && sld == "":
		return CategoryUnparseable
	case tld == "":
		return CategoryInconsistent
	case sld == "" || tld == sld:
		return CategoryPublicSuffix
	case isProperLabelSuffix(tld, sld):
		return CategoryRegistrable
	default:
		return CategoryInconsistent
	}
}

// isProperLabelSuffix reports whether tld is a proper label-wise suffix of sld.
func isProperLabelSuffix(tld, sld string) bool {
	return len(sld) > len(tld) &&
		sld[len(sld)-len(tld)-1] == '.' &&
		sld[len(sld)-len(tld):] == tld
}
