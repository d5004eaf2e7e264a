package psl

import "testing"

// testTableText mimics the layout of the real Public Suffix List:
// registry URLs live in comment lines above their suffix entries,
// blank lines separate the blocks.
const testTableText = `// ===BEGIN TEST DOMAINS===
localzone

// com : https://www.verisign.com/domain-names
com

// net : https://www.verisign.com/domain-names
net

// uk : https://www.nominet.uk
uk
co.uk
org.uk

// ck : https://www.ck-nic.org.ck
*.ck
!www.ck

// GitHub, Inc. : https://github.com
github.io
`

// Retained line indices in testTableText after blank lines are dropped.
const (
	lineLocalzone   = 1
	lineCom         = 3
	lineNet         = 5
	lineUK          = 7
	lineCoUK        = 8
	lineOrgUK       = 9
	lineWildcardCK  = 11
	lineExceptionCK = 12
	lineGithubIO    = 14
)

var testTable = ParseTable(testTableText)

func TestParseTable(t *testing.T) {
	if testTable.Len() != 15 {
		t.Fatalf("Expected 15 retained lines, got %d", testTable.Len())
	}

	if ln := testTable.Line(0); !ln.IsComment {
		t.Errorf("Line 0 should be a comment: %q", ln.Text)
	}
	if ln := testTable.Line(lineCom); ln.IsComment || ln.Text != "com" {
		t.Errorf("Line %d should be the com rule, got %q", lineCom, ln.Text)
	}

	rules := testTable.Rules()
	if len(rules) != 9 {
		t.Fatalf("Expected 9 rules, got %d", len(rules))
	}
	for _, r := range rules {
		switch r.Line {
		case lineWildcardCK:
			if r.Kind != KindWildcard || len(r.Labels) != 1 || r.Labels[0] != "ck" {
				t.Errorf("Bad wildcard rule: %+v", r)
			}
		case lineExceptionCK:
			if r.Kind != KindException || len(r.Labels) != 2 || r.Labels[0] != "www" || r.Labels[1] != "ck" {
				t.Errorf("Bad exception rule: %+v", r)
			}
		default:
			if r.Kind != KindExact {
				t.Errorf("Rule at line %d should be exact: %+v", r.Line, r)
			}
		}
	}
}

func testMatch(t *testing.T, domainName, expectedSuffix, expectedRegistrable string, expectedLine int) {
	t.Helper()
	result := Match(domainName, testTable)
	if result.PublicSuffix != expectedSuffix {
		t.Errorf("Match(%q): expected suffix %q, got %q", domainName, expectedSuffix, result.PublicSuffix)
	}
	if result.RegistrableDomain != expectedRegistrable {
		t.Errorf("Match(%q): expected registrable %q, got %q", domainName, expectedRegistrable, result.RegistrableDomain)
	}
	if result.Line != expectedLine {
		t.Errorf("Match(%q): expected line %d, got %d", domainName, expectedLine, result.Line)
	}
}

func TestMatchExact(t *testing.T) {
	testMatch(t, "example.com", "com", "example.com", lineCom)
	testMatch(t, "www.example.com", "com", "example.com", lineCom)
	testMatch(t, "example.net", "net", "example.net", lineNet)
	testMatch(t, "pages.github.io", "github.io", "pages.github.io", lineGithubIO)
	testMatch(t, "com", "com", "", lineCom)
}

func TestMatchLongest(t *testing.T) {
	testMatch(t, "subdomain.example.co.uk", "co.uk", "example.co.uk", lineCoUK)
	testMatch(t, "example.org.uk", "org.uk", "example.org.uk", lineOrgUK)
	testMatch(t, "example.uk", "uk", "example.uk", lineUK)
	testMatch(t, "co.uk", "co.uk", "", lineCoUK)
}

func TestMatchWildcard(t *testing.T) {
	testMatch(t, "anything.ck", "anything.ck", "", lineWildcardCK)
	testMatch(t, "shop.anything.ck", "anything.ck", "shop.anything.ck", lineWildcardCK)
	testMatch(t, "deep.shop.anything.ck", "anything.ck", "shop.anything.ck", lineWildcardCK)
}

func TestMatchException(t *testing.T) {
	testMatch(t, "www.ck", "ck", "www.ck", lineExceptionCK)
	testMatch(t, "shop.www.ck", "ck", "www.ck", lineExceptionCK)
}

// An apex label with no explicit rule falls back to being treated as the
// public suffix, as if the dataset ended with a universal wildcard rule.
func TestMatchFallback(t *testing.T) {
	testMatch(t, "example.test", "test", "example.test", -1)
	testMatch(t, "a.b.example.test", "test", "example.test", -1)
	testMatch(t, "localhost", "localhost", "", -1)
}

func TestMatchNormalizes(t *testing.T) {
	testMatch(t, "  WWW.Example.COM\n", "com", "example.com", lineCom)
}

func TestMatchEmpty(t *testing.T) {
	result := Match("", testTable)
	if result.PublicSuffix != "" || result.RegistrableDomain != "" || result.Line != -1 {
		t.Errorf("Match of empty string should be empty, got %+v", result)
	}
}

func TestMatchEmptyTable(t *testing.T) {
	empty := ParseTable("")
	result := Match("example.com", empty)
	if result.PublicSuffix != "com" || result.RegistrableDomain != "example.com" || result.Line != -1 {
		t.Errorf("Expected fallback result, got %+v", result)
	}
}

func testNIC(t *testing.T, line int, expectedURL string) {
	t.Helper()
	if url := ResolveNIC(testTable, line); url != expectedURL {
		t.Errorf("ResolveNIC(%d): expected %q, got %q", line, expectedURL, url)
	}
	if url := testTable.NIC(line); url != expectedURL {
		t.Errorf("NIC(%d): expected %q, got %q", line, expectedURL, url)
	}
}

func TestNIC(t *testing.T) {
	testNIC(t, lineCom, "https://www.verisign.com/domain-names")
	testNIC(t, lineCoUK, "https://www.nominet.uk")
	testNIC(t, lineOrgUK, "https://www.nominet.uk")
	testNIC(t, lineWildcardCK, "https://www.ck-nic.org.ck")
	testNIC(t, lineExceptionCK, "https://www.ck-nic.org.ck")
	testNIC(t, lineGithubIO, "https://github.com")

	// No URL comment anywhere above the first rule.
	testNIC(t, lineLocalzone, "")

	testNIC(t, -1, "")
	testNIC(t, testTable.Len(), "")
}

// The precomputed index and the backward scan must agree on every line.
func TestNICIndexEquivalence(t *testing.T) {
	for i := -1; i <= testTable.Len(); i++ {
		scanned := ResolveNIC(testTable, i)
		indexed := testTable.NIC(i)
		if scanned != indexed {
			t.Errorf("Line %d: scan returned %q, index returned %q", i, scanned, indexed)
		}
	}
}

// Parsing the same text twice must yield tables that answer identically.
func TestParseTableIdempotent(t *testing.T) {
	other := ParseTable(testTableText)

	for _, domainName := range []string{
		"example.com", "subdomain.example.co.uk", "shop.anything.ck",
		"www.ck", "example.test", "localhost",
	} {
		a := Match(domainName, testTable)
		b := Match(domainName, other)
		if a != b {
			t.Errorf("Match(%q) differs between loads: %+v vs %+v", domainName, a, b)
		}
		if ResolveNIC(testTable, a.Line) != ResolveNIC(other, b.Line) {
			t.Errorf("ResolveNIC for %q differs between loads", domainName)
		}
	}
}

func testClassify(t *testing.T, tld, sld string, expected Category) {
	t.Helper()
	if c := Classify(tld, sld); c != expected {
		t.Errorf("Classify(%q, %q): expected %v, got %v", tld, sld, expected, c)
	}
}

func TestClassify(t *testing.T) {
	testClassify(t, "co.uk", "example.co.uk", CategoryRegistrable)
	testClassify(t, "com", "example.com", CategoryRegistrable)
	testClassify(t, "co.uk", "co.uk", CategoryPublicSuffix)
	testClassify(t, "com", "", CategoryPublicSuffix)
	testClassify(t, "com", "example.net", CategoryInconsistent)
	testClassify(t, "com", "notexample.com", CategoryRegistrable)
	testClassify(t, "com", "examplecom", CategoryInconsistent)
	testClassify(t, "", "example.com", CategoryInconsistent)
	testClassify(t, "", "", CategoryUnparseable)
}

func TestCategoryString(t *testing.T) {
	for c, expected := range map[Category]string{
		CategoryUnparseable:  "unparseable",
		CategoryPublicSuffix: "public suffix",
		CategoryRegistrable:  "registrable domain",
		CategoryInconsistent: "inconsistent data",
	} {
		if c.String() != expected {
			t.Errorf("Category %d: expected %q, got %q", int(c), expected, c.String())
		}
	}
}
