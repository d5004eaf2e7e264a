package psl

import (
	"strings"
	"unicode"
)

// nicURLScheme marks the start of a registry URL inside a comment line.
const nicURLScheme = "https://"

// ResolveNIC scans table lines backward from the given line index and
// returns the registry URL embedded in the nearest comment line at or
// before it, or "" if there is none or the index is out of range.
//
// The scan is linear in the table size. [Table.NIC] answers the same
// question from an index precomputed at parse time.
func ResolveNIC(t *Table, line int) string {
	if line < 0 || line >= len(t.lines) {
		return ""
	}
	for i := line; i >= 0; i-- {
		if url := lineNICURL(t.lines[i]); url != "" {
			return url
		}
	}
	return ""
}

// NIC returns the registry URL for the given line index in constant time.
// It returns the same result as [ResolveNIC] for every input.
func (t *Table) NIC(line int) string {
	if line < 0 || line >= len(t.nics) {
		return ""
	}
	return t.nics[line]
}

// lineNICURL extracts the registry URL from a comment line.
// The URL runs from "https://" to the next whitespace or end of line.
func lineNICURL(ln Line) string {
	if !ln.IsComment {
		return ""
	}
	i := strings.Index(ln.Text, nicURLScheme)
	if i == -1 {
		return ""
	}
	url := ln.Text[i:]
	if j := strings.IndexFunc(url, unicode.IsSpace); j != -1 {
		url = url[:j]
	}
	return url
}
