package psl

import (
	"context"
	"fmt"
	"strings"

	"github.com/sql-sith/pslkit/source"
)

// commentMarker starts a comment line in the dataset.
const commentMarker = "//"

// Line is one retained line of the dataset.
type Line struct {
	// Text is the line's content without the trailing line break.
	Text string

	// IsComment reports whether the line is a comment line.
	// Comment lines carry no rule.
	IsComment bool
}

// Table is an immutable, line-indexed view of a Public Suffix List dataset.
//
// Blank lines are dropped during parsing. The retained lines are renumbered
// consecutively, so line indices strictly increase with document position.
// A table is safe for concurrent use once built.
type Table struct {
	lines []Line
	rules []Rule

	// nics[i] is the NIC URL of the nearest comment line
	// at or before line i, or "" if there is none.
	nics []string
}

// ParseTable parses dataset text into a [Table]. It never fails:
// a dataset with no rule lines simply yields a table that matches nothing.
func ParseTable(text string) *Table {
	t := &Table{}

	for len(text) > 0 {
		var line string
		line, text = nextLine(text)
		if line == "" {
			continue
		}

		index := len(t.lines)
		if strings.HasPrefix(line, commentMarker) {
			t.lines = append(t.lines, Line{Text: line, IsComment: true})
		} else {
			t.lines = append(t.lines, Line{Text: line})
			t.rules = append(t.rules, parseRule(line, index))
		}

		var nic string
		if index > 0 {
			nic = t.nics[index-1]
		}
		if url := lineNICURL(t.lines[index]); url != "" {
			nic = url
		}
		t.nics = append(t.nics, nic)
	}

	return t
}

// Load reads the full dataset text from src and parses it into a [Table].
// Loading is all-or-nothing: on error no table is returned.
func Load(ctx context.Context, src source.Source) (*Table, error) {
	text, err := src.ReadText(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load suffix dataset from %s: %w", src, err)
	}
	return ParseTable(text), nil
}

// Len returns the number of retained lines in the table.
func (t *Table) Len() int {
	return len(t.lines)
}

// Line returns the retained line at the given index.
func (t *Table) Line(index int) Line {
	return t.lines[index]
}

// Rules returns the table's rules in document order.
// The returned slice must not be modified.
func (t *Table) Rules() []Rule {
	return t.rules
}

// nextLine returns the next line, stripped of its line break,
// and the remaining text.
func nextLine(text string) (line, rest string) {
	lfIndex := strings.IndexByte(text, '\n')
	if lfIndex == -1 {
		return text, ""
	}
	line, rest = text[:lfIndex], text[lfIndex+1:]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	return line, rest
}
