// Package extract turns annotated Kotlin source text into structured field
// entries.
//
// It is intentionally shallow (not a Kotlin parser): only property
// declarations of the shape
//
//	@ProtoNumber(1) var url: String
//	@ProtoNumber(2) val title: String = ""
//	@ProtoNumber(3) var chapters: List<Chapter>
//
// are recognized. Commented-out declarations never match.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// Rule is the cardinality of a field.
type Rule int

const (
	Required Rule = iota
	Optional
	Repeated
)

// String returns the proto2 keyword for the rule.
func (r Rule) String() string {
	switch r {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Repeated:
		return "repeated"
	default:
		return "unknown"
	}
}

// FieldEntry is one extracted annotated declaration.
type FieldEntry struct {
	Rule    Rule
	Number  int
	Type    string // scalar keyword or another definition's name
	Name    string
	RawText string // trimmed original declaration, kept for doc comments
}

// declPattern matches one annotated property declaration. Group layout:
//
//	1: line prefix before the annotation (checked for comment markers)
//	2: field number
//	3: property name
//	4: List element type (repeated fields)
//	5: bare type (scalar or reference)
//	6: nullability marker
//	7: default-value assignment
// Whitespace inside the pattern is [ \t] rather than \s so a declaration
// never matches across line boundaries.
var declPattern = regexp.MustCompile(
	`(?m)^([^\n]*?)@ProtoNumber\((\d+)\)[ \t]+va[lr][ \t]+(\w+)[ \t]*:[ \t]*(?:List<(\w+)>|(\w+))(\?)?((?:[ \t]*=[^\n]*)?)`)

// Extract scans text and returns every recognized declaration in source
// order, plus the independent count of annotation occurrences.
//
// Extract is pure and stateless: every call scans from offset 0, so sources
// can never corrupt each other's matches.
func Extract(text string) ([]FieldEntry, int) {
	var entries []FieldEntry

	for _, m := range declPattern.FindAllStringSubmatch(text, -1) {
		prefix := m[1]
		if strings.Contains(prefix, "//") {
			continue
		}

		number, err := strconv.Atoi(m[2])
		if err != nil {
			// Tag too large to represent; leave it to the mismatch check.
			continue
		}

		entry := FieldEntry{
			Number:  number,
			Name:    m[3],
			RawText: strings.TrimSpace(m[0][len(prefix):]),
		}

		switch {
		case m[4] != "":
			// List wrapper wins over any nullability or default marker.
			entry.Rule = Repeated
			entry.Type = m[4]
		case m[6] != "" || m[7] != "":
			entry.Rule = Optional
			entry.Type = m[5]
		default:
			entry.Rule = Required
			entry.Type = m[5]
		}

		entries = append(entries, entry)
	}

	return entries, CountAnnotations(text)
}

// CountAnnotations counts annotation occurrences that are not preceded by a
// comment marker on their line. A second, simpler scan than the full
// declaration pattern: comparing the two counts exposes declarations whose
// shape the pattern could not parse.
func CountAnnotations(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, "@ProtoNumber(")
		if idx >= 0 && !strings.Contains(line[:idx], "//") {
			count++
		}
	}
	return count
}
