package asm

import (
	"regexp"
)

type Alternative int

const (
	LABEL        Alternative = iota // bare label
	QUOTED_LABEL                    // "label":
	FILE                            // \t.file
	LOC                             // \t.loc
	SET                             // .set
	SUBSECTIONS                     // .subsections_via_symbols
	SECTION                         // \t.section
	GENERIC                         // any other \t. directive
	INSTRUCTION                     // \top args
	COMMENT                         // \t# or \t##
	NOTHING                         // blank line
	DUNNO                           // anything else
)

// Line regex patterns. Every pattern is anchored at the start of the line and
// matched against a single line without its terminator; text past the match
// is dropped.
var lineRegexes = map[Alternative]*regexp.Regexp{
	LABEL:        regexp.MustCompile(`^([0-9A-Za-z.$_]+):`),
	QUOTED_LABEL: regexp.MustCompile(`^"([^"]+)":`),

	FILE:        regexp.MustCompile(`^\t\.file\t(\d+)[ \t]+"([^"]+)"(?:[ \t]+"([^"]+)")?(?:[ \t]+([0-9A-Fa-f]+))?`),
	LOC:         regexp.MustCompile(`^\t\.loc\t(\d+)[ \t]+(\d+)[ \t]+(\d+)(?: (.+))?`),
	SET:         regexp.MustCompile(`^\.set(.+)`),
	SUBSECTIONS: regexp.MustCompile(`^\.subsections_via_symbols`),
	SECTION:     regexp.MustCompile(`^\t\.section(.+)`),
	GENERIC:     regexp.MustCompile(`^\t\.(.+)`),

	// ARM uses `.` inside opcodes (b.ne), wasm uses both `.` and `_` (end_function)
	INSTRUCTION: regexp.MustCompile(`^\t([0-9A-Za-z._]+)(?:[ \t]+(.*))?`),
	COMMENT:     regexp.MustCompile(`^\t(#{1,2}.*)`),

	NOTHING: regexp.MustCompile(`^$`),
	DUNNO:   regexp.MustCompile(`^.+`),
}

// Alternative precedence order for matching. Several spellings are prefixes
// of others: .file and .loc precede the generic directive, and .section must
// come after .set but before the generic directive.
var precedenceOrder = []Alternative{
	LABEL, QUOTED_LABEL,
	FILE, LOC, SET, SUBSECTIONS, SECTION, GENERIC,
	INSTRUCTION, COMMENT,
	NOTHING,
	DUNNO,
}

var (
	labelOrder       = []Alternative{LABEL, QUOTED_LABEL}
	directiveOrder   = []Alternative{FILE, LOC, SET, SUBSECTIONS, SECTION, GENERIC}
	instructionOrder = []Alternative{INSTRUCTION, COMMENT}
)

// Get the regex pattern for an alternative
func (a Alternative) Regex() *regexp.Regexp {
	return lineRegexes[a]
}

// captures holds the submatch offsets of one alternative on one line
type captures struct {
	line string
	idx  []int
}

// match runs the pattern of a against line
func (a Alternative) match(line string) (captures, bool) {
	regex := a.Regex()
	if regex == nil {
		return captures{}, false
	}

	idx := regex.FindStringSubmatchIndex(line)
	if idx == nil {
		return captures{}, false
	}

	return captures{line: line, idx: idx}, true
}

// group returns submatch i as a slice of the line, or None if the group did
// not take part in the match
func (c captures) group(i int) Span {
	if 2*i+1 >= len(c.idx) || c.idx[2*i] < 0 {
		return None
	}

	return Some(c.line[c.idx[2*i]:c.idx[2*i+1]])
}

// IsLabelByte checks if a byte may appear in a bare (unquoted) label
func IsLabelByte(b byte) bool {
	return b == '.' || b == '$' || b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}
