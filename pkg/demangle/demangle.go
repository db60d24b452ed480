package demangle

import (
	"regexp"
	"strings"

	"github.com/ianlancetaylor/demangle"
)

var (
	// Itanium C++ and Rust legacy symbols start with _Z, Rust v0 ones with _R.
	// Mach-O adds one more leading underscore.
	mangledRegex = regexp.MustCompile(`\b_?_[ZR][$._0-9A-Za-z]+`)

	// Rust legacy symbols end with a path segment holding a 64 bit hash
	legacyHashRegex = regexp.MustCompile(`17h([0-9a-f]{16})E$`)
)

// IsMangled checks if text contains something that looks like a mangled symbol
func IsMangled(text string) bool {
	return mangledRegex.MatchString(text)
}

// Symbol demangles a single symbol name. The Rust legacy hash is only kept,
// as a trailing `::h<hash>` segment, when full is set. The input is returned
// unchanged if it cannot be demangled.
func Symbol(name string, full bool) string {
	trimmed := name
	if strings.HasPrefix(trimmed, "__Z") || strings.HasPrefix(trimmed, "__R") {
		trimmed = trimmed[1:]
	}

	out, err := demangle.ToString(trimmed)
	if err != nil {
		return name
	}

	// the demangler always drops the hash segment
	if full {
		if m := legacyHashRegex.FindStringSubmatch(trimmed); m != nil && !strings.HasSuffix(out, "::h"+m[1]) {
			out += "::h" + m[1]
		}
	}

	return out
}

// Contents replaces every mangled symbol found in text with its demangled form
func Contents(text string, full bool) string {
	if !IsMangled(text) {
		return text
	}

	return mangledRegex.ReplaceAllStringFunc(text, func(name string) string {
		return Symbol(name, full)
	})
}
