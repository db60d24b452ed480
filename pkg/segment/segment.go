// Package segment groups a flat statement stream into sections and functions.
// It only relies on the classification predicates of package asm plus the
// Label and Loc values themselves.
package segment

import (
	"asmview/pkg/asm"
	"asmview/pkg/demangle"
	"strings"

	"golang.org/x/exp/slices"
)

type Function struct {
	Name       string          // label that opens the function, still mangled
	Start      int             // index of the first statement, inclusive
	End        int             // index past the last statement
	Statements []asm.Statement // stmts[Start:End]
}

// Globals returns the symbols announced by .globl directives, in order
func Globals(stmts []asm.Statement) []string {
	var names []string
	for _, s := range stmts {
		if name, ok := asm.GlobalName(s); ok {
			names = append(names, name)
		}
	}
	return names
}

// Sections splits stmts at every .section directive. Statements before the
// first .section form their own group.
func Sections(stmts []asm.Statement) [][]asm.Statement {
	var out [][]asm.Statement

	start := 0
	for i, s := range stmts {
		if asm.IsSectionStart(s) && i > start {
			out = append(out, stmts[start:i])
			start = i
		}
	}
	if start < len(stmts) {
		out = append(out, stmts[start:])
	}

	return out
}

// Functions finds every function body in stmts.
//
// A function opens at a label that is either announced by .globl or
// classified as Global. The body includes the directives since the last
// section start or function end, so that .section/.globl/.type lines stay
// with their function. It closes after the end of function label, at the
// next section start, before the preamble of the next function, or at the
// end of input.
func Functions(stmts []asm.Statement) []Function {
	globals := make(map[string]struct{})
	for _, name := range Globals(stmts) {
		globals[name] = struct{}{}
	}

	var out []Function
	var current *Function

	preamble := 0 // first statement that belongs to the next function
	closeAt := func(end int) {
		current.End = end
		current.Statements = stmts[current.Start:end]
		out = append(out, *current)
		current = nil
		preamble = end
	}

	for i, s := range stmts {
		switch {
		case asm.IsSectionStart(s):
			if current != nil {
				closeAt(i)
			}
			preamble = i
		case current != nil && asm.IsEndOfFn(s):
			closeAt(i + 1)
		default:
			l, ok := s.(asm.Label)
			if !ok {
				continue
			}
			if _, announced := globals[l.ID]; !announced && l.Kind != demangle.Global {
				continue
			}
			// gcc emits neither end labels nor a section per function
			if current != nil {
				closeAt(startOf(stmts, current.Start+1, i))
			}
			current = &Function{Name: l.ID, Start: startOf(stmts, preamble, i)}
		}
	}

	if current != nil {
		closeAt(len(stmts))
	}

	return out
}

// startOf moves the function start back over the directives and comments
// that precede its label, but never before preamble or past another label,
// an instruction or the .size of the previous function
func startOf(stmts []asm.Statement, preamble, label int) int {
	start := label
	for start > preamble {
		switch s := stmts[start-1].(type) {
		case asm.Generic:
			if strings.HasPrefix(s.Text, "size\t") || strings.HasPrefix(s.Text, "size ") {
				return start
			}
		case asm.Directive, asm.Nothing:
		case asm.Instruction:
			if !s.IsComment() {
				return start
			}
		default:
			return start
		}
		start--
	}
	return start
}

// Find returns the functions whose demangled name contains pattern
func Find(fns []Function, pattern string) []Function {
	return slices.DeleteFunc(slices.Clone(fns), func(f Function) bool {
		return !strings.Contains(demangle.Symbol(f.Name, true), pattern) &&
			!strings.Contains(f.Name, pattern)
	})
}

// DedupLocs drops every .loc that points at the same file and line as the
// previous .loc in the same section
func DedupLocs(stmts []asm.Statement) []asm.Statement {
	out := make([]asm.Statement, 0, len(stmts))

	var last asm.Loc
	haveLast := false
	for _, s := range stmts {
		switch s := s.(type) {
		case asm.Loc:
			if haveLast && last.Equal(s) {
				continue
			}
			last, haveLast = s, true
		case asm.SectionStart:
			haveLast = false
		}
		out = append(out, s)
	}

	return out
}
