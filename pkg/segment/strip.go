package segment

import (
	"asmview/pkg/asm"
	"asmview/pkg/demangle"
	"strings"

	"golang.org/x/exp/slices"
)

type Filter struct {
	KeepDirectives bool // keep every directive, not only .file and .loc
	KeepBlank      bool // keep blank lines
	KeepLabels     bool // keep local and temporary labels nothing jumps to
}

// Strip removes noise from stmts according to f. Global labels and lines the
// grammar did not recognize are always kept.
func Strip(stmts []asm.Statement, f Filter) []asm.Statement {
	used := usedLabels(stmts)

	return slices.DeleteFunc(slices.Clone(stmts), func(s asm.Statement) bool {
		switch s := s.(type) {
		case asm.Nothing:
			return !f.KeepBlank
		case asm.File, asm.Loc:
			return false
		case asm.Directive:
			return !f.KeepDirectives
		case asm.Label:
			if f.KeepLabels || s.Kind == demangle.Global || s.Kind == demangle.Unknown {
				return false
			}
			_, ok := used[s.ID]
			return !ok
		default:
			return false
		}
	})
}

// usedLabels collects every label-like token referenced from operands and
// from directive payloads such as .size or jump table .long entries
func usedLabels(stmts []asm.Statement) map[string]struct{} {
	used := make(map[string]struct{})

	notLabel := func(r rune) bool {
		return r >= 0x80 || !asm.IsLabelByte(byte(r))
	}
	for _, s := range stmts {
		var text string
		switch s := s.(type) {
		case asm.Instruction:
			text = s.Args.Text
		case asm.Generic:
			text = s.Text
		case asm.Set:
			text = s.Text
		default:
			continue
		}
		for _, token := range strings.FieldsFunc(text, notLabel) {
			used[token] = struct{}{}
		}
	}

	return used
}
