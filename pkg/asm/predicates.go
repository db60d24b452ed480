package asm

import "strings"

const (
	endOfFnPrefix = "Lfunc_end" // LLVM emits this label right after every function body
	globalPrefix  = "globl\t"   // .globl as seen through Generic, dot already stripped
)

// IsEndOfFn checks if s is a function end label, .Lfunc_endN or Lfunc_endN
func IsEndOfFn(s Statement) bool {
	l, ok := s.(Label)
	if !ok {
		return false
	}

	return strings.HasPrefix(strings.TrimPrefix(l.ID, "."), endOfFnPrefix)
}

// IsSectionStart checks if s is a .section directive
func IsSectionStart(s Statement) bool {
	_, ok := s.(SectionStart)
	return ok
}

// IsGlobal checks if s is a .globl directive
func IsGlobal(s Statement) bool {
	g, ok := s.(Generic)
	return ok && strings.HasPrefix(g.Text, globalPrefix)
}

// GlobalName returns the symbol made visible by a .globl directive
func GlobalName(s Statement) (string, bool) {
	if !IsGlobal(s) {
		return "", false
	}

	name := strings.TrimSpace(strings.TrimPrefix(s.(Generic).Text, globalPrefix))
	return strings.Trim(name, `"`), true
}
