package asm

import (
	"asmview/pkg/demangle"
	"fmt"
	"path/filepath"
	"strings"
)

// Statement is the parsed form of exactly one line of assembly output.
// It is implemented by Label, Instruction, Nothing, Dunno and every Directive.
type Statement interface {
	fmt.Stringer
	isStatement()
}

// Directive is an assembler pseudo-operation: File, Loc, Generic, Set,
// SubsectionsViaSym or SectionStart.
type Directive interface {
	Statement
	isDirective()
}

type Label struct {
	ID   string             // label text without quotes or the trailing colon
	Kind demangle.LabelKind // assigned by the grammar's classifier
}

type Instruction struct {
	Op   string // opcode, or the whole line for a comment pseudo-instruction
	Args Span   // raw operand text
}

// Nothing is a blank line
type Nothing struct{}

// Dunno is a line no other alternative recognized, kept verbatim
type Dunno struct {
	Text string
}

// FilePath is either FullPath or PathAndFileName
type FilePath interface {
	FullPath() string
	isFilePath()
}

type FullPath struct {
	Path string
}

type PathAndFileName struct {
	Dir  string // compilation directory
	Name string // file name, usually relative to Dir
}

type File struct {
	Index uint64
	Path  FilePath
	MD5   Span
}

// Loc is a line table annotation. Two Locs are equal when they point at the
// same file and line, see Equal.
type Loc struct {
	File   uint64
	Line   uint64
	Column uint64
	Extra  Span // flags such as "is_stmt 0" or "prologue_end", verbatim
}

// Generic is any other tab indented directive; Text follows the leading dot
type Generic struct {
	Text string
}

// Set holds everything after the ".set" prefix verbatim
type Set struct {
	Text string
}

type SubsectionsViaSym struct{}

// SectionStart holds the trimmed arguments of a .section directive
type SectionStart struct {
	Text string
}

func (Label) isStatement()             {}
func (Instruction) isStatement()       {}
func (Nothing) isStatement()           {}
func (Dunno) isStatement()             {}
func (File) isStatement()              {}
func (Loc) isStatement()               {}
func (Generic) isStatement()           {}
func (Set) isStatement()               {}
func (SubsectionsViaSym) isStatement() {}
func (SectionStart) isStatement()      {}

func (File) isDirective()              {}
func (Loc) isDirective()               {}
func (Generic) isDirective()           {}
func (Set) isDirective()               {}
func (SubsectionsViaSym) isDirective() {}
func (SectionStart) isDirective()      {}

func (FullPath) isFilePath()        {}
func (PathAndFileName) isFilePath() {}

// FullPath returns the path unchanged
func (p FullPath) FullPath() string {
	return p.Path
}

// FullPath joins the directory and the file name into one path
func (p PathAndFileName) FullPath() string {
	return filepath.Join(p.Dir, p.Name)
}

// Equal reports whether l and o refer to the same source line.
// Column and Extra are ignored so that adjacent annotations differing only
// in column or flags compare equal.
func (l Loc) Equal(o Loc) bool {
	return l.File == o.File && l.Line == o.Line
}

// Equal compares two statements, using Loc.Equal for line table annotations
func Equal(a, b Statement) bool {
	if la, ok := a.(Loc); ok {
		lb, ok := b.(Loc)
		return ok && la.Equal(lb)
	}
	return a == b
}

// String methods render statements back into assembler syntax, without
// color or demangling. Parsing the result yields an equal statement.

func (l Label) String() string {
	for i := 0; i < len(l.ID); i++ {
		if !IsLabelByte(l.ID[i]) {
			return `"` + l.ID + `":`
		}
	}
	return l.ID + ":"
}

func (i Instruction) String() string {
	if args, ok := i.Args.Get(); ok {
		return "\t" + i.Op + " " + args
	}
	return "\t" + i.Op
}

func (Nothing) String() string {
	return ""
}

func (d Dunno) String() string {
	return d.Text
}

func (p FullPath) String() string {
	return `"` + p.Path + `"`
}

func (p PathAndFileName) String() string {
	return `"` + p.Dir + `" "` + p.Name + `"`
}

func (f File) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\t.file\t%d %s", f.Index, f.Path)
	if md5, ok := f.MD5.Get(); ok {
		b.WriteString(" " + md5)
	}
	return b.String()
}

func (l Loc) String() string {
	if extra, ok := l.Extra.Get(); ok {
		return fmt.Sprintf("\t.loc\t%d %d %d %s", l.File, l.Line, l.Column, extra)
	}
	return fmt.Sprintf("\t.loc\t%d %d %d", l.File, l.Line, l.Column)
}

func (g Generic) String() string {
	return "\t." + g.Text
}

func (s Set) String() string {
	return ".set" + s.Text
}

func (SubsectionsViaSym) String() string {
	return ".subsections_via_symbols"
}

func (s SectionStart) String() string {
	return "\t.section\t" + s.Text
}
