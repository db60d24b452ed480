package render

import (
	"asmview/pkg/asm"
	"asmview/pkg/color"
	"asmview/pkg/demangle"
	"fmt"
	"regexp"
	"strings"
)

type Options struct {
	Full bool // keep Rust hashes in demangled names
}

var localLabelRegex = regexp.MustCompile(`(?:\.L|\bL(?:BB|tmp|func_end))[0-9A-Za-z_$.]*`)

// Statement renders s as human readable text: mangled names are demangled
// and the parts of the line are colored. File paths are shown joined.
func Statement(s asm.Statement, opts Options) string {
	switch s := s.(type) {
	case asm.Label:
		return label(s, opts)
	case asm.Instruction:
		return "\t" + instruction(s, opts)
	case asm.Directive:
		return directive(s, opts)
	case asm.Nothing:
		return ""
	case asm.Dunno:
		return color.YellowText(s.Text)
	default:
		return s.String()
	}
}

// Lines renders every statement followed by a newline
func Lines(stmts []asm.Statement, opts Options) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(Statement(s, opts))
		b.WriteByte('\n')
	}
	return b.String()
}

func label(l asm.Label, opts Options) string {
	text := color.BrightBlackText(demangle.Contents(l.ID, opts.Full))
	if l.Kind == demangle.Global {
		text = color.BoldText(text)
	}
	return text + ":"
}

func instruction(i asm.Instruction, opts Options) string {
	if i.IsComment() {
		return color.BrightBlackText(i.Op)
	}

	out := color.BrightBlueText(i.Op)
	if args, ok := i.Args.Get(); ok {
		out += " " + colorLocalLabels(demangle.Contents(args, opts.Full))
	}
	return out
}

func directive(d asm.Directive, opts Options) string {
	switch d := d.(type) {
	case asm.File:
		out := fmt.Sprintf("\t.file\t%d %s", d.Index, color.BrightBlackText(d.Path.FullPath()))
		if md5, ok := d.MD5.Get(); ok {
			out += " " + md5
		}
		return out
	case asm.Loc:
		return d.String()
	case asm.Generic:
		return "\t." + color.BrightBlackText(demangle.Contents(d.Text, opts.Full))
	case asm.Set:
		return ".set " + color.BrightBlackText(strings.TrimSpace(d.Text))
	case asm.SectionStart:
		return color.BrightBlackText(".section") + " " + demangle.Contents(d.Text, opts.Full)
	case asm.SubsectionsViaSym:
		return "." + color.BrightBlackText("subsections_via_symbols")
	default:
		return d.String()
	}
}

// colorLocalLabels highlights references to local labels inside operands
func colorLocalLabels(args string) string {
	if !color.IsColorEnabled() {
		return args
	}
	return localLabelRegex.ReplaceAllStringFunc(args, color.CyanText)
}
