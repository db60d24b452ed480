package inspect

import (
	"asmview/pkg/asm"
	"asmview/pkg/color"
	"asmview/pkg/demangle"
	"asmview/pkg/render"
	"asmview/pkg/segment"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

var ErrNoFunction = errors.New("no matching function")

type Inspector struct {
	Verbose        bool      // Enable debug logging
	NoColor        bool      // Disable colored output
	Strict         bool      // Fail on a final line without terminator
	Full           bool      // Keep hashes in demangled names
	KeepDirectives bool      // Show every directive instead of only .file/.loc
	List           bool      // Only list function names
	Function       string    // Show only functions whose name contains this
	SourceFile     string    // Path to the assembly listing
	Output         io.Writer // Where rendered text goes, stdout if nil
}

// Run reads the listing, parses it line by line, segments it into functions
// and renders the selected part
func (opts *Inspector) Run() error {
	log.Info("Processing file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return fmt.Errorf("failed to read listing: %w", err)
	}

	return opts.inspect(string(input))
}

func (opts *Inspector) inspect(input string) error {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	if opts.NoColor {
		color.EnableColor(false)
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	stmts, err := asm.ParseAll(input, asm.WithStrict(opts.Strict))
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	fns := segment.Functions(stmts)
	log.Debug("Parsed listing", "statements", len(stmts), "functions", len(fns), "globals", len(segment.Globals(stmts)))

	if opts.List {
		for _, fn := range fns {
			fmt.Fprintf(out, "%s %s\n",
				color.BrightBlueText(demangle.Symbol(fn.Name, opts.Full)),
				color.BrightBlackText(fmt.Sprintf("%d lines", fn.End-fn.Start)))
		}
		return nil
	}

	filter := segment.Filter{KeepDirectives: opts.KeepDirectives}
	ropts := render.Options{Full: opts.Full}

	if opts.Function == "" {
		fmt.Fprint(out, render.Lines(segment.DedupLocs(segment.Strip(stmts, filter)), ropts))
		return nil
	}

	matches := segment.Find(fns, opts.Function)
	if len(matches) == 0 {
		return fmt.Errorf("%w: %q", ErrNoFunction, opts.Function)
	}
	if len(matches) > 1 {
		log.Warn("Several functions match, showing all of them", "pattern", opts.Function, "count", len(matches))
	}

	for _, fn := range matches {
		opts.header(out, fn)
		fmt.Fprint(out, render.Lines(segment.DedupLocs(segment.Strip(fn.Statements, filter)), ropts))
	}

	return nil
}

// header prints the demangled function name above its body
func (opts *Inspector) header(out io.Writer, fn segment.Function) {
	name := demangle.Symbol(fn.Name, opts.Full)
	if opts.NoColor || !color.IsColorEnabled() {
		fmt.Fprintf(out, "; %s\n", name)
		return
	}

	style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color.BrightGreen))
	fmt.Fprintln(out, style.Render("; "+name))
}
