package asm

import (
	"asmview/pkg/demangle"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Grammar is the ordered set of line alternatives together with the
// classifier used to assign label kinds. It holds no per-line state and is
// safe for concurrent use.
type Grammar struct {
	classifier demangle.Classifier
}

// NewGrammar creates a grammar that classifies labels with c, or with
// demangle.Default if c is nil
func NewGrammar(c demangle.Classifier) *Grammar {
	if c == nil {
		c = demangle.Default
	}

	return &Grammar{classifier: c}
}

var defaultGrammar = NewGrammar(nil)

// ParseStatement parses the first line of input with the default grammar
func ParseStatement(input string) (Statement, string, error) {
	return defaultGrammar.ParseStatement(input)
}

// ParseStatement parses the first line of input and returns its statement
// and the input following the line terminator.
//
// Only the first line is offered to the alternatives; whatever the winning
// alternative leaves unconsumed on that line is discarded. Empty input
// returns io.EOF. A final line without "\n" is still parsed, and the
// statement is returned together with ErrUnterminatedFinalLine.
func (g *Grammar) ParseStatement(input string) (Statement, string, error) {
	if input == "" {
		return nil, "", io.EOF
	}

	line, rest, terminated := strings.Cut(input, "\n")
	line = strings.TrimSuffix(line, "\r")

	stmt := g.ParseLine(line)
	if !terminated {
		return stmt, "", ErrUnterminatedFinalLine
	}

	return stmt, rest, nil
}

// ParseLine classifies a single line that carries no terminator. It never
// fails: an empty line is Nothing and anything unrecognized is Dunno.
func (g *Grammar) ParseLine(line string) Statement {
	for _, alt := range precedenceOrder {
		if stmt, ok := g.parseAlternative(alt, line); ok {
			return stmt
		}
	}

	return Dunno{Text: line}
}

// parseAlternative tries exactly one alternative on line
func (g *Grammar) parseAlternative(alt Alternative, line string) (Statement, bool) {
	switch alt {
	case LABEL, QUOTED_LABEL:
		if l, ok := g.parseLabel(alt, line); ok {
			return l, true
		}
	case FILE, LOC, SET, SUBSECTIONS, SECTION, GENERIC:
		if d, ok := parseDirective(alt, line); ok {
			return d, true
		}
	case INSTRUCTION, COMMENT:
		if i, ok := parseInstruction(alt, line); ok {
			return i, true
		}
	case NOTHING:
		if _, ok := alt.match(line); ok {
			return Nothing{}, true
		}
	case DUNNO:
		if c, ok := alt.match(line); ok {
			return Dunno{Text: c.group(0).Text}, true
		}
	}

	return nil, false
}

type Parser struct {
	grammar *Grammar // grammar used for every line
	rest    string   // input not yet parsed
	line    int      // 1-based number of the last parsed line
	strict  bool     // report an unterminated final line as an error
	err     error    // first error encountered
}

type Option func(*Parser)

// WithClassifier makes the parser classify labels with c
func WithClassifier(c demangle.Classifier) Option {
	return func(p *Parser) {
		p.grammar = NewGrammar(c)
	}
}

// WithStrict makes an unterminated final line an error instead of a
// regular statement
func WithStrict(strict bool) Option {
	return func(p *Parser) {
		p.strict = strict
	}
}

// NewParser creates a parser over a whole listing
func NewParser(input string, opts ...Option) *Parser {
	p := &Parser{
		grammar: defaultGrammar,
		rest:    input,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Next parses the next line. It returns false once the input is exhausted
// or an error occurred; see Err.
func (p *Parser) Next() (Statement, bool) {
	if p.err != nil || p.rest == "" {
		return nil, false
	}

	stmt, rest, err := p.grammar.ParseStatement(p.rest)
	p.rest = rest
	p.line++

	if err != nil {
		if errors.Is(err, ErrUnterminatedFinalLine) && !p.strict {
			return stmt, true
		}
		p.err = fmt.Errorf("line %d: %w", p.line, err)
		return nil, false
	}

	return stmt, true
}

// HasMore checks if there is input left to parse
func (p *Parser) HasMore() bool {
	return p.err == nil && p.rest != ""
}

// Line returns the 1-based line number of the last parsed statement
func (p *Parser) Line() int {
	return p.line
}

// Err returns the first error encountered by Next
func (p *Parser) Err() error {
	return p.err
}

// All iterates over the remaining statements together with their line numbers
func (p *Parser) All() iter.Seq2[int, Statement] {
	return func(yield func(int, Statement) bool) {
		for {
			stmt, ok := p.Next()
			if !ok || !yield(p.line, stmt) {
				return
			}
		}
	}
}

// ParseAll parses every line of input
func ParseAll(input string, opts ...Option) ([]Statement, error) {
	p := NewParser(input, opts...)

	stmts := make([]Statement, 0, strings.Count(input, "\n")+1)
	for _, stmt := range p.All() {
		stmts = append(stmts, stmt)
	}

	return stmts, p.Err()
}
