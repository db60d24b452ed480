package asm

// Span is an optional piece of a source line. Text shares memory with the
// buffer it was sliced from.
type Span struct {
	Text  string // the captured text
	Valid bool   // whether the text was present at all
}

// Some returns a present span holding s
func Some(s string) Span {
	return Span{Text: s, Valid: true}
}

// None is the absent span
var None = Span{}

// Get returns the text and whether it is present
func (s Span) Get() (string, bool) {
	return s.Text, s.Valid
}

func (s Span) String() string {
	if !s.Valid {
		return "<none>"
	}
	return s.Text
}
