package demangle

import "strings"

type LabelKind int

const (
	Unknown LabelKind = iota // not recognized by any naming convention
	Local                    // assembler local label, e.g. .LBB0_1 or LBB0_1
	Temp                     // compiler temporary, e.g. .Ltmp12
	Global                   // label carrying a mangled symbol name
)

// String returns a string representation of the LabelKind
func (k LabelKind) String() string {
	switch k {
	case Local:
		return "local"
	case Temp:
		return "temp"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}

// Classifier derives a LabelKind from the text of a label definition
type Classifier interface {
	LabelKind(id string) LabelKind
}

// ClassifierFunc adapts a plain function to the Classifier interface
type ClassifierFunc func(id string) LabelKind

// LabelKind calls f(id)
func (f ClassifierFunc) LabelKind(id string) LabelKind {
	return f(id)
}

// Default classifies labels with Classify
var Default Classifier = ClassifierFunc(Classify)

// Classify derives the kind of a label from its naming convention.
//
// ELF local labels start with ".L", Mach-O ones with "L"; within those the
// "tmp" family is emitted for debug info and exception tables. Anything else
// is Global if it embeds a mangled symbol name.
func Classify(id string) LabelKind {
	name := strings.TrimPrefix(id, ".")
	if rest, ok := strings.CutPrefix(name, "L"); ok {
		if strings.HasPrefix(rest, "tmp") {
			return Temp
		}
		return Local
	}

	if IsMangled(id) {
		return Global
	}

	return Unknown
}
