package asm

// ParseLabel recognizes a label definition at the start of line using the
// default classifier
func ParseLabel(line string) (Label, bool) {
	return defaultGrammar.ParseLabel(line)
}

// ParseLabel recognizes a bare label (`name:`) or a quoted one (`"name":`).
// Quoted labels carry mangled names with characters outside the bare set,
// such as spaces, `@` or `?`.
func (g *Grammar) ParseLabel(line string) (Label, bool) {
	for _, alt := range labelOrder {
		if l, ok := g.parseLabel(alt, line); ok {
			return l, true
		}
	}

	return Label{}, false
}

func (g *Grammar) parseLabel(alt Alternative, line string) (Label, bool) {
	switch alt {
	case LABEL, QUOTED_LABEL:
		if c, ok := alt.match(line); ok {
			id := c.group(1).Text
			return Label{ID: id, Kind: g.classifier.LabelKind(id)}, true
		}
	}

	return Label{}, false
}
