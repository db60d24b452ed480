package asm

// ParseInstruction recognizes a tab indented line as an instruction.
//
// Regular instructions are an opcode optionally followed by operands, which
// are kept as raw text. Lines starting with one or two `#` are whole line
// comments emitted into the instruction stream; they become an Instruction
// whose Op is the full comment and which has no operands.
func ParseInstruction(line string) (Instruction, bool) {
	for _, alt := range instructionOrder {
		if i, ok := parseInstruction(alt, line); ok {
			return i, true
		}
	}

	return Instruction{}, false
}

func parseInstruction(alt Alternative, line string) (Instruction, bool) {
	c, ok := alt.match(line)
	if !ok {
		return Instruction{}, false
	}

	switch alt {
	case INSTRUCTION:
		return Instruction{Op: c.group(1).Text, Args: c.group(2)}, true
	case COMMENT:
		return Instruction{Op: c.group(1).Text, Args: None}, true
	}

	return Instruction{}, false
}

// IsComment checks if the instruction is a comment pseudo-instruction
func (i Instruction) IsComment() bool {
	return len(i.Op) > 0 && i.Op[0] == '#'
}
