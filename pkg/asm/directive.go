package asm

import (
	"strconv"
	"strings"
)

// ParseFile recognizes `\t.file\t<index> "<path>"` with an optional second
// quoted file name and an optional unquoted hex digest. One quoted string
// yields a FullPath, two yield a PathAndFileName.
func ParseFile(line string) (File, bool) {
	c, ok := FILE.match(line)
	if !ok {
		return File{}, false
	}

	index, err := strconv.ParseUint(c.group(1).Text, 10, 64)
	if err != nil {
		return File{}, false
	}

	var path FilePath = FullPath{Path: c.group(2).Text}
	if name, ok := c.group(3).Get(); ok {
		path = PathAndFileName{Dir: c.group(2).Text, Name: name}
	}

	return File{Index: index, Path: path, MD5: c.group(4)}, true
}

// ParseLoc recognizes `\t.loc\t<file> <line> <column>` followed by optional
// free form flags
func ParseLoc(line string) (Loc, bool) {
	c, ok := LOC.match(line)
	if !ok {
		return Loc{}, false
	}

	var nums [3]uint64
	for i := range nums {
		n, err := strconv.ParseUint(c.group(i+1).Text, 10, 64)
		if err != nil {
			return Loc{}, false
		}
		nums[i] = n
	}

	return Loc{File: nums[0], Line: nums[1], Column: nums[2], Extra: c.group(4)}, true
}

// ParseDirective tries every directive alternative in precedence order.
// A malformed .file or .loc falls through to Generic.
func ParseDirective(line string) (Directive, bool) {
	for _, alt := range directiveOrder {
		if d, ok := parseDirective(alt, line); ok {
			return d, true
		}
	}

	return nil, false
}

func parseDirective(alt Alternative, line string) (Directive, bool) {
	switch alt {
	case FILE:
		if f, ok := ParseFile(line); ok {
			return f, true
		}
	case LOC:
		if l, ok := ParseLoc(line); ok {
			return l, true
		}
	case SUBSECTIONS:
		if _, ok := alt.match(line); ok {
			return SubsectionsViaSym{}, true
		}
	case SET:
		if c, ok := alt.match(line); ok {
			return Set{Text: c.group(1).Text}, true
		}
	case SECTION:
		if c, ok := alt.match(line); ok {
			return SectionStart{Text: strings.TrimSpace(c.group(1).Text)}, true
		}
	case GENERIC:
		if c, ok := alt.match(line); ok {
			return Generic{Text: c.group(1).Text}, true
		}
	}

	return nil, false
}
