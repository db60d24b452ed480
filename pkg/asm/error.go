package asm

import "errors"

// ErrUnterminatedFinalLine is reported when the buffer ends without a line
// terminator. The statement for that line is still produced.
var ErrUnterminatedFinalLine = errors.New("unterminated final line")
