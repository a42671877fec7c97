package compiler

import (
	"errors"
	"fmt"

	"github.com/nyzd/easm/pkg/bytecode"
)

// ---------------------------------------------------------------------------
// Emitter error taxonomy
// ---------------------------------------------------------------------------

// Sentinel errors for the two ways a token sequence can be malformed.
// Callers match them with errors.Is; the wrapping EmitError carries the
// position detail.
var (
	// ErrMissingOperand: an operand-carrying instruction is the last token.
	ErrMissingOperand = errors.New("missing operand")

	// ErrMalformedOperand: the token following an operand-carrying
	// instruction is itself a recognized instruction, not a literal.
	ErrMalformedOperand = errors.New("malformed operand")
)

// EmitError is a fatal emission failure. There is no partial-output mode:
// when the emitter returns an EmitError the whole translation is aborted
// and no byte sequence accompanies it.
type EmitError struct {
	Err   error                // ErrMissingOperand or ErrMalformedOperand
	Instr bytecode.Instruction // the operand-carrying instruction
	Got   string               // offending token text; empty when input ended
	Pos   Position             // instruction position, or offending token position
}

func (e *EmitError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("compiler: %s at %s: %v (got instruction %q)", e.Instr, e.Pos, e.Err, e.Got)
	}
	return fmt.Sprintf("compiler: %s at %s: %v", e.Instr, e.Pos, e.Err)
}

func (e *EmitError) Unwrap() error {
	return e.Err
}
