package compiler

import (
	"strings"

	"github.com/nyzd/easm/pkg/bytecode"
)

// ---------------------------------------------------------------------------
// Emitter: token sequence to byte sequence
// ---------------------------------------------------------------------------

// Emitter walks a token sequence once, left to right, converting each token
// into its opcode encoding. A single lookahead rule handles the one
// operand-carrying instruction: its following token must be a literal and is
// emitted as the immediate bytes.
//
// The cursor advances exactly one token per plain instruction and exactly
// two per instruction-plus-operand pair; nothing is skipped or revisited.
type Emitter struct {
	tokens []Token
	cursor int
}

// NewEmitter creates an emitter over the given token sequence. The sequence
// is consumed exactly once by Emit.
func NewEmitter(tokens []Token) *Emitter {
	return &Emitter{tokens: tokens}
}

// next returns the token under the cursor and advances past it.
func (e *Emitter) next() (Token, bool) {
	if e.cursor >= len(e.tokens) {
		return Token{}, false
	}
	tok := e.tokens[e.cursor]
	e.cursor++
	return tok, true
}

// Emit produces the byte sequence for the token sequence.
//
// Rules, per token:
//   - operand-carrying instruction: emit its encoding, then require the next
//     token to be a literal and emit the literal's hex digits (one optional
//     0x prefix stripped, no padding or width validation)
//   - any other fixed instruction: emit its encoding
//   - standalone literal: emit its payload under the same rule an operand
//     obeys, the optional 0x prefix stripped
//
// Reaching the end of input while an operand is expected is fatal. On any
// error the translation aborts with no partial output.
func (e *Emitter) Emit() (bytecode.ByteSequence, error) {
	out := bytecode.ByteSequence{}

	for {
		tok, ok := e.next()
		if !ok {
			return out, nil
		}

		switch {
		case tok.Instr.Immediate():
			out = append(out, tok.Instr.Encoding())

			operand, ok := e.next()
			if !ok {
				return nil, &EmitError{
					Err:   ErrMissingOperand,
					Instr: tok.Instr,
					Pos:   tok.Pos,
				}
			}
			if !operand.IsLiteral() {
				return nil, &EmitError{
					Err:   ErrMalformedOperand,
					Instr: tok.Instr,
					Got:   operand.Text,
					Pos:   operand.Pos,
				}
			}
			out = append(out, stripHexPrefix(operand.Text))

		case tok.IsLiteral():
			out = append(out, stripHexPrefix(tok.Text))

		default:
			out = append(out, tok.Instr.Encoding())
		}
	}
}

// stripHexPrefix removes one optional 0x/0X prefix. Idempotent on text that
// carries none.
func stripHexPrefix(s string) string {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}
