// Package compiler translates easm mnemonic assembly into a flat sequence
// of hexadecimal opcode bytes.
//
// The pipeline has exactly two stages run in strict order: the lexer splits
// the source on whitespace and resolves every word through the mnemonic
// table, then the emitter walks the resulting token sequence once with a
// single-lookahead cursor. Each stage owns and consumes its input exactly
// once; there is no shared mutable state and no partial output on failure.
package compiler

import (
	"github.com/nyzd/easm/pkg/bytecode"
)

// Assemble translates source text into its byte sequence. The lexer runs to
// completion before emission starts. Empty input yields an empty sequence
// and no error; any malformed token sequence aborts the whole run with an
// *EmitError.
func Assemble(source string) (bytecode.ByteSequence, error) {
	tokens := Tokenize(source)
	return NewEmitter(tokens).Emit()
}
