package compiler

import (
	"fmt"

	"github.com/nyzd/easm/pkg/bytecode"
)

// ---------------------------------------------------------------------------
// Tokens for the easm lexer
// ---------------------------------------------------------------------------

// Position is a location in the source text.
type Position struct {
	Offset int // byte offset, 0-based
	Line   int // 1-based
	Column int // 1-based, in bytes
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is one resolved source word: an instruction tag paired with the raw
// text as written and the position of its first byte. For a Literal the
// text is the payload; for a fixed instruction it is the mnemonic in the
// author's original casing.
type Token struct {
	Instr bytecode.Instruction
	Text  string
	Pos   Position
}

// IsLiteral reports whether the token carries the open Literal variant.
func (t Token) IsLiteral() bool {
	return t.Instr == bytecode.InstrLiteral
}

func (t Token) String() string {
	if t.IsLiteral() {
		return fmt.Sprintf("LITERAL(%q)", t.Text)
	}
	return t.Instr.String()
}
