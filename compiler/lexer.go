package compiler

import (
	"github.com/nyzd/easm/pkg/bytecode"
)

// ---------------------------------------------------------------------------
// Lexer: whitespace tokenizer with mnemonic resolution
// ---------------------------------------------------------------------------

// Lexer splits easm source on runs of whitespace and resolves each word
// through the mnemonic table. Space, tab, carriage return and newline are
// treated uniformly; line boundaries carry no semantic weight and survive
// only as token positions for diagnostics.
//
// Resolution never fails: a word the table does not recognize becomes a
// Literal token carrying its text. No word is ever dropped.
type Lexer struct {
	input string
	pos   int // current byte offset
	line  int // current line, 1-based
	col   int // current column, 1-based
}

// NewLexer creates a lexer for the given source text.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
		col:   1,
	}
}

// Next returns the next token. ok is false once the input is exhausted.
func (l *Lexer) Next() (tok Token, ok bool) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{}, false
	}

	pos := Position{Offset: l.pos, Line: l.line, Column: l.col}
	start := l.pos
	for l.pos < len(l.input) && !isSpace(l.input[l.pos]) {
		l.advance()
	}
	word := l.input[start:l.pos]

	instr, found := bytecode.Lookup(word)
	if !found {
		instr = bytecode.InstrLiteral
	}
	return Token{Instr: instr, Text: word, Pos: pos}, true
}

// skipWhitespace consumes a run of whitespace, tracking line and column.
func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.advance()
	}
}

// advance moves past the current byte. Words are ASCII in practice, but
// multi-byte runes inside a literal pass through untouched because only
// whitespace bytes delimit words.
func (l *Lexer) advance() {
	if l.input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// Tokenize returns all tokens from the input, in source order. Empty input
// yields an empty sequence.
func Tokenize(input string) []Token {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, ok := l.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
