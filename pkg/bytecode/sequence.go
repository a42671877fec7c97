package bytecode

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ByteSequence is the ordered output of the emitter: one hex-string entry
// per emitted opcode or operand. It is append-only and never reordered;
// entry order is the instruction order.
type ByteSequence []string

// Join concatenates the sequence with no separator into the final
// bytecode line.
func (s ByteSequence) Join() string {
	return strings.Join(s, "")
}

// Bytes decodes the joined sequence into raw bytes. The emitter performs
// no width validation, so decoding can fail on odd-length or non-hex
// operand text; that is the first place such input surfaces.
func (s ByteSequence) Bytes() ([]byte, error) {
	joined := s.Join()
	raw, err := hex.DecodeString(joined)
	if err != nil {
		return nil, fmt.Errorf("bytecode: decode %q: %w", joined, err)
	}
	return raw, nil
}

func (s ByteSequence) String() string {
	return s.Join()
}
