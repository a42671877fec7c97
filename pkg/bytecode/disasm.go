package bytecode

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Disassemble renders a bytecode hex string as a human-readable listing.
//
// Each line shows the byte offset, the raw bytes, and the mnemonic. An
// instruction with an immediate consumes the following byte and renders it
// as 0xNN. Bytes that decode to no known opcode render as DATA; a missing
// immediate at end of input is an error.
func Disassemble(src string) (string, error) {
	cleaned := strings.TrimSpace(src)
	if strings.HasPrefix(cleaned, "0x") || strings.HasPrefix(cleaned, "0X") {
		cleaned = cleaned[2:]
	}

	code, err := hex.DecodeString(cleaned)
	if err != nil {
		return "", fmt.Errorf("bytecode: disassemble: %w", err)
	}

	var sb strings.Builder
	for pc := 0; pc < len(code); {
		op := Opcode(code[pc])
		instr, known := FromOpcode(op)

		if !known {
			sb.WriteString(fmt.Sprintf("%04x  %02x       DATA 0x%02x\n", pc, code[pc], code[pc]))
			pc++
			continue
		}

		if instr.Immediate() {
			if pc+1 >= len(code) {
				return "", fmt.Errorf("bytecode: disassemble: %s at offset %04x is missing its immediate byte", instr, pc)
			}
			sb.WriteString(fmt.Sprintf("%04x  %02x %02x    %s 0x%02x\n",
				pc, code[pc], code[pc+1], instr, code[pc+1]))
			pc += 2
			continue
		}

		sb.WriteString(fmt.Sprintf("%04x  %02x       %s\n", pc, code[pc], instr))
		pc++
	}

	return sb.String(), nil
}
