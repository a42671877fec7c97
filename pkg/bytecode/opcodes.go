package bytecode

import (
	"fmt"
	"sort"
	"strings"
)

// Opcode is the one-byte encoding of an instruction.
type Opcode byte

const (
	// ========================================================================
	// Halt and arithmetic (0x00-0x0F)
	// ========================================================================

	OpStop Opcode = 0x00 // Halt execution
	OpAdd  Opcode = 0x01 // Pop two, push sum
	OpMul  Opcode = 0x02 // Pop two, push product
	OpSub  Opcode = 0x03 // Pop two, push difference
	OpDiv  Opcode = 0x04 // Pop two, push quotient
	OpMod  Opcode = 0x06 // Pop two, push remainder

	// ========================================================================
	// Comparison and bitwise (0x10-0x1F)
	// ========================================================================

	OpLt     Opcode = 0x10 // Pop two, push 1 if a < b else 0
	OpGt     Opcode = 0x11 // Pop two, push 1 if a > b else 0
	OpEq     Opcode = 0x14 // Pop two, push 1 if equal else 0
	OpIsZero Opcode = 0x15 // Pop one, push 1 if zero else 0
	OpAnd    Opcode = 0x16 // Pop two, push bitwise AND
	OpOr     Opcode = 0x17 // Pop two, push bitwise OR
	OpXor    Opcode = 0x18 // Pop two, push bitwise XOR
	OpNot    Opcode = 0x19 // Pop one, push bitwise NOT

	// ========================================================================
	// External code (0x30-0x3F)
	// ========================================================================

	OpExtCodeCopy Opcode = 0x3C // Copy an external account's code to memory

	// ========================================================================
	// Stack and memory (0x50-0x5F)
	// ========================================================================

	OpPop    Opcode = 0x50 // Pop top of stack
	OpMload  Opcode = 0x51 // Pop address, push word loaded from memory
	OpMstore Opcode = 0x52 // Pop address and word, store word to memory

	// ========================================================================
	// Immediates (0x60-0x6F)
	// ========================================================================

	OpPush1 Opcode = 0x60 // Push one immediate byte: PUSH1 <byte>

	// ========================================================================
	// Duplication and exchange (0x80-0x9F)
	// ========================================================================

	OpDup1  Opcode = 0x80 // Duplicate top of stack
	OpSwap1 Opcode = 0x90 // Swap top two stack elements

	// ========================================================================
	// System (0xF0-0xFF)
	// ========================================================================

	OpCreate Opcode = 0xF0 // Create a contract from memory
	OpReturn Opcode = 0xF3 // Halt and return a memory range
)

// Hex returns the canonical two-digit lowercase hex encoding of the opcode.
func (op Opcode) Hex() string {
	return fmt.Sprintf("%02x", byte(op))
}

// Instruction is a closed tag over the assembler's vocabulary.
//
// The zero value InstrLiteral is the open variant: a word the mnemonic
// table does not recognize. Its text payload travels on the token, not
// here, and its encoding is the empty sentinel.
type Instruction int

const (
	InstrLiteral Instruction = iota

	InstrStop
	InstrAdd
	InstrMul
	InstrSub
	InstrDiv
	InstrMod
	InstrLt
	InstrGt
	InstrEq
	InstrIsZero
	InstrAnd
	InstrOr
	InstrXor
	InstrNot
	InstrExtCodeCopy
	InstrPop
	InstrMload
	InstrMstore
	InstrPush1
	InstrDup1
	InstrSwap1
	InstrCreate
	InstrReturn
)

// OpcodeInfo provides per-instruction metadata for emission, disassembly
// and editor tooling.
type OpcodeInfo struct {
	Name      string // Canonical mnemonic, upper case
	Code      Opcode // Fixed one-byte encoding
	Immediate bool   // Consumes the following token as immediate data
	Doc       string // One-line description
}

// opcodeInfoTable maps every fixed instruction to its metadata. InstrLiteral
// deliberately has no entry.
var opcodeInfoTable = map[Instruction]OpcodeInfo{
	InstrStop:        {"STOP", OpStop, false, "halt execution"},
	InstrAdd:         {"ADD", OpAdd, false, "pop two values, push their sum"},
	InstrMul:         {"MUL", OpMul, false, "pop two values, push their product"},
	InstrSub:         {"SUB", OpSub, false, "pop two values, push their difference"},
	InstrDiv:         {"DIV", OpDiv, false, "pop two values, push their quotient"},
	InstrMod:         {"MOD", OpMod, false, "pop two values, push the remainder"},
	InstrLt:          {"LT", OpLt, false, "pop two values, push 1 if less-than else 0"},
	InstrGt:          {"GT", OpGt, false, "pop two values, push 1 if greater-than else 0"},
	InstrEq:          {"EQ", OpEq, false, "pop two values, push 1 if equal else 0"},
	InstrIsZero:      {"ISZERO", OpIsZero, false, "pop one value, push 1 if zero else 0"},
	InstrAnd:         {"AND", OpAnd, false, "pop two values, push bitwise AND"},
	InstrOr:          {"OR", OpOr, false, "pop two values, push bitwise OR"},
	InstrXor:         {"XOR", OpXor, false, "pop two values, push bitwise XOR"},
	InstrNot:         {"NOT", OpNot, false, "pop one value, push bitwise NOT"},
	InstrExtCodeCopy: {"EXTCODECOPY", OpExtCodeCopy, false, "copy an external account's code to memory"},
	InstrPop:         {"POP", OpPop, false, "pop top of stack"},
	InstrMload:       {"MLOAD", OpMload, false, "load a word from memory"},
	InstrMstore:      {"MSTORE", OpMstore, false, "store a word to memory"},
	InstrPush1:       {"PUSH1", OpPush1, true, "push one immediate byte"},
	InstrDup1:        {"DUP1", OpDup1, false, "duplicate top of stack"},
	InstrSwap1:       {"SWAP1", OpSwap1, false, "swap top two stack elements"},
	InstrCreate:      {"CREATE", OpCreate, false, "create a contract from memory"},
	InstrReturn:      {"RETURN", OpReturn, false, "halt and return a memory range"},
}

// mnemonics maps lower-cased mnemonic names to instructions, built once at
// package init. Lookups are pure; the table never changes after start.
var mnemonics = func() map[string]Instruction {
	m := make(map[string]Instruction, len(opcodeInfoTable))
	for instr, info := range opcodeInfoTable {
		m[strings.ToLower(info.Name)] = instr
	}
	return m
}()

// byOpcode maps encodings back to instructions for the disassembler.
var byOpcode = func() map[Opcode]Instruction {
	m := make(map[Opcode]Instruction, len(opcodeInfoTable))
	for instr, info := range opcodeInfoTable {
		m[info.Code] = instr
	}
	return m
}()

// Lookup resolves a source word to an instruction, case-insensitively.
// A miss is not an error: the caller carries the word through as a Literal.
func Lookup(word string) (Instruction, bool) {
	instr, ok := mnemonics[strings.ToLower(word)]
	return instr, ok
}

// FromOpcode resolves an encoding back to its instruction.
func FromOpcode(op Opcode) (Instruction, bool) {
	instr, ok := byOpcode[op]
	return instr, ok
}

// Info returns the metadata for a fixed instruction. InstrLiteral and
// out-of-range tags report ok=false.
func (i Instruction) Info() (OpcodeInfo, bool) {
	info, ok := opcodeInfoTable[i]
	return info, ok
}

// String returns the canonical mnemonic, or "LITERAL" for the open variant.
func (i Instruction) String() string {
	if info, ok := opcodeInfoTable[i]; ok {
		return info.Name
	}
	if i == InstrLiteral {
		return "LITERAL"
	}
	return fmt.Sprintf("Instruction(%d)", int(i))
}

// Encoding returns the two-digit hex encoding of a fixed instruction, or
// the empty sentinel for InstrLiteral.
func (i Instruction) Encoding() string {
	if info, ok := opcodeInfoTable[i]; ok {
		return info.Code.Hex()
	}
	return ""
}

// Immediate reports whether the instruction consumes the following token
// as immediate data. PUSH1 is the sole such instruction in this vocabulary.
func (i Instruction) Immediate() bool {
	info, ok := opcodeInfoTable[i]
	return ok && info.Immediate
}

// Instructions returns all fixed instructions in mnemonic order.
func Instructions() []Instruction {
	instrs := make([]Instruction, 0, len(opcodeInfoTable))
	for instr := range opcodeInfoTable {
		instrs = append(instrs, instr)
	}
	sort.Slice(instrs, func(a, b int) bool {
		return instrs[a].String() < instrs[b].String()
	})
	return instrs
}

// Mnemonics returns all recognized mnemonic names in sorted order.
func Mnemonics() []string {
	names := make([]string, 0, len(opcodeInfoTable))
	for _, info := range opcodeInfoTable {
		names = append(names, info.Name)
	}
	sort.Strings(names)
	return names
}

// InstructionCount returns the number of fixed instructions.
func InstructionCount() int {
	return len(opcodeInfoTable)
}
