package bytecode

import (
	"strings"
	"testing"
)

func TestLookupCanonicalMnemonics(t *testing.T) {
	tests := []struct {
		word string
		want Instruction
	}{
		{"MSTORE", InstrMstore},
		{"MLOAD", InstrMload},
		{"CREATE", InstrCreate},
		{"EXTCODECOPY", InstrExtCodeCopy},
		{"PUSH1", InstrPush1},
		{"POP", InstrPop},
		{"DUP1", InstrDup1},
		{"SWAP1", InstrSwap1},
		{"STOP", InstrStop},
		{"ADD", InstrAdd},
		{"XOR", InstrXor},
		{"RETURN", InstrReturn},
	}

	for _, tc := range tests {
		got, ok := Lookup(tc.word)
		if !ok {
			t.Errorf("Lookup(%q) not found", tc.word)
			continue
		}
		if got != tc.want {
			t.Errorf("Lookup(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	for _, instr := range Instructions() {
		name := instr.String()
		lower := strings.ToLower(name)
		variants := []string{
			lower,
			strings.ToUpper(name),
			strings.ToUpper(lower[:1]) + lower[1:],
		}
		for _, v := range variants {
			got, ok := Lookup(v)
			if !ok {
				t.Errorf("Lookup(%q) not found", v)
				continue
			}
			if got != instr {
				t.Errorf("Lookup(%q) = %v, want %v", v, got, instr)
			}
		}
	}
}

func TestLookupMissIsNotAnError(t *testing.T) {
	for _, word := range []string{"0x2a", "42", "PUSH32", "bogus", ""} {
		if instr, ok := Lookup(word); ok {
			t.Errorf("Lookup(%q) = %v, want a miss", word, instr)
		}
	}
}

func TestFixedEncodings(t *testing.T) {
	tests := []struct {
		instr Instruction
		want  string
	}{
		{InstrStop, "00"},
		{InstrAdd, "01"},
		{InstrMul, "02"},
		{InstrSub, "03"},
		{InstrDiv, "04"},
		{InstrMod, "06"},
		{InstrLt, "10"},
		{InstrGt, "11"},
		{InstrEq, "14"},
		{InstrIsZero, "15"},
		{InstrAnd, "16"},
		{InstrOr, "17"},
		{InstrXor, "18"},
		{InstrNot, "19"},
		{InstrExtCodeCopy, "3c"},
		{InstrPop, "50"},
		{InstrMload, "51"},
		{InstrMstore, "52"},
		{InstrPush1, "60"},
		{InstrDup1, "80"},
		{InstrSwap1, "90"},
		{InstrCreate, "f0"},
		{InstrReturn, "f3"},
	}

	if len(tests) != InstructionCount() {
		t.Errorf("test covers %d instructions, table has %d", len(tests), InstructionCount())
	}
	for _, tc := range tests {
		if got := tc.instr.Encoding(); got != tc.want {
			t.Errorf("%v.Encoding() = %q, want %q", tc.instr, got, tc.want)
		}
	}
}

func TestEncodingsAreTwoLowercaseHexDigits(t *testing.T) {
	for _, instr := range Instructions() {
		enc := instr.Encoding()
		if len(enc) != 2 {
			t.Errorf("%v.Encoding() = %q, want two hex digits", instr, enc)
		}
		if enc != strings.ToLower(enc) {
			t.Errorf("%v.Encoding() = %q, want lowercase", instr, enc)
		}
	}
}

func TestLiteralHasSentinelEncoding(t *testing.T) {
	if enc := InstrLiteral.Encoding(); enc != "" {
		t.Errorf("InstrLiteral.Encoding() = %q, want empty sentinel", enc)
	}
	if _, ok := InstrLiteral.Info(); ok {
		t.Error("InstrLiteral.Info() should report ok=false")
	}
	if InstrLiteral.String() != "LITERAL" {
		t.Errorf("InstrLiteral.String() = %q, want LITERAL", InstrLiteral.String())
	}
}

func TestPush1IsTheOnlyImmediateInstruction(t *testing.T) {
	for _, instr := range Instructions() {
		want := instr == InstrPush1
		if got := instr.Immediate(); got != want {
			t.Errorf("%v.Immediate() = %t, want %t", instr, got, want)
		}
	}
	if InstrLiteral.Immediate() {
		t.Error("InstrLiteral.Immediate() = true, want false")
	}
}

func TestFromOpcodeRoundTrip(t *testing.T) {
	for _, instr := range Instructions() {
		info, ok := instr.Info()
		if !ok {
			t.Fatalf("%v has no info", instr)
		}
		back, ok := FromOpcode(info.Code)
		if !ok {
			t.Errorf("FromOpcode(0x%02x) not found", byte(info.Code))
			continue
		}
		if back != instr {
			t.Errorf("FromOpcode(0x%02x) = %v, want %v", byte(info.Code), back, instr)
		}
	}
}

func TestFromOpcodeUnknown(t *testing.T) {
	if instr, ok := FromOpcode(0xFE); ok {
		t.Errorf("FromOpcode(0xFE) = %v, want a miss", instr)
	}
}

func TestMnemonicsSortedAndComplete(t *testing.T) {
	names := Mnemonics()
	if len(names) != InstructionCount() {
		t.Fatalf("Mnemonics() has %d entries, want %d", len(names), InstructionCount())
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Mnemonics() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
