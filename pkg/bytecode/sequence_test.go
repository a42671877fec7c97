package bytecode

import (
	"bytes"
	"testing"
)

func TestByteSequenceJoin(t *testing.T) {
	tests := []struct {
		name string
		seq  ByteSequence
		want string
	}{
		{"empty", ByteSequence{}, ""},
		{"nil", nil, ""},
		{"single", ByteSequence{"60"}, "60"},
		{"push and operand", ByteSequence{"60", "2a"}, "602a"},
		{"longer program", ByteSequence{"60", "01", "60", "02", "01", "f3"}, "6001600201f3"},
	}

	for _, tc := range tests {
		if got := tc.seq.Join(); got != tc.want {
			t.Errorf("%s: Join() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestByteSequenceBytes(t *testing.T) {
	seq := ByteSequence{"60", "2a", "50", "00"}
	raw, err := seq.Bytes()
	if err != nil {
		t.Fatalf("Bytes() returned error: %v", err)
	}
	want := []byte{0x60, 0x2a, 0x50, 0x00}
	if !bytes.Equal(raw, want) {
		t.Errorf("Bytes() = %x, want %x", raw, want)
	}
}

func TestByteSequenceBytesOddLength(t *testing.T) {
	seq := ByteSequence{"60", "2"}
	if _, err := seq.Bytes(); err == nil {
		t.Error("Bytes() of odd-length sequence should error")
	}
}

func TestByteSequenceBytesNonHex(t *testing.T) {
	seq := ByteSequence{"60", "zz"}
	if _, err := seq.Bytes(); err == nil {
		t.Error("Bytes() of non-hex sequence should error")
	}
}
