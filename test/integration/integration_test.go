// Package integration exercises the whole toolchain end to end: manifest
// load, assembly, artifact serialization and disassembly round trips.
package integration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nyzd/easm/compiler"
	"github.com/nyzd/easm/dist"
	"github.com/nyzd/easm/manifest"
	"github.com/nyzd/easm/pkg/bytecode"
)

const counterSource = `PUSH1 0x00
MLOAD
PUSH1 0x01
ADD
PUSH1 0x00
MSTORE
STOP
`

func TestProjectBuildRoundTrip(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "easm.toml"), []byte(`
[project]
name = "counter"

[source]
entry = "counter.easm"

[output]
hex = "counter.hex"
artifact = "counter.easmc"
`), 0o644)
	if err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "counter.easm"), []byte(counterSource), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	m, err := manifest.Load(dir)
	if err != nil {
		t.Fatalf("manifest.Load: %v", err)
	}

	source, err := os.ReadFile(m.EntryPath())
	if err != nil {
		t.Fatalf("read entry: %v", err)
	}

	seq, err := compiler.Assemble(string(source))
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	wantHex := "60005160010160005200"
	if seq.Join() != wantHex {
		t.Fatalf("hex = %q, want %q", seq.Join(), wantHex)
	}

	// Artifact round trip through the wire format.
	a, err := dist.Build(m.Source.Entry, string(source))
	if err != nil {
		t.Fatalf("dist.Build: %v", err)
	}
	data, err := dist.MarshalArtifact(a)
	if err != nil {
		t.Fatalf("MarshalArtifact: %v", err)
	}
	if err := os.WriteFile(m.ArtifactPath(), data, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	raw, err := os.ReadFile(m.ArtifactPath())
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	back, err := dist.UnmarshalArtifact(raw)
	if err != nil {
		t.Fatalf("UnmarshalArtifact: %v", err)
	}
	if back.Bytecode != wantHex {
		t.Errorf("artifact bytecode = %q, want %q", back.Bytecode, wantHex)
	}
	if !back.VerifySource(string(source)) {
		t.Error("artifact does not verify against its source")
	}
}

func TestAssembleDisassembleRoundTrip(t *testing.T) {
	seq, err := compiler.Assemble(counterSource)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}

	listing, err := bytecode.Disassemble(seq.Join())
	if err != nil {
		t.Fatalf("Disassemble: %v", err)
	}

	// Every mnemonic of the source appears in the listing, in order.
	want := []string{"PUSH1 0x00", "MLOAD", "PUSH1 0x01", "ADD", "PUSH1 0x00", "MSTORE", "STOP"}
	rest := listing
	for _, mnemonic := range want {
		idx := strings.Index(rest, mnemonic)
		if idx < 0 {
			t.Fatalf("listing missing %q in order:\n%s", mnemonic, listing)
		}
		rest = rest[idx+len(mnemonic):]
	}
}

func TestMalformedProjectFailsAtomically(t *testing.T) {
	seq, err := compiler.Assemble("MSTORE PUSH1")
	if err == nil {
		t.Fatalf("Assemble = %v, want error", seq)
	}
	if seq != nil {
		t.Errorf("partial output %v returned alongside error", seq)
	}
}
