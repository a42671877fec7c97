// Package dist defines the serialized artifact format for assembled
// programs: a CBOR envelope carrying the bytecode, a listing, and a content
// hash of the source it was built from.
package dist

import (
	"crypto/sha256"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/nyzd/easm/compiler"
	"github.com/nyzd/easm/pkg/bytecode"
)

// ArtifactVersion is the current artifact format version. Increment when
// making incompatible changes to the envelope.
const ArtifactVersion = 1

// cborEncMode uses canonical mode so the same artifact always encodes to
// the same bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("dist: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Artifact is one assembled program.
type Artifact struct {
	Version   int      `cbor:"version"`
	Name      string   `cbor:"name"`
	SourceSum [32]byte `cbor:"source_sum"` // SHA-256 of the source text
	Bytecode  string   `cbor:"bytecode"`   // joined hex line
	Listing   string   `cbor:"listing"`    // disassembly of Bytecode
}

// Build assembles source into an artifact. The name is recorded verbatim,
// typically the source file path.
func Build(name, source string) (*Artifact, error) {
	seq, err := compiler.Assemble(source)
	if err != nil {
		return nil, err
	}

	hex := seq.Join()
	listing, err := bytecode.Disassemble(hex)
	if err != nil {
		return nil, fmt.Errorf("dist: listing for %s: %w", name, err)
	}

	return &Artifact{
		Version:   ArtifactVersion,
		Name:      name,
		SourceSum: sha256.Sum256([]byte(source)),
		Bytecode:  hex,
		Listing:   listing,
	}, nil
}

// MarshalArtifact serializes an artifact to CBOR bytes.
func MarshalArtifact(a *Artifact) ([]byte, error) {
	return cborEncMode.Marshal(a)
}

// UnmarshalArtifact deserializes an artifact from CBOR bytes. A version the
// current code does not understand is an error.
func UnmarshalArtifact(data []byte) (*Artifact, error) {
	var a Artifact
	if err := cbor.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("dist: unmarshal artifact: %w", err)
	}
	if a.Version != ArtifactVersion {
		return nil, fmt.Errorf("dist: unsupported artifact version %d (want %d)", a.Version, ArtifactVersion)
	}
	return &a, nil
}

// VerifySource reports whether the artifact was built from exactly the
// given source text.
func (a *Artifact) VerifySource(source string) bool {
	return a.SourceSum == sha256.Sum256([]byte(source))
}
