// Package bytecode defines the easm instruction vocabulary and its fixed
// one-byte encodings.
//
// The vocabulary is a small, EVM-flavored set of stack-machine operations.
// Every instruction except the open Literal variant has an immutable,
// globally fixed encoding, rendered as two lowercase hex digits. Anything
// the mnemonic table does not recognize flows through the pipeline as a
// Literal carrying its raw text; interpretation of that text is deferred to
// the emitter.
//
// The package also holds the output side of the pipeline:
//
//   - ByteSequence: the append-ordered list of emitted hex strings, joined
//     with no separator into the final bytecode line
//
//   - Disassemble: the reverse direction, rendering a bytecode hex string
//     as an offset-annotated listing
package bytecode
