package server

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/nyzd/easm/compiler"
	"github.com/nyzd/easm/pkg/bytecode"
)

// Procedure paths for the assembler service. easm has no protobuf schema;
// messages are plain structs served through the JSON codec, so the paths
// are declared here instead of generated.
const (
	AssembleProcedure    = "/easm.v1.AssemblerService/Assemble"
	CheckSyntaxProcedure = "/easm.v1.AssemblerService/CheckSyntax"
	ListOpcodesProcedure = "/easm.v1.AssemblerService/ListOpcodes"
)

// AssembleRequest asks for source text to be assembled.
type AssembleRequest struct {
	Source string `json:"source"`
	Name   string `json:"name,omitempty"`
}

// AssembleResponse carries the assembled program.
type AssembleResponse struct {
	Bytecode string   `json:"bytecode"`           // joined hex line
	Sequence []string `json:"sequence"`           // one entry per emitted opcode or operand
	Listing  string   `json:"listing,omitempty"`  // disassembly, when the hex decodes cleanly
}

// Diagnostic is one assembly failure, by taxonomy kind.
type Diagnostic struct {
	Kind    string `json:"kind"` // "missing-operand" or "malformed-operand"
	Message string `json:"message"`
	Line    int    `json:"line"`   // 1-based
	Column  int    `json:"column"` // 1-based
}

// CheckSyntaxRequest asks whether source text assembles.
type CheckSyntaxRequest struct {
	Source string `json:"source"`
}

// CheckSyntaxResponse reports validity; assembly failures surface as
// diagnostics, never as transport errors.
type CheckSyntaxResponse struct {
	Valid       bool         `json:"valid"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// ListOpcodesRequest asks for the mnemonic table.
type ListOpcodesRequest struct{}

// OpcodeEntry is one row of the mnemonic table.
type OpcodeEntry struct {
	Mnemonic  string `json:"mnemonic"`
	Encoding  string `json:"encoding"`
	Immediate bool   `json:"immediate"`
	Doc       string `json:"doc"`
}

// ListOpcodesResponse carries the full table in mnemonic order.
type ListOpcodesResponse struct {
	Opcodes []OpcodeEntry `json:"opcodes"`
}

// AssemblerService exposes the assembly pipeline over Connect.
type AssemblerService struct{}

// NewAssemblerService creates an AssemblerService.
func NewAssemblerService() *AssemblerService {
	return &AssemblerService{}
}

// Assemble translates source text into bytecode.
func (s *AssemblerService) Assemble(
	ctx context.Context,
	req *connect.Request[AssembleRequest],
) (*connect.Response[AssembleResponse], error) {
	source := req.Msg.Source
	if source == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("source is required"))
	}

	seq, err := compiler.Assemble(source)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	resp := &AssembleResponse{
		Bytecode: seq.Join(),
		Sequence: seq,
	}
	// Best effort: operand text is emitted verbatim, so the hex line may
	// not decode to whole bytes. No listing in that case.
	if listing, err := bytecode.Disassemble(resp.Bytecode); err == nil {
		resp.Listing = listing
	}
	return connect.NewResponse(resp), nil
}

// CheckSyntax validates source text without returning bytecode.
func (s *AssemblerService) CheckSyntax(
	ctx context.Context,
	req *connect.Request[CheckSyntaxRequest],
) (*connect.Response[CheckSyntaxResponse], error) {
	_, err := compiler.Assemble(req.Msg.Source)
	if err == nil {
		return connect.NewResponse(&CheckSyntaxResponse{Valid: true}), nil
	}

	return connect.NewResponse(&CheckSyntaxResponse{
		Valid:       false,
		Diagnostics: []Diagnostic{diagnosticFromError(err)},
	}), nil
}

// ListOpcodes returns the full mnemonic table.
func (s *AssemblerService) ListOpcodes(
	ctx context.Context,
	req *connect.Request[ListOpcodesRequest],
) (*connect.Response[ListOpcodesResponse], error) {
	instrs := bytecode.Instructions()
	entries := make([]OpcodeEntry, 0, len(instrs))
	for _, instr := range instrs {
		info, ok := instr.Info()
		if !ok {
			continue
		}
		entries = append(entries, OpcodeEntry{
			Mnemonic:  info.Name,
			Encoding:  info.Code.Hex(),
			Immediate: info.Immediate,
			Doc:       info.Doc,
		})
	}
	return connect.NewResponse(&ListOpcodesResponse{Opcodes: entries}), nil
}

// diagnosticFromError converts an assembly error into a Diagnostic,
// classifying it by the emitter's taxonomy.
func diagnosticFromError(err error) Diagnostic {
	d := Diagnostic{
		Kind:    "error",
		Message: err.Error(),
		Line:    1,
		Column:  1,
	}

	switch {
	case errors.Is(err, compiler.ErrMissingOperand):
		d.Kind = "missing-operand"
	case errors.Is(err, compiler.ErrMalformedOperand):
		d.Kind = "malformed-operand"
	}

	var emitErr *compiler.EmitError
	if errors.As(err, &emitErr) {
		d.Line = emitErr.Pos.Line
		d.Column = emitErr.Pos.Column
	}
	return d
}
