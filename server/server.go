// Package server exposes the assembler to editors and tooling: a Connect
// RPC service over HTTP and an LSP server over stdio.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"connectrpc.com/connect"
)

// jsonCodec serves plain Go structs as application/json. It replaces the
// default protobuf-backed JSON codec, which easm cannot use because it
// defines no protobuf schema.
type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// EasmServer serves the assembler service on an HTTP mux.
type EasmServer struct {
	mux *http.ServeMux
}

// New creates an EasmServer with all service handlers mounted.
func New() *EasmServer {
	svc := NewAssemblerService()

	s := &EasmServer{mux: http.NewServeMux()}
	s.mux.Handle(AssembleProcedure, connect.NewUnaryHandler(
		AssembleProcedure, svc.Assemble, connect.WithCodec(jsonCodec{})))
	s.mux.Handle(CheckSyntaxProcedure, connect.NewUnaryHandler(
		CheckSyntaxProcedure, svc.CheckSyntax, connect.WithCodec(jsonCodec{})))
	s.mux.Handle(ListOpcodesProcedure, connect.NewUnaryHandler(
		ListOpcodesProcedure, svc.ListOpcodes, connect.WithCodec(jsonCodec{})))
	return s
}

// Handler returns the underlying HTTP handler, for tests and embedding.
func (s *EasmServer) Handler() http.Handler {
	return s.mux
}

// ListenAndServe starts the HTTP server on the given address.
// The address should be in the form "host:port" or ":port".
func (s *EasmServer) ListenAndServe(addr string) error {
	fmt.Printf("easm assembler service listening on %s\n", addr)
	fmt.Printf("  Connect (HTTP/JSON): http://%s%s\n", addr, AssembleProcedure)
	return http.ListenAndServe(addr, s.mux)
}
