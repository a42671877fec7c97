package server

import (
	"context"

	"connectrpc.com/connect"
)

func bg() context.Context {
	return context.Background()
}

func connectReq[T any](msg *T) *connect.Request[T] {
	return connect.NewRequest(msg)
}
