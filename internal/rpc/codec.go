// Package rpc defines the wire surface of the Vensoc API: request/response
// messages, procedure names, and handler/client constructors for Connect.
//
// The API has no proto IDL. Messages are plain structs marshaled with a JSON
// codec, and the constructors mirror the shape protoc-generated Connect code
// would have: NewXServiceHandler returns a route prefix plus an
// http.Handler, NewXServiceClient wraps per-procedure Connect clients.
package rpc

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// codec marshals messages with encoding/json. Registered under the "json"
// codec name, it carries plain Go structs over the Connect protocol on both
// the handler and client sides.
type codec struct{}

func (codec) Name() string { return "json" }

func (codec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

func (codec) Unmarshal(data []byte, message any) error {
	return json.Unmarshal(data, message)
}

// handlerOptions prepends the JSON codec so callers may still layer
// interceptors on top.
func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(codec{})}, opts...)
}

// clientOptions mirrors handlerOptions for the client side.
func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(codec{})}, opts...)
}
