// Package api defines the splitledger RPC surface: message types, the JSON
// codec they travel in, and Connect handler/client constructors for each service.
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec marshals plain Go messages as JSON. It registers under the "json"
// name, so Connect serves it for application/json requests.
type Codec struct{}

func (Codec) Name() string { return "json" }

func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (Codec) Unmarshal(data []byte, msg any) error {
	return json.Unmarshal(data, msg)
}

// WithCodec is the option every handler and client in this package starts from.
func WithCodec() connect.Option {
	return connect.WithCodec(Codec{})
}
