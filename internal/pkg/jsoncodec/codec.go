// Package jsoncodec registers a gRPC codec that carries plain Go structs as
// JSON. Clients select it with grpc.CallContentSubtype(jsoncodec.Name).
package jsoncodec

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// Name is the codec name and the content-subtype on the wire
const Name = "json"

// Codec marshals gRPC messages with encoding/json
type Codec struct{}

// Marshal encodes v as JSON
func (Codec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v
func (Codec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name returns the registered codec name
func (Codec) Name() string {
	return Name
}

func init() {
	encoding.RegisterCodec(Codec{})
}
