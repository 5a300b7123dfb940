// Package relay implements the loopback channel between a secondary
// Frogworks invocation and the primary daemon instance.
//
// A secondary invocation (for example the handler of a frogworks:// URI
// click) never becomes a second daemon: it forwards its command-line
// arguments to the primary instance over a fixed loopback TCP port and
// exits. Messages travel as length-prefixed frames, each containing one
// tagged JSON envelope.
package relay

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Addr is the fixed loopback address the relay server listens on. Both
// sides know it at build time; it is not user-configurable.
const Addr = "127.0.0.1:41923"

// Kind tags an envelope with its message variant.
type Kind string

// KindArgs carries the command-line arguments of a secondary invocation.
// The set of kinds is closed today; dispatch ignores unknown tags so new
// variants can be added without breaking old peers.
const KindArgs Kind = "args"

// Envelope is the tagged message exchanged over the loopback channel.
type Envelope struct {
	Kind    Kind            `json:"kind"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ErrMissingKind is returned when a decoded envelope has no kind tag.
var ErrMissingKind = errors.New("relay: envelope missing kind")

// NewArgsEnvelope builds an "args" envelope from an argument sequence.
func NewArgsEnvelope(args []string) (*Envelope, error) {
	payload, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("relay: encode args payload: %w", err)
	}
	return &Envelope{Kind: KindArgs, Payload: payload}, nil
}

// Args decodes the payload of an "args" envelope.
func (e *Envelope) Args() ([]string, error) {
	if e.Kind != KindArgs {
		return nil, fmt.Errorf("relay: envelope kind %q is not %q", e.Kind, KindArgs)
	}
	var args []string
	if err := json.Unmarshal(e.Payload, &args); err != nil {
		return nil, fmt.Errorf("relay: decode args payload: %w", err)
	}
	return args, nil
}

// Encode serializes the envelope to JSON bytes.
func (e *Envelope) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// DecodeEnvelope deserializes an envelope from JSON bytes. The kind tag
// must be present; the payload is left opaque for the dispatcher.
func DecodeEnvelope(data []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("relay: decode envelope: %w", err)
	}
	if env.Kind == "" {
		return nil, ErrMissingKind
	}
	return &env, nil
}
