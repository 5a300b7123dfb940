package relay

import (
	"errors"
	"reflect"
	"testing"
)

func TestArgsEnvelopeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no args", args: []string{}},
		{name: "single arg", args: []string{"frogworks://store/7"}},
		{name: "flag pair", args: []string{"--open", "frogworks://store/7"}},
		{name: "args with spaces and unicode", args: []string{"--name", "Frogworks Deluxe Edition", "--note", "héllo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := NewArgsEnvelope(tt.args)
			if err != nil {
				t.Fatalf("NewArgsEnvelope: %v", err)
			}

			data, err := env.Encode()
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}

			decoded, err := DecodeEnvelope(data)
			if err != nil {
				t.Fatalf("DecodeEnvelope: %v", err)
			}
			if decoded.Kind != KindArgs {
				t.Errorf("kind = %q, want %q", decoded.Kind, KindArgs)
			}

			args, err := decoded.Args()
			if err != nil {
				t.Fatalf("Args: %v", err)
			}
			if !reflect.DeepEqual(args, tt.args) {
				t.Errorf("args = %v, want %v", args, tt.args)
			}
		})
	}
}

func TestDecodeEnvelopeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "missing kind", data: `{"payload":["a"]}`, wantErr: ErrMissingKind},
		{name: "empty kind", data: `{"kind":"","payload":["a"]}`, wantErr: ErrMissingKind},
		{name: "not json", data: `not json at all`},
		{name: "wrong top-level type", data: `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEnvelope([]byte(tt.data))
			if err == nil {
				t.Fatal("DecodeEnvelope succeeded on malformed input")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestArgsOnWrongKind(t *testing.T) {
	env := &Envelope{Kind: "status", Payload: []byte(`{}`)}
	if _, err := env.Args(); err == nil {
		t.Error("Args on non-args envelope succeeded")
	}
}

func TestArgsMalformedPayload(t *testing.T) {
	env := &Envelope{Kind: KindArgs, Payload: []byte(`{"not":"a list"}`)}
	if _, err := env.Args(); err == nil {
		t.Error("Args on non-array payload succeeded")
	}
}
