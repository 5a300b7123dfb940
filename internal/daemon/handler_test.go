package daemon

import (
	"io"
	"reflect"
	"testing"

	"github.com/frogworks/frogworks/internal/logging"
)

func newTestLogger() *logging.Logger {
	logger := logging.NewDaemonLogger()
	logger.SetOutput(io.Discard)
	return logger
}

func TestHandleArgsExtractsURIs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "bare uri",
			args: []string{"frogworks://store/42"},
			want: []string{"frogworks://store/42"},
		},
		{
			name: "open flag",
			args: []string{"--open", "frogworks://store/42"},
			want: []string{"frogworks://store/42"},
		},
		{
			name: "open flag with non-uri value",
			args: []string{"--open", "some-view"},
			want: []string{"some-view"},
		},
		{
			name: "mixed",
			args: []string{"frogworks://a", "--verbose", "--open", "frogworks://b"},
			want: []string{"frogworks://a", "frogworks://b"},
		},
		{
			name: "trailing open flag without value",
			args: []string{"--open"},
			want: nil,
		},
		{
			name: "no uris",
			args: []string{"--verbose", "status"},
			want: nil,
		},
		{
			name: "empty invocation",
			args: []string{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewArgsHandler(newTestLogger())
			var got []string
			h.OpenURI = func(uri string) { got = append(got, uri) }

			h.HandleArgs(tt.args)

			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("opened uris = %v, want %v", got, tt.want)
			}
		})
	}
}
