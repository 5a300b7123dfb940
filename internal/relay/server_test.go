package relay

import (
	"context"
	"errors"
	"io"
	"net"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/frogworks/frogworks/internal/logging"
)

func newTestLogger() *logging.Logger {
	logger := logging.NewDaemonLogger()
	logger.SetOutput(io.Discard)
	return logger
}

// captureHandler records every dispatched argument list on a channel.
type captureHandler struct {
	got chan []string
}

func newCaptureHandler() *captureHandler {
	return &captureHandler{got: make(chan []string, 16)}
}

func (h *captureHandler) HandleArgs(args []string) {
	h.got <- args
}

func (h *captureHandler) wait(t *testing.T) []string {
	t.Helper()
	select {
	case args := <-h.got:
		return args
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for dispatched args")
		return nil
	}
}

// startTestServer runs a relay server on an ephemeral loopback port and
// returns it with a client pointed at it.
func startTestServer(t *testing.T, handler Handler) (*Server, *Client) {
	t.Helper()

	server := NewServer("127.0.0.1:0", handler, newTestLogger())
	server.SetReadTimeout(2 * time.Second)
	if err := server.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(server.Stop)

	return server, NewClientWithAddr(server.Addr().String())
}

func TestRelayDeliversArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "typical invocation", args: []string{"--open", "frogworks://store/42"}},
		{name: "empty invocation", args: []string{}},
		{name: "many args", args: makeArgs(300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newCaptureHandler()
			_, client := startTestServer(t, handler)

			if err := client.Relay(context.Background(), tt.args); err != nil {
				t.Fatalf("Relay: %v", err)
			}

			got := handler.wait(t)
			if !reflect.DeepEqual(got, tt.args) {
				t.Errorf("dispatched args = %v, want %v", got, tt.args)
			}
		})
	}
}

func makeArgs(n int) []string {
	args := make([]string, n)
	for i := range args {
		args[i] = "--arg-" + strconv.Itoa(i)
	}
	return args
}

func TestRelayEachInvocationDispatchesOnce(t *testing.T) {
	handler := newCaptureHandler()
	_, client := startTestServer(t, handler)

	const n = 5
	for i := 0; i < n; i++ {
		args := []string{"invocation", strconv.Itoa(i)}
		if err := client.Relay(context.Background(), args); err != nil {
			t.Fatalf("Relay %d: %v", i, err)
		}
	}

	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		got := handler.wait(t)
		if len(got) != 2 || got[0] != "invocation" {
			t.Fatalf("unexpected dispatch: %v", got)
		}
		if seen[got[1]] {
			t.Fatalf("invocation %s dispatched twice", got[1])
		}
		seen[got[1]] = true
	}

	select {
	case extra := <-handler.got:
		t.Errorf("unexpected extra dispatch: %v", extra)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRelayMalformedConnectionIsIsolated(t *testing.T) {
	handler := newCaptureHandler()
	server, client := startTestServer(t, handler)

	// A connection carrying garbage instead of a framed envelope gets
	// dropped without disturbing the server.
	conn, err := net.Dial("tcp", server.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	conn.Write([]byte{0x00, 0x00, 0x00, 0x08, 'n', 'o', 't', ' ', 'j', 's', 'o', 'n'})
	conn.Close()

	// So does one whose envelope decodes but has no kind.
	conn, err = net.Dial("tcp", server.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	WriteFrame(conn, []byte(`{"payload":["x"]}`))
	conn.Close()

	// A well-formed relay afterwards still goes through.
	want := []string{"--open", "frogworks://store/1"}
	if err := client.Relay(context.Background(), want); err != nil {
		t.Fatalf("Relay after malformed connections: %v", err)
	}
	if got := handler.wait(t); !reflect.DeepEqual(got, want) {
		t.Errorf("dispatched args = %v, want %v", got, want)
	}
}

func TestRelaySilentConnectionTimesOut(t *testing.T) {
	handler := newCaptureHandler()
	server := NewServer("127.0.0.1:0", handler, newTestLogger())
	server.SetReadTimeout(100 * time.Millisecond)
	if err := server.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer server.Stop()

	// Connect and send nothing; the server must drop the connection
	// rather than hold it open.
	conn, err := net.Dial("tcp", server.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	buf := make([]byte, 1)
	if _, err := conn.Read(buf); err == nil {
		t.Fatal("expected the server to close the silent connection")
	}

	// The server keeps serving after the timeout.
	client := NewClientWithAddr(server.Addr().String())
	want := []string{"still", "alive"}
	if err := client.Relay(context.Background(), want); err != nil {
		t.Fatalf("Relay after timeout: %v", err)
	}
	if got := handler.wait(t); !reflect.DeepEqual(got, want) {
		t.Errorf("dispatched args = %v, want %v", got, want)
	}
}

func TestRelayUnknownKindIgnored(t *testing.T) {
	handler := newCaptureHandler()
	server, client := startTestServer(t, handler)

	conn, err := net.Dial("tcp", server.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	WriteFrame(conn, []byte(`{"kind":"telemetry","payload":{}}`))
	conn.Close()

	want := []string{"after", "unknown"}
	if err := client.Relay(context.Background(), want); err != nil {
		t.Fatalf("Relay: %v", err)
	}
	if got := handler.wait(t); !reflect.DeepEqual(got, want) {
		t.Errorf("dispatched args = %v, want %v", got, want)
	}
}

func TestClientUnreachable(t *testing.T) {
	// Bind a port and close it so nothing is listening there.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	client := NewClientWithAddr(addr)
	client.SetTimeout(500 * time.Millisecond)

	err = client.Relay(context.Background(), []string{"nobody", "home"})
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("Relay = %v, want ErrUnreachable", err)
	}
}

func TestServerStopUnblocksAccept(t *testing.T) {
	server := NewServer("127.0.0.1:0", newCaptureHandler(), newTestLogger())
	if err := server.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	done := make(chan struct{})
	go func() {
		server.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return")
	}
}
