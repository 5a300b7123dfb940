package relay

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrUnreachable means no primary instance answered on the relay address.
// The instance lock said one exists, so it died between the lock check and
// the connect attempt; the caller reports this and exits rather than
// promoting itself, which would race a second starting primary.
var ErrUnreachable = errors.New("relay: primary instance unreachable")

// ErrTransport means the connection was established but the message could
// not be written in full.
var ErrTransport = errors.New("relay: transport failure")

// Client transmits the startup arguments of a secondary invocation to the
// primary instance. It is fire-and-forget: transport write success is the
// only confirmation, there is no application-level acknowledgment.
type Client struct {
	addr    string
	timeout time.Duration
}

// NewClient creates a relay client for the fixed loopback address.
func NewClient() *Client {
	return NewClientWithAddr(Addr)
}

// NewClientWithAddr creates a relay client for a custom address. Used in tests.
func NewClientWithAddr(addr string) *Client {
	return &Client{
		addr:    addr,
		timeout: 2 * time.Second,
	}
}

// SetTimeout sets the dial and write timeout.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

// Relay sends the argument sequence to the primary instance as a single
// framed "args" envelope and closes the connection.
func (c *Client) Relay(ctx context.Context, args []string) error {
	env, err := NewArgsEnvelope(args)
	if err != nil {
		return err
	}
	payload, err := env.Encode()
	if err != nil {
		return fmt.Errorf("relay: encode envelope: %w", err)
	}

	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(c.timeout))

	if err := WriteFrame(conn, payload); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return nil
}
