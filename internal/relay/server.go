package relay

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/frogworks/frogworks/internal/logging"
)

// Handler receives dispatched relay messages. The daemon implements it to
// re-enter command handling with the relayed argument sequence.
type Handler interface {
	// HandleArgs is called with the relayed arguments, intact and in order.
	HandleArgs(args []string)
}

// DefaultReadTimeout bounds how long a connection may take to deliver a
// complete frame before it is dropped.
const DefaultReadTimeout = 10 * time.Second

// Server accepts relay connections from secondary invocations, decodes
// their envelopes, and dispatches them by kind. It is run only by the
// primary instance, after the instance lock is held.
type Server struct {
	addr        string
	handler     Handler
	logger      *logging.Logger
	readTimeout time.Duration

	listener net.Listener
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewServer creates a relay server bound to addr. Pass Addr for the fixed
// production endpoint; tests use "127.0.0.1:0".
func NewServer(addr string, handler Handler, logger *logging.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:        addr,
		handler:     handler,
		logger:      logger,
		readTimeout: DefaultReadTimeout,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// SetReadTimeout configures the per-connection read deadline. Must be
// called before Start.
func (s *Server) SetReadTimeout(d time.Duration) {
	s.readTimeout = d
}

// Start binds the listener and begins accepting connections. A bind
// failure is returned to the caller; it is fatal for the daemon since the
// instance lock should have made the address ours.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	s.listener = listener

	s.logger.Info().Str("addr", listener.Addr().String()).Msg("Relay server listening")

	s.wg.Add(1)
	go s.acceptLoop()

	return nil
}

// Addr returns the bound listener address. Only valid after Start.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Stop closes the listener and waits for in-flight handlers to finish.
func (s *Server) Stop() {
	s.cancel()
	if s.listener != nil {
		s.listener.Close()
	}
	s.wg.Wait()
}

// acceptLoop accepts connections until the server is stopped. A single
// failed accept is logged and the loop continues.
func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				return
			default:
				s.logger.Warn().Err(err).Msg("Failed to accept relay connection")
				continue
			}
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection reads one framed envelope from the connection and
// dispatches it. Every error here is scoped to this connection: it is
// logged, the connection is dropped, and the accept loop carries on.
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(s.readTimeout))

	payload, err := ReadFrame(conn)
	if err != nil {
		s.logger.Warn().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("Failed to read relay frame")
		return
	}

	env, err := DecodeEnvelope(payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("remote", conn.RemoteAddr().String()).Msg("Failed to decode relay envelope")
		return
	}

	s.dispatch(env)
}

// dispatch routes an envelope by kind. Unknown kinds are logged and
// dropped, never fatal.
func (s *Server) dispatch(env *Envelope) {
	switch env.Kind {
	case KindArgs:
		args, err := env.Args()
		if err != nil {
			s.logger.Warn().Err(err).Msg("Malformed args payload")
			return
		}
		s.logger.Debug().Strs("args", args).Msg("Dispatching relayed args")
		s.handler.HandleArgs(args)
	default:
		s.logger.Warn().Str("kind", string(env.Kind)).Msg("Ignoring relay envelope of unknown kind")
	}
}
