package daemon

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frogworks/frogworks/internal/config"
	"github.com/frogworks/frogworks/internal/instance"
	"github.com/frogworks/frogworks/internal/logging"
	"github.com/frogworks/frogworks/internal/relay"
)

// relayTimeout bounds the secondary invocation's attempt to reach the
// primary instance.
const relayTimeout = 5 * time.Second

// Daemon is the process orchestrator. Exactly one instance per machine
// becomes primary (relay server + tray presence); every other invocation
// relays its arguments to the primary and exits.
type Daemon struct {
	lockPath string
	addr     string
	handler  relay.Handler
	presence Presence
	logger   *logging.Logger
}

// New creates a daemon wired with the production lock path, relay address,
// args handler, and tray presence.
func New(logger *logging.Logger) *Daemon {
	return &Daemon{
		lockPath: config.LockFilePath(),
		addr:     relay.Addr,
		handler:  NewArgsHandler(logger),
		presence: NewPresence(logger),
		logger:   logger,
	}
}

// Run executes the daemon state machine with the given startup arguments
// (excluding the program name) and returns the process exit code.
//
// The instance lock is taken synchronously before any concurrent work
// starts; the relay server and presence task only ever run with
// exclusivity confirmed.
func (d *Daemon) Run(args []string) int {
	lock, err := instance.Acquire(d.lockPath)
	if errors.Is(err, instance.ErrAlreadyHeld) {
		return d.runRelay(args)
	}
	if err != nil {
		// Registration failure other than "already held" is fatal; a
		// silent fallback to multi-instance behavior is never acceptable.
		d.logger.Error().Err(err).Msg("Failed to register instance lock")
		return 1
	}
	defer lock.Release()

	return d.runPrimary()
}

// runRelay is the secondary invocation path: forward the arguments to the
// primary instance and exit, reflecting the relay outcome in the exit
// code. It never retries and never promotes itself to primary.
func (d *Daemon) runRelay(args []string) int {
	d.logger.Debug().Strs("args", args).Msg("Primary instance already running, relaying arguments")

	ctx, cancel := context.WithTimeout(context.Background(), relayTimeout)
	defer cancel()

	client := relay.NewClientWithAddr(d.addr)
	if err := client.Relay(ctx, args); err != nil {
		if errors.Is(err, relay.ErrUnreachable) {
			d.logger.Error().Err(err).Msg("Could not reach the running Frogworks instance")
		} else {
			d.logger.Error().Err(err).Msg("Failed to relay arguments to the running instance")
		}
		return 1
	}

	d.logger.Info().Msg("Arguments relayed to the running instance")
	return 0
}

// runPrimary is the primary instance path: serve the relay, show the tray
// presence, and block until shutdown is requested.
func (d *Daemon) runPrimary() int {
	shutdown := NewSignal()

	server := relay.NewServer(d.addr, d.handler, d.logger)
	if err := server.Start(); err != nil {
		// Only possible if the instance lock was somehow bypassed.
		d.logger.Error().Err(err).Str("addr", d.addr).Msg("Failed to bind relay address")
		return 1
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		shutdown.Fire()
	}()

	d.logger.Info().Msg("Frogworks daemon running as primary instance")

	// Blocks the main goroutine until shutdown fires; systray requires it.
	d.presence.Run(shutdown)
	shutdown.Wait()

	// No graceful drain: in-flight relays that lose their connection
	// surface a transport failure to their own caller. The stop here is
	// bounded by the server's read deadline.
	server.Stop()
	d.logger.Info().Msg("Frogworks daemon stopped")
	return 0
}
