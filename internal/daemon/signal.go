// Package daemon orchestrates the single-instance Frogworks background
// agent: the instance lock branch, the relay server, and the tray
// presence task.
package daemon

import "sync"

// Signal is a single-shot, multi-waiter shutdown notification. Once
// signaled it stays signaled; all current and future waiters observe it,
// and signaling again is a no-op.
type Signal struct {
	once sync.Once
	ch   chan struct{}
}

// NewSignal creates an unsignaled Signal.
func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Fire signals shutdown. Safe to call from any goroutine, any number of times.
func (s *Signal) Fire() {
	s.once.Do(func() { close(s.ch) })
}

// Done returns a channel closed when the signal fires.
func (s *Signal) Done() <-chan struct{} {
	return s.ch
}

// Wait blocks until the signal fires.
func (s *Signal) Wait() {
	<-s.ch
}

// Fired reports whether the signal has fired.
func (s *Signal) Fired() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}
