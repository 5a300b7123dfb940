package daemon

import (
	"sync"
	"testing"
	"time"
)

func TestSignalStartsUnfired(t *testing.T) {
	s := NewSignal()
	if s.Fired() {
		t.Error("new signal reports fired")
	}
	select {
	case <-s.Done():
		t.Error("Done channel closed before Fire")
	default:
	}
}

func TestSignalWakesAllWaiters(t *testing.T) {
	s := NewSignal()

	const waiters = 8
	var wg sync.WaitGroup
	wg.Add(waiters)
	for i := 0; i < waiters; i++ {
		go func() {
			defer wg.Done()
			s.Wait()
		}()
	}

	s.Fire()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("waiters not released after Fire")
	}
}

func TestSignalLateWaiterObservesFired(t *testing.T) {
	s := NewSignal()
	s.Fire()

	if !s.Fired() {
		t.Error("Fired = false after Fire")
	}

	// A waiter arriving after the fire must not block.
	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("late waiter blocked on a fired signal")
	}
}

func TestSignalRepeatedFireIsNoop(t *testing.T) {
	s := NewSignal()

	// Concurrent and repeated fires must neither panic nor deadlock.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Fire()
			s.Fire()
		}()
	}
	wg.Wait()

	if !s.Fired() {
		t.Error("Fired = false after Fire")
	}
}
