// Package instance enforces single-instance execution of the Frogworks
// daemon via an OS-arbitrated lock file.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrAlreadyHeld means another process on this machine holds the lock.
var ErrAlreadyHeld = errors.New("instance: lock already held by another process")

// Lock is an exclusively held instance lock. The OS releases the
// underlying file lock when the process exits by any path, so correctness
// never depends on Release being called.
type Lock struct {
	path string
	lock *flock.Flock
}

// Acquire takes the named lock without blocking. It returns ErrAlreadyHeld
// when another process owns it, and any other error for registration
// failures (these are fatal for the caller; falling back to multi-instance
// behavior is never acceptable).
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("instance: create lock directory: %w", err)
	}

	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("instance: register lock %s: %w", path, err)
	}
	if !ok {
		return nil, ErrAlreadyHeld
	}

	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock early. Process exit releases it regardless.
func (l *Lock) Release() error {
	return l.lock.Unlock()
}
