package instance

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestAcquireExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.lock")

	lock, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	defer lock.Release()

	if lock.Path() != path {
		t.Errorf("Path = %q, want %q", lock.Path(), path)
	}

	// A second holder must be refused while the first still holds it.
	if _, err := Acquire(path); !errors.Is(err, ErrAlreadyHeld) {
		t.Errorf("second Acquire = %v, want ErrAlreadyHeld", err)
	}
}

func TestAcquireAfterRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.lock")

	lock, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := lock.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	again, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire after Release: %v", err)
	}
	again.Release()
}

func TestAcquireCreatesLockDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "daemon.lock")

	lock, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire with missing parent directory: %v", err)
	}
	lock.Release()
}
