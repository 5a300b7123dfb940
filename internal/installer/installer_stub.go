//go:build !windows

package installer

import "errors"

// ErrUnsupported is returned on platforms without a registry; the URI
// scheme is registered through desktop entries by the packaging instead.
var ErrUnsupported = errors.New("installer: only supported on Windows")

func install(Layout) error {
	return ErrUnsupported
}

func uninstall() error {
	return ErrUnsupported
}
