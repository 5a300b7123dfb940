//go:build nogui

package daemon

import (
	"github.com/frogworks/frogworks/internal/logging"
)

// headlessPresence stands in for the tray on builds without a GUI
// toolchain. It has no menu; shutdown comes from OS signals.
type headlessPresence struct {
	logger *logging.Logger
}

// NewPresence returns the headless presence task.
func NewPresence(logger *logging.Logger) Presence {
	return &headlessPresence{logger: logger}
}

func (p *headlessPresence) Run(shutdown *Signal) {
	p.logger.Info().Msg("Running without tray icon; stop with SIGINT/SIGTERM")
	shutdown.Wait()
}
