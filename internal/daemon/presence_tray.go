//go:build !nogui

package daemon

import (
	"fyne.io/systray"

	"github.com/frogworks/frogworks/internal/logging"
)

// trayPresence shows the Frogworks tray icon. systray.Run must own the
// main goroutine on some platforms, so the orchestrator calls Run last,
// after the relay server is already serving.
type trayPresence struct {
	logger *logging.Logger
}

// NewPresence returns the tray presence task. Builds with the nogui tag
// get a headless variant instead.
func NewPresence(logger *logging.Logger) Presence {
	return &trayPresence{logger: logger}
}

func (p *trayPresence) Run(shutdown *Signal) {
	onReady := func() {
		systray.SetTitle("Frogworks")
		systray.SetTooltip("Frogworks")

		mHello := systray.AddMenuItem("Hello", "Log a greeting")
		systray.AddSeparator()
		mQuit := systray.AddMenuItem("Quit", "Stop the Frogworks daemon")

		go func() {
			for {
				select {
				case <-mHello.ClickedCh:
					p.logger.Info().Msg("Hello!")
				case <-mQuit.ClickedCh:
					p.logger.Info().Msg("Quit requested from tray")
					shutdown.Fire()
					return
				case <-shutdown.Done():
					return
				}
			}
		}()

		// An externally fired shutdown (OS signal) must also tear the
		// tray down, not just the Quit click.
		go func() {
			shutdown.Wait()
			systray.Quit()
		}()
	}

	onExit := func() {
		shutdown.Fire()
	}

	systray.Run(onReady, onExit)
}
