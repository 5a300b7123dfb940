package daemon

// Presence keeps the primary instance visible to the user (tray icon and
// menu) until shutdown. Run registers the UI affordance once, suspends
// until the shared Signal fires, then returns so the process can exit.
// At least one of its actions fires the Signal (the Quit menu item).
type Presence interface {
	Run(shutdown *Signal)
}
