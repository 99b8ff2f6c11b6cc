package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the fixed keyboard bindings. Enter and esc are not listed
// here; they are attached as key hooks by the views that own them.
type keyMap struct {
	// Global
	Quit        key.Binding
	ForceQuit   key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	Logs        key.Binding
	SwitchPane  key.Binding
	ToggleLeft  key.Binding
	ToggleRight key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Results
	Select key.Binding

	// Details
	RateUp   key.Binding
	RateDown key.Binding
	Add      key.Binding

	// Watched
	Delete key.Binding

	// Log overlay
	Refresh      key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Logs: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Activity log"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "Switch pane"),
		),
		ToggleLeft: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Collapse results"),
		),
		ToggleRight: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Collapse right box"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		Select: key.NewBinding(
			key.WithKeys(" ", "o", "l", "right"),
			key.WithHelp("space/o", "Open or close movie"),
		),

		RateUp: key.NewBinding(
			key.WithKeys("l", "right", "+"),
			key.WithHelp("l/right", "Rate higher"),
		),
		RateDown: key.NewBinding(
			key.WithKeys("h", "left", "-"),
			key.WithHelp("h/left", "Rate lower"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add to watched"),
		),

		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x/d", "Remove from watched"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Reload log"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "Half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Half page down"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings grouped for the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchPane, k.Up, k.Down, k.Top, k.Bottom},
		{k.Select},
		{k.RateUp, k.RateDown, k.Add},
		{k.Delete},
		{k.ToggleLeft, k.ToggleRight, k.CycleTheme, k.Logs, k.Help, k.Quit},
	}
}
