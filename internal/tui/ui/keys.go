package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap contains all key bindings for the TUI
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Actions
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
	Help   key.Binding

	// Lists
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Inline key.Binding

	// Editing mode
	MoveUp   key.Binding
	MoveDown key.Binding
	Reset    key.Binding

	// Timer
	Timer key.Binding

	// Forms and prompts
	NextField  key.Binding
	ToggleUnit key.Binding
	Confirm    key.Binding
	Deny       key.Binding

	// Themes and settings
	NextTheme key.Binding
	PrevTheme key.Binding
	Settings  key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation (vim + arrows)
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),

		// Actions
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		// Lists
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit mode"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Inline: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "edit exercise"),
		),

		// Editing mode
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset"),
		),

		// Timer
		Timer: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "start/stop timer"),
		),

		// Forms and prompts
		NextField: key.NewBinding(
			key.WithKeys("up", "down", "shift+tab"),
			key.WithHelp("↑/↓", "switch field"),
		),
		ToggleUnit: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "reps/secs"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),

		// Themes and settings
		NextTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		PrevTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "prev theme"),
		),
		Settings: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "settings"),
		),
	}
}
