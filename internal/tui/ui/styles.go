package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles contains all the styles used in the TUI
type Styles struct {
	App lipgloss.Style

	// Header
	Header    lipgloss.Style
	ViewTitle lipgloss.Style
	Badge     lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusKey  lipgloss.Style
	StatusHelp lipgloss.Style

	// Rows
	RowSelected lipgloss.Style
	RowNormal   lipgloss.Style
	RowIndex    lipgloss.Style

	// Exercises
	EntryLabel lipgloss.Style
	EntryValue lipgloss.Style
	EntryUnit  lipgloss.Style

	// Timer
	TimerRunning   lipgloss.Style
	TimerRemaining lipgloss.Style

	// Forms
	Label        lipgloss.Style
	Hint         lipgloss.Style
	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Dialog
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style

	// Messages
	Error   lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
}

// NewStylesFromRegistry creates a Styles struct using colors from a bubbletint registry.
// Theme colors map to UI elements as follows:
//   - Purple: titles, focused inputs, dialogs
//   - Cyan: key hints, units
//   - BrightPurple: values and the countdown
//   - BrightBlack: labels, indices, selection background
//   - Green/Yellow/Red: success, warnings, errors
func NewStylesFromRegistry(r *tint.Registry) Styles {
	primary := r.Purple()
	secondary := r.Cyan()
	accent := r.BrightPurple()
	muted := r.BrightBlack()
	success := r.Green()
	warning := r.Yellow()
	errorColor := r.Red()
	fg := r.Fg()
	bg := r.Bg()

	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1).
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(muted),
		ViewTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Badge: lipgloss.NewStyle().
			Foreground(bg).
			Background(warning).
			Bold(true).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(fg).
			Background(bg).
			Padding(0, 1),
		StatusKey: lipgloss.NewStyle().
			Foreground(secondary).
			Bold(true),
		StatusHelp: lipgloss.NewStyle().
			Foreground(muted),

		RowSelected: lipgloss.NewStyle().
			Background(muted).
			Bold(true),
		RowNormal: lipgloss.NewStyle(),
		RowIndex: lipgloss.NewStyle().
			Foreground(muted).
			Width(5),

		EntryLabel: lipgloss.NewStyle().
			Foreground(fg).
			Width(28),
		EntryValue: lipgloss.NewStyle().
			Foreground(accent).
			Width(10).
			Align(lipgloss.Right),
		EntryUnit: lipgloss.NewStyle().
			Foreground(secondary).
			PaddingLeft(1),

		TimerRunning: lipgloss.NewStyle().
			Foreground(success).
			Bold(true),
		TimerRemaining: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(muted),
		Hint: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2).
			Width(50),
		DialogTitle: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true).
			MarginBottom(1),

		Error: lipgloss.NewStyle().
			Foreground(errorColor),
		Warning: lipgloss.NewStyle().
			Foreground(warning),
		Success: lipgloss.NewStyle().
			Foreground(success),
	}
}
