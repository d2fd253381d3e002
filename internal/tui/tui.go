// Package tui provides the Terminal User Interface for the wl application.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xolan/wl/internal/app"
	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/service"
	"github.com/xolan/wl/internal/tui/ui"
	"github.com/xolan/wl/internal/tui/views"
)

// Screen identifies the active screen
type Screen int

const (
	ScreenTitles Screen = iota
	ScreenWorkout
	ScreenSettings
)

// Model is the root TUI model
type Model struct {
	services *service.Services
	bridge   *timerBridge

	// UI state
	screen   Screen
	width    int
	height   int
	showHelp bool
	flash    string
	flashErr bool

	// Screens
	titlesView   views.TitlesModel
	workoutView  views.WorkoutModel
	settingsView views.SettingsModel

	// Theme and styles
	themeProvider *ui.ThemeProvider
	styles        ui.Styles
	keys          ui.KeyMap
}

// New creates a new TUI model. Close releases its timer subscription.
func New(services *service.Services) Model {
	themeProvider := ui.NewThemeProvider(services.Config.Get().Theme)
	styles := themeProvider.Styles()
	keys := ui.DefaultKeyMap()

	return Model{
		services:      services,
		bridge:        newTimerBridge(services.Timer),
		screen:        ScreenTitles,
		themeProvider: themeProvider,
		styles:        styles,
		keys:          keys,
		titlesView:    views.NewTitlesModel(services, styles, keys),
		workoutView:   views.NewWorkoutModel(services, styles, keys),
		settingsView:  views.NewSettingsModel(services, themeProvider, styles, keys),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.titlesView.Init(),
		m.bridge.wait(),
	)
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.flash = ""
		modal := m.isModalInputMode()
		capturing := m.isCapturingKeys()

		switch {
		case msg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(msg, m.keys.Quit) && !capturing:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help) && !capturing:
			m.showHelp = !m.showHelp
			return m, nil
		case m.showHelp:
			if key.Matches(msg, m.keys.Back) {
				m.showHelp = false
			}
			return m, nil
		case key.Matches(msg, m.keys.NextTheme) && !modal:
			return m, requestTheme(m.themeProvider.NextTheme())
		case key.Matches(msg, m.keys.PrevTheme) && !modal:
			return m, requestTheme(m.themeProvider.PreviousTheme())
		case key.Matches(msg, m.keys.Settings) && !modal && m.screen == ScreenTitles:
			m.screen = ScreenSettings
			return m, m.settingsView.Init()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - 4 // header and status bar
		m.titlesView.SetSize(m.width, contentHeight)
		m.workoutView.SetSize(m.width, contentHeight)
		m.settingsView.SetSize(m.width, contentHeight)
		return m, nil

	case timerEventMsg:
		m.workoutView, cmd = m.workoutView.Update(ui.TimerEventMsg(msg))
		return m, tea.Batch(cmd, m.bridge.wait())

	case ui.TimerEventMsg:
		m.workoutView, cmd = m.workoutView.Update(msg)
		return m, cmd

	case ui.FlashMsg:
		m.flash = msg.Text
		m.flashErr = msg.Error
		return m, nil

	case views.OpenWorkoutMsg:
		m.screen = ScreenWorkout
		return m, m.workoutView.Open(msg.Title)

	case views.CloseWorkoutMsg:
		m.screen = ScreenTitles
		return m, m.titlesView.Init()

	case views.CloseSettingsMsg:
		m.screen = ScreenTitles
		return m, nil

	case ui.ThemeChangeRequestMsg:
		m.themeProvider.SetTheme(msg.ThemeName)
		name := m.themeProvider.CurrentName()
		m.styles = m.themeProvider.Styles()

		themeMsg := ui.ThemeChangedMsg{ThemeName: name, Styles: m.styles}
		m.titlesView, _ = m.titlesView.Update(themeMsg)
		m.workoutView, _ = m.workoutView.Update(themeMsg)
		m.settingsView, _ = m.settingsView.Update(themeMsg)

		return m, m.saveThemeConfig(name)
	}

	switch m.screen {
	case ScreenTitles:
		m.titlesView, cmd = m.titlesView.Update(msg)
	case ScreenWorkout:
		m.workoutView, cmd = m.workoutView.Update(msg)
	case ScreenSettings:
		m.settingsView, cmd = m.settingsView.Update(msg)
	}
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.screen {
	case ScreenTitles:
		b.WriteString(m.titlesView.View())
	case ScreenWorkout:
		b.WriteString(m.workoutView.View())
	case ScreenSettings:
		b.WriteString(m.settingsView.View())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	return m.styles.App.Render(b.String())
}

// renderHeader renders the screen title, the editing badge and the running countdown
func (m Model) renderHeader() string {
	var title string
	switch m.screen {
	case ScreenTitles:
		title = m.styles.ViewTitle.Render("Workouts")
	case ScreenWorkout:
		title = m.styles.ViewTitle.Render("Workouts › " + m.workoutView.Title())
		if m.workoutView.Editing() {
			title += " " + m.styles.Badge.Render("EDITING")
		}
	case ScreenSettings:
		title = m.styles.ViewTitle.Render("Settings")
	}

	if session := m.services.Timer.Session(); session.Active() {
		countdown := m.styles.TimerRunning.Render("● ") +
			m.styles.TimerRemaining.Render(cli.FormatSeconds(session.Remaining))
		padding := m.width - lipgloss.Width(title) - lipgloss.Width(countdown) - 4
		title += strings.Repeat(" ", max(padding, 2)) + countdown
	}

	return m.styles.Header.Render(title)
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	if m.flash != "" {
		style := m.styles.Success
		if m.flashErr {
			style = m.styles.Error
		}
		return m.styles.StatusBar.Render(style.Render(m.flash))
	}

	var parts []string

	switch {
	case m.isCapturingKeys():
		if m.screen == ScreenWorkout {
			parts = append(parts, m.renderKeyHelp("tab", "reps/secs"))
			parts = append(parts, m.renderKeyHelp("↑/↓", "switch field"))
		}
		parts = append(parts, m.renderKeyHelp("enter", "save"))
		parts = append(parts, m.renderKeyHelp("esc", "cancel"))
	case m.isModalInputMode() && m.screen == ScreenSettings:
		parts = append(parts, m.renderKeyHelp("↑/↓", "navigate"))
		parts = append(parts, m.renderKeyHelp("enter", "select"))
		parts = append(parts, m.renderKeyHelp("esc", "cancel"))
	case m.isModalInputMode():
		parts = append(parts, m.renderKeyHelp("y", "confirm"))
		parts = append(parts, m.renderKeyHelp("n/esc", "cancel"))
	default:
		switch m.screen {
		case ScreenTitles:
			parts = append(parts, m.renderKeyHelp("enter", "open"))
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("d", "delete"))
			parts = append(parts, m.renderKeyHelp("c", "settings"))
		case ScreenWorkout:
			parts = append(parts, m.renderKeyHelp("enter/space", "timer"))
			parts = append(parts, m.renderKeyHelp("n", "new"))
			parts = append(parts, m.renderKeyHelp("i", "edit"))
			if m.workoutView.Editing() {
				parts = append(parts, m.renderKeyHelp("J/K", "move"))
				parts = append(parts, m.renderKeyHelp("d", "delete"))
				parts = append(parts, m.renderKeyHelp("R", "reset"))
				parts = append(parts, m.renderKeyHelp("e", "done"))
			} else {
				parts = append(parts, m.renderKeyHelp("e", "edit mode"))
			}
			parts = append(parts, m.renderKeyHelp("esc", "back"))
		case ScreenSettings:
			parts = append(parts, m.renderKeyHelp("enter", "themes"))
			parts = append(parts, m.renderKeyHelp("esc", "back"))
		}

		parts = append(parts, m.renderKeyHelp("t/T", "theme"))
		parts = append(parts, m.renderKeyHelp("?", "help"))
		parts = append(parts, m.renderKeyHelp("q", "quit"))
	}

	content := strings.Join(parts, "  ")

	padding := m.width - lipgloss.Width(content)
	if padding > 0 {
		content += strings.Repeat(" ", padding)
	}

	return m.styles.StatusBar.Render(content)
}

// renderKeyHelp renders a single key help item
func (m Model) renderKeyHelp(key, desc string) string {
	return fmt.Sprintf("%s %s",
		m.styles.StatusKey.Render(key),
		m.styles.StatusHelp.Render(desc))
}

// isModalInputMode reports whether a form, confirmation or selector is open, which
// blocks theme switching and screen changes
func (m Model) isModalInputMode() bool {
	switch m.screen {
	case ScreenTitles:
		return m.titlesView.IsModal()
	case ScreenWorkout:
		return m.workoutView.IsModal()
	case ScreenSettings:
		return m.settingsView.IsModal()
	}
	return false
}

// isCapturingKeys reports whether a text input has the keyboard
func (m Model) isCapturingKeys() bool {
	switch m.screen {
	case ScreenTitles:
		return m.titlesView.IsInputMode()
	case ScreenWorkout:
		return m.workoutView.IsInputMode()
	}
	return false
}

// saveThemeConfig persists the theme to the config file
func (m Model) saveThemeConfig(themeName string) tea.Cmd {
	return func() tea.Msg {
		cfg := m.services.Config.Get()
		if cfg.Theme == themeName {
			return nil
		}
		cfg.Theme = themeName
		if err := m.services.Config.Update(cfg); err != nil {
			m.services.Logger.Warn("failed to save theme", "theme", themeName, "error", err)
			return ui.FlashMsg{Text: "Failed to save theme: " + err.Error(), Error: true}
		}
		return nil
	}
}

func requestTheme(name string) tea.Cmd {
	return func() tea.Msg { return ui.ThemeChangeRequestMsg{ThemeName: name} }
}

// Screen returns the active screen
func (m Model) Screen() Screen {
	return m.screen
}

// Close cancels the timer subscription
func (m Model) Close() {
	m.bridge.close()
}

// renderHelpOverlay renders the keyboard shortcuts for the active screen
func (m Model) renderHelpOverlay() string {
	var help strings.Builder

	help.WriteString(m.styles.DialogTitle.Render("Keyboard Shortcuts"))
	help.WriteString("\n")

	help.WriteString(m.styles.Label.Render("Global:"))
	help.WriteString("\n")
	help.WriteString("  t/T          Next/previous theme\n")
	help.WriteString("  ?            Toggle help\n")
	help.WriteString("  q            Quit\n")
	help.WriteString("\n")

	switch m.screen {
	case ScreenTitles:
		help.WriteString(m.styles.Label.Render("Workouts:"))
		help.WriteString("\n")
		help.WriteString("  j/k          Navigate up/down\n")
		help.WriteString("  enter        Open workout\n")
		help.WriteString("  n            New workout\n")
		help.WriteString("  d            Delete workout\n")
		help.WriteString("  c            Settings\n")
	case ScreenWorkout:
		help.WriteString(m.styles.Label.Render("Exercises:"))
		help.WriteString("\n")
		help.WriteString("  j/k          Navigate up/down\n")
		help.WriteString("  enter/space  Start/stop countdown\n")
		help.WriteString("  n            New exercise\n")
		help.WriteString("  i            Edit exercise\n")
		help.WriteString("  e            Toggle edit mode\n")
		help.WriteString("  J/K          Move down/up (edit mode)\n")
		help.WriteString("  d            Delete (edit mode)\n")
		help.WriteString("  R            Reset to defaults (edit mode)\n")
		help.WriteString("  esc          Back to workouts\n")
	case ScreenSettings:
		help.WriteString(m.styles.Label.Render("Settings:"))
		help.WriteString("\n")
		help.WriteString("  enter        Open theme selector\n")
		help.WriteString("  j/k          Navigate themes\n")
		help.WriteString("  esc          Back\n")
	}

	help.WriteString("\n")
	help.WriteString(m.styles.Hint.Render("Press ? to close"))

	return m.styles.App.Render(m.styles.Dialog.Render(help.String()))
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%s tui: %w", app.Name, err)
	}
	return nil
}
