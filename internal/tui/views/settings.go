package views

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/wl/internal/config"
	"github.com/xolan/wl/internal/service"
	"github.com/xolan/wl/internal/tui/ui"
)

// maxVisibleThemes is the maximum number of themes to show at once
const maxVisibleThemes = 10

// SettingsModel shows the effective configuration and a theme selector
type SettingsModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width     int
	height    int
	config    config.Config
	path      string
	exists    bool
	dataDir   string
	themeName string

	// Theme selector state
	selectingTheme bool
	themes         []string
	themeCursor    int
	themeOffset    int
}

// CloseSettingsMsg is sent when the user leaves the settings screen.
type CloseSettingsMsg struct{}

// settingsLoadedMsg is sent when the configuration is loaded
type settingsLoadedMsg struct {
	config  config.Config
	path    string
	exists  bool
	dataDir string
}

// NewSettingsModel creates a new settings screen model
func NewSettingsModel(services *service.Services, themeProvider *ui.ThemeProvider, styles ui.Styles, keys ui.KeyMap) SettingsModel {
	themes := themeProvider.AvailableThemes()
	current := themeProvider.CurrentName()

	return SettingsModel{
		services:    services,
		styles:      styles,
		keys:        keys,
		themes:      themes,
		themeName:   current,
		themeCursor: max(slices.Index(themes, current), 0),
	}
}

// Init implements tea.Model
func (m SettingsModel) Init() tea.Cmd {
	return m.loadSettings()
}

// Update implements tea.Model
func (m SettingsModel) Update(msg tea.Msg) (SettingsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.selectingTheme {
			return m.handleThemeSelection(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Select):
			m.selectingTheme = true
			m.updateThemeOffset()
			return m, nil
		case key.Matches(msg, m.keys.Back):
			return m, func() tea.Msg { return CloseSettingsMsg{} }
		}

	case settingsLoadedMsg:
		m.config = msg.config
		m.path = msg.path
		m.exists = msg.exists
		m.dataDir = msg.dataDir

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		m.themeName = msg.ThemeName
		if i := slices.Index(m.themes, msg.ThemeName); i >= 0 {
			m.themeCursor = i
		}
		return m, nil
	}

	return m, nil
}

// handleThemeSelection handles keys when the theme selector is open
func (m SettingsModel) handleThemeSelection(msg tea.KeyMsg) (SettingsModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
			m.updateThemeOffset()
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if len(m.themes) == 0 {
			return m, nil
		}
		selected := m.themes[m.themeCursor]
		m.selectingTheme = false
		return m, func() tea.Msg { return ui.ThemeChangeRequestMsg{ThemeName: selected} }

	case key.Matches(msg, m.keys.Back):
		m.selectingTheme = false
		m.themeCursor = max(slices.Index(m.themes, m.themeName), 0)
		return m, nil
	}

	return m, nil
}

// updateThemeOffset adjusts the scroll offset to keep the cursor visible
func (m *SettingsModel) updateThemeOffset() {
	if m.themeCursor < m.themeOffset {
		m.themeOffset = m.themeCursor
	} else if m.themeCursor >= m.themeOffset+maxVisibleThemes {
		m.themeOffset = m.themeCursor - maxVisibleThemes + 1
	}
}

// View implements tea.Model
func (m SettingsModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderLine("config file", m.path))
	b.WriteString(m.styles.Label.Render(fmt.Sprintf("%-16s", "status:")))
	b.WriteString(" ")
	if m.exists {
		b.WriteString(m.styles.Success.Render("file exists"))
	} else {
		b.WriteString(m.styles.Warning.Render("using defaults (no config file)"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderLine("data dir", m.dataDir))
	b.WriteString(m.renderLine("backend", m.config.Backend))
	templatesDir := m.config.TemplatesDir
	if templatesDir == "" {
		templatesDir = "(bundled only)"
	}
	b.WriteString(m.renderLine("templates dir", templatesDir))
	b.WriteString(m.renderLine("default workout", m.config.DefaultWorkout))
	b.WriteString(m.renderLine("bell", fmt.Sprintf("%t", m.config.Bell)))
	b.WriteString(m.renderLine("log level", m.config.LogLevel))

	if m.selectingTheme {
		b.WriteString(m.renderThemeSelector())
	} else {
		b.WriteString(m.renderLine("theme", m.themeName))
		b.WriteString("\n")
		b.WriteString(m.styles.Hint.Render("Press Enter to change theme, Esc to go back"))
	}

	return b.String()
}

// renderThemeSelector renders the scrolling theme list
func (m SettingsModel) renderThemeSelector() string {
	var b strings.Builder

	b.WriteString(m.styles.Label.Render("Select a theme"))
	b.WriteString("\n\n")

	end := min(m.themeOffset+maxVisibleThemes, len(m.themes))

	if m.themeOffset > 0 {
		b.WriteString(m.styles.Hint.Render("  ↑ more themes above"))
		b.WriteString("\n")
	}

	for i := m.themeOffset; i < end; i++ {
		name := m.themes[i]
		current := ""
		if name == m.themeName {
			current = m.styles.Success.Render(" (current)")
		}
		if i == m.themeCursor {
			b.WriteString(m.styles.RowSelected.Render("▸ " + name))
		} else {
			b.WriteString("  " + name)
		}
		b.WriteString(current)
		b.WriteString("\n")
	}

	if end < len(m.themes) {
		b.WriteString(m.styles.Hint.Render("  ↓ more themes below"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("↑/↓ navigate  Enter select  Esc cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// IsModal returns true while the theme selector is open
func (m SettingsModel) IsModal() bool {
	return m.selectingTheme
}

func (m SettingsModel) loadSettings() tea.Cmd {
	return func() tea.Msg {
		dataDir, err := m.services.Config.DataDir()
		if err != nil {
			dataDir = err.Error()
		}
		return settingsLoadedMsg{
			config:  m.services.Config.Get(),
			path:    m.services.Config.GetPath(),
			exists:  m.services.Config.Exists(),
			dataDir: dataDir,
		}
	}
}

func (m SettingsModel) renderLine(label, value string) string {
	return m.styles.Label.Render(fmt.Sprintf("%-16s", label+":")) + " " + value + "\n"
}
