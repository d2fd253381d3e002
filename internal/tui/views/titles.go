package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/wl/internal/service"
	"github.com/xolan/wl/internal/tui/ui"
)

// titlesMode represents the current mode of the titles screen
type titlesMode int

const (
	titlesModeNormal titlesMode = iota
	titlesModeAdd
	titlesModeDelete
)

// TitlesModel is the model for the workout titles screen
type TitlesModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width  int
	height int
	cursor int
	titles []string
	err    error

	mode  titlesMode
	input textinput.Model
}

// OpenWorkoutMsg asks the root model to open the workout screen for Title.
type OpenWorkoutMsg struct {
	Title string
}

// titlesLoadedMsg carries the titles after a load or a change.
type titlesLoadedMsg struct {
	titles []string
	err    error
}

// NewTitlesModel creates a new titles screen model
func NewTitlesModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) TitlesModel {
	input := textinput.New()
	input.Placeholder = "Workout title..."
	input.CharLimit = 60
	input.Width = 40

	return TitlesModel{
		services: services,
		styles:   styles,
		keys:     keys,
		input:    input,
	}
}

// Init implements tea.Model
func (m TitlesModel) Init() tea.Cmd {
	return m.loadTitles()
}

// Update implements tea.Model
func (m TitlesModel) Update(msg tea.Msg) (TitlesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case titlesModeAdd:
			return m.handleAddMode(msg)
		case titlesModeDelete:
			return m.handleDeleteMode(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.titles)-1 {
				m.cursor++
			}
			return m, nil
		case key.Matches(msg, m.keys.New):
			m.mode = titlesModeAdd
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case key.Matches(msg, m.keys.Delete):
			if len(m.titles) > 0 {
				m.mode = titlesModeDelete
			}
			return m, nil
		case key.Matches(msg, m.keys.Select):
			if title, ok := m.Selected(); ok {
				return m, func() tea.Msg { return OpenWorkoutMsg{Title: title} }
			}
			return m, nil
		}

	case titlesLoadedMsg:
		m.err = msg.err
		m.mode = titlesModeNormal
		m.titles = msg.titles
		if m.cursor >= len(m.titles) {
			m.cursor = max(0, len(m.titles)-1)
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.mode == titlesModeAdd {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleAddMode handles key events while a new title is typed
func (m TitlesModel) handleAddMode(msg tea.KeyMsg) (TitlesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		title := strings.TrimSpace(m.input.Value())
		if title == "" || m.services.Workouts.Collection().Contains(title) {
			return m, nil
		}
		m.input.Blur()
		m.cursor = len(m.titles)
		return m, m.addTitle(title)
	case key.Matches(msg, m.keys.Back):
		m.mode = titlesModeNormal
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleDeleteMode handles key events in the delete confirmation
func (m TitlesModel) handleDeleteMode(msg tea.KeyMsg) (TitlesModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = titlesModeNormal
		return m, m.removeTitle(m.cursor)
	case key.Matches(msg, m.keys.Deny):
		m.mode = titlesModeNormal
	}
	return m, nil
}

// View implements tea.Model
func (m TitlesModel) View() string {
	var b strings.Builder

	switch m.mode {
	case titlesModeAdd:
		b.WriteString(m.styles.DialogTitle.Render("New Workout"))
		b.WriteString("\n")
		b.WriteString(m.styles.Label.Render("Title:"))
		b.WriteString("\n")
		b.WriteString(m.styles.InputFocused.Render(m.input.View()))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Hint.Render("Enter to save, Esc to cancel"))
		return b.String()
	case titlesModeDelete:
		return m.renderDeleteConfirm()
	}

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.titles) == 0 {
		b.WriteString(m.styles.Label.Render("No workouts yet"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Hint.Render("Press 'n' to add a workout"))
		return b.String()
	}

	for i, title := range m.titles {
		style := m.styles.RowNormal
		if i == m.cursor {
			style = m.styles.RowSelected
		}
		index := m.styles.RowIndex.Render(fmt.Sprintf("[%d]", i+1))
		b.WriteString(style.Render(index + " " + title))
		b.WriteString("\n")
	}
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m TitlesModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Delete Workout"))
	b.WriteString("\n")
	if title, ok := m.Selected(); ok {
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("Remove %q from your workouts?", title)))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Hint.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *TitlesModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the title under the cursor.
func (m TitlesModel) Selected() (string, bool) {
	if m.cursor < 0 || m.cursor >= len(m.titles) {
		return "", false
	}
	return m.titles[m.cursor], true
}

// IsInputMode returns true when the screen is capturing keyboard input
func (m TitlesModel) IsInputMode() bool {
	return m.mode == titlesModeAdd
}

// IsModal returns true while a form or confirmation is open
func (m TitlesModel) IsModal() bool {
	return m.mode != titlesModeNormal
}

func (m TitlesModel) loadTitles() tea.Cmd {
	return func() tea.Msg {
		return titlesLoadedMsg{titles: m.services.Workouts.Titles()}
	}
}

func (m TitlesModel) addTitle(title string) tea.Cmd {
	return func() tea.Msg {
		err := m.services.Workouts.Add(title)
		return titlesLoadedMsg{titles: m.services.Workouts.Titles(), err: err}
	}
}

func (m TitlesModel) removeTitle(index int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.services.Workouts.Remove(index)
		return titlesLoadedMsg{titles: m.services.Workouts.Titles(), err: err}
	}
}
