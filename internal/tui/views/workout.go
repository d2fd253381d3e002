package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/service"
	"github.com/xolan/wl/internal/timer"
	"github.com/xolan/wl/internal/tui/ui"
	"github.com/xolan/wl/internal/workout"
)

// workoutMode represents the current mode of the workout screen
type workoutMode int

const (
	workoutModeNormal workoutMode = iota
	workoutModeAdd
	workoutModeInline
	workoutModeDelete
	workoutModeReset
)

// WorkoutModel is the model for a single workout's exercise list
type WorkoutModel struct {
	services *service.Services
	styles   ui.Styles
	keys     ui.KeyMap

	width   int
	height  int
	cursor  int
	list    *workout.List
	entries []workout.Entry
	session timer.Session
	err     error

	// Form state
	mode         workoutMode
	labelInput   textinput.Model
	valueInput   textinput.Model
	focusedInput int // 0 = label, 1 = value
	kind         workout.Kind
	editID       string
}

// CloseWorkoutMsg is sent when the user leaves the workout screen.
type CloseWorkoutMsg struct{}

// workoutLoadedMsg carries an opened list.
type workoutLoadedMsg struct {
	list *workout.List
	err  error
}

// entriesChangedMsg carries the entries after a mutation.
type entriesChangedMsg struct {
	entries []workout.Entry
	cursor  int
	err     error
}

// NewWorkoutModel creates a new workout screen model
func NewWorkoutModel(services *service.Services, styles ui.Styles, keys ui.KeyMap) WorkoutModel {
	labelInput := textinput.New()
	labelInput.Placeholder = "Exercise (e.g. Push-ups)..."
	labelInput.CharLimit = 60
	labelInput.Width = 40

	valueInput := textinput.New()
	valueInput.Placeholder = "Reps or seconds..."
	valueInput.CharLimit = 20
	valueInput.Width = 20

	return WorkoutModel{
		services:   services,
		styles:     styles,
		keys:       keys,
		labelInput: labelInput,
		valueInput: valueInput,
	}
}

// Open returns a command that loads the workout's list.
func (m WorkoutModel) Open(title string) tea.Cmd {
	return func() tea.Msg {
		list, err := m.services.Workouts.Open(title)
		return workoutLoadedMsg{list: list, err: err}
	}
}

// Update implements tea.Model
func (m WorkoutModel) Update(msg tea.Msg) (WorkoutModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case workoutModeAdd, workoutModeInline:
			return m.handleInputMode(msg)
		case workoutModeDelete:
			return m.handleDeleteMode(msg)
		case workoutModeReset:
			return m.handleResetMode(msg)
		}
		return m.handleNormalMode(msg)

	case workoutLoadedMsg:
		m.err = msg.err
		m.mode = workoutModeNormal
		m.cursor = 0
		m.list = msg.list
		m.entries = nil
		if msg.list != nil {
			m.entries = msg.list.Entries()
		}
		m.session = m.services.Timer.Session()
		return m, nil

	case entriesChangedMsg:
		m.err = msg.err
		m.mode = workoutModeNormal
		m.entries = msg.entries
		m.cursor = min(max(msg.cursor, 0), max(len(m.entries)-1, 0))
		return m, nil

	case ui.TimerEventMsg:
		m.session = m.services.Timer.Session()
		if msg.Event.State == timer.Expired {
			if e, ok := m.entry(msg.Event.Session.ActiveID); ok {
				return m, flash(fmt.Sprintf("Done: %s", e.Label), false)
			}
			return m, flash("Countdown finished", false)
		}
		return m, nil

	case ui.ThemeChangedMsg:
		m.styles = msg.Styles
		return m, nil
	}

	if m.IsInputMode() {
		return m.updateFocusedInput(msg)
	}
	return m, nil
}

// handleNormalMode handles navigation and the list actions
func (m WorkoutModel) handleNormalMode(msg tea.KeyMsg) (WorkoutModel, tea.Cmd) {
	editing := m.Editing()

	switch {
	case key.Matches(msg, m.keys.Back):
		if m.list != nil {
			m.list.SetEditing(false)
		}
		return m, func() tea.Msg { return CloseWorkoutMsg{} }
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	}

	if m.list == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		m.list.SetEditing(!editing)
		return m, nil
	case key.Matches(msg, m.keys.New):
		m.mode = workoutModeAdd
		m.kind = workout.Reps
		return m.openForm("", "")
	case key.Matches(msg, m.keys.Inline):
		if e, ok := m.Selected(); ok {
			m.mode = workoutModeInline
			m.kind = e.Kind
			m.editID = e.ID
			return m.openForm(e.Label, e.Value)
		}
		return m, nil
	case key.Matches(msg, m.keys.Timer):
		if e, ok := m.Selected(); ok {
			return m, m.toggleTimer(e)
		}
		return m, nil
	case editing && key.Matches(msg, m.keys.MoveUp):
		if m.cursor > 0 {
			return m, m.moveEntry(m.cursor, m.cursor-1)
		}
		return m, nil
	case editing && key.Matches(msg, m.keys.MoveDown):
		if m.cursor < len(m.entries)-1 {
			return m, m.moveEntry(m.cursor, m.cursor+1)
		}
		return m, nil
	case editing && key.Matches(msg, m.keys.Delete):
		if len(m.entries) > 0 {
			m.mode = workoutModeDelete
		}
		return m, nil
	case editing && key.Matches(msg, m.keys.Reset):
		m.mode = workoutModeReset
		return m, nil
	}
	return m, nil
}

// openForm focuses the label input with the given initial values
func (m WorkoutModel) openForm(label, value string) (WorkoutModel, tea.Cmd) {
	m.labelInput.SetValue(label)
	m.valueInput.SetValue(value)
	m.focusedInput = 0
	m.valueInput.Blur()
	m.labelInput.Focus()
	return m, textinput.Blink
}

// handleInputMode handles key events in the add and edit forms
func (m WorkoutModel) handleInputMode(msg tea.KeyMsg) (WorkoutModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = workoutModeNormal
		m.labelInput.Blur()
		m.valueInput.Blur()
		return m, nil
	case key.Matches(msg, m.keys.ToggleUnit):
		if m.mode == workoutModeAdd {
			if m.kind == workout.Seconds {
				m.kind = workout.Reps
			} else {
				m.kind = workout.Seconds
			}
		}
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m.switchField()
	case key.Matches(msg, m.keys.Select):
		label := strings.TrimSpace(m.labelInput.Value())
		value := strings.TrimSpace(m.valueInput.Value())
		if m.focusedInput == 0 && value == "" {
			return m.switchField()
		}
		if label == "" || value == "" {
			return m, nil
		}
		m.labelInput.Blur()
		m.valueInput.Blur()
		if m.mode == workoutModeAdd {
			return m, m.addEntry(label, value, m.kind)
		}
		return m, m.updateEntry(m.editID, label, value)
	}

	return m.updateFocusedInput(msg)
}

func (m WorkoutModel) switchField() (WorkoutModel, tea.Cmd) {
	if m.focusedInput == 0 {
		m.focusedInput = 1
		m.labelInput.Blur()
		m.valueInput.Focus()
	} else {
		m.focusedInput = 0
		m.valueInput.Blur()
		m.labelInput.Focus()
	}
	return m, textinput.Blink
}

func (m WorkoutModel) updateFocusedInput(msg tea.Msg) (WorkoutModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focusedInput == 0 {
		m.labelInput, cmd = m.labelInput.Update(msg)
	} else {
		m.valueInput, cmd = m.valueInput.Update(msg)
	}
	return m, cmd
}

// handleDeleteMode handles key events in the delete confirmation
func (m WorkoutModel) handleDeleteMode(msg tea.KeyMsg) (WorkoutModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = workoutModeNormal
		return m, m.deleteEntry(m.cursor)
	case key.Matches(msg, m.keys.Deny):
		m.mode = workoutModeNormal
	}
	return m, nil
}

// handleResetMode handles key events in the reset confirmation
func (m WorkoutModel) handleResetMode(msg tea.KeyMsg) (WorkoutModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.mode = workoutModeNormal
		return m, m.resetToTemplate()
	case key.Matches(msg, m.keys.Deny):
		m.mode = workoutModeNormal
	}
	return m, nil
}

// View implements tea.Model
func (m WorkoutModel) View() string {
	switch m.mode {
	case workoutModeAdd:
		return m.renderForm("New Exercise")
	case workoutModeInline:
		return m.renderForm("Edit Exercise")
	case workoutModeDelete:
		return m.renderDeleteConfirm()
	case workoutModeReset:
		return m.renderResetConfirm()
	}

	var b strings.Builder

	if m.err != nil {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}
	if m.list == nil {
		return b.String()
	}

	if len(m.entries) == 0 {
		b.WriteString(m.styles.Label.Render("No exercises"))
		b.WriteString("\n\n")
		b.WriteString(m.styles.Hint.Render("Press 'n' to add an exercise"))
		return b.String()
	}

	b.WriteString(RenderEntryList(m.entries, m.styles, EntryRenderOptions{
		Cursor:  m.cursor,
		Session: m.session,
	}))
	b.WriteString(strings.Repeat("─", min(50, max(m.width, 10))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%d %s", len(m.entries), cli.Pluralize("exercise", len(m.entries))))
	return b.String()
}

// renderForm renders the add and edit forms
func (m WorkoutModel) renderForm(title string) string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(title))
	b.WriteString("\n")

	label := "Exercise:"
	if m.focusedInput == 0 {
		label = "▸ Exercise:"
	}
	b.WriteString(m.styles.Label.Render(label))
	b.WriteString("\n")
	b.WriteString(m.labelInput.View())
	b.WriteString("\n\n")

	value := "Value:"
	if m.focusedInput == 1 {
		value = "▸ Value:"
	}
	b.WriteString(m.styles.Label.Render(value))
	b.WriteString("\n")
	b.WriteString(m.valueInput.View())
	b.WriteString("  ")
	b.WriteString(m.styles.EntryUnit.Render(m.kind.String()))
	b.WriteString("\n\n")

	if m.mode == workoutModeAdd {
		b.WriteString(m.styles.Hint.Render("Tab toggles Reps/Secs, ↑/↓ switch fields, Enter to save, Esc to cancel"))
	} else {
		b.WriteString(m.styles.Hint.Render("↑/↓ switch fields, Enter to save, Esc to cancel"))
	}
	return b.String()
}

// renderDeleteConfirm renders the delete confirmation dialog
func (m WorkoutModel) renderDeleteConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Delete Exercise"))
	b.WriteString("\n")
	if e, ok := m.Selected(); ok {
		b.WriteString(m.styles.Warning.Render("Delete " + cli.FormatEntry(e) + "?"))
		b.WriteString("\n\n")
	}
	b.WriteString(m.styles.Hint.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// renderResetConfirm renders the reset confirmation dialog
func (m WorkoutModel) renderResetConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Reset Workout"))
	b.WriteString("\n")
	b.WriteString(m.styles.Warning.Render("Replace every exercise with the default list?"))
	b.WriteString("\n")
	b.WriteString(m.styles.Warning.Render("Your changes to this workout will be lost."))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("Press Y to confirm, N or Esc to cancel"))
	return b.String()
}

// SetSize sets the view dimensions
func (m *WorkoutModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Title returns the open workout's title, or "" before one is loaded.
func (m WorkoutModel) Title() string {
	if m.list == nil {
		return ""
	}
	return m.list.Title()
}

// Editing reports whether the open list is in editing mode.
func (m WorkoutModel) Editing() bool {
	return m.list != nil && m.list.Editing()
}

// Selected returns the entry under the cursor.
func (m WorkoutModel) Selected() (workout.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return workout.Entry{}, false
	}
	return m.entries[m.cursor], true
}

// IsInputMode returns true when the screen is capturing keyboard input
func (m WorkoutModel) IsInputMode() bool {
	return m.mode == workoutModeAdd || m.mode == workoutModeInline
}

// IsModal returns true while a form or confirmation is open
func (m WorkoutModel) IsModal() bool {
	return m.mode != workoutModeNormal
}

func (m WorkoutModel) entry(id string) (workout.Entry, bool) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, true
		}
	}
	return workout.Entry{}, false
}

func (m WorkoutModel) changed(cursor int, err error) tea.Msg {
	return entriesChangedMsg{entries: m.list.Entries(), cursor: cursor, err: err}
}

func (m WorkoutModel) addEntry(label, value string, kind workout.Kind) tea.Cmd {
	return func() tea.Msg {
		_, err := m.list.Add(label, value, kind)
		return m.changed(m.list.Len()-1, err)
	}
}

func (m WorkoutModel) updateEntry(id, label, value string) tea.Cmd {
	cursor := m.cursor
	return func() tea.Msg {
		return m.changed(cursor, m.list.Update(id, &label, &value))
	}
}

func (m WorkoutModel) deleteEntry(index int) tea.Cmd {
	return func() tea.Msg {
		return m.changed(index, m.list.Delete(index))
	}
}

func (m WorkoutModel) moveEntry(from, to int) tea.Cmd {
	return func() tea.Msg {
		if err := m.list.Move(from, to); err != nil {
			return m.changed(from, err)
		}
		return m.changed(to, nil)
	}
}

func (m WorkoutModel) resetToTemplate() tea.Cmd {
	return func() tea.Msg {
		return m.changed(0, m.list.ResetToTemplate())
	}
}

func (m WorkoutModel) toggleTimer(e workout.Entry) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.services.Timer.Toggle(m.list, e.ID); err != nil {
			if errors.Is(err, service.ErrNotTimed) {
				return ui.FlashMsg{Text: fmt.Sprintf("%s is counted in reps, not seconds", e.Label), Error: true}
			}
			return ui.FlashMsg{Text: err.Error(), Error: true}
		}
		return ui.TimerEventMsg{Event: timer.Event{State: m.services.Timer.Controller().State(), Session: m.services.Timer.Session()}}
	}
}

func flash(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return ui.FlashMsg{Text: text, Error: isError} }
}
