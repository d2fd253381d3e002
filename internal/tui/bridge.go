package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/xolan/wl/internal/service"
	"github.com/xolan/wl/internal/timer"
	"github.com/xolan/wl/internal/tui/ui"
)

// eventBuffer bounds the events queued between the controller and the program.
const eventBuffer = 16

// timerEventMsg is an event that arrived through the bridge. Handling it re-arms the
// bridge; ui.TimerEventMsg produced elsewhere does not.
type timerEventMsg ui.TimerEventMsg

// timerBridge forwards controller events into the bubbletea loop. The controller calls
// subscribers from its tick goroutine, so events go through a channel drained by a
// tea.Cmd.
type timerBridge struct {
	events chan timer.Event
	cancel func()
}

func newTimerBridge(t *service.TimerService) *timerBridge {
	b := &timerBridge{events: make(chan timer.Event, eventBuffer)}
	b.cancel = t.Subscribe(func(ev timer.Event) {
		select {
		case b.events <- ev:
		default:
			// the screen reads the session fresh on the next event
		}
	})
	return b
}

// wait returns a command that delivers the next event.
func (b *timerBridge) wait() tea.Cmd {
	return func() tea.Msg {
		return timerEventMsg{Event: <-b.events}
	}
}

func (b *timerBridge) close() {
	b.cancel()
}
