package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/service"
	"github.com/xolan/wl/internal/timer"
)

// RunTimer counts down the timed exercise at a 1-based index in the foreground,
// printing the remaining time on every tick. Cancelling ctx stops the countdown.
func RunTimer(ctx context.Context, deps *cli.Deps, title, indexArg string) {
	list, ok := openList(deps, title)
	if !ok {
		return
	}
	index, err := cli.ParseIndex(indexArg, list.Len())
	if err != nil {
		deps.Fail("Invalid exercise index", err, fmt.Sprintf("Show exercises with 'wl show %q'", title))
		return
	}
	e, _ := list.At(index)

	done := make(chan struct{})
	defer close(done)
	events := make(chan timer.Event, 8)
	cancel := deps.Services.Timer.Subscribe(func(ev timer.Event) {
		select {
		case events <- ev:
		case <-done:
		}
	})
	defer cancel()

	if _, err := deps.Services.Timer.Start(list, e.ID); err != nil {
		if errors.Is(err, service.ErrNotTimed) {
			deps.Fail(fmt.Sprintf("%s is counted in reps, not seconds", e.Label), nil,
				"Only exercises added with --secs can be timed")
		} else {
			deps.Fail("Failed to start timer", err, "")
		}
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Timer: %s\n", cli.FormatEntry(e))

	expired := false
	for {
		select {
		case <-ctx.Done():
			deps.Services.Timer.Stop(e.ID)
			_, _ = fmt.Fprintf(deps.Stdout, "Stopped: %s\n", e.Label)
			return
		case ev := <-events:
			switch ev.State {
			case timer.Running:
				if ev.Session.ActiveID != e.ID {
					continue
				}
				_, _ = fmt.Fprintf(deps.Stdout, "  %s remaining\n", cli.FormatSeconds(ev.Session.Remaining))
			case timer.Expired:
				expired = true
				_, _ = fmt.Fprintf(deps.Stdout, "Done: %s\n", e.Label)
			case timer.Idle:
				if !expired {
					_, _ = fmt.Fprintf(deps.Stdout, "Stopped: %s\n", e.Label)
				}
				return
			}
		}
	}
}
