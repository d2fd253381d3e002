package views

import (
	"fmt"
	"strings"

	"github.com/xolan/wl/internal/cli"
	"github.com/xolan/wl/internal/timer"
	"github.com/xolan/wl/internal/tui/ui"
	"github.com/xolan/wl/internal/workout"
)

// EntryRenderOptions configures how exercises are rendered
type EntryRenderOptions struct {
	Cursor  int           // Selected row, -1 for none
	Session timer.Session // Countdown to show next to its entry
}

// RenderEntryList renders exercises with aligned index, label and value columns.
func RenderEntryList(entries []workout.Entry, styles ui.Styles, opts EntryRenderOptions) string {
	if len(entries) == 0 {
		return ""
	}

	indexWidth := len(fmt.Sprintf("[%d]", len(entries)))

	var b strings.Builder
	for i, e := range entries {
		style := styles.RowNormal
		if i == opts.Cursor {
			style = styles.RowSelected
		}

		index := styles.RowIndex.Render(fmt.Sprintf("%-*s", indexWidth, fmt.Sprintf("[%d]", i+1)))
		label := styles.EntryLabel.Render(truncate(e.Label, 27))
		value := styles.EntryValue.Render(truncate(e.Value, 10))
		unit := styles.EntryUnit.Render(e.Kind.String())

		line := fmt.Sprintf("%s %s %s%s", index, label, value, unit)
		if opts.Session.Active() && opts.Session.ActiveID == e.ID {
			line += "  " + styles.TimerRunning.Render("● ") +
				styles.TimerRemaining.Render(cli.FormatSeconds(opts.Session.Remaining))
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
