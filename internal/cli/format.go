// Package cli provides the CLI presentation layer for the wl application.
// It handles command-line output formatting and user interaction.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xolan/wl/internal/workout"
)

// FormatSeconds formats a countdown as m:ss, or as plain seconds under a minute.
// Examples: "45s", "1:30", "12:05"
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatValue formats an entry's value with its unit.
// Examples: "12 reps", "45s", "1:30"
func FormatValue(e workout.Entry) string {
	if e.Timed() {
		return FormatSeconds(e.Seconds())
	}
	if n, err := strconv.Atoi(strings.TrimSpace(e.Value)); err == nil {
		return fmt.Sprintf("%d %s", n, Pluralize("rep", n))
	}
	return e.Value
}

// FormatEntry formats an entry for a single-line listing.
func FormatEntry(e workout.Entry) string {
	return fmt.Sprintf("%s (%s)", e.Label, FormatValue(e))
}

// IndexWidth returns the width needed to right-align 1-based indices up to n.
func IndexWidth(n int) int {
	return len(strconv.Itoa(n))
}

// ParseIndex converts a 1-based user index into a 0-based one, checking it against
// the number of available items.
func ParseIndex(arg string, count int) (int, error) {
	userIndex, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: index must be a number", arg)
	}
	if count == 0 {
		return 0, fmt.Errorf("index %d is out of range: nothing to select", userIndex)
	}
	if userIndex < 1 || userIndex > count {
		return 0, fmt.Errorf("index %d is out of range: valid range is 1-%d", userIndex, count)
	}
	return userIndex - 1, nil
}

// Pluralize returns the singular or plural form of a word based on count
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}
