package ui

import "github.com/xolan/wl/internal/timer"

// ThemeChangeRequestMsg asks the root model to switch to ThemeName.
type ThemeChangeRequestMsg struct {
	ThemeName string
}

// ThemeChangedMsg is broadcast to the screens once the theme has changed.
type ThemeChangedMsg struct {
	ThemeName string
	Styles    Styles
}

// FlashMsg shows a transient message in the status bar.
type FlashMsg struct {
	Text  string
	Error bool
}

// TimerEventMsg delivers a countdown event from the timer controller.
type TimerEventMsg struct {
	Event timer.Event
}
