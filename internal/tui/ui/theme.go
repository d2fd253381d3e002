package ui

import (
	"slices"

	tint "github.com/lrstanley/bubbletint"
)

// DefaultTheme is used when no theme is configured or the configured one is unknown.
const DefaultTheme = "dracula"

// ThemeProvider manages TUI themes using bubbletint
type ThemeProvider struct {
	registry *tint.Registry
}

// NewThemeProvider creates a ThemeProvider starting at initialTheme, falling back to
// DefaultTheme.
func NewThemeProvider(initialTheme string) *ThemeProvider {
	all := tint.DefaultTints()

	var fallback tint.Tint
	if i := slices.IndexFunc(all, func(t tint.Tint) bool { return t.ID() == DefaultTheme }); i >= 0 {
		fallback = all[i]
	} else if len(all) > 0 {
		fallback = all[0]
	}

	registry := tint.NewRegistry(fallback, all...)
	if initialTheme != "" {
		registry.SetTintID(initialTheme)
	}
	return &ThemeProvider{registry: registry}
}

// SetTheme switches to the named theme and reports whether it exists.
func (tp *ThemeProvider) SetTheme(name string) bool {
	return tp.registry.SetTintID(name)
}

// NextTheme cycles forward and returns the new theme ID.
func (tp *ThemeProvider) NextTheme() string {
	tp.registry.NextTint()
	return tp.registry.ID()
}

// PreviousTheme cycles backward and returns the new theme ID.
func (tp *ThemeProvider) PreviousTheme() string {
	tp.registry.PreviousTint()
	return tp.registry.ID()
}

// CurrentName returns the ID of the current theme.
func (tp *ThemeProvider) CurrentName() string {
	return tp.registry.ID()
}

// CurrentDisplayName returns the display name of the current theme.
func (tp *ThemeProvider) CurrentDisplayName() string {
	return tp.registry.DisplayName()
}

// AvailableThemes returns the sorted theme IDs.
func (tp *ThemeProvider) AvailableThemes() []string {
	ids := tp.registry.TintIDs()
	slices.Sort(ids)
	return ids
}

// Styles returns the styles for the current theme.
func (tp *ThemeProvider) Styles() Styles {
	return NewStylesFromRegistry(tp.registry)
}
