// Package styles holds the console theme and the lipgloss styles built
// from it.
package styles

import (
	"image/color"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme is a named color palette.
type Theme struct { //nolint:govet // fieldalignment: preserving logical field order
	Name   string
	IsDark bool

	Primary   color.Color
	Secondary color.Color
	Tertiary  color.Color
	Accent    color.Color

	BgBase    color.Color
	BgSubtle  color.Color
	BgOverlay color.Color

	FgBase   color.Color
	FgMuted  color.Color
	FgSubtle color.Color

	Border      color.Color
	BorderFocus color.Color

	Success color.Color
	Error   color.Color
	Warning color.Color
	Info    color.Color

	styles     *Styles
	stylesOnce sync.Once
}

// Styles are the lipgloss styles derived from a theme.
type Styles struct {
	Base    lipgloss.Style
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Header  lipgloss.Style
}

// S returns the theme's styles, building them on first use.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = &Styles{
			Base:    lipgloss.NewStyle().Foreground(t.FgBase),
			Title:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
			Prompt:  lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
			Success: lipgloss.NewStyle().Foreground(t.Success),
			Error:   lipgloss.NewStyle().Foreground(t.Error),
			Warning: lipgloss.NewStyle().Foreground(t.Warning),
			Info:    lipgloss.NewStyle().Foreground(t.Info),
			Header:  lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		}
	})
	return t.styles
}

// ParseHex parses a "#rrggbb" color. Invalid input yields black.
func ParseHex(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

// ApplyForegroundGrad renders text with its letters blended from one color to
// another.
func ApplyForegroundGrad(text string, from, to color.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	start, _ := colorful.MakeColor(from)
	end, _ := colorful.MakeColor(to)

	var b strings.Builder
	for i, r := range runes {
		step := 0.0
		if len(runes) > 1 {
			step = float64(i) / float64(len(runes)-1)
		}
		c := start.BlendLab(end, step).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(c).Bold(true).Render(string(r)))
	}
	return b.String()
}

var (
	current *Theme
	mu      sync.RWMutex
)

// NewManager installs the default theme.
func NewManager() {
	SetTheme(NewDefaultTheme())
}

// SetTheme replaces the current theme.
func SetTheme(t *Theme) {
	mu.Lock()
	defer mu.Unlock()
	current = t
}

// CurrentTheme returns the active theme, installing the default if none
// has been set.
func CurrentTheme() *Theme {
	mu.RLock()
	t := current
	mu.RUnlock()
	if t != nil {
		return t
	}
	NewManager()
	return CurrentTheme()
}
