package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/wandertools/wandertools/internal/service"
)

type palette struct {
	fg      lipgloss.Color
	card    lipgloss.Color
	muted   lipgloss.Color
	border  lipgloss.Color
	brand   lipgloss.Color
	brand2  lipgloss.Color
	success lipgloss.Color
	danger  lipgloss.Color
}

var (
	darkPalette = palette{
		fg:      "#ededed",
		card:    "#1b1b1b",
		muted:   "#a3a3a3",
		border:  "#262626",
		brand:   "#6366f1",
		brand2:  "#f59e0b",
		success: "#22c55e",
		danger:  "#ef4444",
	}
	lightPalette = palette{
		fg:      "#171717",
		card:    "#f9f9f9",
		muted:   "#525252",
		border:  "#e5e5e5",
		brand:   "#6366f1",
		brand2:  "#f97316",
		success: "#16a34a",
		danger:  "#dc2626",
	}
)

type styles struct {
	app      lipgloss.Style
	title    lipgloss.Style
	tagline  lipgloss.Style
	muted    lipgloss.Style
	name     lipgloss.Style
	selected lipgloss.Style
	link     lipgloss.Style
	key      lipgloss.Style
	card     lipgloss.Style
	heading  lipgloss.Style
	success  lipgloss.Style
	danger   lipgloss.Style
}

func newStyles(theme string) styles {
	p := darkPalette
	if theme == service.ThemeLight {
		p = lightPalette
	}
	return styles{
		app:      lipgloss.NewStyle().Foreground(p.fg),
		title:    lipgloss.NewStyle().Foreground(p.brand).Bold(true),
		tagline:  lipgloss.NewStyle().Foreground(p.muted),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		name:     lipgloss.NewStyle().Foreground(p.fg).Bold(true),
		selected: lipgloss.NewStyle().Foreground(p.brand2).Bold(true),
		link:     lipgloss.NewStyle().Foreground(p.muted).Underline(true),
		key:      lipgloss.NewStyle().Foreground(p.brand).Bold(true),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Background(p.card).
			Padding(1, 2),
		heading: lipgloss.NewStyle().Foreground(p.brand2).Bold(true),
		success: lipgloss.NewStyle().Foreground(p.success),
		danger:  lipgloss.NewStyle().Foreground(p.danger),
	}
}

// accent colors an app glyph with its catalog accent, if any.
func accent(glyph, hex string) string {
	if hex == "" {
		return glyph
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(glyph)
}
