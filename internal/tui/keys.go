package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Contact     key.Binding
	AppFeedback key.Binding
	Open        key.Binding
	ContactLink key.Binding
	Theme       key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	Quit        key.Binding

	Send  key.Binding
	Close key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Contact:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "contact")),
		AppFeedback: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "app feedback")),
		Open:        key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open")),
		ContactLink: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "contact link")),
		Theme:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear search")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Send:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
		Close: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

func (k keyMap) launcherHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.AppFeedback, k.Contact, k.ContactLink, k.Theme, k.Search, k.Quit}
}

// helpLine renders enabled bindings as "[key] desc" pairs.
func helpLine(st styles, bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, fmt.Sprintf("%s %s", st.key.Render("["+h.Key+"]"), st.muted.Render(h.Desc)))
	}
	return strings.Join(parts, "  ")
}
