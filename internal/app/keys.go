package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/tourguide/internal/config"
	"github.com/henri123lemoine/tourguide/internal/ui"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Home     key.Binding
	End      key.Binding
	Focus    key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Filter    key.Binding
	OpenImage key.Binding
	OpenLink  key.Binding

	// General
	Cancel key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous section"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next section"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g/home", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G/end", "last"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		OpenImage: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open image"),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "open link"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	override := func(b *key.Binding, keys, desc string) {
		if keys == "" {
			return
		}
		*b = key.NewBinding(
			key.WithKeys(parseKeys(keys)...),
			key.WithHelp(keys, desc),
		)
	}

	override(&km.Up, cfg.Up, "previous section")
	override(&km.Down, cfg.Down, "next section")
	override(&km.Home, cfg.Home, "first")
	override(&km.End, cfg.End, "last")
	override(&km.Focus, cfg.Focus, "switch pane")
	override(&km.PageUp, cfg.PageUp, "scroll up")
	override(&km.PageDown, cfg.PageDown, "scroll down")
	override(&km.Filter, cfg.Filter, "filter")
	override(&km.OpenImage, cfg.OpenImage, "open image")
	override(&km.OpenLink, cfg.OpenLink, "open link")
	override(&km.Help, cfg.Help, "help")
	override(&km.Quit, cfg.Quit, "quit")

	return km
}

// HelpSections groups the bindings for the help screen.
func (k KeyMap) HelpSections() []ui.HelpSection {
	entry := func(b key.Binding) ui.HelpBinding {
		h := b.Help()
		return ui.HelpBinding{Keys: h.Key, Desc: h.Desc}
	}
	return []ui.HelpSection{
		{
			Title: "Navigation",
			Bindings: []ui.HelpBinding{
				entry(k.Up),
				entry(k.Down),
				entry(k.Home),
				entry(k.End),
				{Keys: "1-7", Desc: "jump to section"},
				entry(k.Focus),
				entry(k.PageUp),
				entry(k.PageDown),
			},
		},
		{
			Title: "Actions",
			Bindings: []ui.HelpBinding{
				entry(k.Filter),
				entry(k.OpenImage),
				entry(k.OpenLink),
			},
		},
		{
			Title: "General",
			Bindings: []ui.HelpBinding{
				entry(k.Help),
				entry(k.Quit),
			},
		},
	}
}

// parseKeys parses a comma-separated list of keys.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
