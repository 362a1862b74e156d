package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette. Adaptive colors keep the sidebar readable on light terminals.
var (
	ColorBrand  = lipgloss.AdaptiveColor{Light: "#471fa3", Dark: "#8b6ce0"}
	ColorBorder = lipgloss.AdaptiveColor{Light: "250", Dark: "8"}
	ColorFocus  = lipgloss.AdaptiveColor{Light: "#471fa3", Dark: "4"}
	ColorActive = lipgloss.AdaptiveColor{Light: "30", Dark: "6"}
	ColorText   = lipgloss.AdaptiveColor{Light: "236", Dark: "252"}
	ColorFaint  = lipgloss.AdaptiveColor{Light: "243", Dark: "245"}
	ColorOK     = lipgloss.AdaptiveColor{Light: "28", Dark: "2"}
	ColorError  = lipgloss.AdaptiveColor{Light: "160", Dark: "1"}
)

// Layout styles
var (
	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FocusedPaneStyle = PaneStyle.
				BorderForeground(ColorFocus)

	// Page title above both panes
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBrand).
			Align(lipgloss.Center)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Sidebar styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorFaint)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorActive).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	IconStyle = lipgloss.NewStyle().
			Foreground(ColorBrand)

	NumberStyle = lipgloss.NewStyle().
			Foreground(ColorFaint).
			Faint(true)
)

// Footer styles
var (
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorFaint)
	HelpStyle   = MutedStyle
	StatusStyle = lipgloss.NewStyle().Foreground(ColorOK)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)

// Symbols
const (
	SymbolCursor  = "›"
	SymbolDivider = "─"
)
