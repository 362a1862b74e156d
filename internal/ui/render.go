package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/tourguide/internal/content"
)

// State constants (matching app.State)
const (
	StateBrowse = iota
	StateFilter
	StateHelp
)

// Focus constants (matching app.Focus)
const (
	FocusSidebar = iota
	FocusContent
)

// HelpBinding represents a keybinding for help display.
type HelpBinding struct {
	Keys string
	Desc string
}

// HelpSection represents a section of help bindings.
type HelpSection struct {
	Title    string
	Bindings []HelpBinding
}

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	State         int
	Focus         int
	Items         []content.NavigationItem
	Selected      content.Section
	Content       string
	ScrollPercent float64
	Width         int
	Height        int
	SidebarWidth  int
	Icons         string
	FilterInput   string
	FilterValue   string
	Err           error
	Status        string
	HelpSections  []HelpSection
}

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 40

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 10

// DefaultSidebarWidth is used when no width is configured.
const DefaultSidebarWidth = 32

const (
	titleHeight  = 1
	footerHeight = 1
	// border plus horizontal padding on each side of a pane
	paneFrameWidth  = 4
	paneFrameHeight = 2
)

// sidebarHeaderHeight is the menu header plus its divider.
const sidebarHeaderHeight = 2

// Dimensions is the computed layout for a terminal size.
type Dimensions struct {
	Width  int
	Height int
	// SidebarWidth is the outer width of the sidebar pane, borders included.
	SidebarWidth int
	// ContentWidth and ContentHeight are the usable area inside the content pane.
	ContentWidth  int
	ContentHeight int
}

// Measure computes the layout. Small terminals are clamped to MinWidth x MinHeight
// and the sidebar never takes more than half the width.
func Measure(width, height, sidebarWidth int) Dimensions {
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}
	if sidebarWidth <= 0 {
		sidebarWidth = DefaultSidebarWidth
	}
	if sidebarWidth > width/2 {
		sidebarWidth = width / 2
	}

	bodyHeight := height - titleHeight - footerHeight
	return Dimensions{
		Width:         width,
		Height:        height,
		SidebarWidth:  sidebarWidth,
		ContentWidth:  width - sidebarWidth - paneFrameWidth,
		ContentHeight: bodyHeight - paneFrameHeight,
	}
}

// Render renders the full UI.
func Render(p RenderParams) string {
	d := Measure(p.Width, p.Height, p.SidebarWidth)

	if p.State == StateHelp {
		return renderHelp(p, d)
	}

	title := TitleStyle.Width(d.Width).Render(content.AppTitle)
	body := lipgloss.JoinHorizontal(lipgloss.Top, renderSidebar(p, d), renderContent(p, d))

	return lipgloss.JoinVertical(lipgloss.Left, title, body, renderFooter(p, d))
}

// renderSidebar renders the navigation pane. Lines are truncated to the pane
// width, and when the pane is too short the item list is windowed around
// the selected section.
func renderSidebar(p RenderParams, d Dimensions) string {
	var b strings.Builder
	innerWidth := d.SidebarWidth - paneFrameWidth
	clip := lipgloss.NewStyle().MaxWidth(innerWidth)

	if p.State == StateFilter || p.FilterValue != "" {
		b.WriteString(clip.Render(p.FilterInput) + "\n")
	} else {
		header := HeaderStyle.Render(content.MenuTitle)
		if icon := Icon(content.MenuIcon, p.Icons); icon != "" {
			header = IconStyle.Render(icon) + " " + header
		}
		b.WriteString(clip.Render(header) + "\n")
	}
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, innerWidth)) + "\n")

	if len(p.Items) == 0 {
		b.WriteString(MutedStyle.Render("No matches."))
	}

	start, end := visibleRange(len(p.Items), selectedIndex(p.Items, p.Selected), d.ContentHeight-sidebarHeaderHeight)
	for i := start; i < end; i++ {
		item := p.Items[i]
		b.WriteString(clip.Render(renderNavItem(item, item.Key == p.Selected, p.Icons)))
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	style := PaneStyle
	if p.Focus == FocusSidebar {
		style = FocusedPaneStyle
	}
	return style.
		Width(d.SidebarWidth - 2).
		Height(d.ContentHeight).
		MaxHeight(d.ContentHeight + paneFrameHeight).
		Render(b.String())
}

// selectedIndex returns the position of s in items, or 0 when it is hidden.
func selectedIndex(items []content.NavigationItem, s content.Section) int {
	for i, item := range items {
		if item.Key == s {
			return i
		}
	}
	return 0
}

// visibleRange returns the [start, end) window of n items that fits in
// capacity rows while keeping selected in view.
func visibleRange(n, selected, capacity int) (int, int) {
	if capacity < 1 {
		capacity = 1
	}
	if n <= capacity {
		return 0, n
	}
	start := selected - capacity/2
	if start < 0 {
		start = 0
	}
	if start > n-capacity {
		start = n - capacity
	}
	return start, start + capacity
}

// renderNavItem renders a single sidebar entry.
func renderNavItem(item content.NavigationItem, selected bool, icons string) string {
	cursor := "  "
	label := NormalStyle.Render(item.Label)
	if selected {
		cursor = SelectedStyle.Render(SymbolCursor + " ")
		label = SelectedStyle.Render(item.Label)
	}

	number := NumberStyle.Render(fmt.Sprintf("%d", int(item.Key)+1))
	line := cursor + number + " "
	if icon := Icon(item.Icon, icons); icon != "" {
		line += IconStyle.Render(icon) + " "
	}
	return line + label
}

// renderContent renders the content pane around the already rendered section.
func renderContent(p RenderParams, d Dimensions) string {
	style := PaneStyle
	if p.Focus == FocusContent {
		style = FocusedPaneStyle
	}
	return style.
		Width(d.ContentWidth + 2).
		Height(d.ContentHeight).
		MaxHeight(d.ContentHeight + paneFrameHeight).
		Render(p.Content)
}

// renderFooter renders the status/help line with the scroll position.
func renderFooter(p RenderParams, d Dimensions) string {
	line := HelpStyle.Render(compactHelp(
		"↑/↓ section • 1-7 jump • tab focus • pgup/pgdn scroll • / filter • o image • b link • ? help • q quit",
		"↑↓•1-7•tab•/•o•b•?•q",
		d.Width,
	))
	if p.Err != nil {
		line = ErrorStyle.Render("Error: " + p.Err.Error())
	} else if p.Status != "" {
		line = StatusStyle.Render(p.Status)
	}

	scroll := MutedStyle.Render(fmt.Sprintf("%3.0f%%", p.ScrollPercent*100))
	gap := d.Width - lipgloss.Width(line) - lipgloss.Width(scroll)
	if gap < 1 {
		gap = 1
	}
	return line + strings.Repeat(" ", gap) + scroll
}

// renderHelp renders the help screen.
func renderHelp(p RenderParams, d Dimensions) string {
	var b strings.Builder
	contentWidth := d.Width - paneFrameWidth

	b.WriteString(HeaderStyle.Render("HELP") + "\n")
	b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n\n")

	// Render each help section from the passed bindings
	for i, section := range p.HelpSections {
		b.WriteString(NormalStyle.Render(section.Title) + "\n")
		b.WriteString(DividerStyle.Render(strings.Repeat(SymbolDivider, 40)) + "\n")
		for _, binding := range section.Bindings {
			// Pad keys to 12 chars for alignment
			keys := binding.Keys
			if len(keys) < 12 {
				keys = keys + strings.Repeat(" ", 12-len(keys))
			}
			b.WriteString(MutedStyle.Render("  "+keys) + " " + binding.Desc + "\n")
		}
		if i < len(p.HelpSections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n" + DividerStyle.Render(strings.Repeat(SymbolDivider, contentWidth)) + "\n")
	b.WriteString(HelpStyle.Render("Press any key to close"))

	return PaneStyle.Width(d.Width - 2).Render(b.String())
}

// compactHelp returns a shortened help string for small terminals.
func compactHelp(full, compact string, width int) string {
	if lipgloss.Width(full) <= width-6 {
		return full
	}
	return compact
}
