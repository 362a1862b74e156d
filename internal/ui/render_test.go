package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/henri123lemoine/tourguide/internal/content"
)

func baseParams() RenderParams {
	return RenderParams{
		State:        StateBrowse,
		Items:        content.Navigation(),
		Selected:     content.SectionAbstract,
		Content:      "# Abstract\n\nThe Tourism Guide System ...",
		Width:        120,
		Height:       30,
		SidebarWidth: 30,
		Icons:        IconsUnicode,
	}
}

func TestMeasure(t *testing.T) {
	d := Measure(120, 30, 30)
	assert.Equal(t, 120, d.Width)
	assert.Equal(t, 30, d.SidebarWidth)
	assert.Equal(t, 120-30-4, d.ContentWidth)
	assert.Equal(t, 30-2-2, d.ContentHeight)
}

func TestMeasureClampsSmallTerminals(t *testing.T) {
	d := Measure(10, 3, 0)
	assert.Equal(t, MinWidth, d.Width)
	assert.Equal(t, MinHeight, d.Height)
	assert.Equal(t, MinWidth/2, d.SidebarWidth, "sidebar capped at half the width")
	assert.Positive(t, d.ContentWidth)
	assert.Positive(t, d.ContentHeight)
}

func TestRenderShowsNavigationAndContent(t *testing.T) {
	out := Render(baseParams())

	assert.Contains(t, out, content.AppTitle)
	assert.Contains(t, out, content.MenuTitle)
	for _, item := range content.Navigation() {
		assert.Contains(t, out, item.Label)
	}
	assert.Contains(t, out, SymbolCursor+" 1")
	assert.Contains(t, out, "The Tourism Guide System")
}

func TestRenderFitsTerminal(t *testing.T) {
	p := baseParams()
	out := Render(p)

	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), p.Height)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), p.Width)
	}
}

func TestRenderMarksSelectedSection(t *testing.T) {
	p := baseParams()
	p.Selected = content.SectionDatabaseSchema
	out := Render(p)

	assert.Contains(t, out, SymbolCursor+" 6")
	assert.NotContains(t, out, SymbolCursor+" 1")
}

func TestRenderFilterEmpty(t *testing.T) {
	p := baseParams()
	p.State = StateFilter
	p.FilterInput = "> zzz"
	p.FilterValue = "zzz"
	p.Items = nil

	out := Render(p)
	assert.Contains(t, out, "> zzz")
	assert.Contains(t, out, "No matches.")
}

func TestRenderFooter(t *testing.T) {
	p := baseParams()
	p.ScrollPercent = 0.5
	out := Render(p)
	assert.Contains(t, out, "50%")
	assert.Contains(t, out, "? help")

	p.Status = "Opened s1.png"
	assert.Contains(t, Render(p), "Opened s1.png")

	p.Err = errors.New("no open command available")
	assert.Contains(t, Render(p), "Error: no open command available")
}

func TestRenderHelp(t *testing.T) {
	p := baseParams()
	p.State = StateHelp
	p.HelpSections = []HelpSection{
		{Title: "Navigation", Bindings: []HelpBinding{{Keys: "↑/k", Desc: "previous section"}}},
		{Title: "General", Bindings: []HelpBinding{{Keys: "q", Desc: "quit"}}},
	}

	out := Render(p)
	assert.Contains(t, out, "HELP")
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "previous section")
	assert.Contains(t, out, "Press any key to close")
	assert.NotContains(t, out, content.MenuTitle)
}

func TestIcon(t *testing.T) {
	assert.Equal(t, "ⓘ", Icon("info-circle", IconsUnicode))
	assert.Equal(t, "i", Icon("info-circle", IconsASCII))
	assert.Equal(t, "", Icon("info-circle", IconsNone))
	assert.Equal(t, "•", Icon("unknown", IconsUnicode))
	assert.Equal(t, "*", Icon("unknown", IconsASCII))

	for _, item := range content.Navigation() {
		assert.NotEqual(t, "•", Icon(item.Icon, IconsUnicode), item.Icon)
	}
}

func TestCompactHelp(t *testing.T) {
	assert.Equal(t, "full help", compactHelp("full help", "f", 80))
	assert.Equal(t, "f", compactHelp(strings.Repeat("x", 100), "f", 80))
}

func TestRenderSidebarKeepsLabelsOnOneLine(t *testing.T) {
	p := baseParams()
	p.SidebarWidth = DefaultSidebarWidth
	p.Height = 40

	out := Render(p)
	for _, item := range content.Navigation() {
		assert.Contains(t, out, item.Label)
	}
}

func TestRenderSidebarTruncatesNarrowPane(t *testing.T) {
	p := baseParams()
	p.Width = MinWidth
	p.SidebarWidth = 0

	out := Render(p)
	lines := strings.Split(out, "\n")
	assert.LessOrEqual(t, len(lines), p.Height)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), MinWidth)
	}
	assert.Equal(t, 2, strings.Count(out, "╰"), "both panes keep their bottom border")
}

func TestRenderSidebarAtMinHeight(t *testing.T) {
	p := baseParams()
	p.Width = 80
	p.Height = MinHeight
	p.SidebarWidth = DefaultSidebarWidth

	for _, item := range content.Navigation() {
		p.Selected = item.Key
		out := Render(p)

		assert.Contains(t, out, item.Label, "selected section stays visible")
		assert.Contains(t, out, SymbolCursor+" "+fmt.Sprint(int(item.Key)+1))
		assert.LessOrEqual(t, len(strings.Split(out, "\n")), MinHeight)
		assert.Equal(t, 2, strings.Count(out, "╰"), "both panes keep their bottom border")
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name                  string
		n, selected, capacity int
		start, end            int
	}{
		{"everything fits", 7, 6, 7, 0, 7},
		{"top", 7, 0, 4, 0, 4},
		{"centered", 7, 3, 4, 1, 5},
		{"bottom", 7, 6, 4, 3, 7},
		{"no room", 7, 2, 0, 2, 3},
		{"empty", 0, 0, 4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.n, tt.selected, tt.capacity)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
