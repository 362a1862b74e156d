package ui

import (
	"github.com/charmbracelet/glamour"
)

// NewMarkdownRenderer builds a glamour renderer for the configured theme.
// "auto" (or empty) picks a style from the terminal background.
func NewMarkdownRenderer(theme string, wordWrap int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{
		glamour.WithWordWrap(wordWrap),
	}
	switch theme {
	case "dark", "light", "notty":
		opts = append(opts, glamour.WithStandardStyle(theme))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}
	return glamour.NewTermRenderer(opts...)
}

// StyleMarkdown renders md with r. It falls back to the plain Markdown when
// r is nil, returns an error, or panics.
func StyleMarkdown(r *glamour.TermRenderer, md string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			result = md
		}
	}()

	if r == nil || md == "" {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
