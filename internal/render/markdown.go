package render

import (
	"strings"
)

// MissingImagePrefix precedes the filename of an image that cannot be found.
const MissingImagePrefix = "⚠ missing image: "

// AssetChecker reports whether an image file is available.
type AssetChecker interface {
	Exists(name string) bool
}

// MarkdownOptions controls Markdown serialization.
type MarkdownOptions struct {
	// Assets, when set, is consulted for every image. Missing files get an
	// inline warning instead of failing the render.
	Assets AssetChecker
}

// Markdown serializes d. Output is deterministic for a given document and
// asset state. An empty document produces an empty string.
func Markdown(d Document, opts MarkdownOptions) string {
	if len(d) == 0 {
		return ""
	}

	parts := make([]string, 0, len(d))
	for _, b := range d {
		parts = append(parts, markdownBlock(b, opts))
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func markdownBlock(b Block, opts MarkdownOptions) string {
	switch b := b.(type) {
	case Heading:
		level := b.Level
		if level < 1 {
			level = 1
		}
		return strings.Repeat("#", level) + " " + b.Text
	case Paragraph:
		return b.Text
	case Bullets:
		lines := make([]string, 0, len(b.Items))
		for _, item := range b.Items {
			lines = append(lines, "- "+b.Prefix+item)
		}
		return strings.Join(lines, "\n")
	case CodeBlock:
		return "```" + b.Language + "\n" + strings.TrimRight(b.Code, "\n") + "\n```"
	case Image:
		md := "![" + b.Caption + "](" + b.File + ")"
		if opts.Assets != nil && !opts.Assets.Exists(b.File) {
			md += "\n\n> " + MissingImagePrefix + b.File
		}
		return md
	case Link:
		return "[" + b.Label + "](" + b.URL + ")"
	case Rule:
		return "---"
	}
	return ""
}
