package ui

// Icon sets accepted by ui.icons.
const (
	IconsUnicode = "unicode"
	IconsASCII   = "ascii"
	IconsNone    = "none"
)

var unicodeIcons = map[string]string{
	"globe":       "◍",
	"info-circle": "ⓘ",
	"building":    "⌂",
	"bar-chart":   "▥",
	"server":      "▣",
	"list-task":   "☰",
	"database":    "⛁",
	"play-circle": "▶",
}

var asciiIcons = map[string]string{
	"globe":       "@",
	"info-circle": "i",
	"building":    "B",
	"bar-chart":   "#",
	"server":      "S",
	"list-task":   "=",
	"database":    "D",
	"play-circle": ">",
}

// Icon returns the glyph for a navigation icon name in the given set.
// Unknown names fall back to a bullet so columns stay aligned.
func Icon(name, set string) string {
	switch set {
	case IconsNone:
		return ""
	case IconsASCII:
		if g, ok := asciiIcons[name]; ok {
			return g
		}
		return "*"
	default:
		if g, ok := unicodeIcons[name]; ok {
			return g
		}
		return "•"
	}
}
