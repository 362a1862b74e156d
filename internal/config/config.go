// Package config handles tourguide configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/tourguide/internal/content"
)

// Config represents tourguide configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Open    OpenConfig    `toml:"open"`
	UI      UIConfig      `toml:"ui"`
	Keys    KeysConfig    `toml:"keys"`
}

// GeneralConfig contains general settings.
type GeneralConfig struct {
	// Directory holding the guide's images (relative to the working directory)
	AssetDir string `toml:"asset_dir"`

	// Section selected at startup; empty means the first navigation item
	DefaultSection string `toml:"default_section"`
}

// OpenConfig contains settings for opening images and links externally.
type OpenConfig struct {
	// Command used to view an image (auto-detected if empty)
	// Template variables: {path}, {name}
	ImageCommand string `toml:"image_command"`

	// Command used to open a URL (auto-detected if empty)
	// Template variables: {url}
	LinkCommand string `toml:"link_command"`
}

// UIConfig contains UI settings.
type UIConfig struct {
	// Color theme: auto, dark, light, notty
	Theme string `toml:"theme"`

	// Icon set for the sidebar: unicode, ascii, none
	Icons string `toml:"icons"`

	// Sidebar width in columns
	SidebarWidth int `toml:"sidebar_width"`

	// Wrap content at this column (0 = fit the content pane)
	WordWrap int `toml:"word_wrap"`

	// Flag images that are missing from asset_dir
	ShowMissingImages bool `toml:"show_missing_images"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up        string `toml:"up"`
	Down      string `toml:"down"`
	Home      string `toml:"home"`
	End       string `toml:"end"`
	Focus     string `toml:"focus"`
	PageUp    string `toml:"page_up"`
	PageDown  string `toml:"page_down"`
	Filter    string `toml:"filter"`
	OpenImage string `toml:"open_image"`
	OpenLink  string `toml:"open_link"`
	Help      string `toml:"help"`
	Quit      string `toml:"quit"`
}

// Accepted values for enumerated settings.
var (
	validThemes = []string{"auto", "dark", "light", "notty"}
	validIcons  = []string{"unicode", "ascii", "none"}
)

// Sidebar width bounds.
const (
	MinSidebarWidth = 16
	MaxSidebarWidth = 60
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			AssetDir:       ".",
			DefaultSection: content.DefaultSection().String(),
		},
		Open: OpenConfig{
			ImageCommand: "",
			LinkCommand:  "",
		},
		UI: UIConfig{
			Theme:             "auto",
			Icons:             "unicode",
			SidebarWidth:      32,
			WordWrap:          0,
			ShowMissingImages: true,
		},
		Keys: KeysConfig{
			Up:        "up,k",
			Down:      "down,j",
			Home:      "home,g",
			End:       "end,G",
			Focus:     "tab",
			PageUp:    "pgup,ctrl+u",
			PageDown:  "pgdown,ctrl+d",
			Filter:    "/",
			OpenImage: "o",
			OpenLink:  "b",
			Help:      "?",
			Quit:      "q,ctrl+c",
		},
	}
}

// InitialSection resolves general.default_section, falling back to the
// first navigation item when it is empty or unknown.
func (c *Config) InitialSection() content.Section {
	if s, ok := content.ParseSection(c.General.DefaultSection); ok {
		return s
	}
	return content.DefaultSection()
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/tourguide/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "tourguide", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "tourguide", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "tourguide", "config.toml")
	}
	return filepath.Join(configDir, "tourguide", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
// A missing file is not an error; defaults are returned.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything left unspecified.
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// SaveToPath writes cfg to path while holding an exclusive lock on path+".lock".
func SaveToPath(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return writeLocked(path, data)
}

// CreateDefaultConfigFile writes a commented default config to path.
// An existing file is left untouched unless force is set.
func CreateDefaultConfigFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return writeLocked(path, []byte(generateDefaultConfigContent()))
}

func writeLocked(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer lock.Unlock()

	return os.WriteFile(path, data, 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# tourguide configuration\n\n")

	b.WriteString("[general]\n")
	b.WriteString("# Directory holding the guide's images\n")
	fmt.Fprintf(&b, "asset_dir = %q\n", cfg.General.AssetDir)
	b.WriteString("# Section selected at startup\n")
	fmt.Fprintf(&b, "default_section = %q\n\n", cfg.General.DefaultSection)

	b.WriteString("[open]\n")
	b.WriteString("# Commands used to open images and links (auto-detected if not set)\n")
	b.WriteString("# Template variables: {path}, {name} for images; {url} for links.\n")
	b.WriteString("# Variables are shell-escaped for safety.\n")
	b.WriteString("# image_command = \"feh {path}\"\n")
	b.WriteString("# link_command = \"firefox {url}\"\n\n")

	b.WriteString("[ui]\n")
	b.WriteString("# Color theme: \"auto\", \"dark\", \"light\", or \"notty\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Sidebar icons: \"unicode\", \"ascii\", or \"none\"\n")
	fmt.Fprintf(&b, "icons = %q\n", cfg.UI.Icons)
	b.WriteString("# Sidebar width in columns\n")
	fmt.Fprintf(&b, "sidebar_width = %d\n", cfg.UI.SidebarWidth)
	b.WriteString("# Wrap content at this column (0 = fit the pane)\n")
	fmt.Fprintf(&b, "word_wrap = %d\n", cfg.UI.WordWrap)
	b.WriteString("# Flag images missing from asset_dir\n")
	fmt.Fprintf(&b, "show_missing_images = %v\n\n", cfg.UI.ShowMissingImages)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# focus = %q\n", cfg.Keys.Focus)
	fmt.Fprintf(&b, "# filter = %q\n", cfg.Keys.Filter)
	fmt.Fprintf(&b, "# open_image = %q\n", cfg.Keys.OpenImage)
	fmt.Fprintf(&b, "# open_link = %q\n", cfg.Keys.OpenLink)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n", cfg.Keys.Quit)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	warnings = append(warnings, checkTemplateVars("open.image_command", c.Open.ImageCommand, "{path}", "{name}")...)
	warnings = append(warnings, checkTemplateVars("open.link_command", c.Open.LinkCommand, "{url}")...)

	if c.General.DefaultSection != "" {
		if _, ok := content.ParseSection(c.General.DefaultSection); !ok {
			warnings = append(warnings, fmt.Sprintf("Unknown section in general.default_section: %q", c.General.DefaultSection))
		}
	}

	if c.General.AssetDir != "" {
		if info, err := os.Stat(c.General.AssetDir); err != nil || !info.IsDir() {
			warnings = append(warnings, fmt.Sprintf("general.asset_dir is not a directory: %s", c.General.AssetDir))
		}
	}

	if c.UI.Theme != "" && !contains(validThemes, c.UI.Theme) {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.theme: %s (expected %s)", c.UI.Theme, strings.Join(validThemes, ", ")))
	}

	if c.UI.Icons != "" && !contains(validIcons, c.UI.Icons) {
		warnings = append(warnings, fmt.Sprintf("Invalid value for ui.icons: %s (expected %s)", c.UI.Icons, strings.Join(validIcons, ", ")))
	}

	if c.UI.SidebarWidth != 0 && (c.UI.SidebarWidth < MinSidebarWidth || c.UI.SidebarWidth > MaxSidebarWidth) {
		warnings = append(warnings, fmt.Sprintf("ui.sidebar_width must be %d-%d, got %d", MinSidebarWidth, MaxSidebarWidth, c.UI.SidebarWidth))
	}

	if c.UI.WordWrap < 0 {
		warnings = append(warnings, fmt.Sprintf("ui.word_wrap must not be negative, got %d", c.UI.WordWrap))
	}

	return warnings
}

func checkTemplateVars(field, command string, valid ...string) []string {
	var warnings []string
	for _, v := range extractTemplateVars(command) {
		if !contains(valid, v) {
			warnings = append(warnings, fmt.Sprintf("Unknown template variable in %s: %s", field, v))
		}
	}
	return warnings
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var templateVarRe = regexp.MustCompile(`\{[^}]+\}`)

// extractTemplateVars extracts template variables from a string.
func extractTemplateVars(s string) []string {
	return templateVarRe.FindAllString(s, -1)
}
