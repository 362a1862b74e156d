package exec

import (
	"os"
	"runtime"
)

// ViewerBackend knows how to open images and links on the current desktop.
type ViewerBackend interface {
	// Name returns the human-readable name (e.g., "xdg-open", "open").
	Name() string

	// ImageCommand returns the default command template for images.
	ImageCommand() string

	// LinkCommand returns the default command template for URLs.
	LinkCommand() string
}

// xdgBackend uses xdg-open on Linux and BSD desktops.
type xdgBackend struct{}

func (x *xdgBackend) Name() string         { return "xdg-open" }
func (x *xdgBackend) ImageCommand() string { return "xdg-open {path}" }
func (x *xdgBackend) LinkCommand() string  { return "xdg-open {url}" }

// macBackend uses the macOS open command.
type macBackend struct{}

func (m *macBackend) Name() string         { return "open" }
func (m *macBackend) ImageCommand() string { return "open {path}" }
func (m *macBackend) LinkCommand() string  { return "open {url}" }

// noneBackend is used when there is no graphical session to hand off to.
type noneBackend struct{}

func (n *noneBackend) Name() string         { return "" }
func (n *noneBackend) ImageCommand() string { return "" }
func (n *noneBackend) LinkCommand() string  { return "" }

var viewerBackend ViewerBackend

// Backend returns the ViewerBackend for the current environment.
// The backend is cached for the lifetime of the process.
func Backend() ViewerBackend {
	if viewerBackend != nil {
		return viewerBackend
	}
	viewerBackend = detectBackend(runtime.GOOS, os.Getenv)
	return viewerBackend
}

func detectBackend(goos string, getenv func(string) string) ViewerBackend {
	if goos == "darwin" {
		return &macBackend{}
	}

	// SSH sessions without forwarding have nowhere to show a window
	if getenv("SSH_CONNECTION") != "" && getenv("DISPLAY") == "" {
		return &noneBackend{}
	}

	if getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != "" || getenv("WSL_DISTRO_NAME") != "" {
		return &xdgBackend{}
	}

	return &noneBackend{}
}

// ResetBackend resets the cached backend (useful for testing).
func ResetBackend() {
	viewerBackend = nil
}

// ImageCommand returns configured if set, otherwise the backend default.
func ImageCommand(configured string) string {
	if configured != "" {
		return configured
	}
	return Backend().ImageCommand()
}

// LinkCommand returns configured if set, otherwise the backend default.
func LinkCommand(configured string) string {
	if configured != "" {
		return configured
	}
	return Backend().LinkCommand()
}
