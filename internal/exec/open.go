// Package exec handles executing external commands.
package exec

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoCommand is returned when no open command is configured or detected.
var ErrNoCommand = errors.New("no open command available")

// Target is the thing being opened. Fields that do not apply stay empty.
type Target struct {
	// Path is the image file on disk
	Path string
	// URL is an external link
	URL string
}

// Name returns the base name of Path.
func (t Target) Name() string {
	if t.Path == "" {
		return ""
	}
	return filepath.Base(t.Path)
}

// OpenDetached runs command for target in a detached process.
// The viewer outlives the keypress that started it; tourguide does not wait.
func OpenDetached(command string, t Target) error {
	if strings.TrimSpace(command) == "" {
		return ErrNoCommand
	}

	expanded := Expand(command, t)

	cmd := exec.Command("sh", "-c", expanded)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	// Start the process but don't wait for it
	return cmd.Start()
}

// Expand expands template variables in command. Values are shell-quoted.
func Expand(command string, t Target) string {
	result := command

	// {path} - Full path to the image
	result = strings.ReplaceAll(result, "{path}", shellQuote(t.Path))

	// {name} - Image filename
	result = strings.ReplaceAll(result, "{name}", shellQuote(t.Name()))

	// {url} - Link target
	result = strings.ReplaceAll(result, "{url}", shellQuote(t.URL))

	return result
}

// shellQuote quotes s for sh unless it only contains safe characters.
func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	safe := true
	for _, r := range s {
		if !isSafeShellRune(r) {
			safe = false
			break
		}
	}
	if safe {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func isSafeShellRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return strings.ContainsRune("-_./:=@%+,", r)
}
