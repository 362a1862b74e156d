// Package assets locates the image files referenced by the guide.
package assets

import (
	"os"
	"path/filepath"
)

// Locator resolves asset filenames against a directory.
type Locator struct {
	Dir string
}

// New returns a Locator rooted at dir. An empty dir means the working directory.
func New(dir string) Locator {
	if dir == "" {
		dir = "."
	}
	return Locator{Dir: dir}
}

// Path returns the on-disk path for name. Absolute names are returned unchanged.
func (l Locator) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(l.Dir, name)
}

// Exists reports whether name resolves to a regular file.
func (l Locator) Exists(name string) bool {
	info, err := os.Stat(l.Path(name))
	return err == nil && info.Mode().IsRegular()
}

// Missing returns the names that do not resolve, in input order.
func (l Locator) Missing(names []string) []string {
	var missing []string
	for _, name := range names {
		if !l.Exists(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
