package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sd.jpg"), []byte("jpg"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "s1.png"), 0755))

	l := New(dir)
	assert.Equal(t, filepath.Join(dir, "sd.jpg"), l.Path("sd.jpg"))
	assert.True(t, l.Exists("sd.jpg"))
	assert.False(t, l.Exists("sdd.png"))
	assert.False(t, l.Exists("s1.png"), "directories are not assets")

	assert.Equal(t, []string{"sdd.png", "s1.png"}, l.Missing([]string{"sd.jpg", "sdd.png", "s1.png"}))
	assert.Empty(t, l.Missing([]string{"sd.jpg"}))
}

func TestLocatorDefaults(t *testing.T) {
	assert.Equal(t, ".", New("").Dir)
	abs := filepath.Join(t.TempDir(), "x.png")
	assert.Equal(t, abs, New("assets").Path(abs))
}
