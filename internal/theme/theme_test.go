package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 128, 0, 255}, c)

	c, err = ParseColor("#11223344")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x11, 0x22, 0x33, 0x44}, c)
	assert.Equal(t, "#11223344", FormatColor(c))

	_, err = ParseColor("FF8000")
	assert.Error(t, err)
	_, err = ParseColor("#FFF")
	assert.Error(t, err)
	_, err = ParseColor("#GG0000")
	assert.Error(t, err)
}

func TestParseKeepsDefaultsAndIgnoresUnknown(t *testing.T) {
	th, err := Parse(strings.NewReader("Name: Mine\n# comment\nselectiona: #010203\nSparkle: #FFFFFF\n"))
	require.NoError(t, err)
	assert.Equal(t, "Mine", th.Name)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, th.SelectionA)
	assert.Equal(t, Default().CheckerDark, th.CheckerDark)

	_, err = Parse(strings.NewReader("Background: red\n"))
	assert.Error(t, err)
}

func TestLoaderSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\n"), 0o644))
	l := &Loader{ConfigDir: dir}

	th, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, "Default", th.Name)

	th, err = l.Load("dark")
	require.NoError(t, err)
	assert.Equal(t, "Dark", th.Name)

	th, err = l.Load("mine")
	require.NoError(t, err)
	assert.Equal(t, "Mine", th.Name)

	th, err = l.Load(filepath.Join(dir, "mine.theme"))
	require.NoError(t, err)
	assert.Equal(t, "Mine", th.Name)

	_, err = l.Load("missing")
	assert.Error(t, err)
}

func TestFields(t *testing.T) {
	fields := Fields(Default())
	require.NotEmpty(t, fields)
	assert.Equal(t, "Background", fields[0].Name)
}
