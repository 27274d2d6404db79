package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "streams")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_PlainList(t *testing.T) {
	path := writeFile(t, `Lakers vs Celtics 7:30 PM

# a comment
NBA: Heat vs Knicks
Coming Soon
`)

	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Lakers vs Celtics 7:30 PM",
		"NBA: Heat vs Knicks",
		"Coming Soon",
	}, names)
}

func TestLoad_M3U(t *testing.T) {
	path := writeFile(t, `#EXTM3U
#EXTINF:-1 tvg-id="x" group-title="NBA",Lakers vs Celtics 7:30 PM ET
http://example.com/stream/1
#EXTINF:-1,Heat @ Knicks
http://example.com/stream/2
#EXTVLCOPT:network-caching=1000
`)

	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Lakers vs Celtics 7:30 PM ET",
		"Heat @ Knicks",
	}, names)
}

func TestLoad_M3UWindowsLineEndings(t *testing.T) {
	path := writeFile(t, "#EXTM3U\r\n#EXTINF:-1,Bruins vs Rangers\r\nhttp://example.com/1\r\n")

	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bruins vs Rangers"}, names)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoad_EmptyFile(t *testing.T) {
	names, err := Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, names)
}
