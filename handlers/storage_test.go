package handlers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTempUploadPathStaysInTempDir(t *testing.T) {
	for _, name := range []string{
		"photo.jpg",
		"../../etc/passwd",
		"..\\..\\windows\\system32\\config",
		"/absolute/path/pic.png",
	} {
		p := tempUploadPath(name)
		rel, err := filepath.Rel(os.TempDir(), p)
		require.NoError(t, err, name)
		assert.False(t, strings.HasPrefix(rel, ".."), "%s escaped to %s", name, p)
	}
}

func TestTempUploadPathKeepsExtension(t *testing.T) {
	assert.Equal(t, ".jpg", filepath.Ext(tempUploadPath("photo.jpg")))
	assert.Equal(t, ".png", filepath.Ext(tempUploadPath("../sneaky.png")))
	assert.Equal(t, "", filepath.Ext(tempUploadPath("noext")))
}

func TestTempUploadPathUniquePerCall(t *testing.T) {
	a := tempUploadPath("photo.jpg")
	b := tempUploadPath("photo.jpg")
	assert.NotEqual(t, a, b)
}
