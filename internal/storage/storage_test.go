package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFileHeader produces a real multipart.FileHeader by round-tripping a
// form through the http machinery.
func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestLocalStorageSaveFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	ls := NewLocalStorage(dir)

	fh := buildFileHeader(t, "masjid haram.jpg", []byte("jpeg-bytes"))

	url, err := ls.SaveFile(fh, "masjid haram.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/"), "local URL must be a server path")
	assert.True(t, strings.HasSuffix(url, ".jpg"))
	assert.NotContains(t, url, " ", "spaces must be normalized away")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	saved, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), saved)
}

func TestNormalizeFilenameStripsUnsafeRunes(t *testing.T) {
	// Urdu titles normalize to the fallback base name rather than an
	// empty one.
	got := normalizeFilename("مسجد نبوی.png")
	assert.True(t, strings.HasPrefix(got, "media_"))
	assert.True(t, strings.HasSuffix(got, ".png"))

	got = normalizeFilename("fateh makkah.mp4")
	assert.True(t, strings.HasPrefix(got, "fateh_makkah_"))
	assert.True(t, strings.HasSuffix(got, ".mp4"))
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/jpeg", ContentTypeFor("101.JPG"))
	assert.Equal(t, "video/mp4", ContentTypeFor("wudu.mp4"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("notes.txt"))
}
