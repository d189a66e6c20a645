package generator

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#2E7D32", color.RGBA{46, 125, 50, 255}},
		{"1b5e20", color.RGBA{27, 94, 32, 255}},
		{"#fff", color.RGBA{255, 255, 255, 255}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"#12345", "#1234567", "", "#", "nope", "#ggg"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestWriteFileReportsSize(t *testing.T) {
	img := NewSolidImage(16, 8, color.RGBA{13, 61, 26, 255})
	out := filepath.Join(t.TempDir(), "solid.png")

	n, err := WriteFile(out, img)
	require.NoError(t, err)

	st, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, st.Size(), n)
	assert.Positive(t, n)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 16, 8), decoded.Bounds())
}

func TestWriteFileOtherFormats(t *testing.T) {
	img := NewSolidImage(4, 4, color.RGBA{255, 0, 0, 255})
	dir := t.TempDir()
	for _, name := range []string{"a.bmp", "a.tif", "a.TIFF"} {
		n, err := WriteFile(filepath.Join(dir, name), img)
		require.NoError(t, err, name)
		assert.Positive(t, n, name)
	}
}

func TestWriteFileErrors(t *testing.T) {
	img := NewSolidImage(2, 2, color.RGBA{A: 255})

	_, err := WriteFile(filepath.Join(t.TempDir(), "a.gif"), img)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = WriteFile(filepath.Join(t.TempDir(), "missing", "a.png"), img)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestEncodeDefaultsToPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "", NewSolidImage(3, 3, color.RGBA{A: 255})))
	assert.Equal(t, "\x89PNG", buf.String()[:4])
}
