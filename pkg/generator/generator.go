// Package generator writes rendered images to disk.
//
// The output format is inferred from the file extension. PNG is the default
// and the only format the store listing needs; BMP and TIFF are kept for
// previewing in tools that prefer them.
package generator

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for an output extension with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encode writes img to w in the format named by ext (".png", ".bmp", ".tif", ".tiff").
// An empty ext selects PNG.
func Encode(w io.Writer, ext string, img image.Image) error {
	enc, err := lookup(ext)
	if err != nil {
		return err
	}
	return enc.Encode(w, img)
}

// WriteFile encodes img into the file at output and returns the number of
// bytes written. The parent directory must already exist. The file is closed
// on every path; a failed close is reported like a failed write.
func WriteFile(output string, img image.Image) (n int64, err error) {
	ext := filepath.Ext(output)
	enc, err := lookup(ext)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", output, err)
	}

	f, err := os.Create(output)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", output, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", output, cerr)
		}
	}()

	cw := &countingWriter{w: f}
	if err := Encode(cw, ext, img); err != nil {
		return cw.n, fmt.Errorf("encode %s: %w", enc.Name(), err)
	}
	return cw.n, nil
}

func lookup(ext string) (Encoder, error) {
	ext = strings.ToLower(ext)
	if ext == "" {
		ext = ".png"
	}
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w %q: use .png, .bmp or .tiff", ErrUnsupportedFormat, ext)
	}
	return enc, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
