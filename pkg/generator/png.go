// png.go - PNG encoder.
package generator

import (
	"image"
	"image/png"
	"io"
)

type pngEncoder struct{}

func (pngEncoder) Name() string { return "PNG" }

// Encode uses best compression; the artwork is mostly flat colour and
// compresses well, and store consoles cap upload sizes.
func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}
