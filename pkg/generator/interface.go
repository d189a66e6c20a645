package generator

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder is an image file format.
type Encoder interface {
	Name() string
	Encode(w io.Writer, img image.Image) error
}

var encoders = map[string]Encoder{
	".png":  pngEncoder{},
	".bmp":  bmpEncoder{},
	".tif":  tiffEncoder{},
	".tiff": tiffEncoder{},
}

type bmpEncoder struct{}

func (bmpEncoder) Name() string { return "BMP" }

func (bmpEncoder) Encode(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }

type tiffEncoder struct{}

func (tiffEncoder) Name() string { return "TIFF" }

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
}
