package loaders

import (
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/df07/go-volume-raytracer/pkg/core"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// ErrTypeImageLoad is the error type of failures to read or decode an image
const ErrTypeImageLoad = "image_load"

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major from the top-left: Pixels[y*Width + x]
}

// At returns the color of pixel x, y
func (d *ImageData) At(x, y int) core.Vec3 {
	return d.Pixels[y*d.Width+x]
}

// LoadImage loads an image file and converts it to a Vec3 color array.
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognized from the file header.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.New("opening image file failed").
			WithType(ErrTypeImageLoad).
			WithTag("path", filename).
			Wrap(err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, errors.New("loading image failed").
			WithType(ErrTypeImageLoad).
			WithTag("path", filename).
			Wrap(err)
	}
	return data, nil
}

// DecodeImage decodes an image stream in any registered format
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, errors.New("decoding image failed").
			WithType(ErrTypeImageLoad).
			Wrap(err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return nil, errors.New("image is empty").
			WithType(ErrTypeImageLoad).
			WithTag("format", format)
	}

	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}
