package texture

import (
	"github.com/df07/go-volume-raytracer/pkg/core"
	"github.com/df07/go-volume-raytracer/pkg/loaders"
)

// missingImageColor flags surfaces whose image could not be loaded
var missingImageColor = core.NewVec3(0, 1, 1)

// ImageTexture maps u, v onto a decoded image with nearest-neighbor lookup.
// v=0 is the bottom row of the image.
type ImageTexture struct {
	Image *loaders.ImageData
}

// NewImageTexture creates a texture over decoded image data. A nil or empty
// image renders as solid cyan.
func NewImageTexture(image *loaders.ImageData) *ImageTexture {
	return &ImageTexture{Image: image}
}

// NewImageTextureFromFile loads an image file into a texture
func NewImageTextureFromFile(path string) (*ImageTexture, error) {
	image, err := loaders.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(image), nil
}

// Value returns the image color at u, v, clamping coordinates to the image
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Image == nil || t.Image.Width == 0 || t.Image.Height == 0 {
		return missingImageColor
	}

	u = core.UnitInterval.Clamp(u)
	v = 1 - core.UnitInterval.Clamp(v)

	x := min(int(u*float64(t.Image.Width)), t.Image.Width-1)
	y := min(int(v*float64(t.Image.Height)), t.Image.Height-1)

	return t.Image.At(x, y)
}
