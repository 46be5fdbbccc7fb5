package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// encodePPM writes img as a plain-text P3 portable pixmap, one pixel per
// line, rows from the top
func encodePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy()); err != nil {
		return err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", c.R, c.G, c.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
