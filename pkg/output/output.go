package output

import (
	"bufio"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrTypeUnsupportedFormat is the error type of unknown image formats
const ErrTypeUnsupportedFormat = "unsupported_format"

const jpegQuality = 95

// Format is an image file format renders can be written in
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	PPM  Format = "ppm"
)

// Formats lists the supported formats
var Formats = []Format{PNG, JPEG, BMP, TIFF, PPM}

// ParseFormat returns the format named name, accepting common aliases and
// any letter case
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "jpeg", "jpg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	case "ppm":
		return PPM, nil
	default:
		return "", errors.New("unsupported image format").
			WithType(ErrTypeUnsupportedFormat).
			WithTag("format", name)
	}
}

// FormatFromPath infers the format from a file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.New("output path has no extension").
			WithType(ErrTypeUnsupportedFormat).
			WithTag("path", path)
	}
	return ParseFormat(ext)
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case PNG:
		err = png.Encode(w, img)
	case JPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case PPM:
		err = encodePPM(w, img)
	default:
		return errors.New("unsupported image format").
			WithType(ErrTypeUnsupportedFormat).
			WithTag("format", format)
	}

	if err != nil {
		return errors.New("encoding image failed").
			WithTag("format", format).
			Wrap(err)
	}
	return nil
}

// WriteFile encodes img into a new file at path, creating parent directories
func WriteFile(path string, img image.Image, format Format) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.New("creating output directory failed").
				WithTag("dir", dir).
				Wrap(err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.New("creating output file failed").
			WithTag("path", path).
			Wrap(err)
	}

	w := bufio.NewWriter(file)
	if err := Encode(w, img, format); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return errors.New("writing output file failed").
			WithTag("path", path).
			Wrap(err)
	}
	if err := file.Close(); err != nil {
		return errors.New("closing output file failed").
			WithTag("path", path).
			Wrap(err)
	}
	return nil
}
