package mandel

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// ErrBufferSize is returned when an intensity buffer does not match its bounds.
var ErrBufferSize = errors.New("mandel: buffer size does not match bounds")

// GrayImage wraps pixels in an *image.Gray without copying.
func GrayImage(pixels []byte, b Bounds) (*image.Gray, error) {
	if len(pixels) != b.Pixels() {
		return nil, fmt.Errorf("%w: %d bytes for %dx%d", ErrBufferSize, len(pixels), b.Width, b.Height)
	}
	return &image.Gray{
		Pix:    pixels,
		Stride: b.Width,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}, nil
}

// EncodeImage writes pixels to w as an 8-bit grayscale PNG.
func EncodeImage(w io.Writer, pixels []byte, b Bounds) error {
	img, err := GrayImage(pixels, b)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png.Encode: %w", err)
	}
	return nil
}

// WriteImage saves pixels to filename as an 8-bit grayscale PNG.
func WriteImage(filename string, pixels []byte, b Bounds) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return EncodeImage(f, pixels, b)
}
