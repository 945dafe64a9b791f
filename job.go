package mandel

import (
	"errors"
	"fmt"
	"io"
	"math"
)

var (
	ErrBadSize       = errors.New("mandel: size must be WxH with positive integers")
	ErrBadPoint      = errors.New("mandel: point must be re,im")
	ErrUnknownPreset = errors.New("mandel: unknown preset")
	ErrTooLarge      = errors.New("mandel: image too large")
)

// Job is a single render: a raster size and the plane rectangle it shows.
type Job struct {
	Bounds Bounds
	Plane  Plane

	// Workers selects the renderer: 0 renders sequentially, n > 0 uses n
	// goroutines and n < 0 one goroutine per CPU.
	Workers int

	// Progress, if set, is called by parallel renders after every finished
	// band with the finished fraction of the raster. It is called from the
	// render goroutines and may run concurrently with itself.
	Progress func(done float32)
}

// ParseJob builds a job from textual arguments such as "800x600", "-1.2,0.35", "-1,0.2".
func ParseJob(size, upperLeft, lowerRight string) (Job, error) {
	b, ok := ParseBounds(size)
	if !ok {
		return Job{}, fmt.Errorf("%w: %q", ErrBadSize, size)
	}
	ul, ok := ParseComplex(upperLeft)
	if !ok {
		return Job{}, fmt.Errorf("upper left corner: %w: %q", ErrBadPoint, upperLeft)
	}
	lr, ok := ParseComplex(lowerRight)
	if !ok {
		return Job{}, fmt.Errorf("lower right corner: %w: %q", ErrBadPoint, lowerRight)
	}
	return Job{Bounds: b, Plane: Plane{UpperLeft: ul, LowerRight: lr}}, nil
}

// PresetJob builds a job rendering the named preset region.
func PresetJob(size, preset string) (Job, error) {
	b, ok := ParseBounds(size)
	if !ok {
		return Job{}, fmt.Errorf("%w: %q", ErrBadSize, size)
	}
	pl, ok := LookupPreset(preset)
	if !ok {
		return Job{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
	}
	return Job{Bounds: b, Plane: pl}, nil
}

// Validate rejects jobs with more than maxPixels pixels. maxPixels <= 0 disables the check.
func (j Job) Validate(maxPixels int) error {
	if j.Bounds.Width <= 0 || j.Bounds.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrBadSize, j.Bounds.Width, j.Bounds.Height)
	}
	if j.Bounds.Width > math.MaxInt/j.Bounds.Height {
		return fmt.Errorf("%w: %dx%d overflows the pixel count", ErrTooLarge, j.Bounds.Width, j.Bounds.Height)
	}
	if maxPixels > 0 && j.Bounds.Width > maxPixels/j.Bounds.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, j.Bounds.Width, j.Bounds.Height, maxPixels)
	}
	return nil
}

// Render allocates the intensity buffer and renders the job into it.
func (j Job) Render() []byte {
	pixels := make([]byte, j.Bounds.Pixels())
	if j.Workers == 0 {
		Render(pixels, j.Bounds, j.Plane.UpperLeft, j.Plane.LowerRight)
		return pixels
	}
	renderParallel(pixels, j.Bounds, j.Plane, j.Workers, j.Progress)
	return pixels
}

// Encode renders the job and writes it to w as PNG.
func (j Job) Encode(w io.Writer) error {
	return EncodeImage(w, j.Render(), j.Bounds)
}
