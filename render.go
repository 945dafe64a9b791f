package mandel

import (
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"
)

// bandRows is the height of the row bands handed to parallel workers.
const bandRows = 16

// Render fills pixels, a row-major intensity buffer of size b, with the
// escape-time image of the plane rectangle spanned by upperLeft and lowerRight.
//
// It panics if len(pixels) != b.Width*b.Height.
func Render(pixels []byte, b Bounds, upperLeft, lowerRight complex128) {
	mustFit(pixels, b)
	renderBand(pixels, b, Plane{upperLeft, lowerRight}, image.Rectangle{Max: image.Pt(b.Width, b.Height)})
}

// RenderParallel produces the same bytes as Render, splitting the raster into
// row bands that are rendered by workers goroutines. workers <= 0 uses one
// goroutine per CPU.
func RenderParallel(pixels []byte, b Bounds, upperLeft, lowerRight complex128, workers int) {
	renderParallel(pixels, b, Plane{upperLeft, lowerRight}, workers, nil)
}

func renderParallel(pixels []byte, b Bounds, pl Plane, workers int, progress func(done float32)) {
	mustFit(pixels, b)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	bs := newBandScheduler(b, bandRows)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				band, found := bs.popBand()
				if !found {
					return
				}
				// each band owns a disjoint sub-slice of pixels
				dst := pixels[band.Min.Y*b.Width : band.Max.Y*b.Width]
				renderBand(dst, b, pl, band)
				done := bs.bandFinished(band)
				if progress != nil {
					progress(done)
				}
			}
		}()
	}
	wg.Wait()
}

// renderBand renders rows [band.Min.Y, band.Max.Y) into dst, which holds
// exactly those rows.
func renderBand(dst []byte, b Bounds, pl Plane, band image.Rectangle) {
	for row := band.Min.Y; row < band.Max.Y; row++ {
		line := dst[(row-band.Min.Y)*b.Width:]
		for col := 0; col < b.Width; col++ {
			point := PixelToPoint(b, Pixel{Col: col, Row: row}, pl.UpperLeft, pl.LowerRight)
			line[col] = Intensity(EscapeTime(point, MaxIterations))
		}
	}
}

func mustFit(pixels []byte, b Bounds) {
	overflows := b.Width > 0 && b.Height > 0 && b.Width > math.MaxInt/b.Height
	if overflows || len(pixels) != b.Pixels() {
		panic(fmt.Sprintf("mandel: buffer of %d bytes does not fit %dx%d raster", len(pixels), b.Width, b.Height))
	}
}
