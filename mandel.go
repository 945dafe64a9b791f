package mandel

// MaxIterations is the escape-time budget used when rasterizing.
const MaxIterations = 255

// Bounds is the size of the output raster in pixels.
type Bounds struct {
	Width, Height int
}

// Pixels returns the number of pixels, which is also the length of the
// intensity buffer for a raster of this size.
func (b Bounds) Pixels() int {
	return b.Width * b.Height
}

// Pixel addresses one pixel of the raster, 0-indexed from the upper-left corner.
type Pixel struct {
	Col, Row int
}

// Plane is the rectangle of the complex plane mapped onto the raster.
// Corners are not required to be ordered; an inverted rectangle mirrors the image.
type Plane struct {
	UpperLeft, LowerRight complex128
}

// PixelToPoint is shorthand for PixelToPoint(b, p, pl.UpperLeft, pl.LowerRight).
func (pl Plane) PixelToPoint(b Bounds, p Pixel) complex128 {
	return PixelToPoint(b, p, pl.UpperLeft, pl.LowerRight)
}

// PixelToPoint returns the point of the complex plane that pixel p of a
// raster of size b corresponds to.
//
// Columns run along the real axis, rows run down the imaginary axis, so row 0
// lies on imag(upperLeft). Pixels outside b are extrapolated, and a zero
// dimension in b yields NaN or Inf components.
func PixelToPoint(b Bounds, p Pixel, upperLeft, lowerRight complex128) complex128 {
	width := real(lowerRight) - real(upperLeft)
	height := imag(upperLeft) - imag(lowerRight)

	return complex(
		real(upperLeft)+float64(p.Col)*width/float64(b.Width),
		imag(upperLeft)-float64(p.Row)*height/float64(b.Height),
	)
}

// EscapeTime iterates z = z*z + c from z = 0 at most limit times.
// If |z| exceeds 2 it returns the 0-based index of that iteration and true.
// A point that stays bounded for the whole budget reports false.
func EscapeTime(c complex128, limit int) (int, bool) {
	var z complex128
	for i := range limit {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
	}
	return 0, false
}

// Intensity converts an escape time into a gray level.
// Points inside the set are black, points escaping fast are bright.
func Intensity(count int, escaped bool) byte {
	if !escaped {
		return 0
	}
	return byte(MaxIterations - count)
}
