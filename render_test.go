package mandel

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestRenderKnownPixels(t *testing.T) {
	pixels := make([]byte, 2)
	Render(pixels, Bounds{2, 1}, complex(-1, 0), complex(3, -1))

	// -1 is in the set, 1 escapes on iteration 2
	if want := []byte{0, 253}; !bytes.Equal(pixels, want) {
		t.Errorf("Render = %v, want %v", pixels, want)
	}
}

func TestRenderMatchesPerPixelEvaluation(t *testing.T) {
	b := Bounds{37, 23}
	ul, lr := complex(-2.0, 1.2), complex(0.6, -1.2)
	pixels := make([]byte, b.Pixels())
	Render(pixels, b, ul, lr)

	for row := range b.Height {
		for col := range b.Width {
			want := Intensity(EscapeTime(PixelToPoint(b, Pixel{Col: col, Row: row}, ul, lr), MaxIterations))
			if got := pixels[row*b.Width+col]; got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", col, row, got, want)
			}
		}
	}
}

func TestRenderFullSetHasInsideAndOutside(t *testing.T) {
	b := Bounds{64, 48}
	pixels := make([]byte, b.Pixels())
	Render(pixels, b, FullSet.UpperLeft, FullSet.LowerRight)

	var inside, outside int
	for _, p := range pixels {
		if p == 0 {
			inside++
		} else {
			outside++
		}
	}
	if inside == 0 || outside == 0 {
		t.Errorf("inside = %d, outside = %d, want both non-zero", inside, outside)
	}
}

func TestRenderPanicsOnSizeMismatch(t *testing.T) {
	for _, n := range []int{0, 99, 101} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Render with %d bytes for 10x10 did not panic", n)
				}
			}()
			Render(make([]byte, n), Bounds{10, 10}, complex(-1, 1), complex(1, -1))
		})
	}
}

func TestRenderParallelPanicsOnSizeMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RenderParallel with a short buffer did not panic")
		}
	}()
	RenderParallel(make([]byte, 3), Bounds{2, 2}, complex(-1, 1), complex(1, -1), 4)
}

func TestRenderPanicsOnOverflowingBounds(t *testing.T) {
	// (MaxInt/2+1)*4 wraps around to 4
	b := Bounds{math.MaxInt/2 + 1, 4}
	for _, workers := range []int{0, 2} {
		t.Run(fmt.Sprint(workers), func(t *testing.T) {
			defer func() {
				msg, _ := recover().(string)
				if !strings.Contains(msg, "does not fit") {
					t.Errorf("recovered %q, want a buffer size panic", msg)
				}
			}()
			if workers == 0 {
				Render(make([]byte, 4), b, complex(-1, 1), complex(1, -1))
				return
			}
			RenderParallel(make([]byte, 4), b, complex(-1, 1), complex(1, -1), workers)
		})
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	sizes := []Bounds{{1, 1}, {17, 33}, {64, 16}, {100, 75}, {3, 200}, {8, 0}, {0, 8}}
	workers := []int{-1, 0, 1, 2, 3, 7, 64}
	planes := []Plane{FullSet, SeahorseValley, {UpperLeft: complex(1, -1), LowerRight: complex(-1, 1)}}

	for _, b := range sizes {
		for _, pl := range planes {
			want := make([]byte, b.Pixels())
			Render(want, b, pl.UpperLeft, pl.LowerRight)

			for _, w := range workers {
				got := make([]byte, b.Pixels())
				RenderParallel(got, b, pl.UpperLeft, pl.LowerRight, w)
				if !bytes.Equal(got, want) {
					t.Errorf("RenderParallel(%v, %v, workers=%d) differs from Render", b, pl, w)
				}
			}
		}
	}
}

func TestRenderOverwritesBuffer(t *testing.T) {
	b := Bounds{20, 20}
	want := make([]byte, b.Pixels())
	Render(want, b, FullSet.UpperLeft, FullSet.LowerRight)

	dirty := bytes.Repeat([]byte{0xaa}, b.Pixels())
	RenderParallel(dirty, b, FullSet.UpperLeft, FullSet.LowerRight, 3)
	if !bytes.Equal(dirty, want) {
		t.Error("RenderParallel left stale bytes in the buffer")
	}
}

func BenchmarkRender(b *testing.B) {
	bounds := Bounds{320, 240}
	pixels := make([]byte, bounds.Pixels())
	for b.Loop() {
		Render(pixels, bounds, FullSet.UpperLeft, FullSet.LowerRight)
	}
}

func BenchmarkRenderParallel(b *testing.B) {
	bounds := Bounds{320, 240}
	pixels := make([]byte, bounds.Pixels())
	for b.Loop() {
		RenderParallel(pixels, bounds, FullSet.UpperLeft, FullSet.LowerRight, 0)
	}
}
