package mandel

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		name string
		r    image.Rectangle
		rows int
		want []image.Rectangle
	}{
		{
			name: "divisible",
			r:    image.Rect(0, 0, 10, 4),
			rows: 2,
			want: []image.Rectangle{image.Rect(0, 0, 10, 2), image.Rect(0, 2, 10, 4)},
		},
		{
			name: "short last band",
			r:    image.Rect(0, 0, 5, 5),
			rows: 2,
			want: []image.Rectangle{image.Rect(0, 0, 5, 2), image.Rect(0, 2, 5, 4), image.Rect(0, 4, 5, 5)},
		},
		{
			name: "band taller than raster",
			r:    image.Rect(0, 0, 5, 3),
			rows: 16,
			want: []image.Rectangle{image.Rect(0, 0, 5, 3)},
		},
		{
			name: "offset origin",
			r:    image.Rect(2, 10, 4, 13),
			rows: 2,
			want: []image.Rectangle{image.Rect(2, 10, 4, 12), image.Rect(2, 12, 4, 13)},
		},
		{
			name: "empty",
			r:    image.Rectangle{},
			rows: 4,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitRows(tt.r, tt.rows)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("splitRows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitRowsPanicsOnZeroHeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("splitRows(0) did not panic")
		}
	}()
	splitRows(image.Rect(0, 0, 1, 1), 0)
}

func TestBandSchedulerHandsOutEveryRowOnce(t *testing.T) {
	b := Bounds{7, 50}
	bs := newBandScheduler(b, 16)

	seen := make(map[int]bool)
	var (
		bands int
		done  float32
	)
	for {
		band, found := bs.popBand()
		if !found {
			break
		}
		bands++
		if band.Min.X != 0 || band.Max.X != b.Width {
			t.Errorf("band %v does not span the full width", band)
		}
		for row := band.Min.Y; row < band.Max.Y; row++ {
			if seen[row] {
				t.Errorf("row %d handed out twice", row)
			}
			seen[row] = true
		}
		done = bs.bandFinished(band)
	}

	if bands != 4 {
		t.Errorf("got %d bands, want 4", bands)
	}
	if len(seen) != b.Height {
		t.Errorf("covered %d rows, want %d", len(seen), b.Height)
	}
	if done != 1 {
		t.Errorf("last bandFinished = %v, want 1", done)
	}
}

func TestBandSchedulerProgress(t *testing.T) {
	bs := newBandScheduler(Bounds{10, 4}, 1)

	first, _ := bs.popBand()
	second, _ := bs.popBand()
	if got := bs.bandFinished(first); got != 0.25 {
		t.Errorf("bandFinished = %v, want 0.25", got)
	}
	// a band reported twice is only counted once
	if got := bs.bandFinished(first); got != 0.25 {
		t.Errorf("repeated bandFinished = %v, want 0.25", got)
	}
	// a band that was never handed out is not counted
	if got := bs.bandFinished(image.Rect(0, 3, 10, 4)); got != 0.25 {
		t.Errorf("bandFinished of an unstarted band = %v, want 0.25", got)
	}
	if got := bs.bandFinished(second); got != 0.5 {
		t.Errorf("bandFinished = %v, want 0.5", got)
	}
}

func TestBandSchedulerEmptyRaster(t *testing.T) {
	bs := newBandScheduler(Bounds{0, 0}, 16)
	if _, found := bs.popBand(); found {
		t.Error("empty raster produced a band")
	}
}
