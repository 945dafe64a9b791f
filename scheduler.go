package mandel

import (
	"image"
	"sync"
)

// bandScheduler hands out the row bands of one raster to render workers.
// Every band is given out exactly once, so workers never share rows.
type bandScheduler struct {
	totalPixels    int
	finishedPixels int

	unstarted []image.Rectangle
	inProcess map[image.Rectangle]struct{}
	m         sync.Mutex
}

func newBandScheduler(b Bounds, rows int) *bandScheduler {
	return &bandScheduler{
		totalPixels: b.Pixels(),
		unstarted:   splitRows(image.Rectangle{Max: image.Pt(b.Width, b.Height)}, rows),
		inProcess:   make(map[image.Rectangle]struct{}),
	}
}

// popBand returns the topmost band nobody has started yet.
func (bs *bandScheduler) popBand() (band image.Rectangle, found bool) {
	bs.m.Lock()
	defer bs.m.Unlock()

	if len(bs.unstarted) == 0 {
		return image.Rectangle{}, false
	}
	band = bs.unstarted[0]
	bs.unstarted = bs.unstarted[1:]
	bs.inProcess[band] = struct{}{}
	return band, true
}

// bandFinished marks band as rendered and returns the finished fraction of the raster.
func (bs *bandScheduler) bandFinished(band image.Rectangle) float32 {
	bs.m.Lock()
	defer bs.m.Unlock()

	if _, found := bs.inProcess[band]; found {
		bs.finishedPixels += band.Dx() * band.Dy()
		delete(bs.inProcess, band)
	}
	if bs.totalPixels == 0 {
		return 1
	}
	return float32(bs.finishedPixels) / float32(bs.totalPixels)
}

// splitRows splits r into full-width bands of rows rows each.
// The bottom band is shorter if r.Dy() is not divisible by rows.
func splitRows(r image.Rectangle, rows int) []image.Rectangle {
	if rows <= 0 {
		panic("band height must be positive")
	}

	var bands []image.Rectangle
	for oy := r.Min.Y; oy < r.Max.Y; oy += rows {
		bands = append(bands, image.Rectangle{
			Min: image.Pt(r.Min.X, oy),
			Max: image.Pt(r.Max.X, min(oy+rows, r.Max.Y)),
		})
	}
	return bands
}
