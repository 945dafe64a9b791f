package main

import (
	"bytes"
	"context"
	"log"
	"time"

	mandel "github.com/marben/mandel_gray"
)

// renderService implements mandel.ImgProvider by rendering requests locally.
type renderService struct {
	workers   int
	maxPixels int
}

func newRenderService(cfg config) *renderService {
	return &renderService{
		workers:   cfg.workers,
		maxPixels: cfg.maxPixels,
	}
}

// GetImage implements mandel.ImgProvider.
func (s *renderService) GetImage(ctx context.Context, req mandel.RenderRequest) ([]byte, error) {
	job, err := req.Job()
	if err != nil {
		return nil, err
	}
	if err := job.Validate(s.maxPixels); err != nil {
		return nil, err
	}
	// rendering itself can't be interrupted, so don't start for a client that already left
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	job.Workers = s.workers
	start := time.Now()

	var buf bytes.Buffer
	if err := job.Encode(&buf); err != nil {
		return nil, err
	}

	log.Printf("rendered %dx%d %s..%s in %s",
		job.Bounds.Width, job.Bounds.Height,
		mandel.FormatComplex(job.Plane.UpperLeft), mandel.FormatComplex(job.Plane.LowerRight),
		time.Since(start))
	return buf.Bytes(), nil
}

var _ mandel.ImgProvider = (*renderService)(nil)
