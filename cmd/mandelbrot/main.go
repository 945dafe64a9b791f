// mandelbrot renders a region of the Mandelbrot set to a grayscale PNG file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	mandel "github.com/marben/mandel_gray"
)

var errUsage = errors.New("usage")

type config struct {
	output  string
	job     mandel.Job
	quiet   bool
	workers int
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(1)
	}

	if err := run(cfg, os.Stderr); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func parseArgs(args []string, output io.Writer) (config, error) {
	var (
		cfg    config
		preset string
	)

	fs := flag.NewFlagSet("mandelbrot", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: mandelbrot [flags] FILE PIXELS UPPERLEFT LOWERRIGHT")
		fmt.Fprintln(output, "       mandelbrot -preset NAME [flags] FILE PIXELS")
		fmt.Fprintln(output, "Example: mandelbrot mandel.png 1000x750 -1.20,0.35 -1,0.20")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Flags:")
		fs.PrintDefaults()
		fmt.Fprintln(output)
		fmt.Fprintf(output, "Presets: %s\n", strings.Join(mandel.PresetNames(), ", "))
	}
	fs.IntVar(&cfg.workers, "workers", 0, "render goroutines; 0 renders sequentially, negative uses one per CPU")
	fs.StringVar(&preset, "preset", "", "render a named region instead of UPPERLEFT LOWERRIGHT")
	fs.BoolVar(&cfg.quiet, "q", false, "don't log progress")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	var err error
	switch {
	case preset != "" && fs.NArg() == 2:
		cfg.job, err = mandel.PresetJob(fs.Arg(1), preset)
	case preset == "" && fs.NArg() == 4:
		cfg.job, err = mandel.ParseJob(fs.Arg(1), fs.Arg(2), fs.Arg(3))
	default:
		fs.Usage()
		return config{}, errUsage
	}
	if err != nil {
		fmt.Fprintf(output, "mandelbrot: %v\n", err)
		fs.Usage()
		return config{}, errUsage
	}

	cfg.output = fs.Arg(0)
	cfg.job.Workers = cfg.workers
	return cfg, nil
}

func run(cfg config, logOutput io.Writer) error {
	logger := log.New(logOutput, "", log.LstdFlags)
	if cfg.quiet {
		logger.SetOutput(io.Discard)
	}

	job := cfg.job
	if job.Workers != 0 {
		job.Progress = func(done float32) {
			logger.Printf("finished: %.0f%%", done*100)
		}
	}

	start := time.Now()
	pixels := job.Render()
	logger.Printf("rendered %dx%d in %s", job.Bounds.Width, job.Bounds.Height, time.Since(start))

	if err := mandel.WriteImage(cfg.output, pixels, job.Bounds); err != nil {
		return fmt.Errorf("error writing PNG file: %w", err)
	}
	logger.Printf("saved %q", cfg.output)
	return nil
}
