// cliclient asks a running Mandelbrot server for a render over its websocket
// endpoint and saves the returned PNG.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	mandel "github.com/marben/mandel_gray"
)

var errUsage = errors.New("usage")

type config struct {
	server  string
	timeout time.Duration
	output  string
	request mandel.RenderRequest
}

// main is the entry point for the CLI client.
func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func parseArgs(args []string, output io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("cliclient", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "Usage: cliclient [flags] FILE PIXELS [UPPERLEFT LOWERRIGHT]")
		fmt.Fprintln(output, "Example: cliclient mandel.png 1000x750 -1.20,0.35 -1,0.20")
		fs.PrintDefaults()
	}
	fs.StringVar(&cfg.server, "server", "ws://localhost:8080/ws", "websocket endpoint of the render server")
	fs.StringVar(&cfg.request.Preset, "preset", "", "render a named region instead of UPPERLEFT LOWERRIGHT")
	fs.DurationVar(&cfg.timeout, "timeout", time.Minute, "how long to wait for the render")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	want := 4
	if cfg.request.Preset != "" {
		want = 2
	}
	if fs.NArg() != want {
		fs.Usage()
		return config{}, errUsage
	}

	cfg.output = fs.Arg(0)
	cfg.request.Size = fs.Arg(1)
	if want == 4 {
		cfg.request.UpperLeft = fs.Arg(2)
		cfg.request.LowerRight = fs.Arg(3)
	}

	// catch typos before bothering the server
	if _, err := cfg.request.Job(); err != nil {
		fmt.Fprintln(output, err)
		fs.Usage()
		return config{}, errUsage
	}
	return cfg, nil
}

// run connects to the Mandelbrot server, requests the render and saves it as a PNG file.
func run(cfg config) error {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.timeout)
	defer cancel()

	log.Printf("Connecting to Mandelbrot server at %s...", cfg.server)
	client, err := dialImgProvider(ctx, cfg.server)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer client.Close()

	log.Printf("Requesting %s render...", cfg.request.Size)
	img, err := client.GetImage(ctx, cfg.request)
	if err != nil {
		return fmt.Errorf("client.GetImage: %w", err)
	}

	if err := os.WriteFile(cfg.output, img, 0o644); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}

	log.Printf("Rendered image saved to %q", cfg.output)
	return nil
}
