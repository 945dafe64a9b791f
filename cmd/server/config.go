package main

import (
	"flag"
	"io"
	"time"
)

type config struct {
	addr              string
	workers           int
	maxPixels         int
	readHeaderTimeout time.Duration
	staticDir         string
}

func parseFlags(args []string, output io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.addr, "addr", ":8080", "http listen address")
	fs.IntVar(&cfg.workers, "workers", -1, "render goroutines per request; 0 renders sequentially, negative uses one per CPU")
	fs.IntVar(&cfg.maxPixels, "max-pixels", 16<<20, "largest image a request may ask for; 0 disables the limit")
	fs.DurationVar(&cfg.readHeaderTimeout, "read-header-timeout", 5*time.Second, "http read header timeout")
	fs.StringVar(&cfg.staticDir, "static", "", "optional directory served at /")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	return cfg, nil
}
