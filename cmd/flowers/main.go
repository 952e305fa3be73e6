/*
Command flowers shows flowering vines growing in a terminal.

Usage:

	flowers [-config file.yaml] [-seed n] [-trace level] [-tracefile file]

Arrow keys move the view, '0' centers it again, 'r' replants all vines.
Esc, Ctrl-C or 'q' quit. With -dump, the effective configuration is
printed as YAML instead.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/flowers/config"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	seed := flag.Uint64("seed", 0, "random seed, overrides the configuration (0: keep)")
	traceLevel := flag.String("trace", "Error", "trace level: Error, Info or Debug")
	traceFile := flag.String("tracefile", "flowers.log", "file to write traces to")
	dump := flag.Bool("dump", false, "print the effective configuration and exit")
	flag.Parse()

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *dump {
		data, err := cfg.YAML()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	// the terminal is ours, tracing goes to a file
	f, err := os.Create(*traceFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create trace file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	setupTracing(f, *traceLevel)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	w, err := newWallpaper(screen, cfg)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	w.run()
	screen.Fini()
}
