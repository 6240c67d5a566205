package main

import (
	"flag"
	"fmt"
	"os"
)

// Config defines program configuration.
type Config struct {
	Shader  string // Path to the combined shader source file.
	Title   string // Window title.
	Width   int    // Window width in pixels.
	Height  int    // Window height in pixels.
	VSync   bool   // Synchronize buffer swaps with the display refresh?
	Profile bool   // Write a CPU profile on exit?
}

// parseArgs parses command line arguments as applicable.
//
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.Shader = "shaders/basic.shader"
	c.Title = "Hello World"
	c.Width = 640
	c.Height = 480
	c.VSync = true

	flag.Usage = func() {
		fmt.Printf("%s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&c.Shader, "shader", c.Shader, "Path to the shader source file.")
	flag.StringVar(&c.Title, "title", c.Title, "Window title.")
	flag.IntVar(&c.Width, "width", c.Width, "Window width in pixels.")
	flag.IntVar(&c.Height, "height", c.Height, "Window height in pixels.")
	flag.BoolVar(&c.VSync, "vsync", c.VSync, "Enable vertical sync.")
	flag.BoolVar(&c.Profile, "profile", c.Profile, "Write a CPU profile to the working directory.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	return &c
}
