package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/df07/go-room-raytracer/pkg/renderer"
	"github.com/df07/go-room-raytracer/pkg/scene"
)

func main() {
	// Parse command line flags
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 600, "Image height in pixels")
	output := flag.String("output", "render.png", "Output PNG path")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Room Raytracer")
		fmt.Println("Renders one frame of the room scene to a PNG file.")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("For the interactive window, run the viewer instead:")
		fmt.Println("  go run ./viewer")
		return
	}

	fb, err := renderRoom(*width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writePNG(fb, *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Image saved to: %s\n", *output)
}

// renderRoom renders one frame of the default room scene and reports timing
func renderRoom(width, height int) (*renderer.Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid resolution %dx%d: dimensions must be positive", width, height)
	}

	s := scene.NewRoomScene()

	startTime := time.Now()
	fb := renderer.RenderFrame(s, width, height)
	fmt.Printf("Rendered %dx%d frame in %v\n", width, height, time.Since(startTime))

	return fb, nil
}

func writePNG(fb *renderer.Framebuffer, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.RGBA()); err != nil {
		return fmt.Errorf("error encoding PNG: %w", err)
	}
	return nil
}
