package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/go-room-raytracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 320, "Render width in pixels")
	height := flag.Int("height", 240, "Render height in pixels")
	scale := flag.Int("scale", 2, "Window pixels per rendered pixel")
	flag.Parse()

	if *width <= 0 || *height <= 0 || *scale <= 0 {
		fmt.Fprintln(os.Stderr, "width, height, and scale must be positive")
		os.Exit(1)
	}

	g := newGame(scene.NewRoomScene(), *width, *height, *scale)

	ebiten.SetWindowTitle("Ray Tracing Room (WASDQE move, IJKLUO move light, ESC exit)")
	ebiten.SetWindowSize(*width**scale, *height**scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	fmt.Println("Controls:")
	fmt.Println("  W/S: move camera along z")
	fmt.Println("  A/D: move camera along x")
	fmt.Println("  Q/E: move camera along y")
	fmt.Println("  I/K, J/L, U/O: move light along z/x/y")
	fmt.Println("  ESC: quit")

	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
