package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/df07/go-room-raytracer/pkg/core"
	"github.com/df07/go-room-raytracer/pkg/renderer"
	"github.com/df07/go-room-raytracer/pkg/scene"
)

// Movement step per key press, matching the room scale
const (
	cameraStep = 0.3
	lightStep  = 0.3
)

// game owns the scene between frames and re-renders whenever the camera,
// the light, or the render resolution changes. The scene is never mutated
// while a frame is being rendered: input is applied in Update, rendering
// happens in Draw.
type game struct {
	scene *scene.Scene
	scale int

	width  int
	height int
	fb     *renderer.Framebuffer
	img    *ebiten.Image
	dirty  bool
}

func newGame(s *scene.Scene, width, height, scale int) *game {
	return &game{
		scene:  s,
		scale:  scale,
		width:  width,
		height: height,
		dirty:  true,
	}
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	moved := false
	moveCamera := func(key ebiten.Key, delta core.Vec3) {
		if inpututil.IsKeyJustPressed(key) {
			g.scene.MoveCamera(delta)
			moved = true
		}
	}
	moveLight := func(key ebiten.Key, delta core.Vec3) {
		if inpututil.IsKeyJustPressed(key) {
			g.scene.MoveLight(delta)
			moved = true
		}
	}

	// Camera: W/S along z, A/D along x, Q/E along y; the look-at point
	// moves with it so the view direction stays fixed
	moveCamera(ebiten.KeyW, core.NewVec3(0, 0, -cameraStep))
	moveCamera(ebiten.KeyS, core.NewVec3(0, 0, cameraStep))
	moveCamera(ebiten.KeyA, core.NewVec3(-cameraStep, 0, 0))
	moveCamera(ebiten.KeyD, core.NewVec3(cameraStep, 0, 0))
	moveCamera(ebiten.KeyQ, core.NewVec3(0, cameraStep, 0))
	moveCamera(ebiten.KeyE, core.NewVec3(0, -cameraStep, 0))

	// Light: I/K along z, J/L along x, U/O along y
	moveLight(ebiten.KeyI, core.NewVec3(0, 0, -lightStep))
	moveLight(ebiten.KeyK, core.NewVec3(0, 0, lightStep))
	moveLight(ebiten.KeyJ, core.NewVec3(-lightStep, 0, 0))
	moveLight(ebiten.KeyL, core.NewVec3(lightStep, 0, 0))
	moveLight(ebiten.KeyU, core.NewVec3(0, lightStep, 0))
	moveLight(ebiten.KeyO, core.NewVec3(0, -lightStep, 0))

	if moved {
		center, _ := g.scene.GetCameraPose()
		light := g.scene.GetLight()
		fmt.Printf("Camera: (%.1f, %.1f, %.1f)  Light: (%.1f, %.1f, %.1f)\n",
			center.X, center.Y, center.Z, light.X, light.Y, light.Z)
		g.dirty = true
	}

	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.dirty || g.fb == nil {
		g.fb = renderer.RenderFrame(g.scene, g.width, g.height)
		if g.img == nil || g.img.Bounds().Dx() != g.width || g.img.Bounds().Dy() != g.height {
			g.img = ebiten.NewImage(g.width, g.height)
		}
		g.img.WritePixels(g.fb.RGBA().Pix)
		g.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

// Layout renders at 1/scale of the window size. Resizing the window
// reallocates the framebuffer before the next render, never mid-frame.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(1, outsideWidth/g.scale)
	h := max(1, outsideHeight/g.scale)
	if w != g.width || h != g.height {
		g.width, g.height = w, h
		g.dirty = true
	}
	return w, h
}
