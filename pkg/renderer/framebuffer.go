package renderer

import (
	"image"

	"github.com/df07/go-room-raytracer/pkg/core"
)

// Framebuffer is a flat RGB byte buffer, 3 bytes per pixel, row-major with
// row 0 at the top. It is exclusively owned by the renderer while a frame
// is being written and is suitable for direct upload to a display surface.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []byte // length Width*Height*3
}

// NewFramebuffer allocates a framebuffer for the given resolution
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

// setRGB quantizes a clamped [0,1] color into the pixel at (i, j)
func (f *Framebuffer) setRGB(i, j int, color core.Vec3) {
	idx := (j*f.Width + i) * 3
	f.Pix[idx+0] = byte(color.X * 255.0)
	f.Pix[idx+1] = byte(color.Y * 255.0)
	f.Pix[idx+2] = byte(color.Z * 255.0)
}

// RGBA expands the buffer into an *image.RGBA for PNG encoding or pixel
// upload to a window
func (f *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i := 0; i < f.Width*f.Height; i++ {
		src := i * 3
		dst := i * 4
		img.Pix[dst+0] = f.Pix[src+0]
		img.Pix[dst+1] = f.Pix[src+1]
		img.Pix[dst+2] = f.Pix[src+2]
		img.Pix[dst+3] = 0xFF
	}
	return img
}
