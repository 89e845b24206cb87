package renderer

import (
	"math"

	"github.com/df07/go-room-raytracer/pkg/core"
)

// CameraConfig holds camera parameters for a render
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // World up direction, defaults to (0,1,0)
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
	VFov   float64   // Vertical field of view in degrees, defaults to 45
}

// Camera generates primary rays from an orthonormal basis built out of a
// position and look-at point
type Camera struct {
	center  core.Vec3
	forward core.Vec3
	right   core.Vec3
	up      core.Vec3
	width   int
	height  int
	aspect  float64
	scale   float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	worldUp := config.Up
	if worldUp.LengthSquared() == 0 {
		worldUp = core.NewVec3(0, 1, 0)
	}

	forward := config.LookAt.Subtract(config.Center).Normalize()

	right := forward.Cross(worldUp)
	if right.LengthSquared() < 1e-6 {
		// Forward is collinear with the up axis; fall back to an alternate
		// up so the basis stays well defined
		worldUp = core.NewVec3(0, 0, 1)
		right = forward.Cross(worldUp)
	}
	right = right.Normalize()

	up := right.Cross(forward).Normalize()

	vfov := config.VFov
	if vfov == 0 {
		vfov = 45.0
	}

	return &Camera{
		center:  config.Center,
		forward: forward,
		right:   right,
		up:      up,
		width:   config.Width,
		height:  config.Height,
		aspect:  float64(config.Width) / float64(config.Height),
		scale:   math.Tan(vfov * math.Pi / 180.0 / 2.0),
	}
}

// GetRay generates the primary ray through pixel (i, j).
// Row 0 is the top of the image.
func (c *Camera) GetRay(i, j int) core.Ray {
	// Pixel center in normalized device coordinates [-1, 1]
	u := (2.0*((float64(i)+0.5)/float64(c.width)) - 1.0) * c.aspect * c.scale
	v := (1.0 - 2.0*((float64(j)+0.5)/float64(c.height))) * c.scale

	direction := c.forward.
		Add(c.right.Multiply(u)).
		Add(c.up.Multiply(v)).
		Normalize()

	return core.NewRay(c.center, direction)
}
