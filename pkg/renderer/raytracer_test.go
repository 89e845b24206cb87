package renderer

import (
	"bytes"
	"testing"

	"github.com/df07/go-room-raytracer/pkg/core"
	"github.com/df07/go-room-raytracer/pkg/geometry"
	"github.com/df07/go-room-raytracer/pkg/scene"
)

// testScene is a minimal Scene implementation for exercising the tracer
// with hand-placed geometry
type testScene struct {
	shapes     []core.Shape
	center     core.Vec3
	lookAt     core.Vec3
	light      core.Vec3
	background core.Vec3

	getShapesCalls int
}

func (s *testScene) GetShapes() []core.Shape {
	s.getShapesCalls++
	return s.shapes
}
func (s *testScene) GetCameraPose() (center, lookAt core.Vec3) {
	return s.center, s.lookAt
}
func (s *testScene) GetLight() core.Vec3      { return s.light }
func (s *testScene) GetBackground() core.Vec3 { return s.background }

func roomBounds() core.AABB {
	return core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(5, 3, 5))
}

func TestTrace_EscapedRayReturnsBackground(t *testing.T) {
	s := &testScene{
		center:     core.NewVec3(2.5, 1.5, 8.0),
		lookAt:     core.NewVec3(2.5, 1.5, 9.0), // Looking away from everything
		light:      core.NewVec3(2.5, 3.0, 6.0),
		background: core.NewVec3(0.2, 0.3, 0.5),
	}

	fb := RenderFrame(s, 1, 1)

	// (0.2, 0.3, 0.5) quantized with floor(c*255)
	expected := []byte{51, 76, 127}
	if !bytes.Equal(fb.Pix, expected) {
		t.Errorf("Expected background pixel %v, got %v", expected, fb.Pix)
	}
}

func TestTrace_OccludedPointIsAmbientOnly(t *testing.T) {
	white := core.Material{Albedo: core.NewVec3(1, 1, 1)}
	floor := geometry.NewRoomPlane(core.NewVec3(0, 1, 0), 0, roomBounds(), white)
	// Occluder directly between the floor point and the light
	occluder := geometry.NewSphere(core.NewVec3(2.5, 1.5, 2.5), 0.4, white)

	s := &testScene{
		shapes:     []core.Shape{floor, occluder},
		center:     core.NewVec3(2.5, 1.0, 2.5),
		lookAt:     core.NewVec3(2.5, 0.0, 2.5), // Straight down at the floor
		light:      core.NewVec3(2.5, 3.0, 2.5),
		background: core.NewVec3(0, 0, 0),
	}

	fb := RenderFrame(s, 1, 1)

	// Shadowed: no diffuse, no specular, just albedo * ambient = 0.2
	expected := byte(51)
	for c := 0; c < 3; c++ {
		if fb.Pix[c] != expected {
			t.Errorf("Channel %d: expected ambient-only value %d, got %d", c, expected, fb.Pix[c])
		}
	}
}

func TestTrace_LitPointGetsDiffuseAndSpecular(t *testing.T) {
	white := core.Material{Albedo: core.NewVec3(1, 1, 1)}
	floor := geometry.NewRoomPlane(core.NewVec3(0, 1, 0), 0, roomBounds(), white)

	// Same viewpoint as the occlusion test, but nothing blocks the light:
	// normal, light, and view direction all line up, so diffuse and
	// specular saturate the pixel
	s := &testScene{
		shapes:     []core.Shape{floor},
		center:     core.NewVec3(2.5, 1.0, 2.5),
		lookAt:     core.NewVec3(2.5, 0.0, 2.5),
		light:      core.NewVec3(2.5, 3.0, 2.5),
		background: core.NewVec3(0, 0, 0),
	}

	fb := RenderFrame(s, 1, 1)

	for c := 0; c < 3; c++ {
		if fb.Pix[c] != 255 {
			t.Errorf("Channel %d: expected saturated value 255, got %d", c, fb.Pix[c])
		}
	}
}

func TestTrace_MirrorFloorReflectsBackground(t *testing.T) {
	mirror := core.Material{Albedo: core.NewVec3(1, 1, 1), Reflectivity: 1.0}
	floor := geometry.NewRoomPlane(core.NewVec3(0, 1, 0), 0, roomBounds(), mirror)

	s := &testScene{
		shapes:     []core.Shape{floor},
		center:     core.NewVec3(2.5, 1.0, 2.5),
		lookAt:     core.NewVec3(2.5, 0.0, 2.5),
		light:      core.NewVec3(2.5, 3.0, 2.5),
		background: core.NewVec3(0.2, 0.3, 0.5),
	}

	fb := RenderFrame(s, 1, 1)

	// Fully reflective: local shading is blended out entirely and the
	// mirrored ray escapes straight up into the background
	expected := []byte{51, 76, 127}
	if !bytes.Equal(fb.Pix, expected) {
		t.Errorf("Expected reflected background %v, got %v", expected, fb.Pix)
	}
}

func TestTrace_RecursionIsDepthBounded(t *testing.T) {
	mirror := core.Material{Albedo: core.NewVec3(1, 1, 1), Reflectivity: 1.0}
	bounds := roomBounds()

	// Two facing mirrors: without the depth bound this would recurse forever
	left := geometry.NewRoomPlane(core.NewVec3(1, 0, 0), 0, bounds, mirror)
	right := geometry.NewRoomPlane(core.NewVec3(-1, 0, 0), 5, bounds, mirror)

	s := &testScene{
		shapes:     []core.Shape{left, right},
		center:     core.NewVec3(2.5, 1.5, 2.5),
		lookAt:     core.NewVec3(5.0, 1.5, 2.5),
		light:      core.NewVec3(2.5, 3.0, 2.5),
		background: core.NewVec3(0, 0, 0),
	}

	fb := RenderFrame(s, 1, 1)
	if len(fb.Pix) != 3 {
		t.Fatalf("Expected 3-byte buffer, got %d", len(fb.Pix))
	}

	// Each trace level scans the shapes twice: once for the nearest hit
	// and once for the shadow test. A depth bound of 2 means exactly
	// three levels for the primary ray, even between facing mirrors.
	expectedCalls := 2 * (maxDepth + 1)
	if s.getShapesCalls != expectedCalls {
		t.Errorf("Expected %d shape scans for a depth-bounded trace, got %d",
			expectedCalls, s.getShapesCalls)
	}
}

func TestRenderFrame_Idempotent(t *testing.T) {
	s := scene.NewRoomScene()

	first := RenderFrame(s, 16, 12)
	second := RenderFrame(s, 16, 12)

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Expected byte-identical buffers for repeated renders of the same snapshot")
	}
}

func TestRenderFrame_BufferLayout(t *testing.T) {
	s := scene.NewRoomScene()

	width, height := 20, 10
	fb := RenderFrame(s, width, height)

	if fb.Width != width || fb.Height != height {
		t.Errorf("Expected %dx%d framebuffer, got %dx%d", width, height, fb.Width, fb.Height)
	}
	if len(fb.Pix) != width*height*3 {
		t.Errorf("Expected buffer length %d, got %d", width*height*3, len(fb.Pix))
	}
}

func TestRenderFrame_RoomSceneShowsWallsAndBackground(t *testing.T) {
	s := scene.NewRoomScene()

	fb := RenderFrame(s, 40, 30)

	// The default view contains the room interior; at least two distinct
	// colors must appear (walls vs spheres vs shadow)
	seen := make(map[[3]byte]bool)
	for i := 0; i+2 < len(fb.Pix); i += 3 {
		seen[[3]byte{fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]}] = true
	}
	if len(seen) < 2 {
		t.Errorf("Expected a varied image, got %d distinct colors", len(seen))
	}
}
