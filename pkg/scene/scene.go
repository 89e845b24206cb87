package scene

import (
	"github.com/df07/go-room-raytracer/pkg/core"
)

// Scene is the snapshot handed to the renderer each frame: geometry, the
// camera pose, and the single point light. The renderer only ever reads a
// Scene; the interaction layer mutates it between frames via the Move
// helpers, never while a render is in flight.
type Scene struct {
	Shapes       []core.Shape // Objects in the scene
	CameraCenter core.Vec3    // Camera position
	CameraLookAt core.Vec3    // Point the camera looks at
	LightPos     core.Vec3    // Point light position
	Background   core.Vec3    // Color returned for rays that escape the room
}

// GetShapes returns the objects in the scene
func (s *Scene) GetShapes() []core.Shape {
	return s.Shapes
}

// GetCameraPose returns the camera position and look-at point
func (s *Scene) GetCameraPose() (center, lookAt core.Vec3) {
	return s.CameraCenter, s.CameraLookAt
}

// GetLight returns the point light position
func (s *Scene) GetLight() core.Vec3 {
	return s.LightPos
}

// GetBackground returns the background color
func (s *Scene) GetBackground() core.Vec3 {
	return s.Background
}

// MoveCamera translates the camera position and look-at point together,
// keeping the view direction fixed
func (s *Scene) MoveCamera(delta core.Vec3) {
	s.CameraCenter = s.CameraCenter.Add(delta)
	s.CameraLookAt = s.CameraLookAt.Add(delta)
}

// MoveLight translates the point light
func (s *Scene) MoveLight(delta core.Vec3) {
	s.LightPos = s.LightPos.Add(delta)
}
