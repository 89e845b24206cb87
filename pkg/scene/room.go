package scene

import (
	"github.com/df07/go-room-raytracer/pkg/core"
	"github.com/df07/go-room-raytracer/pkg/geometry"
)

// The room is a box x ∈ [0, 5], y ∈ [0, 3], z ∈ [0, 5] with no front
// wall at z=5, so rays can escape toward the camera side and hit the
// background.
const (
	RoomWidth  = 5.0
	RoomHeight = 3.0
	RoomDepth  = 5.0
)

// Walls pick up a slight mirror tint; spheres are fully matte.
const wallReflectivity = 0.05

// RoomBounds returns the axis-aligned box the wall planes are clipped to
func RoomBounds() core.AABB {
	return core.NewAABB(core.NewVec3(0, 0, 0), core.NewVec3(RoomWidth, RoomHeight, RoomDepth))
}

// NewRoomScene creates the default room: two matte spheres on the floor,
// five walls, a point light above and behind the camera side, and the
// camera at the missing front wall looking in.
func NewRoomScene() *Scene {
	s := &Scene{
		CameraCenter: core.NewVec3(2.5, 1.5, 8.0),
		CameraLookAt: core.NewVec3(2.5, 1.5, 0.0),
		// Light sits camera-side and high so the spheres start lit
		LightPos: core.NewVec3(2.5, 3.0, 6.0),
		// Slightly blue ambient color for rays that leave the room
		Background: core.NewVec3(0.2, 0.3, 0.5),
		Shapes:     make([]core.Shape, 0),
	}

	// Create materials
	red := core.Material{Albedo: core.NewVec3(1.0, 0.1, 0.1)}
	blue := core.Material{Albedo: core.NewVec3(0.1, 0.1, 1.0)}
	brown := core.Material{Albedo: core.NewVec3(0.45, 0.30, 0.15), Reflectivity: wallReflectivity}
	white := core.Material{Albedo: core.NewVec3(1.0, 1.0, 1.0), Reflectivity: wallReflectivity}

	// Two spheres resting on the floor
	const sphereRadius = 0.9
	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(1.5, sphereRadius, 2.5), sphereRadius, red),
		geometry.NewSphere(core.NewVec3(3.5, sphereRadius, 3.5), sphereRadius, blue),
	)

	bounds := RoomBounds()

	// Five walls, normals pointing into the room. No wall at z=RoomDepth.
	s.Shapes = append(s.Shapes,
		geometry.NewRoomPlane(core.NewVec3(0, 1, 0), 0, bounds, brown),           // floor y=0
		geometry.NewRoomPlane(core.NewVec3(0, -1, 0), RoomHeight, bounds, white), // ceiling y=3
		geometry.NewRoomPlane(core.NewVec3(0, 0, 1), 0, bounds, white),           // back wall z=0
		geometry.NewRoomPlane(core.NewVec3(-1, 0, 0), RoomWidth, bounds, white),  // right wall x=5
		geometry.NewRoomPlane(core.NewVec3(1, 0, 0), 0, bounds, white),           // left wall x=0
	)

	return s
}
