package scene

import (
	"testing"

	"github.com/df07/go-room-raytracer/pkg/core"
	"github.com/df07/go-room-raytracer/pkg/geometry"
)

func TestNewRoomScene_Contents(t *testing.T) {
	s := NewRoomScene()

	spheres := 0
	planes := 0
	for _, shape := range s.Shapes {
		switch shape.(type) {
		case *geometry.Sphere:
			spheres++
		case *geometry.RoomPlane:
			planes++
		default:
			t.Errorf("Unexpected shape type %T", shape)
		}
	}

	if spheres != 2 {
		t.Errorf("Expected 2 spheres, got %d", spheres)
	}
	if planes != 5 {
		t.Errorf("Expected 5 walls, got %d", planes)
	}
}

func TestNewRoomScene_WallNormalsPointInward(t *testing.T) {
	s := NewRoomScene()
	roomCenter := core.NewVec3(RoomWidth/2, RoomHeight/2, RoomDepth/2)

	for _, shape := range s.Shapes {
		wall, ok := shape.(*geometry.RoomPlane)
		if !ok {
			continue
		}

		// A point on the plane along its normal from the room center
		distance := wall.Normal.Dot(roomCenter) + wall.D
		if distance <= 0 {
			t.Errorf("Wall normal %v (d=%f) does not point at the room interior", wall.Normal, wall.D)
		}
	}
}

func TestNewRoomScene_SpheresRestOnFloor(t *testing.T) {
	s := NewRoomScene()

	for _, shape := range s.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			continue
		}
		if sphere.Radius <= 0 {
			t.Errorf("Expected positive radius, got %f", sphere.Radius)
		}
		if sphere.Center.Y != sphere.Radius {
			t.Errorf("Expected sphere resting on floor (center.Y == radius), got center %v radius %f",
				sphere.Center, sphere.Radius)
		}
	}
}

func TestScene_MoveCamera(t *testing.T) {
	s := NewRoomScene()
	center, lookAt := s.GetCameraPose()

	delta := core.NewVec3(0.3, 0, -0.3)
	s.MoveCamera(delta)

	newCenter, newLookAt := s.GetCameraPose()
	if newCenter.Subtract(center.Add(delta)).Length() > 1e-12 {
		t.Errorf("Expected camera center %v, got %v", center.Add(delta), newCenter)
	}
	if newLookAt.Subtract(lookAt.Add(delta)).Length() > 1e-12 {
		t.Errorf("Expected look-at %v, got %v", lookAt.Add(delta), newLookAt)
	}
}

func TestScene_MoveLight(t *testing.T) {
	s := NewRoomScene()
	light := s.GetLight()

	delta := core.NewVec3(0, -0.3, 0)
	s.MoveLight(delta)

	if s.GetLight().Subtract(light.Add(delta)).Length() > 1e-12 {
		t.Errorf("Expected light at %v, got %v", light.Add(delta), s.GetLight())
	}
}
