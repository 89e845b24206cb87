package geometry

import (
	"math"

	"github.com/df07/go-room-raytracer/pkg/core"
)

// boundsTolerance expands the room box slightly so hits on the seams
// between adjacent walls are not rejected.
const boundsTolerance = 1e-3

// RoomPlane is an infinite plane n·p + d = 0 clipped to an axis-aligned
// room box. The normal points into the room interior; hits outside the
// box are treated as misses, which turns five infinite planes into the
// walls of a finite room without any polygon geometry.
type RoomPlane struct {
	Normal   core.Vec3 // Unit normal, oriented toward the room interior
	D        float64   // Signed plane offset
	Bounds   core.AABB // Room box the plane is clipped to
	Material core.Material
}

// NewRoomPlane creates a room wall from a normal, offset, and room bounds
func NewRoomPlane(normal core.Vec3, d float64, bounds core.AABB, material core.Material) *RoomPlane {
	return &RoomPlane{
		Normal:   normal.Normalize(), // Ensure normal is normalized
		D:        d,
		Bounds:   bounds,
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane inside the room bounds
func (p *RoomPlane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// If denominator is close to zero, ray is parallel to plane (no intersection)
	if math.Abs(denominator) < 1e-6 {
		return nil, false
	}

	t := -(p.Normal.Dot(ray.Origin) + p.D) / denominator

	// Check if intersection is within valid range
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Clip to the room box
	if !p.Bounds.Contains(hitPoint, boundsTolerance) {
		return nil, false
	}

	return &core.HitRecord{
		T:        t,
		Point:    hitPoint,
		Normal:   p.Normal, // Fixed inward normal
		Material: p.Material,
	}, true
}
