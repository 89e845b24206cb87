package core

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Contains reports whether a point lies inside the box, expanded outward
// by the given tolerance on every face
func (aabb AABB) Contains(p Vec3, tolerance float64) bool {
	return p.X >= aabb.Min.X-tolerance && p.X <= aabb.Max.X+tolerance &&
		p.Y >= aabb.Min.Y-tolerance && p.Y <= aabb.Max.Y+tolerance &&
		p.Z >= aabb.Min.Z-tolerance && p.Z <= aabb.Max.Z+tolerance
}
