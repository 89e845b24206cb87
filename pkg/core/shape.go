package core

// Material describes how a surface responds to light. Albedo is the solid
// base color; Reflectivity blends in a mirrored ray during tracing
// (0 = fully matte, 1 = perfect mirror).
type Material struct {
	Albedo       Vec3
	Reflectivity float64
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    Vec3     // Point of intersection
	Normal   Vec3     // Unit surface normal at intersection
	T        float64  // Parameter t along the ray
	Material Material // Material of the surface that was hit
}

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}
