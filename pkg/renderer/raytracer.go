package renderer

import (
	"math"

	"github.com/df07/go-room-raytracer/pkg/core"
)

const (
	// maxDepth bounds reflection recursion
	maxDepth = 2

	// hitEpsilon suppresses a ray immediately re-hitting the surface it
	// left; small relative to the room scale (~5 units) but well above
	// float error
	hitEpsilon = 1e-4

	// surfaceBias offsets shadow and reflection ray origins along the normal
	surfaceBias = 1e-3

	// maxDistance caps intersection searches
	maxDistance = 1000.0

	ambientStrength  = 0.2
	diffuseStrength  = 0.8
	specularStrength = 0.3
	specularExponent = 32.0
)

// Scene interface to avoid a dependency on the scene package
type Scene interface {
	GetShapes() []core.Shape
	GetCameraPose() (center, lookAt core.Vec3)
	GetLight() core.Vec3
	GetBackground() core.Vec3
}

// Raytracer renders one frame of a scene snapshot to a framebuffer
type Raytracer struct {
	scene  Scene
	width  int
	height int
}

// NewRaytracer creates a new raytracer for the given scene and resolution
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
	}
}

// RenderFrame renders one frame and returns the filled framebuffer. It is a
// pure function of the scene snapshot and resolution: rendering the same
// inputs twice produces byte-identical buffers.
func RenderFrame(scene Scene, width, height int) *Framebuffer {
	return NewRaytracer(scene, width, height).RenderFrame()
}

// RenderFrame sweeps every pixel, traces a primary ray, and quantizes the
// result into a fresh framebuffer
func (rt *Raytracer) RenderFrame() *Framebuffer {
	center, lookAt := rt.scene.GetCameraPose()
	camera := NewCamera(CameraConfig{
		Center: center,
		LookAt: lookAt,
		Width:  rt.width,
		Height: rt.height,
	})

	fb := NewFramebuffer(rt.width, rt.height)
	for j := 0; j < rt.height; j++ {
		for i := 0; i < rt.width; i++ {
			color := rt.trace(camera.GetRay(i, j), 0)
			fb.setRGB(i, j, color.Clamp(0.0, 1.0))
		}
	}
	return fb
}

// hitWorld finds the globally nearest hit among all shapes
func (rt *Raytracer) hitWorld(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range rt.scene.GetShapes() {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// trace casts a ray into the scene and returns its color. Reflective
// surfaces blend in a recursively traced mirror ray up to maxDepth.
func (rt *Raytracer) trace(ray core.Ray, depth int) core.Vec3 {
	hit, isHit := rt.hitWorld(ray, hitEpsilon, maxDistance)
	if !isHit {
		// Escaped through the missing front wall
		return rt.scene.GetBackground()
	}

	viewDir := ray.Direction.Negate().Normalize()
	color := rt.shade(hit.Point, hit.Normal, hit.Material.Albedo, viewDir)

	if depth < maxDepth && hit.Material.Reflectivity > 0 {
		reflDir := ray.Direction.Reflect(hit.Normal).Normalize()
		reflRay := core.NewRay(hit.Point.Add(hit.Normal.Multiply(surfaceBias)), reflDir)
		reflColor := rt.trace(reflRay, depth+1)

		k := hit.Material.Reflectivity
		color = color.Multiply(1.0 - k).Add(reflColor.Multiply(k))
	}

	return color.Clamp(0.0, 1.0)
}

// shade computes local illumination at a surface point: Lambertian diffuse
// plus a Blinn-Phong highlight, both zeroed when the point light is occluded,
// on top of a fixed ambient floor
func (rt *Raytracer) shade(point, normal, albedo, viewDir core.Vec3) core.Vec3 {
	lightPos := rt.scene.GetLight()
	toLight := lightPos.Subtract(point)
	lightDist := toLight.Length()
	lightDir := toLight.Normalize()

	// Shadow test: any hit between the point and the light counts
	shadowRay := core.NewRay(point.Add(normal.Multiply(surfaceBias)), lightDir)
	_, inShadow := rt.hitWorld(shadowRay, hitEpsilon, lightDist-surfaceBias)

	diffuse := 0.0
	if !inShadow {
		diffuse = math.Max(0.0, normal.Dot(lightDir))
	}

	color := albedo.Multiply(ambientStrength + diffuse*diffuseStrength)

	if !inShadow {
		half := lightDir.Add(viewDir).Normalize()
		specular := math.Pow(math.Max(0.0, normal.Dot(half)), specularExponent)
		color = color.Add(core.NewVec3(1, 1, 1).Multiply(specular * specularStrength))
	}

	return color.Clamp(0.0, 1.0)
}
