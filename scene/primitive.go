package scene

import (
	"github.com/chewxy/math32"

	"github.com/ikskuh/weekend-raytracer/types"
)

// Describes the nearest forward hit of a ray against an object. Produced
// fresh by every intersection query and passed around by value.
type Intersection struct {
	// Parametric distance along the ray, measured from its origin.
	// Always >= 0; hits behind the origin are filtered by the objects.
	Distance float32

	// World space hit position.
	Position types.Vec3

	// Unit surface normal, oriented by the object's own convention.
	Normal types.Vec3

	// The material of the object that was hit.
	Material *Material
}

// An object is a primitive that answers ray intersection queries. A missing
// hit is a regular outcome reported through the second return value, never
// an error.
type Object interface {
	Intersect(origin, dir types.Vec3) (Intersection, bool)
}

// Rays whose direction deviates from a plane by less than this are treated
// as parallel to it.
const planeEpsilon = 1e-6

// An infinite plane described by a point on the plane and its unit normal.
type Plane struct {
	Origin   types.Vec3
	Normal   types.Vec3
	Material *Material
}

// Create a new plane. The normal is expected to be unit length.
func NewPlane(origin, normal types.Vec3, material *Material) *Plane {
	return &Plane{Origin: origin, Normal: normal, Material: material}
}

// Intersect the plane with a ray. Rays parallel to the plane or approaching
// it from behind report no hit. The returned normal is the stored plane
// normal; it is never flipped towards the ray.
func (p *Plane) Intersect(origin, dir types.Vec3) (Intersection, bool) {
	denom := -p.Normal.Dot(dir)
	if denom <= planeEpsilon {
		return Intersection{}, false
	}

	t := -p.Origin.Sub(origin).Dot(p.Normal) / denom
	if t < 0 {
		return Intersection{}, false
	}

	return Intersection{
		Distance: t,
		Position: origin.Add(dir.Mul(t)),
		Normal:   p.Normal,
		Material: p.Material,
	}, true
}

// A sphere described by its center and radius.
type Sphere struct {
	Center   types.Vec3
	Radius   float32
	Material *Material
}

// Create a new sphere.
func NewSphere(center types.Vec3, radius float32, material *Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Intersect the sphere with a ray via the geometric closest-approach
// solution. A ray starting inside the sphere reports the exit point; the
// normal always faces outward from the center, no matter which side the ray
// came from.
func (s *Sphere) Intersect(origin, dir types.Vec3) (Intersection, bool) {
	radius2 := s.Radius * s.Radius

	l := s.Center.Sub(origin)
	tca := l.Dot(dir)
	d2 := l.Dot(l) - tca*tca
	if d2 > radius2 {
		return Intersection{}, false
	}

	thc := math32.Sqrt(radius2 - d2)
	t0 := tca - thc
	if t0 < 0 {
		// Entry point behind the origin; fall back to the exit point.
		t0 = tca + thc
		if t0 < 0 {
			return Intersection{}, false
		}
	}

	position := origin.Add(dir.Mul(t0))
	return Intersection{
		Distance: t0,
		Position: position,
		Normal:   position.Sub(s.Center).Normalize(),
		Material: s.Material,
	}, true
}
