package scene

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/ikskuh/weekend-raytracer/types"
)

// A scene bundles objects and point lights with a shared material table and
// the camera observing them. Scenes are fully constructed up front; the
// renderer only ever reads them.
type Scene struct {
	Camera *Camera

	Materials []*Material
	Objects   []Object
	Lights    []PointLight
}

func NewScene() *Scene {
	return &Scene{
		Materials: make([]*Material, 0),
		Objects:   make([]Object, 0),
		Lights:    make([]PointLight, 0),
	}
}

// Attach a camera to the scene.
func (s *Scene) SetCamera(camera *Camera) {
	s.Camera = camera
}

// Register a material with the scene. Registering the same material twice is
// an error; sharing one registered material between many objects is the
// expected use.
func (s *Scene) AddMaterial(material *Material) error {
	for _, mat := range s.Materials {
		if mat == material {
			return fmt.Errorf("scene: material already added")
		}
	}
	s.Materials = append(s.Materials, material)
	return nil
}

// Add an object to the scene. The object's material must have been
// registered beforehand.
func (s *Scene) AddObject(object Object) error {
	var material *Material
	switch obj := object.(type) {
	case *Plane:
		material = obj.Material
	case *Sphere:
		material = obj.Material
	default:
		return fmt.Errorf("scene: unsupported object type %T", object)
	}

	if material == nil {
		return fmt.Errorf("scene: no material assigned to object")
	}
	for _, mat := range s.Materials {
		if mat == material {
			s.Objects = append(s.Objects, object)
			return nil
		}
	}

	return fmt.Errorf("scene: object references unknown material; add the material to the scene before adding the object")
}

// Add a point light to the scene.
func (s *Scene) AddLight(light PointLight) {
	s.Lights = append(s.Lights, light)
}

// Find the nearest forward intersection along a ray across all objects.
// Absence of a hit means the ray escaped the scene. On equidistant hits the
// object added first wins.
func (s *Scene) Intersect(origin, dir types.Vec3) (Intersection, bool) {
	closest := Intersection{Distance: math32.MaxFloat32}
	found := false

	for _, object := range s.Objects {
		if hit, ok := object.Intersect(origin, dir); ok && hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}

	return closest, found
}
