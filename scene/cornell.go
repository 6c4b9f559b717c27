package scene

import "github.com/ikskuh/weekend-raytracer/types"

// NewCornellScene builds the built-in demo scene: a Cornell style box made of
// five bounding planes around three mirror spheres, lit by a single white
// point light at the world origin. This scene doubles as the reference data
// for output comparison, so its values must not drift.
func NewCornellScene() *Scene {
	red := &Material{Albedo: types.RGB(1, 0, 0)}
	green := &Material{Albedo: types.RGB(0, 1, 0)}
	walls := &Material{Albedo: types.Gray(0.8)}
	mirror := &Material{Albedo: types.Gray(0), Reflectivity: 1}

	camera := NewCamera()
	camera.LookAt(
		types.XYZ(0, 0, -10),
		types.XYZ(0, 0, 0),
		types.XYZ(0, 1, 0),
	)

	return &Scene{
		Camera:    camera,
		Materials: []*Material{red, green, walls, mirror},
		Objects: []Object{
			// The box. The side behind the camera stays open.
			NewPlane(types.XYZ(-10, 0, 0), types.XYZ(1, 0, 0), red),
			NewPlane(types.XYZ(10, 0, 0), types.XYZ(-1, 0, 0), green),
			NewPlane(types.XYZ(0, -10, 0), types.XYZ(0, 1, 0), walls),
			NewPlane(types.XYZ(0, 10, 0), types.XYZ(0, -1, 0), walls),
			NewPlane(types.XYZ(0, 0, 10), types.XYZ(0, 0, -1), walls),

			NewSphere(types.XYZ(0, -5, -5), 2, mirror),
			NewSphere(types.XYZ(4.33, -4, 2.5), 2, mirror),
			NewSphere(types.XYZ(-4.33, -4.5, 2.5), 2, mirror),
		},
		Lights: []PointLight{
			{Position: types.XYZ(0, 0, 0), Power: 10, Color: types.Gray(1)},
		},
	}
}
