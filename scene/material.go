package scene

import "github.com/ikskuh/weekend-raytracer/types"

// Defines a surface material. A material is registered once with a scene and
// shared by reference between any number of objects; it is never copied
// per-object.
type Material struct {
	// Base surface color before lighting is applied.
	Albedo types.Color

	// Mirror reflection factor in [0, 1]. Objects whose material has a
	// reflectivity above zero spawn reflection rays while tracing.
	Reflectivity float32
}
