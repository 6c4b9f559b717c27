package scene

import "github.com/ikskuh/weekend-raytracer/types"

// The camera type converts screen space coordinates into world space rays
// originating from a fixed eye position.
type Camera struct {
	Position types.Vec3

	// View basis, set up by LookAt.
	Forward types.Vec3
	Right   types.Vec3

	// Distance between the eye and the virtual image plane.
	FocalLength float32
}

// Create a camera with the default focal length of 1.
func NewCamera() *Camera {
	return &Camera{FocalLength: 1}
}

// Place the camera at pos facing target. up selects the camera roll and must
// not be parallel to the view direction; that degenerates the basis.
func (c *Camera) LookAt(pos, target, up types.Vec3) {
	c.Position = pos
	c.Forward = target.Sub(pos).Normalize()
	c.Right = up.Cross(c.Forward).Normalize()
}

// Project the screen space coordinates x, y (both roughly in [-1, 1]) to a
// unit ray direction in world space.
func (c *Camera) ProjectRay(x, y float32) types.Vec3 {
	up := c.Forward.Cross(c.Right)
	return c.Right.Mul(x).Add(up.Mul(y)).Add(c.Forward.Mul(c.FocalLength)).Normalize()
}
