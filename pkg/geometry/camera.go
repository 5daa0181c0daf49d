package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultProjectionDistance is the distance from the camera origin to the
// virtual image plane, in world units per pixel.
const DefaultProjectionDistance = 500.0

// referenceForward is the view direction the image plane is laid out for
var referenceForward = mgl64.Vec3{0, 0, 1}

// Camera generates primary rays. Pixel offsets are laid out on a plane
// facing +Z and then rotated onto Direction.
type Camera struct {
	Origin             core.Vec3
	Direction          core.Vec3
	ProjectionDistance float64
	orientation        mgl64.Quat
}

// NewCamera creates a camera at origin looking along direction.
// A zero direction falls back to +Z.
func NewCamera(origin, direction core.Vec3) *Camera {
	forward := direction.Normalize()
	if forward.IsZero() {
		forward = core.NewVec3(0, 0, 1)
	}
	return &Camera{
		Origin:             origin,
		Direction:          forward,
		ProjectionDistance: DefaultProjectionDistance,
		orientation:        mgl64.QuatBetweenVectors(referenceForward, toMgl(forward)),
	}
}

// PrimaryRay returns the ray through image-plane offset (px, py), where
// (0, 0) is the image center and +py is up.
func (c *Camera) PrimaryRay(px, py float64) core.Ray {
	distance := c.ProjectionDistance
	if distance == 0 {
		distance = DefaultProjectionDistance
	}
	local := mgl64.Vec3{px, py, distance}
	// The zero quaternion of a literal Camera rotates as the identity
	direction := c.orientation.Rotate(local)
	return core.NewRay(c.Origin, fromMgl(direction))
}

func toMgl(v core.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func fromMgl(v mgl64.Vec3) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}
