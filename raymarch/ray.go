// Package raymarch implements the 3-D DDA voxel traversal: given a
// ray and a voxgrid.Grid, it finds the first occupied cell the ray
// passes through between a near and far clip distance.
package raymarch

import "github.com/voxelcast/voxelcast/vecspace"

// Ray is a half-line in world space: origin plus a direction that is
// normalized unless it was degenerate at construction time.
type Ray struct {
	Origin    vecspace.Vec3
	Direction vecspace.Vec3
}

// PointAt returns the point origin + t*direction.
func (r Ray) PointAt(t float64) vecspace.Vec3 {
	return vecspace.New(
		r.Origin[0]+t*r.Direction[0],
		r.Origin[1]+t*r.Direction[1],
		r.Origin[2]+t*r.Direction[2],
	)
}

// NewRayFromPoints builds a ray from origin toward target. The
// direction is normalized unless the two points coincide (or are
// closer than the degenerate threshold), in which case the
// unnormalized (zero) direction is kept as-is.
func NewRayFromPoints(origin, target vecspace.Vec3) Ray {
	dir := vecspace.New(target[0]-origin[0], target[1]-origin[1], target[2]-origin[2])
	return Ray{Origin: origin, Direction: vecspace.SafeNormalize(dir)}
}
