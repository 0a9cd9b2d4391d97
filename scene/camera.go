package scene

import "github.com/voxelcast/voxelcast/vecspace"

// Camera is the document's pinhole camera description: position,
// Euler rotation (radians, X·Y·Z order), focal distance, near/far
// clips, pixel grid dimensions, and pixel size in world units.
type Camera struct {
	Position vecspace.Vec3
	// Rotation holds (rx, ry, rz) in radians.
	Rotation vecspace.Vec3

	Focal     float64
	ClipStart float64
	ClipEnd   float64

	Width  int
	Height int

	PixelSize float64

	// LockedMovement and LockedRotation are editor hints carried
	// through from the document; no operation in this module reads
	// them (SPEC_FULL.md §3 expansion).
	LockedMovement bool
	LockedRotation bool
}

// RotationMatrix builds the composite R = Rx·Ry·Rz rotation matrix
// from the camera's Euler angles.
func (c Camera) RotationMatrix() vecspace.Mat3 {
	return vecspace.EulerXYZ(c.Rotation[0], c.Rotation[1], c.Rotation[2])
}
