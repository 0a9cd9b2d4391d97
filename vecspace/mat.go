package vecspace

import "github.com/go-gl/mathgl/mgl64"

// Mat3 is a 3x3 rotation matrix.
type Mat3 = mgl64.Mat3

// EulerXYZ builds the composite rotation matrix R = Rx * Ry * Rz from
// Euler angles given in radians, matching the camera model's X·Y·Z
// application order: a vector v is rotated as R.Mul3x1(v), which first
// applies Rz, then Ry, then Rx.
func EulerXYZ(xRad, yRad, zRad float64) Mat3 {
	rx := mgl64.Rotate3DX(xRad)
	ry := mgl64.Rotate3DY(yRad)
	rz := mgl64.Rotate3DZ(zRad)
	return rx.Mul3(ry).Mul3(rz)
}

// Apply rotates v by m: R·v.
func Apply(m Mat3, v Vec3) Vec3 {
	return m.Mul3x1(v)
}
