package scene

import "github.com/voxelcast/voxelcast/vecspace"

// Pos is a world position plus optional transform hints. Only XYZ is
// consulted by the rendering core; the remaining fields are carried
// through from the document for external tooling (editors, exporters)
// that apply them before the core ever sees the scene.
type Pos struct {
	XYZ vecspace.Vec3

	Shift    *vecspace.Vec3
	Scale    *vecspace.Vec3
	Rotation *vecspace.Vec3
	Flip     *vecspace.Vec3
	Crop     *vecspace.Vec3
}

// NewPos builds a bare Pos from coordinates, with no transform hints.
func NewPos(xyz vecspace.Vec3) Pos {
	return Pos{XYZ: xyz}
}
