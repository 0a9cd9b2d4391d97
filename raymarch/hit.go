package raymarch

import (
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

// HitResult is the outcome of marching a ray through a grid.
type HitResult struct {
	Hit      bool
	T        float64
	Position vecspace.Vec3
	Color    scene.Color
	Normal   vecspace.Vec3
}

// Miss is the zero-value HitResult for a ray that struck nothing.
func Miss() HitResult {
	return HitResult{}
}
