// Package voxgrid builds a sparse, AABB-tracked voxel grid from a
// scene frame: it resolves every voxel container form (dict, list,
// dense grid) and every shape into a flat map of integer cell to
// color, ready for raymarch to traverse.
package voxgrid

import (
	"math"

	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

// Grid is a sparse voxel store keyed by integer cell, with an
// incrementally maintained tight AABB over every cell ever written.
type Grid struct {
	voxels map[[3]int]scene.Color
	min    vecspace.Vec3
	max    vecspace.Vec3
	empty  bool
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{voxels: make(map[[3]int]scene.Color), empty: true}
}

// Get returns the color stored at (x, y, z), if any.
func (g *Grid) Get(x, y, z int) (scene.Color, bool) {
	c, ok := g.voxels[[3]int{x, y, z}]
	return c, ok
}

// Set writes color at (x, y, z), overwriting any prior value there,
// and extends the bounding box to cover the cell.
func (g *Grid) Set(x, y, z int, c scene.Color) {
	g.voxels[[3]int{x, y, z}] = c
	g.updateBounds(x, y, z)
}

func (g *Grid) updateBounds(x, y, z int) {
	if g.empty {
		g.min = vecspace.New(float64(x), float64(y), float64(z))
		g.max = vecspace.New(float64(x+1), float64(y+1), float64(z+1))
		g.empty = false
		return
	}
	g.min = vecspace.New(
		math.Min(g.min[0], float64(x)),
		math.Min(g.min[1], float64(y)),
		math.Min(g.min[2], float64(z)),
	)
	g.max = vecspace.New(
		math.Max(g.max[0], float64(x+1)),
		math.Max(g.max[1], float64(y+1)),
		math.Max(g.max[2], float64(z+1)),
	)
}

// Bounds returns the grid's (min, max) corners. Both are zero when the
// grid is empty.
func (g *Grid) Bounds() (vecspace.Vec3, vecspace.Vec3) {
	return g.min, g.max
}

// IsEmpty reports whether the grid has never had a voxel set.
func (g *Grid) IsEmpty() bool {
	return g.empty
}

// Len returns the number of distinct occupied cells.
func (g *Grid) Len() int {
	return len(g.voxels)
}

// CenterAndRadius returns the bounding box center and half-diagonal
// length, used to frame a turntable orbit around the scene.
func (g *Grid) CenterAndRadius() (vecspace.Vec3, float64) {
	min, max := g.Bounds()
	center := vecspace.New(
		(min[0]+max[0])/2,
		(min[1]+max[1])/2,
		(min[2]+max[2])/2,
	)
	dx, dy, dz := max[0]-min[0], max[1]-min[1], max[2]-min[2]
	radius := math.Sqrt(dx*dx+dy*dy+dz*dz) / 2
	return center, radius
}
