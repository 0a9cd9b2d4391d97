package voxgrid

import (
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

// BuildFromFrame rasterizes a frame's voxel containers into a grid, in
// document order: voxels_dict, then voxels_list, then voxels_grid. A
// later write to the same cell overwrites an earlier one, regardless
// of which container produced it.
func BuildFromFrame(frame scene.Frame, general scene.GeneralData) *Grid {
	g := New()

	palette := frame.ResolvedPalette(general)
	defaultColor := frame.ResolvedDefaultColor(general)

	for _, e := range frame.VoxelsDict {
		c := e.Value.Resolve(palette, defaultColor)
		p := vecspace.TruncInt(e.Pos)
		g.Set(p[0], p[1], p[2], c)
	}

	for _, e := range frame.VoxelsList {
		rasterizeValue(g, e.Value, palette, defaultColor)
	}

	for z, layer := range frame.VoxelsGrid {
		for y, row := range layer {
			for x, v := range row {
				c := v.Resolve(palette, defaultColor)
				g.Set(x, y, z, c)
			}
		}
	}

	return g
}
