package voxgrid

import (
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

// rasterizeValue writes the voxels produced by a single voxels_list
// entry. Only shape values are rasterized here — a bare color or
// palette reference appearing in list form resolves to a color but
// was never given a position of its own, so (matching the reference
// loader) it is silently dropped rather than written anywhere.
func rasterizeValue(g *Grid, v scene.VoxelValue, palette *scene.Palette, defaultColor scene.Color) {
	if v.Kind != scene.VVShape {
		return
	}

	s := v.Shape
	switch s.Kind {
	case scene.ShapePoint:
		rasterizePoint(g, s)
	case scene.ShapeCube:
		rasterizeCube(g, s)
	case scene.ShapeRect:
		rasterizeRect(g, s)
	case scene.ShapeSphere:
		rasterizeSphere(g, s)
	case scene.ShapeLine:
		rasterizeLine(g, s)
	// Triangle, Circle, Cylinder, and Polygon are accepted by the
	// document model but have no rasterizer; they are carried as
	// inert shape data only.
	default:
	}
}

func rasterizePoint(g *Grid, s scene.Shape) {
	p := vecspace.TruncInt(s.Pos)
	g.Set(p[0], p[1], p[2], s.Color)
}

func rasterizeCube(g *Grid, s scene.Shape) {
	p := vecspace.TruncInt(s.Pos)
	size := int(s.Size)
	for dx := 0; dx < size; dx++ {
		for dy := 0; dy < size; dy++ {
			for dz := 0; dz < size; dz++ {
				g.Set(p[0]+dx, p[1]+dy, p[2]+dz, s.Color)
			}
		}
	}
}

func rasterizeRect(g *Grid, s scene.Shape) {
	p1 := vecspace.TruncInt(s.Pos)
	p2 := vecspace.TruncInt(s.Pos2)

	xMin, xMax := minMax(p1[0], p2[0])
	yMin, yMax := minMax(p1[1], p2[1])
	zMin, zMax := minMax(p1[2], p2[2])

	for x := xMin; x <= xMax; x++ {
		for y := yMin; y <= yMax; y++ {
			for z := zMin; z <= zMax; z++ {
				g.Set(x, y, z, s.Color)
			}
		}
	}
}

func rasterizeSphere(g *Grid, s scene.Shape) {
	c := vecspace.TruncInt(s.Pos)
	radius := int(s.Radius)

	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				distSq := dx*dx + dy*dy + dz*dz
				if distSq <= radius*radius {
					g.Set(c[0]+dx, c[1]+dy, c[2]+dz, s.Color)
				}
			}
		}
	}
}

func rasterizeLine(g *Grid, s scene.Shape) {
	p1 := vecspace.TruncInt(s.Pos)
	p2 := vecspace.TruncInt(s.Pos2)
	rasterizeLineDDA(g, p1[0], p1[1], p1[2], p2[0], p2[1], p2[2], s.Color)
}

// rasterizeLineDDA walks from (x0,y0,z0) to (x1,y1,z1) with an
// accumulator-based DDA: the dominant axis advances every step, the
// other two advance when their fractional accumulator crosses 0.5.
// The starting voxel is always written, even when both endpoints
// coincide.
func rasterizeLineDDA(g *Grid, x0, y0, z0, x1, y1, z1 int, color scene.Color) {
	dx, dy, dz := abs(x1-x0), abs(y1-y0), abs(z1-z0)

	sx, sy, sz := 1, 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	if z0 >= z1 {
		sz = -1
	}

	dm := maxInt(dx, maxInt(dy, dz))

	x, y, z := x0, y0, z0
	g.Set(x, y, z, color)

	if dm == 0 {
		return
	}

	xInc, yInc, zInc := float64(dx)/float64(dm), float64(dy)/float64(dm), float64(dz)/float64(dm)
	xAcc, yAcc, zAcc := 0.0, 0.0, 0.0

	for i := 0; i < dm; i++ {
		xAcc += xInc
		yAcc += yInc
		zAcc += zInc

		if xAcc >= 0.5 {
			x += sx
			xAcc -= 1.0
		}
		if yAcc >= 0.5 {
			y += sy
			yAcc -= 1.0
		}
		if zAcc >= 0.5 {
			z += sz
			zAcc -= 1.0
		}

		g.Set(x, y, z, color)
	}
}

func minMax(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
