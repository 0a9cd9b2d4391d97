package raymarch

import (
	"math"

	"github.com/voxelcast/voxelcast/vecspace"
	"github.com/voxelcast/voxelcast/voxgrid"
)

// parallelEpsilon is the direction-component magnitude below which an
// axis is treated as parallel to the ray (no slab crossing, no DDA
// step on that axis).
const parallelEpsilon = 1e-10

// March walks ray through grid using a 3-D DDA, returning the first
// occupied cell between clipStart and clipEnd. It reports a miss
// immediately if the grid has never had a voxel set.
func March(grid *voxgrid.Grid, ray Ray, clipStart, clipEnd float64) HitResult {
	if grid.IsEmpty() {
		return Miss()
	}

	boundsMin, boundsMax := grid.Bounds()

	tEnter, tExit := intersectAABB(ray, boundsMin, boundsMax)
	if tEnter > tExit || tExit < clipStart || tEnter > clipEnd {
		return Miss()
	}

	tStart := math.Max(tEnter, clipStart)
	start := ray.PointAt(tStart + 0.001)

	x := int(math.Floor(start[0]))
	y := int(math.Floor(start[1]))
	z := int(math.Floor(start[2]))

	dx, dy, dz := ray.Direction[0], ray.Direction[1], ray.Direction[2]

	stepX, stepY, stepZ := 1, 1, 1
	if dx < 0 {
		stepX = -1
	}
	if dy < 0 {
		stepY = -1
	}
	if dz < 0 {
		stepZ = -1
	}

	tDeltaX := axisTDelta(dx)
	tDeltaY := axisTDelta(dy)
	tDeltaZ := axisTDelta(dz)

	tMaxX := computeTMax(start[0], dx, stepX)
	tMaxY := computeTMax(start[1], dy, stepY)
	tMaxZ := computeTMax(start[2], dz, stepZ)

	tCurrent := tStart

	maxIterations := int(math.Ceil((clipEnd-clipStart)*3)) + 1000

	lastAxis := -1 // 0=x, 1=y, 2=z

	for i := 0; i < maxIterations; i++ {
		if !inBounds(x, y, z, boundsMin, boundsMax) {
			return Miss()
		}
		if tCurrent > clipEnd {
			return Miss()
		}

		if color, ok := grid.Get(x, y, z); ok {
			normal := computeNormal(lastAxis, stepX, stepY, stepZ)
			return HitResult{
				Hit:      true,
				T:        tCurrent,
				Position: vecspace.New(float64(x), float64(y), float64(z)),
				Color:    color,
				Normal:   normal,
			}
		}

		switch {
		case tMaxX < tMaxY && tMaxX < tMaxZ:
			x += stepX
			tCurrent = tMaxX
			tMaxX += tDeltaX
			lastAxis = 0
		case tMaxX < tMaxY:
			z += stepZ
			tCurrent = tMaxZ
			tMaxZ += tDeltaZ
			lastAxis = 2
		case tMaxY < tMaxZ:
			y += stepY
			tCurrent = tMaxY
			tMaxY += tDeltaY
			lastAxis = 1
		default:
			z += stepZ
			tCurrent = tMaxZ
			tMaxZ += tDeltaZ
			lastAxis = 2
		}
	}

	return Miss()
}

func axisTDelta(d float64) float64 {
	if math.Abs(d) > parallelEpsilon {
		return math.Abs(1.0 / d)
	}
	return math.Inf(1)
}

func computeTMax(pos, direction float64, step int) float64 {
	if math.Abs(direction) < parallelEpsilon {
		return math.Inf(1)
	}
	var boundary float64
	if step > 0 {
		boundary = math.Floor(pos) + 1.0
	} else {
		boundary = math.Floor(pos)
	}
	return (boundary - pos) / direction
}

func inBounds(x, y, z int, boundsMin, boundsMax vecspace.Vec3) bool {
	fx, fy, fz := float64(x), float64(y), float64(z)
	return fx >= boundsMin[0] && fx < boundsMax[0] &&
		fy >= boundsMin[1] && fy < boundsMax[1] &&
		fz >= boundsMin[2] && fz < boundsMax[2]
}

func computeNormal(axis, stepX, stepY, stepZ int) vecspace.Vec3 {
	switch axis {
	case 0:
		return vecspace.New(float64(-stepX), 0, 0)
	case 1:
		return vecspace.New(0, float64(-stepY), 0)
	case 2:
		return vecspace.New(0, 0, float64(-stepZ))
	default:
		return vecspace.New(0, 1, 0)
	}
}

// intersectAABB computes the (t_enter, t_exit) slab intersection of
// ray with the box [boundsMin, boundsMax]. A ray parallel to an axis
// whose origin falls outside that axis's slab returns (+inf, -inf) —
// an immediate, unrecoverable miss.
func intersectAABB(ray Ray, boundsMin, boundsMax vecspace.Vec3) (float64, float64) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for i := 0; i < 3; i++ {
		origin := ray.Origin[i]
		direction := ray.Direction[i]
		minVal := boundsMin[i]
		maxVal := boundsMax[i]

		if math.Abs(direction) < parallelEpsilon {
			if origin < minVal || origin > maxVal {
				return math.Inf(1), math.Inf(-1)
			}
			continue
		}

		t1 := (minVal - origin) / direction
		t2 := (maxVal - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	return tMin, tMax
}
