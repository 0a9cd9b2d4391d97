package raymarch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
	"github.com/voxelcast/voxelcast/voxgrid"
)

func TestMarchEmptyGridMisses(t *testing.T) {
	g := voxgrid.New()
	ray := NewRayFromPoints(vecspace.New(-5, 0, 0), vecspace.New(5, 0, 0))
	hit := March(g, ray, 0.001, 100)
	assert.False(t, hit.Hit)
}

func TestMarchHitsSingleVoxelHeadOn(t *testing.T) {
	g := voxgrid.New()
	g.Set(0, 0, 0, scene.Color{200, 100, 50, 255})

	ray := NewRayFromPoints(vecspace.New(-5, 0.5, 0.5), vecspace.New(5, 0.5, 0.5))
	hit := March(g, ray, 0.001, 100)

	assert.True(t, hit.Hit)
	assert.Equal(t, scene.Color{200, 100, 50, 255}, hit.Color)
	assert.InDelta(t, 0, hit.Position[0], 1e-6)
}

func TestMarchMissesWhenAimedAway(t *testing.T) {
	g := voxgrid.New()
	g.Set(0, 0, 0, scene.Color{1, 1, 1, 255})

	ray := NewRayFromPoints(vecspace.New(-5, 50, 50), vecspace.New(5, 50, 50))
	hit := March(g, ray, 0.001, 100)
	assert.False(t, hit.Hit)
}

func TestMarchRespectsClipEnd(t *testing.T) {
	g := voxgrid.New()
	g.Set(10, 0, 0, scene.Color{1, 1, 1, 255})

	ray := NewRayFromPoints(vecspace.New(-5, 0.5, 0.5), vecspace.New(5, 0.5, 0.5))
	hit := March(g, ray, 0.001, 5)
	assert.False(t, hit.Hit)
}

func TestIntersectAABBParallelMissOutsideSlab(t *testing.T) {
	ray := Ray{Origin: vecspace.New(100, 0, 0), Direction: vecspace.New(0, 1, 0)}
	tEnter, tExit := intersectAABB(ray, vecspace.New(0, 0, 0), vecspace.New(1, 1, 1))
	assert.True(t, math.IsInf(tEnter, 1))
	assert.True(t, math.IsInf(tExit, -1))
}

func TestNewRayFromPointsNormalizes(t *testing.T) {
	r := NewRayFromPoints(vecspace.New(0, 0, 0), vecspace.New(3, 4, 0))
	assert.InDelta(t, 1.0, r.Direction.Len(), 1e-9)
}

func TestNewRayFromPointsDegenerateKeepsZero(t *testing.T) {
	r := NewRayFromPoints(vecspace.New(1, 1, 1), vecspace.New(1, 1, 1))
	assert.InDelta(t, 0.0, r.Direction.Len(), 1e-9)
}
