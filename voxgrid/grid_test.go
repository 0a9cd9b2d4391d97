package voxgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

func TestBuildFromFrameDictOrder(t *testing.T) {
	general := scene.GeneralData{DefaultColor: scene.Color{0, 0, 0, 255}}
	frame := scene.Frame{
		VoxelsDict: []scene.DictEntry{
			{Key: "0_0_0", Pos: vecspace.New(0, 0, 0), Value: scene.ColorValue(scene.Color{1, 1, 1, 255})},
		},
	}

	g := BuildFromFrame(frame, general)
	c, ok := g.Get(0, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, scene.Color{1, 1, 1, 255}, c)
	assert.False(t, g.IsEmpty())
}

func TestBuildFromFrameLaterContainerOverwritesEarlier(t *testing.T) {
	general := scene.GeneralData{}
	frame := scene.Frame{
		VoxelsDict: []scene.DictEntry{
			{Pos: vecspace.New(0, 0, 0), Value: scene.ColorValue(scene.Color{1, 0, 0, 255})},
		},
		VoxelsGrid: [][][]scene.VoxelValue{
			{{scene.ColorValue(scene.Color{0, 1, 0, 255})}},
		},
	}

	g := BuildFromFrame(frame, general)
	c, _ := g.Get(0, 0, 0)
	assert.Equal(t, scene.Color{0, 1, 0, 255}, c)
}

func TestListColorValueIsNotRasterized(t *testing.T) {
	general := scene.GeneralData{}
	frame := scene.Frame{
		VoxelsList: []scene.ListEntry{
			{Value: scene.ColorValue(scene.Color{1, 2, 3, 255})},
		},
	}

	g := BuildFromFrame(frame, general)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, 0, g.Len())
}

func TestCubeSizeZeroWritesNothing(t *testing.T) {
	g := New()
	rasterizeCube(g, scene.Shape{Pos: vecspace.New(0, 0, 0), Size: 0, Color: scene.Color{1, 1, 1, 255}})
	assert.Equal(t, 0, g.Len())
}

func TestCubeSizeOneWritesExactlyOneVoxel(t *testing.T) {
	g := New()
	rasterizeCube(g, scene.Shape{Pos: vecspace.New(2, 3, 4), Size: 1, Color: scene.Color{1, 1, 1, 255}})
	assert.Equal(t, 1, g.Len())
	c, ok := g.Get(2, 3, 4)
	assert.True(t, ok)
	assert.Equal(t, scene.Color{1, 1, 1, 255}, c)
}

func TestSphereRadiusZeroWritesOnlyCenter(t *testing.T) {
	g := New()
	rasterizeSphere(g, scene.Shape{Pos: vecspace.New(5, 5, 5), Radius: 0, Color: scene.Color{1, 1, 1, 255}})
	assert.Equal(t, 1, g.Len())
	_, ok := g.Get(5, 5, 5)
	assert.True(t, ok)
}

func TestLineIdenticalEndpointsWritesOneVoxel(t *testing.T) {
	g := New()
	rasterizeLine(g, scene.Shape{Pos: vecspace.New(1, 1, 1), Pos2: vecspace.New(1, 1, 1), Color: scene.Color{9, 9, 9, 255}})
	assert.Equal(t, 1, g.Len())
}

func TestLineDDAStaircaseAlongDominantAxis(t *testing.T) {
	g := New()
	rasterizeLine(g, scene.Shape{Pos: vecspace.New(0, 0, 0), Pos2: vecspace.New(4, 2, 0), Color: scene.Color{1, 1, 1, 255}})
	// dominant axis is X with dm=4: exactly 5 voxels written (start + 4 steps).
	assert.Equal(t, 5, g.Len())
	_, ok := g.Get(4, 2, 0)
	assert.True(t, ok)
}

func TestCenterAndRadius(t *testing.T) {
	g := New()
	g.Set(0, 0, 0, scene.Color{})
	g.Set(1, 1, 1, scene.Color{})
	center, radius := g.CenterAndRadius()
	assert.InDelta(t, 1.0, center[0], 1e-9)
	assert.True(t, radius > 0)
}
