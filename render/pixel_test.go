package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
	"github.com/voxelcast/voxelcast/voxgrid"
)

func testCamera(w, h int) scene.Camera {
	return scene.Camera{
		Position:  vecspace.New(0, -10, 0),
		Rotation:  vecspace.New(0, 0, 0),
		Focal:     5,
		ClipStart: 0.001,
		ClipEnd:   100,
		Width:     w,
		Height:    h,
		PixelSize: 0.1,
	}
}

func TestColorAtHitsCenteredVoxel(t *testing.T) {
	g := voxgrid.New()
	g.Set(0, 0, 0, scene.Color{255, 0, 0, 255})

	env := scene.Environment{Kind: scene.EnvNone}
	pr := NewPixelRenderer(g, env, testCamera(8, 8))

	c := pr.ColorAt(4, 4)
	assert.Equal(t, scene.Color{255, 0, 0, 255}, c)
}

func TestColorAtMissFallsBackToEnvironment(t *testing.T) {
	g := voxgrid.New()
	env := scene.Environment{Kind: scene.EnvSolidColor, Color: scene.Color{9, 9, 9, 255}}
	pr := NewPixelRenderer(g, env, testCamera(4, 4))

	c := pr.ColorAt(0, 0)
	assert.Equal(t, scene.Color{9, 9, 9, 255}, c)
}

func TestRenderFrameProducesFullBuffer(t *testing.T) {
	g := voxgrid.New()
	g.Set(0, 0, 0, scene.Color{1, 2, 3, 255})
	env := scene.Environment{Kind: scene.EnvNone}

	frame := NewPixelRenderer(g, env, testCamera(6, 6)).RenderFrame()
	assert.Equal(t, 6, frame.Width)
	assert.Equal(t, 6, frame.Height)
	assert.Len(t, frame.Pix, 36)
}

func TestRenderFrameParallelMatchesSequential(t *testing.T) {
	g := voxgrid.New()
	g.Set(0, 0, 0, scene.Color{1, 2, 3, 255})
	g.Set(1, 0, 0, scene.Color{4, 5, 6, 255})
	env := scene.Environment{Kind: scene.EnvSolidColor, Color: scene.Color{7, 7, 7, 255}}

	seq := NewPixelRenderer(g, env, testCamera(10, 10)).RenderFrame()
	par := NewPixelRenderer(g, env, testCamera(10, 10)).RenderFrameParallel(4)

	assert.Equal(t, seq.Pix, par.Pix)
}

func TestRenderDocumentFrameBuildsGridAndRenders(t *testing.T) {
	general := scene.GeneralData{DefaultColor: scene.Color{A: 255}}
	frame := scene.Frame{
		VoxelsDict: []scene.DictEntry{
			{Pos: vecspace.New(0, 0, 0), Value: scene.ColorValue(scene.Color{1, 1, 1, 255})},
		},
	}
	env := scene.Environment{Kind: scene.EnvNone}

	out := RenderDocumentFrame(frame, general, env, testCamera(4, 4))
	assert.Equal(t, 4, out.Width)
}
