package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
	"github.com/voxelcast/voxelcast/voxgrid"
)

func TestOrbitCameraAlwaysLooksAtCenter(t *testing.T) {
	base := scene.Camera{Focal: 50, Width: 16, Height: 16, PixelSize: 0.1}
	center := vecspace.New(0, 0, 0)

	for i := 0; i < 8; i++ {
		cam := orbitCamera(base, center, 20, 3, i, 8)

		toCenter := vecspace.New(center[0]-cam.Position[0], center[1]-cam.Position[1], center[2]-cam.Position[2])
		horizontalDist := math.Sqrt(toCenter[0]*toCenter[0] + toCenter[1]*toCenter[1])

		// Yaw: the Z rotation alone turns the camera-space forward axis
		// (0,1,0) onto the horizontal heading toward center.
		heading := vecspace.Apply(vecspace.EulerXYZ(0, 0, cam.Rotation[2]), vecspace.New(0, 1, 0))
		dot := heading[0]*toCenter[0]/horizontalDist + heading[1]*toCenter[1]/horizontalDist
		assert.InDelta(t, 1.0, dot, 1e-6)

		// Pitch: the X rotation is the negated elevation angle of center
		// as seen from the camera, with no Y rotation.
		assert.InDelta(t, -math.Atan2(toCenter[2], horizontalDist), cam.Rotation[0], 1e-6)
		assert.InDelta(t, 0.0, cam.Rotation[1], 1e-9)
	}
}

func TestOrbitCameraUsesLargerOfBaseFocalAndDistanceHalf(t *testing.T) {
	base := scene.Camera{Focal: 1000, Width: 8, Height: 8}
	cam := orbitCamera(base, vecspace.New(0, 0, 0), 10, 0, 0, 4)
	assert.Equal(t, 1000.0, cam.Focal)

	base2 := scene.Camera{Focal: 1, Width: 8, Height: 8}
	cam2 := orbitCamera(base2, vecspace.New(0, 0, 0), 10, 0, 0, 4)
	assert.Equal(t, 5.0, cam2.Focal)
}

func TestTurntableProducesRequestedFrameCount(t *testing.T) {
	g := voxgrid.New()
	g.Set(0, 0, 0, scene.Color{255, 0, 0, 255})

	base := scene.Camera{Focal: 50, Width: 6, Height: 6, PixelSize: 0.1}
	env := scene.Environment{Kind: scene.EnvSolidColor, Color: scene.Color{1, 1, 1, 255}}

	frames := Turntable(g, env, base, TurntableOptions{NumFrames: 5, DistanceFactor: 2.0})
	assert.Len(t, frames, 5)
	for _, f := range frames {
		assert.Equal(t, 6, f.Width)
		assert.Equal(t, 6, f.Height)
	}
}

func TestTurntableOptionsNormalizeInvalidValues(t *testing.T) {
	opts := TurntableOptions{NumFrames: 0, DistanceFactor: -1}.normalized()
	assert.Equal(t, 36, opts.NumFrames)
	assert.Equal(t, 2.0, opts.DistanceFactor)
}

func TestTurntableDocumentFrameBuildsGrid(t *testing.T) {
	general := scene.GeneralData{DefaultColor: scene.Color{A: 255}}
	frame := scene.Frame{
		VoxelsDict: []scene.DictEntry{
			{Pos: vecspace.New(0, 0, 0), Value: scene.ColorValue(scene.Color{1, 1, 1, 255})},
		},
	}
	env := scene.Environment{Kind: scene.EnvNone}
	base := scene.Camera{Focal: 50, Width: 4, Height: 4, PixelSize: 0.1}

	frames := TurntableDocumentFrame(frame, general, env, base, TurntableOptions{NumFrames: 2})
	assert.Len(t, frames, 2)
}
