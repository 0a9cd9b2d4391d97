package render

import (
	"math"

	"github.com/voxelcast/voxelcast/imageio"
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
	"github.com/voxelcast/voxelcast/voxgrid"
)

// turntableFOVDegrees is the reference field of view the orbit
// distance is solved for, so the whole scene stays framed regardless
// of its size.
const turntableFOVDegrees = 35.0

// TurntableOptions configures an orbital render pass around a scene.
type TurntableOptions struct {
	NumFrames      int
	DistanceFactor float64 // multiplier applied to the scene radius
	ElevationAngle float64 // radians above the scene's horizontal plane
}

// DefaultTurntableOptions matches the reference renderer's defaults.
func DefaultTurntableOptions() TurntableOptions {
	return TurntableOptions{NumFrames: 36, DistanceFactor: 2.0, ElevationAngle: 0.3}
}

func (o TurntableOptions) normalized() TurntableOptions {
	if o.NumFrames <= 0 {
		o.NumFrames = 36
	}
	if o.DistanceFactor <= 0 {
		o.DistanceFactor = 2.0
	}
	return o
}

// orbitCamera computes the i-th of numFrames camera placements
// orbiting the Z axis around center at the given distance/height. The
// rotation is (rotX, 0, rotZ): rotZ turns the camera's forward axis to
// the horizontal heading toward center, and rotX is the negated
// elevation angle of center as seen from the camera. Because the
// composite rotation is Rx·Ry·Rz, rotX tilts about the world X axis, so
// the forward axis points exactly at center only when the camera sits
// on the Y axis through center (angles π/2 and 3π/2); at other angles
// the pitch is only partly applied (not at all at angles 0 and π).
func orbitCamera(base scene.Camera, center vecspace.Vec3, distance, elevationHeight float64, i, numFrames int) scene.Camera {
	angle := 2.0 * math.Pi * float64(i) / float64(numFrames)

	camX := center[0] + distance*math.Cos(angle)
	camY := center[1] + distance*math.Sin(angle)
	camZ := center[2] + elevationHeight

	dirX := center[0] - camX
	dirY := center[1] - camY
	dirZ := center[2] - camZ

	horizontalDist := math.Sqrt(dirX*dirX + dirY*dirY)

	rotZ := math.Atan2(dirY, dirX) - math.Pi/2
	rotX := -math.Atan2(dirZ, horizontalDist)

	optimalFocal := math.Max(base.Focal, distance*0.5)

	return scene.Camera{
		Position:  vecspace.New(camX, camY, camZ),
		Rotation:  vecspace.New(rotX, 0, rotZ),
		Focal:     optimalFocal,
		ClipStart: 0.1,
		ClipEnd:   distance * 3,
		Width:     base.Width,
		Height:    base.Height,
		PixelSize: base.PixelSize,
	}
}

// Turntable renders a full orbit of frames around grid's bounding
// box, framing the camera distance from the scene's radius so the
// entire scene stays in view at every angle.
func Turntable(grid *voxgrid.Grid, env scene.Environment, baseCamera scene.Camera, opts TurntableOptions) []imageio.RGBAFrame {
	opts = opts.normalized()

	center, radius := grid.CenterAndRadius()

	fovFactor := 1.0 / math.Tan(turntableFOVDegrees*math.Pi/180.0)
	minDistance := radius * fovFactor * 1.5
	distance := math.Max(minDistance, radius*opts.DistanceFactor) + 2.0

	elevationHeight := radius*math.Sin(opts.ElevationAngle) + radius*0.3

	frames := make([]imageio.RGBAFrame, 0, opts.NumFrames)
	for i := 0; i < opts.NumFrames; i++ {
		cam := orbitCamera(baseCamera, center, distance, elevationHeight, i, opts.NumFrames)
		frames = append(frames, NewPixelRenderer(grid, env, cam).RenderFrame())
	}
	return frames
}

// TurntableDocumentFrame builds the grid for frame and renders its
// turntable orbit.
func TurntableDocumentFrame(frame scene.Frame, general scene.GeneralData, env scene.Environment, camera scene.Camera, opts TurntableOptions) []imageio.RGBAFrame {
	grid := voxgrid.BuildFromFrame(frame, general)
	return Turntable(grid, env, camera, opts)
}
