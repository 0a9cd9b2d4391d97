// Package render turns a voxgrid.Grid plus a scene.Camera into pixels:
// per-pixel ray generation, the miss-path environment sample, a whole
// frame buffer, and the turntable orbit used for rotation GIFs.
package render

import (
	"github.com/voxelcast/voxelcast/raymarch"
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

// cameraRays precomputes what every pixel ray needs: the camera's
// world-space focal point (the ray's common origin) and the rotation
// used to place each pixel on the image plane.
type cameraRays struct {
	camera   scene.Camera
	position vecspace.Vec3
	rotation vecspace.Mat3
	focal    vecspace.Vec3
}

func newCameraRays(camera scene.Camera) cameraRays {
	rot := camera.RotationMatrix()

	// Focal point sits behind the image plane along camera-space -Y;
	// pixels are laid out on the camera-space Z (vertical) / X
	// (horizontal) plane at Y=0.
	focalCam := vecspace.New(0, -camera.Focal, 0)
	focalWorld := vecspace.New(
		camera.Position[0]+vecspace.Apply(rot, focalCam)[0],
		camera.Position[1]+vecspace.Apply(rot, focalCam)[1],
		camera.Position[2]+vecspace.Apply(rot, focalCam)[2],
	)

	return cameraRays{camera: camera, position: camera.Position, rotation: rot, focal: focalWorld}
}

// rayFor builds the ray through pixel (x, y), where x in [0, width)
// grows rightward and y in [0, height) grows downward. The pixel grid
// is centered on the camera's optical axis.
func (c cameraRays) rayFor(x, y int) raymarch.Ray {
	pixelCam := vecspace.New(
		(float64(x)-float64(c.camera.Width)/2)*c.camera.PixelSize,
		0,
		(float64(y)-float64(c.camera.Height)/2)*c.camera.PixelSize,
	)
	rotated := vecspace.Apply(c.rotation, pixelCam)
	pixelWorld := vecspace.New(
		c.position[0]+rotated[0],
		c.position[1]+rotated[1],
		c.position[2]+rotated[2],
	)
	return raymarch.NewRayFromPoints(c.focal, pixelWorld)
}
