package render

import (
	"image/color"

	"github.com/voxelcast/voxelcast/imageio"
	"github.com/voxelcast/voxelcast/raymarch"
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/voxgrid"
)

// PixelRenderer resolves a single pixel's color: march the grid, and
// on a miss fall back to the environment sample for the ray's
// direction.
type PixelRenderer struct {
	grid   *voxgrid.Grid
	env    scene.Environment
	rays   cameraRays
	camera scene.Camera
}

// NewPixelRenderer builds a renderer for one grid/environment/camera
// combination. Constructing it amortizes the camera's rotation matrix
// and focal point across every pixel of the frame.
func NewPixelRenderer(grid *voxgrid.Grid, env scene.Environment, camera scene.Camera) *PixelRenderer {
	return &PixelRenderer{grid: grid, env: env, rays: newCameraRays(camera), camera: camera}
}

// ColorAt renders the pixel at image coordinates (x, y).
func (p *PixelRenderer) ColorAt(x, y int) scene.Color {
	ray := p.rays.rayFor(x, y)
	hit := raymarch.March(p.grid, ray, p.camera.ClipStart, p.camera.ClipEnd)
	if hit.Hit {
		return hit.Color
	}
	return p.env.Sample(ray.Direction)
}

// RenderFrame renders every pixel of the camera's image into an
// imageio.RGBAFrame, row-major with y growing downward.
func (p *PixelRenderer) RenderFrame() imageio.RGBAFrame {
	w, h := p.camera.Width, p.camera.Height
	pix := make([]color.RGBA, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := p.ColorAt(x, y)
			pix[y*w+x] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}
	return imageio.RGBAFrame{Width: w, Height: h, Pix: pix}
}

// RenderFrameParallel renders the frame with a pool of workers
// goroutines (clamped to [1, height]) that take image rows from a
// channel. Pixel rendering has no shared mutable state beyond the grid
// (read-only after construction), so rows can be split arbitrarily;
// this is an optional, opt-in speedup over RenderFrame for larger
// images.
func (p *PixelRenderer) RenderFrameParallel(workers int) imageio.RGBAFrame {
	w, h := p.camera.Width, p.camera.Height
	pix := make([]color.RGBA, w*h)

	if workers < 1 {
		workers = 1
	}
	if workers > h {
		workers = h
	}

	rows := make(chan int, h)
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)

	done := make(chan struct{}, workers)
	for wk := 0; wk < workers; wk++ {
		go func() {
			for y := range rows {
				for x := 0; x < w; x++ {
					c := p.ColorAt(x, y)
					pix[y*w+x] = color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
				}
			}
			done <- struct{}{}
		}()
	}
	for wk := 0; wk < workers; wk++ {
		<-done
	}

	return imageio.RGBAFrame{Width: w, Height: h, Pix: pix}
}

// RenderDocumentFrame builds the grid for frame and renders it with
// camera, applying the document's general palette/default-color data.
func RenderDocumentFrame(frame scene.Frame, general scene.GeneralData, env scene.Environment, camera scene.Camera) imageio.RGBAFrame {
	grid := voxgrid.BuildFromFrame(frame, general)
	return NewPixelRenderer(grid, env, camera).RenderFrame()
}
