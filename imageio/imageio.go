// Package imageio writes a rendered frame buffer out to PNG or
// animated GIF. Pixel production (ray casting) lives in package
// render; this package only knows how to encode an image.Image (or a
// sequence of them) to a file.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

// RGBAFrame is a renderer's output for one frame: a flat RGBA pixel
// buffer plus its dimensions. Render builds one of these per frame;
// this package turns it into image.Image for encoding.
type RGBAFrame struct {
	Width, Height int
	Pix           []color.RGBA // row-major, len == Width*Height
}

// Image converts the frame into a standard library image.Image.
func (f RGBAFrame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, f.Pix[y*f.Width+x])
		}
	}
	return img
}

// WritePNG encodes frame as a PNG to path.
func WritePNG(path string, frame RGBAFrame) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer out.Close()
	return EncodePNG(out, frame)
}

// EncodePNG encodes frame as a PNG to w.
func EncodePNG(w io.Writer, frame RGBAFrame) error {
	if err := png.Encode(w, frame.Image()); err != nil {
		return fmt.Errorf("imageio: encode png: %w", err)
	}
	return nil
}

// GIFOptions controls animated GIF encoding.
type GIFOptions struct {
	// DelayCentiseconds is the per-frame display delay, in 1/100ths of
	// a second (the GIF format's native unit). Zero means 10 (100ms),
	// a reasonable default frame rate.
	DelayCentiseconds int
	// LoopCount is passed straight to gif.GIF.LoopCount: 0 loops
	// forever, -1 plays once.
	LoopCount int
}

func (o GIFOptions) delay() int {
	if o.DelayCentiseconds <= 0 {
		return 10
	}
	return o.DelayCentiseconds
}

// WriteGIF quantizes and encodes frames as an animated GIF at path.
// Each frame is independently dithered with Floyd-Steinberg against a
// web-safe palette, since the renderer produces full 24-bit color and
// GIF is restricted to a 256-entry palette per frame.
func WriteGIF(path string, frames []RGBAFrame, opts GIFOptions) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	defer out.Close()
	return EncodeGIF(out, frames, opts)
}

// EncodeGIF quantizes and encodes frames as an animated GIF to w.
func EncodeGIF(w io.Writer, frames []RGBAFrame, opts GIFOptions) error {
	if len(frames) == 0 {
		return fmt.Errorf("imageio: encode gif: no frames")
	}

	anim := &gif.GIF{LoopCount: opts.LoopCount}
	delay := opts.delay()

	for _, f := range frames {
		src := f.Image()
		bounds := src.Bounds()
		paletted := image.NewPaletted(bounds, palette.WebSafe)
		draw.FloydSteinberg.Draw(paletted, bounds, src, image.Point{})

		anim.Image = append(anim.Image, paletted)
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalNone)
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("imageio: encode gif: %w", err)
	}
	return nil
}
