// Command voxelcast renders a voxel scene document to a PNG, or a
// rotating orbit of it to an animated GIF.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/voxelcast/voxelcast/docio"
	"github.com/voxelcast/voxelcast/imageio"
	"github.com/voxelcast/voxelcast/render"
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/voxgrid"
	"github.com/voxelcast/voxelcast/voxlog"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	file := flag.String("file", "", "path to a voxel scene JSON document")
	output := flag.String("output", "", "output image path (default: <name>_<frame>.png or <name>_rotation.gif)")
	frame := flag.Int("frame", 0, "frame index to render (for animated documents)")
	rotateAroundObject := flag.Bool("rotate_around_object", false, "orbit the camera around the scene and save an animated GIF")
	numFrames := flag.Int("num_frames", 36, "number of orbit frames (with -rotate_around_object)")
	distanceFactor := flag.Float64("distance_factor", 2.0, "camera distance multiplier (with -rotate_around_object)")
	elevationAngle := flag.Float64("elevation_angle", 0.3, "camera elevation in radians (with -rotate_around_object)")
	frameDurationMs := flag.Int("frame_duration_ms", 100, "GIF frame duration in milliseconds (with -rotate_around_object)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := voxlog.New("voxelcast", *debug)

	if *file == "" {
		fatalf("Error: -file is required")
	}
	if _, err := os.Stat(*file); err != nil {
		fatalf("Error: File not found: %s", *file)
	}

	f, err := os.Open(*file)
	if err != nil {
		fatalf("Error: %v", err)
	}
	defer f.Close()

	result, err := docio.Load(f)
	if err != nil {
		fatalf("Error: %v", err)
	}
	for _, w := range result.Warnings {
		log.Warnf("%s", w)
	}

	doc := result.Document
	if len(doc.Frames) == 0 {
		log.Warnf("no data frames in document")
		os.Exit(0)
	}

	selected, _ := doc.FrameAt(*frame)
	idx := *frame
	if idx >= len(doc.Frames) {
		idx = len(doc.Frames) - 1
	}
	general := doc.General()

	if *rotateAroundObject {
		runTurntable(log, doc, selected, general, idx, *output, *numFrames, *distanceFactor, *elevationAngle, *frameDurationMs)
		return
	}
	runSingleFrame(log, doc, selected, general, idx, *output)
}

func runSingleFrame(log voxlog.Logger, doc scene.Document, frame scene.Frame, general scene.GeneralData, frameIndex int, output string) {
	grid := voxgrid.BuildFromFrame(frame, general)
	if grid.IsEmpty() {
		log.Warnf("no voxels in frame")
	}

	out := render.RenderDocumentFrame(frame, general, doc.Environment, doc.Camera)

	path := output
	if path == "" {
		path = fmt.Sprintf("%s_%d.png", doc.Name, frameIndex)
	}
	if err := imageio.WritePNG(path, out); err != nil {
		fatalf("Error: %v", err)
	}
	log.Infof("Rendered frame saved to: %s", path)
}

func runTurntable(log voxlog.Logger, doc scene.Document, frame scene.Frame, general scene.GeneralData, frameIndex int, output string, numFrames int, distanceFactor, elevationAngle float64, frameDurationMs int) {
	grid := voxgrid.BuildFromFrame(frame, general)
	if grid.IsEmpty() {
		log.Warnf("no voxels in frame")
		return
	}

	center, radius := grid.CenterAndRadius()
	log.Infof("Scene center: (%.2f, %.2f, %.2f)", center[0], center[1], center[2])
	log.Infof("Scene radius: %.2f", radius)

	opts := render.TurntableOptions{
		NumFrames:      numFrames,
		DistanceFactor: distanceFactor,
		ElevationAngle: elevationAngle,
	}
	frames := render.Turntable(grid, doc.Environment, doc.Camera, opts)
	for i := range frames {
		log.Infof("Rendered frame %d/%d", i+1, len(frames))
	}

	path := output
	if path == "" {
		path = fmt.Sprintf("%s_rotation.gif", doc.Name)
	}
	delayCentiseconds := frameDurationMs / 10
	if err := imageio.WriteGIF(path, frames, imageio.GIFOptions{DelayCentiseconds: delayCentiseconds}); err != nil {
		fatalf("Error: %v", err)
	}
	log.Infof("Rotation GIF saved to: %s", path)
}
