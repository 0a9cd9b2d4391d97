// Package docio decodes the JSON document format into the scene
// package's in-memory model. Decoding is lenient: a malformed or
// missing value falls back to its documented default rather than
// aborting the load. Only frame-level problems (a "frames" entry that
// is not an object, a document with no frames) are recorded in the
// returned warnings slice; a value-level fallback is not reported.
package docio

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/voxelcast/voxelcast/scene"
)

// Result is the outcome of a successful Load: the parsed document
// plus any non-fatal recovery warnings encountered along the way.
type Result struct {
	Document scene.Document
	Warnings []string
}

// Load decodes a document from r. It returns an error only when the
// input is not valid JSON or its root is not a JSON object; any other
// structural problem is recovered from, and frame-level ones are
// recorded as warnings.
func Load(r io.Reader) (Result, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Result{}, fmt.Errorf("docio: decode document: %w", err)
	}
	return FromMap(raw), nil
}

// FromMap builds a Result directly from an already-decoded JSON
// object, bypassing the io.Reader step. Useful for embedding documents
// or testing without round-tripping through JSON text.
func FromMap(doc map[string]any) Result {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	palette := parsePalette(getOr(doc, "color_palette", nil))
	defaultColor := parseColor(getOr(doc, "default_color", []any{0.0, 0.0, 0.0, 255.0}), nil)

	general := scene.GeneralData{Palette: palette, DefaultColor: defaultColor}

	d := scene.Document{
		Name:            stringOr(doc, "name", ""),
		Author:          parseAuthor(doc["author"]),
		Description:     stringOr(doc, "description", ""),
		DateCreated:     stringOr(doc, "date_created", ""),
		DateModified:    stringOr(doc, "date_modified", ""),
		Tags:            parseStringSlice(doc["tags"]),
		License:         stringOr(doc, "license", ""),
		IsPostProcessed: asBool(getOr(doc, "is_post_processed", false)),

		DefaultColor:  defaultColor,
		Palette:       palette,
		GridThickness: int(asFloat(getOr(doc, "grid_thickness", 0.0))),
		GridColor:     parseColor(getOr(doc, "grid_color", []any{0.0, 0.0, 0.0, 255.0}), nil),

		Environment: parseEnvironment(doc),
		Camera:      parseCamera(doc),
	}

	frames, frameWarnings := parseFrames(doc, general)
	d.Frames = frames
	warnings = append(warnings, frameWarnings...)

	if len(d.Frames) == 0 {
		warn("document has no frames (no root-level voxel data and no \"frames\" array)")
	}

	return Result{Document: d, Warnings: warnings}
}

func parseAuthor(v any) []string {
	switch val := v.(type) {
	case string:
		if val == "" {
			return nil
		}
		return []string{val}
	case []any:
		out := make([]string, 0, len(val))
		for _, a := range val {
			if s, ok := a.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func parseStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// parseFrames resolves the document's multi-frame vs. single-frame
// shape: a "frames" array of frame objects, or voxel containers
// living directly at the document root as an implicit single frame.
func parseFrames(doc map[string]any, general scene.GeneralData) ([]scene.Frame, []string) {
	var warnings []string

	if framesAny, ok := doc["frames"].([]any); ok {
		frames := make([]scene.Frame, 0, len(framesAny))
		for idx, fAny := range framesAny {
			fObj, ok := fAny.(map[string]any)
			if !ok {
				warnings = append(warnings, fmt.Sprintf("frames[%d]: not a JSON object, skipped", idx))
				continue
			}
			frames = append(frames, parseFrameObject(fObj, general))
		}
		return frames, warnings
	}

	_, hasDict := doc["voxels_dict"]
	_, hasList := doc["voxels_list"]
	_, hasGrid := doc["voxels_grid"]
	if !hasDict && !hasList && !hasGrid {
		return nil, warnings
	}

	return []scene.Frame{parseFrameObject(doc, general)}, warnings
}

func parseFrameObject(obj map[string]any, general scene.GeneralData) scene.Frame {
	palette := general.Palette

	f := scene.Frame{
		ID:       frameID(obj),
		Duration: frameDuration(obj),
	}

	if dictAny, ok := obj["voxels_dict"].(map[string]any); ok {
		f.VoxelsDict = parseVoxelsDict(dictAny, palette)
	}
	if listAny, ok := obj["voxels_list"].([]any); ok {
		f.VoxelsList = parseVoxelsList(listAny, palette)
	}
	if gridAny, ok := obj["voxels_grid"].([]any); ok {
		f.VoxelsGrid = parseVoxelsGrid(gridAny, palette)
	}
	if emissionAny, ok := obj["light_emission_dict"].(map[string]any); ok {
		f.LightEmission = parseLightEmissionDict(emissionAny)
	}

	return f
}

// frameID returns the document's frame_id if present, else a
// generated UUID (SPEC_FULL.md §3: frame identity should survive even
// when the document omits it, the way the teacher mints a uuid.UUID
// for every entity rather than leaving identity unset).
func frameID(obj map[string]any) string {
	if id, ok := obj["frame_id"]; ok {
		return fmt.Sprintf("%v", id)
	}
	return uuid.New().String()
}

func frameDuration(obj map[string]any) time.Duration {
	seconds := asFloat(getOr(obj, "frame_duration", 1.0))
	return time.Duration(seconds * float64(time.Second))
}
