package docio

import "github.com/voxelcast/voxelcast/scene"

// parseCamera parses the document's camera block. camera_focal is the
// field the reference renderer actually consumes; camera_fov is an
// accepted legacy alias from an earlier camera variant that never
// carried width/height/pixel_size (SPEC_FULL.md §9) and is only
// consulted when camera_focal is absent.
func parseCamera(doc map[string]any) scene.Camera {
	focal, hasFocal := doc["camera_focal"]
	if !hasFocal {
		if fov, hasFov := doc["camera_fov"]; hasFov {
			focal = fov
		} else {
			focal = 70.0
		}
	}

	return scene.Camera{
		Position:       parseVec3(getOr(doc, "camera_position", nil)),
		Rotation:       parseVec3(getOr(doc, "camera_rotation", nil)),
		Focal:          asFloat(focal),
		ClipStart:      asFloat(getOr(doc, "camera_clip_start", 0.001)),
		ClipEnd:        asFloat(getOr(doc, "camera_clip_end", 100.0)),
		Width:          int(asFloat(getOr(doc, "camera_width", 32.0))),
		Height:         int(asFloat(getOr(doc, "camera_height", 32.0))),
		PixelSize:      asFloat(getOr(doc, "camera_pixel_size", 0.1)),
		LockedMovement: asBool(getOr(doc, "locked_camera_movement", false)),
		LockedRotation: asBool(getOr(doc, "locked_camera_rotation", false)),
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
