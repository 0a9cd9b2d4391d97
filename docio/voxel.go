package docio

import (
	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

// parseVoxelValue parses a single voxel entry in any of the document's
// accepted forms: a dict with a "type" key names a shape; a [r,g,b(,a)]
// array or color string is a literal color; a bare string is tried as
// a palette key first, falling back to a color name; a bare number is
// a numeric palette key. Anything else parses as VVUnknown.
func parseVoxelValue(data any, palette *scene.Palette) scene.VoxelValue {
	if obj, ok := data.(map[string]any); ok {
		if _, hasType := obj["type"]; hasType {
			return parseShapeValue(obj, palette)
		}
	}

	switch val := data.(type) {
	case []any:
		return scene.ColorValue(parseColor(val, palette))
	case string:
		if palette != nil {
			if c, ok := palette.Get(val); ok {
				return scene.ColorValue(c)
			}
		}
		return scene.ColorValue(parseColor(val, palette))
	case float64:
		if palette != nil {
			return scene.PaletteRefValue(paletteKeyString(val))
		}
	}

	return scene.UnknownValue()
}

func parseShapeValue(obj map[string]any, palette *scene.Palette) scene.VoxelValue {
	shapeType, _ := obj["type"].(string)
	color := parseColor(getOr(obj, "color", []any{255.0, 255.0, 255.0, 255.0}), palette)

	s := scene.Shape{Color: color}

	switch shapeType {
	case "shape_point":
		s.Kind = scene.ShapePoint
		s.Pos = parseVec3(getOr(obj, "position", nil))
	case "shape_line":
		s.Kind = scene.ShapeLine
		s.Pos = parseVec3(getOr(obj, "position", nil))
		s.Pos2 = parseVec3(getOr(obj, "position2", nil))
	case "shape_triangle":
		s.Kind = scene.ShapeTriangle
		s.Pos = parseVec3(getOr(obj, "position", nil))
		s.Vertices = []vecspace.Vec3{
			s.Pos,
			parseVec3(getOr(obj, "position2", nil)),
			parseVec3(getOr(obj, "position3", nil)),
		}
	case "shape_circle":
		s.Kind = scene.ShapeCircle
		s.Pos = parseVec3(getOr(obj, "position", nil))
		s.Radius = asFloat(getOr(obj, "radius", 1.0))
		s.Axis, _ = getOr(obj, "axis", "z").(string)
	case "shape_cube":
		s.Kind = scene.ShapeCube
		s.Pos = parseVec3(getOr(obj, "position", nil))
		s.Size = asFloat(getOr(obj, "size", 1.0))
	case "shape_rect":
		s.Kind = scene.ShapeRect
		s.Pos = parseVec3(getOr(obj, "position", nil))
		s.Pos2 = parseVec3(getOr(obj, "position2", nil))
	case "shape_sphere":
		s.Kind = scene.ShapeSphere
		s.Pos = parseVec3(getOr(obj, "position", nil))
		s.Radius = asFloat(getOr(obj, "radius", 1.0))
	case "shape_cylinder":
		s.Kind = scene.ShapeCylinder
		s.Pos = parseVec3(getOr(obj, "position", nil))
		s.Radius = asFloat(getOr(obj, "radius", 1.0))
		s.Height = asFloat(getOr(obj, "height", 1.0))
		s.Axis, _ = getOr(obj, "axis", "y").(string)
	case "shape_polygon":
		s.Kind = scene.ShapePolygon
		s.Pos = parseVec3(getOr(obj, "position", nil))
		if poly, ok := obj["polygon"].([]any); ok {
			for _, p := range poly {
				s.Vertices = append(s.Vertices, parseVec3(p))
			}
		}
	default:
		// "import_voxel" (multi-file scene composition) and any other
		// unrecognized shape tag: no single-grid rasterizer exists for
		// it, so it is carried as an unknown value rather than guessed at.
		return scene.UnknownValue()
	}

	return scene.ShapeValue(s)
}

func getOr(obj map[string]any, key string, def any) any {
	if v, ok := obj[key]; ok {
		return v
	}
	return def
}
