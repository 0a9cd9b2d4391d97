package docio

import (
	"strconv"
	"strings"

	"github.com/voxelcast/voxelcast/scene"
	"github.com/voxelcast/voxelcast/vecspace"
)

// parseVec3 parses a Vec3 out of any of the document's accepted
// forms: a [x,y,z] array, a {"x":.., "y":.., "z":..} object, or an
// "x,y,z"/"x_y_z" string. Anything else parses as the zero vector.
func parseVec3(v any) vecspace.Vec3 {
	switch val := v.(type) {
	case []any:
		if len(val) >= 3 {
			return vecspace.New(asFloat(val[0]), asFloat(val[1]), asFloat(val[2]))
		}
	case map[string]any:
		return vecspace.New(asFloat(val["x"]), asFloat(val["y"]), asFloat(val["z"]))
	case string:
		sep := "_"
		if strings.Contains(val, ",") {
			sep = ","
		}
		parts := strings.Split(val, sep)
		if len(parts) >= 3 {
			x, xErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
			y, yErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			z, zErr := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
			if xErr == nil && yErr == nil && zErr == nil {
				return vecspace.New(x, y, z)
			}
		}
	}
	return vecspace.New(0, 0, 0)
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}

// parseLightValue parses an RGB light-emission triple out of a
// [r,g,b] array or {"r":.., "g":.., "b":..} object, defaulting every
// missing component to 1.0 (not 0), matching the reference default.
func parseLightValue(v any) scene.LightValue {
	switch val := v.(type) {
	case []any:
		if len(val) >= 3 {
			return scene.LightValue{asFloat(val[0]), asFloat(val[1]), asFloat(val[2])}
		}
	case map[string]any:
		return scene.LightValue{floatOr(val["r"], 1), floatOr(val["g"], 1), floatOr(val["b"], 1)}
	}
	return scene.LightValue{1, 1, 1}
}

func floatOr(v any, def float64) float64 {
	if v == nil {
		return def
	}
	return asFloat(v)
}
