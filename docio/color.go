package docio

import (
	"fmt"
	"strconv"
	"strings"

	gokicolors "goki.dev/colors"

	"github.com/voxelcast/voxelcast/scene"
)

// parseColor parses a color value out of any of the document's
// accepted forms: a [r,g,b] or [r,g,b,a] array, a "#RRGGBB"/"#RRGGBBAA"
// hex string, a CSS color name, or a palette key (string or number).
// Resolution that fails falls back to opaque black, matching the
// reference loader's Color() default.
func parseColor(v any, palette *scene.Palette) scene.Color {
	switch val := v.(type) {
	case []any:
		return parseColorList(val)
	case string:
		return parseColorString(val, palette)
	case float64:
		if palette != nil {
			if c, ok := palette.GetIndex(int(val)); ok {
				return c
			}
		}
		return scene.Color{A: 255}
	case scene.Color:
		return val
	default:
		return scene.Color{A: 255}
	}
}

func parseColorList(v []any) scene.Color {
	if len(v) >= 4 {
		return scene.ClampColor(asInt(v[0]), asInt(v[1]), asInt(v[2]), asInt(v[3]))
	}
	if len(v) >= 3 {
		return scene.ClampColor(asInt(v[0]), asInt(v[1]), asInt(v[2]), 255)
	}
	return scene.Color{A: 255}
}

func parseColorString(s string, palette *scene.Palette) scene.Color {
	if strings.HasPrefix(s, "#") {
		if c, err := gokicolors.FromHex(s); err == nil {
			return scene.Color{R: c.R, G: c.G, B: c.B, A: c.A}
		}
	}

	if c, err := gokicolors.FromName(strings.ToLower(s)); err == nil {
		return scene.Color{R: c.R, G: c.G, B: c.B, A: c.A}
	}

	if palette != nil {
		if c, ok := palette.Get(s); ok {
			return c
		}
	}

	return scene.Color{A: 255}
}

func asInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, _ := strconv.Atoi(n)
		return i
	default:
		return 0
	}
}

// parsePalette builds a Palette from a JSON object mapping keys
// (string or numeric) to color values.
func parsePalette(v any) *scene.Palette {
	p := scene.NewPalette()
	obj, ok := v.(map[string]any)
	if !ok {
		return p
	}
	for key, value := range obj {
		p.Set(key, parseColor(value, nil))
	}
	return p
}

// paletteKeyString normalizes a JSON numeric or string palette key to
// the string form Palette stores it under.
func paletteKeyString(v any) string {
	switch k := v.(type) {
	case float64:
		return fmt.Sprintf("%d", int(k))
	case string:
		return k
	default:
		return ""
	}
}
