package scene

// VoxelValueKind discriminates the VoxelValue cases: the three document
// forms plus VVUnknown.
type VoxelValueKind int

const (
	VVColor VoxelValueKind = iota
	VVPaletteRef
	VVShape
	// VVUnknown marks a value docio could not parse into any of the
	// above forms; it always resolves to the frame's default color.
	VVUnknown
)

// VoxelValue is the tagged variant resolved to a concrete Color by the
// grid builder's color resolution rule (SPEC_FULL.md §4.1):
//
//   - VVColor:      Color is used directly.
//   - VVPaletteRef: PaletteKey is looked up in the frame's palette,
//     falling back to the frame's default color when absent.
//   - VVShape:      Shape.Color is used; the shape's own position
//     fields drive rasterization instead of an externally supplied Pos.
//
// Any other (VVUnknown or otherwise unrecognized) kind resolves to the
// frame's default color, per the "any unknown variant" rule. The zero
// VoxelValue has Kind VVColor and resolves to its zero Color.
type VoxelValue struct {
	Kind       VoxelValueKind
	Color      Color
	PaletteKey string
	Shape      Shape
}

// ColorValue constructs a literal-color VoxelValue.
func ColorValue(c Color) VoxelValue {
	return VoxelValue{Kind: VVColor, Color: c}
}

// PaletteRefValue constructs a palette-reference VoxelValue.
func PaletteRefValue(key string) VoxelValue {
	return VoxelValue{Kind: VVPaletteRef, PaletteKey: key}
}

// ShapeValue constructs a shape VoxelValue.
func ShapeValue(s Shape) VoxelValue {
	return VoxelValue{Kind: VVShape, Shape: s}
}

// UnknownValue constructs a VoxelValue for input docio could not
// interpret in any recognized form.
func UnknownValue() VoxelValue {
	return VoxelValue{Kind: VVUnknown}
}

// Resolve implements the color resolution rule given the frame's
// palette and default color.
func (v VoxelValue) Resolve(palette *Palette, defaultColor Color) Color {
	switch v.Kind {
	case VVColor:
		return v.Color
	case VVPaletteRef:
		if c, ok := palette.Get(v.PaletteKey); ok {
			return c
		}
		return defaultColor
	case VVShape:
		return v.Shape.Color
	default:
		return defaultColor
	}
}
