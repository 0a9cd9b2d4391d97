package scene

import (
	"time"

	"github.com/voxelcast/voxelcast/vecspace"
)

// ListEntry is one element of a frame's flat voxel list. Only shape
// values are rasterized (position comes from the shape's own Pos
// field); a bare color or palette reference in list form is parsed
// but produces no voxel, matching the reference loader.
type ListEntry struct {
	Value VoxelValue
}

// DictEntry is one element of a frame's position-keyed voxel map,
// preserving the document's original key string (its canonical
// "x_y_z" form) alongside the parsed position, so a malformed key can
// be reported without losing the rest of the frame.
type DictEntry struct {
	Key   string
	Pos   vecspace.Vec3
	Value VoxelValue
}

// Frame is one animation slice: a voxel container expressed in up to
// three equivalent forms, plus inert light-emission data and
// scheduling metadata. The dense grid's outermost index is Z, middle Y,
// innermost X, per the document model.
type Frame struct {
	ID       string
	Duration time.Duration

	VoxelsDict []DictEntry
	VoxelsList []ListEntry
	VoxelsGrid [][][]VoxelValue // [z][y][x]

	Palette      *Palette
	DefaultColor Color

	// LightEmission maps an integer voxel coordinate to an emitted RGB
	// intensity. Loaded from the document but never consulted by the
	// rendering core (SPEC_FULL.md §3 expansion).
	LightEmission map[[3]int]LightValue
}

// GeneralData carries the document-level defaults a frame inherits
// when it does not define its own palette or default color.
type GeneralData struct {
	Palette      *Palette
	DefaultColor Color
}

// ResolvedPalette returns the frame's own palette if set, else the
// general data's palette.
func (f Frame) ResolvedPalette(general GeneralData) *Palette {
	if f.Palette != nil {
		return f.Palette
	}
	return general.Palette
}

// ResolvedDefaultColor returns the frame's own default color if it
// differs from the zero value, else the general data's default color.
func (f Frame) ResolvedDefaultColor(general GeneralData) Color {
	if !f.DefaultColor.Equal(Color{}) {
		return f.DefaultColor
	}
	return general.DefaultColor
}

// EmissionAt returns the inert light emission value at an integer
// coordinate, if any was loaded for this frame.
func (f Frame) EmissionAt(i, j, k int) (LightValue, bool) {
	if f.LightEmission == nil {
		return LightValue{}, false
	}
	v, ok := f.LightEmission[[3]int{i, j, k}]
	return v, ok
}
