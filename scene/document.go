package scene

// Document is the immutable root of the parsed scene tree. It is
// loaded once (by docio) and treated as read-only by the rendering
// core for its entire lifetime.
type Document struct {
	Name string

	// Metadata is descriptive only: no operation in this module reads
	// it, but it survives a load/render round trip (SPEC_FULL.md §3).
	Author          []string
	Description     string
	DateCreated     string
	DateModified    string
	Tags            []string
	License         string
	IsPostProcessed bool

	DefaultColor  Color
	Palette       *Palette
	GridThickness int
	GridColor     Color

	Frames []Frame

	Environment Environment
	Camera      Camera
}

// General returns the document-level defaults a frame falls back to.
func (d Document) General() GeneralData {
	return GeneralData{Palette: d.Palette, DefaultColor: d.DefaultColor}
}

// FrameAt returns the frame at idx, clamping out-of-range indices to
// the nearest valid frame (SPEC_FULL.md §7: "Frame index out of range
// — Clamped to the last available frame"). Reports false if the
// document has no frames at all.
func (d Document) FrameAt(idx int) (Frame, bool) {
	if len(d.Frames) == 0 {
		return Frame{}, false
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(d.Frames) {
		idx = len(d.Frames) - 1
	}
	return d.Frames[idx], true
}
