package scene

import "strconv"

// Palette is a total mapping from a string or integer key to a Color.
// Integer keys are normalized to their decimal string form so both
// encodings share one underlying map.
type Palette struct {
	entries map[string]Color
}

// NewPalette returns an empty palette.
func NewPalette() *Palette {
	return &Palette{entries: make(map[string]Color)}
}

// Set stores a color under key, overwriting any prior entry.
func (p *Palette) Set(key string, c Color) {
	if p.entries == nil {
		p.entries = make(map[string]Color)
	}
	p.entries[key] = c
}

// SetIndex stores a color under an integer palette index.
func (p *Palette) SetIndex(idx int, c Color) {
	p.Set(IndexKey(idx), c)
}

// Get looks up key, returning (Transparent, false) when absent — the
// "total" lookup the document model requires: callers that need the
// documented fallback (the frame's default color) substitute it
// themselves rather than relying on the sentinel's RGBA value.
func (p *Palette) Get(key string) (Color, bool) {
	if p == nil || p.entries == nil {
		return Transparent, false
	}
	c, ok := p.entries[key]
	return c, ok
}

// GetIndex looks up an integer palette index.
func (p *Palette) GetIndex(idx int) (Color, bool) {
	return p.Get(IndexKey(idx))
}

// Len reports the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// IndexKey normalizes an integer palette index to its string key form.
func IndexKey(idx int) string {
	return strconv.Itoa(idx)
}
