package glyph

import "image"

import "github.com/darbyjohnston/tinygfx-sub002/atlas"
import "github.com/darbyjohnston/tinygfx-sub002/boxpack"
import "github.com/darbyjohnston/tinygfx-sub002/font"

// Default font family and size.
const (
	DefaultFamily = font.GoRegular
	DefaultSize   = 12
)

// Font family and size in pixels.
type FontInfo struct {
	Family string
	Size   int
}

// Returns a FontInfo with the default family and size.
func DefaultFontInfo() FontInfo {
	return FontInfo{ Family: DefaultFamily, Size: DefaultSize }
}

// Cache key of a glyph.
type GlyphInfo struct {
	Code rune
	Font FontInfo
}

// A rasterized glyph.
type Glyph struct {
	Info GlyphInfo

	// Alpha mask of the glyph, nil for empty glyphs like spaces. The
	// image bounds are positioned relative to the glyph origin, so
	// Image.Rect.Min.Y is typically negative, with y = 0 corresponding
	// to the baseline.
	Image *image.Alpha

	// Same as Image.Rect.Min, or zero for empty glyphs.
	Offset image.Point

	// Horizontal advance in pixels.
	Advance int

	// Set when the font has no glyph for the code point, in which
	// case Image is the font's notdef glyph (often an empty box).
	Missing bool
}

// Result of a glyph request.
type Ref struct {
	Glyph *Glyph

	// Atlas id of the glyph. [boxpack.InvalidID] for empty glyphs and
	// for glyphs that couldn't be cached.
	ID boxpack.ID

	// Atlas location of the glyph. Only meaningful if ID is valid.
	Item atlas.Item

	// False when there was no room for the glyph even after evicting
	// everything else. The glyph image is still available, so it can
	// be drawn without the atlas.
	Cached bool
}

// Vertical font metrics in pixels. Descender is the distance from the
// baseline to the bottom of the descending glyphs, as a positive value.
type FontMetrics struct {
	Ascender   int
	Descender  int
	LineHeight int
}

// Snapshot of the glyph cache state.
type Statistics struct {
	EntryCount      int     // glyphs in the LRU cache
	TotalCost       int     // sum of the entry costs
	CachePercentage float32 // TotalCost / max
	AtlasCount      int     // glyphs stored in the atlas
	PercentageUsed  float32 // atlas area used by glyphs, from 0 to 1
}
