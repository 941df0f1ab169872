package glyph

import "github.com/pkg/errors"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import xfont "golang.org/x/image/font"

import "github.com/darbyjohnston/tinygfx-sub002/font"
import "github.com/darbyjohnston/tinygfx-sub002/mask"

// Returned (wrapped) when a font family is not available.
var ErrFontNotFound = errors.New("font not found")

// A Rasterizer turns code points into glyph images. Implementations
// don't need to be safe for concurrent use.
type Rasterizer interface {
	RasterizeGlyph(code rune, font FontInfo) (*Glyph, error)
	FontMetrics(font FontInfo) (FontMetrics, error)
}

var _ Rasterizer = (*SfntRasterizer)(nil)

// The default [Rasterizer], loading glyph outlines from the fonts in
// a [font.Library] and rasterizing them with a [mask.Rasterizer].
// Font families are the font names used by the library.
type SfntRasterizer struct {
	library *font.Library
	rasterizer mask.Rasterizer
	buffer sfnt.Buffer
}

// Creates a new rasterizer for the given library. If rasterizer is
// nil, a [mask.DefaultRasterizer] is used.
func NewSfntRasterizer(library *font.Library, rasterizer mask.Rasterizer) *SfntRasterizer {
	if library == nil { panic("nil library") }
	if rasterizer == nil { rasterizer = &mask.DefaultRasterizer{} }
	return &SfntRasterizer{ library: library, rasterizer: rasterizer }
}

// Creates a new rasterizer with the Go fonts preloaded. The default
// family [DefaultFamily] is among them.
func NewGoFontsRasterizer() (*SfntRasterizer, error) {
	library := font.NewLibrary()
	_, _, err := library.ParseGoFonts()
	if err != nil { return nil, errors.Wrap(err, "loading Go fonts") }
	return NewSfntRasterizer(library, nil), nil
}

// Returns the underlying font library.
func (self *SfntRasterizer) Library() *font.Library { return self.library }

// Implements [Rasterizer].RasterizeGlyph(...)
func (self *SfntRasterizer) RasterizeGlyph(code rune, info FontInfo) (*Glyph, error) {
	sfntFont, ppem, err := self.lookup(info)
	if err != nil { return nil, err }
	index, err := sfntFont.GlyphIndex(&self.buffer, code)
	if err != nil { return nil, errors.Wrapf(err, "glyph index for %q", code) }

	// segments are only valid until the next buffer use, so
	// rasterize before querying the advance
	outline, err := sfntFont.LoadGlyph(&self.buffer, index, ppem, nil)
	if err != nil { return nil, errors.Wrapf(err, "loading glyph %q", code) }
	img, err := mask.Rasterize(outline, self.rasterizer, fixed.Point26_6{})
	if err != nil { return nil, errors.Wrapf(err, "rasterizing glyph %q", code) }
	advance, err := sfntFont.GlyphAdvance(&self.buffer, index, ppem, xfont.HintingNone)
	if err != nil { return nil, errors.Wrapf(err, "advance for %q", code) }

	glyph := &Glyph{
		Info: GlyphInfo{ Code: code, Font: info },
		Image: img,
		Advance: advance.Round(),
		Missing: index == 0,
	}
	if img != nil { glyph.Offset = img.Rect.Min }
	return glyph, nil
}

// Returns the distinct runes of the text that the given font family has
// no glyph for. [SfntRasterizer.RasterizeGlyph]() still rasterizes them,
// using the notdef glyph of the font.
func (self *SfntRasterizer) MissingRunes(family string, text string) ([]rune, error) {
	sfntFont := self.library.GetFont(family)
	if sfntFont == nil { return nil, errors.Wrapf(ErrFontNotFound, "%q", family) }
	return font.GetMissingRunes(sfntFont, text)
}

// Implements [Rasterizer].FontMetrics(...)
func (self *SfntRasterizer) FontMetrics(info FontInfo) (FontMetrics, error) {
	sfntFont, ppem, err := self.lookup(info)
	if err != nil { return FontMetrics{}, err }
	metrics, err := sfntFont.Metrics(&self.buffer, ppem, xfont.HintingNone)
	if err != nil { return FontMetrics{}, errors.Wrapf(err, "metrics for %q", info.Family) }
	return FontMetrics{
		Ascender: metrics.Ascent.Ceil(),
		Descender: metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}, nil
}

func (self *SfntRasterizer) lookup(info FontInfo) (*sfnt.Font, fixed.Int26_6, error) {
	if info.Size <= 0 { return nil, 0, errors.Errorf("invalid font size %d", info.Size) }
	sfntFont := self.library.GetFont(info.Family)
	if sfntFont == nil { return nil, 0, errors.Wrapf(ErrFontNotFound, "%q", info.Family) }
	return sfntFont, fixed.I(info.Size), nil
}
