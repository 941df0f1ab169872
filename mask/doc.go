// The mask subpackage defines the [Rasterizer] interface used to turn
// glyph outlines into alpha masks, and provides a couple of ready-to-use
// implementations.
//
// Whenever a glyph is requested from the glyph cache and it's not
// there yet, its outline (a set of lines and curves extracted from the
// font file) must be rasterized into a grid of pixels before it can be
// copied into the atlas. Rasterizers are the objects doing that.
//
// The [DefaultRasterizer] wraps [golang.org/x/image/vector.Rasterizer].
// The [SharpRasterizer] quantizes the results to fully opaque or fully
// transparent pixels, which is mostly useful for pixel art fonts.
package mask
