// Package tinygfx is the root of a small set of packages for keeping
// glyph images in GPU texture atlases:
//   - [boxpack] packs rectangles into a fixed size canvas, tracking
//     usage recency so old regions can be recycled.
//   - [lru] is a generic bounded least recently used cache.
//   - [atlas] stores images in a square texture, with an Ebitengine
//     backend by default and a pure Go [image] backend under the
//     gtxt build tag.
//   - [font] and [mask] load sfnt fonts and rasterize their glyphs.
//   - [glyph] glues everything together: a glyph cache whose entries
//     own atlas regions, releasing them on eviction.
//
// The atlasdump command under cmd/ shows the whole pipeline at work.
package tinygfx
