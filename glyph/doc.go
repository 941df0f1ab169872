// The glyph subpackage connects glyph rasterization, a texture [atlas.Atlas]
// and an [lru.Cache] into a glyph cache for text rendering.
//
// Glyphs are identified by a [GlyphInfo] (code point, font family and
// size). The first time a glyph is requested, it's rasterized and copied
// into the atlas, and the atlas id is stored in the LRU cache. Later
// requests only refresh the recency of the entry.
//
// Cache and atlas never disagree about what is stored: whenever an entry
// leaves the LRU cache (because the cache is over its max, because the
// entry was removed, or because the atlas was full and room had to be
// made), its atlas region is freed too. When the atlas is full, the
// oldest glyphs are evicted until a freed region can hold the new glyph,
// and the insertion is retried once. If that still fails, the glyph is
// returned uncached (see [Ref]) so the caller can draw it directly.
//
// A [Cache] is not safe for concurrent use.
package glyph
