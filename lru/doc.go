// The lru subpackage provides a generic, cost-bounded cache with
// least-recently-used eviction.
//
// The cache is mainly used by the glyph subpackage to keep track of
// which glyphs are currently resident in a texture atlas, but nothing
// in here knows about glyphs or atlases: keys are any comparable type,
// values are anything, and each entry carries an integer cost that is
// added up and compared against a maximum.
//
// Instead of notifying evictions through callbacks, every method that
// may remove entries returns the removed entries. Consumers that own
// external resources for each entry (like atlas regions) must release
// them from those return values:
//   evicted := cache.Add(key, id)
//   for _, entry := range evicted {
//       atlas.Free(entry.Value)
//   }
//
// Caches are not safe for concurrent use.
package lru
