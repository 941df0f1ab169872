// The font subpackage parses sfnt fonts (.ttf and .otf) and keeps
// them in a [Library], accessible by their full name (e.g. "Go
// Regular"). That name is also the family used by the glyph cache.
//
// Fonts can come from bytes, from files, or from any [io/fs.FS] in
// bulk with [Library.ParseAllFromFS](), which parses them in parallel.
// The Go fonts bundled with golang.org/x/image are one call away with
// [Library.ParseGoFonts]().
package font
