package glyph

// A Handler is a [Cache] front-end that remembers the active font,
// so renderers don't need to pass it on every request. Changes are
// notified only when they happen, and requests then only need the
// code point.
//
// Multiple handlers can share the same cache. Like the cache itself,
// handlers can't be used concurrently.
type Handler struct {
	cache  *Cache
	active FontInfo
}

// Returns a new handler for the cache, initially using the default
// font family and size.
func (self *Cache) NewHandler() *Handler {
	return &Handler{ cache: self, active: DefaultFontInfo() }
}

// Notifies that the font family in use has changed.
func (self *Handler) NotifyFontChange(family string) { self.active.Family = family }

// Notifies that the text size (in pixels) has changed. Sizes <= 0
// will panic.
func (self *Handler) NotifySizeChange(size int) {
	if size <= 0 { panic("size <= 0") }
	self.active.Size = size
}

// Returns the active font.
func (self *Handler) Font() FontInfo { return self.active }

// Same as [Cache.Request]() with the active font.
func (self *Handler) Request(code rune) (Ref, error) {
	return self.cache.Request(code, self.active)
}

// Same as [Cache.Glyphs]() with the active font.
func (self *Handler) Glyphs(text string) ([]Ref, error) {
	return self.cache.Glyphs(text, self.active)
}

// Same as [Cache.FontMetrics]() with the active font.
func (self *Handler) FontMetrics() (FontMetrics, error) {
	return self.cache.FontMetrics(self.active)
}

// Provides access to the underlying [Cache].
func (self *Handler) Cache() *Cache { return self.cache }
