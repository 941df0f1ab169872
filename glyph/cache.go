package glyph

import "io"
import "log"
import "image"
import "unicode/utf8"

import "github.com/pkg/errors"

import "github.com/darbyjohnston/tinygfx-sub002/atlas"
import "github.com/darbyjohnston/tinygfx-sub002/boxpack"
import "github.com/darbyjohnston/tinygfx-sub002/lru"

// Default maximum number of glyphs kept in a [Cache].
const DefaultMax = 1000

// Options configures a [Cache]. Zero values are safe, and defaults
// are applied in [New]():
//   - nil Atlas      => 4096x4096 [atlas.PixelL8] atlas, linear filter, border 1
//   - nil Rasterizer => [NewGoFontsRasterizer]()
//   - Max == 0       => [DefaultMax]; to disable caching, call
//     [Cache.SetMax](0) after creating the cache
//   - nil Metrics    => [NoopMetrics]
//   - nil Logger     => discard
type Options struct {
	Atlas      *atlas.Atlas
	Rasterizer Rasterizer
	Max        int
	Metrics    Metrics
	Logger     *log.Logger
}

type cacheEntry struct {
	glyph *Glyph
	item  atlas.Item // ID is boxpack.InvalidID for empty glyphs
}

// A glyph cache. See the package documentation for an overview.
type Cache struct {
	atlas      *atlas.Atlas
	rasterizer Rasterizer
	glyphs     *lru.Cache[GlyphInfo, cacheEntry]
	fontMetrics map[FontInfo]FontMetrics
	metrics    Metrics
	logger     *log.Logger
}

// Creates a new glyph cache. Negative Options.Max values will panic.
// Errors can only come from the creation of the default rasterizer.
func New(opts Options) (*Cache, error) {
	if opts.Max < 0 { panic("opts.Max < 0") }
	cache := &Cache{
		atlas: opts.Atlas,
		rasterizer: opts.Rasterizer,
		glyphs: lru.New[GlyphInfo, cacheEntry](),
		fontMetrics: make(map[FontInfo]FontMetrics),
		metrics: opts.Metrics,
		logger: opts.Logger,
	}
	if cache.atlas == nil {
		cache.atlas = atlas.New(atlas.DefaultSize, atlas.PixelL8, atlas.FilterLinear, atlas.DefaultBorder)
	}
	if cache.rasterizer == nil {
		rasterizer, err := NewGoFontsRasterizer()
		if err != nil { return nil, err }
		cache.rasterizer = rasterizer
	}
	if cache.metrics == nil { cache.metrics = NoopMetrics{} }
	if cache.logger == nil { cache.logger = log.New(io.Discard, "", 0) }
	max := opts.Max
	if max == 0 { max = DefaultMax }
	cache.glyphs.SetMax(max)
	return cache, nil
}

// Returns the atlas where glyphs are stored. Resetting the atlas
// directly is allowed but wasteful: the cache will notice stale
// entries on access and rasterize them again.
func (self *Cache) Atlas() *atlas.Atlas { return self.atlas }

// Returns the maximum number of glyphs in the cache.
func (self *Cache) Max() int { return self.glyphs.Max() }

// Changes the maximum number of glyphs in the cache, evicting the
// least recently used ones if necessary. A max of zero keeps only
// the most recently requested glyph. Negative values will panic.
func (self *Cache) SetMax(max int) {
	for _, evicted := range self.glyphs.SetMax(max) {
		self.release(evicted.Value, EvictCapacity)
	}
	self.reportSize()
}

// Returns the glyph for the given code point and font, rasterizing
// it and adding it to the atlas if necessary.
//
// Errors come only from the rasterizer (e.g. unknown font family,
// see [ErrFontNotFound]). A full atlas is not an error: the returned
// Ref will have Cached set to false instead.
func (self *Cache) Request(code rune, font FontInfo) (Ref, error) {
	info := GlyphInfo{ Code: code, Font: font }
	entry, found := self.glyphs.Get(info)
	if found {
		if entry.item.ID == boxpack.InvalidID {
			self.metrics.Hit()
			return Ref{ Glyph: entry.glyph, ID: boxpack.InvalidID, Cached: true }, nil
		}
		item, valid := self.atlas.GetItem(entry.item.ID)
		if valid {
			self.metrics.Hit()
			return Ref{ Glyph: entry.glyph, ID: item.ID, Item: item, Cached: true }, nil
		}

		// the atlas was reset behind our back
		self.glyphs.Remove(info)
		self.metrics.Evict(EvictCleared)
	}

	self.metrics.Miss()
	glyph, err := self.rasterizer.RasterizeGlyph(code, font)
	if err != nil { return Ref{ ID: boxpack.InvalidID }, errors.Wrapf(err, "glyph %q", code) }
	glyph.Info = info
	return self.store(glyph), nil
}

// Requests the glyphs for each code point in the text. If the text
// has more distinct glyphs than the cache max, glyphs requested at
// the start may be evicted before the end, and their Refs will be
// stale.
func (self *Cache) Glyphs(text string, font FontInfo) ([]Ref, error) {
	refs := make([]Ref, 0, utf8.RuneCountInString(text))
	for _, code := range text {
		ref, err := self.Request(code, font)
		if err != nil { return refs, err }
		refs = append(refs, ref)
	}
	return refs, nil
}

// Returns the vertical metrics for the given font. Results are
// memorized per font.
func (self *Cache) FontMetrics(font FontInfo) (FontMetrics, error) {
	metrics, found := self.fontMetrics[font]
	if found { return metrics, nil }
	metrics, err := self.rasterizer.FontMetrics(font)
	if err != nil { return metrics, errors.Wrapf(err, "font metrics for %s %d", font.Family, font.Size) }
	self.fontMetrics[font] = metrics
	return metrics, nil
}

// Returns the size of the given text in pixels. Lines are split on
// '\n', the width is the sum of the glyph advances of the longest
// line, and the height is the number of lines times the line height.
func (self *Cache) Measure(text string, font FontInfo) (image.Point, error) {
	metrics, err := self.FontMetrics(font)
	if err != nil { return image.Point{}, err }
	var size image.Point
	lineWidth, lines := 0, 1
	for _, code := range text {
		if code == '\n' {
			lineWidth = 0
			lines += 1
			continue
		}
		ref, err := self.Request(code, font)
		if err != nil { return image.Point{}, err }
		lineWidth += ref.Glyph.Advance
		if lineWidth > size.X { size.X = lineWidth }
	}
	size.Y = lines*metrics.LineHeight
	return size, nil
}

// Returns whether the glyph is in the cache. Recency is not modified.
func (self *Cache) Contains(code rune, font FontInfo) bool {
	return self.glyphs.Contains(GlyphInfo{ Code: code, Font: font })
}

// Removes the glyph from the cache and releases its atlas region.
// Returns false if the glyph was not cached.
func (self *Cache) Remove(code rune, font FontInfo) bool {
	entry, found := self.glyphs.Remove(GlyphInfo{ Code: code, Font: font })
	if !found { return false }
	self.release(entry.Value, EvictRemoved)
	self.reportSize()
	return true
}

// Removes all the glyphs. If nothing else was stored in the atlas,
// the atlas is cleared too, which also undoes fragmentation.
func (self *Cache) Clear() {
	for _, entry := range self.glyphs.Clear() {
		self.release(entry.Value, EvictCleared)
	}
	if self.atlas.Count() == 0 { self.atlas.Clear() }
	self.reportSize()
}

// Returns the current cache statistics.
func (self *Cache) Statistics() Statistics {
	return Statistics{
		EntryCount: self.glyphs.Count(),
		TotalCost: self.glyphs.Size(),
		CachePercentage: self.glyphs.Percentage(),
		AtlasCount: self.atlas.Count(),
		PercentageUsed: self.atlas.PercentageUsed(),
	}
}

// ---- internals ----

func (self *Cache) store(glyph *Glyph) Ref {
	if glyph.Image == nil || glyph.Image.Rect.Empty() {
		self.add(glyph.Info, cacheEntry{ glyph: glyph, item: atlas.Item{ ID: boxpack.InvalidID } })
		return Ref{ Glyph: glyph, ID: boxpack.InvalidID, Cached: true }
	}

	// glyphs bigger than the atlas would flush everything for nothing
	size := glyph.Image.Rect.Size()
	maxSize := self.atlas.Size() - 2*self.atlas.Border()
	if size.X > maxSize || size.Y > maxSize { return self.uncached(glyph) }

	item, ok := self.atlas.AddItem(glyph.Image)
	if !ok {
		self.makeRoom(size)
		item, ok = self.atlas.AddItem(glyph.Image)
		if !ok { return self.uncached(glyph) }
	}
	self.add(glyph.Info, cacheEntry{ glyph: glyph, item: item })
	return Ref{ Glyph: glyph, ID: item.ID, Item: item, Cached: true }
}

func (self *Cache) uncached(glyph *Glyph) Ref {
	self.metrics.AllocFailure()
	self.logger.Printf("glyph cache: no atlas room for %q (%dx%d, %s %d)",
		glyph.Info.Code, glyph.Image.Rect.Dx(), glyph.Image.Rect.Dy(),
		glyph.Info.Font.Family, glyph.Info.Font.Size)
	return Ref{ Glyph: glyph, ID: boxpack.InvalidID, Cached: false }
}

func (self *Cache) add(info GlyphInfo, entry cacheEntry) {
	for _, evicted := range self.glyphs.Add(info, entry) {
		self.release(evicted.Value, EvictCapacity)
	}
	self.reportSize()
}

// Evicts glyphs from least to most recently used until one of the freed
// atlas regions can hold a glyph of the given size. Allocated regions fit
// their items exactly, so the item size tells the region size. If the
// cache runs out of glyphs first, the atlas is cleared, unless it still
// holds items that were added from outside the cache.
func (self *Cache) makeRoom(size image.Point) {
	evicted := 0
	for {
		oldest, found := self.glyphs.RemoveOldest()
		if !found { break }
		evicted += 1
		self.release(oldest.Value, EvictAtlasFull)
		itemSize := oldest.Value.item.Size
		if oldest.Value.item.ID != boxpack.InvalidID && itemSize.X >= size.X && itemSize.Y >= size.Y {
			self.logger.Printf("glyph cache: atlas full, evicted %d glyphs", evicted)
			self.reportSize()
			return
		}
	}

	if self.atlas.Count() == 0 {
		self.atlas.Clear()
		self.logger.Printf("glyph cache: atlas full, evicted %d glyphs and cleared the atlas", evicted)
	} else {
		self.logger.Printf("glyph cache: atlas full, evicted %d glyphs, %d other items remain", evicted, self.atlas.Count())
	}
	self.reportSize()
}

func (self *Cache) release(entry cacheEntry, reason EvictReason) {
	if entry.item.ID != boxpack.InvalidID { self.atlas.Free(entry.item.ID) }
	self.metrics.Evict(reason)
}

func (self *Cache) reportSize() {
	self.metrics.Size(self.glyphs.Count(), int64(self.glyphs.Size()))
}
