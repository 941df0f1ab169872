package glyph

// Explains why a glyph left the cache.
type EvictReason int

const (
	// The cache went over its max after an insertion or [Cache.SetMax]().
	EvictCapacity EvictReason = iota
	// The atlas was full and room had to be made for a new glyph.
	EvictAtlasFull
	// Removed with [Cache.Remove]().
	EvictRemoved
	// Removed with [Cache.Clear](), or found invalid after the atlas was
	// reset from outside the cache.
	EvictCleared
)

func (self EvictReason) String() string {
	switch self {
	case EvictCapacity  : return "capacity"
	case EvictAtlasFull : return "atlas_full"
	case EvictRemoved   : return "removed"
	case EvictCleared   : return "cleared"
	default:
		return "unknown"
	}
}

// Metrics exposes glyph cache observability hooks. [NoopMetrics] is
// used when no implementation is configured, and the promglyph
// subpackage provides a Prometheus implementation.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Size(entries int, cost int64)

	// Called when a glyph can't be cached even after evicting
	// everything else.
	AllocFailure()
}

// NoopMetrics is a [Metrics] implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                         {}
func (NoopMetrics) Miss()                        {}
func (NoopMetrics) Evict(EvictReason)            {}
func (NoopMetrics) Size(entries int, cost int64) {}
func (NoopMetrics) AllocFailure()                {}

var _ Metrics = NoopMetrics{}
