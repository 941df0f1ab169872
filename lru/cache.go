package lru

// A key-value pair removed from or stored in a [Cache].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
	Cost  int
}

// A cache with a cost budget and least-recently-used eviction.
//
// The zero value is not ready to use; create caches with [New]().
// A new cache has a maximum of zero until [Cache.SetMax]() is called,
// which means that every [Cache.Add]() will evict everything except
// the entry just added.
type Cache[K comparable, V any] struct {
	index map[K]int32
	list  arena[K, V]
	size  int
	max   int
}

// Creates a new, empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	cache := &Cache[K, V]{ index: make(map[K]int32) }
	cache.list.init()
	return cache
}

// Returns the configured cost budget.
func (self *Cache[K, V]) Max() int { return self.max }

// Sets the cost budget. If the current size exceeds the new maximum,
// least recently used entries are evicted until it doesn't, and the
// evicted entries are returned, oldest first. Setting the same value
// again does nothing.
//
// A maximum of zero effectively disables caching, as any added entry
// will evict all the others. Negative values will panic.
func (self *Cache[K, V]) SetMax(max int) []Entry[K, V] {
	if max < 0 { panic("max < 0") }
	if max == self.max { return nil }
	self.max = max
	return self.evict(nilSlot)
}

// Returns the sum of the costs of all the entries in the cache.
func (self *Cache[K, V]) Size() int { return self.size }

// Returns the number of entries in the cache.
func (self *Cache[K, V]) Count() int { return len(self.index) }

// Returns Size()/Max(), where 1 means that the cache is full. Values
// above 1 are possible when a single entry exceeds the maximum. If the
// maximum is zero, zero is returned.
func (self *Cache[K, V]) Percentage() float32 {
	if self.max == 0 { return 0 }
	return float32(self.size)/float32(self.max)
}

// Same as [Cache.AddCost]() with a cost of 1.
func (self *Cache[K, V]) Add(key K, value V) []Entry[K, V] {
	return self.AddCost(key, value, 1)
}

// Inserts or overwrites the entry for the given key and marks it as
// the most recently used one. If the total cost goes above the maximum,
// other entries are evicted from least to most recently used until it
// doesn't, and the evicted entries are returned.
//
// The max is a soft target: an entry whose own cost exceeds it is still
// added, but it will be the only survivor. An overwritten value is not
// considered evicted and is not returned. Negative costs will panic.
func (self *Cache[K, V]) AddCost(key K, value V, cost int) []Entry[K, V] {
	if cost < 0 { panic("cost < 0") }
	index, found := self.index[key]
	if found {
		s := &self.list.slots[index]
		self.size += cost - s.cost
		s.value = value
		s.cost  = cost
		self.list.moveToBack(index)
	} else {
		index = self.list.pushBack(key, value, cost)
		self.index[key] = index
		self.size += cost
	}
	return self.evict(index)
}

// Returns the value for the given key and whether it was found.
// Found entries become the most recently used ones.
func (self *Cache[K, V]) Get(key K) (V, bool) {
	index, found := self.index[key]
	if !found {
		var zero V
		return zero, false
	}
	self.list.moveToBack(index)
	return self.list.slots[index].value, true
}

// Like [Cache.Get](), but without modifying the recency of the entry.
func (self *Cache[K, V]) Peek(key K) (V, bool) {
	index, found := self.index[key]
	if !found {
		var zero V
		return zero, false
	}
	return self.list.slots[index].value, true
}

// Returns whether the key is in the cache. Recency is not modified.
func (self *Cache[K, V]) Contains(key K) bool {
	_, found := self.index[key]
	return found
}

// Removes the entry for the given key, if present, and returns it.
func (self *Cache[K, V]) Remove(key K) (Entry[K, V], bool) {
	index, found := self.index[key]
	if !found { return Entry[K, V]{}, false }
	return self.removeAt(index), true
}

// Returns the least recently used entry without removing it.
func (self *Cache[K, V]) Oldest() (Entry[K, V], bool) {
	index := self.list.front()
	if index == nilSlot { return Entry[K, V]{}, false }
	s := &self.list.slots[index]
	return Entry[K, V]{ Key: s.key, Value: s.value, Cost: s.cost }, true
}

// Removes the least recently used entry and returns it.
func (self *Cache[K, V]) RemoveOldest() (Entry[K, V], bool) {
	index := self.list.front()
	if index == nilSlot { return Entry[K, V]{}, false }
	return self.removeAt(index), true
}

// Removes all the entries and returns them, oldest first.
// The maximum is preserved.
func (self *Cache[K, V]) Clear() []Entry[K, V] {
	removed := self.Entries()
	self.index = make(map[K]int32)
	self.list.init()
	self.size = 0
	return removed
}

// Returns the keys ordered from least to most recently used.
func (self *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(self.index))
	for i := self.list.front(); i != nilSlot; i = self.list.slots[i].next {
		keys = append(keys, self.list.slots[i].key)
	}
	return keys
}

// Returns the values ordered from least to most recently used.
func (self *Cache[K, V]) Values() []V {
	values := make([]V, 0, len(self.index))
	for i := self.list.front(); i != nilSlot; i = self.list.slots[i].next {
		values = append(values, self.list.slots[i].value)
	}
	return values
}

// Returns the entries ordered from least to most recently used.
func (self *Cache[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(self.index))
	for i := self.list.front(); i != nilSlot; i = self.list.slots[i].next {
		s := &self.list.slots[i]
		entries = append(entries, Entry[K, V]{ Key: s.key, Value: s.value, Cost: s.cost })
	}
	return entries
}

func (self *Cache[K, V]) removeAt(index int32) Entry[K, V] {
	entry := self.list.release(index)
	delete(self.index, entry.Key)
	self.size -= entry.Cost
	return entry
}

// Evicts from the least recently used end until size <= max, never
// touching the slot at keep. Returns nil when nothing was evicted.
func (self *Cache[K, V]) evict(keep int32) []Entry[K, V] {
	var evicted []Entry[K, V]
	for self.size > self.max {
		index := self.list.front()
		if index == keep { index = self.list.slots[index].next }
		if index == nilSlot { break }
		evicted = append(evicted, self.removeAt(index))
	}
	return evicted
}
