package lru

// Intrusive doubly linked list over arena indices. The slot at
// index 0 is a sentinel: its next field points to the least recently
// used entry and its prev field to the most recently used one, so
// insertions and removals never need to special-case the ends.

const nilSlot int32 = 0

type slot[K comparable, V any] struct {
	key   K
	value V
	cost  int
	prev  int32
	next  int32
}

type arena[K comparable, V any] struct {
	slots []slot[K, V]
	free  []int32 // released slot indices, reused before growing
}

func (self *arena[K, V]) init() {
	self.slots = make([]slot[K, V], 1, 16)
	self.free  = self.free[:0]
}

// Allocates a slot, links it at the most recently used end and
// returns its index.
func (self *arena[K, V]) pushBack(key K, value V, cost int) int32 {
	var index int32
	if n := len(self.free); n > 0 {
		index = self.free[n - 1]
		self.free = self.free[ : n - 1]
		self.slots[index] = slot[K, V]{ key: key, value: value, cost: cost }
	} else {
		index = int32(len(self.slots))
		self.slots = append(self.slots, slot[K, V]{ key: key, value: value, cost: cost })
	}
	self.link(index)
	return index
}

// Unlinks the slot and puts it on the free list. The returned
// entry is a copy of the released contents.
func (self *arena[K, V]) release(index int32) Entry[K, V] {
	self.unlink(index)
	s := &self.slots[index]
	entry := Entry[K, V]{ Key: s.key, Value: s.value, Cost: s.cost }
	*s = slot[K, V]{} // drop references so values can be collected
	self.free = append(self.free, index)
	return entry
}

// Moves an already linked slot to the most recently used end.
func (self *arena[K, V]) moveToBack(index int32) {
	if self.slots[nilSlot].prev == index { return }
	self.unlink(index)
	self.link(index)
}

func (self *arena[K, V]) link(index int32) {
	sentinel := &self.slots[nilSlot]
	last := sentinel.prev
	self.slots[index].prev = last
	self.slots[index].next = nilSlot
	self.slots[last].next = index
	sentinel.prev = index
}

func (self *arena[K, V]) unlink(index int32) {
	s := &self.slots[index]
	self.slots[s.prev].next = s.next
	self.slots[s.next].prev = s.prev
	s.prev, s.next = nilSlot, nilSlot
}

// Index of the least recently used slot, or nilSlot if empty.
func (self *arena[K, V]) front() int32 { return self.slots[nilSlot].next }
