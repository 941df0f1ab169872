package boxpack

import "image"

// A rectangle packer over a fixed size canvas. See the package
// documentation for an overview of the algorithm.
//
// Nodes live in a single slice and reference each other by index.
// Slots released by [Pack.Clear]() or by recycling are kept on a
// free list and reused by later splits.
//
// Packs are not safe for concurrent use.
type Pack struct {
	nodes    []node
	freeSlot int32 // head of the released slot list
	index    map[ID]int32
	size     image.Point
	border   int
	nextID   ID
	clock    Timestamp
}

// Creates a new packer for a canvas of the given size. Each allocation
// will be surrounded by border pixels on every side. Negative values
// will panic.
func New(width, height, border int) *Pack {
	if width < 0 || height < 0 { panic("negative canvas size") }
	if border < 0 { panic("border < 0") }
	pack := &Pack{
		size: image.Pt(width, height),
		border: border,
	}
	pack.Clear()
	return pack
}

// Returns the canvas size.
func (self *Pack) Size() image.Point { return self.size }

// Returns the border thickness.
func (self *Pack) Border() int { return self.border }

// Returns the number of live allocations.
func (self *Pack) Count() int { return len(self.index) }

// Discards all the nodes and goes back to a single free root.
// Every previously returned ID becomes invalid. IDs are never
// reused, so stale handles can't alias new allocations.
func (self *Pack) Clear() {
	self.nodes = self.nodes[ : 0]
	self.freeSlot = noNode
	self.index = make(map[ID]int32)
	self.newNode(image.Rectangle{ Max: self.size }, noNode)
}

// Like [Pack.Clear](), but also changes the canvas size. Negative
// values will panic.
func (self *Pack) Reset(width, height int) {
	if width < 0 || height < 0 { panic("negative canvas size") }
	self.size = image.Pt(width, height)
	self.Clear()
}

// Returns the root node, which covers the whole canvas.
func (self *Pack) Root() Node { return self.nodes[0].snapshot() }

// Returns the node allocated with the given id. If the id is unknown,
// has been freed or was invalidated by [Pack.Clear](), the second
// return value will be false.
func (self *Pack) GetNode(id ID) (Node, bool) {
	index, found := self.index[id]
	if !found { return Node{ ID: InvalidID }, false }
	return self.nodes[index].snapshot(), true
}

// Marks the allocation as the most recently used one. This only
// matters for [Pack.InsertRecycling](). Returns false if the id
// is not valid.
func (self *Pack) Touch(id ID) bool {
	index, found := self.index[id]
	if !found { return false }
	self.clock += 1
	self.stamp(index, self.clock)
	return true
}

// Finds a region for a width x height rectangle plus its border and
// returns the allocated node. If the canvas has no free region big
// enough, the second return value will be false. Empty requests (zero
// width or height with no border) also return false, as there's nothing
// to place. Negative sizes will panic.
func (self *Pack) Insert(width, height int) (Node, bool) {
	size, ok := self.borderedSize(width, height)
	if !ok { return Node{ ID: InvalidID }, false }
	index := self.insert(0, size)
	if index == noNode { return Node{ ID: InvalidID }, false }
	return self.nodes[index].snapshot(), true
}

// Like [Pack.Insert](), but when the canvas is full the region that
// has gone unused for the longest time and can hold the request is
// wiped and reused. The ids of the allocations that were inside that
// region are returned, and they become invalid.
//
// This never produces overlapping allocations, but callers must
// drop whatever they associated to the discarded ids.
func (self *Pack) InsertRecycling(width, height int) (Node, []ID, bool) {
	size, ok := self.borderedSize(width, height)
	if !ok { return Node{ ID: InvalidID }, nil, false }
	index := self.insert(0, size)
	if index != noNode { return self.nodes[index].snapshot(), nil, true }

	// find the oldest region that can hold the request. on ties,
	// the smaller region wins so we discard as little as possible
	target := noNode
	self.walk(0, 0, func(i int32, _ int) bool {
		n := &self.nodes[i]
		if !n.fits(size) { return false } // children will be even smaller
		if target == noNode {
			target = i
		} else {
			best := &self.nodes[target]
			if n.timestamp < best.timestamp || (n.timestamp == best.timestamp && area(n.box) < area(best.box)) {
				target = i
			}
		}
		return true
	})
	if target == noNode { return Node{ ID: InvalidID }, nil, false }

	discarded := self.discard(target)
	index = self.insert(0, size) // the only free leaf that fits is target
	if index == noNode { panic("broken recycling invariant") }
	return self.nodes[index].snapshot(), discarded, true
}

// Releases the allocation with the given id. Freed leaves are not
// merged with their neighbours. Returns false if the id is not valid.
func (self *Pack) Free(id ID) bool {
	index, found := self.index[id]
	if !found { return false }
	delete(self.index, id)
	n := &self.nodes[index]
	n.id = InvalidID
	n.timestamp = 0
	return true
}

// Returns all the nodes in the tree, free and allocated, in
// depth-first order. Mostly useful for debugging.
func (self *Pack) Nodes() []Node {
	nodes := make([]Node, 0, len(self.nodes))
	self.walk(0, 0, func(i int32, _ int) bool {
		nodes = append(nodes, self.nodes[i].snapshot())
		return true
	})
	return nodes
}

// Calls the given function for each node in depth-first order, along
// with its depth (zero for the root). A non-nil error stops the walk
// and is returned.
func (self *Pack) Walk(fn func(Node, int) error) error {
	var err error
	self.walk(0, 0, func(i int32, depth int) bool {
		if err != nil { return false }
		err = fn(self.nodes[i].snapshot(), depth)
		return err == nil
	})
	return err
}

// Returns the area covered by live allocations. With interior set,
// the border pixels are excluded.
func (self *Pack) UsedArea(interior bool) int {
	total := 0
	for _, index := range self.index {
		box := self.nodes[index].box
		if interior { box = box.Inset(self.border) }
		total += area(box)
	}
	return total
}

// ---- internals ----

func (self *Pack) borderedSize(width, height int) (image.Point, bool) {
	if width < 0 || height < 0 { panic("negative size") }
	size := image.Pt(width + self.border*2, height + self.border*2)
	return size, size.X > 0 && size.Y > 0
}

func (self *Pack) insert(index int32, size image.Point) int32 {
	if self.nodes[index].isBranch() {
		children := self.nodes[index].children
		out := self.insert(children[0], size)
		if out == noNode { out = self.insert(children[1], size) }
		return out
	}

	n := &self.nodes[index]
	if n.isOccupied() || !n.fits(size) { return noNode }

	box := n.box
	if box.Dx() == size.X && box.Dy() == size.Y {
		n.id = self.nextID
		self.nextID += 1
		self.index[n.id] = index
		self.clock += 1
		self.stamp(index, self.clock)
		return index
	}

	// guillotine cut along the axis with more slack
	var first, second image.Rectangle
	if box.Dx() - size.X > box.Dy() - size.Y {
		first  = image.Rect(box.Min.X, box.Min.Y, box.Min.X + size.X, box.Max.Y)
		second = image.Rect(box.Min.X + size.X, box.Min.Y, box.Max.X, box.Max.Y)
	} else {
		first  = image.Rect(box.Min.X, box.Min.Y, box.Max.X, box.Min.Y + size.Y)
		second = image.Rect(box.Min.X, box.Min.Y + size.Y, box.Max.X, box.Max.Y)
	}
	a := self.newNode(first, index)
	b := self.newNode(second, index) // n may be stale after this
	self.nodes[index].children = [2]int32{ a, b }
	return self.insert(a, size)
}

// Sets the timestamp of the node and of all its ancestors.
func (self *Pack) stamp(index int32, timestamp Timestamp) {
	for index != noNode {
		self.nodes[index].timestamp = timestamp
		index = self.nodes[index].parent
	}
}

func (self *Pack) newNode(box image.Rectangle, parent int32) int32 {
	fresh := node{
		box: box,
		id: InvalidID,
		parent: parent,
		children: [2]int32{ noNode, noNode },
		nextFree: noNode,
	}
	if self.freeSlot != noNode {
		index := self.freeSlot
		self.freeSlot = self.nodes[index].nextFree
		self.nodes[index] = fresh
		return index
	}
	self.nodes = append(self.nodes, fresh)
	return int32(len(self.nodes) - 1)
}

// Turns the node into a free leaf, releasing its descendants and
// invalidating the ids inside. Returns the invalidated ids.
func (self *Pack) discard(index int32) []ID {
	var ids []ID
	self.walk(index, 0, func(i int32, _ int) bool {
		n := &self.nodes[i]
		if n.isOccupied() {
			ids = append(ids, n.id)
			delete(self.index, n.id)
		}
		if i != index {
			n.nextFree = self.freeSlot
			self.freeSlot = i
		}
		return true
	})

	n := &self.nodes[index]
	n.id = InvalidID
	n.timestamp = 0
	n.children = [2]int32{ noNode, noNode }
	return ids
}

// Depth-first traversal. When fn returns false, the children of
// that node are skipped.
func (self *Pack) walk(index int32, depth int, fn func(int32, int) bool) {
	if !fn(index, depth) { return }
	children := self.nodes[index].children
	if children[0] == noNode { return }
	self.walk(children[0], depth + 1, fn)
	self.walk(children[1], depth + 1, fn)
}

func area(rect image.Rectangle) int { return rect.Dx()*rect.Dy() }
