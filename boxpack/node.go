package boxpack

import "image"

// Allocation handle returned by [Pack.Insert]().
type ID int64

// Handle value used for free regions and branches.
const InvalidID ID = -1

// Allocation counter value. Bigger is more recent.
type Timestamp uint64

// A read-only snapshot of a node in the packing tree.
type Node struct {
	// Allocation handle. [InvalidID] unless the node is an allocated leaf.
	ID ID

	// Region covered by the node, border included.
	Box image.Rectangle

	// For allocated leaves, the time of the allocation or the last
	// [Pack.Touch](). For branches, the most recent timestamp below them.
	Timestamp Timestamp

	branch bool
}

// Returns whether the node has been split in two.
func (self Node) IsBranch() bool { return self.branch }

// Returns whether the node is a leaf holding an allocation.
func (self Node) IsOccupied() bool { return self.ID != InvalidID }

const noNode int32 = -1

type node struct {
	box       image.Rectangle
	id        ID
	timestamp Timestamp
	parent    int32
	children  [2]int32 // both noNode or both valid
	nextFree  int32    // released slot list link
}

func (self *node) isBranch() bool { return self.children[0] != noNode }
func (self *node) isOccupied() bool { return self.id != InvalidID }

func (self *node) fits(size image.Point) bool {
	return size.X <= self.box.Dx() && size.Y <= self.box.Dy()
}

func (self *node) snapshot() Node {
	return Node{ ID: self.id, Box: self.box, Timestamp: self.timestamp, branch: self.isBranch() }
}
