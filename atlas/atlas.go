package atlas

import "image"
import "image/draw"

import "github.com/darbyjohnston/tinygfx-sub002/boxpack"

// Defaults used by the glyph cache and the CLI.
const (
	DefaultSize   = 4096
	DefaultBorder = 1
)

// A square texture atlas. See the package documentation for an overview.
//
// Atlases are not safe for concurrent use.
type Atlas struct {
	backend   Backend
	texture   Texture
	buffer    draw.Image // *image.Alpha or *image.NRGBA
	pack      *boxpack.Pack
	size      int
	pixelType PixelType
	filter    Filter
	border    int
}

// Creates a new atlas using the default backend for the current
// build (Ebitengine unless the gtxt tag is set).
func New(size int, pixelType PixelType, filter Filter, border int) *Atlas {
	return NewWithBackend(DefaultBackend(), size, pixelType, filter, border)
}

// Creates a new atlas with the given backend. Sizes <= 0, negative
// borders, unknown pixel types and nil backends will panic.
func NewWithBackend(backend Backend, size int, pixelType PixelType, filter Filter, border int) *Atlas {
	if backend == nil { panic("nil backend") }
	if size <= 0 { panic("size <= 0") }
	if border < 0 { panic("border < 0") }
	atlas := &Atlas{
		backend: backend,
		pixelType: pixelType,
		filter: filter,
		border: border,
	}
	atlas.allocate(size)
	return atlas
}

// Returns the width and height of the atlas.
func (self *Atlas) Size() int { return self.size }

func (self *Atlas) PixelType() PixelType { return self.pixelType }
func (self *Atlas) Filter() Filter { return self.filter }
func (self *Atlas) Border() int { return self.border }

// Returns the backend texture. Type assert to the concrete texture
// type of the backend to bind it.
func (self *Atlas) Texture() Texture { return self.texture }

// Returns the CPU side copy of the atlas pixels. The image must not
// be modified.
func (self *Atlas) Image() image.Image { return self.buffer }

// Returns the number of images currently stored.
func (self *Atlas) Count() int { return self.pack.Count() }

// Copies the given image into the atlas. If there's no free region big
// enough for the image and its border, the second return value will be
// false and the atlas is not modified.
//
// With [PixelL8], only the alpha channel of the image is kept.
func (self *Atlas) AddItem(img image.Image) (Item, bool) {
	bounds := img.Bounds()
	node, ok := self.pack.Insert(bounds.Dx(), bounds.Dy())
	if !ok { return Item{ ID: boxpack.InvalidID }, false }
	self.blit(node.Box, img)
	return self.toItem(node), true
}

// Like [Atlas.AddItem](), but when the atlas is full the least recently
// used region that can hold the image is reused. The ids of the items
// that were overwritten are returned, and they become invalid.
func (self *Atlas) AddItemRecycling(img image.Image) (Item, []boxpack.ID, bool) {
	bounds := img.Bounds()
	node, discarded, ok := self.pack.InsertRecycling(bounds.Dx(), bounds.Dy())
	if !ok { return Item{ ID: boxpack.InvalidID }, nil, false }
	self.blit(node.Box, img)
	return self.toItem(node), discarded, true
}

// Returns the item for the given id, and marks it as recently used
// for [Atlas.AddItemRecycling](). The second return value is false
// if the id is not valid anymore.
func (self *Atlas) GetItem(id boxpack.ID) (Item, bool) {
	node, found := self.pack.GetNode(id)
	if !found { return Item{ ID: boxpack.InvalidID }, false }
	self.pack.Touch(id)
	return self.toItem(node), true
}

// Returns whether the given id refers to a stored image. Recency is
// not modified.
func (self *Atlas) Contains(id boxpack.ID) bool {
	_, found := self.pack.GetNode(id)
	return found
}

// Releases the region of the given item so it can be reused. Pixels
// are left as they are. Returns false if the id is not valid.
func (self *Atlas) Free(id boxpack.ID) bool {
	return self.pack.Free(id)
}

// Returns the ratio between the area of the stored images (borders
// excluded) and the whole atlas area.
func (self *Atlas) PercentageUsed() float32 {
	return float32(self.pack.UsedArea(true))/float32(self.size*self.size)
}

// Removes all the images. Every id issued so far becomes invalid.
func (self *Atlas) Clear() {
	self.pack.Clear()
	rect := self.buffer.Bounds()
	draw.Draw(self.buffer, rect, image.Transparent, image.Point{}, draw.Src)
	self.texture.Upload(rect, self.buffer)
}

// Replaces the atlas contents with an empty buffer and texture of the
// given size. Every id issued so far becomes invalid. Sizes <= 0 will
// panic. Resizing to the current size is equivalent to [Atlas.Clear]().
func (self *Atlas) Resize(size int) {
	if size <= 0 { panic("size <= 0") }
	if size == self.size { self.Clear() ; return }
	self.allocate(size)
}

// Visits the packer nodes depth-first. Mostly useful for debugging.
func (self *Atlas) Walk(fn func(boxpack.Node, int) error) error {
	return self.pack.Walk(fn)
}

func (self *Atlas) allocate(size int) {
	rect := image.Rect(0, 0, size, size)
	switch self.pixelType {
	case PixelL8    : self.buffer = image.NewAlpha(rect)
	case PixelRGBA8 : self.buffer = image.NewNRGBA(rect)
	default:
		panic("unexpected pixel type " + self.pixelType.String())
	}
	self.size = size
	self.texture = self.backend.NewTexture(size, size, self.pixelType, self.filter)
	if self.pack == nil {
		self.pack = boxpack.New(size, size, self.border)
	} else { // keeps the id sequence going
		self.pack.Reset(size, size)
	}
}

func (self *Atlas) blit(box image.Rectangle, img image.Image) {
	draw.Draw(self.buffer, box, image.Transparent, image.Point{}, draw.Src)
	draw.Draw(self.buffer, box.Inset(self.border), img, img.Bounds().Min, draw.Src)
	self.texture.Upload(box, self.buffer)
}

func (self *Atlas) toItem(node boxpack.Node) Item {
	interior := node.Box.Inset(self.border)
	size := float32(self.size)
	return Item{
		ID: node.ID,
		Size: interior.Size(),
		U: Range{ float32(interior.Min.X)/size, float32(interior.Max.X)/size },
		V: Range{ float32(interior.Min.Y)/size, float32(interior.Max.Y)/size },
	}
}
