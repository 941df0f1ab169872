package atlas

import "image"

import "github.com/darbyjohnston/tinygfx-sub002/boxpack"

// Pixel format of the atlas buffer.
type PixelType uint8

const (
	PixelL8    PixelType = iota // 8-bit luminance/alpha, *image.Alpha buffers
	PixelRGBA8                  // 8-bit RGBA, *image.NRGBA buffers
)

func (self PixelType) String() string {
	switch self {
	case PixelL8    : return "L8"
	case PixelRGBA8 : return "RGBA8"
	default:
		return "PixelType(?)"
	}
}

// Texture sampling filter, passed to the backend.
type Filter uint8

const (
	FilterLinear Filter = iota
	FilterNearest
)

// A closed range of normalized texture coordinates.
type Range struct {
	Min float32
	Max float32
}

// Location of an image inside the atlas.
type Item struct {
	ID   boxpack.ID
	Size image.Point // interior size, without the border
	U    Range
	V    Range
}

// A Backend creates the textures that mirror atlas buffers on the
// rendering side.
type Backend interface {
	NewTexture(width, height int, pixelType PixelType, filter Filter) Texture
}

// A Texture receives the regions of the atlas buffer that change.
// The rectangle is given in atlas coordinates, and src is the whole
// atlas buffer (*image.Alpha or *image.NRGBA depending on the pixel
// type).
//
// How the texture is bound for sampling depends on the backend, so
// concrete textures expose their own accessors for it.
type Texture interface {
	Upload(rect image.Rectangle, src image.Image)
}
