package atlas

import "image"
import "image/draw"

// A [Backend] that keeps textures as plain images in memory. It's the
// default backend with the gtxt build tag, and it's also handy for tests
// and for exporting atlases with image/png.
type ImageBackend struct{}

var _ Backend = ImageBackend{}

// Implements [Backend].NewTexture(...)
func (ImageBackend) NewTexture(width, height int, pixelType PixelType, filter Filter) Texture {
	rect := image.Rect(0, 0, width, height)
	var img draw.Image
	switch pixelType {
	case PixelL8    : img = image.NewAlpha(rect)
	case PixelRGBA8 : img = image.NewNRGBA(rect)
	default:
		panic("unexpected pixel type " + pixelType.String())
	}
	return &ImageTexture{ img: img, filter: filter }
}

// A [Texture] backed by an *image.Alpha or an *image.NRGBA.
type ImageTexture struct {
	img draw.Image
	filter Filter
	uploads int
}

// Implements [Texture].Upload(...)
func (self *ImageTexture) Upload(rect image.Rectangle, src image.Image) {
	draw.Draw(self.img, rect, src, rect.Min, draw.Src)
	self.uploads += 1
}

// Returns the texture image.
func (self *ImageTexture) Image() image.Image { return self.img }

func (self *ImageTexture) Filter() Filter { return self.filter }

// Returns how many times [ImageTexture.Upload]() has been called.
func (self *ImageTexture) Uploads() int { return self.uploads }
