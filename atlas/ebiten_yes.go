//go:build !gtxt

package atlas

import "image"

import "github.com/hajimehoshi/ebiten/v2"

// Returns the backend used by [New](). With Ebitengine, this is an
// [EbitenBackend]. Without Ebitengine (gtxt version), it's an
// [ImageBackend] instead.
func DefaultBackend() Backend { return EbitenBackend{} }

// A [Backend] creating Ebitengine images.
type EbitenBackend struct{}

var _ Backend = EbitenBackend{}

// Implements [Backend].NewTexture(...)
func (EbitenBackend) NewTexture(width, height int, _ PixelType, filter Filter) Texture {
	texture := &EbitenTexture{ img: ebiten.NewImage(width, height) }
	switch filter {
	case FilterNearest : texture.filter = ebiten.FilterNearest
	default:
		texture.filter = ebiten.FilterLinear
	}
	return texture
}

// A [Texture] wrapping an *ebiten.Image. Ebitengine doesn't have
// single channel images, so [PixelL8] atlases are expanded to white
// RGBA with the luminance as the alpha.
type EbitenTexture struct {
	img *ebiten.Image
	filter ebiten.Filter
	scratch []byte
}

// Implements [Texture].Upload(...)
func (self *EbitenTexture) Upload(rect image.Rectangle, src image.Image) {
	if rect.Empty() { return }
	size := rect.Dx()*rect.Dy()*4
	if cap(self.scratch) < size { self.scratch = make([]byte, size) }
	pixels := self.scratch[ : size]

	// ebitengine expects premultiplied alpha
	index := 0
	switch img := src.(type) {
	case *image.Alpha:
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			row := img.Pix[img.PixOffset(rect.Min.X, y) : img.PixOffset(rect.Max.X, y)]
			for _, value := range row {
				pixels[index + 0] = value
				pixels[index + 1] = value
				pixels[index + 2] = value
				pixels[index + 3] = value
				index += 4
			}
		}
	default:
		for y := rect.Min.Y; y < rect.Max.Y; y++ {
			for x := rect.Min.X; x < rect.Max.X; x++ {
				r, g, b, a := src.At(x, y).RGBA() // already premultiplied
				pixels[index + 0] = uint8(r >> 8)
				pixels[index + 1] = uint8(g >> 8)
				pixels[index + 2] = uint8(b >> 8)
				pixels[index + 3] = uint8(a >> 8)
				index += 4
			}
		}
	}
	self.img.SubImage(rect).(*ebiten.Image).ReplacePixels(pixels)
}

// Returns the underlying Ebitengine image.
func (self *EbitenTexture) Image() *ebiten.Image { return self.img }

// Returns the filter that should be used in ebiten.DrawImageOptions
// when sampling from the texture.
func (self *EbitenTexture) Filter() ebiten.Filter { return self.filter }
