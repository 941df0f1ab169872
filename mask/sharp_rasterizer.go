package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*SharpRasterizer)(nil)

// A rasterizer that quantizes all glyph mask values to fully opaque
// or fully transparent. Its primary use-case is to make scaled pixel
// art fonts look sharper through the elimination of blurry edges.
//
// The zero value uses a threshold of 128.
type SharpRasterizer struct {
	DefaultRasterizer
	threshold uint8
}

// Sets the alpha value at and above which pixels become opaque.
// Zero resets the threshold to its default of 128.
func (self *SharpRasterizer) SetThreshold(threshold uint8) { self.threshold = threshold }

// Satisfies the [Rasterizer] interface.
func (self *SharpRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	mask, err := self.DefaultRasterizer.Rasterize(outline, origin)
	if err != nil { return mask, err }
	threshold := self.getThreshold()
	for i := 0; i < len(mask.Pix); i++ {
		if mask.Pix[i] < threshold {
			mask.Pix[i] = 0
		} else {
			mask.Pix[i] = 255
		}
	}
	return mask, err
}

func (self *SharpRasterizer) getThreshold() uint8 {
	if self.threshold == 0 { return 128 }
	return self.threshold
}
