package mask

import "image"
import "image/draw"

import "golang.org/x/image/vector"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

var _ Rasterizer = (*DefaultRasterizer)(nil)

// The DefaultRasterizer is a wrapper to make [golang.org/x/image/vector.Rasterizer]
// conform to the [Rasterizer] interface.
//
// The zero value is ready to use.
type DefaultRasterizer struct {
	rasterizer vector.Rasterizer
	normOffset fixed.Point26_6 // offset to normalize points to the positive
	                           // quadrant starting from the fractional coords
}

// Moves the current position to the given point.
func (self *DefaultRasterizer) MoveTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.rasterizer.MoveTo(x, y)
}

// Creates a straight boundary from the current position to the given point.
func (self *DefaultRasterizer) LineTo(point fixed.Point26_6) {
	x, y := self.toFloat32s(point)
	self.rasterizer.LineTo(x, y)
}

// Creates a quadratic Bézier curve to the given target passing
// through the given control point.
func (self *DefaultRasterizer) QuadTo(control, target fixed.Point26_6) {
	cx, cy := self.toFloat32s(control)
	tx, ty := self.toFloat32s(target)
	self.rasterizer.QuadTo(cx, cy, tx, ty)
}

// Creates a cubic Bézier curve to the given target passing through
// the given control points.
func (self *DefaultRasterizer) CubeTo(controlA, controlB, target fixed.Point26_6) {
	cax, cay := self.toFloat32s(controlA)
	cbx, cby := self.toFloat32s(controlB)
	tx , ty  := self.toFloat32s(target)
	self.rasterizer.CubeTo(cax, cay, cbx, cby, tx, ty)
}

// Satisfies the [Rasterizer] interface.
func (self *DefaultRasterizer) Rasterize(outline sfnt.Segments, origin fixed.Point26_6) (*image.Alpha, error) {
	// prepare rasterizer
	var width, height int
	var rectOffset image.Point
	width, height, self.normOffset, rectOffset = figureOutBounds(outline.Bounds(), origin)
	self.rasterizer.Reset(width, height)
	self.rasterizer.DrawOp = draw.Src

	// allocate glyph mask and process the outline
	mask := image.NewAlpha(self.rasterizer.Bounds())
	processOutline(self, outline)

	// the source is uniform, so the sampling point is irrelevant
	self.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	// translate the mask to its final position
	mask.Rect = mask.Rect.Add(rectOffset)
	return mask, nil
}

func (self *DefaultRasterizer) toFloat32s(point fixed.Point26_6) (float32, float32) {
	x, y := point.X + self.normOffset.X, point.Y + self.normOffset.Y
	return float32(x)/64, float32(y)/64
}
