package mask

import "image"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask. This interface is offered as an open alternative to the
// concrete [golang.org/x/image/vector.Rasterizer] type, allowing anyone
// to target it and use its own rasterizer for glyphs.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline must be
	// drawn at the given fractional position (only the lowest 6 bits of
	// each coordinate are considered).
	Rasterize(sfnt.Segments, fixed.Point26_6) (*image.Alpha, error)
}

type vectorTracer interface {
	MoveTo(fixed.Point26_6)
	LineTo(fixed.Point26_6)
	QuadTo(fixed.Point26_6, fixed.Point26_6)
	CubeTo(fixed.Point26_6, fixed.Point26_6, fixed.Point26_6)
}

// A low level method to rasterize glyph masks.
//
// Returned masks have their coordinates adjusted so the mask is drawn at
// dot origin (0, 0) + the given fractional position. In particular,
// bounds.Min.Y is typically negative, with y = 0 corresponding to the
// glyph's baseline.
//
// The image returned will be nil if the segments are empty or do
// not include any active lines or curves (e.g.: space glyphs).
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer, dot fixed.Point26_6) (*image.Alpha, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		return rasterizer.Rasterize(outline, dot)
	}
	return nil, nil // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}

// Given the glyph bounds and an origin position indicating the subpixel
// positioning (only lowest bits will be taken into account), it returns
// the bounding integer width and heights, the normalization offset to be
// applied to keep the coordinates in the positive plane, and the final
// offset to be applied on the final mask to align its bounds to the glyph
// origin.
func figureOutBounds(bounds fixed.Rectangle26_6, origin fixed.Point26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := bounds.Min.X & ^fixed.Int26_6(63)
	floorMinY := bounds.Min.Y & ^fixed.Int26_6(63)
	maskCorrection := image.Pt(floorMinX.Floor(), floorMinY.Floor())

	var normOffset fixed.Point26_6
	normOffset.X = -floorMinX + (origin.X & 63)
	normOffset.Y = -floorMinY + (origin.Y & 63)
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, maskCorrection
}
