package raster

import (
	"math"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

// outcode bits for Cohen-Sutherland, checked in TOP, BOTTOM, RIGHT, LEFT
// priority order.
const (
	outInside = 0
	outLeft   = 1
	outRight  = 2
	outBottom = 4
	outTop    = 8
)

func computeOutcode(p, min, max mathx.Vec2) int {
	code := outInside
	switch {
	case p[0] < min[0]:
		code |= outLeft
	case p[0] > max[0]:
		code |= outRight
	}
	switch {
	case p[1] < min[1]:
		code |= outBottom
	case p[1] > max[1]:
		code |= outTop
	}
	return code
}

// CohenSutherlandClip clips the segment (p1, p2) to the rectangle
// [min, max]. It returns ok=false if the segment lies entirely outside a
// shared region; otherwise it returns the (possibly truncated) in-bounds
// segment. Each iteration refines the outside endpoint against the
// highest-priority violated edge (TOP, BOTTOM, RIGHT, LEFT) using exact
// line-edge intersection; at most 4 iterations are needed since each step
// strictly shrinks the union of outside bits.
func CohenSutherlandClip(p1, p2, min, max mathx.Vec2) (mathx.Vec2, mathx.Vec2, bool) {
	oc1 := computeOutcode(p1, min, max)
	oc2 := computeOutcode(p2, min, max)

	for {
		if oc1&oc2 != 0 {
			return mathx.Vec2{}, mathx.Vec2{}, false
		}
		if oc1|oc2 == 0 {
			return p1, p2, true
		}

		outcode := oc1
		if oc2 > oc1 {
			outcode = oc2
		}

		var p mathx.Vec2
		switch {
		case outcode&outTop != 0:
			p[0] = p1[0] + (p2[0]-p1[0])*(max[1]-p1[1])/(p2[1]-p1[1])
			p[1] = max[1]
		case outcode&outBottom != 0:
			p[0] = p1[0] + (p2[0]-p1[0])*(min[1]-p1[1])/(p2[1]-p1[1])
			p[1] = min[1]
		case outcode&outRight != 0:
			p[1] = p1[1] + (p2[1]-p1[1])*(max[0]-p1[0])/(p2[0]-p1[0])
			p[0] = max[0]
		case outcode&outLeft != 0:
			p[1] = p1[1] + (p2[1]-p1[1])*(min[0]-p1[0])/(p2[0]-p1[0])
			p[0] = min[0]
		}

		if outcode == oc1 {
			p1 = p
			oc1 = computeOutcode(p1, min, max)
		} else {
			p2 = p
			oc2 = computeOutcode(p2, min, max)
		}
	}
}

// Bresenham walks the integer pixels of a clipped 2D segment. Construct
// with NewBresenham, then call Step until it returns ok=false.
type Bresenham struct {
	finalMajor int
	x, y       int
	steep      bool
	err        int
	sx, sy     int
	desc, step int
	done       bool
}

// NewBresenham clips (p0, p1) to [min, max] and prepares a step iterator.
// ok is false if the segment is entirely outside the clip rectangle.
func NewBresenham(p0, p1, min, max mathx.Vec2) (Bresenham, bool) {
	v0, v1, ok := CohenSutherlandClip(p0, p1, min, max)
	if !ok {
		return Bresenham{}, false
	}

	x0, y0 := int(v0[0]), int(v0[1])
	x1, y1 := int(v1[0]), int(v1[1])

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x1 <= x0 {
		sx = -1
	}
	if y1 <= y0 {
		sy = -1
	}

	x, y := x0, y0
	steep := dx < dy
	finalMajor := x1
	if steep {
		finalMajor = y1
		dx, dy = dy, dx
		x, y = y, x
		sx, sy = sy, sx
	}

	return Bresenham{
		finalMajor: finalMajor,
		x:          x,
		y:          y,
		steep:      steep,
		err:        -dx,
		step:       2 * dy,
		desc:       -2 * dx,
		sx:         sx,
		sy:         sy,
	}, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Finished reports whether the iterator has reached its endpoint.
func (b *Bresenham) Finished() bool { return b.x == b.finalMajor }

// Step emits the current point and advances by one major-axis unit.
// ok is false once Finished.
func (b *Bresenham) Step() (x, y int, ok bool) {
	if b.Finished() {
		return 0, 0, false
	}
	if b.steep {
		x, y = b.y, b.x
	} else {
		x, y = b.x, b.y
	}
	b.err += b.step
	if b.err >= 0 {
		b.y += b.sy
		b.err += b.desc
	}
	b.x += b.sx
	return x, y, true
}

// Line holds a clipped vertex-to-vertex segment plus the per-major-step
// position/attribute stride used by the shared line-rasterization
// routine.
type Line struct {
	Start, End, Step Vertex
}

// NewLine builds a Line and derives Step from the major axis of the
// screen-space delta between start and end.
func NewLine(start, end Vertex) Line {
	dx := math.Abs(end.Position[0] - start.Position[0])
	dy := math.Abs(end.Position[1] - start.Position[1])
	var t float64
	if dx >= dy {
		t = 1.0 / math.Abs(end.Position[0]-start.Position[0])
	} else {
		t = 1.0 / math.Abs(end.Position[1]-start.Position[1])
	}
	step := Vertex{
		Position: end.Position.Sub(start.Position).Scale(t),
		Attrs:    end.Attrs.Sub(start.Attrs).Scale(t),
	}
	return Line{Start: start, End: end, Step: step}
}

// RasterizeLine walks a Line's Bresenham pixels, perspective-correcting
// attributes at each, depth-testing, and invoking the pixel stage.
// Shared by wireframe mode and any standalone line-drawing caller.
func RasterizeLine(line Line, shader Shader, tex *TextureStore, color *ColorAttachment, depth *DepthAttachment) {
	p0 := line.Start.Position.TruncatedToVec3()
	p1 := line.End.Position.TruncatedToVec3()
	bres, ok := NewBresenham(
		mathx.V2(p0[0], p0[1]), mathx.V2(p1[0], p1[1]),
		mathx.V2(0, 0), mathx.V2(float64(color.Width-1), float64(color.Height-1)),
	)
	if !ok {
		return
	}

	vertex := line.Start
	for {
		x, y, ok := bres.Step()
		if !ok {
			break
		}
		rhw := vertex.Position[2]
		z := 1.0 / rhw

		if depth.Test(x, y, z) {
			attrs := vertex.Attrs.Scale(z)
			col := shader.callPixelShading(attrs, tex)
			color.Set(x, y, col)
			depth.Set(x, y, z)
		}

		vertex.Position = vertex.Position.Add(line.Step.Position)
		vertex.Attrs = vertex.Attrs.Add(line.Step.Attrs)
	}
}
