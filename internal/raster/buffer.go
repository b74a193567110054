package raster

import "math"

// ColorAttachment is an RGBA8 color target, addressable by (x, y).
// Grounded on the teacher's flat-slice FrameBuffer, split into its own
// type per the rasterizer's data model: color and depth have independent
// lifetimes and clear semantics.
type ColorAttachment struct {
	Width, Height int
	Pixels        []uint8 // RGBA interleaved, len = Width*Height*4
}

// NewColorAttachment allocates a zeroed (transparent black) color target.
func NewColorAttachment(w, h int) *ColorAttachment {
	return &ColorAttachment{Width: w, Height: h, Pixels: make([]uint8, w*h*4)}
}

func (c *ColorAttachment) offset(x, y int) int { return (y*c.Width + x) * 4 }

// InBounds reports whether (x, y) addresses a pixel of this attachment.
func (c *ColorAttachment) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// Set writes an RGBA color (components in [0,1]) at (x, y).
func (c *ColorAttachment) Set(x, y int, col Color) {
	i := c.offset(x, y)
	c.Pixels[i+0] = to8(col[0])
	c.Pixels[i+1] = to8(col[1])
	c.Pixels[i+2] = to8(col[2])
	c.Pixels[i+3] = to8(col[3])
}

// Get reads the RGBA color at (x, y), components in [0,1].
func (c *ColorAttachment) Get(x, y int) Color {
	i := c.offset(x, y)
	return Color{
		float64(c.Pixels[i+0]) / 255,
		float64(c.Pixels[i+1]) / 255,
		float64(c.Pixels[i+2]) / 255,
		float64(c.Pixels[i+3]) / 255,
	}
}

// Clear fills every pixel with col.
func (c *ColorAttachment) Clear(col Color) {
	r, g, b, a := to8(col[0]), to8(col[1]), to8(col[2]), to8(col[3])
	for i := 0; i < len(c.Pixels); i += 4 {
		c.Pixels[i+0] = r
		c.Pixels[i+1] = g
		c.Pixels[i+2] = b
		c.Pixels[i+3] = a
	}
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// DepthAttachment is a per-pixel float64 depth target, addressable
// by (x, y). Cleared to the most-negative representable view-space depth
// before each frame, per the unified depth convention in SPEC_FULL.md §4:
// a fragment passes the test when its z is strictly greater (nearer) than
// the stored value.
type DepthAttachment struct {
	Width, Height int
	Depth         []float64
}

// NewDepthAttachment allocates a depth target cleared to -math.MaxFloat64.
func NewDepthAttachment(w, h int) *DepthAttachment {
	d := &DepthAttachment{Width: w, Height: h, Depth: make([]float64, w*h)}
	d.Clear()
	return d
}

func (d *DepthAttachment) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

func (d *DepthAttachment) Get(x, y int) float64 { return d.Depth[y*d.Width+x] }

func (d *DepthAttachment) Set(x, y int, z float64) { d.Depth[y*d.Width+x] = z }

// Clear resets every depth sample to -math.MaxFloat64.
func (d *DepthAttachment) Clear() {
	for i := range d.Depth {
		d.Depth[i] = -math.MaxFloat64
	}
}

// Test reports whether z is nearer than the stored sample at (x, y) under
// the unified depth convention (larger/less-negative z wins, ties lose).
func (d *DepthAttachment) Test(x, y int, z float64) bool {
	return z > d.Get(x, y)
}
