package raster

import (
	"fmt"
	"os"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

// FrontFace selects which winding order is considered front-facing.
type FrontFace int

const (
	CW FrontFace = iota
	CCW
)

// FaceCull selects which winding is discarded.
type FaceCull int

const (
	CullFront FaceCull = iota
	CullBack
	CullNone
)

// Viewport is the axis-aligned rectangle in pixel space that normalized
// device coordinates map into.
type Viewport struct {
	X, Y, W, H int
}

// Backend selects which rasterization algorithm DrawTriangle uses once a
// triangle is fully transformed and clipped.
type Backend int

const (
	BackendScanline Backend = iota
	BackendAABB
)

// RasterizeResult is the outcome of one rasterizeTriangle invocation.
type RasterizeResult int

const (
	ResultOk RasterizeResult = iota
	ResultDiscard
	ResultGenerateNewFace
)

// Rasterizer owns a color+depth attachment pair, a camera, a shader, and
// a texture store, and drives the per-triangle transform/clip/cull/
// project/rasterize pipeline. The core is strictly single-threaded: a
// Rasterizer value (and everything it owns) must never be shared across
// goroutines, though independent Rasterizer instances may run on
// separate goroutines concurrently (see internal/batch).
type Rasterizer struct {
	Viewport  Viewport
	Camera    *Camera
	Shader    Shader
	Textures  *TextureStore
	FrontFace FrontFace
	FaceCull  FaceCull
	Backend   Backend
	Wireframe bool

	Color *ColorAttachment
	Depth *DepthAttachment

	clipped [][3]Vertex
}

// NewRasterizer returns a Rasterizer using the scanline back-end by
// default. Its color and depth attachments are allocated, sized to the
// viewport, by the first Clear and ClearDepth calls.
func NewRasterizer(vp Viewport, cam *Camera, tex *TextureStore) *Rasterizer {
	return &Rasterizer{
		Viewport:  vp,
		Camera:    cam,
		Shader:    NewShader(),
		Textures:  tex,
		FrontFace: CCW,
		FaceCull:  CullBack,
		Backend:   BackendScanline,
	}
}

// Clear fills the color attachment, allocating it if the viewport size
// changed since the last clear.
func (r *Rasterizer) Clear(col Color) {
	if r.Color == nil || r.Color.Width != r.Viewport.W || r.Color.Height != r.Viewport.H {
		r.Color = NewColorAttachment(r.Viewport.W, r.Viewport.H)
	}
	r.Color.Clear(col)
}

// ClearDepth resets the depth attachment, allocating it if needed.
func (r *Rasterizer) ClearDepth() {
	if r.Depth == nil || r.Depth.Width != r.Viewport.W || r.Depth.Height != r.Viewport.H {
		r.Depth = NewDepthAttachment(r.Viewport.W, r.Viewport.H)
		return
	}
	r.Depth.Clear()
}

func (r *Rasterizer) GetCanvaWidth() int  { return r.Viewport.W }
func (r *Rasterizer) GetCanvaHeight() int { return r.Viewport.H }

// GetColorBuffer returns the interleaved RGBA8 pixels of the current
// frame; the host may only read this between frames.
func (r *Rasterizer) GetColorBuffer() []uint8 { return r.Color.Pixels }

// EnableWireframe / DisableWireframe toggle wireframe ("framework") mode.
func (r *Rasterizer) EnableWireframe()  { r.Wireframe = true }
func (r *Rasterizer) DisableWireframe() { r.Wireframe = false }

// shouldCull computes the face normal of a transformed triangle and
// decides whether it should be discarded, per §4.9 (grounded on
// ShouldCull in base_renderer.hpp).
func shouldCull(positions [3]mathx.Vec3, viewDir mathx.Vec3, front FrontFace, cull FaceCull) bool {
	norm := positions[1].Sub(positions[0]).Cross(positions[2].Sub(positions[1]))
	var isFrontFace bool
	if front == CW {
		isFrontFace = norm.Dot(viewDir) > 0
	} else {
		isFrontFace = norm.Dot(viewDir) <= 0
	}
	switch cull {
	case CullFront:
		return isFrontFace
	case CullBack:
		return !isFrontFace
	default:
		return false
	}
}

// DrawTriangle consumes vertices in groups of three, applying model then
// the pipeline described in SPEC_FULL.md §4 to each.
func (r *Rasterizer) DrawTriangle(model mathx.Mat44, vertices []Vertex) {
	for i := 0; i+3 <= len(vertices); i += 3 {
		tri := [3]Vertex{vertices[i], vertices[i+1], vertices[i+2]}
		r.drawOne(model, tri, 0)
	}
}

func (r *Rasterizer) drawOne(model mathx.Mat44, tri [3]Vertex, depth int) {
	result := r.rasterizeTriangle(model, tri)
	if result != ResultGenerateNewFace {
		return
	}
	pending := r.clipped
	r.clipped = nil

	if depth >= 1 {
		fmt.Fprintf(os.Stderr, "raster: near-plane re-entry exceeded one level, dropping %d triangle(s)\n", len(pending))
		return
	}
	for _, t := range pending {
		sub := r.rasterizeTriangle(model, t)
		if sub == ResultGenerateNewFace {
			fmt.Fprintln(os.Stderr, "raster: near-plane clip produced a further crossing triangle, dropped")
		}
	}
	r.clipped = nil
}

// rasterizeTriangle runs steps 1-7 of the pipeline for one triangle.
func (r *Rasterizer) rasterizeTriangle(model mathx.Mat44, tri [3]Vertex) RasterizeResult {
	// 1. vertex stage.
	for i := range tri {
		tri[i] = r.Shader.callVertexChanging(tri[i], r.Textures)
	}

	// 2. model transform.
	for i := range tri {
		tri[i].Position = model.MulVec4(tri[i].Position)
	}

	if r.Backend == BackendScanline {
		// Scanline variant: view transform is a separate step, then a
		// frustum test and near-plane clip run before projection.
		for i := range tri {
			tri[i].Position = r.Camera.ViewMat.MulVec4(tri[i].Position)
		}

		positions := [3]mathx.Vec3{
			tri[0].Position.TruncatedToVec3(),
			tri[1].Position.TruncatedToVec3(),
			tri[2].Position.TruncatedToVec3(),
		}
		if shouldCull(positions, r.Camera.ViewDir, r.FrontFace, r.FaceCull) {
			return ResultDiscard
		}

		allOutside := true
		for _, p := range positions {
			if r.Camera.Frustum.Contain(p) {
				allOutside = false
				break
			}
		}
		if allOutside {
			return ResultDiscard
		}

		anyBehind := false
		near := r.Camera.Frustum.Near
		for _, p := range positions {
			if p[2] > -near {
				anyBehind = true
				break
			}
		}
		if anyBehind {
			t1, t2, ok2 := NearPlaneClip(tri, near)
			r.clipped = append(r.clipped, t1)
			if ok2 {
				r.clipped = append(r.clipped, t2)
			}
			return ResultGenerateNewFace
		}
	} else {
		// AABB variant: the view transform follows the model transform,
		// as in the scanline variant, but with no frustum pre-test or
		// near-plane pre-clip — near-plane rejection happens per-pixel in
		// step 7.
		for i := range tri {
			tri[i].Position = r.Camera.ViewMat.MulVec4(tri[i].Position)
		}

		positions := [3]mathx.Vec3{
			tri[0].Position.TruncatedToVec3(),
			tri[1].Position.TruncatedToVec3(),
			tri[2].Position.TruncatedToVec3(),
		}
		if shouldCull(positions, r.Camera.ViewDir, r.FrontFace, r.FaceCull) {
			return ResultDiscard
		}
	}

	// 6. project + perspective divide + viewport map.
	vp := r.Viewport
	for i := range tri {
		pos := r.Camera.Frustum.Mat.MulVec4(tri[i].Position)
		pos[2] = -pos[3] // Open Question #2: unified -pos.w form, both back-ends.
		pos[0] /= pos[3]
		pos[1] /= pos[3]
		pos[3] = 1

		pos[0] = (pos[0]+1)/2*float64(vp.W-1) + float64(vp.X)
		pos[1] = float64(vp.H) - (pos[1]+1)/2*float64(vp.H-1) + float64(vp.Y)

		tri[i].Position = pos
	}

	// 7. rasterization.
	if r.Wireframe {
		edges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
		for _, e := range edges {
			a := VertexRhwInit(tri[e[0]])
			b := VertexRhwInit(tri[e[1]])
			line := NewLine(a, b)
			RasterizeLine(line, r.Shader, r.Textures, r.Color, r.Depth)
		}
		return ResultOk
	}

	if r.Backend == BackendScanline {
		r.drawScanlineTriangle(tri)
	} else {
		r.drawAABBTriangle(tri)
	}
	return ResultOk
}

// drawScanlineTriangle decomposes tri into trapezoids and walks each
// scanline, interpolating rhw-scaled attributes per §4.4/§4.6.
func (r *Rasterizer) drawScanlineTriangle(tri [3]Vertex) {
	initialized := [3]Vertex{VertexRhwInit(tri[0]), VertexRhwInit(tri[1]), VertexRhwInit(tri[2])}

	trap1, trap2, ok1, ok2 := TrapezoidsFromTriangle(initialized)
	if ok1 {
		r.drawTrapezoid(trap1)
	}
	if ok2 {
		r.drawTrapezoid(trap2)
	}
}

func (r *Rasterizer) drawTrapezoid(trap Trapezoid) {
	top := ceil(trap.Top)
	if top < 0 {
		top = 0
	}
	bottom := ceil(trap.Bottom) - 1
	if bottom > r.Viewport.H-1 {
		bottom = r.Viewport.H - 1
	}

	for y := top; y <= bottom; y++ {
		sl := ScanlineFromTrapezoid(trap, float64(y))
		r.drawScanline(sl, y)
	}
}

func (r *Rasterizer) drawScanline(sl Scanline, y int) {
	vertex := sl.Vertex
	width := int(sl.Width)
	for i := 0; i <= width; i++ {
		x := int(vertex.Position[0]) + i
		if x >= 0 && x < r.Viewport.W {
			rhw := vertex.Position[2]
			z := 1.0 / rhw
			if r.Depth.Test(x, y, z) {
				attrs := vertex.Attrs.Scale(z)
				col := r.Shader.callPixelShading(attrs, r.Textures)
				r.Color.Set(x, y, col)
				r.Depth.Set(x, y, z)
			}
		}
		vertex.Position = vertex.Position.Add(sl.Step.Position)
		vertex.Attrs = vertex.Attrs.Add(sl.Step.Attrs)
	}
}

// drawAABBTriangle computes the integer AABB of the projected triangle
// and shades every pixel whose center has valid barycentric weights, per
// §4.6/§4.7's AABB back-end.
func (r *Rasterizer) drawAABBTriangle(tri [3]Vertex) {
	p0 := mathx.V2(tri[0].Position[0], tri[0].Position[1])
	p1 := mathx.V2(tri[1].Position[0], tri[1].Position[1])
	p2 := mathx.V2(tri[2].Position[0], tri[2].Position[1])

	box := mathx.TriangleAABB(p0, p1, p2).Clamp(r.Viewport.W, r.Viewport.H)
	near := r.Camera.Frustum.Near

	for y := box.MinY; y <= box.MaxY; y++ {
		for x := box.MinX; x <= box.MaxX; x++ {
			p := mathx.V2(float64(x)+0.5, float64(y)+0.5)
			bary := mathx.Barycentric(p0, p1, p2, p)
			if !bary.IsValid() {
				continue
			}

			invZ := bary.Alpha()/tri[0].Position[2] + bary.Beta()/tri[1].Position[2] + bary.Gamma()/tri[2].Position[2]
			z := 1.0 / invZ

			if z < -near && r.Depth.Test(x, y, z) {
				attrs := correctedAttributes(tri, bary, z)
				col := r.Shader.callPixelShading(attrs, r.Textures)
				r.Color.Set(x, y, col)
				r.Depth.Set(x, y, z)
			}
		}
	}
}

// correctedAttributes implements §4.6's AABB-variant formula:
// A_p = z · Σ(Aᵢ·αᵢ/zᵢ).
func correctedAttributes(tri [3]Vertex, bary mathx.Vec3, z float64) Attributes {
	w := [3]float64{
		bary.Alpha() / tri[0].Position[2],
		bary.Beta() / tri[1].Position[2],
		bary.Gamma() / tri[2].Position[2],
	}
	var out Attributes
	for i := 0; i < AttrSlots; i++ {
		out.Float[i] = (tri[0].Attrs.Float[i]*w[0] + tri[1].Attrs.Float[i]*w[1] + tri[2].Attrs.Float[i]*w[2]) * z
		out.Vec2[i] = tri[0].Attrs.Vec2[i].Scale(w[0]).Add(tri[1].Attrs.Vec2[i].Scale(w[1])).Add(tri[2].Attrs.Vec2[i].Scale(w[2])).Scale(z)
		out.Vec3[i] = tri[0].Attrs.Vec3[i].Scale(w[0]).Add(tri[1].Attrs.Vec3[i].Scale(w[1])).Add(tri[2].Attrs.Vec3[i].Scale(w[2])).Scale(z)
		out.Vec4[i] = tri[0].Attrs.Vec4[i].Scale(w[0]).Add(tri[1].Attrs.Vec4[i].Scale(w[1])).Add(tri[2].Attrs.Vec4[i].Scale(w[2])).Scale(z)
	}
	return out
}

func ceil(v float64) int {
	i := int(v)
	if float64(i) < v {
		return i + 1
	}
	return i
}

func (r *Rasterizer) String() string {
	return fmt.Sprintf("Rasterizer(%dx%d backend=%d)", r.Viewport.W, r.Viewport.H, r.Backend)
}
