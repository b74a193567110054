package raster

import "github.com/drsaluml/gorasterizer/internal/raster/mathx"

// AttrSlots is the fixed width of each Attributes array. A compile-time
// bound avoids the per-pixel hash-map lookups a sparse key→value container
// would need on the interpolation hot path.
const AttrSlots = 4

// Attributes is a fixed-width bundle of varying per-vertex data, one array
// per value kind, indexed by a small integer key the caller assigns
// meaning to (e.g. slot 0 = color, slot 1 = texcoord).
type Attributes struct {
	Float [AttrSlots]float64
	Vec2  [AttrSlots]mathx.Vec2
	Vec3  [AttrSlots]mathx.Vec3
	Vec4  [AttrSlots]mathx.Vec4
}

// Scale multiplies every slot by s. Used to apply the rhw perspective-setup
// trick (§4.6) to a vertex's attributes before scanline interpolation.
func (a Attributes) Scale(s float64) Attributes {
	var r Attributes
	for i := 0; i < AttrSlots; i++ {
		r.Float[i] = a.Float[i] * s
		r.Vec2[i] = a.Vec2[i].Scale(s)
		r.Vec3[i] = a.Vec3[i].Scale(s)
		r.Vec4[i] = a.Vec4[i].Scale(s)
	}
	return r
}

// Add returns the element-wise sum of a and b.
func (a Attributes) Add(b Attributes) Attributes {
	var r Attributes
	for i := 0; i < AttrSlots; i++ {
		r.Float[i] = a.Float[i] + b.Float[i]
		r.Vec2[i] = a.Vec2[i].Add(b.Vec2[i])
		r.Vec3[i] = a.Vec3[i].Add(b.Vec3[i])
		r.Vec4[i] = a.Vec4[i].Add(b.Vec4[i])
	}
	return r
}

// Sub returns the element-wise difference a - b.
func (a Attributes) Sub(b Attributes) Attributes {
	var r Attributes
	for i := 0; i < AttrSlots; i++ {
		r.Float[i] = a.Float[i] - b.Float[i]
		r.Vec2[i] = a.Vec2[i].Sub(b.Vec2[i])
		r.Vec3[i] = a.Vec3[i].Sub(b.Vec3[i])
		r.Vec4[i] = a.Vec4[i].Sub(b.Vec4[i])
	}
	return r
}

// LerpAttributes interpolates every slot of a and b by t (t=0 -> a, t=1 -> b).
func LerpAttributes(a, b Attributes, t float64) Attributes {
	var r Attributes
	for i := 0; i < AttrSlots; i++ {
		r.Float[i] = mathx.Lerp(a.Float[i], b.Float[i], t)
		r.Vec2[i] = mathx.LerpVec2(a.Vec2[i], b.Vec2[i], t)
		r.Vec3[i] = mathx.LerpVec3(a.Vec3[i], b.Vec3[i], t)
		r.Vec4[i] = mathx.LerpVec4(a.Vec4[i], b.Vec4[i], t)
	}
	return r
}

// Vertex is a position in homogeneous clip space plus its varying
// attributes. Position.Z doubles as the rhw (1/z) slot once
// VertexRhwInit has run, matching the original pipeline's in-place reuse.
type Vertex struct {
	Position mathx.Vec4
	Attrs    Attributes
}

// NewVertex builds a vertex from a position (w implicitly 1) and
// attributes.
func NewVertex(pos mathx.Vec3, attrs Attributes) Vertex {
	return Vertex{Position: pos.ToVec4(1), Attrs: attrs}
}

// LerpVertex interpolates position and attributes together.
func LerpVertex(a, b Vertex, t float64) Vertex {
	return Vertex{
		Position: mathx.LerpVec4(a.Position, b.Position, t),
		Attrs:    LerpAttributes(a.Attrs, b.Attrs, t),
	}
}

// VertexRhwInit replaces v.Position.Z with rhw = 1/z and scales every
// attribute slot by rhw, the setup step for perspective-correct
// interpolation (§4.6): interpolate attr*rhw and rhw linearly in screen
// space, then divide back out at the pixel.
func VertexRhwInit(v Vertex) Vertex {
	rhw := 1.0 / v.Position[2]
	v.Position[2] = rhw
	v.Attrs = v.Attrs.Scale(rhw)
	return v
}

// UniformKey is a small integer key into a Uniforms bundle; meaning is
// user-defined per draw call.
type UniformKey int

// Uniforms holds per-draw-call constants visible to both shader stages.
type Uniforms struct {
	Ints     map[UniformKey]int
	Floats   map[UniformKey]float64
	Vec2s    map[UniformKey]mathx.Vec2
	Vec3s    map[UniformKey]mathx.Vec3
	Vec4s    map[UniformKey]mathx.Vec4
	Mats     map[UniformKey]mathx.Mat44
	Textures map[UniformKey]TextureID
}

// NewUniforms returns an empty, ready-to-use Uniforms bundle.
func NewUniforms() Uniforms {
	return Uniforms{
		Ints:     make(map[UniformKey]int),
		Floats:   make(map[UniformKey]float64),
		Vec2s:    make(map[UniformKey]mathx.Vec2),
		Vec3s:    make(map[UniformKey]mathx.Vec3),
		Vec4s:    make(map[UniformKey]mathx.Vec4),
		Mats:     make(map[UniformKey]mathx.Mat44),
		Textures: make(map[UniformKey]TextureID),
	}
}

// Color is an RGBA color in [0,1] per channel, the pixel stage's return
// type.
type Color = mathx.Vec4

// VertexStage rewrites a vertex's position and/or attributes; it may
// consult uniforms and the texture store (e.g. for vertex displacement).
type VertexStage func(v Vertex, u Uniforms, tex *TextureStore) Vertex

// PixelStage computes the final color for one fragment from its
// perspective-corrected attributes.
type PixelStage func(a Attributes, u Uniforms, tex *TextureStore) Color

// Shader bundles the two programmable stages with the uniforms bound to
// the current draw call. A missing stage behaves as identity (vertex) or
// opaque white (pixel) rather than failing the draw — the core never
// panics on an under-specified shader.
type Shader struct {
	VertexChanging VertexStage
	PixelShading   PixelStage
	Uniforms       Uniforms
}

// DefaultVertexStage returns the vertex unchanged.
func DefaultVertexStage(v Vertex, _ Uniforms, _ *TextureStore) Vertex { return v }

// DefaultPixelStage returns opaque white.
func DefaultPixelStage(_ Attributes, _ Uniforms, _ *TextureStore) Color {
	return Color{1, 1, 1, 1}
}

// NewShader returns a Shader with identity/white default stages and an
// empty uniform bundle.
func NewShader() Shader {
	return Shader{
		VertexChanging: DefaultVertexStage,
		PixelShading:   DefaultPixelStage,
		Uniforms:       NewUniforms(),
	}
}

func (s Shader) callVertexChanging(v Vertex, tex *TextureStore) Vertex {
	if s.VertexChanging == nil {
		return DefaultVertexStage(v, s.Uniforms, tex)
	}
	return s.VertexChanging(v, s.Uniforms, tex)
}

func (s Shader) callPixelShading(a Attributes, tex *TextureStore) Color {
	if s.PixelShading == nil {
		return DefaultPixelStage(a, s.Uniforms, tex)
	}
	return s.PixelShading(a, s.Uniforms, tex)
}
