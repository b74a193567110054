package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

func TestVertexRhwInitScalesAttributesAndPosition(t *testing.T) {
	var attrs Attributes
	attrs.Float[0] = 4
	attrs.Vec3[0] = mathx.V3(2, 4, 6)

	v := Vertex{Position: mathx.V4(1, 1, -2, 1), Attrs: attrs}
	got := VertexRhwInit(v)

	assert.InDelta(t, -0.5, got.Position[2], 1e-12)
	assert.InDelta(t, -2, got.Attrs.Float[0], 1e-12)
	assert.InDelta(t, -1, got.Attrs.Vec3[0][0], 1e-12)
}

func TestLerpAttributesEndpoints(t *testing.T) {
	var a, b Attributes
	a.Float[1] = 1
	b.Float[1] = 5

	assert.Equal(t, a, LerpAttributes(a, b, 0))
	assert.Equal(t, b, LerpAttributes(a, b, 1))
	mid := LerpAttributes(a, b, 0.5)
	assert.InDelta(t, 3, mid.Float[1], 1e-12)
}

func TestAttributesAddSubRoundTrip(t *testing.T) {
	var a, b Attributes
	a.Vec2[2] = mathx.V2(1, 2)
	b.Vec2[2] = mathx.V2(3, 4)

	sum := a.Add(b)
	back := sum.Sub(b)
	assert.Equal(t, a.Vec2[2], back.Vec2[2])
}

func TestShaderDefaultsApplyWhenStagesMissing(t *testing.T) {
	s := Shader{Uniforms: NewUniforms()}
	v := Vertex{Position: mathx.V4(1, 2, 3, 1)}

	got := s.callVertexChanging(v, nil)
	assert.Equal(t, v, got)

	col := s.callPixelShading(Attributes{}, nil)
	assert.Equal(t, Color{1, 1, 1, 1}, col)
}
