package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

func vertexAt(x, y, z float64) Vertex {
	return Vertex{Position: mathx.V4(x, y, z, 1)}
}

func TestTrapezoidsFromTriangleTopShareY(t *testing.T) {
	tri := [3]Vertex{vertexAt(0, 0, -1), vertexAt(10, 0, -1), vertexAt(5, 10, -1)}
	trap1, _, ok1, ok2 := TrapezoidsFromTriangle(tri)
	require.True(t, ok1)
	assert.False(t, ok2)
	assert.Equal(t, 0.0, trap1.Top)
	assert.Equal(t, 10.0, trap1.Bottom)
}

func TestTrapezoidsFromTriangleBottomShareY(t *testing.T) {
	tri := [3]Vertex{vertexAt(5, 0, -1), vertexAt(0, 10, -1), vertexAt(10, 10, -1)}
	trap1, _, ok1, ok2 := TrapezoidsFromTriangle(tri)
	require.True(t, ok1)
	assert.False(t, ok2)
	assert.Equal(t, vertexAt(5, 0, -1), trap1.Left.V1)
	assert.Equal(t, vertexAt(5, 0, -1), trap1.Right.V1)
	assert.Equal(t, vertexAt(0, 10, -1), trap1.Left.V2)
	assert.Equal(t, vertexAt(10, 10, -1), trap1.Right.V2)
}

func TestTrapezoidsFromTriangleGeneralCaseCoversWholeHeight(t *testing.T) {
	tri := [3]Vertex{vertexAt(0, 0, -1), vertexAt(2, 5, -1), vertexAt(8, 10, -1)}
	trap1, trap2, ok1, ok2 := TrapezoidsFromTriangle(tri)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, trap1.Bottom, trap2.Top)
	assert.Equal(t, 0.0, trap1.Top)
	assert.Equal(t, 10.0, trap2.Bottom)
}

func TestTrapezoidsFromTriangleDegenerateRejected(t *testing.T) {
	tri := [3]Vertex{vertexAt(0, 0, -1), vertexAt(5, 0, -1), vertexAt(10, 0, -1)}
	_, _, ok1, ok2 := TrapezoidsFromTriangle(tri)
	assert.False(t, ok1)
	assert.False(t, ok2)
}

func TestNearPlaneClipOneVertexBehindProducesTwoTriangles(t *testing.T) {
	near := 1.0
	v0 := vertexAt(0, 0, -0.5) // behind near plane (z=-1)
	v1 := vertexAt(-2, -2, -3)
	v2 := vertexAt(2, -2, -3)

	tri1, tri2, ok2 := NearPlaneClip([3]Vertex{v0, v1, v2}, near)
	require.True(t, ok2)
	for _, v := range append(tri1[:], tri2[:]...) {
		assert.LessOrEqual(t, v.Position[2], -near+1e-9)
	}
}

func TestNearPlaneClipTwoVerticesBehindProducesOneTriangle(t *testing.T) {
	near := 1.0
	v0 := vertexAt(0, 0, -0.5)
	v1 := vertexAt(-2, -2, -0.2)
	v2 := vertexAt(2, -2, -3)

	tri1, _, ok2 := NearPlaneClip([3]Vertex{v0, v1, v2}, near)
	assert.False(t, ok2)
	for _, v := range tri1 {
		assert.LessOrEqual(t, v.Position[2], -near+1e-9)
	}
}

func TestScanlineFromTrapezoidInterpolatesWidthAtMidpoint(t *testing.T) {
	trap := Trapezoid{
		Top: 0, Bottom: 10,
		Left:  Edge{vertexAt(0, 0, -1), vertexAt(0, 10, -1)},
		Right: Edge{vertexAt(10, 0, -1), vertexAt(20, 10, -1)},
	}
	sl := ScanlineFromTrapezoid(trap, 5)
	assert.InDelta(t, 0, sl.Vertex.Position[0], 1e-9) // left edge is vertical at x=0
	assert.InDelta(t, 15, sl.Width+sl.Vertex.Position[0], 1e-9) // right edge at x=15 here
}
