package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBarycentricPartitionOfUnity(t *testing.T) {
	v1, v2, v3 := V2(0, 0), V2(4, 0), V2(0, 4)
	p := V2(1, 1)
	b := Barycentric(v1, v2, v3, p)
	assert.True(t, b.IsValid())
	assert.InDelta(t, 1.0, b[0]+b[1]+b[2], BarycentricEpsilon)
}

func TestBarycentricAtVertices(t *testing.T) {
	v1, v2, v3 := V2(0, 0), V2(4, 0), V2(0, 4)

	b1 := Barycentric(v1, v2, v3, v1)
	assert.InDelta(t, 1.0, b1[0], 1e-9)
	assert.InDelta(t, 0.0, b1[1], 1e-9)
	assert.InDelta(t, 0.0, b1[2], 1e-9)

	b2 := Barycentric(v1, v2, v3, v2)
	assert.InDelta(t, 1.0, b2[1], 1e-9)

	b3 := Barycentric(v1, v2, v3, v3)
	assert.InDelta(t, 1.0, b3[2], 1e-9)
}

func TestBarycentricOutsideTriangleInvalid(t *testing.T) {
	v1, v2, v3 := V2(0, 0), V2(4, 0), V2(0, 4)
	b := Barycentric(v1, v2, v3, V2(10, 10))
	assert.False(t, b.IsValid())
}

func TestBarycentricDegenerateTriangle(t *testing.T) {
	v1, v2, v3 := V2(0, 0), V2(2, 0), V2(4, 0)
	b := Barycentric(v1, v2, v3, V2(1, 0))
	assert.False(t, b.IsValid())
}

func TestTriangleAABB(t *testing.T) {
	box := TriangleAABB(V2(1, 5), V2(8, 2), V2(3, -1))
	assert.Equal(t, 1, box.MinX)
	assert.Equal(t, -1, box.MinY)
	assert.Equal(t, 8, box.MaxX)
	assert.Equal(t, 5, box.MaxY)
}

func TestAABBClamp(t *testing.T) {
	box := AABB2{MinX: -5, MinY: -5, MaxX: 100, MaxY: 100}
	clamped := box.Clamp(10, 10)
	assert.Equal(t, AABB2{MinX: 0, MinY: 0, MaxX: 9, MaxY: 9}, clamped)
}
