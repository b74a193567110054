package mathx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func approxVec4(t *testing.T, got, want Vec4, eps float64) {
	t.Helper()
	for i := range got {
		assert.InDeltaf(t, want[i], got[i], eps, "component %d", i)
	}
}

func TestMat44IdentityPreservesVector(t *testing.T) {
	v := V4(1.5, -2.25, 3.0, 1)
	got := Mat44Identity().MulVec4(v)
	approxVec4(t, got, v, 1e-12)
}

func TestMat44MulAssociativity(t *testing.T) {
	a := Translate(1, 2, 3)
	b := Rx(0.7).Mul(Ry(0.3))
	v := V4(2, -1, 4, 1)

	lhs := a.Mul(b).MulVec4(v)
	rhs := a.MulVec4(b.MulVec4(v))

	approxVec4(t, lhs, rhs, 1e-9)
}

func TestMat44TransposeRoundTrip(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Rx(0.4))
	got := m.Transpose().Transpose()
	for i := range m {
		assert.InDelta(t, m[i], got[i], 1e-12)
	}
}

func TestCrossAntiCommutativity(t *testing.T) {
	a := V3(1, 0, 0)
	b := V3(0, 1, 0)
	c1 := a.Cross(b)
	c2 := b.Cross(a)
	assert.Equal(t, c1, c2.Neg())
}

func TestPerspectiveColumnMajorConsistency(t *testing.T) {
	p := Perspective(Radians(90), 1.0, 0.1, 100)
	v := V4(0, 0, -1, 1)
	got := p.MulVec4(v)
	// w after projection carries -z_view (the negated view-space z), used
	// downstream for the perspective divide; for a point looking down -z
	// this must be positive.
	assert.Greater(t, got[3], 0.0)
}
