package mathx

// BarycentricEpsilon is the tolerance used by IsValid to accept points
// that fall just outside a triangle due to floating-point rounding.
const BarycentricEpsilon = 1e-6

// Barycentric computes the barycentric weights (alpha, beta, gamma) of p
// with respect to triangle (v1, v2, v3) using the ratio-of-signed-areas
// formula. A degenerate (zero-area) triangle yields the sentinel
// (-1, -1, -1), which IsValid rejects.
func Barycentric(v1, v2, v3, p Vec2) Vec3 {
	c1 := V3(v1[0]-v2[0], v1[0]-v3[0], p[0]-v1[0])
	c2 := V3(v1[1]-v2[1], v1[1]-v3[1], p[1]-v1[1])
	r := c1.Cross(c2)
	if r[2] == 0 {
		return V3(-1, -1, -1)
	}
	return V3(
		1-r[0]/r[2]-r[1]/r[2],
		r[0]/r[2],
		r[1]/r[2],
	)
}

// IsValid reports whether b holds a usable set of barycentric weights:
// all non-negative and summing to at most 1+epsilon.
func (b Vec3) IsValid() bool {
	if b[0] < -BarycentricEpsilon || b[1] < -BarycentricEpsilon || b[2] < -BarycentricEpsilon {
		return false
	}
	return b[0]+b[1]+b[2] <= 1+BarycentricEpsilon
}

// AABB2 is an axis-aligned bounding box in 2D pixel space.
type AABB2 struct {
	MinX, MinY, MaxX, MaxY int
}

// TriangleAABB returns the integer pixel-space AABB containing v1, v2, v3.
func TriangleAABB(v1, v2, v3 Vec2) AABB2 {
	minX, maxX := minmax3(v1[0], v2[0], v3[0])
	minY, maxY := minmax3(v1[1], v2[1], v3[1])
	return AABB2{
		MinX: int(minX), MinY: int(minY),
		MaxX: int(maxX), MaxY: int(maxY),
	}
}

// Clamp restricts the AABB to the inclusive pixel range [0,w-1]×[0,h-1].
func (b AABB2) Clamp(w, h int) AABB2 {
	if b.MinX < 0 {
		b.MinX = 0
	}
	if b.MinY < 0 {
		b.MinY = 0
	}
	if b.MaxX > w-1 {
		b.MaxX = w - 1
	}
	if b.MaxY > h-1 {
		b.MaxY = h - 1
	}
	return b
}

func minmax3(a, b, c float64) (float64, float64) {
	min, max := a, a
	for _, v := range [2]float64{b, c} {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
