// Package mathx provides the fixed-dimension vector and matrix primitives
// the rasterizer core is built on: value types, stack-allocated, no heap
// traffic on the hot path.
package mathx

import "math"

// Vec2 is a 2-component vector.
type Vec2 [2]float64

func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (a Vec2) Add(b Vec2) Vec2 { return Vec2{a[0] + b[0], a[1] + b[1]} }
func (a Vec2) Sub(b Vec2) Vec2 { return Vec2{a[0] - b[0], a[1] - b[1]} }
func (a Vec2) Mul(b Vec2) Vec2 { return Vec2{a[0] * b[0], a[1] * b[1]} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v[0] * s, v[1] * s} }
func (v Vec2) Neg() Vec2            { return Vec2{-v[0], -v[1]} }
func (a Vec2) Dot(b Vec2) float64   { return a[0]*b[0] + a[1]*b[1] }

// Cross of two Vec2 is the scalar z-component of their 3D cross product.
func (a Vec2) Cross(b Vec2) float64 { return a[0]*b[1] - a[1]*b[0] }

func (v Vec2) Len() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }

// Vec3 is a 3-component vector; also used to hold barycentric weights
// (alpha, beta, gamma) in the AABB rasterizer back-end.
type Vec3 [3]float64

func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

var (
	Vec3Zero   = Vec3{0, 0, 0}
	Vec3One    = Vec3{1, 1, 1}
	Vec3XAxis  = Vec3{1, 0, 0}
	Vec3YAxis  = Vec3{0, 1, 0}
	Vec3ZAxis  = Vec3{0, 0, 1}
)

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }
func (a Vec3) Mul(b Vec3) Vec3 { return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec3) Neg() Vec3            { return Vec3{-v[0], -v[1], -v[2]} }
func (a Vec3) Dot(b Vec3) float64   { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

// Barycentric components, valid only when v holds (alpha, beta, gamma).
func (v Vec3) Alpha() float64 { return v[0] }
func (v Vec3) Beta() float64  { return v[1] }
func (v Vec3) Gamma() float64 { return v[2] }

func (v Vec3) ToVec4(w float64) Vec4 { return Vec4{v[0], v[1], v[2], w} }

// Vec4 is a 4-component vector, the native type for positions in
// homogeneous clip space.
type Vec4 [4]float64

func V4(x, y, z, w float64) Vec4 { return Vec4{x, y, z, w} }

var (
	Vec4Zero = Vec4{0, 0, 0, 0}
	Vec4One  = Vec4{1, 1, 1, 1}
)

func (a Vec4) Add(b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}
func (a Vec4) Sub(b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}
func (v Vec4) Neg() Vec4 { return Vec4{-v[0], -v[1], -v[2], -v[3]} }
func (a Vec4) Dot(b Vec4) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

func (v Vec4) X() float64 { return v[0] }
func (v Vec4) Y() float64 { return v[1] }
func (v Vec4) Z() float64 { return v[2] }
func (v Vec4) W() float64 { return v[3] }

// TruncatedToVec3 drops the w component.
func (v Vec4) TruncatedToVec3() Vec3 { return Vec3{v[0], v[1], v[2]} }

// Lerp interpolates between a and b; t=0 yields a, t=1 yields b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

func LerpVec2(a, b Vec2, t float64) Vec2 { return a.Add(b.Sub(a).Scale(t)) }
func LerpVec3(a, b Vec3, t float64) Vec3 { return a.Add(b.Sub(a).Scale(t)) }
func LerpVec4(a, b Vec4, t float64) Vec4 { return a.Add(b.Sub(a).Scale(t)) }

// Clamp restricts value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Sign returns -1, 0, or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func Radians(degrees float64) float64 { return degrees * math.Pi / 180 }
func Degrees(radians float64) float64 { return radians * 180 / math.Pi }
