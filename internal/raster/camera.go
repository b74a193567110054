package raster

import (
	"math"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

// Frustum holds the perspective parameters and derived projection matrix
// for a Camera, plus the containment test used for frustum culling.
type Frustum struct {
	Near, Far, Aspect, Fov float64
	Mat                    mathx.Mat44
}

// NewFrustum builds a Frustum and its perspective matrix per
// mathx.Perspective. Requires 0 < near < far and fov in (0, pi).
func NewFrustum(near, far, aspect, fov float64) Frustum {
	return Frustum{
		Near: near, Far: far, Aspect: aspect, Fov: fov,
		Mat: mathx.Perspective(fov, aspect, near, far),
	}
}

// Contain reports whether a view-space point lies inside all six frustum
// half-spaces (left, right, top, bottom, near, far), grounded on
// original_source's Frustum::Contain.
func (f Frustum) Contain(pt mathx.Vec3) bool {
	halfH := f.Near * math.Tan(f.Fov*0.5) / f.Aspect
	cosHalf := math.Cos(f.Fov / 2)
	sinHalf := math.Sin(f.Fov / 2)

	outside := mathx.V3(cosHalf, 0, sinHalf).Dot(pt) >= 0 || // right
		mathx.V3(-cosHalf, 0, sinHalf).Dot(pt) >= 0 || // left
		mathx.V3(0, f.Near, halfH).Dot(pt) >= 0 || // top
		mathx.V3(0, -f.Near, halfH).Dot(pt) >= 0 || // bottom
		pt[2] >= -f.Near || // near
		pt[2] <= -f.Far // far

	return !outside
}

// Camera owns a position, an Euler rotation, and a Frustum, and derives
// its view matrix and view direction whenever either mutates.
type Camera struct {
	position mathx.Vec3
	rotation mathx.Vec3

	Frustum  Frustum
	ViewDir  mathx.Vec3
	ViewMat  mathx.Mat44
}

// NewCamera builds a camera at the origin, looking down -z, with the
// given perspective parameters.
func NewCamera(near, far, aspect, fov float64) *Camera {
	c := &Camera{
		Frustum: NewFrustum(near, far, aspect, fov),
	}
	c.recalculateViewMat()
	return c
}

func (c *Camera) recalculateViewMat() {
	rot := c.rotation.Neg()
	pos := c.position.Neg()
	rotMat := mathx.CreateEulerRotateXYZ(rot)
	c.ViewMat = rotMat.Mul(mathx.TranslateVec(pos))
	c.ViewDir = rotMat.MulVec4(mathx.V4(0, 0, -1, 1)).TruncatedToVec3()
}

// Position returns the camera's world-space eye position.
func (c *Camera) Position() mathx.Vec3 { return c.position }

// Rotation returns the camera's Euler rotation.
func (c *Camera) Rotation() mathx.Vec3 { return c.rotation }

// MoveTo sets the camera position and recomputes the view matrix.
func (c *Camera) MoveTo(position mathx.Vec3) {
	c.position = position
	c.recalculateViewMat()
}

// MoveOffset translates the camera by offset and recomputes the view
// matrix.
func (c *Camera) MoveOffset(offset mathx.Vec3) {
	c.position = c.position.Add(offset)
	c.recalculateViewMat()
}

// SetRotation sets the camera's Euler rotation and recomputes the view
// matrix.
func (c *Camera) SetRotation(rotation mathx.Vec3) {
	c.rotation = rotation
	c.recalculateViewMat()
}

// LookAt points the camera at target and derives an approximate Euler
// rotation from the resulting basis via the original source's acos
// back-derivation. Ported from Camera::SetLookAt for demo convenience;
// it is an approximation, not a general quaternion-free look-at solver.
func (c *Camera) LookAt(target mathx.Vec3) mathx.Mat44 {
	viewDir := c.position.Sub(target).Normalize()
	back := viewDir.Neg()
	up := mathx.Vec3YAxis
	right := up.Cross(back).Normalize()
	realUp := back.Cross(right).Normalize()

	c.ViewDir = viewDir
	c.ViewMat = mathx.NewMat44(
		right[0], right[1], right[2], -c.position.Dot(right),
		realUp[0], realUp[1], realUp[2], -c.position.Dot(realUp),
		back[0], back[1], back[2], -c.position.Dot(back),
		0, 0, 0, 1,
	)

	x := math.Acos(mathx.Vec3YAxis.Dot(mathx.V3(0, viewDir[1], viewDir[2])))
	y := math.Acos(mathx.Vec3ZAxis.Dot(mathx.V3(viewDir[0], 0, viewDir[2])))
	z := math.Acos(mathx.Vec3XAxis.Dot(mathx.V3(viewDir[0], viewDir[1], 0)))
	c.rotation = mathx.V3(x, y, z)

	return c.ViewMat
}
