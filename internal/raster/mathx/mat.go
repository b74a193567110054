package mathx

import "math"

// Mat44 is a 4×4 matrix stored column-major: element (col, row) lives at
// index col*4+row. Multiplication is standard matrix algebra, so
// (A.Mul(B)).MulVec4(v) == A.MulVec4(B.MulVec4(v)).
type Mat44 [16]float64

func (m Mat44) at(col, row int) float64 { return m[col*4+row] }

// NewMat44 builds a matrix from 16 values given in row-major reading
// order — the way matrix formulas are normally written down — and stores
// them in the type's column-major layout.
func NewMat44(rowMajor ...float64) Mat44 {
	var m Mat44
	for i, v := range rowMajor {
		row, col := i/4, i%4
		m[col*4+row] = v
	}
	return m
}

func Mat44Identity() Mat44 {
	return NewMat44(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Mul returns m × o.
func (m Mat44) Mul(o Mat44) Mat44 {
	var r Mat44
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.at(k, row) * o.at(col, k)
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// MulVec4 returns m × v.
func (m Mat44) MulVec4(v Vec4) Vec4 {
	var r Vec4
	for row := 0; row < 4; row++ {
		sum := 0.0
		for col := 0; col < 4; col++ {
			sum += m.at(col, row) * v[col]
		}
		r[row] = sum
	}
	return r
}

func (m Mat44) Add(o Mat44) Mat44 {
	var r Mat44
	for i := range m {
		r[i] = m[i] + o[i]
	}
	return r
}

func (m Mat44) Sub(o Mat44) Mat44 {
	var r Mat44
	for i := range m {
		r[i] = m[i] - o[i]
	}
	return r
}

func (m Mat44) Scale(s float64) Mat44 {
	var r Mat44
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

func (m Mat44) Transpose() Mat44 {
	var r Mat44
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row*4+col] = m.at(col, row)
		}
	}
	return r
}

// Translate returns the affine translation matrix by (x, y, z).
func Translate(x, y, z float64) Mat44 {
	return NewMat44(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

func TranslateVec(v Vec3) Mat44 { return Translate(v[0], v[1], v[2]) }

// Scale3 returns the affine scale matrix by (x, y, z).
func Scale3(x, y, z float64) Mat44 {
	return NewMat44(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// Rx returns the rotation matrix about the X axis (radians).
func Rx(theta float64) Mat44 {
	c, s := math.Cos(theta), math.Sin(theta)
	return NewMat44(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// Ry returns the rotation matrix about the Y axis (radians).
func Ry(theta float64) Mat44 {
	c, s := math.Cos(theta), math.Sin(theta)
	return NewMat44(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// Rz returns the rotation matrix about the Z axis (radians).
func Rz(theta float64) Mat44 {
	c, s := math.Cos(theta), math.Sin(theta)
	return NewMat44(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// CreateEulerRotateXYZ returns Rx(v.x)·Ry(v.y)·Rz(v.z).
func CreateEulerRotateXYZ(v Vec3) Mat44 {
	return Rx(v[0]).Mul(Ry(v[1])).Mul(Rz(v[2]))
}

// Perspective returns the right-handed perspective projection matrix
// mapping view space (looking down -z) to clip space [-1,1]^3:
//
//	[ s/(a·t)    0            0              0          ]
//	[   0      s/t            0              0          ]
//	[   0       0    (n+f)/(n-f)  -2nf/(f-n)             ]
//	[   0       0           -1              0            ]
//
// where t = tan(fov/2), a = aspect, s = sign(near).
func Perspective(fov, aspect, near, far float64) Mat44 {
	t := math.Tan(fov * 0.5)
	s := Sign(near)
	return NewMat44(
		s/(aspect*t), 0, 0, 0,
		0, s/t, 0, 0,
		0, 0, (near+far)/(near-far), -2*near*far/(far-near),
		0, 0, -1, 0,
	)
}

// Ortho returns the orthographic projection matrix for the given box.
func Ortho(l, r, b, t, n, f float64) Mat44 {
	return NewMat44(
		2/(r-l), 0, 0, -(l+r)/(r-l),
		0, 2/(t-b), 0, -(t+b)/(t-b),
		0, 0, 2/(n-f), -(n+f)/(n-f),
		0, 0, 0, 1,
	)
}
