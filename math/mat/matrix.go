// Package mat provides 4x4 affine transforms for the scene graph. The
// field layout (Xx, Xy, Xz, Xw, Yx, ... Wx, Wy, Wz, Ww) and row-major,
// point-on-the-left convention are carried over from gazed-vu's
// math/lin.M4, whose doc comment spells out the same axis-row layout used
// here:
//
//	x' = x*Xx + y*Yx + z*Zx + Tx
//	y' = x*Xy + y*Yy + z*Zy + Ty
//	z' = x*Xz + y*Yz + z*Zz + Tz
package mat

import (
	"fmt"
	"math"

	"github.com/galvanized/raymarch/math/vec"
)

// Mat4 is a row-major 4x4 matrix; Wx, Wy, Wz hold the translation and Ww is
// normally 1.
type Mat4 struct {
	Xx, Xy, Xz, Xw float64
	Yx, Yy, Yz, Yw float64
	Zx, Zy, Zz, Zw float64
	Wx, Wy, Wz, Ww float64
}

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		Xx: 1, Yy: 1, Zz: 1, Ww: 1,
	}
}

// Mul returns m*o applied so that a point transformed by the result is
// equivalent to transforming by m first, then by o: (p*m)*o.
func (m Mat4) Mul(o Mat4) Mat4 {
	return Mat4{
		Xx: m.Xx*o.Xx + m.Xy*o.Yx + m.Xz*o.Zx + m.Xw*o.Wx,
		Xy: m.Xx*o.Xy + m.Xy*o.Yy + m.Xz*o.Zy + m.Xw*o.Wy,
		Xz: m.Xx*o.Xz + m.Xy*o.Yz + m.Xz*o.Zz + m.Xw*o.Wz,
		Xw: m.Xx*o.Xw + m.Xy*o.Yw + m.Xz*o.Zw + m.Xw*o.Ww,

		Yx: m.Yx*o.Xx + m.Yy*o.Yx + m.Yz*o.Zx + m.Yw*o.Wx,
		Yy: m.Yx*o.Xy + m.Yy*o.Yy + m.Yz*o.Zy + m.Yw*o.Wy,
		Yz: m.Yx*o.Xz + m.Yy*o.Yz + m.Yz*o.Zz + m.Yw*o.Wz,
		Yw: m.Yx*o.Xw + m.Yy*o.Yw + m.Yz*o.Zw + m.Yw*o.Ww,

		Zx: m.Zx*o.Xx + m.Zy*o.Yx + m.Zz*o.Zx + m.Zw*o.Wx,
		Zy: m.Zx*o.Xy + m.Zy*o.Yy + m.Zz*o.Zy + m.Zw*o.Wy,
		Zz: m.Zx*o.Xz + m.Zy*o.Yz + m.Zz*o.Zz + m.Zw*o.Wz,
		Zw: m.Zx*o.Xw + m.Zy*o.Yw + m.Zz*o.Zw + m.Zw*o.Ww,

		Wx: m.Wx*o.Xx + m.Wy*o.Yx + m.Wz*o.Zx + m.Ww*o.Wx,
		Wy: m.Wx*o.Xy + m.Wy*o.Yy + m.Wz*o.Zy + m.Ww*o.Wy,
		Wz: m.Wx*o.Xz + m.Wy*o.Yz + m.Wz*o.Zz + m.Ww*o.Wz,
		Ww: m.Wx*o.Xw + m.Wy*o.Yw + m.Wz*o.Zw + m.Ww*o.Ww,
	}
}

// MulPoint applies m to a point (implicit w=1), including translation.
func (m Mat4) MulPoint(p vec.Point3) vec.Point3 {
	return vec.P3(
		p.X*m.Xx+p.Y*m.Yx+p.Z*m.Zx+m.Wx,
		p.X*m.Xy+p.Y*m.Yy+p.Z*m.Zy+m.Wy,
		p.X*m.Xz+p.Y*m.Yz+p.Z*m.Zz+m.Wz,
	)
}

// MulVec applies m to a vector (implicit w=0), excluding translation.
func (m Mat4) MulVec(v vec.Vec3) vec.Vec3 {
	return vec.V3(
		v.X*m.Xx+v.Y*m.Yx+v.Z*m.Zx,
		v.X*m.Xy+v.Y*m.Yy+v.Z*m.Zy,
		v.X*m.Xz+v.Y*m.Yz+v.Z*m.Zz,
	)
}

// array returns m's 16 elements in row-major order for the Gauss-Jordan
// inverse below.
func (m Mat4) array() [16]float64 {
	return [16]float64{
		m.Xx, m.Xy, m.Xz, m.Xw,
		m.Yx, m.Yy, m.Yz, m.Yw,
		m.Zx, m.Zy, m.Zz, m.Zw,
		m.Wx, m.Wy, m.Wz, m.Ww,
	}
}

func fromArray(a [16]float64) Mat4 {
	return Mat4{
		Xx: a[0], Xy: a[1], Xz: a[2], Xw: a[3],
		Yx: a[4], Yy: a[5], Yz: a[6], Yw: a[7],
		Zx: a[8], Zy: a[9], Zz: a[10], Zw: a[11],
		Wx: a[12], Wy: a[13], Wz: a[14], Ww: a[15],
	}
}

// NonInvertibleTransform is returned when a matrix's determinant is too
// close to zero to invert.
type NonInvertibleTransform struct{}

func (NonInvertibleTransform) Error() string { return "mat: matrix is not invertible" }

// Inverse computes the general 4x4 inverse via Gauss-Jordan elimination
// with partial pivoting. gazed-vu's M4 never needed a general inverse (it
// only special-cases a perspective-projection inverse); this is new code
// required by the scene graph's transform⁻¹ point transport, written in
// the same row-major, explicitly-indexed style as the rest of this file.
func (m Mat4) Inverse() (Mat4, error) {
	a := m.array()

	var aug [4][8]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			aug[r][c] = a[r*4+c]
		}
		aug[r][4+r] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		best := math.Abs(aug[col][col])
		for r := col + 1; r < 4; r++ {
			if v := math.Abs(aug[r][col]); v > best {
				best, pivot = v, r
			}
		}
		if best < 1e-12 {
			return Mat4{}, NonInvertibleTransform{}
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pv := aug[col][col]
		for c := 0; c < 8; c++ {
			aug[col][c] /= pv
		}
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			f := aug[r][col]
			if f == 0 {
				continue
			}
			for c := 0; c < 8; c++ {
				aug[r][c] -= f * aug[col][c]
			}
		}
	}

	var out [16]float64
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = aug[r][4+c]
		}
	}
	return fromArray(out), nil
}

func (m Mat4) String() string {
	return fmt.Sprintf("[%.4f %.4f %.4f %.4f; %.4f %.4f %.4f %.4f; %.4f %.4f %.4f %.4f; %.4f %.4f %.4f %.4f]",
		m.Xx, m.Xy, m.Xz, m.Xw, m.Yx, m.Yy, m.Yz, m.Yw,
		m.Zx, m.Zy, m.Zz, m.Zw, m.Wx, m.Wy, m.Wz, m.Ww)
}

// Translation returns the translation-only matrix for v.
func Translation(v vec.Vec3) Mat4 {
	m := Identity()
	m.Wx, m.Wy, m.Wz = v.X, v.Y, v.Z
	return m
}

// UniformScale returns the scale matrix for a single factor s applied to
// all three axes.
func UniformScale(s float64) Mat4 {
	m := Identity()
	m.Xx, m.Yy, m.Zz = s, s, s
	return m
}

// NonUniformScale returns the scale matrix for independent per-axis
// factors. Non-uniform scale makes the resulting SDF distances only
// approximate; callers are responsible for surfacing the warning, not
// this constructor.
func NonUniformScale(sx, sy, sz float64) Mat4 {
	m := Identity()
	m.Xx, m.Yy, m.Zz = sx, sy, sz
	return m
}

// AxisAngle returns the rotation matrix for rotating by angle radians
// around axis (which need not be pre-normalized). Fails with
// vec.DegenerateVector if axis is too close to zero.
func AxisAngle(axis vec.Vec3, angle float64) (Mat4, error) {
	u, err := axis.Unit()
	if err != nil {
		return Mat4{}, err
	}
	s, c := math.Sin(angle), math.Cos(angle)
	t := 1 - c
	x, y, z := u.X, u.Y, u.Z

	m := Identity()
	m.Xx, m.Xy, m.Xz = t*x*x+c, t*x*y+s*z, t*x*z-s*y
	m.Yx, m.Yy, m.Yz = t*x*y-s*z, t*y*y+c, t*y*z+s*x
	m.Zx, m.Zy, m.Zz = t*x*z+s*y, t*y*z-s*x, t*z*z+c
	return m, nil
}
