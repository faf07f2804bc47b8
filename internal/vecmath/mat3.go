package vecmath

import "math"

// Mat3 is a row-major 3x3 rotation matrix.
type Mat3 struct {
	M [3][3]float64
}

func Identity() Mat3 {
	return Mat3{M: [3][3]float64{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}}
}

// AxisAngle builds a rotation of angle radians around axis using the
// Rodrigues formula. A zero axis yields the identity.
func AxisAngle(axis Vec3, angle float64) Mat3 {
	n := axis.Normalize()
	if n.IsZero() {
		return Identity()
	}
	c := math.Cos(angle)
	s := math.Sin(angle)
	t := 1 - c
	x, y, z := n.X, n.Y, n.Z
	return Mat3{M: [3][3]float64{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}}
}

func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.M[i][j] = m.M[i][0]*o.M[0][j] + m.M[i][1]*o.M[1][j] + m.M[i][2]*o.M[2][j]
		}
	}
	return r
}

func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m.M[0][0]*v.X + m.M[0][1]*v.Y + m.M[0][2]*v.Z,
		Y: m.M[1][0]*v.X + m.M[1][1]*v.Y + m.M[1][2]*v.Z,
		Z: m.M[2][0]*v.X + m.M[2][1]*v.Y + m.M[2][2]*v.Z,
	}
}

// IsIdentity reports whether m is the identity within eps.
func (m Mat3) IsIdentity(eps float64) bool {
	id := Identity()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(m.M[i][j]-id.M[i][j]) > eps {
				return false
			}
		}
	}
	return true
}
