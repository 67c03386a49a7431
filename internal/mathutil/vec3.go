package mathutil

import "math"

// Vec3 is a point or direction in model space. Copies never alias.
type Vec3 [3]float64

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// ScaleXY multiplies x and y by s and keeps z.
func (v Vec3) ScaleXY(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2]}
}

func (a Vec3) Dot(b Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func ApproxEqual(a, b Vec3, eps float64) bool {
	for k := 0; k < 3; k++ {
		if math.Abs(a[k]-b[k]) > eps {
			return false
		}
	}
	return true
}
