package mathutil

import "math"

// RotY returns the right-handed rotation by a radians about the Y axis.
// Positive a carries +X toward -Z.
func RotY(a float64) Mat3 {
	c, s := math.Cos(a), math.Sin(a)
	return Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
