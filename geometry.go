/*
Package flowers grows and animates vine-like plants: directionally
constrained chains of 4-point splines with tapering width, side branches
and flowers at the branch tips.

The root package holds the geometric primitives shared by all sub-packages:
points (type Pair) and affine transformations. Growth logic lives in package
plant, the spline primitive in package spline, a terminal renderer in package
render.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package flowers

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'flowers'
func tracer() tracing.Trace {
	return tracing.Select("flowers")
}

// === Numeric Helpers =======================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp01 clamps n to the unit interval. NaN is mapped to 0.
func Clamp01(n float64) float64 {
	if n > 1 {
		return 1
	}
	if n >= 0 {
		return n
	}
	return 0 // negative or NaN
}

// === Pair Data Type ========================================================

// Pair is a 2D-point or 2D-vector. It is a value type and may be copied freely.
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// Equal compares two pairs, tolerating differences below Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns p·a.
//
// Scaled does not round its result. Growth code relies on
// start.Shifted(dir.Scaled(l)) giving bit-identical results wherever it is
// evaluated.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// XYScaled scales the x-part by ax and the y-part by ay.
func (p Pair) XYScaled(ax, ay float64) Pair {
	return P(p.X()*ax, p.Y()*ay)
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Length is the euclidean length of vector p.
func (p Pair) Length() float64 {
	return cmplx.Abs(p.C())
}

// Unit returns p scaled to length 1. The null vector is returned unchanged.
func (p Pair) Unit() Pair {
	l := p.Length()
	if Is0(l) {
		tracer().Debugf("unit vector requested for null vector %v", p)
		return p
	}
	return p.Scaled(1 / l)
}

// Dot is the scalar product p·q.
func (p Pair) Dot(q Pair) float64 {
	return p.X()*q.X() + p.Y()*q.Y()
}

// Cross is the z-component of the cross product p×q.
func (p Pair) Cross(q Pair) float64 {
	return p.X()*q.Y() - p.Y()*q.X()
}

// Dist is the euclidean distance between p and q.
func (p Pair) Dist(q Pair) float64 {
	return (q - p).Length()
}

// Lerp interpolates linearly between p (t=0) and q (t=1).
func (p Pair) Lerp(q Pair, t float64) Pair {
	return p + (q - p).Scaled(t)
}

// === Affine Transformations ================================================

// AT is an affine transform, a 3x3 matrix flattened by rows. The last row
// is always (0,0,1), therefore only the first two rows are stored.
type AT [6]float64

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{1, 0, 0, 0, 1, 0}
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Pair) AT {
	return AT{1, 0, p.X(), 0, 1, p.Y()}
}

// Scaling transform. Scale a point by s around the origin.
func Scaling(s float64) AT {
	return AT{s, 0, 0, 0, s, 0}
}

// Rotation transform. Rotate a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	return RotationSinCos(math.Sin(theta), math.Cos(theta))
}

// RotationSinCos is a rotation given by a pre-calculated sine and cosine.
// Flowers store their rotation this way to avoid trigonometry per frame.
func RotationSinCos(sin, cos float64) AT {
	return AT{cos, -sin, 0, sin, cos, 0}
}

// Combine 2 affine transformations to a new one: n is applied after m.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	return AT{
		n[0]*m[0] + n[1]*m[3],
		n[0]*m[1] + n[1]*m[4],
		n[0]*m[2] + n[1]*m[5] + n[2],
		n[3]*m[0] + n[4]*m[3],
		n[3]*m[1] + n[4]*m[4],
		n[3]*m[2] + n[4]*m[5] + n[5],
	}
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m[0]*x+m[1]*y+m[2], m[3]*x+m[4]*y+m[5])
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|0,0,1]", m[0], m[1], m[2], m[3], m[4], m[5])
}
