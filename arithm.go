/*
Package epicycles draws closed planar curves with circles.

A sampled closed path is decomposed into a finite complex Fourier series.
Every term of the series is a rotating vector, an epicycle, and the sum of
all epicycles at time t reproduces (approximately) the path point at t.
Sub-packages deal with loading paths (shape), the decomposition and its
evaluation (fourier), the trail of traced points (trail), drawing (render,
termview) and the animation loop (animator).

This package implements the numeric value type all of them share: points in
the complex plane, in single precision, together with affine transforms.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package epicycles

import (
	"fmt"
	"math"
)

// === Numeric Data Type =====================================================

// Epsilon : numbers differing by no more than ε are considered equal
const Epsilon float32 = 0.005

// Pi2 is a full turn in radians.
const Pi2 float64 = 2 * math.Pi

// Is0 is a predicate: is n = 0 ?
func Is0(n float32) bool {
	return Equal(n, 0)
}

// Equal is a predicate: is |a − b| ≤ ε ?
func Equal(a, b float32) bool {
	d := a - b
	return d <= Epsilon && -d <= Epsilon
}

// === Pair Data Type ========================================================

// Pair is a point in the complex plane. Real and imaginary part are single
// precision floats. Addition, subtraction and complex multiplication are the
// built-in operators of complex64.
type Pair complex64

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// String renders p in the notation a + bi.
func (p Pair) String() string {
	if p.Y() >= 0 {
		return fmt.Sprintf("%g + %gi", p.X(), p.Y())
	}
	return fmt.Sprintf("%g - %gi", p.X(), -p.Y())
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float32) Pair {
	return Pair(complex(x, y))
}

// X is the real part of a pair.
func (p Pair) X() float32 {
	return real(p)
}

// Y is the imaginary part of a pair.
func (p Pair) Y() float32 {
	return imag(p)
}

// Abs is the magnitude √(x²+y²) of a pair.
func (p Pair) Abs() float32 {
	return float32(math.Hypot(float64(real(p)), float64(imag(p))))
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs component-wise, with tolerance ε.
func (p Pair) Equal(p2 Pair) bool {
	return Equal(p.X(), p2.X()) && Equal(p.Y(), p2.Y())
}

// Scaled returns a new pair scaled by factor a.
func (p Pair) Scaled(a float32) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Rot is the rotation generator e^{iθ} = (cos θ, sin θ).
// θ is given in radians and is not reduced, beyond what the trig functions do.
func Rot(theta float64) Pair {
	s, c := math.Sincos(theta)
	return P(float32(c), float32(s))
}

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming vectors.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(dx, dy float64) AT {
	m := Identity()
	m.set(0, 2, dx)
	m.set(1, 2, dy)
	return m
}

// Scaling transform. Scale x by sx and y by sy. A negative factor mirrors
// the respective axis.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformation to a new one, applying m first and n
// second. Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

// Apply transforms the point (x,y) in double precision.
func (m AT) Apply(x, y float64) (float64, float64) {
	v := []float64{x, y, 1.0}
	return dotProd(m.row(0), v), dotProd(m.row(1), v)
}
