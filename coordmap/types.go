// SPDX-License-Identifier: MIT

package coordmap

import "math"

// Geometric constants of the unit-side equilateral triangle. Both are held
// as float64 so repeated round trips do not drift.
const (
	// Sqrt3 is √3.
	Sqrt3 = 1.7320508075688772935274463415058723669428052538103806280558069794

	// HalfSqrt3 is √3/2, the height of the triangle.
	HalfSqrt3 = Sqrt3 / 2
)

// Ternary is a point in ternary space: the weights of vertices A, B and C.
// Components usually sum to one but any total is representable.
type Ternary struct {
	A float64 // weight of vertex A, placed at (0, 0)
	B float64 // weight of vertex B, placed at (1, 0)
	C float64 // weight of vertex C, placed at (½, √3/2)
}

// Sum returns A + B + C.
func (t Ternary) Sum() float64 { return t.A + t.B + t.C }

// Array returns the components in positional order (a, b, c).
func (t Ternary) Array() [3]float64 { return [3]float64{t.A, t.B, t.C} }

// Scale multiplies every component by k.
func (t Ternary) Scale(k float64) Ternary { return Ternary{t.A * k, t.B * k, t.C * k} }

// IsFinite reports whether no component is NaN or ±Inf.
func (t Ternary) IsFinite() bool {
	return isFinite(t.A) && isFinite(t.B) && isFinite(t.C)
}

// TernaryFromArray builds a Ternary from a positional array.
func TernaryFromArray(v [3]float64) Ternary { return Ternary{A: v[0], B: v[1], C: v[2]} }

// Cartesian is a point in the plane of the diagram.
type Cartesian struct {
	X float64
	Y float64
}

// Array returns the components in positional order (x, y).
func (p Cartesian) Array() [2]float64 { return [2]float64{p.X, p.Y} }

// CartesianFromArray builds a Cartesian from a positional array.
func CartesianFromArray(v [2]float64) Cartesian { return Cartesian{X: v[0], Y: v[1]} }

// Triangle anchors in the plane.
var (
	VertexA = Cartesian{X: 0, Y: 0}
	VertexB = Cartesian{X: 1, Y: 0}
	VertexC = Cartesian{X: 0.5, Y: HalfSqrt3}
)

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
