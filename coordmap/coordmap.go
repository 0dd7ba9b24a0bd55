// SPDX-License-Identifier: MIT

package coordmap

// TernaryToCartesian maps a ternary coordinate onto the unit-side triangle.
//
// Implementation:
//   - x = b + c/2
//   - y = (√3/2)·c
//
// Behavior highlights:
//   - A does not enter the formulas; the triangle is anchored at A = (0,0).
//   - Inputs whose sum is not one are mapped as-is (no implicit normalization).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Normalize raw compositions first (datamanip.NormalizeTriple) when the
//     point must land inside the triangle.
func TernaryToCartesian(t Ternary) Cartesian {
	return Cartesian{
		X: t.B + t.C/2,
		Y: HalfSqrt3 * t.C,
	}
}

// CartesianToTernary is the inverse of TernaryToCartesian generalized to an
// arbitrary target sum σ (WithSigma, default 1).
//
// Implementation:
//   - c = y / (√3/2)
//   - b = x − c/2
//   - a = σ − (b + c)
//
// Behavior highlights:
//   - B and C depend only on (x, y); σ shifts A alone.
//   - σ is not validated: zero, negative and non-finite values are accepted.
//
// Complexity:
//   - Time O(1), Space O(1).
func CartesianToTernary(p Cartesian, opts ...Option) Ternary {
	o := gatherOptions(opts...)

	return cartesianToTernary(p, o.sigma)
}

func cartesianToTernary(p Cartesian, sigma float64) Ternary {
	c := p.Y / HalfSqrt3
	b := p.X - c/2

	return Ternary{A: sigma - (b + c), B: b, C: c}
}

// ToCartesian is the slice facade of TernaryToCartesian.
//
// Errors:
//   - ErrNilInput if coords is nil.
//   - ErrDimensionMismatch if len(coords) != 3.
func ToCartesian(coords []float64) ([2]float64, error) {
	if err := validateLen("ToCartesian", coords, 3); err != nil {
		return [2]float64{}, err
	}

	return TernaryToCartesian(Ternary{A: coords[0], B: coords[1], C: coords[2]}).Array(), nil
}

// ToTernary is the slice facade of CartesianToTernary.
//
// Errors:
//   - ErrNilInput if coords is nil.
//   - ErrDimensionMismatch if len(coords) != 2.
func ToTernary(coords []float64, opts ...Option) ([3]float64, error) {
	if err := validateLen("ToTernary", coords, 2); err != nil {
		return [3]float64{}, err
	}

	return CartesianToTernary(Cartesian{X: coords[0], Y: coords[1]}, opts...).Array(), nil
}

// TernariesToCartesians converts a dataset point by point.
// The result is newly allocated and keeps the input order; nil maps to nil.
// Complexity: Time O(n), Space O(n).
func TernariesToCartesians(ts []Ternary) []Cartesian {
	if ts == nil {
		return nil
	}
	out := make([]Cartesian, len(ts))
	for i, t := range ts {
		out[i] = TernaryToCartesian(t)
	}

	return out
}

// CartesiansToTernaries converts a dataset point by point using one shared σ.
// The result is newly allocated and keeps the input order; nil maps to nil.
// Complexity: Time O(n), Space O(n).
func CartesiansToTernaries(ps []Cartesian, opts ...Option) []Ternary {
	if ps == nil {
		return nil
	}
	o := gatherOptions(opts...)
	out := make([]Ternary, len(ps))
	for i, p := range ps {
		out[i] = cartesianToTernary(p, o.sigma)
	}

	return out
}
