// SPDX-License-Identifier: MIT

// Package coordmap converts between ternary (a,b,c) and Cartesian (x,y)
// coordinates on an equilateral triangle with unit side length.
//
// 🚀 Convention:
//
//	a = 1 → A (0, 0)
//	b = 1 → B (1, 0)
//	c = 1 → C (½, √3/2)
//
//	x = b + c/2
//	y = (√3/2)·c
//
// The inverse needs one extra equation, the target sum σ = a+b+c:
//
//	c = y / (√3/2)
//	b = x − c/2
//	a = σ − (b + c)
//
// ✨ Key features:
//   - typed values (Ternary, Cartesian): arity is checked by the compiler
//   - slice facades (ToCartesian, ToTernary) that validate length instead of panicking
//   - batch helpers for whole datasets (TernariesToCartesians, CartesiansToTernaries)
//   - go-geom interop (Coord, MultiPoint, Triangle) for plotting layers
//   - functional options (WithSigma) with documented defaults
//
// ⚙️ Usage:
//
//	p := coordmap.TernaryToCartesian(coordmap.Ternary{A: 0.2, B: 0.3, C: 0.5})
//	t := coordmap.CartesianToTernary(p)                        // σ = 1
//	u := coordmap.CartesianToTernary(p, coordmap.WithSigma(2)) // a+b+c = 2
//
// Every function is pure; the only shared state is a set of read-only
// constants. All calls are safe for concurrent use.
package coordmap
