// Package ternplot is a small toolbox for ternary-diagram plotting: it maps
// three-component (ternary) coordinates onto the plane and back, and
// normalizes raw compositions so they sum to one.
//
// 🚀 What is a ternary diagram?
//
//	A ternary plot shows the ratios of three variables that add up to a
//	constant as a point inside an equilateral triangle. Typical uses:
//		• Soil texture (sand / silt / clay)
//		• Phase diagrams & alloy compositions
//		• Mixture experiments, population genetics, election results
//
// ✨ Packages:
//
//	coordmap/  — ternary ⇄ Cartesian conversion on a unit-side triangle,
//	             batch helpers and go-geom interop
//	datamanip/ — normalization of compositions to a unit sum
//
// Geometry (unit side length):
//
//	              C (½, √3/2)
//	             / \
//	            /   \
//	           /     \
//	  A (0,0) ───────  B (1,0)
//
// Every function is pure and allocation-bounded, so all packages are safe
// for concurrent use without coordination.
//
//	go get github.com/katalvlaran/ternplot
package ternplot
