// SPDX-License-Identifier: MIT

package coordmap

import (
	"fmt"

	"github.com/twpayne/go-geom"
)

// Coord returns p as a two-dimensional go-geom coordinate.
func (p Cartesian) Coord() geom.Coord { return geom.Coord{p.X, p.Y} }

// CartesianFromCoord reads the first two ordinates of c. Extra ordinates
// (Z, M) are ignored.
//
// Errors:
//   - ErrNilInput if c is nil.
//   - ErrDimensionMismatch if c has fewer than two ordinates.
func CartesianFromCoord(c geom.Coord) (Cartesian, error) {
	if c == nil {
		return Cartesian{}, validatorErrorf("CartesianFromCoord", ErrNilInput)
	}
	if len(c) < 2 {
		return Cartesian{}, validatorErrorf("CartesianFromCoord",
			fmt.Errorf("%w: got %d ordinates, want at least 2", ErrDimensionMismatch, len(c)))
	}

	return Cartesian{X: c.X(), Y: c.Y()}, nil
}

// ToMultiPoint projects a ternary dataset into an XY MultiPoint, ready to be
// handed to a plotting or GIS layer.
//
// Errors:
//   - errors from go-geom coordinate assignment (not expected for XY data).
//
// Complexity:
//   - Time O(n), Space O(n).
func ToMultiPoint(ts []Ternary) (*geom.MultiPoint, error) {
	coords := make([]geom.Coord, len(ts))
	for i, t := range ts {
		coords[i] = TernaryToCartesian(t).Coord()
	}
	mp, err := geom.NewMultiPoint(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, fmt.Errorf("ToMultiPoint: %w", err)
	}

	return mp, nil
}

// FromMultiPoint recovers ternary coordinates from every point of mp using
// one shared σ (WithSigma, default 1). Empty points are skipped.
//
// Errors:
//   - ErrNilInput if mp is nil.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromMultiPoint(mp *geom.MultiPoint, opts ...Option) ([]Ternary, error) {
	if mp == nil {
		return nil, validatorErrorf("FromMultiPoint", ErrNilInput)
	}
	o := gatherOptions(opts...)

	n := mp.NumPoints()
	out := make([]Ternary, 0, n)
	for i := 0; i < n; i++ {
		pt := mp.Point(i)
		if pt.Empty() {
			continue
		}
		p, err := CartesianFromCoord(pt.Coords())
		if err != nil {
			return nil, validatorErrorf("FromMultiPoint", err)
		}
		out = append(out, cartesianToTernary(p, o.sigma))
	}

	return out, nil
}

// Triangle returns the closed outline A → B → C → A of the diagram as an XY
// polygon.
func Triangle() *geom.Polygon {
	ring := []geom.Coord{VertexA.Coord(), VertexB.Coord(), VertexC.Coord(), VertexA.Coord()}

	return geom.NewPolygon(geom.XY).MustSetCoords([][]geom.Coord{ring})
}
