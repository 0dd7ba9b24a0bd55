// SPDX-License-Identifier: MIT

package coordmap_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/katalvlaran/ternplot/coordmap"
)

func TestCartesianFromCoord(t *testing.T) {
	p, err := coordmap.CartesianFromCoord(geom.Coord{0.3, 0.4, 9})
	require.NoError(t, err)
	assert.Equal(t, coordmap.Cartesian{X: 0.3, Y: 0.4}, p, "Z is ignored")

	_, err = coordmap.CartesianFromCoord(nil)
	assert.ErrorIs(t, err, coordmap.ErrNilInput)

	_, err = coordmap.CartesianFromCoord(geom.Coord{1})
	assert.ErrorIs(t, err, coordmap.ErrDimensionMismatch)

	q := coordmap.Cartesian{X: -1, Y: 2}
	back, err := coordmap.CartesianFromCoord(q.Coord())
	require.NoError(t, err)
	assert.Equal(t, q, back)
}

func TestMultiPointRoundTrip(t *testing.T) {
	in := []coordmap.Ternary{{A: 1}, {B: 1}, {C: 1}, {A: 0.6, B: 0.3, C: 0.1}}

	mp, err := coordmap.ToMultiPoint(in)
	require.NoError(t, err)
	assert.Equal(t, geom.XY, mp.Layout())
	require.Equal(t, len(in), mp.NumPoints())
	assert.InDelta(t, 1.0, mp.Point(1).Coords().X(), tol)

	out, err := coordmap.FromMultiPoint(mp)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assertTernaryInDelta(t, in[i], out[i], "multipoint round trip")
	}

	pct, err := coordmap.FromMultiPoint(mp, coordmap.WithSigma(100))
	require.NoError(t, err)
	assert.InDelta(t, 100.0, pct[3].Sum(), tol)
}

func TestMultiPoint_EmptyAndNil(t *testing.T) {
	mp, err := coordmap.ToMultiPoint(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, mp.NumPoints())

	out, err := coordmap.FromMultiPoint(mp)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = coordmap.FromMultiPoint(nil)
	assert.ErrorIs(t, err, coordmap.ErrNilInput)
}

func TestTriangle(t *testing.T) {
	tri := coordmap.Triangle()
	require.Equal(t, 1, tri.NumLinearRings())

	ring := tri.LinearRing(0)
	require.Equal(t, 4, ring.NumCoords())
	assert.Equal(t, ring.Coord(0), ring.Coord(3), "ring must be closed")
	assert.InDelta(t, math.Sqrt(3)/4, tri.Area(), tol, "area of the unit equilateral triangle")
}
