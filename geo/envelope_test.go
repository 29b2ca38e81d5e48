package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func box(t *testing.T, minX, minY, minZ, maxX, maxY, maxZ float64) Envelope {
	t.Helper()
	e, err := New(minX, minY, minZ, maxX, maxY, maxZ)
	require.NoError(t, err)
	return e
}

func TestNewRejectsInvertedBounds(t *testing.T) {
	_, err := New(1, 0, 0, 0, 1, 1)
	require.ErrorIs(t, err, ErrInvertedBounds)
	_, err = New(0, 0, 5, 1, 1, 4)
	require.ErrorIs(t, err, ErrInvertedBounds)
}

func TestEmptyEnvelope(t *testing.T) {
	e := Empty()
	require.True(t, e.IsEmpty())
	require.Equal(t, 0.0, e.Surface())

	unit := box(t, 0, 0, 0, 1, 1, 1)
	require.False(t, e.Contains(unit))
	require.False(t, unit.Contains(e))
	require.False(t, e.Intersects(unit))
	require.Equal(t, "[empty]", e.String())
}

func TestUnionIsCommutativeAndGrowing(t *testing.T) {
	a := box(t, 0, 0, 0, 1, 1, 1)
	b := box(t, 2, -1, 0, 3, 0.5, 2)

	u := a.Union(b)
	require.Equal(t, u, b.Union(a))
	require.True(t, u.Contains(a))
	require.True(t, u.Contains(b))
	require.Equal(t, box(t, 0, -1, 0, 3, 1, 2), u)
}

func TestUnionWithEmptyIsNeutral(t *testing.T) {
	a := box(t, -1, -1, -1, 1, 1, 1)
	require.Equal(t, a, a.Union(Empty()))
	require.Equal(t, a, Empty().Union(a))
	require.True(t, UnionAll().IsEmpty())
	require.Equal(t, a, UnionAll(Empty(), a, Empty()))
}

func TestContainsIsInclusive(t *testing.T) {
	outer := box(t, 0, 0, 0, 10, 10, 10)
	require.True(t, outer.Contains(outer))
	require.True(t, outer.Contains(box(t, 0, 0, 0, 10, 10, 10)))
	require.True(t, outer.Contains(box(t, 2, 2, 2, 8, 8, 8)))
	require.False(t, outer.Contains(box(t, 2, 2, 2, 8, 8, 11)))
	require.False(t, outer.Contains(box(t, -1, 0, 0, 5, 5, 5)))
}

func TestIntersects(t *testing.T) {
	a := box(t, 0, 0, 0, 4, 4, 4)
	require.True(t, a.Intersects(box(t, 3, 3, 3, 6, 6, 6)))
	// Touching at a face counts as intersecting.
	require.True(t, a.Intersects(box(t, 4, 0, 0, 8, 4, 4)))
	require.False(t, a.Intersects(box(t, 5, 5, 5, 6, 6, 6)))
	// Separation on a single axis suffices.
	require.False(t, a.Intersects(box(t, 0, 0, 5, 4, 4, 6)))
}

func TestSurfacePlanarVsVolume(t *testing.T) {
	planar, err := Planar(0, 0, 3, 4)
	require.NoError(t, err)
	require.True(t, planar.IsPlanar())
	require.Equal(t, 12.0, planar.Surface())

	cube := box(t, 0, 0, 0, 2, 2, 2)
	require.False(t, cube.IsPlanar())
	require.Equal(t, 24.0, cube.Surface())

	// A degenerate Z plane embedded in 3-D coordinates still measures as area.
	plane := box(t, 0, 0, 5, 3, 4, 5)
	require.True(t, plane.IsPlanar())
	require.Equal(t, 12.0, plane.Surface())
}
