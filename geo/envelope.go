package geo

import (
	"fmt"
	"math"
)

// Envelope is an axis-aligned minimum bounding volume in 3-D space.
//
// Envelopes are immutable values: every operation returns a new envelope and
// never modifies its receiver. A 2-D (planar) envelope is represented as a
// degenerate volume with MinZ == MaxZ.
//
// The zero value is the envelope of the origin point. Use Empty for the
// neutral element of Union.
type Envelope struct {
	MinX, MinY, MinZ float64
	MaxX, MaxY, MaxZ float64
}

// New creates an envelope from its corner coordinates.
//
// Returns ErrInvertedBounds if any minimum exceeds its maximum.
func New(minX, minY, minZ, maxX, maxY, maxZ float64) (Envelope, error) {
	if minX > maxX || minY > maxY || minZ > maxZ {
		return Empty(), ErrInvertedBounds
	}
	return Envelope{
		MinX: minX, MinY: minY, MinZ: minZ,
		MaxX: maxX, MaxY: maxY, MaxZ: maxZ,
	}, nil
}

// Planar creates a 2-D envelope, i.e. one degenerate on the Z axis.
func Planar(minX, minY, maxX, maxY float64) (Envelope, error) {
	return New(minX, minY, 0, maxX, maxY, 0)
}

// Empty returns the empty envelope, the neutral element of Union. It bounds
// nothing: containment and intersection tests against it are always false.
func Empty() Envelope {
	inf := math.Inf(1)
	return Envelope{
		MinX: inf, MinY: inf, MinZ: inf,
		MaxX: -inf, MaxY: -inf, MaxZ: -inf,
	}
}

// IsEmpty reports whether the envelope bounds nothing.
func (e Envelope) IsEmpty() bool {
	return e.MinX > e.MaxX || e.MinY > e.MaxY || e.MinZ > e.MaxZ
}

// IsPlanar reports whether the envelope is degenerate on the Z axis.
func (e Envelope) IsPlanar() bool {
	return e.MinZ == e.MaxZ
}

// Union returns the smallest envelope enclosing both e and other.
func (e Envelope) Union(other Envelope) Envelope {
	if e.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return e
	}
	return Envelope{
		MinX: math.Min(e.MinX, other.MinX),
		MinY: math.Min(e.MinY, other.MinY),
		MinZ: math.Min(e.MinZ, other.MinZ),
		MaxX: math.Max(e.MaxX, other.MaxX),
		MaxY: math.Max(e.MaxY, other.MaxY),
		MaxZ: math.Max(e.MaxZ, other.MaxZ),
	}
}

// UnionAll returns the smallest envelope enclosing all given envelopes,
// or the empty envelope for an empty argument list.
func UnionAll(envs ...Envelope) Envelope {
	u := Empty()
	for _, e := range envs {
		u = u.Union(e)
	}
	return u
}

// Contains reports whether other lies fully inside e, boundaries included.
// The empty envelope neither contains nor is contained.
func (e Envelope) Contains(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return false
	}
	return e.MinX <= other.MinX && other.MaxX <= e.MaxX &&
		e.MinY <= other.MinY && other.MaxY <= e.MaxY &&
		e.MinZ <= other.MinZ && other.MaxZ <= e.MaxZ
}

// Intersects reports whether e and other share at least one point,
// boundaries included.
func (e Envelope) Intersects(other Envelope) bool {
	if e.IsEmpty() || other.IsEmpty() {
		return false
	}
	return e.MinX <= other.MaxX && other.MinX <= e.MaxX &&
		e.MinY <= other.MaxY && other.MinY <= e.MaxY &&
		e.MinZ <= other.MaxZ && other.MinZ <= e.MaxZ
}

// Surface returns a scalar size metric for the envelope: the area for a
// planar envelope, the box surface area otherwise. It is intended for
// comparing envelopes against each other, not as a physical measure.
func (e Envelope) Surface() float64 {
	if e.IsEmpty() {
		return 0
	}
	dx := e.MaxX - e.MinX
	dy := e.MaxY - e.MinY
	if e.IsPlanar() {
		return dx * dy
	}
	dz := e.MaxZ - e.MinZ
	return 2 * (dx*dy + dx*dz + dy*dz)
}

// String returns a compact textual form for diagnostics.
func (e Envelope) String() string {
	if e.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[(%g,%g,%g)-(%g,%g,%g)]",
		e.MinX, e.MinY, e.MinZ, e.MaxX, e.MaxY, e.MaxZ)
}
