package boxtree

import (
	"math"

	"github.com/spatialkit/boxtree/geo"
)

// split partitions the children of an overflowing node into two new nodes,
// which inherit the overflown node's parent and capacity. The overflown node
// itself stays linked to its parent until adjustTree swaps it out.
//
// Seeds are picked with the linear-cost heuristic: on the axis with the
// widest normalized separation, the child with the highest low coordinate and
// the child with the lowest high coordinate anchor the two groups. The
// remaining children are distributed in insertion order, forced into a group
// when needed to honor the minimum fan-out, otherwise by least envelope
// enlargement with a smaller-surface tie-break.
func (t *Tree) split(overflown *innerNode) (first, second *innerNode) {
	children := overflown.children
	assert(overflown.isOverflown(), "split: node does not overflow")

	i, j := pickSeeds(children)
	first = newInnerNode(overflown.capacity)
	second = newInnerNode(overflown.capacity)
	first.up = overflown.up
	second.up = overflown.up
	first.addChild(children[i])
	second.addChild(children[j])

	pool := make([]treeNode, 0, len(children)-2)
	for k, c := range children {
		if k != i && k != j {
			pool = append(pool, c)
		}
	}
	for len(pool) > 0 {
		c := pool[0]
		pool = pool[1:]
		switch {
		case first.childCount()+len(pool)+1 <= t.min:
			first.addChild(c)
		case second.childCount()+len(pool)+1 <= t.min:
			second.addChild(c)
		default:
			assignByEnlargement(first, second, c)
		}
	}

	assert(first.childCount() >= t.min && second.childCount() >= t.min,
		"split: produced a group below the minimum fan-out")
	assert(!first.isOverflown() && !second.isOverflown(),
		"split: produced an overflowing group")
	return first, second
}

func assignByEnlargement(first, second *innerNode, c treeNode) {
	env := c.envelope()
	surfaceA := first.bbox.Surface()
	surfaceB := second.bbox.Surface()
	growthA := first.bbox.Union(env).Surface() - surfaceA
	growthB := second.bbox.Union(env).Surface() - surfaceB
	switch {
	case growthA < growthB:
		first.addChild(c)
	case growthB < growthA:
		second.addChild(c)
	case surfaceB < surfaceA:
		second.addChild(c)
	default:
		first.addChild(c)
	}
}

type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

func minOn(e geo.Envelope, ax axis) float64 {
	switch ax {
	case axisX:
		return e.MinX
	case axisY:
		return e.MinY
	default:
		return e.MinZ
	}
}

func maxOn(e geo.Envelope, ax axis) float64 {
	switch ax {
	case axisX:
		return e.MaxX
	case axisY:
		return e.MaxY
	default:
		return e.MaxZ
	}
}

// pickSeeds returns the indices of the two children anchoring a split.
//
// X and Y compete first; the Z axis only wins with a strictly greater
// separation, so planar data never splits on its degenerate axis.
func pickSeeds(children []treeNode) (int, int) {
	assert(len(children) >= 2, "pickSeeds: need at least two children")
	bestSep, i, j := seedsOnAxis(children, axisX)
	if sep, hi, lo := seedsOnAxis(children, axisY); sep > bestSep {
		bestSep, i, j = sep, hi, lo
	}
	if sep, hi, lo := seedsOnAxis(children, axisZ); sep > bestSep {
		i, j = hi, lo
	}
	return i, j
}

// seedsOnAxis finds the child with the highest low coordinate and, among the
// others, the child with the lowest high coordinate. The separation between
// the two is normalized by the overall spread on the axis; a spread of zero
// yields -Inf so a degenerate axis never gets chosen.
func seedsOnAxis(children []treeNode, ax axis) (sep float64, hi, lo int) {
	globalMin := math.Inf(1)
	globalMax := math.Inf(-1)
	hi = 0
	for k, c := range children {
		e := c.envelope()
		globalMin = math.Min(globalMin, minOn(e, ax))
		globalMax = math.Max(globalMax, maxOn(e, ax))
		if minOn(e, ax) > minOn(children[hi].envelope(), ax) {
			hi = k
		}
	}
	lo = -1
	for k, c := range children {
		if k == hi {
			continue
		}
		if lo < 0 || maxOn(c.envelope(), ax) < maxOn(children[lo].envelope(), ax) {
			lo = k
		}
	}
	width := globalMax - globalMin
	if width == 0 {
		return math.Inf(-1), hi, lo
	}
	sep = (minOn(children[hi].envelope(), ax) - maxOn(children[lo].envelope(), ax)) / width
	return sep, hi, lo
}
