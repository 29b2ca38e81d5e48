package boxtree

import (
	"math"

	"github.com/spatialkit/boxtree/geo"
)

// chooseSubtree descends from the root and returns the node that should
// receive an entry with the given envelope.
//
// At every step the child needing the least envelope enlargement wins; if the
// minimum is shared, the child with the smaller surface wins. A targetHeight
// of -1 descends to the leaf-container level; otherwise the descent stops at
// the node sitting at that height above the leaves. The returned node is
// never nil: the root of an empty tree is itself a valid target.
func (t *Tree) chooseSubtree(env geo.Envelope, targetHeight int) *innerNode {
	n := t.root
	h := t.height
	for {
		if targetHeight < 0 {
			if n.isLeafContainer() {
				return n
			}
		} else if h <= targetHeight || n.isLeafContainer() {
			return n
		}
		n = bestFit(n.children, env)
		h--
	}
}

// bestFit selects among internal nodes the one whose envelope needs the least
// enlargement to cover env, breaking ties by smaller surface.
func bestFit(children []treeNode, env geo.Envelope) *innerNode {
	var best *innerNode
	bestEnlargement := math.Inf(1)
	bestSurface := math.Inf(1)
	for _, c := range children {
		child, ok := c.(*innerNode)
		assert(ok, "chooseSubtree: descended into a leaf level")
		surface := child.bbox.Surface()
		enlargement := child.bbox.Union(env).Surface() - surface
		if enlargement < bestEnlargement ||
			(enlargement == bestEnlargement && surface < bestSurface) {
			best = child
			bestEnlargement = enlargement
			bestSurface = surface
		}
	}
	assert(best != nil, "chooseSubtree: internal node without children")
	return best
}
