package boxtree

/*
BSD 3-Clause License

Copyright (c) 2025-26, the boxtree authors

Please refer to the License file in the repository root.

*/

import (
	"github.com/spatialkit/boxtree/geo"
)

// A tree node is either a leaf wrapping one indexed object or an internal
// node holding an ordered collection of child nodes. The tree owns the node
// graph top-down: a node's children belong to it exclusively. The parent link
// is a non-owning back-pointer used only to walk upward; it must never be
// used to free or duplicate a node.

type treeNode interface {
	envelope() geo.Envelope
	container() *innerNode
	reparent(p *innerNode)
}

// leafNode wraps one indexed object. Its envelope is the object's envelope,
// read through on every access so the leaf carries no stale bounding info.
type leafNode struct {
	up   *innerNode
	item geo.Spatial
}

func newLeafNode(item geo.Spatial) *leafNode {
	return &leafNode{item: item}
}

func (l *leafNode) envelope() geo.Envelope { return l.item.Envelope() }
func (l *leafNode) container() *innerNode  { return l.up }
func (l *leafNode) reparent(p *innerNode)  { l.up = p }

// innerNode holds children in insertion order, not spatially ordered, plus a
// cached bounding envelope equal to the union of the children's envelopes.
// The envelope cache is recomputed, never adjusted in place, whenever a child
// is removed or replaced.
type innerNode struct {
	up       *innerNode
	bbox     geo.Envelope
	children []treeNode
	capacity int // maximum fan-out, fixed per tree, inherited on creation
}

func newInnerNode(capacity int) *innerNode {
	return &innerNode{
		bbox:     geo.Empty(),
		capacity: capacity,
	}
}

func (n *innerNode) envelope() geo.Envelope { return n.bbox }
func (n *innerNode) container() *innerNode  { return n.up }
func (n *innerNode) reparent(p *innerNode)  { n.up = p }

func (n *innerNode) childCount() int   { return len(n.children) }
func (n *innerNode) isFull() bool      { return len(n.children) == n.capacity }
func (n *innerNode) isOverflown() bool { return len(n.children) > n.capacity }

// isLeafContainer reports whether every child is a leaf, i.e. the node sits
// directly above the indexed objects. An empty node counts as a leaf
// container: the root of an empty tree is a valid insertion target.
func (n *innerNode) isLeafContainer() bool {
	for _, c := range n.children {
		if _, ok := c.(*innerNode); ok {
			return false
		}
	}
	return true
}

// addChild appends c, takes ownership and extends the envelope cache. The
// caller is responsible for splitting if the node overflows.
func (n *innerNode) addChild(c treeNode) {
	n.children = append(n.children, c)
	c.reparent(n)
	n.bbox = n.bbox.Union(c.envelope())
}

// removeChild detaches c, preserving the order of the remaining children,
// and recomputes the envelope cache. Returns false if c is not a child of n.
func (n *innerNode) removeChild(c treeNode) bool {
	for i, child := range n.children {
		if child == c {
			n.children = append(n.children[:i], n.children[i+1:]...)
			n.recompute()
			return true
		}
	}
	return false
}

// replaceChild swaps old for c in place and recomputes the envelope cache.
// Replacing a node that has been split drops its stale bounding info.
func (n *innerNode) replaceChild(old, c treeNode) {
	for i, child := range n.children {
		if child == old {
			n.children[i] = c
			c.reparent(n)
			n.recompute()
			return
		}
	}
	assert(false, "replaceChild: node to replace is not a child of this node")
}

// include extends the envelope cache to cover env. Valid only for envelope
// growth; shrinking requires recompute.
func (n *innerNode) include(env geo.Envelope) {
	n.bbox = n.bbox.Union(env)
}

// recompute rebuilds the envelope cache from the current children.
func (n *innerNode) recompute() {
	u := geo.Empty()
	for _, c := range n.children {
		u = u.Union(c.envelope())
	}
	n.bbox = u
}
