package boxtree

import (
	"github.com/spatialkit/boxtree/geo"
)

// Search returns the indexed objects whose envelope lies fully inside the
// query envelope.
//
// Internal levels are pruned by envelope intersection; at the leaf level an
// object is accepted only when the query envelope contains its envelope
// completely. An object merely overlapping the query boundary is not
// reported.
func (t *Tree) Search(query geo.Envelope) []geo.Spatial {
	var found []geo.Spatial
	t.searchNode(t.root, query, func(item geo.Spatial) bool {
		found = append(found, item)
		return true
	})
	return found
}

// SearchFunc visits the objects Search would return, in tree order, and
// stops early when the callback returns false.
func (t *Tree) SearchFunc(query geo.Envelope, f func(geo.Spatial) bool) {
	t.searchNode(t.root, query, f)
}

func (t *Tree) searchNode(n *innerNode, query geo.Envelope, f func(geo.Spatial) bool) bool {
	if n.isLeafContainer() {
		for _, c := range n.children {
			leaf := c.(*leafNode)
			if query.Contains(leaf.envelope()) {
				if !f(leaf.item) {
					return false
				}
			}
		}
		return true
	}
	for _, c := range n.children {
		child := c.(*innerNode)
		if query.Intersects(child.bbox) {
			if !t.searchNode(child, query, f) {
				return false
			}
		}
	}
	return true
}

// Contains reports whether the object is indexed. Objects compare by
// identity, not by envelope equality.
func (t *Tree) Contains(item geo.Spatial) bool {
	if item == nil {
		return false
	}
	_, leaf := locateLeaf(t.root, item, item.Envelope())
	return leaf != nil
}

// locateLeaf descends into subtrees whose envelope contains the object's
// envelope and returns the leaf container and leaf holding the object, or
// nils if the object is not indexed.
func locateLeaf(n *innerNode, item geo.Spatial, env geo.Envelope) (*innerNode, *leafNode) {
	if n.isLeafContainer() {
		for _, c := range n.children {
			leaf := c.(*leafNode)
			if leaf.item == item {
				return n, leaf
			}
		}
		return nil, nil
	}
	for _, c := range n.children {
		child := c.(*innerNode)
		if child.bbox.Contains(env) {
			if container, leaf := locateLeaf(child, item, env); leaf != nil {
				return container, leaf
			}
		}
	}
	return nil, nil
}

// each visits every node depth-first in child order, passing the depth below
// the root. Iteration stops at the first callback error, which is returned.
func (t *Tree) each(f func(n treeNode, depth int) error) error {
	return traverse(t.root, 0, f)
}

func traverse(n treeNode, depth int, f func(treeNode, int) error) error {
	if err := f(n, depth); err != nil {
		return err
	}
	if inner, ok := n.(*innerNode); ok {
		for _, c := range inner.children {
			if err := traverse(c, depth+1, f); err != nil {
				return err
			}
		}
	}
	return nil
}
