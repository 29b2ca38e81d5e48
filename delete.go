package boxtree

import (
	"github.com/spatialkit/boxtree/geo"
)

// Remove deletes one object from the index.
//
// The object is located by identity; false is returned when it is not
// indexed, which is an ordinary outcome, not an error. After a successful
// removal the tree is condensed: under-full nodes are dissolved, their
// remaining children re-enter the tree at their original level, and a
// degenerate root chain is collapsed.
func (t *Tree) Remove(item geo.Spatial) bool {
	if item == nil || t.count == 0 {
		return false
	}
	container, leaf := locateLeaf(t.root, item, item.Envelope())
	if leaf == nil {
		return false
	}
	container.removeChild(leaf)
	t.count--
	t.condenseTree(container)
	t.collapseRoot()
	if t.root.childCount() == 0 {
		t.reset()
	}
	return true
}

// RemoveIn deletes every object whose envelope lies fully inside the query
// envelope and returns the removed objects. The bool is false when nothing
// matched.
func (t *Tree) RemoveIn(query geo.Envelope) (bool, []geo.Spatial) {
	found := t.Search(query)
	if len(found) == 0 {
		return false, nil
	}
	for _, item := range found {
		removed := t.Remove(item)
		assert(removed, "removeIn: object found by search but not removable")
	}
	return true, found
}

// orphanEntry records a subtree cut loose during condensation together with
// the height of its original parent, i.e. the level it re-attaches at.
type orphanEntry struct {
	node   treeNode
	height int
}

// condenseTree walks upward from the leaf container a deletion emptied out.
// Nodes that fall below the minimum fan-out are detached and their remaining
// children recorded as orphans; all other nodes on the path get their
// envelope cache corrected. Orphans re-enter the tree afterwards at their
// recorded height, offset by any height change the tree underwent meanwhile.
func (t *Tree) condenseTree(n *innerNode) {
	heightAtStart := t.height
	var orphans []orphanEntry
	h := 1 // n is a leaf container
	for n.container() != nil {
		p := n.container()
		if n.childCount() < t.min {
			p.removeChild(n)
			for _, c := range n.children {
				c.reparent(nil)
				orphans = append(orphans, orphanEntry{node: c, height: h})
			}
			T().Debugf("boxtree: condense dissolved a node at height %d, %d orphan(s)",
				h, n.childCount())
		} else {
			n.recompute()
		}
		n = p
		h++
	}
	n.recompute() // n is the root here

	if t.root.childCount() == 0 {
		// Only a root holding a single leaf container can empty out here,
		// so every orphan is a leaf and the tree restarts at height 1.
		t.height = 0
		for _, o := range orphans {
			assert(o.height == 1, "condense: non-leaf orphan under an emptied root")
			t.addNode(o.node, -1)
		}
		return
	}
	for _, o := range orphans {
		t.addNode(o.node, o.height+(t.height-heightAtStart))
	}
}

// collapseRoot removes redundant single-path wrappers above the tree: while
// the root holds exactly one internal child that is not a leaf container,
// that child becomes the root and the tree shrinks by one level.
func (t *Tree) collapseRoot() {
	for t.root.childCount() == 1 {
		child, ok := t.root.children[0].(*innerNode)
		if !ok || child.isLeafContainer() {
			return
		}
		child.up = nil
		t.root = child
		t.height--
	}
}
