package boxtree

// addNode inserts a node at the correct level of the tree.
//
// A targetHeight of -1 places leaves at the leaf-container level; condensation
// passes the original height of an orphaned subtree so it re-enters the tree
// at the depth it came from.
func (t *Tree) addNode(n treeNode, targetHeight int) {
	target := t.chooseSubtree(n.envelope(), targetHeight)
	if !target.isFull() {
		target.addChild(n)
		t.adjustTree(target, nil, nil)
	} else {
		// Transient overflow of exactly one extra child, resolved by split.
		target.addChild(n)
		first, second := t.split(target)
		t.adjustTree(first, second, target)
	}
	if t.height == 0 {
		t.height = 1
	}
}

// adjustTree walks upward from n, correcting envelope caches and propagating
// a pending split. stale names a node that has been replaced by the split
// pair (n, sibling) and still hangs off its parent; it is swapped out for n
// at the next level so no stale bounding info survives.
//
// When a split is still pending at the top, a new root is created over the
// final pair and the tree grows by one level.
func (t *Tree) adjustTree(n, sibling, stale *innerNode) {
	for {
		p := n.container()
		if p == nil {
			if sibling != nil {
				root := newInnerNode(t.max)
				root.addChild(n)
				root.addChild(sibling)
				t.root = root
				t.height++
			}
			return
		}
		if sibling == nil {
			p.include(n.envelope())
			n = p
			continue
		}
		if stale != nil {
			p.replaceChild(stale, n)
			stale = nil
		}
		if !p.isFull() {
			p.addChild(sibling)
			sibling = nil
			n = p
		} else {
			p.addChild(sibling)
			n, sibling = t.split(p)
			stale = p
		}
	}
}
