package boxtree

import (
	"errors"
	"fmt"
)

// ErrInvariant reports a structural defect found by Check.
var ErrInvariant = errors.New("boxtree: structural invariant violated")

// Check validates the structural tree invariants: fan-out bounds, envelope
// cache consistency, parent linkage, uniform leaf depth and the cached
// counters.
//
// This checker is intentionally strict and meant for tests; a violation it
// finds indicates a bug in this package, not bad caller input.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		return fmt.Errorf("%w: nil root", ErrInvariant)
	}
	if t.root.container() != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvariant)
	}
	leaves, height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if leaves != t.count {
		return fmt.Errorf("%w: object count mismatch (%d != %d)", ErrInvariant, leaves, t.count)
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	return nil
}

func (t *Tree) checkNode(n treeNode, isRoot bool) (leaves int, height int, err error) {
	leaf, ok := n.(*leafNode)
	if ok {
		if leaf.item == nil {
			return 0, 0, fmt.Errorf("%w: leaf without item", ErrInvariant)
		}
		if leaf.envelope().IsEmpty() {
			return 0, 0, fmt.Errorf("%w: leaf with empty envelope", ErrInvariant)
		}
		return 1, 0, nil
	}
	inner := n.(*innerNode)
	if inner.capacity != t.max {
		return 0, 0, fmt.Errorf("%w: node capacity %d differs from tree maximum %d",
			ErrInvariant, inner.capacity, t.max)
	}
	if inner.isOverflown() {
		return 0, 0, fmt.Errorf("%w: child count %d exceeds maximum %d",
			ErrInvariant, inner.childCount(), t.max)
	}
	if !isRoot && inner.childCount() < t.min {
		return 0, 0, fmt.Errorf("%w: child count %d below minimum %d",
			ErrInvariant, inner.childCount(), t.min)
	}
	if isRoot && inner.childCount() == 0 {
		if !inner.bbox.IsEmpty() {
			return 0, 0, fmt.Errorf("%w: empty root with non-empty envelope", ErrInvariant)
		}
		return 0, 0, nil
	}
	union := inner.bbox // verified against a fresh union below
	fresh := inner.children[0].envelope()
	var childHeight int
	for i, c := range inner.children {
		if c == nil {
			return 0, 0, fmt.Errorf("%w: nil child at index %d", ErrInvariant, i)
		}
		if c.container() != inner {
			return 0, 0, fmt.Errorf("%w: child at index %d has wrong parent link", ErrInvariant, i)
		}
		cLeaves, cHeight, cErr := t.checkNode(c, false)
		if cErr != nil {
			return 0, 0, cErr
		}
		leaves += cLeaves
		if i == 0 {
			childHeight = cHeight
		} else if cHeight != childHeight {
			return 0, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
		}
		fresh = fresh.Union(c.envelope())
	}
	if union != fresh {
		return 0, 0, fmt.Errorf("%w: envelope cache %v differs from children union %v",
			ErrInvariant, union, fresh)
	}
	return leaves, childHeight + 1, nil
}
