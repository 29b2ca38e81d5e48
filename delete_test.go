package boxtree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildCascadeTree constructs a height-4 tree with fan-out 2/4 in which every
// node on the leftmost path holds exactly the minimum number of children, so
// one deletion underflows three ancestor levels at once.
//
// Leaves k = 0..15 sit at x = 10k; pairs of leaves form leaf containers,
// pairs of leaf containers form the next level, and so on up to the root.
func buildCascadeTree() (*Tree, []*boxedItem) {
	items := make([]*boxedItem, 16)
	level := make([]treeNode, 16)
	for k := range items {
		items[k] = unitBoxAt(float64(k*10), 0, 0)
		level[k] = newLeafNode(items[k])
	}
	for len(level) > 2 {
		next := make([]treeNode, 0, len(level)/2)
		for i := 0; i < len(level); i += 2 {
			n := newInnerNode(4)
			n.addChild(level[i])
			n.addChild(level[i+1])
			next = append(next, n)
		}
		level = next
	}
	root := newInnerNode(4)
	root.addChild(level[0])
	root.addChild(level[1])
	return &Tree{root: root, count: 16, height: 4, min: 2, max: 4}, items
}

// Removing one leaf dissolves its leaf container, that container's parent and
// grandparent; the orphans of all three levels re-enter at their original
// depth and the degenerate root is collapsed away.
func TestCondenseMultiLevel(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxtree")
	defer teardown()
	//
	tree, items := buildCascadeTree()
	checked(t, tree)

	victim := items[0]
	if !tree.Remove(victim) {
		t.Fatalf("expected removal to succeed")
	}
	if tree.Count() != 15 {
		t.Errorf("expected count 15, got %d", tree.Count())
	}
	if tree.Height() != 3 {
		t.Errorf("expected the root chain to collapse to height 3, got %d", tree.Height())
	}
	checked(t, tree)
	if tree.Contains(victim) {
		t.Errorf("removed object still reported by Contains")
	}
	for _, item := range items[1:] {
		if !tree.Contains(item) {
			t.Errorf("object %v lost during condensation", item)
		}
	}
}

// A root left with a single leaf-container child is not collapsed: the root
// is only redundant while single-path wrappers sit above internal levels.
func TestRootNotCollapsedOntoLeafContainer(t *testing.T) {
	tree, _ := New(1, 2)
	a := unitBoxAt(0, 0, 0)
	b := unitBoxAt(10, 0, 0)
	c := unitBoxAt(20, 0, 0)
	tree.AddAll(a, b, c) // forces a root split, height 2

	// Removing the object that sits alone in its container dissolves the
	// container; the root keeps its one remaining leaf-container child.
	removed := 0
	for _, item := range []*boxedItem{a, b, c} {
		if tree.Remove(item) {
			removed++
		}
		checked(t, tree)
		if tree.Count() != 3-removed {
			t.Fatalf("count %d after %d removals", tree.Count(), removed)
		}
	}
	if tree.Count() != 0 || tree.Height() != 0 {
		t.Errorf("expected empty tree, got count=%d height=%d", tree.Count(), tree.Height())
	}
}

func TestRemoveLastObjectResetsTree(t *testing.T) {
	tree, _ := New(2, 4)
	item := unitBoxAt(5, 5, 5)
	tree.Add(item)
	if !tree.Remove(item) {
		t.Fatalf("expected removal to succeed")
	}
	if tree.Count() != 0 || tree.Height() != 0 {
		t.Errorf("expected reset to empty state, got count=%d height=%d",
			tree.Count(), tree.Height())
	}
	if !tree.Envelope().IsEmpty() {
		t.Errorf("expected empty envelope after last removal")
	}
	checked(t, tree)
}
