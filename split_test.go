package boxtree

import (
	"testing"

	"github.com/spatialkit/boxtree/geo"
)

// overflownNode builds an internal node holding one leaf per item, exceeding
// the given capacity on purpose.
func overflownNode(capacity int, items ...*boxedItem) *innerNode {
	n := newInnerNode(capacity)
	for _, item := range items {
		n.addChild(newLeafNode(item))
	}
	return n
}

func groupItems(n *innerNode) map[*boxedItem]bool {
	set := make(map[*boxedItem]bool)
	for _, c := range n.children {
		set[c.(*leafNode).item.(*boxedItem)] = true
	}
	return set
}

// Two clusters with a wide gap on X and near-zero spread on Y/Z must end up
// in different split groups, whole.
func TestSplitSeparatesClusters(t *testing.T) {
	tree, _ := New(2, 4)
	left := []*boxedItem{unitBoxAt(0, 0, 0), unitBoxAt(1, 0.2, 0), unitBoxAt(2, 0.1, 0)}
	right := []*boxedItem{unitBoxAt(100, 0, 0), unitBoxAt(101, 0.3, 0)}
	overflown := overflownNode(4, left[0], right[0], left[1], right[1], left[2])

	first, second := tree.split(overflown)
	a, b := groupItems(first), groupItems(second)
	if a[right[0]] || a[right[1]] {
		a, b = b, a // normalize: a is the left cluster
	}
	for _, item := range left {
		if !a[item] {
			t.Errorf("left-cluster object %v not in the left group", item)
		}
	}
	for _, item := range right {
		if !b[item] {
			t.Errorf("right-cluster object %v not in the right group", item)
		}
	}
	if first.childCount()+second.childCount() != 5 {
		t.Errorf("split lost or duplicated children: %d + %d",
			first.childCount(), second.childCount())
	}
}

func TestSplitHonorsMinimumFanOut(t *testing.T) {
	tree, _ := New(2, 4)
	// Four objects huddle together, one sits far out: the lone object seeds
	// a group that must still be filled up to the minimum.
	overflown := overflownNode(4,
		unitBoxAt(0, 0, 0), unitBoxAt(0.5, 0.5, 0), unitBoxAt(1, 0, 0),
		unitBoxAt(0, 1, 0), unitBoxAt(500, 0, 0))
	first, second := tree.split(overflown)
	if first.childCount() < 2 || second.childCount() < 2 {
		t.Errorf("split groups %d/%d violate the minimum fan-out",
			first.childCount(), second.childCount())
	}
	if first.childCount()+second.childCount() != 5 {
		t.Errorf("split lost or duplicated children")
	}
}

func TestSplitInheritsParentAndCapacity(t *testing.T) {
	tree, _ := New(1, 3)
	parent := newInnerNode(3)
	overflown := overflownNode(3,
		unitBoxAt(0, 0, 0), unitBoxAt(10, 0, 0), unitBoxAt(20, 0, 0), unitBoxAt(30, 0, 0))
	overflown.up = parent

	first, second := tree.split(overflown)
	if first.up != parent || second.up != parent {
		t.Errorf("split groups must inherit the overflown node's parent")
	}
	if first.capacity != 3 || second.capacity != 3 {
		t.Errorf("split groups must inherit the overflown node's capacity")
	}
	for _, g := range []*innerNode{first, second} {
		for _, c := range g.children {
			if c.container() != g {
				t.Errorf("split child does not point back to its group")
			}
		}
	}
}

func TestPickSeedsChoosesWidestAxis(t *testing.T) {
	// Spread is wider on Y than on X: seeds must be the Y extremes.
	items := []*boxedItem{
		unitBoxAt(0, 0, 0),
		unitBoxAt(3, 50, 0),
		unitBoxAt(1, 25, 0),
	}
	n := overflownNode(2, items...)
	i, j := pickSeeds(n.children)
	seeds := map[*boxedItem]bool{
		n.children[i].(*leafNode).item.(*boxedItem): true,
		n.children[j].(*leafNode).item.(*boxedItem): true,
	}
	if !seeds[items[0]] || !seeds[items[1]] {
		t.Errorf("expected the Y extremes as seeds, got children %d and %d", i, j)
	}
}

func TestPickSeedsZOnlyWinsStrictly(t *testing.T) {
	// Z separation strictly exceeds X and Y: split on Z.
	items := []*boxedItem{
		unitBoxAt(0, 0, 0),
		unitBoxAt(1, 1, 200),
		unitBoxAt(0.5, 0.5, 100),
	}
	n := overflownNode(2, items...)
	i, j := pickSeeds(n.children)
	zs := []float64{
		n.children[i].envelope().MinZ,
		n.children[j].envelope().MinZ,
	}
	if !(zs[0] == 0 && zs[1] == 200 || zs[0] == 200 && zs[1] == 0) {
		t.Errorf("expected the Z extremes as seeds, got MinZ %v", zs)
	}
}

func TestPickSeedsIgnoresDegenerateZ(t *testing.T) {
	// Planar data: every envelope has MinZ == MaxZ == 0, so Z never wins.
	var items []*boxedItem
	for _, x := range []float64{0, 5, 10} {
		env, _ := geo.Planar(x, 0, x+1, 1)
		items = append(items, &boxedItem{name: "p", env: env})
	}
	n := overflownNode(2, items[0], items[1], items[2])
	i, j := pickSeeds(n.children)
	xs := map[float64]bool{
		n.children[i].envelope().MinX: true,
		n.children[j].envelope().MinX: true,
	}
	if !xs[0] || !xs[10] {
		t.Errorf("expected the X extremes as seeds for planar data")
	}
}
