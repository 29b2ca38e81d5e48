package boxtree

/*
BSD 3-Clause License

Copyright (c) 2025-26, the boxtree authors

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/spatialkit/boxtree/geo"
)

// Tree is a dynamic R-tree index over objects with 3-D bounding envelopes.
//
// A tree created by New is empty; Height is 0 and Count is 0. All leaves sit
// at the same depth at all times, and every internal node except the root
// holds between MinChildren and MaxChildren children.
//
// Tree is not safe for concurrent mutation. Searches never modify node state,
// so a tree that is not being mutated may be searched concurrently.
type Tree struct {
	root   *innerNode
	count  int
	height int
	min    int
	max    int
}

// New creates an empty index with the given fan-out bounds.
//
// Returns ErrInvalidConfig unless minChildren >= 1, maxChildren >= 2 and
// minChildren <= maxChildren/2.
func New(minChildren, maxChildren int) (*Tree, error) {
	if minChildren < 1 {
		return nil, fmt.Errorf("%w: minChildren must be >= 1", ErrInvalidConfig)
	}
	if maxChildren < 2 {
		return nil, fmt.Errorf("%w: maxChildren must be >= 2", ErrInvalidConfig)
	}
	if minChildren > maxChildren/2 {
		return nil, fmt.Errorf("%w: minChildren must be <= maxChildren/2", ErrInvalidConfig)
	}
	return &Tree{
		root: newInnerNode(maxChildren),
		min:  minChildren,
		max:  maxChildren,
	}, nil
}

// Count returns the number of indexed objects.
func (t *Tree) Count() int { return t.count }

// Height returns the depth of the leaf level, 0 for an empty tree.
func (t *Tree) Height() int { return t.height }

// MinChildren returns the lower fan-out bound for non-root internal nodes.
func (t *Tree) MinChildren() int { return t.min }

// MaxChildren returns the upper fan-out bound for all nodes.
func (t *Tree) MaxChildren() int { return t.max }

// Envelope returns the bounding envelope of the whole index, the empty
// envelope for an empty tree.
func (t *Tree) Envelope() geo.Envelope { return t.root.bbox }

// Add indexes one object.
//
// Returns ErrNilItem for a nil object and ErrEmptyEnvelope for an object
// whose envelope bounds nothing; the tree is unchanged then.
func (t *Tree) Add(item geo.Spatial) error {
	if item == nil {
		return fmt.Errorf("%w: cannot index nil object", ErrNilItem)
	}
	if item.Envelope().IsEmpty() {
		return fmt.Errorf("%w: cannot index object without extent", ErrEmptyEnvelope)
	}
	t.addNode(newLeafNode(item), -1)
	t.count++
	return nil
}

// AddAll indexes a batch of objects, silently skipping nil entries and
// entries with an empty envelope, and returns the number of objects added.
func (t *Tree) AddAll(items ...geo.Spatial) int {
	added := 0
	for _, item := range items {
		if item == nil {
			T().Debugf("boxtree: skipping nil object in batch add")
			continue
		}
		if item.Envelope().IsEmpty() {
			T().Debugf("boxtree: skipping object with empty envelope in batch add")
			continue
		}
		t.addNode(newLeafNode(item), -1)
		t.count++
		added++
	}
	return added
}

// Clear discards all indexed objects and resets the tree to its freshly
// constructed state, keeping the fan-out bounds.
func (t *Tree) Clear() {
	t.reset()
	t.count = 0
}

func (t *Tree) reset() {
	t.root = newInnerNode(t.max)
	t.height = 0
}
