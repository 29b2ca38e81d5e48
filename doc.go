/*
Package boxtree implements a dynamic spatial index over objects with
axis-aligned 3-D bounding envelopes.

Index structure

The index is an R-tree: a height-balanced tree in which every leaf wraps one
indexed object and every internal node covers its children with a cached
bounding envelope. Queries descend the tree and prune whole subtrees whose
envelope cannot match, so range searches, membership tests and deletions do
not touch every indexed object.

	Operation     |   R-tree        |  Linear scan
	--------------+-----------------+-------------
	Search        |   O(log n)      |   O(n)
	Insert        |   O(log n)      |   O(1)
	Delete        |   O(log n)      |   O(n)

Insertion follows the classic heuristics introduced by Guttman: the subtree
needing the least envelope enlargement receives the new entry, and overflowing
nodes are split with a linear-cost seed heuristic. Deletion condenses
under-full nodes and re-inserts their orphaned subtrees at their original
level, so the tree stays balanced under arbitrary mutation.

The index organizes objects by bounding volume only. It does not parse,
transform or persist geometries; an indexed object is just a value with an
envelope (see the geo package). The index is not safe for concurrent mutation:
callers serialize writers externally. Searches only read node state, so a
quiescent tree may be searched from multiple goroutines.

# BSD License

Copyright (c) 2025-26, the boxtree authors

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global tracer with key "boxtree".
func T() tracing.Trace {
	return tracing.Select("boxtree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
