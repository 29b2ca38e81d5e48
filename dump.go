package boxtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type nodeids struct {
	idTable map[treeNode]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[treeNode]int),
		max:     1,
	}
}

func (ids nodeids) find(node treeNode) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node treeNode) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	_ = t.each(func(node treeNode, depth int) error {
		id := ids.alloc(node)
		if leaf, ok := node.(*leafNode); ok {
			label := fmt.Sprintf("%v\\n%s", leaf.item, leaf.envelope())
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" shape=box style=filled fillcolor=grey95];\n",
				id, label)
		} else {
			inner := node.(*innerNode)
			label := fmt.Sprintf("%d/%d\\n%s", inner.childCount(), inner.capacity, inner.bbox)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" shape=ellipse];\n", id, label)
			for _, c := range inner.children {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", id, ids.alloc(c))
			}
		}
		return nil
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

// DumpTree prints an indented textual rendering of the node graph, one node
// per line, colorized for terminals. Mainly useful while debugging tree
// mutations in tests.
func DumpTree(t *Tree, w io.Writer) {
	innerFmt := color.New(color.FgRed, color.Bold).SprintfFunc()
	leafFmt := color.New(color.FgBlue).SprintfFunc()
	_ = t.each(func(node treeNode, depth int) error {
		indent := strings.Repeat("   ", depth)
		if leaf, ok := node.(*leafNode); ok {
			fmt.Fprintf(w, "%s%s\n", indent, leafFmt("leaf %v %s", leaf.item, leaf.envelope()))
		} else {
			inner := node.(*innerNode)
			fmt.Fprintf(w, "%s%s\n", indent,
				innerFmt("node %d/%d %s", inner.childCount(), inner.capacity, inner.bbox))
		}
		return nil
	})
}
