package rtree

import (
	"bufio"
	"io"
	"strings"
)

// NodeView describes one line of a pre-order walk over the tree: either a
// node or, directly under a leaf, one stored rectangle.
type NodeView struct {
	// Prefix holds the ASCII branch drawing that precedes the line, such as
	// "│   ├── ". It is empty for the root.
	Prefix string
	Depth  int
	// Entry is true for a stored rectangle and false for a node.
	Entry bool
	Leaf  bool
	// Entries is the number of immediate entries of a node.
	Entries  int
	Boundary Rect
}

// Visit walks the tree in pre-order, calling fn for every node and every
// stored rectangle. Returning false from fn ends the walk.
func (t *RTree) Visit(fn func(v NodeView) bool) {
	type frame struct {
		n      *node
		r      Rect
		depth  int
		indent string
		last   bool
	}
	stack := []frame{{n: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		v := NodeView{Depth: f.depth}
		childIndent := f.indent
		if f.depth > 0 {
			if f.last {
				v.Prefix = f.indent + "└── "
				childIndent += "    "
			} else {
				v.Prefix = f.indent + "├── "
				childIndent += "│   "
			}
		}
		if f.n == nil {
			v.Entry, v.Boundary = true, f.r
			if !fn(v) {
				return
			}
			continue
		}
		v.Leaf, v.Entries, v.Boundary = f.n.isLeaf(), f.n.len(), f.n.boundary
		if !fn(v) {
			return
		}

		count := f.n.len()
		for i := count - 1; i >= 0; i-- {
			child := frame{depth: f.depth + 1, indent: childIndent, last: i == count-1}
			if f.n.isLeaf() {
				child.r = f.n.rects[i]
			} else {
				child.n = f.n.children[i]
			}
			stack = append(stack, child)
		}
	}
}

// Fprint writes a diagnostic drawing of the tree to w, one node or rectangle
// per line. The format is for humans and may change.
func (t *RTree) Fprint(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.Visit(func(v NodeView) bool {
		bw.WriteString(v.Prefix)
		if t.size == 0 && v.Depth == 0 {
			bw.WriteString("<empty>")
		} else {
			bw.WriteString(v.Boundary.String())
		}
		bw.WriteByte('\n')
		return true
	})
	return bw.Flush()
}

func (t *RTree) String() string {
	var b strings.Builder
	_ = t.Fprint(&b)
	return b.String()
}
