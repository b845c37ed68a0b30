package rtree

import "fmt"

// Validate walks the whole tree and reports the first structural defect it
// finds:
//   - a node whose boundary is not the tight union of its immediate entries;
//   - a node holding more than MaxChildren entries;
//   - an empty node below the root;
//   - leaves at different depths;
//   - a stored entry count that disagrees with Len.
func (t *RTree) Validate() error {
	leafDepth := -1
	count := 0
	var recurse func(n *node, depth int, path string) error
	recurse = func(n *node, depth int, path string) error {
		want := emptyRect
		for i := 0; i < n.len(); i++ {
			want = combine(want, n.entryBox(i))
		}
		if n.boundary != want {
			return fmtErr("node %s: boundary %v, want %v", path, n.boundary, want)
		}
		if n.len() > t.maxChildren {
			return fmtErr("node %s: %d entries exceeds %d", path, n.len(), t.maxChildren)
		}
		if depth > 0 && n.len() == 0 {
			return fmtErr("node %s: empty %v node below root", path, n.kind)
		}
		if n.isLeaf() {
			if len(n.children) != 0 {
				return fmtErr("node %s: leaf has children", path)
			}
			if leafDepth == -1 {
				leafDepth = depth
			} else if leafDepth != depth {
				return fmtErr("node %s: leaf at depth %d, want %d", path, depth, leafDepth)
			}
			count += len(n.rects)
			return nil
		}
		if len(n.rects) != 0 {
			return fmtErr("node %s: internal node has rectangles", path)
		}
		for i, child := range n.children {
			if err := recurse(child, depth+1, fmt.Sprintf("%s/%d", path, i)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := recurse(t.root, 0, "root"); err != nil {
		return err
	}
	if count != t.size {
		return fmtErr("found %d entries, Len is %d", count, t.size)
	}
	return nil
}

// CheckInvariants can be used in testing builds to verify internal
// invariants. A violation is a bug in this package, so it panics.
func (t *RTree) CheckInvariants() {
	if err := t.Validate(); err != nil {
		panic(err)
	}
}
