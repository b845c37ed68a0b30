package rtree

type nodeKind uint8

const (
	leafNode nodeKind = iota
	internalNode
)

func (k nodeKind) String() string {
	if k == leafNode {
		return "leaf"
	}
	return "internal"
}

// node is a node in an R-Tree. Leaf nodes hold the inserted rectangles and
// internal nodes hold child nodes. The kind is fixed when the node is created;
// an internal node with no children is still an internal node.
type node struct {
	kind     nodeKind
	rects    []Rect  // leaf only
	children []*node // internal only

	// boundary is the tight union of the node's immediate entries, or
	// emptyRect if there are none.
	boundary Rect
}

func newLeaf() *node {
	return &node{kind: leafNode, boundary: emptyRect}
}

func newInternal(children ...*node) *node {
	n := &node{kind: internalNode, children: children}
	n.recomputeBoundary()
	return n
}

func (n *node) isLeaf() bool {
	return n.kind == leafNode
}

// len is the number of immediate entries: rectangles for a leaf, children
// otherwise.
func (n *node) len() int {
	if n.isLeaf() {
		return len(n.rects)
	}
	return len(n.children)
}

// entryBox returns the rectangle covering the i'th immediate entry.
func (n *node) entryBox(i int) Rect {
	if n.isLeaf() {
		return n.rects[i]
	}
	return n.children[i].boundary
}

// recomputeBoundary folds the boxes of the immediate entries. It does not
// descend, so children must already be up to date.
func (n *node) recomputeBoundary() {
	bb := emptyRect
	for i := 0; i < n.len(); i++ {
		bb = combine(bb, n.entryBox(i))
	}
	n.boundary = bb
}

// absorb moves every entry of other into n. Both nodes must be of the same
// kind.
func (n *node) absorb(other *node) {
	if n.kind != other.kind {
		fmtPanic("cannot absorb %v node into %v node", other.kind, n.kind)
	}
	n.rects = append(n.rects, other.rects...)
	n.children = append(n.children, other.children...)
	other.rects, other.children = nil, nil
}

func (n *node) removeChild(i int) {
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
}
