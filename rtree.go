package rtree

import (
	"iter"

	"github.com/rs/zerolog"
)

// maxDepth bounds the recursion used by Delete. A tree grows one level per
// root split, so reaching it means the structure is corrupt.
const maxDepth = 64

// RTree is an in-memory R-Tree data structure holding axis-aligned
// rectangles. It is not safe for concurrent use; callers that share a tree
// between goroutines must guard it with their own lock.
type RTree struct {
	root        *node
	maxChildren int
	initial     Rect
	size        int
	log         zerolog.Logger
}

// Option configures an RTree.
type Option func(*RTree)

// WithLogger makes the tree report structural changes (splits, root growth,
// merges) to l at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(t *RTree) {
		t.log = l
	}
}

// New creates an empty R-Tree whose nodes hold at most maxChildren entries.
// The initial boundary is reported by Bounds while the tree is empty.
func New(maxChildren int, initial Rect, opts ...Option) (*RTree, error) {
	if maxChildren < 3 {
		return nil, wrapErr(ErrInvalidConfig, "max children must be at least 3, got %d", maxChildren)
	}
	if err := initial.Validate(); err != nil {
		return nil, wrapErr(ErrInvalidConfig, "initial boundary: %v", err)
	}
	t := &RTree{
		root:        newLeaf(),
		maxChildren: maxChildren,
		initial:     initial,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// MaxChildren is the fan-out limit the tree was created with.
func (t *RTree) MaxChildren() int {
	return t.maxChildren
}

// Len is the number of rectangles stored in the tree. Duplicates are counted
// separately.
func (t *RTree) Len() int {
	return t.size
}

// Height is the number of node levels, counting the root. An empty tree has
// height 1.
func (t *RTree) Height() int {
	h := 1
	for n := t.root; !n.isLeaf() && len(n.children) > 0; n = n.children[0] {
		h++
	}
	return h
}

// Bounds is the boundary of the root node. While the tree is empty it is the
// initial boundary given to New.
func (t *RTree) Bounds() Rect {
	if t.size == 0 {
		return t.initial
	}
	return t.root.boundary
}

// Extent gives the Rect that most closely bounds the stored rectangles. If
// the tree is empty, then false is returned.
func (t *RTree) Extent() (Rect, bool) {
	if t.size == 0 {
		return Rect{}, false
	}
	return t.root.boundary, true
}

// Search looks for any rectangles in the tree that intersect the window. The
// callback is called with each one found, in traversal order. If the callback
// returns an error the search stops and the error is returned, except for the
// special Stop error, in which case nil is returned.
func (t *RTree) Search(window Rect, callback func(r Rect) error) error {
	if err := window.Validate(); err != nil {
		return err
	}
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !n.boundary.Intersects(window) {
			continue
		}
		if n.isLeaf() {
			for _, r := range n.rects {
				if !r.Intersects(window) {
					continue
				}
				if err := callback(r); err == Stop {
					return nil
				} else if err != nil {
					return err
				}
			}
			continue
		}
		// Push in reverse so that children are visited in slice order.
		for i := len(n.children) - 1; i >= 0; i-- {
			if n.children[i].boundary.Intersects(window) {
				stack = append(stack, n.children[i])
			}
		}
	}
	return nil
}

// Query returns every stored rectangle that intersects the window. An invalid
// window matches nothing.
func (t *RTree) Query(window Rect) []Rect {
	var found []Rect
	_ = t.Search(window, func(r Rect) error {
		found = append(found, r)
		return nil
	})
	return found
}

// Scan is a lazy version of Query. The sequence must not be used after the
// tree is modified.
func (t *RTree) Scan(window Rect) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		_ = t.Search(window, func(r Rect) error {
			if !yield(r) {
				return Stop
			}
			return nil
		})
	}
}
