package rtree

import "math"

// Delete removes every stored rectangle exactly equal to r, wherever it is in
// the tree. The returned bool reports whether anything was removed.
func (t *RTree) Delete(r Rect) bool {
	return t.remove(r, -1) > 0
}

// DeleteOne removes a single stored rectangle exactly equal to r, leaving any
// duplicates in place. The returned bool reports whether one was removed.
func (t *RTree) DeleteOne(r Rect) bool {
	return t.remove(r, 1) > 0
}

// remove deletes up to limit entries equal to r (all of them if limit is
// negative) and returns how many were removed.
func (t *RTree) remove(r Rect, limit int) int {
	if r.Validate() != nil || t.size == 0 {
		return 0
	}
	removed := t.removeFrom(t.root, r, limit, 1)
	if removed == 0 {
		return 0
	}
	t.size -= removed
	if !t.root.isLeaf() && len(t.root.children) == 0 {
		t.root = newLeaf()
		t.log.Debug().Msg("collapsed empty root")
	}
	return removed
}

func (t *RTree) removeFrom(n *node, r Rect, limit, depth int) int {
	if depth > maxDepth {
		fmtPanic("tree height exceeds %d", maxDepth)
	}

	if n.isLeaf() {
		var removed int
		keep := n.rects[:0]
		for _, e := range n.rects {
			if e == r && (limit < 0 || removed < limit) {
				removed++
				continue
			}
			keep = append(keep, e)
		}
		n.rects = keep
		if removed > 0 {
			n.recomputeBoundary()
		}
		return removed
	}

	var removed int
	for i := 0; i < len(n.children); i++ {
		if limit >= 0 && removed >= limit {
			break
		}
		child := n.children[i]
		if !child.boundary.Intersects(r) {
			continue
		}
		childLimit := limit
		if limit >= 0 {
			childLimit = limit - removed
		}
		k := t.removeFrom(child, r, childLimit, depth+1)
		if k == 0 {
			continue
		}
		removed += k

		if child.len() == 0 {
			// Empty nodes have no boundary to offer their parent.
			n.removeChild(i)
			i--
			continue
		}
		if child.isLeaf() {
			continue
		}
		// After a merge either the child holds unsearched entries (the
		// sibling came after it) or the next child shifted down to i.
		if t.merge(n, i) >= 0 {
			i--
		}
	}
	if removed > 0 {
		n.recomputeBoundary()
	}
	return removed
}

// merge repairs underflow of the internal node at parent.children[i]. If it
// has fewer than maxChildren/2 children, it absorbs the children of the
// sibling whose boundary overlaps its own by the least nonzero area, and the
// sibling is removed from the parent. Siblings whose children would not fit
// are passed over. The index the sibling had is returned, or -1 if nothing
// was merged.
func (t *RTree) merge(parent *node, i int) int {
	n := parent.children[i]
	if n.len() >= t.maxChildren/2 || len(parent.children) < 2 {
		return -1
	}

	best := -1
	bestOverlap := math.Inf(+1)
	for j, sibling := range parent.children {
		if j == i || n.len()+sibling.len() > t.maxChildren {
			continue
		}
		if o := overlapArea(sibling.boundary, n.boundary); o > 0 && o < bestOverlap {
			best, bestOverlap = j, o
		}
	}
	if best < 0 {
		return -1
	}

	sibling := parent.children[best]
	n.absorb(sibling)
	parent.removeChild(best)
	n.recomputeBoundary()
	t.log.Debug().
		Stringer("kind", n.kind).
		Int("entries", n.len()).
		Float64("overlap", bestOverlap).
		Msg("merged sibling")
	return best
}
