package rtree

// Insert adds a rectangle to the RTree. Inserting an equal rectangle twice
// stores two entries.
func (t *RTree) Insert(r Rect) error {
	if err := r.Validate(); err != nil {
		return err
	}

	path := t.chooseLeafPath(r)
	leaf := path[len(path)-1]
	leaf.rects = append(leaf.rects, r)
	for _, n := range path {
		n.boundary = combine(n.boundary, r)
	}
	t.size++

	sibling := t.adjustTree(path)
	if sibling != nil {
		t.joinRoots(t.root, sibling)
	}
	return nil
}

// chooseLeafPath descends from the root, at each level following the child
// that needs the least enlargement to cover r. The first child wins ties. The
// returned path starts at the root and ends at a leaf.
func (t *RTree) chooseLeafPath(r Rect) []*node {
	path := []*node{t.root}
	n := t.root
	for !n.isLeaf() {
		if len(path) > maxDepth {
			fmtPanic("tree height exceeds %d", maxDepth)
		}
		best := n.children[0]
		bestDelta := enlargement(best.boundary, r)
		for _, child := range n.children[1:] {
			if delta := enlargement(child.boundary, r); delta < bestDelta {
				best, bestDelta = child, delta
			}
		}
		n = best
		path = append(path, n)
	}
	return path
}

// adjustTree walks the insertion path bottom-up, splitting any node that has
// overflowed and handing the new sibling to its parent. It returns the sibling
// produced by splitting the root, or nil.
func (t *RTree) adjustTree(path []*node) *node {
	var sibling *node
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i]
		if sibling != nil {
			n.children = append(n.children, sibling)
			n.recomputeBoundary()
		}
		if n.len() <= t.maxChildren {
			return nil
		}
		sibling = t.split(n)
	}
	return sibling
}

// joinRoots grows the tree by one level.
func (t *RTree) joinRoots(r1, r2 *node) {
	t.root = newInternal(r1, r2)
	t.log.Debug().Int("height", t.Height()).Msg("grew root")
}

// split divides the entries of an overflowing node into two groups. The
// first group stays in n and the second is returned as a new node of the same
// kind.
//
// The seeds are the two entries whose centres are furthest apart. Every other
// entry joins the group whose running boundary it enlarges least, with ties
// going to the first group.
func (t *RTree) split(n *node) *node {
	count := n.len()
	seedA, seedB := t.pickSeeds(n)

	inA := make([]bool, count)
	inA[seedA] = true
	bbA, bbB := n.entryBox(seedA), n.entryBox(seedB)
	for i := 0; i < count; i++ {
		if i == seedA || i == seedB {
			continue
		}
		box := n.entryBox(i)
		if enlargement(bbA, box) <= enlargement(bbB, box) {
			inA[i] = true
			bbA = combine(bbA, box)
		} else {
			bbB = combine(bbB, box)
		}
	}

	sibling := &node{kind: n.kind}
	if n.isLeaf() {
		keep := n.rects[:0]
		for i, r := range n.rects {
			if inA[i] {
				keep = append(keep, r)
			} else {
				sibling.rects = append(sibling.rects, r)
			}
		}
		n.rects = keep
	} else {
		keep := n.children[:0]
		for i, child := range n.children {
			if inA[i] {
				keep = append(keep, child)
			} else {
				sibling.children = append(sibling.children, child)
			}
		}
		clear(n.children[len(keep):count])
		n.children = keep
	}
	n.recomputeBoundary()
	sibling.recomputeBoundary()

	t.log.Debug().
		Stringer("kind", n.kind).
		Int("entries", count).
		Int("kept", n.len()).
		Int("moved", sibling.len()).
		Msg("split node")
	return sibling
}

// pickSeeds returns the indexes of the pair of entries with the greatest
// distance between their centres, scanning all pairs. The earliest pair wins
// ties.
func (t *RTree) pickSeeds(n *node) (int, int) {
	seedA, seedB := 0, 1
	maxDist := -1.0
	for i := 0; i < n.len(); i++ {
		bi := n.entryBox(i)
		for j := i + 1; j < n.len(); j++ {
			if d := centerDistance(bi, n.entryBox(j)); d > maxDist {
				seedA, seedB, maxDist = i, j, d
			}
		}
	}
	return seedA, seedB
}
