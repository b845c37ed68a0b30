package workload

import (
	"cmp"
	"math"

	"github.com/google/btree"

	"github.com/rectree/rtree"
)

// shadow is a plain multiset of rectangles kept alongside the tree to check
// its answers. Items are ordered by MinX first, which lets a query skip every
// rectangle starting to the right of the window.
type shadow struct {
	items *btree.BTreeG[shadowItem]
}

type shadowItem struct {
	rect  rtree.Rect
	count int
}

func compareRects(a, b rtree.Rect) int {
	return cmp.Or(
		cmp.Compare(a.MinX, b.MinX),
		cmp.Compare(a.MinY, b.MinY),
		cmp.Compare(a.MaxX, b.MaxX),
		cmp.Compare(a.MaxY, b.MaxY),
	)
}

func newShadow() *shadow {
	return &shadow{items: btree.NewG[shadowItem](8, func(a, b shadowItem) bool {
		return compareRects(a.rect, b.rect) < 0
	})}
}

func (s *shadow) insert(r rtree.Rect) {
	item, _ := s.items.Get(shadowItem{rect: r})
	item.rect = r
	item.count++
	s.items.ReplaceOrInsert(item)
}

// remove deletes up to limit copies of r, or all of them if limit is
// negative, and returns how many went.
func (s *shadow) remove(r rtree.Rect, limit int) int {
	item, ok := s.items.Get(shadowItem{rect: r})
	if !ok {
		return 0
	}
	if limit < 0 || limit >= item.count {
		s.items.Delete(item)
		return item.count
	}
	item.count -= limit
	s.items.ReplaceOrInsert(item)
	return limit
}

func (s *shadow) len() int {
	var n int
	s.items.Ascend(func(item shadowItem) bool {
		n += item.count
		return true
	})
	return n
}

// query returns the rectangles intersecting window in ascending order.
func (s *shadow) query(window rtree.Rect) []rtree.Rect {
	var found []rtree.Rect
	pivot := shadowItem{rect: rtree.Rect{
		MinX: math.Nextafter(window.MaxX, math.Inf(+1)),
		MinY: math.Inf(-1),
		MaxX: math.Inf(-1),
		MaxY: math.Inf(-1),
	}}
	s.items.AscendLessThan(pivot, func(item shadowItem) bool {
		if item.rect.Intersects(window) {
			for i := 0; i < item.count; i++ {
				found = append(found, item.rect)
			}
		}
		return true
	})
	return found
}
