package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsDefects(t *testing.T) {
	build := func() *RTree {
		rt, err := New(4, Rect{})
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			f := float64(5 * i)
			require.NoError(t, rt.Insert(Rect{f, f, f + 1, f + 1}))
		}
		require.NoError(t, rt.Validate())
		return rt
	}

	rt := build()
	rt.root.boundary = Rect{0, 0, 100, 100}
	assert.EqualError(t, rt.Validate(), "rtree: node root: boundary [0,0,100,100], want [0,0,21,21]")
	assert.Panics(t, rt.CheckInvariants)

	rt = build()
	leaf := rt.root.children[1]
	for i := 0; i < 3; i++ {
		leaf.rects = append(leaf.rects, Rect{20, 20, 21, 21})
	}
	rt.size += 3
	assert.EqualError(t, rt.Validate(), "rtree: node root/1: 5 entries exceeds 4")

	rt = build()
	rt.size++
	assert.EqualError(t, rt.Validate(), "rtree: found 5 entries, Len is 6")
}
