package rtree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func FuzzTree(f *testing.F) {
	f.Add(int64(0), uint8(3), uint16(50))
	f.Add(int64(1), uint8(4), uint16(300))
	f.Add(int64(7), uint8(9), uint16(1000))
	f.Add(int64(23), uint8(7), uint16(1999))
	f.Add(int64(5), uint8(13), uint16(1999))

	f.Fuzz(func(t *testing.T, seed int64, maxChildren uint8, ops uint16) {
		m := 3 + int(maxChildren%14)
		rnd := rand.New(rand.NewSource(seed))
		rt, err := New(m, Rect{})
		require.NoError(t, err)

		// A small coordinate grid makes duplicates and touching edges common.
		randomRect := func() Rect {
			x, y := float64(rnd.Intn(20)), float64(rnd.Intn(20))
			return Rect{x, y, x + float64(rnd.Intn(3)), y + float64(rnd.Intn(3))}
		}

		var live []Rect
		for i := 0; i < int(ops%2000); i++ {
			switch op := rnd.Intn(10); {
			case op < 6 || len(live) == 0:
				r := randomRect()
				require.NoError(t, rt.Insert(r))
				live = append(live, r)
			case op < 8:
				r := live[rnd.Intn(len(live))]
				require.True(t, rt.DeleteOne(r))
				live = slices.Delete(live, slices.Index(live, r), slices.Index(live, r)+1)
			default:
				r := randomRect()
				removed := rt.Delete(r)
				n := len(live)
				live = slices.DeleteFunc(live, func(e Rect) bool { return e == r })
				require.Equal(t, n != len(live), removed)
			}
			checkInvariants(t, rt)
		}
		require.Equal(t, len(live), rt.Len())
		checkQuery(t, rt, live, randomRect())
		checkQuery(t, rt, live, Rect{0, 0, 25, 25})
	})
}
